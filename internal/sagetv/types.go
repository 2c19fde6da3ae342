package sagetv

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Record is one media file entry reported by the SageTV catalog. The identity
// key (ID) is unique per run and stable across runs for the same underlying
// file; every other field is untrusted free text.
type Record struct {
	ID            string
	IsMovie       bool
	Title         string
	Year          string
	Description   string
	EpisodeTitle  string
	SeasonNumber  int
	EpisodeNumber int
	Rating        string
	Genre         string
	Writers       string
	Directors     string
	FilePath      string
	DurationMs    int64
}

// mediaFilesResponse mirrors the SageX GetMediaFiles XML payload. The root
// element name varies between server versions, so it is left unconstrained.
type mediaFilesResponse struct {
	XMLName    xml.Name
	MediaFiles []mediaFileXML `xml:"MediaFile"`
}

type mediaFileXML struct {
	MediaFileID  string `xml:"MediaFileID"`
	MediaTitle   string `xml:"MediaTitle"`
	FileDuration string `xml:"FileDuration"`
	Airing       struct {
		Show struct {
			IsMovie           string `xml:"IsMovie"`
			ShowTitle         string `xml:"ShowTitle"`
			ShowYear          string `xml:"ShowYear"`
			ShowDescription   string `xml:"ShowDescription"`
			ShowEpisode       string `xml:"ShowEpisode"`
			ShowEpisodeNumber string `xml:"ShowEpisodeNumber"`
			ShowSeasonNumber  string `xml:"ShowSeasonNumber"`
			ShowRated         string `xml:"ShowRated"`
		} `xml:"Show"`
	} `xml:"Airing"`
	Metadata struct {
		Description string `xml:"Description"`
		Genre       string `xml:"Genre"`
		Writer      string `xml:"Writer"`
		Director    string `xml:"Director"`
	} `xml:"MediaFileMetadataProperties"`
	SegmentFiles struct {
		File string `xml:"File"`
	} `xml:"SegmentFiles"`
}

func (m mediaFileXML) toRecord() Record {
	show := m.Airing.Show

	title := strings.TrimSpace(show.ShowTitle)
	if title == "" {
		title = strings.TrimSpace(m.MediaTitle)
	}
	description := strings.TrimSpace(show.ShowDescription)
	if description == "" {
		description = strings.TrimSpace(m.Metadata.Description)
	}

	return Record{
		ID:            strings.TrimSpace(m.MediaFileID),
		IsMovie:       strings.EqualFold(strings.TrimSpace(show.IsMovie), "true"),
		Title:         title,
		Year:          strings.TrimSpace(show.ShowYear),
		Description:   description,
		EpisodeTitle:  strings.TrimSpace(show.ShowEpisode),
		SeasonNumber:  lenientInt(show.ShowSeasonNumber),
		EpisodeNumber: lenientInt(show.ShowEpisodeNumber),
		Rating:        strings.TrimSpace(show.ShowRated),
		Genre:         strings.TrimSpace(m.Metadata.Genre),
		Writers:       strings.TrimSpace(m.Metadata.Writer),
		Directors:     strings.TrimSpace(m.Metadata.Director),
		FilePath:      strings.TrimSpace(m.SegmentFiles.File),
		DurationMs:    lenientInt64(m.FileDuration),
	}
}

// lenientInt parses catalog numbers the way the reconciliation engine needs
// them: garbage and blanks are zero, never errors.
func lenientInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func lenientInt64(value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
