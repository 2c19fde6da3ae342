package nfo

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type episodeDetails struct {
	XMLName xml.Name `xml:"episodedetails"`

	Title     string `xml:"title"`
	ShowTitle string `xml:"showtitle"`
	Season    int    `xml:"season"`
	Episode   int    `xml:"episode"`
	Plot      string `xml:"plot"`
	Year      string `xml:"year"`
	Genre     string `xml:"genre"`
	Runtime   string `xml:"runtime"`
}

type movie struct {
	XMLName xml.Name `xml:"movie"`

	Title         string   `xml:"title"`
	OriginalTitle string   `xml:"originaltitle"`
	Year          string   `xml:"year"`
	Plot          string   `xml:"plot"`
	Rating        string   `xml:"rating"`
	Runtime       string   `xml:"runtime"`
	Genre         string   `xml:"genre"`
	Directors     []string `xml:"director,omitempty"`
	Writers       []string `xml:"writer,omitempty"`
}

type tvShow struct {
	XMLName xml.Name `xml:"tvshow"`

	Title     string   `xml:"title"`
	Plot      string   `xml:"plot"`
	Premiered string   `xml:"premiered,omitempty"`
	Year      string   `xml:"year"`
	Genre     string   `xml:"genre"`
	Directors []string `xml:"director,omitempty"`
	Writers   []string `xml:"writer,omitempty"`
}

// EpisodeDoc describes the sidecar metadata for one TV episode.
type EpisodeDoc struct {
	Title     string
	ShowTitle string
	Season    int
	Episode   int
	Plot      string
	Year      string
	Genre     string
	RuntimeMs int64
}

// MovieDoc describes the sidecar metadata for one movie.
type MovieDoc struct {
	Title     string
	Year      string
	Plot      string
	Rating    string
	Genre     string
	RuntimeMs int64
	Directors []string
	Writers   []string
}

// ShowDoc describes the once-per-series tvshow.nfo document.
type ShowDoc struct {
	Title     string
	Plot      string
	Year      string
	Genre     string
	Directors []string
	Writers   []string
}

// EncodeEpisode renders an <episodedetails> NFO document.
func EncodeEpisode(doc EpisodeDoc) ([]byte, error) {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = strings.TrimSpace(doc.ShowTitle)
	}
	return marshal(episodeDetails{
		Title:     title,
		ShowTitle: strings.TrimSpace(doc.ShowTitle),
		Season:    doc.Season,
		Episode:   doc.Episode,
		Plot:      doc.Plot,
		Year:      doc.Year,
		Genre:     doc.Genre,
		Runtime:   runtimeMinutes(doc.RuntimeMs),
	})
}

// EncodeMovie renders a <movie> NFO document.
func EncodeMovie(doc MovieDoc) ([]byte, error) {
	title := strings.TrimSpace(doc.Title)
	return marshal(movie{
		Title:         title,
		OriginalTitle: title,
		Year:          doc.Year,
		Plot:          doc.Plot,
		Rating:        doc.Rating,
		Runtime:       runtimeMinutes(doc.RuntimeMs),
		Genre:         doc.Genre,
		Directors:     cleanList(doc.Directors),
		Writers:       cleanList(doc.Writers),
	})
}

// EncodeShow renders a <tvshow> NFO document. The premiere date is pinned to
// January 1st of the show's year since the catalog only reports a year.
func EncodeShow(doc ShowDoc) ([]byte, error) {
	premiered := ""
	if year := strings.TrimSpace(doc.Year); year != "" {
		premiered = year + "-01-01"
	}
	return marshal(tvShow{
		Title:     strings.TrimSpace(doc.Title),
		Plot:      doc.Plot,
		Premiered: premiered,
		Year:      doc.Year,
		Genre:     doc.Genre,
		Directors: cleanList(doc.Directors),
		Writers:   cleanList(doc.Writers),
	})
}

// SplitNames splits a semicolon-delimited name list as reported by the
// catalog, dropping empty entries.
func SplitNames(list string) []string {
	parts := strings.Split(list, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runtimeMinutes(ms int64) string {
	if ms <= 0 {
		return "0 min"
	}
	minutes := (ms + 30000) / 60000
	return fmt.Sprintf("%d min", minutes)
}

func cleanList(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func marshal(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal nfo: %w", err)
	}
	return append(body, '\n'), nil
}
