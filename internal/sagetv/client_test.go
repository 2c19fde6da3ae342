package sagetv_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sagelink/internal/logging"
	"sagelink/internal/sagetv"
	"sagelink/internal/services"
)

const samplePage = `<?xml version="1.0" encoding="UTF-8"?>
<MediaFileList>
  <MediaFile>
    <MediaFileID>42</MediaFileID>
    <MediaTitle>Fallback Title</MediaTitle>
    <FileDuration>2700000</FileDuration>
    <Airing>
      <Show>
        <IsMovie>false</IsMovie>
        <ShowTitle>Some Show</ShowTitle>
        <ShowYear>2020</ShowYear>
        <ShowDescription>An episode.</ShowDescription>
        <ShowEpisode>Pilot</ShowEpisode>
        <ShowEpisodeNumber>2</ShowEpisodeNumber>
        <ShowSeasonNumber>1</ShowSeasonNumber>
        <ShowRated>TV-PG</ShowRated>
      </Show>
    </Airing>
    <MediaFileMetadataProperties>
      <Genre>Drama</Genre>
      <Writer>A. One;B. Two</Writer>
      <Director>C. Three</Director>
    </MediaFileMetadataProperties>
    <SegmentFiles>
      <File>/media/Some.Show.S01E02.mkv</File>
    </SegmentFiles>
  </MediaFile>
  <MediaFile>
    <MediaFileID>43</MediaFileID>
    <FileDuration>not-a-number</FileDuration>
    <Airing>
      <Show>
        <IsMovie>TRUE</IsMovie>
        <ShowTitle>Some Movie</ShowTitle>
        <ShowYear>1999</ShowYear>
      </Show>
    </Airing>
    <SegmentFiles>
      <File>/media/Some.Movie.mpg</File>
    </SegmentFiles>
  </MediaFile>
</MediaFileList>`

func TestFetchPageParsesRecords(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, samplePage)
	}))
	defer server.Close()

	client := sagetv.NewClientWithDoer(server.URL, 100, server.Client(), logging.NewNop())
	records, err := client.FetchPage(context.Background(), 200)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	episode := records[0]
	if episode.ID != "42" || episode.IsMovie {
		t.Fatalf("unexpected first record: %+v", episode)
	}
	if episode.Title != "Some Show" || episode.EpisodeTitle != "Pilot" {
		t.Fatalf("unexpected titles: %+v", episode)
	}
	if episode.SeasonNumber != 1 || episode.EpisodeNumber != 2 {
		t.Fatalf("unexpected numbering: %+v", episode)
	}
	if episode.DurationMs != 2700000 {
		t.Fatalf("unexpected duration: %d", episode.DurationMs)
	}
	if episode.FilePath != "/media/Some.Show.S01E02.mkv" {
		t.Fatalf("unexpected path: %q", episode.FilePath)
	}

	movie := records[1]
	if !movie.IsMovie {
		t.Fatal("expected IsMovie parsed case-insensitively")
	}
	if movie.Title != "Some Movie" {
		t.Fatalf("expected MediaTitle fallback handling, got %q", movie.Title)
	}
	if movie.DurationMs != 0 {
		t.Fatalf("garbage duration should parse as zero, got %d", movie.DurationMs)
	}

	for _, fragment := range []string{"command=GetMediaFiles", "size=100", "start=200"} {
		if !strings.Contains(gotQuery, fragment) {
			t.Fatalf("query %q missing %q", gotQuery, fragment)
		}
	}
}

func TestFetchPageStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := sagetv.NewClientWithDoer(server.URL, 10, server.Client(), logging.NewNop())
	_, err := client.FetchPage(context.Background(), 0)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestFetchPageMalformedXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<MediaFileList><MediaFile>")
	}))
	defer server.Close()

	client := sagetv.NewClientWithDoer(server.URL, 10, server.Client(), logging.NewNop())
	_, err := client.FetchPage(context.Background(), 0)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}
