package nfo

import (
	"strings"
	"testing"
)

func TestEncodeEpisode(t *testing.T) {
	body, err := EncodeEpisode(EpisodeDoc{
		Title:     "Pilot",
		ShowTitle: "Show",
		Season:    1,
		Episode:   2,
		Plot:      "A beginning.",
		Year:      "2020",
		Genre:     "Drama",
		RuntimeMs: 2700000,
	})
	if err != nil {
		t.Fatalf("EncodeEpisode: %v", err)
	}
	out := string(body)
	for _, want := range []string{
		"<episodedetails>",
		"<title>Pilot</title>",
		"<showtitle>Show</showtitle>",
		"<season>1</season>",
		"<episode>2</episode>",
		"<runtime>45 min</runtime>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestEncodeEpisodeFallsBackToShowTitle(t *testing.T) {
	body, err := EncodeEpisode(EpisodeDoc{ShowTitle: "Show"})
	if err != nil {
		t.Fatalf("EncodeEpisode: %v", err)
	}
	if !strings.Contains(string(body), "<title>Show</title>") {
		t.Fatalf("expected show title fallback:\n%s", body)
	}
}

func TestEncodeMovie(t *testing.T) {
	body, err := EncodeMovie(MovieDoc{
		Title:     "Heat & Dust",
		Year:      "1983",
		Plot:      "Two eras.",
		Rating:    "PG",
		Genre:     "Drama",
		RuntimeMs: 7800000,
		Directors: []string{"J. Ivory", " "},
		Writers:   []string{"R. Jhabvala"},
	})
	if err != nil {
		t.Fatalf("EncodeMovie: %v", err)
	}
	out := string(body)
	for _, want := range []string{
		"<movie>",
		"<title>Heat &amp; Dust</title>",
		"<originaltitle>Heat &amp; Dust</originaltitle>",
		"<runtime>130 min</runtime>",
		"<director>J. Ivory</director>",
		"<writer>R. Jhabvala</writer>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Count(out, "<director>") != 1 {
		t.Fatalf("blank director should be dropped:\n%s", out)
	}
}

func TestEncodeShowPremiereDate(t *testing.T) {
	body, err := EncodeShow(ShowDoc{Title: "Show", Year: "2019"})
	if err != nil {
		t.Fatalf("EncodeShow: %v", err)
	}
	if !strings.Contains(string(body), "<premiered>2019-01-01</premiered>") {
		t.Fatalf("expected premiere date:\n%s", body)
	}

	body, err = EncodeShow(ShowDoc{Title: "Show"})
	if err != nil {
		t.Fatalf("EncodeShow: %v", err)
	}
	if strings.Contains(string(body), "<premiered>") {
		t.Fatalf("premiered should be omitted without a year:\n%s", body)
	}
}

func TestSplitNames(t *testing.T) {
	got := SplitNames("A. One; B. Two ;; ")
	if len(got) != 2 || got[0] != "A. One" || got[1] != "B. Two" {
		t.Fatalf("unexpected split: %#v", got)
	}
	if got := SplitNames(""); len(got) != 0 {
		t.Fatalf("expected empty split, got %#v", got)
	}
}
