package episodeid

import (
	"regexp"
	"strconv"
)

// Unsorted is the season/episode bucket assigned when neither the catalog
// hints nor the filename identify an episode.
const (
	UnsortedSeason  = 0
	UnsortedEpisode = 1
)

// seasonEpisodePattern matches S<digits>E<digits> with optional dot, dash, or
// space separators around the digits, case-insensitive.
var seasonEpisodePattern = regexp.MustCompile(`(?i)s[. -]?(\d+)[. -]?e[. -]?(\d+)`)

// Identify derives season and episode numbers for a TV record.
//
// The policy is tiered: catalog hints win when both are positive, a
// S<nn>E<nn> filename pattern is the fallback when both hints are absent or
// zero, and the unsorted bucket (season 0, episode 1) is the default so every
// episode lands in a stable location.
func Identify(seasonHint, episodeHint int, filename string) (season, episode int) {
	if seasonHint > 0 && episodeHint > 0 {
		return seasonHint, episodeHint
	}

	if seasonHint == 0 && episodeHint == 0 {
		if s, e, ok := parseFilename(filename); ok {
			return s, e
		}
	}

	return UnsortedSeason, UnsortedEpisode
}

func parseFilename(filename string) (season, episode int, ok bool) {
	match := seasonEpisodePattern.FindStringSubmatch(filename)
	if match == nil {
		return 0, 0, false
	}
	season, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	episode, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return season, episode, true
}
