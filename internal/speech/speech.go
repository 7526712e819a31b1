// Package speech turns merged departure data and directory entries into
// spoken German sentences plus a companion card. Everything here is pure:
// no I/O, no clocks except the instant passed in.
package speech

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/models"
	"github.com/stadtbots/seestadt-skill/internal/registry"
)

// Per direction at most this many departures are announced; more would
// overload a spoken answer.
const maxDeparturesPerDirection = 2

var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// EscapeSSML escapes the five reserved markup characters so free text keeps
// the speech markup well-formed. Generated phrasing is already safe and is
// not passed through here.
func EscapeSSML(unsafe string) string {
	return ssmlEscaper.Replace(unsafe)
}

var (
	transitSuffixRe = regexp.MustCompile(` S?U$`)
	oeffisRe        = regexp.MustCompile(`ÖFFIS +NÜTZEN,`)
	klimaRe         = regexp.MustCompile(`KLIMA +SCHÜTZEN`)
	minSuffixRe     = regexp.MustCompile(` MIN$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizeTowards cleans a raw `towards` API string: the trailing transit
// type suffix is stripped, all-caps marketing phrases are rewritten to the
// actual destination, a trailing MIN unit is lower-cased and whitespace is
// collapsed. Runs before SSML escaping.
// https://twitter.com/botic/status/1133286469630668801
func NormalizeTowards(towards string) string {
	s := transitSuffixRe.ReplaceAllString(towards, "")
	s = oeffisRe.ReplaceAllString(s, "Karlsplatz")
	s = klimaRe.ReplaceAllString(s, "Karlsplatz")
	s = strings.Replace(s, "KARLSPLATZ", "Karlsplatz", 1)
	s = strings.Replace(s, "SEESTADT", "Seestadt", 1)
	s = strings.Replace(s, "NÄCHSTER ZUG", "Nächster Zug", 1)
	s = minSuffixRe.ReplaceAllString(s, " min")
	return whitespaceRe.ReplaceAllString(s, " ")
}

// CountdownPhrase renders minutes-until-arrival with German grammatical
// number agreement.
func CountdownPhrase(minutes int) string {
	switch minutes {
	case 0:
		return "jetzt"
	case 1:
		return "in einer Minute"
	default:
		return fmt.Sprintf("in %d Minuten", minutes)
	}
}

// validCountdowns keeps the usable countdowns of one directional record in
// feed order. Missing or negative countdowns are discarded.
func validCountdowns(line models.MonitorLine) []int {
	var countdowns []int
	for _, dep := range line.Departures.Departure {
		c := dep.DepartureTime.Countdown
		if c == nil || *c < 0 {
			continue
		}
		countdowns = append(countdowns, *c)
	}
	return countdowns
}

// StationInfo composes the transit announcement for one station from the
// merged per-line departure map. A station served by exactly one line gets
// terser phrasing without repeating the line name per sentence.
func StationInfo(reg *registry.Registry, station models.StationID, info *models.LineMap) models.DualResponse {
	stationName, err := reg.StationName(station)
	if err != nil {
		// Data-integrity bug: the caller resolved a station the registry
		// does not know. Fall back to the raw key so the answer stays usable.
		log.Error().Err(err).Str("station", string(station)).Msg("announcing station without a display name")
		stationName = string(station)
	}

	singleLineStation := info.Len() == 1
	var textLines, cardLines []string

	if !singleLineStation {
		textLines = append(textLines, fmt.Sprintf("Station %s", stationName))
	}

	for _, lineID := range info.Lines() {
		if !reg.SupportedLine(lineID) {
			continue
		}

		monitor := info.Get(lineID)
		if len(monitor) == 0 {
			noData := fmt.Sprintf("Für die Linie %s sind keine Daten verfügbar.", lineID)
			textLines = append(textLines, noData)
			cardLines = append(cardLines, noData)
			continue
		}

		lineName := monitor[0].Name
		var announcements []string
		for _, entry := range monitor {
			countdowns := validCountdowns(entry)
			if len(countdowns) == 0 {
				continue
			}
			if len(countdowns) > maxDeparturesPerDirection {
				countdowns = countdowns[:maxDeparturesPerDirection]
			}

			phrases := make([]string, len(countdowns))
			for i, c := range countdowns {
				phrases[i] = CountdownPhrase(c)
			}

			prefix := ""
			if !singleLineStation {
				prefix = fmt.Sprintf("Linie %s ", lineName)
			}
			towards := EscapeSSML(NormalizeTowards(entry.Towards))
			announcements = append(announcements,
				fmt.Sprintf("%sRichtung %s fährt %s.", prefix, towards, strings.Join(phrases, " und ")))
		}

		if len(announcements) == 0 {
			noData := fmt.Sprintf("Für die Linie %s sind keine Daten verfügbar.", lineID)
			textLines = append(textLines, noData)
			cardLines = append(cardLines, noData)
			continue
		}

		lineText := strings.Join(announcements, " ")
		if singleLineStation {
			lineText = fmt.Sprintf("Linie %s %s %s", lineName, stationName, lineText)
		}
		textLines = append(textLines, lineText)
		cardLines = append(cardLines, lineText)
	}

	return models.DualResponse{
		Text: strings.Join(textLines, " "),
		Card: models.Card{
			Title:   stationName,
			Content: strings.Join(cardLines, "\n\n"),
		},
	}
}
