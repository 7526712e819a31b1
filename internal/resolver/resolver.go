// Package resolver maps noisy spoken input to canonical station, line and
// vehicle identifiers. Speech recognition is lossy, so resolution runs an
// ordered list of matching strategies and takes the first hit; no match is a
// normal outcome, never an error.
package resolver

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/models"
)

// Input carries what the voice platform knows about one slot: an optional
// machine-resolved id (authoritative when present) and the raw recognized
// text.
type Input struct {
	// ResolvedID is the platform's disambiguated value id, set only when the
	// platform reported exactly one high-confidence match.
	ResolvedID string
	// Text is the raw spoken value as recognized.
	Text string
}

var stationCodes = map[string]models.StationID{
	"ASP": models.StationASP,
	"HAU": models.StationHAU,
	"NOR": models.StationNOR,
	"SEE": models.StationSEE,
	"CTS": models.StationCTS,
	"MTP": models.StationMTP,
	"HAP": models.StationHAP,
	"JKG": models.StationJKG,
}

type stationPattern struct {
	re      *regexp.Regexp
	station models.StationID
}

// Exact name patterns. Both "ß" and "ss" spellings are accepted, as are
// optional separators inside multi-word names.
var exactPatterns = []stationPattern{
	{regexp.MustCompile(`(?i)^aspernstra(ss|ß)e$`), models.StationASP},
	{regexp.MustCompile(`(?i)^hausfeldstra(ss|ß)e$`), models.StationHAU},
	{regexp.MustCompile(`(?i)^(aspern )?nord$`), models.StationNOR},
	{regexp.MustCompile(`(?i)^hann?ah?[ -]ah?ren(d|dt|t|tt)([ -]platz)?$`), models.StationHAP},
	{regexp.MustCompile(`(?i)^johann[- ]?kutschera([- ]?(gasse|stra(ss|ß)e))?$`), models.StationJKG},
	{regexp.MustCompile(`(?i)^maria[- ]?trapp([- ]?platz)?$`), models.StationMTP},
	{regexp.MustCompile(`(?i)^christine[- ]?touaillon([- ]?(gasse|stra(ss|ß)e))?$`), models.StationCTS},
}

var seestadtPattern = stationPattern{regexp.MustCompile(`(?i)^seestadt$`), models.StationSEE}

// Looser prefix matches for truncated recognitions of the long names.
var prefixPatterns = []stationPattern{
	{regexp.MustCompile(`(?i)^hann?ah?[ -]`), models.StationHAP},
	{regexp.MustCompile(`(?i)^johann[ -]`), models.StationJKG},
	{regexp.MustCompile(`(?i)^christine[- ]?`), models.StationCTS},
	{regexp.MustCompile(`(?i)^haus[ -]?felds`), models.StationHAU},
}

// Systematic mis-transcriptions of "Johann-Kutschera-Gasse". The recognizer
// keeps producing these unrelated words for the name.
var misheardJKG = regexp.MustCompile(`(?i)(q terrasse|gute radar|küche radar|foodora das|butter gast|gottschalk|code straße)`)

type strategy func(text string) (models.StationID, bool)

func matchAny(patterns []stationPattern) strategy {
	return func(text string) (models.StationID, bool) {
		for _, p := range patterns {
			if p.re.MatchString(text) {
				return p.station, true
			}
		}
		return "", false
	}
}

func matchMisheard(text string) (models.StationID, bool) {
	if misheardJKG.MatchString(text) {
		return models.StationJKG, true
	}
	return "", false
}

// Station resolves a slot input to a station. The platform-provided
// resolution wins over all text heuristics. includeSeestadt controls whether
// the literal terminus name "Seestadt" is a valid target; intents where the
// terminus cannot be meant pass false.
func Station(in Input, includeSeestadt bool) (models.StationID, bool) {
	if len(in.ResolvedID) == 3 {
		if station, ok := stationCodes[in.ResolvedID]; ok {
			return station, true
		}
	}

	if in.Text == "" {
		return "", false
	}

	exact := exactPatterns
	if includeSeestadt {
		exact = append(append([]stationPattern{}, exactPatterns...), seestadtPattern)
	}

	for _, s := range []strategy{matchAny(exact), matchAny(prefixPatterns), matchMisheard} {
		if station, ok := s(in.Text); ok {
			return station, true
		}
	}

	log.Info().Str("text", in.Text).Msg("could not extract a station")
	return "", false
}

// Vehicle resolves a slot input to a vehicle category. Only the platform's
// structured resolution is trusted; free text is too ambiguous here.
func Vehicle(in Input) (models.VehicleType, bool) {
	switch strings.ToUpper(in.ResolvedID) {
	case "BUS":
		return models.VehicleBus, true
	case "TRAM":
		return models.VehicleTram, true
	case "UBAHN":
		return models.VehicleMetro, true
	}
	return "", false
}
