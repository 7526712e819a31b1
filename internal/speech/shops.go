package speech

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/stadtbots/seestadt-skill/internal/models"
	"github.com/stadtbots/seestadt-skill/internal/openinghours"
)

// All StadtKatalog entries live in Vienna.
const shopTimezone = "Europe/Vienna"

// foldConfig renders a weekly schedule the way it is spoken in Austria.
var foldConfig = openinghours.FoldConfig{
	ClosedPlaceholder:  "geschlossen",
	HolidayPrefix:      "Feiertags",
	Hyphen:             " bis ",
	TimeFrameFormat:    "von {start} bis {end}",
	TimeFrameDelimiter: " und ",
	WeekdayFormat:      openinghours.WeekdayLong,
}

var (
	streetAddressRe = regexp.MustCompile(`(?i)(Stra(ss|ß)e|Gasse)`)
	squareAddressRe = regexp.MustCompile(`(?i)(Platz|Eck)`)
)

// foldedHours renders the schedule and removes the label-colon artifact and
// embedded newlines, which have no place in a flowing sentence.
func foldedHours(hours *openinghours.Hours) string {
	folded := hours.Fold(foldConfig)
	folded = strings.ReplaceAll(folded, ": ", " ")
	return strings.ReplaceAll(folded, "\n", ". ")
}

// OpeningHoursText answers "when is X open": current status followed by the
// folded weekly schedule, or the hours remark when no schedule is on file.
func OpeningHoursText(entry *models.ShopEntry, now time.Time) string {
	var texts []string

	hours := openinghours.New(entry.Hours, shopTimezone)
	if hours.IsUnknown() {
		if entry.HoursRemark != "" {
			texts = append(texts, fmt.Sprintf("%s hat folgenden Hinweis zu den Öffnungszeiten: %s",
				EscapeSSML(entry.Name), EscapeSSML(entry.HoursRemark)))
		} else {
			texts = append(texts, fmt.Sprintf("Es sind keine Öffnungszeiten für %s hinterlegt.",
				EscapeSSML(entry.Name)))
		}
		return strings.Join(texts, " ")
	}

	texts = append(texts, fmt.Sprintf("%s ist derzeit %s.", EscapeSSML(entry.Name), openState(hours, now)))
	texts = append(texts, fmt.Sprintf("Die weiteren Öffnungszeiten sind: %s.", EscapeSSML(foldedHours(hours))))
	if entry.HoursRemark != "" {
		texts = append(texts, fmt.Sprintf("Hinweis: %s", EscapeSSML(entry.HoursRemark)))
	}

	return strings.Join(texts, " ")
}

// ShopInfoText describes a venue: description, address with a grammatically
// fitting preposition, and the current opening state.
func ShopInfoText(entry *models.ShopEntry, now time.Time) string {
	var texts []string

	if entry.Description != "" {
		texts = append(texts, fmt.Sprintf("%s: %s.", EscapeSSML(entry.Name), EscapeSSML(entry.Description)))
	}

	texts = append(texts, fmt.Sprintf("%s befindet sich %s %s.",
		EscapeSSML(entry.DisplayName()), addressPreposition(entry.Address), EscapeSSML(entry.Address)))

	hours := openinghours.New(entry.Hours, shopTimezone)
	if hours.IsUnknown() {
		if entry.HoursRemark != "" {
			texts = append(texts, fmt.Sprintf("Ein Hinweis zu den Öffnungszeiten: %s", EscapeSSML(entry.HoursRemark)))
		}
	} else {
		texts = append(texts, fmt.Sprintf("Derzeit hat %s %s.", EscapeSSML(entry.DisplayName()), openState(hours, now)))
		if entry.HoursRemark != "" {
			texts = append(texts, fmt.Sprintf("Hinweis: %s", EscapeSSML(entry.HoursRemark)))
		}
	}

	return strings.TrimSpace(strings.Join(texts, " "))
}

func openState(hours *openinghours.Hours, now time.Time) string {
	if hours.IsOpenAt(now) {
		return "geöffnet"
	}
	return "geschlossen"
}

func addressPreposition(address string) string {
	switch {
	case streetAddressRe.MatchString(address):
		return "in der"
	case squareAddressRe.MatchString(address):
		return "am"
	default:
		return "bei"
	}
}

// ElevatorText summarizes elevator disruption notices for a station.
func ElevatorText(stationName string, infos []models.ElevatorInfo) string {
	if len(infos) == 0 {
		return fmt.Sprintf("Für die Station %s sind derzeit keine Aufzugsstörungen gemeldet.", stationName)
	}

	var texts []string
	for _, info := range infos {
		sentence := EscapeSSML(info.Title)
		if info.Description != "" {
			sentence += ": " + EscapeSSML(info.Description)
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		texts = append(texts, sentence)
	}

	return strings.Join(texts, " ")
}
