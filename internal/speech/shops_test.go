package speech

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtbots/seestadt-skill/internal/models"
)

const weekHours = `{"mon":["09:00-18:00"],"tue":["09:00-18:00"],"wed":["09:00-18:00"],` +
	`"thu":["09:00-18:00"],"fri":["09:00-18:00"]}`

// mondayMorning is an instant inside the weekHours schedule, Vienna time.
var mondayMorning = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

// sundayEvening is outside every weekHours frame.
var sundayEvening = time.Date(2026, 8, 23, 19, 0, 0, 0, time.UTC)

func TestOpeningHoursTextUnknownWithRemark(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{
		Name:        "Buchhandlung am See",
		HoursRemark: "Nur nach telefonischer Vereinbarung.",
	}

	text := OpeningHoursText(entry, mondayMorning)

	assert.Contains(t, text, "Nur nach telefonischer Vereinbarung.")
	assert.NotContains(t, text, "Die weiteren Öffnungszeiten sind")
	assert.NotContains(t, text, "derzeit")
}

func TestOpeningHoursTextUnknownWithoutRemark(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{Name: "Buchhandlung am See"}

	assert.Equal(t,
		"Es sind keine Öffnungszeiten für Buchhandlung am See hinterlegt.",
		OpeningHoursText(entry, mondayMorning))
}

func TestOpeningHoursTextKnownSchedule(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{
		Name:  "Buchhandlung am See",
		Hours: weekHours,
	}

	open := OpeningHoursText(entry, mondayMorning)
	assert.Contains(t, open, "Buchhandlung am See ist derzeit geöffnet.")
	assert.Contains(t, open, "Die weiteren Öffnungszeiten sind:")
	assert.Contains(t, open, "Montag bis Freitag von 09:00 bis 18:00")

	closed := OpeningHoursText(entry, sundayEvening)
	assert.Contains(t, closed, "ist derzeit geschlossen.")
}

func TestOpeningHoursTextFoldedArtifactsRemoved(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{Name: "Café", Hours: weekHours}

	text := OpeningHoursText(entry, mondayMorning)

	// The fold's label colons and newlines must not reach the spoken text.
	assert.NotContains(t, text, "Montag bis Freitag:")
	assert.NotContains(t, text, "\n")
	assert.Contains(t, text, "Samstag bis Sonntag geschlossen")
}

func TestOpeningHoursTextRemarkAppendedToKnownSchedule(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{
		Name:        "Café",
		Hours:       weekHours,
		HoursRemark: "Im August geschlossen.",
	}

	text := OpeningHoursText(entry, mondayMorning)
	assert.Contains(t, text, "Hinweis: Im August geschlossen.")
}

func TestOpeningHoursTextEscapesEntryFields(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{Name: "Bäcker & Sohn"}

	text := OpeningHoursText(entry, mondayMorning)
	assert.Contains(t, text, "Bäcker &amp; Sohn")
	assert.NotContains(t, text, "Bäcker & Sohn")
}

func TestShopInfoTextAddressPreposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"street", "Maria-Tusch-Straße 2", "befindet sich in der Maria-Tusch-Straße 2."},
		{"lane", "Kulkagasse 5", "befindet sich in der Kulkagasse 5."},
		{"square", "Hannah-Arendt-Platz 1", "befindet sich am Hannah-Arendt-Platz 1."},
		{"other", "Seepromenade 10", "befindet sich bei Seepromenade 10."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := &models.ShopEntry{Name: "Laden", Address: tt.address}
			assert.Contains(t, ShopInfoText(entry, mondayMorning), tt.want)
		})
	}
}

func TestShopInfoTextComposition(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{
		Name:        "Seestadt Apotheke",
		Label:       "Apotheke",
		Address:     "Maria-Tusch-Straße 2",
		Description: "Apotheke mit Beratung",
		Hours:       weekHours,
	}

	text := ShopInfoText(entry, mondayMorning)

	assert.Contains(t, text, "Seestadt Apotheke: Apotheke mit Beratung.")
	// The short label wins for the address and status sentences.
	assert.Contains(t, text, "Apotheke befindet sich in der Maria-Tusch-Straße 2.")
	assert.Contains(t, text, "Derzeit hat Apotheke geöffnet.")
}

func TestShopInfoTextUnknownHoursRemark(t *testing.T) {
	t.Parallel()

	entry := &models.ShopEntry{
		Name:        "Popup-Store",
		Address:     "Seepromenade 10",
		HoursRemark: "Öffnet nur im Sommer.",
	}

	text := ShopInfoText(entry, mondayMorning)
	require.Contains(t, text, "Ein Hinweis zu den Öffnungszeiten: Öffnet nur im Sommer.")
	assert.NotContains(t, text, "Derzeit hat")
}

func TestElevatorText(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Für die Station Seestadt sind derzeit keine Aufzugsstörungen gemeldet.",
		ElevatorText("Seestadt", nil))

	infos := []models.ElevatorInfo{
		{Title: "Aufzug Seestadt", Description: "Außer Betrieb"},
		{Title: "Aufzug Bahnsteig 2."},
	}
	text := ElevatorText("Seestadt", infos)
	assert.Contains(t, text, "Aufzug Seestadt: Außer Betrieb.")
	assert.Contains(t, text, "Aufzug Bahnsteig 2.")
}
