package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtbots/seestadt-skill/internal/models"
)

func TestStationStructuredResolutionWins(t *testing.T) {
	t.Parallel()

	// The platform id is authoritative even when the text disagrees.
	station, ok := Station(Input{ResolvedID: "ASP", Text: "seestadt"}, true)
	require.True(t, ok)
	assert.Equal(t, models.StationASP, station)
}

func TestStationExactPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want models.StationID
	}{
		{"Aspernstraße", models.StationASP},
		{"aspernstrasse", models.StationASP},
		{"Hausfeldstraße", models.StationHAU},
		{"Nord", models.StationNOR},
		{"Aspern Nord", models.StationNOR},
		{"Hannah-Arendt-Platz", models.StationHAP},
		{"hana arent", models.StationHAP},
		{"Johann Kutschera Gasse", models.StationJKG},
		{"johannkutschera", models.StationJKG},
		{"Maria-Trapp-Platz", models.StationMTP},
		{"maria trapp", models.StationMTP},
		{"Christine-Touaillon-Straße", models.StationCTS},
		{"christine touaillon strasse", models.StationCTS},
		{"Seestadt", models.StationSEE},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			station, ok := Station(Input{Text: tt.text}, true)
			require.True(t, ok)
			assert.Equal(t, tt.want, station)
		})
	}
}

func TestStationSeestadtCanBeExcluded(t *testing.T) {
	t.Parallel()

	_, ok := Station(Input{Text: "Seestadt"}, false)
	assert.False(t, ok)

	// Other stations stay resolvable with the terminus excluded.
	station, ok := Station(Input{Text: "Aspern Nord"}, false)
	require.True(t, ok)
	assert.Equal(t, models.StationNOR, station)
}

func TestStationPrefixHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want models.StationID
	}{
		{"hannah arendt irgendwas", models.StationHAP},
		{"johann kutsch", models.StationJKG},
		{"christine tu", models.StationCTS},
		{"hausfelds", models.StationHAU},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			station, ok := Station(Input{Text: tt.text}, true)
			require.True(t, ok)
			assert.Equal(t, tt.want, station)
		})
	}
}

func TestStationKnownMisrecognitions(t *testing.T) {
	t.Parallel()

	// These are real transcriptions the recognizer produced for
	// "Johann-Kutschera-Gasse".
	for _, text := range []string{"gute radar", "q terrasse", "butter gast", "code straße"} {
		station, ok := Station(Input{Text: text}, true)
		require.True(t, ok, "text %q", text)
		assert.Equal(t, models.StationJKG, station)
	}
}

func TestStationNoMatchIsNotAnError(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "stephansplatz", "irgendwas ganz anderes"} {
		_, ok := Station(Input{Text: text}, true)
		assert.False(t, ok, "text %q", text)
	}

	// A structured id outside the station universe falls through to text
	// matching, not to an error.
	station, ok := Station(Input{ResolvedID: "XYZ", Text: "nord"}, true)
	require.True(t, ok)
	assert.Equal(t, models.StationNOR, station)
}

func TestVehicle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     Input
		want   models.VehicleType
		wantOK bool
	}{
		{Input{ResolvedID: "BUS"}, models.VehicleBus, true},
		{Input{ResolvedID: "TRAM"}, models.VehicleTram, true},
		{Input{ResolvedID: "UBAHN"}, models.VehicleMetro, true},
		// Free text is never trusted for vehicle categories.
		{Input{Text: "bus"}, "", false},
		{Input{}, "", false},
	}

	for _, tt := range tests {
		vehicle, ok := Vehicle(tt.in)
		assert.Equal(t, tt.wantOK, ok)
		assert.Equal(t, tt.want, vehicle)
	}
}
