package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtbots/seestadt-skill/internal/models"
)

func TestLookupsAreTotalOverSupportedStations(t *testing.T) {
	t.Parallel()

	reg := New()

	for _, station := range reg.SupportedStations() {
		name, err := reg.StationName(station)
		require.NoError(t, err, "station %s must have a display name", station)
		assert.NotEmpty(t, name)

		rbls, err := reg.RBLsForStation(station)
		require.NoError(t, err, "station %s must have RBLs", station)
		assert.NotEmpty(t, rbls, "station %s must serve at least one line", station)
	}
}

func TestUnknownStation(t *testing.T) {
	t.Parallel()

	reg := New()

	// IBS is reserved in the id space but has no registry entry yet.
	_, err := reg.RBLsForStation(models.StationIBS)
	var unknownErr *UnknownStationError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, models.StationIBS, unknownErr.Station)

	_, err = reg.StationName("XXX")
	assert.ErrorAs(t, err, &unknownErr)
}

func TestRBLsForStationLineFilter(t *testing.T) {
	t.Parallel()

	reg := New()

	tests := []struct {
		name    string
		station models.StationID
		lines   []models.LineID
		want    []string
	}{
		{
			name:    "no filter returns all RBLs in table order",
			station: models.StationSEE,
			want:    []string{"4277", "4276", "3319", "3319", "3365"},
		},
		{
			name:    "metro filter",
			station: models.StationSEE,
			lines:   []models.LineID{models.LineU2},
			want:    []string{"4277", "4276"},
		},
		{
			name:    "bus filter keeps duplicate platform ids",
			station: models.StationCTS,
			lines:   []models.LineID{models.Line88A, models.Line88B},
			want:    []string{"3320", "3323", "3320", "3323"},
		},
		{
			name:    "filter with no matching line",
			station: models.StationHAU,
			lines:   []models.LineID{models.Line84A},
			want:    nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rbls, err := reg.RBLsForStation(tt.station, tt.lines...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rbls)
		})
	}
}

func TestLinesPerVehicle(t *testing.T) {
	t.Parallel()

	reg := New()

	assert.Equal(t, []models.LineID{models.LineU2}, reg.Lines(models.VehicleMetro))
	assert.Empty(t, reg.Lines(models.VehicleTram))
	assert.Len(t, reg.Lines(models.VehicleBus), 8)

	assert.True(t, reg.SupportedLine(models.LineU2))
	assert.True(t, reg.SupportedLine(models.Line88B))
	assert.False(t, reg.SupportedLine("71"))
}

func TestWayTimes(t *testing.T) {
	t.Parallel()

	reg := New()

	ride, ok := reg.BusRideToSeestadt(models.StationJKG)
	require.True(t, ok)
	assert.Equal(t, 7, ride)

	walk, ok := reg.WalkingTimeToSeestadt(models.StationMTP)
	require.True(t, ok)
	assert.Equal(t, 5, walk)

	_, ok = reg.BusRideToSeestadt(models.StationSEE)
	assert.False(t, ok)

	assert.Equal(t, 4, reg.U2CirclePenalty())
	assert.Equal(t, []string{"10000"}, reg.FlotteIDs(models.StationSEE))
}
