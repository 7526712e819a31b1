// Package registry holds the fixed public-transport tables for Aspern
// Seestadt: which lines serve which station, the RBL ids used to query the
// real-time monitor, display names and way times. The tables are built once
// at startup and never mutated.
package registry

import (
	"fmt"

	"github.com/stadtbots/seestadt-skill/internal/models"
)

// UnknownStationError reports a lookup for a station without a registry
// entry. This never happens for members of the supported-station set; seeing
// it means the tables are out of sync with the caller.
type UnknownStationError struct {
	Station models.StationID
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("station %q has no mapping to lines", string(e.Station))
}

// LineRBLs maps one line at a station to its RBL ids, one per
// platform/direction.
type LineRBLs struct {
	Line models.LineID
	RBLs []string
}

type Registry struct {
	stationLines    map[models.StationID][]LineRBLs
	names           map[models.StationID]string
	metroLines      []models.LineID
	tramLines       []models.LineID
	busLines        []models.LineID
	supportedLines  map[models.LineID]bool
	stations        []models.StationID
	elevator        []models.StationID
	flotte          map[models.StationID][]string
	busRideToU2     map[models.StationID]int
	walkingTimeToU2 map[models.StationID]int
	u2CirclePenalty int
}

// New builds the registry tables. RBL values come from the Wiener Linien
// open data stop catalogue.
// https://www.data.gv.at/katalog/dataset/522d3045-0b37-48d0-b868-57c99726b1c4
func New() *Registry {
	r := &Registry{
		metroLines: []models.LineID{models.LineU2},
		// There are no tram lines in the Seestadt yet.
		tramLines: nil,
		busLines: []models.LineID{
			models.Line26A,
			models.Line84A,
			models.Line88A,
			models.Line88B,
			models.Line89A,
			models.Line93A,
			models.Line97A,
			models.Line98A,
		},
		stations: []models.StationID{
			models.StationASP,
			models.StationHAU,
			models.StationNOR,
			models.StationSEE,
			models.StationCTS,
			models.StationMTP,
			models.StationHAP,
			models.StationJKG,
		},
		elevator: []models.StationID{
			models.StationSEE,
			models.StationNOR,
			models.StationHAU,
			models.StationASP,
		},
		names: map[models.StationID]string{
			models.StationASP: "Aspernstraße",
			models.StationHAU: "Hausfeldstraße",
			models.StationNOR: "Aspern Nord",
			models.StationSEE: "Seestadt",
			models.StationCTS: "Christine-Touaillon-Straße",
			models.StationMTP: "Maria-Trapp-Platz",
			models.StationHAP: "Hannah-Arendt-Platz",
			models.StationJKG: "Johann-Kutschera-Gasse",
		},
		stationLines: map[models.StationID][]LineRBLs{
			models.StationASP: {
				{Line: models.LineU2, RBLs: []string{"4251", "4272"}},
				{Line: models.Line93A, RBLs: []string{"8054", "8054"}},
				{Line: models.Line84A, RBLs: []string{"8682"}},
				{Line: models.Line88A, RBLs: []string{"8683", "8683"}},
				{Line: models.Line26A, RBLs: []string{"1024", "1052"}},
				{Line: models.Line97A, RBLs: []string{"8055", "8055"}},
				{Line: models.Line98A, RBLs: []string{"8682", "8682", "2823"}},
				{Line: models.Line89A, RBLs: []string{"8685", "8685"}},
			},
			models.StationHAU: {
				{Line: models.LineU2, RBLs: []string{"4279", "4274"}},
			},
			models.StationNOR: {
				{Line: models.LineU2, RBLs: []string{"4278", "4275"}},
			},
			models.StationSEE: {
				{Line: models.LineU2, RBLs: []string{"4277", "4276"}},
				{Line: models.Line88A, RBLs: []string{"3319"}},
				{Line: models.Line88B, RBLs: []string{"3319"}},
				{Line: models.Line84A, RBLs: []string{"3365"}},
			},
			models.StationCTS: {
				{Line: models.Line88A, RBLs: []string{"3320", "3323"}},
				{Line: models.Line88B, RBLs: []string{"3320", "3323"}},
			},
			models.StationMTP: {
				{Line: models.Line84A, RBLs: []string{"3358", "3364"}},
			},
			models.StationHAP: {
				{Line: models.Line84A, RBLs: []string{"3359", "3363"}},
			},
			models.StationJKG: {
				{Line: models.Line84A, RBLs: []string{"3360", "3362"}},
			},
		},
		// Carsharing ("Flotte") station ids near the stops.
		flotte: map[models.StationID][]string{
			models.StationJKG: {"10007"},
			models.StationHAP: {"10003"},
			models.StationSEE: {"10000"},
		},
		// Travel time for passengers using the line 84A to the U2 platform.
		busRideToU2: map[models.StationID]int{
			models.StationJKG: 7,
			models.StationHAP: 6,
			models.StationMTP: 3,
		},
		// Walking time from a bus station to the U2 platform.
		walkingTimeToU2: map[models.StationID]int{
			models.StationJKG: 12,
			models.StationHAP: 9,
			models.StationMTP: 5,
		},
		// Round trip U2 Seestadt => Aspern Nord => Hausfeldstrasse => Aspernstrasse.
		u2CirclePenalty: 4,
	}

	r.supportedLines = make(map[models.LineID]bool)
	for _, lines := range [][]models.LineID{r.metroLines, r.tramLines, r.busLines} {
		for _, l := range lines {
			r.supportedLines[l] = true
		}
	}

	return r
}

// RBLsForStation returns the RBL ids for a station. A station has one RBL per
// line and direction; the optional line filter restricts the result to the
// given lines.
func (r *Registry) RBLsForStation(station models.StationID, lines ...models.LineID) ([]string, error) {
	stationLines, ok := r.stationLines[station]
	if !ok {
		return nil, &UnknownStationError{Station: station}
	}

	filter := make(map[models.LineID]bool, len(lines))
	for _, l := range lines {
		filter[l] = true
	}

	var rbls []string
	for _, info := range stationLines {
		if len(filter) > 0 && !filter[info.Line] {
			continue
		}
		rbls = append(rbls, info.RBLs...)
	}

	return rbls, nil
}

// StationName returns the speakable station name.
func (r *Registry) StationName(station models.StationID) (string, error) {
	name, ok := r.names[station]
	if !ok {
		return "", &UnknownStationError{Station: station}
	}
	return name, nil
}

// Lines returns the supported lines for one vehicle category.
func (r *Registry) Lines(vehicle models.VehicleType) []models.LineID {
	switch vehicle {
	case models.VehicleMetro:
		return r.metroLines
	case models.VehicleTram:
		return r.tramLines
	case models.VehicleBus:
		return r.busLines
	}
	return nil
}

// SupportedLine reports whether a line is part of the skill's universe.
func (r *Registry) SupportedLine(line models.LineID) bool {
	return r.supportedLines[line]
}

// SupportedStations returns all stations with registry entries.
func (r *Registry) SupportedStations() []models.StationID {
	return r.stations
}

// ElevatorStations returns the stations with elevator infrastructure.
func (r *Registry) ElevatorStations() []models.StationID {
	return r.elevator
}

// HasElevator reports whether elevator status is available for a station.
func (r *Registry) HasElevator(station models.StationID) bool {
	for _, s := range r.elevator {
		if s == station {
			return true
		}
	}
	return false
}

// FlotteIDs returns the carsharing station ids near a stop, if any.
func (r *Registry) FlotteIDs(station models.StationID) []string {
	return r.flotte[station]
}

// BusRideToSeestadt returns the 84A travel time in minutes from a bus stop
// to the U2 Seestadt platform.
func (r *Registry) BusRideToSeestadt(station models.StationID) (int, bool) {
	m, ok := r.busRideToU2[station]
	return m, ok
}

// WalkingTimeToSeestadt returns the walking time in minutes from a bus stop
// to the U2 Seestadt platform.
func (r *Registry) WalkingTimeToSeestadt(station models.StationID) (int, bool) {
	m, ok := r.walkingTimeToU2[station]
	return m, ok
}

// U2CirclePenalty returns the detour time in minutes for the U2 loop via
// Aspern Nord and Hausfeldstraße.
func (r *Registry) U2CirclePenalty() int {
	return r.u2CirclePenalty
}
