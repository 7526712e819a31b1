package models

// Types around the Wiener Linien real-time API. Weird or inconsistent field
// notations are taken 1:1 from the upstream API.
// https://www.data.gv.at/katalog/dataset/522d3045-0b37-48d0-b868-57c99726b1c4

type VehicleType string

const (
	VehicleBus   VehicleType = "BUS"
	VehicleTram  VehicleType = "TRAM"
	VehicleMetro VehicleType = "UBAHN"
)

// StationID identifies one of the supported stop clusters around Aspern
// Seestadt. The Wiener Linien network has over 5,300 stations; only these
// are part of the skill's universe.
type StationID string

const (
	StationASP StationID = "ASP" // Aspernstraße
	StationHAU StationID = "HAU" // Hausfeldstraße
	StationNOR StationID = "NOR" // Aspern Nord
	StationIBS StationID = "IBS" // reserved, not yet mapped
	StationKRG StationID = "KRG" // reserved, not yet mapped
	StationSEE StationID = "SEE" // Seestadt
	StationCTS StationID = "CTS" // Christine-Touaillon-Straße
	StationMTP StationID = "MTP" // Maria-Trapp-Platz
	StationHAP StationID = "HAP" // Hannah-Arendt-Platz
	StationJKG StationID = "JKG" // Johann-Kutschera-Gasse
)

// LineID identifies a supported line. The value doubles as the spoken name.
type LineID string

const (
	LineU2  LineID = "U2"
	Line26A LineID = "26A"
	Line84A LineID = "84A"
	Line88A LineID = "88A"
	Line88B LineID = "88B"
	Line89A LineID = "89A"
	Line93A LineID = "93A"
	Line97A LineID = "97A"
	Line98A LineID = "98A"
)

type DepartureTime struct {
	TimePlanned string `json:"timePlanned"`
	TimeReal    string `json:"timeReal"`
	// Countdown is nil when the feed omits it; such departures are invalid.
	Countdown *int `json:"countdown"`
}

type Departure struct {
	DepartureTime DepartureTime `json:"departureTime"`
}

// MonitorLine is one directional record for a line at a stop. The same line
// appears once per platform/direction in a monitor response.
type MonitorLine struct {
	Name       string `json:"name"`
	Towards    string `json:"towards"`
	Direction  string `json:"direction"`
	Platform   string `json:"platform"`
	Departures struct {
		Departure []Departure `json:"departure"`
	} `json:"departures"`
}

type Monitor struct {
	Lines []MonitorLine `json:"lines"`
}

type MonitorResponse struct {
	Data struct {
		Monitors []Monitor `json:"monitors"`
	} `json:"data"`
	Message struct {
		Value       string `json:"value"`
		MessageCode int    `json:"messageCode"`
		ServerTime  string `json:"serverTime"`
	} `json:"message"`
}

type ElevatorInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}
