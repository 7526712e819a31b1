// Package transit queries the Wiener Linien real-time API and merges the
// directional monitor records into per-line announcements.
package transit

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stadtbots/seestadt-skill/internal/models"
	"github.com/stadtbots/seestadt-skill/pkg/http/client"
)

// Provider-injected non-journeys carry this marker in their destination
// text and must never be announced.
const doNotBoardMarker = "nicht einsteigen"

// lineNames maps the API's line name strings to internal line ids.
var lineNames = map[string]models.LineID{
	"U2":  models.LineU2,
	"26A": models.Line26A,
	"84A": models.Line84A,
	"88A": models.Line88A,
	"88B": models.Line88B,
	"89A": models.Line89A,
	"93A": models.Line93A,
	"97A": models.Line97A,
	"98A": models.Line98A,
}

// LineForName maps a Wiener Linien line name to the internal line id.
func LineForName(name string) (models.LineID, bool) {
	id, ok := lineNames[name]
	return id, ok
}

// Monitor fetches real-time departure data. RBLs are more or less station
// ids (Rechnergesteuertes Betriebsleitsystem), one per line and direction.
// https://www.data.gv.at/katalog/dataset/wiener-linien-echtzeitdaten-via-datendrehscheibe-wien
type Monitor struct {
	httpClient   *client.Client
	monitorPath  string
	elevatorPath string
}

func NewMonitor(httpClient *client.Client, monitorPath, elevatorPath string) *Monitor {
	return &Monitor{
		httpClient:   httpClient,
		monitorPath:  monitorPath,
		elevatorPath: elevatorPath,
	}
}

// StationInfo queries the monitor endpoint for all given RBLs in one request
// and merges the response into a per-line map. Any transport failure, non-200
// status or unexpected body shape is ErrUnavailable; there is no partial
// success.
func (m *Monitor) StationInfo(ctx context.Context, rbls []string) (*models.LineMap, error) {
	q := make(url.Values, 1)
	for _, rbl := range rbls {
		q.Add("rbl", rbl)
	}

	resp, err := m.httpClient.Get(ctx, m.monitorPath+"?"+q.Encode())
	if err != nil {
		log.Error().Err(err).Msg("could not read from wiener linien monitor")
		return nil, ErrUnavailable
	}
	if resp.StatusCode != 200 {
		log.Error().Int("status", resp.StatusCode).Msg("wiener linien monitor returned non-200")
		return nil, ErrUnavailable
	}

	var monitorResp models.MonitorResponse
	if err := json.Unmarshal(resp.Body, &monitorResp); err != nil {
		log.Error().Err(err).Msg("malformed wiener linien monitor response")
		return nil, ErrUnavailable
	}
	if monitorResp.Data.Monitors == nil {
		log.Error().Msg("wiener linien monitor response has no monitors")
		return nil, ErrUnavailable
	}

	lineMap := models.NewLineMap()
	for _, monitor := range monitorResp.Data.Monitors {
		for _, line := range monitor.Lines {
			lineID, ok := LineForName(line.Name)
			if !ok {
				log.Warn().Str("line", line.Name).Msg("could not map wiener linien line to an internal id")
				continue
			}

			// Filters nonsense entries which should never land in the public
			// API. The line itself stays registered so the answer can report
			// it as having no data.
			if strings.Contains(strings.ToLower(line.Towards), doNotBoardMarker) {
				lineMap.Ensure(lineID)
				continue
			}

			lineMap.Append(lineID, line)
		}
	}

	return lineMap, nil
}

// ElevatorInfo queries elevator disruption notices for the given RBLs. The
// lookup is best effort; on failure it returns no notices rather than an
// error, since elevator status is secondary information.
func (m *Monitor) ElevatorInfo(ctx context.Context, rbls []string) []models.ElevatorInfo {
	q := make(url.Values, 1)
	for _, rbl := range rbls {
		q.Add("relatedStop", rbl)
	}

	sep := "?"
	if strings.Contains(m.elevatorPath, "?") {
		sep = "&"
	}

	resp, err := m.httpClient.Get(ctx, m.elevatorPath+sep+q.Encode())
	if err != nil {
		log.Error().Err(err).Msg("could not read elevator info")
		return nil
	}
	if resp.StatusCode != 200 {
		log.Error().Int("status", resp.StatusCode).Msg("elevator info returned non-200")
		return nil
	}

	var body struct {
		Data struct {
			TrafficInfos []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Attributes  struct {
					Status string `json:"status"`
					Reason string `json:"reason"`
				} `json:"attributes"`
			} `json:"trafficInfos"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		log.Error().Err(err).Msg("malformed elevator info response")
		return nil
	}

	var infos []models.ElevatorInfo
	for _, ti := range body.Data.TrafficInfos {
		info := models.ElevatorInfo{
			Title:       ti.Title,
			Description: ti.Description,
			Status:      ti.Attributes.Status,
		}
		if ti.Attributes.Reason != "" {
			info.Status = ti.Attributes.Reason
		}
		infos = append(infos, info)
	}

	return infos
}
