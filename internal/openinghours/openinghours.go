// Package openinghours evaluates and renders StadtKatalog weekly schedules.
// A schedule is a JSON object mapping weekday keys ("mon".."sun", "hol" for
// holidays) to lists of "HH:MM-HH:MM" time frames.
package openinghours

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type WeekdayFormat int

const (
	WeekdayLong WeekdayFormat = iota
	WeekdayShort
)

// FoldConfig controls how a schedule is rendered into one localized string.
type FoldConfig struct {
	// ClosedPlaceholder is printed for days without any time frame.
	ClosedPlaceholder string
	// HolidayPrefix labels the holiday schedule line.
	HolidayPrefix string
	// Hyphen joins the first and last weekday of a day range.
	Hyphen string
	// TimeFrameFormat renders one frame; {start} and {end} are substituted.
	TimeFrameFormat string
	// TimeFrameDelimiter joins multiple frames of one day.
	TimeFrameDelimiter string
	WeekdayFormat      WeekdayFormat
}

type timeFrame struct {
	start int // minutes since midnight
	end   int
	raw   [2]string
}

// Hours is a parsed weekly schedule bound to the business's time zone.
type Hours struct {
	loc     *time.Location
	days    map[time.Weekday][]timeFrame
	holiday []timeFrame
	known   bool
}

var dayKeys = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

var weekdayNames = map[time.Weekday][2]string{
	time.Monday:    {"Montag", "Mo"},
	time.Tuesday:   {"Dienstag", "Di"},
	time.Wednesday: {"Mittwoch", "Mi"},
	time.Thursday:  {"Donnerstag", "Do"},
	time.Friday:    {"Freitag", "Fr"},
	time.Saturday:  {"Samstag", "Sa"},
	time.Sunday:    {"Sonntag", "So"},
}

// Week starts on Monday for rendering purposes.
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// New parses a schedule specification. An empty or unparsable specification
// yields unknown hours rather than an error; the directory regularly carries
// entries without usable hours.
func New(schedule string, timezone string) *Hours {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	h := &Hours{loc: loc, days: make(map[time.Weekday][]timeFrame)}

	if strings.TrimSpace(schedule) == "" {
		return h
	}

	var raw map[string][]string
	if err := json.Unmarshal([]byte(schedule), &raw); err != nil {
		return h
	}

	for key, frames := range raw {
		parsed := make([]timeFrame, 0, len(frames))
		for _, frame := range frames {
			tf, ok := parseFrame(frame)
			if !ok {
				continue
			}
			parsed = append(parsed, tf)
		}

		if key == "hol" {
			h.holiday = parsed
			h.known = true
			continue
		}
		if day, ok := dayKeys[key]; ok {
			h.days[day] = parsed
			h.known = true
		}
	}

	return h
}

func parseFrame(s string) (timeFrame, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return timeFrame{}, false
	}

	start, ok1 := parseClock(strings.TrimSpace(parts[0]))
	end, ok2 := parseClock(strings.TrimSpace(parts[1]))
	if !ok1 || !ok2 {
		return timeFrame{}, false
	}

	return timeFrame{
		start: start,
		end:   end,
		raw:   [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])},
	}, true
}

func parseClock(s string) (int, bool) {
	// "24:00" marks end-of-day and is not a valid clock reading.
	if s == "24:00" {
		return 24 * 60, true
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// IsUnknown reports whether no usable schedule is on file.
func (h *Hours) IsUnknown() bool {
	return !h.known
}

// IsOpenAt evaluates the schedule at the given instant in the business's
// time zone. Frames ending at or before their start span midnight.
func (h *Hours) IsOpenAt(t time.Time) bool {
	if h.IsUnknown() {
		return false
	}

	local := t.In(h.loc)
	minutes := local.Hour()*60 + local.Minute()

	for _, tf := range h.days[local.Weekday()] {
		if tf.end > tf.start {
			if minutes >= tf.start && minutes < tf.end {
				return true
			}
		} else if minutes >= tf.start {
			return true
		}
	}

	// An overnight frame from the previous day may still be open.
	previous := local.AddDate(0, 0, -1).Weekday()
	for _, tf := range h.days[previous] {
		if tf.end <= tf.start && minutes < tf.end {
			return true
		}
	}

	return false
}

// Fold renders the weekly schedule into one string, one line per day range.
// Consecutive days sharing the same frames are collapsed into a range joined
// by cfg.Hyphen. Each line carries a "label: frames" shape; callers strip
// the colon when embedding the text into spoken sentences.
func (h *Hours) Fold(cfg FoldConfig) string {
	if h.IsUnknown() {
		return ""
	}

	var lines []string
	for start := 0; start < len(weekOrder); {
		day := weekOrder[start]
		end := start
		for end+1 < len(weekOrder) && sameFrames(h.days[weekOrder[end+1]], h.days[day]) {
			end++
		}

		label := h.dayLabel(weekOrder[start], cfg)
		if end > start {
			label += cfg.Hyphen + h.dayLabel(weekOrder[end], cfg)
		}

		lines = append(lines, label+": "+h.renderFrames(h.days[day], cfg))
		start = end + 1
	}

	if h.holiday != nil {
		lines = append(lines, cfg.HolidayPrefix+": "+h.renderFrames(h.holiday, cfg))
	}

	return strings.Join(lines, "\n")
}

func (h *Hours) dayLabel(day time.Weekday, cfg FoldConfig) string {
	names := weekdayNames[day]
	if cfg.WeekdayFormat == WeekdayShort {
		return names[1]
	}
	return names[0]
}

func (h *Hours) renderFrames(frames []timeFrame, cfg FoldConfig) string {
	if len(frames) == 0 {
		return cfg.ClosedPlaceholder
	}

	rendered := make([]string, len(frames))
	for i, tf := range frames {
		s := strings.ReplaceAll(cfg.TimeFrameFormat, "{start}", tf.raw[0])
		rendered[i] = strings.ReplaceAll(s, "{end}", tf.raw[1])
	}

	return strings.Join(rendered, cfg.TimeFrameDelimiter)
}

func sameFrames(a, b []timeFrame) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].raw != b[i].raw {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debug logging.
func (h *Hours) String() string {
	if h.IsUnknown() {
		return "unknown hours"
	}
	return fmt.Sprintf("hours in %s over %d days", h.loc, len(h.days))
}
