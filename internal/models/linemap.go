package models

// LineMap collects directional monitor records per line while remembering the
// order in which lines were first seen. Records for the same line coming from
// different platforms are appended in encounter order and never deduplicated;
// two directions are distinct announcements even for the same line.
type LineMap struct {
	order []LineID
	lines map[LineID][]MonitorLine
}

func NewLineMap() *LineMap {
	return &LineMap{lines: make(map[LineID][]MonitorLine)}
}

func (m *LineMap) Append(id LineID, line MonitorLine) {
	m.Ensure(id)
	m.lines[id] = append(m.lines[id], line)
}

// Ensure registers a line without adding a record. A line whose only entries
// were filtered still needs to show up so the answer can say that no data is
// available for it.
func (m *LineMap) Ensure(id LineID) {
	if _, ok := m.lines[id]; !ok {
		m.order = append(m.order, id)
		m.lines[id] = []MonitorLine{}
	}
}

// Get returns the directional records for a line in encounter order.
func (m *LineMap) Get(id LineID) []MonitorLine {
	return m.lines[id]
}

// Lines returns the line ids in first-seen order.
func (m *LineMap) Lines() []LineID {
	return m.order
}

func (m *LineMap) Len() int {
	return len(m.order)
}
