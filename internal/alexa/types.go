// Package alexa dispatches Alexa skill requests to intent handlers and
// builds the response envelopes. Signature and timestamp verification happen
// upstream in the Lambda trigger; this package only sees verified requests.
package alexa

import "github.com/stadtbots/seestadt-skill/internal/resolver"

const resolutionMatch = "ER_SUCCESS_MATCH"

type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

type Session struct {
	SessionID string `json:"sessionId"`
	User      User   `json:"user"`
}

type User struct {
	UserID string `json:"userId"`
}

type Request struct {
	Type   string        `json:"type"`
	Intent Intent        `json:"intent"`
	Reason string        `json:"reason,omitempty"`
	Error  *SessionError `json:"error,omitempty"`
}

type SessionError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	Resolutions *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	ResolutionsPerAuthority []Resolution `json:"resolutionsPerAuthority"`
}

type Resolution struct {
	Status struct {
		Code string `json:"code"`
	} `json:"status"`
	Values []ResolutionValue `json:"values"`
}

type ResolutionValue struct {
	Value struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"value"`
}

// resolvedID returns the platform's disambiguated value id when exactly one
// high-confidence match was reported.
func (s Slot) resolvedID() string {
	if s.Resolutions == nil {
		return ""
	}
	for _, res := range s.Resolutions.ResolutionsPerAuthority {
		if res.Status.Code == resolutionMatch && len(res.Values) == 1 {
			return res.Values[0].Value.ID
		}
	}
	return ""
}

// ResolverInput converts a slot to the resolver's platform-neutral input.
func (s Slot) ResolverInput() resolver.Input {
	return resolver.Input{
		ResolvedID: s.resolvedID(),
		Text:       s.Value,
	}
}
