package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Disc represents one flying disc in a bag
type Disc struct {
	ID       int         `json:"id"`
	Name     string      `json:"disc_name"`
	Brand    string      `json:"brand,omitempty"`
	Speed    FlightValue `json:"speed,omitempty"`
	Glide    FlightValue `json:"glide,omitempty"`
	Turn     FlightValue `json:"turn,omitempty"`
	Fade     FlightValue `json:"fade,omitempty"`
	Category Category    `json:"category,omitempty"`
}

// HasDetails reports whether any of the optional attributes are populated.
func (d Disc) HasDetails() bool {
	return d.Brand != "" || !d.Speed.IsZero() || !d.Glide.IsZero() || !d.Turn.IsZero() || !d.Fade.IsZero()
}

// FlightNumbers formats speed, glide, turn and fade as "9 | 5 | -1 | 2".
// Missing values are shown as "-".
func (d Disc) FlightNumbers() string {
	parts := make([]string, 0, 4)
	for _, v := range []FlightValue{d.Speed, d.Glide, d.Turn, d.Fade} {
		if v.IsZero() {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, v.String())
	}
	return strings.Join(parts, " | ")
}

// FlightValue is an optional flight characteristic. Services send these
// either as JSON numbers or strings, so the original text is kept verbatim.
type FlightValue string

// IsZero reports whether the value was absent or null.
func (v FlightValue) IsZero() bool {
	return v == ""
}

func (v FlightValue) String() string {
	return string(v)
}

// UnmarshalJSON accepts numbers, strings and null.
func (v *FlightValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlightValue(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("flight value must be a number or string: %w", err)
		}
		*v = FlightValue(n.String())
	}
	return nil
}
