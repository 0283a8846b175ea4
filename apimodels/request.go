package apimodels

import (
	"strconv"
)

const (
	// EventTypeWebDataNew tags every generation request.
	EventTypeWebDataNew = "web_data_new"

	// OutputFormatJSON is the only output format the generator is asked for.
	OutputFormatJSON = "json"
)

// DefaultEventTypes are the event labels requested from the generator, in order.
var DefaultEventTypes = []string{"page_view", "add_to_cart", "purchase"}

// GenerateRequest is the body POSTed to every candidate endpoint.
type GenerateRequest struct {
	// Fixed tag identifying the request kind
	EventType string `json:"event_type" yaml:"event_type"`

	// Event labels to generate
	EventTypes []string `json:"event_types" yaml:"event_types"`

	NumUsers      Count `json:"num_users" yaml:"num_users"`
	NumEvents     Count `json:"num_events" yaml:"num_events"`
	TimeRangeDays Count `json:"time_range_days" yaml:"time_range_days"`

	// Always "json"
	OutputFormat string `json:"output_format" yaml:"output_format"`

	Email      string `json:"email" yaml:"email"`
	Sandbox    string `json:"sandbox" yaml:"sandbox"`
	SchemaID   string `json:"schema_id" yaml:"schema_id"`
	UserPrompt string `json:"user_prompt" yaml:"user_prompt"`
}

// Count is an integer that may also hold the not-a-number sentinel produced
// when a numeric field cannot be parsed. The sentinel encodes as JSON null.
type Count struct {
	value int64
	valid bool
}

// IntCount returns a Count holding n.
func IntCount(n int64) Count {
	return Count{value: n, valid: true}
}

// NaN returns the not-a-number sentinel.
func NaN() Count {
	return Count{}
}

// Int returns the integer value and whether the count is a number at all.
func (c Count) Int() (int64, bool) {
	return c.value, c.valid
}

// IsNaN reports whether c is the not-a-number sentinel.
func (c Count) IsNaN() bool {
	return !c.valid
}

func (c Count) String() string {
	if !c.valid {
		return "NaN"
	}
	return strconv.FormatInt(c.value, 10)
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, c.value, 10), nil
}

// MarshalYAML keeps the sentinel readable in yaml output.
func (c Count) MarshalYAML() (interface{}, error) {
	if !c.valid {
		return nil, nil
	}
	return c.value, nil
}
