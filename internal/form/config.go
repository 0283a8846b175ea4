package form

import (
	"errors"
	"fmt"
)

// Field names as they appear in the form and in the request body.
const (
	FieldEmail         = "email"
	FieldSandbox       = "sandbox"
	FieldSchemaID      = "schema_id"
	FieldNumUsers      = "num_users"
	FieldNumEvents     = "num_events"
	FieldTimeRangeDays = "time_range_days"
	FieldUserPrompt    = "user_prompt"
)

// ErrUnknownField is returned by SetField for names the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// FormConfig holds the generation parameters as entered. Numeric fields keep
// the raw widget text and are only coerced when a request is built.
type FormConfig struct {
	Email         string `json:"email" yaml:"email"`
	Sandbox       string `json:"sandbox" yaml:"sandbox"`
	SchemaID      string `json:"schema_id" yaml:"schema_id"`
	NumUsers      string `json:"num_users" yaml:"num_users"`
	NumEvents     string `json:"num_events" yaml:"num_events"`
	TimeRangeDays string `json:"time_range_days" yaml:"time_range_days"`
	UserPrompt    string `json:"user_prompt" yaml:"user_prompt"`
}

// Defaults returns the form as it looks when first shown.
func Defaults() FormConfig {
	return FormConfig{
		Email:         "",
		Sandbox:       "sandbox123",
		SchemaID:      "schema_xyz_001",
		NumUsers:      "100",
		NumEvents:     "100",
		TimeRangeDays: "30",
		UserPrompt:    "Generate basic commerce analytics data for testing",
	}
}

// Get returns the value of the named field.
func (c FormConfig) Get(name string) (string, error) {
	p, err := c.ptr(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// With returns a copy of c with exactly one field replaced.
func (c FormConfig) With(name, value string) (FormConfig, error) {
	p, err := c.ptr(name)
	if err != nil {
		return c, err
	}
	*p = value
	return c, nil
}

// ptr resolves a field name against the receiver copy.
func (c *FormConfig) ptr(name string) (*string, error) {
	switch name {
	case FieldEmail:
		return &c.Email, nil
	case FieldSandbox:
		return &c.Sandbox, nil
	case FieldSchemaID:
		return &c.SchemaID, nil
	case FieldNumUsers:
		return &c.NumUsers, nil
	case FieldNumEvents:
		return &c.NumEvents, nil
	case FieldTimeRangeDays:
		return &c.TimeRangeDays, nil
	case FieldUserPrompt:
		return &c.UserPrompt, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
