package form

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

// ValidateField applies the widget constraints of name to value: required,
// email syntax and numeric bounds. Browsers enforce these natively; the
// terminal form calls this instead.
func ValidateField(name, value string) error {
	f, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	if f.Required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", f.Label)
	}

	switch f.Kind {
	case InputEmail:
		if value == "" {
			return nil
		}
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value || !strings.Contains(value, "@") {
			return fmt.Errorf("%s must be an email address", f.Label)
		}
	case InputNumber:
		if value == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be a number", f.Label)
		}
		if n < f.Min || n > f.Max {
			return fmt.Errorf("%s must be between %d and %d", f.Label, f.Min, f.Max)
		}
	}
	return nil
}

// Validate checks every field of cfg and joins the failures.
func Validate(cfg FormConfig) error {
	var errs []error
	for _, f := range fields {
		v, _ := cfg.Get(f.Name)
		if err := ValidateField(f.Name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
