package prompt

import (
	"context"
	"fmt"

	"github.com/sozercan/web-data-gen/internal/form"
)

// Fill asks for every form field in display order, offering the holder's
// current value as the default, and stores each answer with SetField.
// Answers are checked against the field's widget constraints.
func Fill(ctx context.Context, d Driver, h *form.Holder) error {
	for _, f := range form.Fields() {
		current, err := h.Config().Get(f.Name)
		if err != nil {
			return err
		}

		name := f.Name
		validate := func(v string) error { return form.ValidateField(name, v) }

		var answer string
		switch f.Kind {
		case form.InputTextArea:
			answer, err = d.TextArea(ctx, TextAreaConfig{
				Message:   f.Label + ":",
				Default:   current,
				Help:      f.Placeholder,
				Validator: validate,
			})
		default:
			answer, err = d.Input(ctx, InputConfig{
				Message:   label(f),
				Default:   current,
				Help:      help(f),
				Validator: validate,
			})
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}

		if err := h.SetField(f.Name, answer); err != nil {
			return err
		}
	}
	return nil
}

func label(f form.Field) string {
	if f.Required {
		return f.Label + ": *"
	}
	return f.Label + ":"
}

func help(f form.Field) string {
	if f.Kind == form.InputNumber {
		return fmt.Sprintf("a whole number from %d to %d", f.Min, f.Max)
	}
	return f.Placeholder
}
