package form

// InputKind mirrors the widget type used to edit a field.
type InputKind string

const (
	InputEmail    InputKind = "email"
	InputText     InputKind = "text"
	InputNumber   InputKind = "number"
	InputTextArea InputKind = "textarea"
)

// Field describes one form widget and its native constraints.
type Field struct {
	Name        string
	Label       string
	Kind        InputKind
	Required    bool
	Min         int
	Max         int
	Placeholder string
}

var fields = []Field{
	{Name: FieldEmail, Label: "Email", Kind: InputEmail, Required: true, Placeholder: "Enter your email address"},
	{Name: FieldSandbox, Label: "Sandbox", Kind: InputText},
	{Name: FieldSchemaID, Label: "Schema ID", Kind: InputText},
	{Name: FieldNumUsers, Label: "Number of Users", Kind: InputNumber, Min: 1, Max: 1000},
	{Name: FieldNumEvents, Label: "Number of Events", Kind: InputNumber, Min: 1, Max: 1000},
	{Name: FieldTimeRangeDays, Label: "Time Range (Days)", Kind: InputNumber, Min: 1, Max: 365},
	{Name: FieldUserPrompt, Label: "User Prompt", Kind: InputTextArea, Placeholder: "Describe the type of data you want to generate"},
}

// Fields returns the form widgets in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the widget for name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
