package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFieldChangesExactlyOneField(t *testing.T) {
	for _, f := range Fields() {
		t.Run(f.Name, func(t *testing.T) {
			h := NewHolder()
			before := h.Config()

			require.NoError(t, h.SetField(f.Name, "changed-"+f.Name))
			after := h.Config()

			want, err := before.With(f.Name, "changed-"+f.Name)
			require.NoError(t, err)
			if diff := cmp.Diff(want, after); diff != "" {
				t.Fatalf("unexpected config (-want +got):\n%s", diff)
			}

			for _, other := range Fields() {
				if other.Name == f.Name {
					continue
				}
				b, _ := before.Get(other.Name)
				a, _ := after.Get(other.Name)
				assert.Equal(t, b, a, "field %s should not change", other.Name)
			}
		})
	}
}

func TestSetFieldStoresValuesUnvalidated(t *testing.T) {
	h := NewHolder()
	require.NoError(t, h.SetField(FieldNumUsers, "not a number"))
	require.NoError(t, h.SetField(FieldEmail, "nope"))

	cfg := h.Config()
	assert.Equal(t, "not a number", cfg.NumUsers)
	assert.Equal(t, "nope", cfg.Email)
}

func TestSetFieldUnknownName(t *testing.T) {
	h := NewHolder()
	err := h.SetField("colour", "blue")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, Defaults(), h.Config())
}

func TestDefaults(t *testing.T) {
	want := FormConfig{
		Sandbox:       "sandbox123",
		SchemaID:      "schema_xyz_001",
		NumUsers:      "100",
		NumEvents:     "100",
		TimeRangeDays: "30",
		UserPrompt:    "Generate basic commerce analytics data for testing",
	}
	if diff := cmp.Diff(want, Defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginGuardsPending(t *testing.T) {
	h := NewHolder()
	assert.Equal(t, StatusIdle, h.Outcome().Status)

	h.Complete(Failure("boom"))
	assert.True(t, h.Begin())
	o := h.Outcome()
	assert.True(t, o.Pending())
	assert.Empty(t, o.Error, "begin clears the previous error")

	assert.False(t, h.Begin())

	h.Complete(Success(map[string]interface{}{"ok": true}, `{"ok":true}`))
	assert.Equal(t, StatusSuccess, h.Outcome().Status)
	assert.True(t, h.Begin())
}

func TestMarkPendingIgnoresInFlight(t *testing.T) {
	h := NewHolder()
	h.MarkPending()
	h.MarkPending()
	assert.True(t, h.Outcome().Pending())
}
