package submit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/form"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		nan  bool
	}{
		{in: "50", want: 50},
		{in: "  42", want: 42},
		{in: "\t\n7", want: 7},
		{in: "-5", want: -5},
		{in: "+9", want: 9},
		{in: "3.9", want: 3},
		{in: "12abc", want: 12},
		{in: "1e3", want: 1},
		{in: "0x1F", want: 31},
		{in: "007", want: 7},
		{in: "", nan: true},
		{in: "abc", nan: true},
		{in: "-", nan: true},
		{in: "0x", nan: true},
		{in: ".5", nan: true},
		{in: "99999999999999999999", nan: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseInt(tt.in)
			if tt.nan {
				assert.True(t, got.IsNaN(), "expected NaN, got %s", got)
				return
			}
			n, ok := got.Int()
			require.True(t, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestBuildRequestDefaults(t *testing.T) {
	cfg := form.Defaults()
	cfg.Email = "ada@example.com"

	data, err := json.Marshal(BuildRequest(cfg))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"event_type": "web_data_new",
		"event_types": ["page_view", "add_to_cart", "purchase"],
		"num_users": 100,
		"num_events": 100,
		"time_range_days": 30,
		"output_format": "json",
		"email": "ada@example.com",
		"sandbox": "sandbox123",
		"schema_id": "schema_xyz_001",
		"user_prompt": "Generate basic commerce analytics data for testing"
	}`, string(data))
}

func TestBuildRequestCoercesNumbers(t *testing.T) {
	cfg := form.Defaults()
	cfg.NumUsers = "50"
	cfg.NumEvents = "many"

	req := BuildRequest(cfg)
	n, ok := req.NumUsers.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(50), n)
	assert.True(t, req.NumEvents.IsNaN())

	var body map[string]interface{}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, float64(50), body["num_users"])
	v, present := body["num_events"]
	assert.True(t, present, "NaN fields stay in the payload")
	assert.Nil(t, v)
}

func TestBuildRequestCopiesStringsVerbatim(t *testing.T) {
	cfg := form.FormConfig{
		Email:      "  spaced@example.com ",
		Sandbox:    "",
		SchemaID:   "<b>schema</b>",
		UserPrompt: "line one\nline two",
	}
	req := BuildRequest(cfg)
	assert.Equal(t, cfg.Email, req.Email)
	assert.Equal(t, cfg.Sandbox, req.Sandbox)
	assert.Equal(t, cfg.SchemaID, req.SchemaID)
	assert.Equal(t, cfg.UserPrompt, req.UserPrompt)
	assert.Equal(t, apimodels.OutputFormatJSON, req.OutputFormat)
}

func TestBuildRequestEventTypesNotShared(t *testing.T) {
	req := BuildRequest(form.Defaults())
	req.EventTypes[0] = "mutated"
	assert.Equal(t, "page_view", apimodels.DefaultEventTypes[0])
}
