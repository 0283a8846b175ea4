package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/prompt"
)

// run executes the CLI with an empty config file so the developer's own
// configuration never leaks into tests.
func run(t *testing.T, configYAML string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPayloadDefaults(t *testing.T) {
	out, err := run(t, "", "payload", "-o", "json", "--email", "ada@example.com", "--num-users", "50")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"event_type": "web_data_new",
		"event_types": ["page_view", "add_to_cart", "purchase"],
		"num_users": 50,
		"num_events": 100,
		"time_range_days": 30,
		"output_format": "json",
		"email": "ada@example.com",
		"sandbox": "sandbox123",
		"schema_id": "schema_xyz_001",
		"user_prompt": "Generate basic commerce analytics data for testing"
	}`, out)
}

func TestPayloadNaNTable(t *testing.T) {
	out, err := run(t, "", "payload", "--num-events", "lots")
	require.NoError(t, err)
	assert.Contains(t, out, "NaN")
}

func TestPayloadReadsFormSectionFromConfig(t *testing.T) {
	cfg := "form:\n  email: cfg@example.com\n  sandbox: from-config\n"
	out, err := run(t, cfg, "payload", "-o", "json", "--sandbox", "from-flag")
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "cfg@example.com", body["email"])
	assert.Equal(t, "from-flag", body["sandbox"], "flags win over the config file")
}

func TestSubmitSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"generated":true}`)
	}))
	defer ts.Close()

	out, err := run(t, "", "submit", "-o", "json", "--email", "ada@example.com", "--endpoint", ts.URL)
	require.NoError(t, err)

	var resp apimodels.OutcomeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, map[string]interface{}{"generated": true}, resp.Response)
	assert.Equal(t, `{"generated":true}`, resp.ResponseText)
}

func TestSubmitSendsUserAgent(t *testing.T) {
	agents := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents <- r.UserAgent()
	}))
	defer ts.Close()

	_, err := run(t, "", "submit", "--email", "ada@example.com", "--endpoint", ts.URL, "--user-agent", "ci-runner/1")
	require.NoError(t, err)
	assert.Equal(t, "ci-runner/1", <-agents)
}

func TestSubmitFailureLogsToStderr(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{
		"--config", path,
		"submit", "--email", "ada@example.com", "--endpoint", ts.URL,
	})
	err := root.Execute()
	assert.ErrorIs(t, err, errSubmissionFailed)

	logs := stderr.String()
	assert.Contains(t, logs, `msg="Endpoint failed"`)
	assert.Contains(t, logs, `msg="All endpoints failed"`)
	assert.Contains(t, logs, "status: 502")
	assert.NotContains(t, logs, "Trying endpoint", "info lines stay quiet without --verbose")
}

func TestSubmitFailureTable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	out, err := run(t, "", "submit", "--email", "ada@example.com", "--endpoint", ts.URL)
	assert.ErrorIs(t, err, errSubmissionFailed)
	assert.Contains(t, out, "Server error: HTTP error! status: 403 - Forbidden")
	assert.Contains(t, out, "Verify your internet connection")
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	_, err := run(t, "", "submit", "--endpoint", "http://127.0.0.1:1")
	assert.ErrorContains(t, err, "Email is required")

	_, err = run(t, "", "submit", "--email", "ada@example.com", "--num-users", "0", "--endpoint", "http://127.0.0.1:1")
	assert.ErrorContains(t, err, "between 1 and 1000")
}

type answerAll struct{ email string }

func (a answerAll) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if cfg.Message == "Email: *" {
		return a.email, nil
	}
	return cfg.Default, nil
}

func (a answerAll) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	return cfg.Default, nil
}

func TestSubmitInteractive(t *testing.T) {
	emails := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		emails <- body["email"].(string)
		_, _ = io.WriteString(w, "plain text ok")
	}))
	defer ts.Close()

	orig := newDriver
	newDriver = func() prompt.Driver { return answerAll{email: "tty@example.com"} }
	defer func() { newDriver = orig }()

	out, err := run(t, "", "submit", "-i", "-o", "yaml", "--endpoint", ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "tty@example.com", <-emails)
	assert.Contains(t, out, "status: success")
	assert.Contains(t, out, apimodels.NonJSONMessage)
	assert.Contains(t, out, "plain text ok")
}

func TestEndpointsList(t *testing.T) {
	out, err := run(t, "", "endpoints", "-o", "json", "--origin", "http://localhost:8000")
	require.NoError(t, err)

	var list []endpointInfo
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "http://localhost:8000"+datagen.ProxyPath, list[0].Resolved)
	assert.Equal(t, datagen.DirectURL, list[1].Endpoint)
	assert.True(t, list[2].Relay)

	out, err = run(t, "", "endpoints", "-o", "json", "--no-relay")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 2)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "", "payload", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
