package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/form"
	"github.com/sozercan/web-data-gen/internal/logx"
)

var errNoEndpoints = errors.New("no candidate endpoints configured")

// Poster delivers one request to one endpoint.
type Poster interface {
	Post(ctx context.Context, endpoint string, body interface{}) (*datagen.Response, error)
}

// Workflow submits form snapshots over an ordered list of candidate
// endpoints, stopping at the first one that answers 2xx.
type Workflow struct {
	client    Poster
	endpoints []string
	diag      *slog.Logger
}

// New creates a workflow. A nil logger writes diagnostics to the default logger.
func New(client Poster, endpoints []string, logger *slog.Logger) *Workflow {
	eps := make([]string, len(endpoints))
	copy(eps, endpoints)
	return &Workflow{
		client:    client,
		endpoints: eps,
		diag:      logx.Diagnostics(logger),
	}
}

// Endpoints returns the candidates in attempt order.
func (w *Workflow) Endpoints() []string {
	out := make([]string, len(w.endpoints))
	copy(out, w.endpoints)
	return out
}

// Submit marks h pending, runs the workflow on its current values and
// records the outcome. It does not check whether h is already pending.
func (w *Workflow) Submit(ctx context.Context, h *form.Holder) form.Outcome {
	h.MarkPending()
	outcome := w.Run(ctx, h.Config())
	h.Complete(outcome)
	return outcome
}

// Run delivers cfg and reports the outcome. Attempts are sequential; an
// attempt starts only after the previous one has failed.
func (w *Workflow) Run(ctx context.Context, cfg form.FormConfig) form.Outcome {
	diag := logx.FromContext(ctx, w.diag)
	payload := BuildRequest(cfg)
	if body, err := json.Marshal(payload); err == nil {
		diag.Info("Making API request", "payload", string(body))
	}

	var lastErr error = errNoEndpoints
	for i, endpoint := range w.endpoints {
		diag.Info("Trying endpoint", "endpoint", endpoint, "attempt", i+1)
		start := time.Now()

		resp, err := w.client.Post(ctx, endpoint, payload)
		if err != nil {
			diag.Error("Endpoint failed", "endpoint", endpoint, "error", err)
			lastErr = err
			continue
		}

		diag.Info("Response received",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"content_type", deref(resp.ContentType),
			"duration", time.Since(start),
		)
		diag.Debug("Raw response text", "text", string(resp.Body))

		return w.decode(diag, resp)
	}

	diag.Error("All endpoints failed", "error", lastErr)
	return form.Failure(ErrorMessage(lastErr))
}

// decode keeps the raw text and parses it as JSON when it can. A body that
// is not JSON still counts as success.
func (w *Workflow) decode(diag *slog.Logger, resp *datagen.Response) form.Outcome {
	text := string(resp.Body)

	var parsed interface{}
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		diag.Info("Response is not valid JSON, treating as text", "error", err)
		return form.Success(apimodels.NonJSONResponse{
			Message:     apimodels.NonJSONMessage,
			RawResponse: text,
			ContentType: resp.ContentType,
		}, text)
	}

	diag.Debug("Parsed JSON response", "response", parsed)
	return form.Success(parsed, text)
}

// ErrorMessage turns the last delivery error into the message shown to the user.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var netErr *datagen.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Network error: %s. This might be due to CORS restrictions or the API endpoint being unavailable.", netErr.Error())
	}

	var httpErr *datagen.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("Server error: %s", httpErr.Error())
	}

	return err.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
