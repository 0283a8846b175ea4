package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/form"
	"github.com/sozercan/web-data-gen/internal/logx"
)

var templateFuncs = template.FuncMap{
	"isKind": func(f form.Field, kind string) bool { return string(f.Kind) == kind },
}

type fieldView struct {
	form.Field
	Value string
}

type pageView struct {
	Fields       []fieldView
	Pending      bool
	Error        string
	Tips         []string
	Response     string
	HasResponse  bool
	ResponseText string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK)
}

// handleFormPost applies every posted field and submits the result.
func (s *Server) handleFormPost(w http.ResponseWriter, r *http.Request) {
	holder := holderFrom(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid form: %v", err), http.StatusBadRequest)
		return
	}

	for _, f := range form.Fields() {
		if _, ok := r.PostForm[f.Name]; !ok {
			continue
		}
		if err := holder.SetField(f.Name, r.PostForm.Get(f.Name)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if !s.runSubmission(r, holder) {
		s.renderPage(w, r, http.StatusConflict)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, holderFrom(r).Config())
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var update apimodels.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	holder := holderFrom(r)
	if err := holder.SetField(update.Name, update.Value); err != nil {
		if errors.Is(err, form.ErrUnknownField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, holder.Config())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	holder := holderFrom(r)
	if !s.runSubmission(r, holder) {
		writeJSON(w, http.StatusConflict, outcomeResponse(holder.Outcome()))
		return
	}
	writeJSON(w, http.StatusOK, outcomeResponse(holder.Outcome()))
}

func (s *Server) handleOutcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, outcomeResponse(holderFrom(r).Outcome()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// runSubmission refuses to start while holder is pending. The attempt is
// detached from the request context so a closed browser tab does not abort it.
func (s *Server) runSubmission(r *http.Request, holder *form.Holder) bool {
	if !holder.Begin() {
		logx.FromContext(r.Context(), nil).Warn("Submission already pending")
		return false
	}
	ctx := context.WithoutCancel(r.Context())
	holder.Complete(s.workflow.Run(ctx, holder.Config()))
	return true
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int) {
	holder := holderFrom(r)
	cfg := holder.Config()
	outcome := holder.Outcome()

	view := pageView{
		Pending: outcome.Pending(),
		Error:   outcome.Error,
	}
	for _, f := range form.Fields() {
		v, _ := cfg.Get(f.Name)
		view.Fields = append(view.Fields, fieldView{Field: f, Value: v})
	}
	if outcome.Error != "" {
		view.Tips = form.Tips
	}
	if outcome.Response != nil {
		pretty, err := prettyJSON(outcome.Response)
		if err != nil {
			slog.Error("Failed to format response", "error", err)
		} else {
			view.Response = pretty
			view.HasResponse = true
		}
	}
	view.ResponseText = outcome.RawText

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, view); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}

// prettyJSON indents v with two spaces and leaves <, > and & as written;
// the template escapes them for the page.
func prettyJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func outcomeResponse(o form.Outcome) apimodels.OutcomeResponse {
	resp := apimodels.OutcomeResponse{
		Status:       string(o.Status),
		Response:     o.Response,
		ResponseText: o.RawText,
		Error:        o.Error,
	}
	if o.Error != "" {
		resp.Tips = form.Tips
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
