package form

import (
	"sync"
)

// Holder owns one FormConfig and the state of its latest submission.
// The mutex only keeps snapshots consistent; it does not serialise
// submissions.
type Holder struct {
	mu      sync.RWMutex
	config  FormConfig
	outcome Outcome
}

// NewHolder returns a holder seeded with Defaults.
func NewHolder() *Holder {
	return NewHolderWith(Defaults())
}

// NewHolderWith returns a holder seeded with cfg.
func NewHolderWith(cfg FormConfig) *Holder {
	return &Holder{
		config:  cfg,
		outcome: Outcome{Status: StatusIdle},
	}
}

// Config returns a copy of the current form values.
func (h *Holder) Config() FormConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

// SetField replaces exactly one field and leaves the others untouched.
// Values are stored as given.
func (h *Holder) SetField(name, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next, err := h.config.With(name, value)
	if err != nil {
		return err
	}
	h.config = next
	return nil
}

// Outcome returns the latest submission state.
func (h *Holder) Outcome() Outcome {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.outcome
}

// MarkPending clears the previous response, raw text and error and marks
// the holder pending, whether or not a submission is already in flight.
func (h *Holder) MarkPending() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcome = Outcome{Status: StatusPending}
}

// Begin is MarkPending for presentation layers that must not trigger twice:
// it returns false and changes nothing if a submission is already pending.
func (h *Holder) Begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.outcome.Pending() {
		return false
	}
	h.outcome = Outcome{Status: StatusPending}
	return true
}

// Complete records the outcome of a submission.
func (h *Holder) Complete(o Outcome) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcome = o
}
