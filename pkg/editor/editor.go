package editor

import (
	"net/http"
	"sync"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/suggest"
)

// State is the editor's lifecycle position: Idle, Editing (a new or an
// existing rule) or Submitting. Editing can additionally enter a nested
// suggesting sub-state that returns to Editing regardless of outcome.
type State int

const (
	Idle State = iota
	Editing
	Submitting
)

// RuleWriter is the write surface the editor submits drafts through.
type RuleWriter interface {
	CreateRule(rule models.Rule) (models.Rule, error)
	UpdateRule(ruleId string, rule models.Rule) error
}

// Suggester proposes a condition and violation message from a rule's name
// and type.
type Suggester interface {
	SuggestRuleDetails(name string, ruleType string) (*suggest.Suggestion, error)
}

// Editor is the form-state controller for creating and updating a single
// governance rule. A failed submit preserves the draft for manual retry; a
// successful one clears it and returns the editor to Idle.
type Editor struct {
	writer    RuleWriter
	suggester Suggester

	mu         sync.Mutex
	state      State
	editingId  string
	draft      models.Rule
	suggesting bool
}

func NewEditor(writer RuleWriter, suggester Suggester) *Editor {
	return &Editor{
		writer:    writer,
		suggester: suggester,
		state:     Idle,
	}
}

func defaultDraft() models.Rule {
	return models.Rule{
		Type:     constants.RuleTypeNamingConvention,
		Platform: constants.PlatformFacebookAds,
		IsActive: true,
	}
}

// NewRule opens the edit surface with a fresh default draft.
func (e *Editor) NewRule() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Editing
	e.editingId = ""
	e.draft = defaultDraft()
}

// Edit opens the edit surface populated from an existing rule.
func (e *Editor) Edit(rule models.Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Editing
	e.editingId = rule.RuleId
	e.draft = rule
}

// Cancel closes the edit surface and discards the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Idle
	e.editingId = ""
	e.draft = models.Rule{}
}

// SetDraft replaces the in-progress draft.
func (e *Editor) SetDraft(draft models.Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
}

func (e *Editor) Draft() models.Rule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) EditingId() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editingId
}

func (e *Editor) Suggesting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.suggesting
}

// Submit sends the draft through the writer: a create when no existing rule
// is being edited, a partial update otherwise. On success the draft and the
// editing selection are cleared; on failure both are preserved so the user
// can retry.
func (e *Editor) Submit() (models.Rule, error) {
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()
		return models.Rule{}, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrNoEditInProgress.Code,
			Message:     errors.ErrNoEditInProgress.Message,
			Description: errors.ErrNoEditInProgress.Description,
		}, http.StatusConflict)
	}
	e.state = Submitting
	draft := e.draft
	editingId := e.editingId
	e.mu.Unlock()

	var submitted models.Rule
	var err error
	if editingId == "" {
		submitted, err = e.writer.CreateRule(draft)
	} else {
		err = e.writer.UpdateRule(editingId, draft)
		submitted = draft
		submitted.RuleId = editingId
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = Editing
		return models.Rule{}, err
	}

	e.state = Idle
	e.editingId = ""
	e.draft = models.Rule{}
	return submitted, nil
}

// SuggestDetails requests a proposed condition and message for the current
// draft. Requires a non-empty name and type, made without a remote call
// otherwise. While the call is outstanding repeat invocation is rejected.
// Only the fields present in the response are merged into the draft; on any
// failure the draft is left unchanged.
func (e *Editor) SuggestDetails() error {
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrNoEditInProgress.Code,
			Message:     errors.ErrNoEditInProgress.Message,
			Description: errors.ErrNoEditInProgress.Description,
		}, http.StatusConflict)
	}
	if e.draft.Name == "" || e.draft.Type == "" {
		e.mu.Unlock()
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrMissingSuggestionInput.Code,
			Message:     errors.ErrMissingSuggestionInput.Message,
			Description: errors.ErrMissingSuggestionInput.Description,
		}, http.StatusBadRequest)
	}
	if e.suggesting {
		e.mu.Unlock()
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrSuggestionInProgress.Code,
			Message:     errors.ErrSuggestionInProgress.Message,
			Description: errors.ErrSuggestionInProgress.Description,
		}, http.StatusConflict)
	}
	e.suggesting = true
	name := e.draft.Name
	ruleType := e.draft.Type
	e.mu.Unlock()

	suggestion, err := e.suggester.SuggestRuleDetails(name, ruleType)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.suggesting = false
	if err != nil {
		return err
	}
	if e.state != Editing {
		// The edit surface closed while the call was outstanding.
		return nil
	}
	if suggestion.Condition != "" {
		e.draft.Condition = suggestion.Condition
	}
	if suggestion.Message != "" {
		e.draft.Message = suggestion.Message
	}
	return nil
}
