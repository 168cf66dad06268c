package handlers

import (
	"net/http"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/identity"
	"github.com/capsule-admin/campaign-governance-service/pkg/livesync"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/suggest"
	"github.com/gorilla/mux"
)

// RuleManager is the per-user rule collection surface the handlers call.
type RuleManager interface {
	GetRules() ([]models.Rule, error)
	GetRule(ruleId string) (models.Rule, error)
	CreateRule(rule models.Rule) (models.Rule, error)
	UpdateRule(ruleId string, rule models.Rule) error
	DeleteRule(ruleId string) error
}

// ViolationManager is the per-user violation collection surface.
type ViolationManager interface {
	ListViolations() ([]models.Violation, error)
	AddSimulatedViolation() (models.Violation, error)
}

// SuggestionProvider proposes rule details from a name and type.
type SuggestionProvider interface {
	SuggestRuleDetails(name string, ruleType string) (*suggest.Suggestion, error)
}

// Handler serves the console API. The collection-bound surfaces are
// factories rather than fields: each request re-derives its binding from
// the current identity, and the factory reports the identity as unresolved
// while the session has not produced one.
type Handler struct {
	Session         *identity.Session
	Rules           func() (RuleManager, error)
	Violations      func() (ViolationManager, error)
	Suggest         SuggestionProvider
	RuleSource      func() (livesync.Source[models.Rule], error)
	ViolationSource func() (livesync.Source[models.Violation], error)
}

// RegisterRoutes mounts the console API under the API base path.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix(constants.ApiBasePath).Subrouter()

	api.HandleFunc("/rules", h.GetRules).Methods(http.MethodGet)
	api.HandleFunc("/rules", h.CreateRule).Methods(http.MethodPost)
	api.HandleFunc("/rules/suggest", h.SuggestRuleDetails).Methods(http.MethodPost)
	api.HandleFunc("/rules/stream", h.StreamRules).Methods(http.MethodGet)
	api.HandleFunc("/rules/{id}", h.GetRule).Methods(http.MethodGet)
	api.HandleFunc("/rules/{id}", h.UpdateRule).Methods(http.MethodPatch)
	api.HandleFunc("/rules/{id}", h.DeleteRule).Methods(http.MethodDelete)

	api.HandleFunc("/violations", h.GetViolations).Methods(http.MethodGet)
	api.HandleFunc("/violations/simulate", h.AddSimulatedViolation).Methods(http.MethodPost)
	api.HandleFunc("/violations/stream", h.StreamViolations).Methods(http.MethodGet)
}
