package service

import (
	"net/http"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// RuleStore is the collection surface the rule service writes through.
type RuleStore interface {
	AddRule(rule models.Rule) (string, error)
	GetRules() ([]models.Rule, error)
	GetRule(ruleId string) (models.Rule, error)
	PatchRule(ruleId string, updates bson.M) error
	DeleteRule(ruleId string) error
}

// RuleService applies the editor write semantics for one user's rule
// collection: audit fields set once at creation, refreshed last modified
// timestamp on update, no undo on delete.
type RuleService struct {
	store  RuleStore
	userId string
}

func NewRuleService(store RuleStore, userId string) *RuleService {
	return &RuleService{
		store:  store,
		userId: userId,
	}
}

// CreateRule stamps the audit fields and inserts the draft. The returned
// rule carries the id assigned by the store.
func (s *RuleService) CreateRule(rule models.Rule) (models.Rule, error) {

	rule.RuleId = ""
	rule.CreatedAt = utils.NowISO()
	rule.CreatedBy = s.userId
	rule.LastModifiedAt = ""

	ruleId, err := s.store.AddRule(rule)
	if err != nil {
		return models.Rule{}, err
	}

	rule.RuleId = ruleId
	return rule, nil
}

// GetRules fetches all governance rules of the user.
func (s *RuleService) GetRules() ([]models.Rule, error) {
	return s.store.GetRules()
}

// GetRule fetches a specific governance rule.
func (s *RuleService) GetRule(ruleId string) (models.Rule, error) {
	rule, err := s.store.GetRule(ruleId)
	if err != nil {
		return models.Rule{}, err
	}
	if rule.RuleId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrRuleNotFound.Code,
			Message:     errors.ErrRuleNotFound.Message,
			Description: errors.ErrRuleNotFound.Description,
		}, http.StatusNotFound)
		return models.Rule{}, clientError
	}
	return rule, nil
}

// UpdateRule applies a partial update built from the editable fields only;
// the id and creation audit fields are immutable once assigned.
func (s *RuleService) UpdateRule(ruleId string, rule models.Rule) error {

	updates := bson.M{
		"name":      rule.Name,
		"type":      rule.Type,
		"platform":  rule.Platform,
		"condition": rule.Condition,
		"message":   rule.Message,
		"is_active": rule.IsActive,
	}

	return s.store.PatchRule(ruleId, updates)
}

// DeleteRule removes a governance rule.
func (s *RuleService) DeleteRule(ruleId string) error {
	return s.store.DeleteRule(ruleId)
}
