package service

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

type MockRuleStore struct {
	mock.Mock
}

func (m *MockRuleStore) AddRule(rule models.Rule) (string, error) {
	args := m.Called(rule)
	return args.String(0), args.Error(1)
}

func (m *MockRuleStore) GetRules() ([]models.Rule, error) {
	args := m.Called()
	rules, _ := args.Get(0).([]models.Rule)
	return rules, args.Error(1)
}

func (m *MockRuleStore) GetRule(ruleId string) (models.Rule, error) {
	args := m.Called(ruleId)
	return args.Get(0).(models.Rule), args.Error(1)
}

func (m *MockRuleStore) PatchRule(ruleId string, updates bson.M) error {
	args := m.Called(ruleId, updates)
	return args.Error(0)
}

func (m *MockRuleStore) DeleteRule(ruleId string) error {
	args := m.Called(ruleId)
	return args.Error(0)
}

func TestCreateRuleStampsAuditFields(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")

	store.On("AddRule", mock.MatchedBy(func(rule models.Rule) bool {
		if rule.RuleId != "" || rule.CreatedBy != "user-1" || rule.LastModifiedAt != "" {
			return false
		}
		_, err := time.Parse(time.RFC3339, rule.CreatedAt)
		return err == nil
	})).Return("rule-1", nil)

	created, err := svc.CreateRule(models.Rule{
		RuleId:    "client-supplied-id",
		Name:      "Budget ceiling",
		Type:      constants.RuleTypeBudgetLimit,
		Condition: "100-1000",
		CreatedBy: "someone-else",
	})

	require.NoError(t, err)
	assert.Equal(t, "rule-1", created.RuleId)
	assert.Equal(t, "user-1", created.CreatedBy)
	assert.NotEmpty(t, created.CreatedAt)
	store.AssertExpectations(t)
}

func TestCreateRulePropagatesStoreFailure(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")

	store.On("AddRule", mock.Anything).
		Return("", errors.NewServerError(errors.ErrWhileCreatingRule, nil))

	_, err := svc.CreateRule(models.Rule{Name: "Budget ceiling", Condition: "100-1000"})

	require.Error(t, err)
}

func TestGetRuleReturnsNotFoundForUnknownId(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")

	store.On("GetRule", "missing").Return(models.Rule{}, nil)

	_, err := svc.GetRule("missing")

	var clientErr *errors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors.ErrRuleNotFound.Code, clientErr.Code)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestGetRuleReturnsStoredRule(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")
	stored := models.Rule{RuleId: "rule-1", Name: "Budget ceiling"}

	store.On("GetRule", "rule-1").Return(stored, nil)

	rule, err := svc.GetRule("rule-1")

	require.NoError(t, err)
	assert.Equal(t, stored, rule)
}

func TestUpdateRulePatchesEditableFieldsOnly(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")

	store.On("PatchRule", "rule-1", mock.MatchedBy(func(updates bson.M) bool {
		for _, immutable := range []string{"rule_id", "created_at", "created_by"} {
			if _, present := updates[immutable]; present {
				return false
			}
		}
		return updates["name"] == "Renamed" &&
			updates["condition"] == "^[A-Z]{3}_[0-9]{4}$" &&
			updates["is_active"] == false
	})).Return(nil)

	err := svc.UpdateRule("rule-1", models.Rule{
		RuleId:    "rule-1",
		Name:      "Renamed",
		Type:      constants.RuleTypeNamingConvention,
		Platform:  constants.PlatformFacebookAds,
		Condition: "^[A-Z]{3}_[0-9]{4}$",
		Message:   "Campaign name does not match the convention.",
		IsActive:  false,
		CreatedAt: "2025-01-01T00:00:00Z",
		CreatedBy: "someone-else",
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestDeleteRuleDelegatesToStore(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")

	store.On("DeleteRule", "rule-1").Return(nil)

	require.NoError(t, svc.DeleteRule("rule-1"))
	store.AssertExpectations(t)
}

func TestGetRulesDelegatesToStore(t *testing.T) {
	store := new(MockRuleStore)
	svc := NewRuleService(store, "user-1")
	stored := []models.Rule{{RuleId: "rule-1"}, {RuleId: "rule-2"}}

	store.On("GetRules").Return(stored, nil)

	rules, err := svc.GetRules()

	require.NoError(t, err)
	assert.Equal(t, stored, rules)
}
