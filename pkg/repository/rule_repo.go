package repositories

import (
	"context"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RuleRepository handles document store operations for governance rules
type RuleRepository struct {
	Collection *mongo.Collection
}

// AddRule inserts a new governance rule and returns the assigned rule id
func (repo *RuleRepository) AddRule(rule models.Rule) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if rule.RuleId == "" {
		rule.RuleId = uuid.NewString()
	}

	_, err := repo.Collection.InsertOne(ctx, rule)
	if err != nil {
		return "", errors.NewServerError(errors.ErrWhileCreatingRule, err)
	}

	logger.Info("Governance rule created successfully: " + rule.Name)
	return rule.RuleId, nil
}

// GetRules retrieves all governance rules in the bound collection
func (repo *RuleRepository) GetRules() ([]models.Rule, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Info("Error occurred while fetching governance rules.")
		return nil, errors.NewServerError(errors.ErrWhileFetchingRules, err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			logger.Debug("Error occurred while closing cursor.", err)
		}
	}(cursor, ctx)
	var rules []models.Rule
	if err = cursor.All(ctx, &rules); err != nil {
		logger.Debug("Error occurred while decoding governance rules.", err)
		return nil, errors.NewServerError(errors.ErrWhileFetchingRules, err)
	}
	return rules, nil
}

// GetRule retrieves a specific governance rule by rule id. A missing rule
// is reported as a zero value, not an error.
func (repo *RuleRepository) GetRule(ruleId string) (models.Rule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"rule_id": ruleId}
	var rule models.Rule

	err := repo.Collection.FindOne(ctx, filter).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			logger.Info("No governance rule found for rule_id: " + ruleId)
			return models.Rule{}, nil
		}
		logger.Debug("Error occurred while fetching governance rule with rule_id: "+ruleId, err)
		return models.Rule{}, errors.NewServerError(errors.ErrWhileFetchingRule, err)
	}

	return rule, nil
}

// PatchRule modifies specific fields and refreshes the last modified
// timestamp. Audit fields are never part of updates; callers build the
// update set from the editable fields only.
func (repo *RuleRepository) PatchRule(ruleId string, updates bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates["last_modified_at"] = utils.NowISO()

	filter := bson.M{"rule_id": ruleId}
	update := bson.M{"$set": updates}

	_, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.NewServerError(errors.ErrWhileUpdatingRule, err)
	}
	logger.Info("Successfully updated governance rule for rule_id: " + ruleId)
	return nil
}

// DeleteRule removes a governance rule. There is no undo.
func (repo *RuleRepository) DeleteRule(ruleId string) error {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"rule_id": ruleId}
	_, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		logger.Error(err, "Error while deleting governance rule for rule_id: "+ruleId)
		return errors.NewServerError(errors.ErrWhileDeletingRule, err)
	}
	logger.Info("Successfully deleted governance rule with rule_id: " + ruleId)
	return nil
}
