package repositories

import (
	"context"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ViolationRepository handles document store operations for violation records
type ViolationRepository struct {
	Collection *mongo.Collection
}

// AddViolation inserts a violation record and returns the assigned id
func (repo *ViolationRepository) AddViolation(violation models.Violation) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if violation.ViolationId == "" {
		violation.ViolationId = uuid.NewString()
	}

	_, err := repo.Collection.InsertOne(ctx, violation)
	if err != nil {
		return "", errors.NewServerError(errors.ErrWhileCreatingViolation, err)
	}

	logger.Info("Violation recorded for rule: " + violation.RuleName)
	return violation.ViolationId, nil
}

// GetViolations retrieves all violation records in the bound collection
func (repo *ViolationRepository) GetViolations() ([]models.Violation, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		logger.Info("Error occurred while fetching violations.")
		return nil, errors.NewServerError(errors.ErrWhileFetchingViolations, err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		err := cursor.Close(ctx)
		if err != nil {
			logger.Debug("Error occurred while closing cursor.", err)
		}
	}(cursor, ctx)
	var violations []models.Violation
	if err = cursor.All(ctx, &violations); err != nil {
		logger.Debug("Error occurred while decoding violations.", err)
		return nil, errors.NewServerError(errors.ErrWhileFetchingViolations, err)
	}
	return violations, nil
}
