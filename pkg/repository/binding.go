package repositories

import (
	"fmt"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"go.mongodb.org/mongo-driver/mongo"
)

// RulesCollectionPath derives the per-user rules collection path. Returns ""
// while either input is unresolved.
func RulesCollectionPath(deploymentId string, userId string) string {
	if deploymentId == "" || userId == "" {
		return ""
	}
	return fmt.Sprintf(constants.RulesCollectionPathTemplate, deploymentId, userId)
}

// ViolationsCollectionPath derives the per-user violations collection path.
// Returns "" while either input is unresolved.
func ViolationsCollectionPath(deploymentId string, userId string) string {
	if deploymentId == "" || userId == "" {
		return ""
	}
	return fmt.Sprintf(constants.ViolationsCollectionPathTemplate, deploymentId, userId)
}

// NewRuleRepository binds a repository to the collection at path. Returns
// nil when the binding inputs are unresolved.
func NewRuleRepository(db *mongo.Database, path string) *RuleRepository {
	if db == nil || path == "" {
		return nil
	}
	return &RuleRepository{
		Collection: db.Collection(path),
	}
}

// NewViolationRepository binds a repository to the collection at path.
// Returns nil when the binding inputs are unresolved.
func NewViolationRepository(db *mongo.Database, path string) *ViolationRepository {
	if db == nil || path == "" {
		return nil
	}
	return &ViolationRepository{
		Collection: db.Collection(path),
	}
}
