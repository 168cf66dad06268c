package repositories

import (
	"os"
	"testing"

	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestRulesCollectionPathConvention(t *testing.T) {
	path := RulesCollectionPath("default-app-id", "user-1")

	assert.Equal(t, "artifacts/default-app-id/users/user-1/rules", path)
}

func TestViolationsCollectionPathConvention(t *testing.T) {
	path := ViolationsCollectionPath("default-app-id", "user-1")

	assert.Equal(t, "artifacts/default-app-id/users/user-1/violations", path)
}

func TestCollectionPathsRequireBothInputs(t *testing.T) {
	assert.Empty(t, RulesCollectionPath("", "user-1"))
	assert.Empty(t, RulesCollectionPath("default-app-id", ""))
	assert.Empty(t, ViolationsCollectionPath("", "user-1"))
	assert.Empty(t, ViolationsCollectionPath("default-app-id", ""))
}

func TestRepositoriesStayUnboundWithoutResolvedInputs(t *testing.T) {
	assert.Nil(t, NewRuleRepository(nil, "artifacts/default-app-id/users/user-1/rules"))
	assert.Nil(t, NewViolationRepository(nil, ""))
}
