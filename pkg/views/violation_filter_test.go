package views

import (
	"testing"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func violationAgo(minutes int, platform string, userId string, campaignId string) models.Violation {
	return models.Violation{
		ViolationId: campaignId,
		Timestamp:   filterBase.Add(-time.Duration(minutes) * time.Minute).Format(time.RFC3339),
		RuleName:    "Naming Check",
		UserId:      userId,
		CampaignId:  campaignId,
		Platform:    platform,
		Status:      constants.ViolationStatusDetected,
	}
}

func TestApplySortsMostRecentFirst(t *testing.T) {
	violations := []models.Violation{
		violationAgo(2, constants.PlatformGoogleAds, "user-1", "CMP-A"),
		violationAgo(5, constants.PlatformGoogleAds, "user-1", "CMP-B"),
		violationAgo(1, constants.PlatformGoogleAds, "user-1", "CMP-C"),
	}

	result := ViolationFilter{Platform: constants.PlatformAll}.Apply(violations)

	require.Len(t, result, 3)
	assert.Equal(t, "CMP-C", result[0].CampaignId)
	assert.Equal(t, "CMP-A", result[1].CampaignId)
	assert.Equal(t, "CMP-B", result[2].CampaignId)
}

func TestApplyIsStableOnTimestampTies(t *testing.T) {
	violations := []models.Violation{
		violationAgo(3, constants.PlatformGoogleAds, "user-1", "CMP-FIRST"),
		violationAgo(3, constants.PlatformGoogleAds, "user-1", "CMP-SECOND"),
	}

	result := ViolationFilter{}.Apply(violations)

	require.Len(t, result, 2)
	assert.Equal(t, "CMP-FIRST", result[0].CampaignId)
	assert.Equal(t, "CMP-SECOND", result[1].CampaignId)
}

func TestApplyIsIdempotent(t *testing.T) {
	violations := []models.Violation{
		violationAgo(1, constants.PlatformGoogleAds, "user-1", "CMP-A"),
		violationAgo(2, constants.PlatformFacebookAds, "user-2", "CMP-B"),
		violationAgo(3, constants.PlatformGoogleAds, "user-3", "CMP-C"),
	}
	filter := ViolationFilter{Platform: constants.PlatformGoogleAds, Search: "cmp"}

	once := filter.Apply(violations)
	twice := filter.Apply(once)

	assert.Equal(t, once, twice)
}

func TestPlatformAndSearchFiltersCompose(t *testing.T) {
	matching := violationAgo(1, constants.PlatformGoogleAds, "user-1", "CMP-ABC123")
	other := models.Violation{
		Timestamp:  filterBase.Format(time.RFC3339),
		Platform:   constants.PlatformFacebookAds,
		UserId:     "user-2",
		CampaignId: "AD-999",
	}

	result := ViolationFilter{
		Platform: constants.PlatformGoogleAds,
		Search:   "CMP-",
	}.Apply([]models.Violation{matching, other})

	require.Len(t, result, 1)
	assert.Equal(t, "CMP-ABC123", result[0].CampaignId)
}

func TestAllSentinelPassesEveryPlatform(t *testing.T) {
	violations := []models.Violation{
		violationAgo(1, constants.PlatformGoogleAds, "user-1", "CMP-A"),
		violationAgo(2, constants.PlatformRedditAds, "user-1", "CMP-B"),
	}

	result := ViolationFilter{Platform: constants.PlatformAll}.Apply(violations)

	assert.Len(t, result, 2)
}

func TestUserFilterMatchesSubstringCaseInsensitively(t *testing.T) {
	violations := []models.Violation{
		violationAgo(1, constants.PlatformGoogleAds, "User-ALPHA", "CMP-A"),
		violationAgo(2, constants.PlatformGoogleAds, "user-beta", "CMP-B"),
	}

	result := ViolationFilter{User: "alpha"}.Apply(violations)

	require.Len(t, result, 1)
	assert.Equal(t, "User-ALPHA", result[0].UserId)
}

func TestUserFilterRejectsRecordsWithoutUserId(t *testing.T) {
	violations := []models.Violation{
		violationAgo(1, constants.PlatformGoogleAds, "", "CMP-A"),
		violationAgo(2, constants.PlatformGoogleAds, "user-1", "CMP-B"),
	}

	result := ViolationFilter{User: "user"}.Apply(violations)

	require.Len(t, result, 1)
	assert.Equal(t, "user-1", result[0].UserId)
}

func TestSearchMatchesAnyField(t *testing.T) {
	violation := violationAgo(1, constants.PlatformGoogleAds, "user-1", "CMP-A")
	violation.SuggestedCorrection = "Please correct the value."

	result := ViolationFilter{Search: "please correct"}.Apply([]models.Violation{violation})

	assert.Len(t, result, 1)
}

func TestApplyOnEmptyInputReturnsEmptyList(t *testing.T) {
	result := ViolationFilter{Search: "anything"}.Apply(nil)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
