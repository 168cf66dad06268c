package service

import (
	"fmt"
	"math/rand"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
)

var (
	simulatedPlatforms = []string{
		constants.PlatformFacebookAds,
		constants.PlatformGoogleAds,
		constants.PlatformLinkedInAds,
	}
	simulatedFields = []string{"Campaign Name", "Budget", "Targeting Age"}
)

const campaignIdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ViolationStore is the collection surface the violation service writes
// through.
type ViolationStore interface {
	AddViolation(violation models.Violation) (string, error)
	GetViolations() ([]models.Violation, error)
}

// ViolationService reads and records violations in one user's collection.
type ViolationService struct {
	store  ViolationStore
	userId string
}

func NewViolationService(store ViolationStore, userId string) *ViolationService {
	return &ViolationService{
		store:  store,
		userId: userId,
	}
}

// ListViolations fetches all violation records of the user.
func (s *ViolationService) ListViolations() ([]models.Violation, error) {
	return s.store.GetViolations()
}

// AddSimulatedViolation synthesizes a violation with randomized platform,
// field and campaign id values, attributed to the current user with status
// Detected, and records it through the same write path as real violations.
func (s *ViolationService) AddSimulatedViolation() (models.Violation, error) {

	violation := models.Violation{
		Timestamp:           utils.NowISO(),
		RuleName:            fmt.Sprintf("Simulated Rule %d", rand.Intn(100)),
		UserId:              s.userId,
		CampaignId:          "CMP-" + randomCampaignSuffix(6),
		Platform:            simulatedPlatforms[rand.Intn(len(simulatedPlatforms))],
		FieldName:           simulatedFields[rand.Intn(len(simulatedFields))],
		OriginalValue:       "Invalid Value",
		SuggestedCorrection: "Please correct the value.",
		Status:              constants.ViolationStatusDetected,
	}

	violationId, err := s.store.AddViolation(violation)
	if err != nil {
		return models.Violation{}, err
	}

	violation.ViolationId = violationId
	return violation, nil
}

func randomCampaignSuffix(length int) string {
	suffix := make([]byte, length)
	for i := range suffix {
		suffix[i] = campaignIdAlphabet[rand.Intn(len(campaignIdAlphabet))]
	}
	return string(suffix)
}
