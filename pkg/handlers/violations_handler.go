package handlers

import (
	"net/http"

	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
	"github.com/capsule-admin/campaign-governance-service/pkg/views"
)

type violationListResponse struct {
	Count      int                `json:"count"`
	Message    string             `json:"message,omitempty"`
	Violations []models.Violation `json:"violations"`
}

// GetViolations handles the violation dashboard view: the synced list put
// through the platform/user/free-text filters and the reverse-chronological
// sort.
func (h *Handler) GetViolations(w http.ResponseWriter, r *http.Request) {

	violations, err := h.Violations()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	records, err := violations.ListViolations()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	filter := views.ViolationFilter{
		Platform: r.URL.Query().Get("platform"),
		User:     r.URL.Query().Get("user"),
		Search:   r.URL.Query().Get("q"),
	}
	if filter.Platform == "" {
		filter.Platform = constants.PlatformAll
	}

	filtered := filter.Apply(records)

	response := violationListResponse{
		Count:      len(filtered),
		Violations: filtered,
	}
	if len(filtered) == 0 {
		response.Message = "No violations found."
	}
	utils.RespondJSON(w, http.StatusOK, response)
}

// AddSimulatedViolation handles recording a randomized demonstration
// violation through the regular write path.
func (h *Handler) AddSimulatedViolation(w http.ResponseWriter, r *http.Request) {

	violations, err := h.Violations()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	violation, err := violations.AddSimulatedViolation()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Simulated violation added!",
		"violation": violation,
	})
}
