package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	"github.com/capsule-admin/campaign-governance-service/pkg/utils"
	"github.com/gorilla/mux"
)

type ruleResponse struct {
	Message string      `json:"message,omitempty"`
	Rule    models.Rule `json:"rule"`
}

// GetRules handles fetching all governance rules of the current user
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {

	rules, err := h.Rules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	records, err := rules.GetRules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

// GetRule handles fetching a specific governance rule
func (h *Handler) GetRule(w http.ResponseWriter, r *http.Request) {

	rules, err := h.Rules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	rule, err := rules.GetRule(mux.Vars(r)["id"])
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, rule)
}

// CreateRule handles adding a new governance rule. Name and condition are
// the required form fields; the rest of the draft passes through as given.
func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {

	var draft models.Rule
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&draft); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrBadRequest.Code,
			Message:     errors.ErrBadRequest.Message,
			Description: utils.HandleDecodeError(err, "governance rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Condition) == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrMissingRuleFields.Code,
			Message:     errors.ErrMissingRuleFields.Message,
			Description: errors.ErrMissingRuleFields.Description,
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	rules, err := h.Rules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	created, err := rules.CreateRule(draft)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, ruleResponse{
		Message: "Rule added successfully!",
		Rule:    created,
	})
}

// UpdateRule handles a partial update of an existing governance rule
func (h *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {

	var draft models.Rule
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&draft); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrBadRequest.Code,
			Message:     errors.ErrBadRequest.Message,
			Description: utils.HandleDecodeError(err, "governance rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	rules, err := h.Rules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := mux.Vars(r)["id"]
	if err := rules.UpdateRule(ruleId, draft); err != nil {
		utils.HandleError(w, err)
		return
	}

	updated, err := rules.GetRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, ruleResponse{
		Message: "Rule updated successfully!",
		Rule:    updated,
	})
}

// DeleteRule handles deleting a governance rule. Deletion is destructive
// and requires explicit confirmation; there is no undo.
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {

	if r.URL.Query().Get("confirm") != "true" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrDeleteNotConfirmed.Code,
			Message:     errors.ErrDeleteNotConfirmed.Message,
			Description: errors.ErrDeleteNotConfirmed.Description,
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	rules, err := h.Rules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := rules.DeleteRule(mux.Vars(r)["id"]); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Rule deleted successfully!",
	})
}

type suggestRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SuggestRuleDetails handles the call-out to the text generation endpoint
func (h *Handler) SuggestRuleDetails(w http.ResponseWriter, r *http.Request) {

	var request suggestRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrBadRequest.Code,
			Message:     errors.ErrBadRequest.Message,
			Description: utils.HandleDecodeError(err, "rule suggestion"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	suggestion, err := h.Suggest.SuggestRuleDetails(request.Name, request.Type)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, suggestion)
}
