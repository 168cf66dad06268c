package suggest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/capsule-admin/campaign-governance-service/config"
	"github.com/capsule-admin/campaign-governance-service/pkg/cache"
	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
)

// Suggestion is the structured two-field response proposed by the text
// generation endpoint. A key absent in the response is left empty; callers
// merge only the fields present.
type Suggestion struct {
	Condition string `json:"condition"`
	Message   string `json:"message"`
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schemaProperty struct {
	Type string `json:"type"`
}

type responseSchema struct {
	Type             string                    `json:"type"`
	Properties       map[string]schemaProperty `json:"properties"`
	PropertyOrdering []string                  `json:"propertyOrdering"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client performs single-shot structured generation calls against the
// remote text generation endpoint.
type Client struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
	cache      *cache.Cache
}

func NewClient(cfg *config.Config) *Client {
	endpoint := cfg.Suggestion.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultSuggestionEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		APIKey:     cfg.Suggestion.APIKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache.NewCache(15 * time.Minute),
	}
}

// SuggestRuleDetails proposes a condition string and violation message for
// a rule from its name and type. Both inputs are required; when either is
// missing no remote call is made.
func (c *Client) SuggestRuleDetails(name string, ruleType string) (*Suggestion, error) {

	if strings.TrimSpace(name) == "" || strings.TrimSpace(ruleType) == "" {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrMissingSuggestionInput.Code,
			Message:     errors.ErrMissingSuggestionInput.Message,
			Description: errors.ErrMissingSuggestionInput.Description,
		}, http.StatusBadRequest)
	}

	cacheKey := name + "|" + ruleType
	if cached, found := c.cache.Get(cacheKey); found {
		if suggestion, ok := cached.(Suggestion); ok {
			return &suggestion, nil
		}
	}

	payload := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: buildPrompt(name, ruleType)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: responseSchema{
				Type: "OBJECT",
				Properties: map[string]schemaProperty{
					"condition": {Type: "STRING"},
					"message":   {Type: "STRING"},
				},
				PropertyOrdering: []string{"condition", "message"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileRequestingSuggestion, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint+"?key="+url.QueryEscape(c.APIKey), bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileRequestingSuggestion, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileRequestingSuggestion, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewServerError(errors.ErrWhileRequestingSuggestion, nil)
	}

	var result generateContentResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.NewServerError(errors.ErrMalformedSuggestion, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		logger.Info("Suggestion response carried no candidates for rule: " + name)
		return nil, errors.NewServerError(errors.ErrMalformedSuggestion, nil)
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &suggestion); err != nil {
		return nil, errors.NewServerError(errors.ErrMalformedSuggestion, err)
	}

	c.cache.Set(cacheKey, suggestion)
	logger.Info("Suggestions generated for rule: " + name)
	return &suggestion, nil
}

func buildPrompt(name string, ruleType string) string {
	return fmt.Sprintf(`Generate a suitable "condition" (e.g., regex for naming, min/max for budget, specific value for targeting) and a "violation message" for a rule with the following details:
Rule Name: %q
Rule Type: %q

Provide the output as a JSON object with two keys: "condition" and "message".
Example for Naming Convention: {"condition": "^[A-Z]{3}_[0-9]{4}$", "message": "Campaign name must start with 3 uppercase letters, followed by an underscore and 4 digits (e.g., ABC_1234)."}
Example for Budget Limit (Min $100, Max $1000): {"condition": "100-1000", "message": "Budget must be between $100 and $1000."}
Example for Targeting Parameter (Age 18-65): {"condition": "18-65", "message": "Targeting age must be between 18 and 65."}
`, name, ruleType)
}
