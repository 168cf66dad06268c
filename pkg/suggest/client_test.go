package suggest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/cache"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		Endpoint:   server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
		cache:      cache.NewCache(time.Minute),
	}
}

func generationResponse(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return string(body)
}

func TestSuggestRuleDetailsParsesStructuredResponse(t *testing.T) {
	var requestBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(generationResponse(`{"condition": "100-1000", "message": "Budget must be between $100 and $1000."}`)))
	}))
	defer server.Close()

	suggestion, err := newTestClient(server).SuggestRuleDetails("Budget ceiling", "Budget Limit")

	require.NoError(t, err)
	assert.Equal(t, "100-1000", suggestion.Condition)
	assert.Equal(t, "Budget must be between $100 and $1000.", suggestion.Message)

	var payload generateContentRequest
	require.NoError(t, json.Unmarshal(requestBody, &payload))
	require.Len(t, payload.Contents, 1)
	assert.Contains(t, payload.Contents[0].Parts[0].Text, "Budget ceiling")
	assert.Equal(t, "application/json", payload.GenerationConfig.ResponseMimeType)
	assert.Equal(t, []string{"condition", "message"}, payload.GenerationConfig.ResponseSchema.PropertyOrdering)
}

func TestSuggestRuleDetailsRequiresNameAndType(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()
	client := newTestClient(server)

	for _, inputs := range [][2]string{{"", "Budget Limit"}, {"Budget ceiling", ""}, {"  ", "  "}} {
		_, err := client.SuggestRuleDetails(inputs[0], inputs[1])
		var clientErr *errors.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, errors.ErrMissingSuggestionInput.Code, clientErr.Code)
		assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	}
	assert.Zero(t, atomic.LoadInt32(&calls), "no remote call may be made for missing inputs")
}

func TestSuggestRuleDetailsRejectsEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).SuggestRuleDetails("Budget ceiling", "Budget Limit")

	var serverErr *errors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors.ErrMalformedSuggestion.Code, serverErr.Code)
}

func TestSuggestRuleDetailsRejectsUnparseableCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(generationResponse("definitely not json")))
	}))
	defer server.Close()

	_, err := newTestClient(server).SuggestRuleDetails("Budget ceiling", "Budget Limit")

	var serverErr *errors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors.ErrMalformedSuggestion.Code, serverErr.Code)
}

func TestSuggestRuleDetailsSurfacesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server).SuggestRuleDetails("Budget ceiling", "Budget Limit")

	var serverErr *errors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors.ErrWhileRequestingSuggestion.Code, serverErr.Code)
}

func TestSuggestRuleDetailsCachesByNameAndType(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(generationResponse(`{"condition": "18-65", "message": "Targeting age must be between 18 and 65."}`)))
	}))
	defer server.Close()
	client := newTestClient(server)

	first, err := client.SuggestRuleDetails("Age gate", "Targeting Parameter")
	require.NoError(t, err)
	second, err := client.SuggestRuleDetails("Age gate", "Targeting Parameter")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = client.SuggestRuleDetails("Age gate", "Budget Limit")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "a different rule type is a distinct cache entry")
}
