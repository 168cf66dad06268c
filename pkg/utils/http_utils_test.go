package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	customerrors "github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestHandleErrorSurfacesClientError(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, customerrors.NewClientError(customerrors.ErrRuleNotFound, http.StatusNotFound))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), customerrors.ErrRuleNotFound.Code)
	assert.Contains(t, rec.Body.String(), customerrors.ErrRuleNotFound.Message)
}

func TestHandleErrorMasksServerErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, customerrors.NewServerError(customerrors.ErrWhileFetchingRules, io.ErrUnexpectedEOF))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), io.ErrUnexpectedEOF.Error())
	assert.Contains(t, rec.Body.String(), customerrors.ErrWhileFetchingRules.Message)
}

func TestRespondJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"message": "done"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "done")
}

func TestHandleDecodeErrorMessages(t *testing.T) {
	assert.Contains(t, HandleDecodeError(io.EOF, "governance rule"), "empty")

	var payload struct {
		Name string `json:"name"`
	}
	err := json.Unmarshal([]byte(`{"name": 1}`), &payload)
	require.Error(t, err)
	assert.Contains(t, HandleDecodeError(err, "governance rule"), "Invalid type for field 'name'")

	err = json.Unmarshal([]byte(`{"name"`), &payload)
	require.Error(t, err)
	assert.Contains(t, HandleDecodeError(err, "governance rule"), "Malformed JSON")
}
