//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"tutor-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// expectedMsg. It returns the decoded envelope for detail assertions.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error JSON: %s", w.Body.String())
	resp.Status = w.Code

	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}
