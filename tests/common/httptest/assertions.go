//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody mirrors httperr.Response on the wire.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains
// expectedMsg. An empty expectedMsg only checks the shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body ErrorBody
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error response: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}
