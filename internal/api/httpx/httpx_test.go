package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, 201, map[string]string{"username": "alice"})

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, 400, "validation_error", "invalid registration request", []string{"username"})

	assert.Equal(t, 400, w.Code)

	var e APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.Equal(t, "invalid registration request", e.Error)
	assert.Equal(t, "validation_error", e.Code)
	assert.NotNil(t, e.Details)
}

func TestWriteErrorOmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, 500, "internal_error", "internal error", nil)

	assert.NotContains(t, w.Body.String(), "details")
}

func TestDecodeJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/register", strings.NewReader(`{"username":"alice"}`))

	var dst struct {
		Username string `json:"username"`
	}
	require.NoError(t, DecodeJSON(w, r, &dst))
	assert.Equal(t, "alice", dst.Username)
}

func TestDecodeJSONMalformed(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/register", strings.NewReader(`{"username":`))

	var dst map[string]any
	assert.Error(t, DecodeJSON(w, r, &dst))
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	huge := `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	r := httptest.NewRequest("POST", "/api/register", strings.NewReader(huge))

	var dst map[string]any
	assert.Error(t, DecodeJSON(w, r, &dst))
}
