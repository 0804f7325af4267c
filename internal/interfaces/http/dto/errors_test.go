package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUpstream, http.StatusInternalServerError},
		{ErrCodeConfig, http.StatusInternalServerError},
		{"ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeUpstream, NormalizeErrorCode("UPSTREAM_ERROR"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM", NormalizeErrorCode("CUSTOM"))
}

func TestResponseEnvelope(t *testing.T) {
	ok := NewSuccessResponse([]int{1, 2})
	assert.True(t, ok.OK)
	assert.Nil(t, ok.Error)

	bad := NewErrorResponseWithRequestID(ErrCodeNotFound, "missing", "req-1")
	assert.False(t, bad.OK)
	assert.Equal(t, "missing", bad.Error.Message)
	assert.Equal(t, "req-1", bad.Error.RequestID)
}
