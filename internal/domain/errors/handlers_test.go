package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorInfo(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		details     any
		wantDetails any
	}{
		{name: "client error keeps details", status: http.StatusBadRequest, details: "quantity: min", wantDetails: "quantity: min"},
		{name: "conflict keeps structured details", status: http.StatusConflict, details: map[string]string{"status": "READY"}, wantDetails: map[string]string{"status": "READY"}},
		{name: "empty string dropped", status: http.StatusBadRequest, details: "", wantDetails: nil},
		{name: "server error drops details", status: http.StatusInternalServerError, details: "pq: connection refused", wantDetails: nil},
		{name: "unauthorized drops details", status: http.StatusUnauthorized, details: "token expired", wantDetails: nil},
		{name: "forbidden drops details", status: http.StatusForbidden, details: "role CUSTOMER", wantDetails: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewErrorInfo(tt.status, "CODE", "message", tt.details)

			assert.Equal(t, "CODE", info.Code)
			assert.Equal(t, "message", info.Message)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}
