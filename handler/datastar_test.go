package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/medsignup/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		datastar bool
		json     bool
	}{
		{name: "datastar header", headers: map[string]string{"Datastar-Request": "true"}, datastar: true},
		{name: "event stream accept", headers: map[string]string{"Accept": "text/html, text/event-stream"}, datastar: true},
		{
			name:     "datastar json body",
			headers:  map[string]string{"Datastar-Request": "true", "Content-Type": "application/json"},
			datastar: true,
		},
		{name: "json body", headers: map[string]string{"Content-Type": "application/json"}, json: true},
		{name: "json accept", headers: map[string]string{"Accept": "application/json"}, json: true},
		{name: "browser form", headers: map[string]string{"Accept": "text/html", "Content-Type": "application/x-www-form-urlencoded"}},
		{name: "no headers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.datastar, handler.IsDataStar(req))
			assert.Equal(t, tt.json, handler.WantsJSON(req))
		})
	}
}
