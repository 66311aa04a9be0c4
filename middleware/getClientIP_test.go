package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded single", "203.0.113.7", "", "10.0.0.1:4321", "203.0.113.7"},
		{"forwarded chain uses first", "203.0.113.7, 10.0.0.2, 10.0.0.3", "", "10.0.0.1:4321", "203.0.113.7"},
		{"forwarded with spaces", "  203.0.113.7 , 10.0.0.2", "", "10.0.0.1:4321", "203.0.113.7"},
		{"real ip fallback", "", "203.0.113.9", "10.0.0.1:4321", "203.0.113.9"},
		{"forwarded wins over real ip", "203.0.113.7", "203.0.113.9", "10.0.0.1:4321", "203.0.113.7"},
		{"remote addr strips port", "", "", "192.0.2.4:9999", "192.0.2.4"},
		{"remote addr without port", "", "", "192.0.2.4", "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
