package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr with port", "10.0.0.1:4242", nil, "10.0.0.1"},
		{"remote addr without port", "10.0.0.2", nil, "10.0.0.2"},
		{"x-real-ip wins over socket", "10.0.0.1:4242", map[string]string{"X-Real-IP": "1.2.3.4"}, "1.2.3.4"},
		{"first forwarded hop wins", "10.0.0.1:4242", map[string]string{"X-Forwarded-For": " 5.6.7.8 , 9.9.9.9"}, "5.6.7.8"},
		{"forwarded wins over x-real-ip", "10.0.0.1:4242", map[string]string{"X-Forwarded-For": "5.6.7.8", "X-Real-IP": "1.2.3.4"}, "5.6.7.8"},
		{"blank forwarded falls through", "10.0.0.1:4242", map[string]string{"X-Forwarded-For": " , 9.9.9.9", "X-Real-IP": "1.2.3.4"}, "1.2.3.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, getClientIP(ipContext(t, tc.remote, tc.headers)))
		})
	}
}
