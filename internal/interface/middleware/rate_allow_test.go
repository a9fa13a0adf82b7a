package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithIP(ip string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	if ip != "" {
		c.Set("real_ip", ip)
	}
	return c
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	for _, ip := range []string{"127.0.0.1", "::1", "10.1.2.3", "172.16.0.9", "192.168.1.44"} {
		assert.True(t, allow(ctxWithIP(ip)), "expected %s to bypass the limiter", ip)
	}

	for _, ip := range []string{"8.8.8.8", "203.0.113.17", "2001:db8::1"} {
		assert.False(t, allow(ctxWithIP(ip)), "expected %s to be limited", ip)
	}
}

func TestAllowPrivateIPUnparsableAddress(t *testing.T) {
	allow := AllowPrivateIP()
	assert.False(t, allow(ctxWithIP("not-an-ip")))
	assert.False(t, allow(ctxWithIP("")))
}
