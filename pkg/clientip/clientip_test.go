package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	r.RemoteAddr = "203.0.113.7:52341"
	assert.Equal(t, "203.0.113.7", RealClientIP(r))

	r.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", RealClientIP(r))

	r.RemoteAddr = " 198.51.100.2 "
	assert.Equal(t, "198.51.100.2", RealClientIP(r))

	r.Header.Set("X-Forwarded-For", "10.0.0.1")
	assert.Equal(t, "198.51.100.2", RealClientIP(r))
}
