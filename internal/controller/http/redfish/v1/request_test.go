package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	first, err := generateETag(map[string]string{"Id": "1"})
	require.NoError(t, err)

	again, err := generateETag(map[string]string{"Id": "1"})
	require.NoError(t, err)

	other, err := generateETag(map[string]string{"Id": "2"})
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.Regexp(t, `^W/"[0-9a-f]{16}"$`, first)

	_, err = generateETag(make(chan int))
	require.Error(t, err)
}

func TestIsAcceptHeaderValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accept   string
		expected bool
	}{
		{"", true},
		{"*/*", true},
		{"application/json", true},
		{"text/html, application/json;q=0.9", true},
		{"application/xml", false},
	}

	for _, tc := range tests {
		t.Run(tc.accept, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/redfish/v1/", http.NoBody)
			c.Request.Header.Set(HeaderAccept, tc.accept)

			assert.Equal(t, tc.expected, isAcceptHeaderValid(c))

			if !tc.expected {
				assert.Equal(t, http.StatusNotAcceptable, w.Code)
			}
		})
	}
}

func TestNotModified(t *testing.T) {
	t.Parallel()

	const etag = `W/"0123456789abcdef"`

	tests := []struct {
		name        string
		ifNoneMatch string
		expected    bool
	}{
		{"no header", "", false},
		{"exact match", etag, true},
		{"strong form of weak tag", `"0123456789abcdef"`, true},
		{"wildcard", "*", true},
		{"one of several", `"aaaa", ` + etag, true},
		{"different tag", `W/"ffff"`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)

			if tc.ifNoneMatch != "" {
				c.Request.Header.Set(HeaderIfNoneMatch, tc.ifNoneMatch)
			}

			assert.Equal(t, tc.expected, notModified(c, etag))
		})
	}
}
