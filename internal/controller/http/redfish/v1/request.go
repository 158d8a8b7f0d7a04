package v1

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// isAcceptHeaderValid validates the Accept header
func isAcceptHeaderValid(c *gin.Context) bool {
	acceptHeader := c.GetHeader(HeaderAccept)
	if acceptHeader != "" && !strings.Contains(acceptHeader, MediaTypeJSON) && !strings.Contains(acceptHeader, MediaTypeWildcard) {
		NotAcceptableError(c, acceptHeader)

		return false
	}

	return true
}

// generateETag creates a weak ETag from the serialized payload
func generateETag(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)

	return fmt.Sprintf(`W/"%x"`, hash[:8]), nil
}

// notModified reports whether If-None-Match already names etag, answering 304 when it does
func notModified(c *gin.Context, etag string) bool {
	ifNoneMatch := c.GetHeader(HeaderIfNoneMatch)
	if ifNoneMatch == "" {
		return false
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag || "W/"+candidate == etag {
			c.Header(HeaderETag, etag)
			c.Status(http.StatusNotModified)

			return true
		}
	}

	return false
}

// writeResource sends payload with an ETag, honoring If-None-Match
func writeResource(c *gin.Context, payload any) error {
	etag, err := generateETag(payload)
	if err != nil {
		return err
	}

	if notModified(c, etag) {
		return nil
	}

	c.Header(HeaderETag, etag)
	c.JSON(http.StatusOK, payload)

	return nil
}

// methodNotAllowed builds a handler rejecting method on resource
func methodNotAllowed(method, resource, allowed string) gin.HandlerFunc {
	return func(c *gin.Context) {
		HTTPMethodNotAllowedError(c, method, resource, allowed)
	}
}
