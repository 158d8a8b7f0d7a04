// Package v1 implements Redfish API v1 error handling and utilities.
package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// redfishError creates a standard Redfish error response structure
func redfishError(messageID, message, severity, resolution string, messageArgs []string) map[string]any {
	extendedInfo := map[string]any{
		"MessageId":  messageID,
		"Message":    message,
		"Severity":   severity,
		"Resolution": resolution,
	}

	// Only add MessageArgs if provided and not empty
	if len(messageArgs) > 0 {
		extendedInfo["MessageArgs"] = messageArgs
	}

	return map[string]any{
		"error": map[string]any{
			"@Message.ExtendedInfo": []map[string]any{extendedInfo},
			"code":                  messageID,
			"message":               message,
		},
	}
}

// SetRedfishHeaders sets standard Redfish-compliant HTTP headers
func SetRedfishHeaders(c *gin.Context) {
	c.Header(ContentTypeHeaderName, ContentTypeJSON)
	c.Header(ODataVersionHeader, ODataVersionValue)
	c.Header(CacheControlHeader, CacheControlValue)
	c.Header(XFrameOptionsHeader, XFrameOptionsValue)
	c.Header(CSPHeader, CSPValue)
}

// redfishErrorResponse sends a Redfish error response with proper headers
func redfishErrorResponse(c *gin.Context, statusCode int, messageID, message, severity, resolution string, messageArgs []string) {
	SetRedfishHeaders(c)
	c.AbortWithStatusJSON(statusCode, redfishError(messageID, message, severity, resolution, messageArgs))
}

// ResourceNotFoundError returns a Redfish-compliant error for missing resources
func ResourceNotFoundError(c *gin.Context, resourceType, resourceID string) {
	redfishErrorResponse(c, http.StatusNotFound,
		BaseResourceNotFoundID,
		fmt.Sprintf("The requested resource of type %s named '%s' was not found.", resourceType, resourceID),
		severityCritical,
		"Provide a valid resource identifier and resubmit the request.",
		[]string{resourceType, resourceID})
}

// NotAcceptableError returns a Redfish-compliant error for unsupported Accept headers
func NotAcceptableError(c *gin.Context, accept string) {
	redfishErrorResponse(c, http.StatusNotAcceptable,
		BaseNotAcceptableID,
		fmt.Sprintf("The requested media type '%s' is not supported. Only application/json is available.", accept),
		severityWarning,
		"Resubmit the request with an Accept header of application/json.",
		[]string{accept})
}

// QueryParameterValueFormatError returns a Redfish-compliant 400 for a malformed query parameter value
func QueryParameterValueFormatError(c *gin.Context, value, parameter string) {
	redfishErrorResponse(c, http.StatusBadRequest,
		BaseQueryParameterFormatID,
		fmt.Sprintf("The value '%s' for the parameter %s is of a different format than the parameter can accept.", value, parameter),
		severityWarning,
		"Correct the value for the query parameter in the request and resubmit the request.",
		[]string{value, parameter})
}

// HTTPMethodNotAllowedError returns a Redfish-compliant 405 naming the allowed methods
func HTTPMethodNotAllowedError(c *gin.Context, method, resource, allowed string) {
	c.Header(HeaderAllow, allowed)
	redfishErrorResponse(c, http.StatusMethodNotAllowed,
		BaseOperationNotAllowedID,
		fmt.Sprintf("The %s method is not allowed on the %s resource.", method, resource),
		severityCritical,
		"Resubmit the request using one of the allowed methods: "+allowed+".",
		[]string{method, resource})
}

// NotImplementedError returns a Redfish-compliant 501 for functionality the service does not provide
func NotImplementedError(c *gin.Context, feature string) {
	feature = strings.TrimSuffix(feature, ".")
	redfishErrorResponse(c, http.StatusNotImplemented,
		BaseActionNotSupportedID,
		fmt.Sprintf("%s is not supported by this service.", feature),
		severityCritical,
		"None.",
		[]string{feature})
}

// ServiceTemporarilyUnavailableError returns a Redfish-compliant 503 error
func ServiceTemporarilyUnavailableError(c *gin.Context) {
	redfishErrorResponse(c, http.StatusServiceUnavailable,
		BaseServiceUnavailableID,
		"The service is temporarily unavailable.",
		severityCritical,
		"Wait and resubmit the request.",
		nil)
}

// GeneralError returns a Redfish-compliant error for general internal errors
func GeneralError(c *gin.Context) {
	redfishErrorResponse(c, http.StatusInternalServerError,
		BaseErrorMessageID,
		"A general error has occurred. See ExtendedInfo for more information.",
		severityCritical,
		"None.",
		nil)
}

// RedfishRecoveryMiddleware turns panics into a Redfish GeneralError body.
func RedfishRecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		GeneralError(c)
	})
}
