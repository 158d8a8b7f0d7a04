/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/device-management-toolkit/oneview-redfish/config"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
)

// serviceUUID returns the configured service UUID, or a new random one when
// none is configured or the configured value does not parse.
func serviceUUID(configured string, l logger.Interface) string {
	if configured == "" {
		return uuid.NewString()
	}

	parsed, err := uuid.Parse(configured)
	if err != nil {
		l.Warn("redfish - invalid service uuid %q, generating one: %v", configured, err)

		return uuid.NewString()
	}

	return parsed.String()
}

// NewServiceRootRoutes registers Redfish API v1 service root routes
func NewServiceRootRoutes(r *gin.RouterGroup, cfg *config.Config, l logger.Interface) {
	rootUUID := serviceUUID(cfg.Redfish.ServiceUUID, l)

	r.GET("/", func(c *gin.Context) {
		SetRedfishHeaders(c)

		if !isAcceptHeaderValid(c) {
			return
		}

		payload := map[string]any{
			"@odata.type":    SchemaServiceRoot,
			"@odata.context": ODataContextServiceRoot,
			"@odata.id":      PathRedfishRoot,
			"Id":             ServiceRootID,
			"Name":           ServiceRootName,
			"RedfishVersion": RedfishVersion,
			"UUID":           rootUUID,
			"Chassis":        map[string]any{"@odata.id": PathChassis},
			"Links":          map[string]any{},
			"Product":        ServiceProduct,
			"Vendor":         ServiceVendor,
		}

		c.JSON(http.StatusOK, payload)
	})

	for _, method := range []string{MethodPOST, MethodPUT, MethodPATCH, MethodDELETE} {
		r.Handle(method, "/", methodNotAllowed(method, "ServiceRoot", MethodGET))
	}

	l.Info("Registered Redfish v1 Service Root at %s", r.BasePath())
}
