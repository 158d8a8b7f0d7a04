/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package v1 implements Redfish API v1 NetworkPort resources.
package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/internal/entity/dto/v1"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/inventory"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/networkport"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
)

const (
	resourceChassis               = "Chassis"
	resourceNetworkPort           = "NetworkPort"
	resourceNetworkPortCollection = "NetworkPortCollection"

	networkPortsRoute = "/Chassis/:chassisId/NetworkAdapters/:deviceId/NetworkPorts"
	networkPortRoute  = networkPortsRoute + "/:portId"
)

// PortBuilder renders NetworkPort resources from server hardware.
type PortBuilder interface {
	Build(deviceID, portID string, hw *entity.ServerHardware) (*dto.NetworkPort, error)
	BuildCollection(deviceID string, hw *entity.ServerHardware) (*dto.NetworkPortCollection, error)
}

// NewNetworkPortRoutes registers NetworkPort routes with the router.
// It exposes:
// - GET /redfish/v1/Chassis/:chassisId/NetworkAdapters/:deviceId/NetworkPorts
// - GET /redfish/v1/Chassis/:chassisId/NetworkAdapters/:deviceId/NetworkPorts/:portId
// The :chassisId is the OneView server-hardware uuid and :deviceId the 1-based device slot.
func NewNetworkPortRoutes(r *gin.RouterGroup, inv inventory.Feature, b PortBuilder, l logger.Interface) {
	r.GET(networkPortsRoute, getNetworkPortCollectionHandler(inv, b, l))
	r.GET(networkPortRoute, getNetworkPortHandler(inv, b, l))

	for _, method := range []string{MethodPOST, MethodPUT, MethodPATCH, MethodDELETE} {
		r.Handle(method, networkPortsRoute, methodNotAllowed(method, resourceNetworkPortCollection, MethodGET))
		r.Handle(method, networkPortRoute, methodNotAllowed(method, resourceNetworkPort, MethodGET))
	}

	l.Info("Registered Redfish v1 NetworkPort routes under %s", r.BasePath()+networkPortsRoute)
}

func getNetworkPortHandler(inv inventory.Feature, b PortBuilder, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetRedfishHeaders(c)

		if !isAcceptHeaderValid(c) {
			return
		}

		hw, ok := getServerHardware(c, inv, l, resourceNetworkPort)
		if !ok {
			return
		}

		port, err := b.Build(c.Param("deviceId"), c.Param("portId"), hw)
		if err != nil {
			handleBuildError(c, l, err, resourceNetworkPort)

			return
		}

		respond(c, l, port, resourceNetworkPort)
	}
}

func getNetworkPortCollectionHandler(inv inventory.Feature, b PortBuilder, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetRedfishHeaders(c)

		if !isAcceptHeaderValid(c) {
			return
		}

		hw, ok := getServerHardware(c, inv, l, resourceNetworkPortCollection)
		if !ok {
			return
		}

		collection, err := b.BuildCollection(c.Param("deviceId"), hw)
		if err != nil {
			handleBuildError(c, l, err, resourceNetworkPortCollection)

			return
		}

		respond(c, l, collection, resourceNetworkPortCollection)
	}
}

// getServerHardware looks up the chassis document, answering 404 or 500 on failure
func getServerHardware(c *gin.Context, inv inventory.Feature, l logger.Interface, resource string) (*entity.ServerHardware, bool) {
	chassisID := c.Param("chassisId")

	hw, err := inv.GetServerHardware(c.Request.Context(), chassisID)
	if errors.Is(err, inventory.ErrNotFound) {
		networkPortRequests.WithLabelValues(resource, outcomeNotFound).Inc()
		ResourceNotFoundError(c, resourceChassis, chassisID)

		return nil, false
	}

	if err != nil {
		networkPortRequests.WithLabelValues(resource, outcomeError).Inc()
		l.Error(err, "http - redfish - "+resource+" - server hardware lookup", "chassisId", chassisID)

		if errors.Is(err, context.DeadlineExceeded) {
			ServiceTemporarilyUnavailableError(c)
		} else {
			GeneralError(c)
		}

		return nil, false
	}

	return hw, true
}

// handleBuildError maps builder errors onto Redfish responses
func handleBuildError(c *gin.Context, l logger.Interface, err error, resource string) {
	var nf *networkport.NotFoundError

	switch {
	case errors.As(err, &nf):
		networkPortRequests.WithLabelValues(resource, outcomeNotFound).Inc()
		ResourceNotFoundError(c, nf.ResourceType, nf.ID)
	case errors.Is(err, networkport.ErrTypeNotSupported):
		networkPortRequests.WithLabelValues(resource, outcomeNotSupported).Inc()
		l.Warn("http - redfish - %s: %v", resource, err)
		NotImplementedError(c, "Representing this port type")
	default:
		networkPortRequests.WithLabelValues(resource, outcomeError).Inc()
		l.Error(err, "http - redfish - "+resource+" - build")
		GeneralError(c)
	}
}

func respond(c *gin.Context, l logger.Interface, payload any, resource string) {
	if err := writeResource(c, payload); err != nil {
		networkPortRequests.WithLabelValues(resource, outcomeError).Inc()
		l.Error(err, "http - redfish - "+resource+" - encode")
		GeneralError(c)

		return
	}

	networkPortRequests.WithLabelValues(resource, outcomeOK).Inc()
}
