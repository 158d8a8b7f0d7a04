/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package v1 implements Redfish API v1 Chassis resources.
package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/inventory"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
)

// chassisPageSize bounds one Chassis collection page; later pages are
// reached through Members@odata.nextLink.
const chassisPageSize = 1000

// ChassisCollection represents a Redfish Chassis collection
type ChassisCollection struct {
	ODataContext string             `json:"@odata.context"`
	ODataID      string             `json:"@odata.id"`
	ODataType    string             `json:"@odata.type"`
	Name         string             `json:"Name"`
	Description  string             `json:"Description"`
	MembersCount int                `json:"Members@odata.count"`
	Members      []ChassisReference `json:"Members"`
	NextLink     string             `json:"Members@odata.nextLink,omitempty"`
}

// ChassisReference represents a reference to a chassis instance
type ChassisReference struct {
	ODataID string `json:"@odata.id"`
}

// NewChassisRoutes registers the Chassis collection route with the router
func NewChassisRoutes(r *gin.RouterGroup, inv inventory.Feature, l logger.Interface) {
	r.GET("/Chassis", getChassisCollectionHandler(inv, l))

	for _, method := range []string{MethodPOST, MethodPUT, MethodPATCH, MethodDELETE} {
		r.Handle(method, "/Chassis", methodNotAllowed(method, "ChassisCollection", MethodGET))
	}

	l.Info("Registered Redfish v1 Chassis routes")
}

// getChassisCollectionHandler handles GET requests for the Chassis collection
func getChassisCollectionHandler(inv inventory.Feature, l logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetRedfishHeaders(c)

		if !isAcceptHeaderValid(c) {
			return
		}

		skip, ok := parseSkip(c)
		if !ok {
			return
		}

		ids, err := inv.GetChassisIDs(c.Request.Context(), chassisPageSize, skip)
		if err != nil {
			l.Error(err, "http - redfish - Chassis collection")
			GeneralError(c)

			return
		}

		total, err := inv.CountChassis(c.Request.Context())
		if err != nil {
			l.Error(err, "http - redfish - Chassis collection - count")
			GeneralError(c)

			return
		}

		collection := buildChassisCollection(buildChassisMembers(ids), total)
		if next := skip + len(ids); len(ids) > 0 && next < total {
			collection.NextLink = PathChassis + "?" + QuerySkip + "=" + strconv.Itoa(next)
		}

		if err := writeResource(c, collection); err != nil {
			l.Error(err, "http - redfish - Chassis collection - encode")
			GeneralError(c)
		}
	}
}

// buildChassisMembers creates chassis references from server-hardware uuids
func buildChassisMembers(ids []string) []ChassisReference {
	members := make([]ChassisReference, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}

		members = append(members, ChassisReference{ODataID: BuildChassisPath(id)})
	}

	return members
}

// parseSkip reads the $skip query parameter, answering 400 when it is not a
// non-negative integer
func parseSkip(c *gin.Context) (int, bool) {
	raw, present := c.GetQuery(QuerySkip)
	if !present {
		return 0, true
	}

	skip, err := strconv.Atoi(raw)
	if err != nil || skip < 0 {
		QueryParameterValueFormatError(c, raw, QuerySkip)

		return 0, false
	}

	return skip, true
}

// buildChassisCollection creates the chassis collection response; total is
// the size of the whole collection, not of this page
func buildChassisCollection(members []ChassisReference, total int) ChassisCollection {
	return ChassisCollection{
		ODataContext: ODataContextChassisCollection,
		ODataID:      PathChassis,
		ODataType:    SchemaChassisCollection,
		Name:         "Chassis Collection",
		Description:  "Collection of Chassis instances",
		MembersCount: total,
		Members:      members,
	}
}
