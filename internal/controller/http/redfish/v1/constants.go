/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package v1 implements Redfish API v1 constants and shared values.
package v1

// Redfish Base Message Registry constants - used across multiple files
const (
	BaseErrorMessageID         = "Base.1.11.0.GeneralError"
	BaseResourceNotFoundID     = "Base.1.11.0.ResourceNotFound"
	BaseNotAcceptableID        = "Base.1.11.0.NotAcceptable"
	BaseOperationNotAllowedID  = "Base.1.11.0.OperationNotAllowed"
	BaseActionNotSupportedID   = "Base.1.11.0.ActionNotSupported"
	BaseServiceUnavailableID   = "Base.1.11.0.ServiceTemporarilyUnavailable"
	BaseQueryParameterFormatID = "Base.1.11.0.QueryParameterValueFormatError"
	severityCritical           = "Critical"
	severityWarning            = "Warning"
)

// HTTP Header constants for Redfish compliance
const (
	ContentTypeJSON       = "application/json; charset=utf-8"
	ContentTypeHeaderName = "Content-Type"
	ODataVersionValue     = "4.0"
	ODataVersionHeader    = "OData-Version"
	CacheControlValue     = "no-cache"
	CacheControlHeader    = "Cache-Control"
	XFrameOptionsHeader   = "X-Frame-Options"
	XFrameOptionsValue    = "DENY"
	CSPHeader             = "Content-Security-Policy"
	CSPValue              = "default-src 'self'"
	HeaderAllow           = "Allow"
	HeaderETag            = "ETag"
	HeaderIfNoneMatch     = "If-None-Match"
)

// Additional HTTP constants
const (
	MediaTypeJSON     = "application/json"
	MediaTypeWildcard = "*/*"
	HeaderAccept      = "Accept"
	MethodGET         = "GET"
	MethodPOST        = "POST"
	MethodPUT         = "PUT"
	MethodPATCH       = "PATCH"
	MethodDELETE      = "DELETE"
	QuerySkip         = "$skip"
)

// Redfish Service Information
const (
	RedfishVersion  = "1.11.0"
	ServiceRootID   = "RootService"
	ServiceRootName = "Redfish Root Service"
	ServiceProduct  = "OneView Redfish Toolkit"
	ServiceVendor   = "Hewlett Packard Enterprise"
)

// Common Redfish Schema Types - used across multiple files
const (
	SchemaServiceRoot       = "#ServiceRoot.v1_11_0.ServiceRoot"
	SchemaChassisCollection = "#ChassisCollection.ChassisCollection"
)

// Common Redfish API Paths - used across multiple files
const (
	PathRedfishRoot = "/redfish/v1/"
	PathChassis     = PathRedfishRoot + "Chassis"
	PathMetadata    = PathRedfishRoot + "$metadata"
)

// OData Context paths for metadata
const (
	ODataContextServiceRoot       = PathMetadata + "#ServiceRoot.ServiceRoot"
	ODataContextChassisCollection = PathMetadata + "#ChassisCollection.ChassisCollection"
)

// BuildChassisPath builds a path to a specific chassis: /redfish/v1/Chassis/{chassisID}
func BuildChassisPath(chassisID string) string {
	return PathChassis + "/" + chassisID
}
