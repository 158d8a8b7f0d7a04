// Package networkport builds Redfish NetworkPort resources from OneView
// server-hardware port maps.
package networkport

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/internal/entity/dto/v1"
	"github.com/device-management-toolkit/oneview-redfish/pkg/schema"
)

const (
	// SchemaName is the schema a NetworkPort is validated against.
	SchemaName = "NetworkPort"

	// CollectionSchemaName is the schema a NetworkPortCollection is validated against.
	CollectionSchemaName = "NetworkPortCollection"

	ResourceType        = "NetworkPort"
	adapterResourceType = "NetworkAdapter"

	ODataType           = "#NetworkPort.v1_1_0.NetworkPort"
	ODataContext        = "/redfish/v1/$metadata#NetworkPort.NetworkPort"
	CollectionODataType = "#NetworkPortCollection.NetworkPortCollection"
	CollectionContext   = "/redfish/v1/$metadata#NetworkPortCollection.NetworkPortCollection"
)

var (
	errNoPortMap      = errors.New("server hardware has no port map")
	errSlotOutOfRange = errors.New("device slot out of range")
	errPortNumber     = errors.New("physical port without portNumber")
	errNoMatch        = errors.New("no physical port matches")
)

// Builder turns server-hardware port descriptors into Redfish resources.
// It keeps no per-call state and is safe for concurrent use.
type Builder struct {
	validator schema.Interface
}

// New -.
func New(v schema.Interface) *Builder {
	return &Builder{validator: v}
}

// AdapterPath returns /redfish/v1/Chassis/{uuid}/NetworkAdapters/{deviceID}.
func AdapterPath(chassisUUID, deviceID string) string {
	return "/redfish/v1/Chassis/" + chassisUUID + "/NetworkAdapters/" + deviceID
}

// PortsPath returns the NetworkPorts collection path of an adapter.
func PortsPath(chassisUUID, deviceID string) string {
	return AdapterPath(chassisUUID, deviceID) + "/NetworkPorts"
}

// PortPath returns the path of a single NetworkPort.
func PortPath(chassisUUID, deviceID, portID string) string {
	return PortsPath(chassisUUID, deviceID) + "/" + portID
}

// IsAllowedType reports whether t is one of the link technologies a
// NetworkPort may expose.
func IsAllowedType(t entity.PortType) bool {
	switch t {
	case entity.PortTypeEthernet, entity.PortTypeFibreChannel, entity.PortTypeInfiniband:
		return true
	default:
		return false
	}
}

// Build returns the NetworkPort portID of the adapter deviceID (1-based slot).
//
// Parse failures, a missing port map, an out of range slot, a port without a
// portNumber, no matching port and a matched port of a disallowed type are all
// reported as *NotFoundError for portID. An allowed type without an address
// mapping yields ErrTypeNotSupported. Schema validation errors are returned
// unchanged.
func (b *Builder) Build(deviceID, portID string, hw *entity.ServerHardware) (*dto.NetworkPort, error) {
	port, err := findPort(deviceID, portID, hw)
	if err != nil {
		return nil, &NotFoundError{ID: portID, ResourceType: ResourceType, Cause: err}
	}

	address, err := associatedAddress(port)
	if err != nil {
		return nil, err
	}

	resource := &dto.NetworkPort{
		ODataType:                  ODataType,
		ID:                         portID,
		Name:                       "Physical port " + portID,
		PhysicalPortNumber:         portID,
		ActiveLinkTechnology:       string(port.Type),
		AssociatedNetworkAddresses: []string{address},
		ODataContext:               ODataContext,
		ODataID:                    PortPath(hw.UUID, deviceID, portID),
	}

	if err := b.validator.Validate(resource, SchemaName); err != nil {
		return nil, err
	}

	return resource, nil
}

// BuildCollection lists the ports of adapter deviceID whose type is allowed.
// Slot lookup failures are reported as *NotFoundError for the adapter.
func (b *Builder) BuildCollection(deviceID string, hw *entity.ServerHardware) (*dto.NetworkPortCollection, error) {
	slot, err := findSlot(deviceID, hw)
	if err != nil {
		return nil, &NotFoundError{ID: deviceID, ResourceType: adapterResourceType, Cause: err}
	}

	members := make([]dto.ODataIDMember, 0, len(slot.PhysicalPorts))

	for i := range slot.PhysicalPorts {
		p := &slot.PhysicalPorts[i]
		if p.PortNumber == nil || !IsAllowedType(p.Type) {
			continue
		}

		members = append(members, dto.ODataIDMember{
			ODataID: PortPath(hw.UUID, deviceID, strconv.Itoa(*p.PortNumber)),
		})
	}

	collection := &dto.NetworkPortCollection{
		ODataType:    CollectionODataType,
		Name:         "Network Port Collection",
		Description:  "NetworkPorts of NetworkAdapter " + deviceID,
		MembersCount: len(members),
		Members:      members,
		ODataContext: CollectionContext,
		ODataID:      PortsPath(hw.UUID, deviceID),
	}

	if err := b.validator.Validate(collection, CollectionSchemaName); err != nil {
		return nil, err
	}

	return collection, nil
}

func findSlot(deviceID string, hw *entity.ServerHardware) (*entity.DeviceSlot, error) {
	device, err := strconv.Atoi(deviceID)
	if err != nil {
		return nil, fmt.Errorf("device id %q: %w", deviceID, err)
	}

	if hw == nil || hw.PortMap == nil {
		return nil, errNoPortMap
	}

	slot, ok := hw.PortMap.Slot(device - 1)
	if !ok {
		return nil, fmt.Errorf("%w: %d", errSlotOutOfRange, device)
	}

	return slot, nil
}

// findPort returns the first port in the slot whose number equals portID.
func findPort(deviceID, portID string, hw *entity.ServerHardware) (*entity.PhysicalPort, error) {
	slot, err := findSlot(deviceID, hw)
	if err != nil {
		return nil, err
	}

	for i := range slot.PhysicalPorts {
		p := &slot.PhysicalPorts[i]
		if p.PortNumber == nil {
			return nil, errPortNumber
		}

		number, err := strconv.Atoi(portID)
		if err != nil {
			return nil, fmt.Errorf("port id %q: %w", portID, err)
		}

		if *p.PortNumber != number {
			continue
		}

		if !IsAllowedType(p.Type) {
			return nil, ErrInvalidPortType
		}

		return p, nil
	}

	return nil, errNoMatch
}

func associatedAddress(p *entity.PhysicalPort) (string, error) {
	var address *string

	switch p.Type {
	case entity.PortTypeEthernet:
		address = p.MAC
	case entity.PortTypeFibreChannel:
		address = p.WWN
	default:
		return "", fmt.Errorf("%w: %s", ErrTypeNotSupported, p.Type)
	}

	if address == nil {
		return "", fmt.Errorf("%w: %s port has no address", ErrAddressMissing, p.Type)
	}

	return *address, nil
}
