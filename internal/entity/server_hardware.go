package entity

// PortType is the link technology reported for a physical port.
type PortType string

const (
	PortTypeEthernet     PortType = "Ethernet"
	PortTypeFibreChannel PortType = "FibreChannel"
	PortTypeInfiniband   PortType = "Infiniband"
)

// ServerHardware is the subset of a OneView server-hardware document the
// Redfish translation reads. Pointer fields distinguish an absent key from a
// zero value.
type ServerHardware struct {
	UUID    string   `json:"uuid"              validate:"required"`
	Name    string   `json:"name,omitempty"`
	Model   string   `json:"model,omitempty"`
	PortMap *PortMap `json:"portMap,omitempty"`
}

// PortMap groups physical ports by device slot.
type PortMap struct {
	DeviceSlots []DeviceSlot `json:"deviceSlots" validate:"dive"`
}

// DeviceSlot is one network adapter. Its position in DeviceSlots (1-based)
// is the NetworkAdapter id.
type DeviceSlot struct {
	DeviceName    string         `json:"deviceName,omitempty"`
	Location      string         `json:"location,omitempty"`
	SlotNumber    int            `json:"slotNumber,omitempty"`
	PhysicalPorts []PhysicalPort `json:"physicalPorts" validate:"dive"`
}

// PhysicalPort describes one port of an adapter.
type PhysicalPort struct {
	PortNumber *int     `json:"portNumber,omitempty" validate:"omitempty,gte=0"`
	Type       PortType `json:"type,omitempty"`
	MAC        *string  `json:"mac,omitempty"`
	WWN        *string  `json:"wwn,omitempty"`
}

// Slot returns the device slot addressed by a zero-based index.
func (m *PortMap) Slot(index int) (*DeviceSlot, bool) {
	if m == nil || index < 0 || index >= len(m.DeviceSlots) {
		return nil, false
	}

	return &m.DeviceSlots[index], true
}
