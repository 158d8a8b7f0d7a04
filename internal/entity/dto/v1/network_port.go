package dto

// NetworkPort is the Redfish NetworkPort resource. Field order is the
// serialized member order.
type NetworkPort struct {
	ODataType                  string   `json:"@odata.type"`
	ID                         string   `json:"Id"`
	Name                       string   `json:"Name"`
	PhysicalPortNumber         string   `json:"PhysicalPortNumber"`
	ActiveLinkTechnology       string   `json:"ActiveLinkTechnology"`
	AssociatedNetworkAddresses []string `json:"AssociatedNetworkAddresses"`
	ODataContext               string   `json:"@odata.context"`
	ODataID                    string   `json:"@odata.id"`
}

// NetworkPortCollection lists the ports of one NetworkAdapter.
type NetworkPortCollection struct {
	ODataType    string          `json:"@odata.type"`
	Name         string          `json:"Name"`
	Description  string          `json:"Description,omitempty"`
	MembersCount int             `json:"Members@odata.count"`
	Members      []ODataIDMember `json:"Members"`
	ODataContext string          `json:"@odata.context"`
	ODataID      string          `json:"@odata.id"`
}

// ODataIDMember references another resource by its @odata.id.
type ODataIDMember struct {
	ODataID string `json:"@odata.id"`
}
