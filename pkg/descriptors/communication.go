package descriptors

// CdcType is the bDescriptorSubtype of a CDC functional descriptor
// (CDC spec 1.2, table 13).
type CdcType byte

const (
	CdcTypeHeader                      CdcType = 0x00
	CdcTypeCallManagement              CdcType = 0x01
	CdcTypeAbstractControlManagement   CdcType = 0x02
	CdcTypeDirectLineManagement        CdcType = 0x03
	CdcTypeTelephoneRinger             CdcType = 0x04
	CdcTypeTelephoneCall               CdcType = 0x05
	CdcTypeUnion                       CdcType = 0x06
	CdcTypeCountrySelection            CdcType = 0x07
	CdcTypeTelephoneOperationalModes   CdcType = 0x08
	CdcTypeUsbTerminal                 CdcType = 0x09
	CdcTypeNetworkChannel              CdcType = 0x0a
	CdcTypeProtocolUnit                CdcType = 0x0b
	CdcTypeExtensionUnit               CdcType = 0x0c
	CdcTypeMultiChannelManagement      CdcType = 0x0d
	CdcTypeCapiControlManagement       CdcType = 0x0e
	CdcTypeEthernetNetworking          CdcType = 0x0f
	CdcTypeAtmNetworking               CdcType = 0x10
	CdcTypeWirelessHandsetControlModel CdcType = 0x11
	CdcTypeMobileDirectLineModel       CdcType = 0x12
	CdcTypeMobileDirectLineModelDetail CdcType = 0x13
	CdcTypeDeviceManagement            CdcType = 0x14
	CdcTypeObex                        CdcType = 0x15
	CdcTypeCommandSet                  CdcType = 0x16
	CdcTypeCommandSetDetail            CdcType = 0x17
	CdcTypeTelephoneControlModel       CdcType = 0x18
	CdcTypeObexServiceIdentifier       CdcType = 0x19
	CdcTypeNcm                         CdcType = 0x1a
	CdcTypeMbim                        CdcType = 0x1b
	CdcTypeMbimExtended                CdcType = 0x1c
)

var cdcTypeNames = map[CdcType]string{
	CdcTypeHeader:                      "Header",
	CdcTypeCallManagement:              "Call Management",
	CdcTypeAbstractControlManagement:   "Abstract Control Management",
	CdcTypeDirectLineManagement:        "Direct Line Management",
	CdcTypeTelephoneRinger:             "Telephone Ringer",
	CdcTypeTelephoneCall:               "Telephone Call and Line State Reporting Capabilities",
	CdcTypeUnion:                       "Union",
	CdcTypeCountrySelection:            "Country Selection",
	CdcTypeTelephoneOperationalModes:   "Telephone Operational Modes",
	CdcTypeUsbTerminal:                 "USB Terminal",
	CdcTypeNetworkChannel:              "Network Channel Terminal",
	CdcTypeProtocolUnit:                "Protocol Unit",
	CdcTypeExtensionUnit:               "Extension Unit",
	CdcTypeMultiChannelManagement:      "Multi-Channel Management",
	CdcTypeCapiControlManagement:       "CAPI Control Management",
	CdcTypeEthernetNetworking:          "Ethernet Networking",
	CdcTypeAtmNetworking:               "ATM Networking",
	CdcTypeWirelessHandsetControlModel: "Wireless Handset Control Model",
	CdcTypeMobileDirectLineModel:       "Mobile Direct Line Model Functional",
	CdcTypeMobileDirectLineModelDetail: "Mobile Direct Line Model Detail",
	CdcTypeDeviceManagement:            "Device Management",
	CdcTypeObex:                        "OBEX",
	CdcTypeCommandSet:                  "Command Set",
	CdcTypeCommandSetDetail:            "Command Set Detail",
	CdcTypeTelephoneControlModel:       "Telephone Control Model",
	CdcTypeObexServiceIdentifier:       "OBEX Service Identifier",
	CdcTypeNcm:                         "NCM",
	CdcTypeMbim:                        "MBIM",
	CdcTypeMbimExtended:                "MBIM Extended",
}

func (t CdcType) String() string {
	if name, ok := cdcTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// CommunicationDescriptor is a CDC functional descriptor. The tail layout
// varies per subtype; it is kept raw, with the string index extracted for
// the subtypes that carry one.
type CommunicationDescriptor struct {
	Length            uint8
	DescriptorType    uint8
	CommunicationType CdcType
	StringIndex       *uint8
	String            *string
	Data              []byte
}

func (cd *CommunicationDescriptor) isClassDescriptor() {}

func (cd *CommunicationDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("communication descriptor", 4, len(buf))
	}
	if int(buf[0]) > len(buf) {
		return truncated("communication descriptor", int(buf[0]), len(buf))
	}
	cd.Length = buf[0]
	cd.DescriptorType = buf[1]
	cd.CommunicationType = CdcType(buf[2])
	cd.StringIndex = cd.stringIndex(buf)
	cd.Data = dup(buf[3:])
	return nil
}

func (cd *CommunicationDescriptor) stringIndex(buf []byte) *uint8 {
	var pos int
	switch cd.CommunicationType {
	case CdcTypeEthernetNetworking, CdcTypeCountrySelection:
		pos = 3
	case CdcTypeNetworkChannel:
		pos = 4
	case CdcTypeCommandSet:
		pos = 5
	default:
		return nil
	}
	if pos >= len(buf) {
		return nil
	}
	idx := buf[pos]
	return &idx
}

func (cd *CommunicationDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3, 3+len(cd.Data))
	buf[0] = cd.Length
	buf[1] = cd.DescriptorType
	buf[2] = byte(cd.CommunicationType)
	return append(buf, cd.Data...), nil
}
