package descriptors

import "github.com/google/uuid"

// UvcInterface is the bDescriptorSubtype of a video control interface
// descriptor (UVC spec 1.5, table 3-3).
type UvcInterface byte

const (
	UvcInterfaceUndefined      UvcInterface = 0x00
	UvcInterfaceHeader         UvcInterface = 0x01
	UvcInterfaceInputTerminal  UvcInterface = 0x02
	UvcInterfaceOutputTerminal UvcInterface = 0x03
	UvcInterfaceSelectorUnit   UvcInterface = 0x04
	UvcInterfaceProcessingUnit UvcInterface = 0x05
	UvcInterfaceExtensionUnit  UvcInterface = 0x06
	UvcInterfaceEncodingUnit   UvcInterface = 0x07
)

func (i UvcInterface) String() string {
	switch i {
	case UvcInterfaceUndefined:
		return "Undefined"
	case UvcInterfaceHeader:
		return "Header"
	case UvcInterfaceInputTerminal:
		return "Input Terminal"
	case UvcInterfaceOutputTerminal:
		return "Output Terminal"
	case UvcInterfaceSelectorUnit:
		return "Selector Unit"
	case UvcInterfaceProcessingUnit:
		return "Processing Unit"
	case UvcInterfaceExtensionUnit:
		return "Extension Unit"
	case UvcInterfaceEncodingUnit:
		return "Encoding Unit"
	default:
		return "Unknown"
	}
}

// UvcDescriptor is a video class interface descriptor. The tail stays raw;
// the string index is lifted out per subtype so callers can resolve it
// without knowing the layouts.
type UvcDescriptor struct {
	Length         uint8
	DescriptorType uint8
	SubType        UvcInterface
	Protocol       uint8
	StringIndex    *uint8
	String         *string
	Data           []byte
}

func (vd *UvcDescriptor) isClassDescriptor() {}

func (vd *UvcDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return truncated("video descriptor", 3, len(buf))
	}
	if int(buf[0]) > len(buf) {
		return truncated("video descriptor", int(buf[0]), len(buf))
	}
	vd.Length = buf[0]
	vd.DescriptorType = buf[1]
	vd.SubType = UvcInterface(buf[2])
	vd.StringIndex = vd.stringIndex(buf)
	vd.Data = dup(buf[3:])
	return nil
}

// stringIndex locates the iTerminal/iSelector/... byte for subtypes that
// carry one. Positions past variable pin and control tables are computed
// from the count bytes; anything out of range yields nil rather than an
// error since the descriptor itself already decoded.
func (vd *UvcDescriptor) stringIndex(buf []byte) *uint8 {
	at := func(pos int) *uint8 {
		if pos < 0 || pos >= len(buf) {
			return nil
		}
		idx := buf[pos]
		return &idx
	}
	switch vd.SubType {
	case UvcInterfaceInputTerminal:
		return at(7)
	case UvcInterfaceOutputTerminal:
		return at(8)
	case UvcInterfaceSelectorUnit:
		if len(buf) < 5 {
			return nil
		}
		return at(5 + int(buf[4]))
	case UvcInterfaceProcessingUnit:
		if len(buf) < 8 {
			return nil
		}
		return at(8 + int(buf[7]))
	case UvcInterfaceExtensionUnit:
		if len(buf) < 22 {
			return nil
		}
		pins := int(buf[21])
		if 22+pins >= len(buf) {
			return nil
		}
		controls := int(buf[22+pins])
		return at(23 + pins + controls)
	case UvcInterfaceEncodingUnit:
		return at(5)
	default:
		return nil
	}
}

// GUID returns the extension code of an extension unit. The wire carries
// the first three GUID groups little-endian; they are swapped to the
// RFC 4122 byte order uuid expects.
func (vd *UvcDescriptor) GUID() (uuid.UUID, bool) {
	if vd.SubType != UvcInterfaceExtensionUnit || len(vd.Data) < 17 {
		return uuid.Nil, false
	}
	src := vd.Data[1:17]
	var swapped [16]byte
	swapped[0], swapped[1], swapped[2], swapped[3] = src[3], src[2], src[1], src[0]
	swapped[4], swapped[5] = src[5], src[4]
	swapped[6], swapped[7] = src[7], src[6]
	copy(swapped[8:], src[8:])
	id, err := uuid.FromBytes(swapped[:])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (vd *UvcDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3, 3+len(vd.Data))
	buf[0] = vd.Length
	buf[1] = vd.DescriptorType
	buf[2] = byte(vd.SubType)
	return append(buf, vd.Data...), nil
}
