package descriptors

// MidiSubtype is the bDescriptorSubtype of a MIDI streaming interface
// descriptor (USB MIDI spec 1.0, table 6-1).
type MidiSubtype byte

const (
	MidiSubtypeUndefined  MidiSubtype = 0x00
	MidiSubtypeHeader     MidiSubtype = 0x01
	MidiSubtypeInputJack  MidiSubtype = 0x02
	MidiSubtypeOutputJack MidiSubtype = 0x03
	MidiSubtypeElement    MidiSubtype = 0x04
)

func (s MidiSubtype) String() string {
	switch s {
	case MidiSubtypeHeader:
		return "Header"
	case MidiSubtypeInputJack:
		return "Input Jack"
	case MidiSubtypeOutputJack:
		return "Output Jack"
	case MidiSubtypeElement:
		return "Element"
	default:
		return "Undefined"
	}
}

// MidiDescriptor is a MIDI streaming interface descriptor. Jack and
// element layouts vary, so the tail stays raw with the jack/element
// string index extracted.
type MidiDescriptor struct {
	Length         uint8
	DescriptorType uint8
	MidiType       MidiSubtype
	Protocol       uint8
	StringIndex    *uint8
	String         *string
	Data           []byte
}

func (md *MidiDescriptor) isClassDescriptor() {}

func (md *MidiDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return truncated("MIDI descriptor", 3, len(buf))
	}
	if int(buf[0]) > len(buf) {
		return truncated("MIDI descriptor", int(buf[0]), len(buf))
	}
	md.Length = buf[0]
	md.DescriptorType = buf[1]
	md.MidiType = MidiSubtype(buf[2])
	md.StringIndex = md.stringIndex(buf)
	md.Data = dup(buf[3:])
	return nil
}

// stringIndex finds iJack/iElement. Output jacks put it after the source
// pin pairs; elements after the pin pairs plus the capability bitmap.
func (md *MidiDescriptor) stringIndex(buf []byte) *uint8 {
	at := func(pos int) *uint8 {
		if pos < 0 || pos >= len(buf) {
			return nil
		}
		idx := buf[pos]
		return &idx
	}
	switch md.MidiType {
	case MidiSubtypeInputJack:
		return at(5)
	case MidiSubtypeOutputJack:
		if len(buf) < 6 {
			return nil
		}
		return at(6 + 2*int(buf[5]))
	case MidiSubtypeElement:
		if len(buf) < 5 {
			return nil
		}
		pins := int(buf[4])
		capsAt := 8 + 2*pins
		if capsAt >= len(buf) {
			return nil
		}
		return at(9 + 2*pins + int(buf[capsAt]))
	default:
		return nil
	}
}

func (md *MidiDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3, 3+len(md.Data))
	buf[0] = md.Length
	buf[1] = md.DescriptorType
	buf[2] = byte(md.MidiType)
	return append(buf, md.Data...), nil
}

// MidiEndpointDescriptor is the class-specific MIDI streaming endpoint
// descriptor listing the embedded jacks the endpoint serves (USB MIDI
// spec 1.0, 6.2.2).
type MidiEndpointDescriptor struct {
	Length            uint8
	DescriptorType    uint8
	DescriptorSubtype uint8
	Jacks             []uint8
}

func (med *MidiEndpointDescriptor) isClassDescriptor() {}

func (med *MidiEndpointDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("MIDI endpoint descriptor", 4, len(buf))
	}
	numJacks := int(buf[3])
	if 4+numJacks > len(buf) {
		return truncated("MIDI endpoint jack IDs", 4+numJacks, len(buf))
	}
	med.Length = buf[0]
	med.DescriptorType = buf[1]
	med.DescriptorSubtype = buf[2]
	med.Jacks = dup(buf[4 : 4+numJacks])
	return nil
}

func (med *MidiEndpointDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4, 4+len(med.Jacks))
	buf[0] = med.Length
	buf[1] = med.DescriptorType
	buf[2] = med.DescriptorSubtype
	buf[3] = uint8(len(med.Jacks))
	return append(buf, med.Jacks...), nil
}
