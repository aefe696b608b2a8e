package descriptors

import "encoding/binary"

// CcidDescriptor is the smart card functional descriptor (CCID spec 1.1,
// 5.1). Fixed 54-byte layout, no subtype dispatch.
type CcidDescriptor struct {
	Length           uint8
	DescriptorType   uint8
	Version          Version
	MaxSlotIndex     uint8
	VoltageSupport   uint8
	Protocols        uint32
	DefaultClock     uint32
	MaxClock         uint32
	NumClockSupport  uint8
	DataRate         uint32
	MaxDataRate      uint32
	NumDataRates     uint8
	MaxIFSD          uint32
	SynchProtocols   uint32
	Mechanical       uint32
	Features         uint32
	MaxCCIDMsgLen    uint32
	ClassGetResponse uint8
	ClassEnvelope    uint8
	LcdLayout        [2]uint8
	PinSupport       uint8
	MaxCCIDBusySlots uint8
}

func (cd *CcidDescriptor) isClassDescriptor() {}

func (cd *CcidDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 54 {
		return truncated("CCID descriptor", 54, len(buf))
	}
	le := binary.LittleEndian
	cd.Length = buf[0]
	cd.DescriptorType = buf[1]
	cd.Version = FromBCD(le.Uint16(buf[2:4]))
	cd.MaxSlotIndex = buf[4]
	cd.VoltageSupport = buf[5]
	cd.Protocols = le.Uint32(buf[6:10])
	cd.DefaultClock = le.Uint32(buf[10:14])
	cd.MaxClock = le.Uint32(buf[14:18])
	cd.NumClockSupport = buf[18]
	cd.DataRate = le.Uint32(buf[19:23])
	cd.MaxDataRate = le.Uint32(buf[23:27])
	cd.NumDataRates = buf[27]
	cd.MaxIFSD = le.Uint32(buf[28:32])
	cd.SynchProtocols = le.Uint32(buf[32:36])
	cd.Mechanical = le.Uint32(buf[36:40])
	cd.Features = le.Uint32(buf[40:44])
	cd.MaxCCIDMsgLen = le.Uint32(buf[44:48])
	cd.ClassGetResponse = buf[48]
	cd.ClassEnvelope = buf[49]
	cd.LcdLayout = [2]uint8{buf[50], buf[51]}
	cd.PinSupport = buf[52]
	cd.MaxCCIDBusySlots = buf[53]
	return nil
}

func (cd *CcidDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 54)
	le := binary.LittleEndian
	buf[0] = cd.Length
	buf[1] = cd.DescriptorType
	le.PutUint16(buf[2:4], cd.Version.BCD())
	buf[4] = cd.MaxSlotIndex
	buf[5] = cd.VoltageSupport
	le.PutUint32(buf[6:10], cd.Protocols)
	le.PutUint32(buf[10:14], cd.DefaultClock)
	le.PutUint32(buf[14:18], cd.MaxClock)
	buf[18] = cd.NumClockSupport
	le.PutUint32(buf[19:23], cd.DataRate)
	le.PutUint32(buf[23:27], cd.MaxDataRate)
	buf[27] = cd.NumDataRates
	le.PutUint32(buf[28:32], cd.MaxIFSD)
	le.PutUint32(buf[32:36], cd.SynchProtocols)
	le.PutUint32(buf[36:40], cd.Mechanical)
	le.PutUint32(buf[40:44], cd.Features)
	le.PutUint32(buf[44:48], cd.MaxCCIDMsgLen)
	buf[48] = cd.ClassGetResponse
	buf[49] = cd.ClassEnvelope
	buf[50] = cd.LcdLayout[0]
	buf[51] = cd.LcdLayout[1]
	buf[52] = cd.PinSupport
	buf[53] = cd.MaxCCIDBusySlots
	return buf, nil
}
