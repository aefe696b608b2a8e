package descriptors

import "encoding/binary"

// PrinterDescriptor (IPP-over-USB spec 5.4): a release number and a list
// of capability sub-records.
type PrinterDescriptor struct {
	Length         uint8
	DescriptorType uint8
	ReleaseNumber  uint8
	Descriptors    []PrinterReportDescriptor
}

// PrinterReportDescriptor is one capability record inside the printer
// descriptor. Its bLength counts the bytes after the two-byte record
// header.
type PrinterReportDescriptor struct {
	DescriptorType    uint8
	Length            uint8
	Capabilities      uint16
	VersionsSupported uint8
	UUIDStringIndex   uint8
	UUIDString        *string
	Data              []byte
}

func (pd *PrinterDescriptor) isClassDescriptor() {}

func (pd *PrinterDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("printer descriptor", 4, len(buf))
	}
	pd.Length = buf[0]
	pd.DescriptorType = buf[1]
	pd.ReleaseNumber = buf[2]

	numDescriptors := int(buf[3])
	rest := buf[4:]
	pd.Descriptors = make([]PrinterReportDescriptor, 0, numDescriptors)
	for i := 0; i < numDescriptors; i++ {
		if len(rest) < 2 {
			return truncated("printer capability record", 2, len(rest))
		}
		// record header plus its declared payload
		recLen := int(rest[1]) + 2
		if recLen > len(rest) {
			// devices pad the final record short; keep what decoded
			break
		}
		var rec PrinterReportDescriptor
		if err := rec.UnmarshalBinary(rest[:recLen]); err != nil {
			return err
		}
		pd.Descriptors = append(pd.Descriptors, rec)
		rest = rest[recLen:]
	}
	return nil
}

func (pd *PrinterDescriptor) MarshalBinary() ([]byte, error) {
	buf := []byte{pd.Length, pd.DescriptorType, pd.ReleaseNumber, uint8(len(pd.Descriptors))}
	for _, d := range pd.Descriptors {
		rec, err := d.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, rec...)
	}
	return buf, nil
}

func (prd *PrinterReportDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("printer capability record", 6, len(buf))
	}
	prd.DescriptorType = buf[0]
	prd.Length = buf[1]
	prd.Capabilities = binary.LittleEndian.Uint16(buf[2:4])
	prd.VersionsSupported = buf[4]
	prd.UUIDStringIndex = buf[5]
	prd.Data = dup(buf[6:])
	return nil
}

func (prd *PrinterReportDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6, 6+len(prd.Data))
	buf[0] = prd.DescriptorType
	buf[1] = prd.Length
	binary.LittleEndian.PutUint16(buf[2:4], prd.Capabilities)
	buf[4] = prd.VersionsSupported
	buf[5] = prd.UUIDStringIndex
	return append(buf, prd.Data...), nil
}
