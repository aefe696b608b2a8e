package descriptors

import "encoding/binary"

// HidDescriptor (HID spec 1.11, 6.2.1): version, country code and a table
// of report descriptor references, each a 3-byte (type, wLength) record.
type HidDescriptor struct {
	Length         uint8
	DescriptorType uint8
	BcdHID         Version
	CountryCode    uint8
	Descriptors    []HidReportDescriptor
}

func (hd *HidDescriptor) isClassDescriptor() {}

func (hd *HidDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("HID descriptor", 6, len(buf))
	}
	hd.Length = buf[0]
	hd.DescriptorType = buf[1]
	hd.BcdHID = FromBCD(binary.LittleEndian.Uint16(buf[2:4]))
	hd.CountryCode = buf[4]

	numDescriptors := int(buf[5])
	r := NewReader(buf[6:])
	hd.Descriptors = make([]HidReportDescriptor, 0, numDescriptors)
	for i := 0; i < numDescriptors; i++ {
		rec, err := r.Bytes(3, "HID report descriptor record")
		if err != nil {
			return err
		}
		hd.Descriptors = append(hd.Descriptors, HidReportDescriptor{
			DescriptorType: rec[0],
			Length:         binary.LittleEndian.Uint16(rec[1:3]),
		})
	}
	return nil
}

func (hd *HidDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6, 6+3*len(hd.Descriptors))
	buf[0] = hd.Length
	buf[1] = hd.DescriptorType
	binary.LittleEndian.PutUint16(buf[2:4], hd.BcdHID.BCD())
	buf[4] = hd.CountryCode
	buf[5] = uint8(len(hd.Descriptors))
	for _, d := range hd.Descriptors {
		rec, err := d.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, rec...)
	}
	return buf, nil
}
