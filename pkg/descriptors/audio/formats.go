package audio

import (
	"encoding/binary"

	"github.com/valerierx/cyme/pkg/descriptors"
)

// Audio data format descriptors (UAC1 spec "Data Formats" and UAC2 spec
// section 4.9.1). A FORMAT_TYPE descriptor carries the sample layout for
// the format the streaming interface selected; UAC1 FORMAT_SPECIFIC
// descriptors add compressed-format parameters.

// Format type codes carried in bFormatType.
const (
	FormatTypeUndefined uint8 = 0x00
	FormatTypeI         uint8 = 0x01
	FormatTypeII        uint8 = 0x02
	FormatTypeIII       uint8 = 0x03
	FormatTypeIV        uint8 = 0x04
)

// SampleFrequencies is the UAC1 sample rate table: either a continuous
// lower..upper range (bSamFreqType zero) or a discrete rate list, all in
// 3-byte Hz values.
type SampleFrequencies struct {
	Lower    uint32
	Upper    uint32
	Discrete []uint32
}

// Continuous reports whether the range form was used.
func (s *SampleFrequencies) Continuous() bool { return len(s.Discrete) == 0 }

func (s *SampleFrequencies) unmarshal(r *descriptors.Reader) error {
	count, err := r.U8("bSamFreqType")
	if err != nil {
		return err
	}
	if count == 0 {
		if s.Lower, err = r.U24("tLowerSamFreq"); err != nil {
			return err
		}
		s.Upper, err = r.U24("tUpperSamFreq")
		return err
	}
	s.Discrete = make([]uint32, 0, count)
	for i := 0; i < int(count); i++ {
		freq, err := r.U24("tSamFreq")
		if err != nil {
			return err
		}
		s.Discrete = append(s.Discrete, freq)
	}
	return nil
}

func appendU24(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16))
}

func (s *SampleFrequencies) marshal(buf []byte) []byte {
	if s.Continuous() {
		buf = append(buf, 0)
		buf = appendU24(buf, s.Lower)
		return appendU24(buf, s.Upper)
	}
	buf = append(buf, uint8(len(s.Discrete)))
	for _, freq := range s.Discrete {
		buf = appendU24(buf, freq)
	}
	return buf
}

// FormatTypeI1 is the UAC1 Type I (and Type III) sample layout.
type FormatTypeI1 struct {
	NrChannels    uint8
	SubframeSize  uint8
	BitResolution uint8
	Frequencies   SampleFrequencies
}

// FormatTypeII1 is the UAC1 Type II (compressed) layout.
type FormatTypeII1 struct {
	MaxBitRate      uint16
	SamplesPerFrame uint16
	Frequencies     SampleFrequencies
}

// FormatType1 is a UAC1 FORMAT_TYPE descriptor. One of the variant
// pointers is set for the known format types; anything else keeps its
// tail in Raw.
type FormatType1 struct {
	FormatType uint8
	TypeI      *FormatTypeI1
	TypeII     *FormatTypeII1
	TypeIII    *FormatTypeI1
	Raw        []byte
}

func (f *FormatType1) isAudioEntity() {}

func (f *FormatType1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.FormatType, err = r.U8("bFormatType"); err != nil {
		return err
	}
	switch f.FormatType {
	case FormatTypeI, FormatTypeIII:
		t := &FormatTypeI1{}
		if t.NrChannels, err = r.U8("bNrChannels"); err != nil {
			return err
		}
		if t.SubframeSize, err = r.U8("bSubframeSize"); err != nil {
			return err
		}
		if t.BitResolution, err = r.U8("bBitResolution"); err != nil {
			return err
		}
		if err = t.Frequencies.unmarshal(r); err != nil {
			return err
		}
		if f.FormatType == FormatTypeI {
			f.TypeI = t
		} else {
			f.TypeIII = t
		}
	case FormatTypeII:
		t := &FormatTypeII1{}
		if t.MaxBitRate, err = r.U16("wMaxBitRate"); err != nil {
			return err
		}
		if t.SamplesPerFrame, err = r.U16("wSamplesPerFrame"); err != nil {
			return err
		}
		if err = t.Frequencies.unmarshal(r); err != nil {
			return err
		}
		f.TypeII = t
	default:
		f.Raw = dup(r.Rest())
	}
	return nil
}

func (f *FormatType1) MarshalBinary() ([]byte, error) {
	buf := []byte{f.FormatType}
	switch {
	case f.TypeI != nil || f.TypeIII != nil:
		t := f.TypeI
		if t == nil {
			t = f.TypeIII
		}
		buf = append(buf, t.NrChannels, t.SubframeSize, t.BitResolution)
		buf = t.Frequencies.marshal(buf)
	case f.TypeII != nil:
		buf = binary.LittleEndian.AppendUint16(buf, f.TypeII.MaxBitRate)
		buf = binary.LittleEndian.AppendUint16(buf, f.TypeII.SamplesPerFrame)
		buf = f.TypeII.Frequencies.marshal(buf)
	default:
		buf = append(buf, f.Raw...)
	}
	return buf, nil
}

// FormatTypeI2 is the UAC2 Type I (and Type III) sample layout; rates
// moved to clock sources.
type FormatTypeI2 struct {
	SubslotSize   uint8
	BitResolution uint8
}

// FormatTypeII2 is the UAC2 Type II (compressed) layout.
type FormatTypeII2 struct {
	MaxBitRate    uint16
	SlotsPerFrame uint16
}

// FormatType2 is a UAC2 FORMAT_TYPE descriptor. Type IV has no fields
// beyond the type code.
type FormatType2 struct {
	FormatType uint8
	TypeI      *FormatTypeI2
	TypeII     *FormatTypeII2
	TypeIII    *FormatTypeI2
	Raw        []byte
}

func (f *FormatType2) isAudioEntity() {}

func (f *FormatType2) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.FormatType, err = r.U8("bFormatType"); err != nil {
		return err
	}
	switch f.FormatType {
	case FormatTypeI, FormatTypeIII:
		t := &FormatTypeI2{}
		if t.SubslotSize, err = r.U8("bSubslotSize"); err != nil {
			return err
		}
		if t.BitResolution, err = r.U8("bBitResolution"); err != nil {
			return err
		}
		if f.FormatType == FormatTypeI {
			f.TypeI = t
		} else {
			f.TypeIII = t
		}
	case FormatTypeII:
		t := &FormatTypeII2{}
		if t.MaxBitRate, err = r.U16("wMaxBitRate"); err != nil {
			return err
		}
		if t.SlotsPerFrame, err = r.U16("wSlotsPerFrame"); err != nil {
			return err
		}
		f.TypeII = t
	case FormatTypeIV:
		// type code only
	default:
		f.Raw = dup(r.Rest())
	}
	return nil
}

func (f *FormatType2) MarshalBinary() ([]byte, error) {
	buf := []byte{f.FormatType}
	switch {
	case f.TypeI != nil || f.TypeIII != nil:
		t := f.TypeI
		if t == nil {
			t = f.TypeIII
		}
		buf = append(buf, t.SubslotSize, t.BitResolution)
	case f.TypeII != nil:
		buf = binary.LittleEndian.AppendUint16(buf, f.TypeII.MaxBitRate)
		buf = binary.LittleEndian.AppendUint16(buf, f.TypeII.SlotsPerFrame)
	default:
		buf = append(buf, f.Raw...)
	}
	return buf, nil
}

// MpegFormatSpecific carries the MPEG capability and feature bitmaps.
type MpegFormatSpecific struct {
	Capabilities uint16
	Features     uint8
}

// Ac3FormatSpecific carries the AC-3 bitstream ID modes and feature
// bitmap.
type Ac3FormatSpecific struct {
	BSID     uint32
	Features uint8
}

// FormatSpecific is a UAC1 FORMAT_SPECIFIC descriptor for Type II
// compressed formats, dispatched on wFormatTag.
type FormatSpecific struct {
	FormatTag uint16
	Mpeg      *MpegFormatSpecific
	Ac3       *Ac3FormatSpecific
	Raw       []byte
}

func (f *FormatSpecific) isAudioEntity() {}

func (f *FormatSpecific) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.FormatTag, err = r.U16("wFormatTag"); err != nil {
		return err
	}
	switch f.FormatTag {
	case 0x1001: // MPEG
		m := &MpegFormatSpecific{}
		if m.Capabilities, err = r.U16("bmMPEGCapabilities"); err != nil {
			return err
		}
		if m.Features, err = r.U8("bmMPEGFeatures"); err != nil {
			return err
		}
		f.Mpeg = m
	case 0x1002: // AC-3
		a := &Ac3FormatSpecific{}
		if a.BSID, err = r.U32("bmBSID"); err != nil {
			return err
		}
		if a.Features, err = r.U8("bmAC3Features"); err != nil {
			return err
		}
		f.Ac3 = a
	default:
		f.Raw = dup(r.Rest())
	}
	return nil
}

func (f *FormatSpecific) MarshalBinary() ([]byte, error) {
	buf := binary.LittleEndian.AppendUint16(nil, f.FormatTag)
	switch {
	case f.Mpeg != nil:
		buf = binary.LittleEndian.AppendUint16(buf, f.Mpeg.Capabilities)
		buf = append(buf, f.Mpeg.Features)
	case f.Ac3 != nil:
		buf = binary.LittleEndian.AppendUint32(buf, f.Ac3.BSID)
		buf = append(buf, f.Ac3.Features)
	default:
		buf = append(buf, f.Raw...)
	}
	return buf, nil
}
