package audio

import (
	"bytes"
	"reflect"
	"testing"
)

func TestFormatType1_DiscreteRates(t *testing.T) {
	raw := []byte{
		0x01,             // bFormatType Type I
		0x02, 0x02, 0x10, // stereo, 2-byte subframes, 16-bit
		0x02,             // two discrete rates
		0x44, 0xac, 0x00, // 44100
		0x80, 0xbb, 0x00, // 48000
	}
	f := &FormatType1{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.TypeI == nil {
		t.Fatal("TypeI = nil")
	}
	if f.TypeI.NrChannels != 2 || f.TypeI.SubframeSize != 2 || f.TypeI.BitResolution != 16 {
		t.Errorf("layout = %+v, want stereo 2-byte 16-bit", f.TypeI)
	}
	if f.TypeI.Frequencies.Continuous() {
		t.Error("Continuous = true, want discrete table")
	}
	if !reflect.DeepEqual(f.TypeI.Frequencies.Discrete, []uint32{44100, 48000}) {
		t.Errorf("Discrete = %v, want [44100 48000]", f.TypeI.Frequencies.Discrete)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatType1_ContinuousRange(t *testing.T) {
	raw := []byte{
		0x01,
		0x01, 0x02, 0x10,
		0x00,             // bSamFreqType zero: range form
		0x40, 0x1f, 0x00, // 8000
		0x80, 0xbb, 0x00, // 48000
	}
	f := &FormatType1{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	freqs := f.TypeI.Frequencies
	if !freqs.Continuous() {
		t.Fatal("Continuous = false, want range form")
	}
	if freqs.Lower != 8000 || freqs.Upper != 48000 {
		t.Errorf("range = %d..%d, want 8000..48000", freqs.Lower, freqs.Upper)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatType1_TypeII(t *testing.T) {
	raw := []byte{
		0x02,
		0x00, 0x7d, // wMaxBitRate 32000
		0x00, 0x04, // wSamplesPerFrame 1024
		0x01, 0x80, 0xbb, 0x00,
	}
	f := &FormatType1{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.TypeII == nil {
		t.Fatal("TypeII = nil")
	}
	if f.TypeII.MaxBitRate != 32000 || f.TypeII.SamplesPerFrame != 1024 {
		t.Errorf("TypeII = %+v, want 32000/1024", f.TypeII)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatType2_Variants(t *testing.T) {
	f := &FormatType2{}
	if err := f.UnmarshalBinary([]byte{0x01, 0x04, 0x18}); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.TypeI == nil || f.TypeI.SubslotSize != 4 || f.TypeI.BitResolution != 24 {
		t.Errorf("TypeI = %+v, want 4-byte 24-bit", f.TypeI)
	}

	f = &FormatType2{}
	if err := f.UnmarshalBinary([]byte{0x02, 0x00, 0x7d, 0x00, 0x04}); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.TypeII == nil || f.TypeII.MaxBitRate != 32000 || f.TypeII.SlotsPerFrame != 1024 {
		t.Errorf("TypeII = %+v, want 32000/1024", f.TypeII)
	}

	// Type IV is the type code alone
	raw := []byte{0x04}
	f = &FormatType2{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.TypeI != nil || f.TypeII != nil || f.TypeIII != nil || f.Raw != nil {
		t.Errorf("Type IV decoded variants: %+v", f)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatSpecific_Mpeg(t *testing.T) {
	raw := []byte{0x01, 0x10, 0x03, 0x00, 0x01}
	f := &FormatSpecific{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.Mpeg == nil {
		t.Fatal("Mpeg = nil")
	}
	if f.Mpeg.Capabilities != 0x0003 || f.Mpeg.Features != 0x01 {
		t.Errorf("Mpeg = %+v, want caps 0x3 features 0x1", f.Mpeg)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatSpecific_Ac3(t *testing.T) {
	raw := []byte{0x02, 0x10, 0xff, 0x01, 0x00, 0x00, 0x05}
	f := &FormatSpecific{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.Ac3 == nil {
		t.Fatal("Ac3 = nil")
	}
	if f.Ac3.BSID != 0x01ff || f.Ac3.Features != 0x05 {
		t.Errorf("Ac3 = %+v, want BSID 0x1ff features 0x5", f.Ac3)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFormatSpecific_UnknownTagKeepsRaw(t *testing.T) {
	raw := []byte{0x00, 0x10, 0xde, 0xad}
	f := &FormatSpecific{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !bytes.Equal(f.Raw, []byte{0xde, 0xad}) {
		t.Errorf("Raw = % x, want de ad", f.Raw)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}
