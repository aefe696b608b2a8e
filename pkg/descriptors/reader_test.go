package descriptors

import (
	"errors"
	"strings"
	"testing"
)

func TestReader_SequentialReads(t *testing.T) {
	r := NewReader([]byte{0x01, 0x34, 0x12, 0x56, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xaa, 0xbb})

	if v, err := r.U8("a"); err != nil || v != 0x01 {
		t.Errorf("U8 = %#x, %v; want 0x01", v, err)
	}
	if v, err := r.U16("b"); err != nil || v != 0x1234 {
		t.Errorf("U16 = %#x, %v; want 0x1234", v, err)
	}
	if v, err := r.U24("c"); err != nil || v != 0x123456 {
		t.Errorf("U24 = %#x, %v; want 0x123456", v, err)
	}
	if v, err := r.U32("d"); err != nil || v != 0x12345678 {
		t.Errorf("U32 = %#x, %v; want 0x12345678", v, err)
	}
	if r.Offset() != 10 {
		t.Errorf("Offset = %d, want 10", r.Offset())
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	rest := r.Rest()
	if len(rest) != 2 || rest[0] != 0xaa || rest[1] != 0xbb {
		t.Errorf("Rest = % x, want aa bb", rest)
	}
	if r.Len() != 0 {
		t.Errorf("Len after Rest = %d, want 0", r.Len())
	}
}

func TestReader_TruncationNamesField(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.U32("bmControls")
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
	if !strings.Contains(err.Error(), "bmControls") {
		t.Errorf("err = %q, want field name in message", err)
	}
	// a failed read consumes nothing
	if r.Len() != 2 {
		t.Errorf("Len after failed read = %d, want 2", r.Len())
	}
}
