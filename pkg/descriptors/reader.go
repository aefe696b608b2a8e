package descriptors

import "encoding/binary"

// Reader is a bounds-checked cursor over descriptor bytes. Variable-length
// descriptors (unit pin lists, capability bitmaps, report tables) chain
// several count-driven regions; the cursor keeps the running offset and
// turns every overrun into an ErrTruncated naming the field, instead of
// index arithmetic on the raw slice.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Offset returns the current position from the start of the buffer.
func (r *Reader) Offset() int {
	return r.pos
}

// Rest consumes and returns all remaining bytes.
func (r *Reader) Rest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

// Bytes consumes n bytes, failing with the field name if fewer remain.
func (r *Reader) Bytes(n int, field string) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, truncated(field, n, r.Len())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) U8(field string) (uint8, error) {
	b, err := r.Bytes(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16(field string) (uint16, error) {
	b, err := r.Bytes(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U24 reads a 3-byte little-endian value (UAC sample rates).
func (r *Reader) U24(field string) (uint32, error) {
	b, err := r.Bytes(3, field)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

func (r *Reader) U32(field string) (uint32, error) {
	b, err := r.Bytes(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) U64(field string) (uint64, error) {
	b, err := r.Bytes(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
