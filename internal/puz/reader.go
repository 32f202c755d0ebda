package puz

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// reader is a forward-only cursor over the input. off is kept relative to the
// original buffer so failures can report absolute positions.
type reader struct {
	buf   []byte
	off   int
	stage Stage
}

func newReader(buf []byte, base int, stage Stage) *reader {
	return &reader{buf: buf, off: base, stage: stage}
}

func (r *reader) fail(field string, start int, err error) error {
	return &DecodeError{Stage: r.stage, Field: field, Offset: start, Err: err}
}

func (r *reader) u8(field string) (uint8, error) {
	if len(r.buf) < 1 {
		return 0, r.fail(field, r.off, ErrUnexpectedEOF)
	}
	v := r.buf[0]
	r.advance(1)
	return v, nil
}

func (r *reader) u16(field string) (uint16, error) {
	if len(r.buf) < 2 {
		return 0, r.fail(field, r.off, ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint16(r.buf)
	r.advance(2)
	return v, nil
}

// take returns the next n bytes as a view into the input.
func (r *reader) take(field string, n int) ([]byte, error) {
	if n < 0 || len(r.buf) < n {
		return nil, r.fail(field, r.off, ErrUnexpectedEOF)
	}
	v := r.buf[:n:n]
	r.advance(n)
	return v, nil
}

// cells reads n bytes and maps each one to a single character.
func (r *reader) cells(field string, n int) ([]rune, error) {
	raw, err := r.take(field, n)
	if err != nil {
		return nil, err
	}
	out := make([]rune, len(raw))
	for i, b := range raw {
		out[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	return out, nil
}

// cstring reads up to and including the next NUL and returns the text before it.
func (r *reader) cstring(field string) (string, error) {
	start := r.off
	end := bytes.IndexByte(r.buf, 0)
	if end < 0 {
		return "", r.fail(field, start, ErrUnterminatedString)
	}
	s, err := latin1(r.buf[:end])
	if err != nil {
		return "", r.fail(field, start, err)
	}
	r.advance(end + 1)
	return s, nil
}

func (r *reader) rest() []byte {
	v := r.buf
	r.advance(len(r.buf))
	return v
}

func (r *reader) advance(n int) {
	r.buf = r.buf[n:]
	r.off += n
}

func latin1(b []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
