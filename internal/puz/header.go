package puz

// HeaderSize is the fixed width of the header, from the file checksum through
// the scrambled tag.
const HeaderSize = 0x34

// Header holds the fixed-width fields that follow the leading bytes. Checksums
// and reserved regions are kept as raw views and are never validated.
type Header struct {
	FileChecksum        uint16
	BaseChecksum        uint16
	MaskedLowChecksums  []byte
	MaskedHighChecksums []byte
	Version             string
	Reserved1C          []byte
	ScrambledChecksum   uint16
	Reserved20          []byte
	Width               uint8
	Height              uint8
	NumClues            uint16
	UnknownBitmask      uint16
	ScrambledTag        uint16
}

// CellCount is the number of bytes in each of the solution and grid arrays.
func (h *Header) CellCount() int {
	return int(h.Width) * int(h.Height)
}

func decodeHeader(r *reader) (Header, error) {
	var h Header
	var err error

	if h.FileChecksum, err = r.u16("file checksum"); err != nil {
		return h, err
	}

	start := r.off
	marker, err := r.take("magic", len(magic))
	if err != nil {
		return h, err
	}
	if string(marker) != magic {
		return h, r.fail("magic", start, ErrMagicMismatch)
	}

	if h.BaseChecksum, err = r.u16("base checksum"); err != nil {
		return h, err
	}
	if h.MaskedLowChecksums, err = r.take("masked low checksums", 4); err != nil {
		return h, err
	}
	if h.MaskedHighChecksums, err = r.take("masked high checksums", 4); err != nil {
		return h, err
	}

	start = r.off
	version, err := r.take("version", 4)
	if err != nil {
		return h, err
	}
	if h.Version, err = latin1(version[:3]); err != nil {
		return h, r.fail("version", start, err)
	}

	if h.Reserved1C, err = r.take("reserved 0x1C", 2); err != nil {
		return h, err
	}
	if h.ScrambledChecksum, err = r.u16("scrambled checksum"); err != nil {
		return h, err
	}
	if h.Reserved20, err = r.take("reserved 0x20", 12); err != nil {
		return h, err
	}
	if h.Width, err = r.u8("width"); err != nil {
		return h, err
	}
	if h.Height, err = r.u8("height"); err != nil {
		return h, err
	}
	if h.NumClues, err = r.u16("clue count"); err != nil {
		return h, err
	}
	if h.UnknownBitmask, err = r.u16("unknown bitmask"); err != nil {
		return h, err
	}
	if h.ScrambledTag, err = r.u16("scrambled tag"); err != nil {
		return h, err
	}

	return h, nil
}
