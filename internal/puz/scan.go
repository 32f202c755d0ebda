package puz

import "bytes"

// magic is the marker every .puz header carries right after the file checksum.
const magic = "ACROSS&DOWN\x00"

// checksumLen is the width of the file checksum stored just before the marker.
const checksumLen = 2

// Marker returns a fresh copy of the ACROSS&DOWN marker bytes.
func Marker() []byte {
	return []byte(magic)
}

// HasMarker reports whether data contains the marker anywhere.
func HasMarker(data []byte) bool {
	return bytes.Contains(data, []byte(magic))
}

// scan splits data into the leading bytes and the remainder that starts with the
// file checksum. The first occurrence of the marker wins.
func scan(data []byte) (leading, rest []byte, err error) {
	idx := bytes.Index(data, []byte(magic))
	if idx < 0 {
		return nil, nil, &DecodeError{Stage: StageScanning, Offset: len(data), Err: ErrMarkerNotFound}
	}
	if idx < checksumLen {
		return nil, nil, &DecodeError{Stage: StageScanning, Offset: idx, Err: ErrInsufficientPrefix}
	}

	start := idx - checksumLen
	return data[:start:start], data[start:], nil
}
