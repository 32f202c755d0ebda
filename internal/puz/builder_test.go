package puz

import (
	"bytes"
	"encoding/binary"
)

// fileBuilder assembles .puz bytes for tests.
type fileBuilder struct {
	leading  []byte
	checksum uint16
	magic    []byte
	version  string
	width    uint8
	height   uint8
	tag      uint16
	solution string
	grid     string
	strings  []string
	clues    int
	trailing []byte
}

func newFileBuilder() *fileBuilder {
	return &fileBuilder{
		checksum: 0xCDAB,
		magic:    Marker(),
		version:  "1.3",
		width:    2,
		height:   1,
		solution: "AB",
		grid:     "CD",
		strings:  []string{"", "", "", ""},
	}
}

func (b *fileBuilder) header() []byte {
	var buf bytes.Buffer
	buf.Write(b.leading)
	binary.Write(&buf, binary.LittleEndian, b.checksum)
	buf.Write(b.magic)
	binary.Write(&buf, binary.LittleEndian, uint16(0x1234))
	buf.Write([]byte{1, 2, 3, 4})
	buf.Write([]byte{5, 6, 7, 8})
	buf.WriteString(b.version)
	buf.WriteByte(0)
	buf.Write([]byte{0x1C, 0x1D})
	binary.Write(&buf, binary.LittleEndian, uint16(0xBEEF))
	buf.Write(bytes.Repeat([]byte{0x20}, 12))
	buf.WriteByte(b.width)
	buf.WriteByte(b.height)
	binary.Write(&buf, binary.LittleEndian, uint16(b.clues))
	binary.Write(&buf, binary.LittleEndian, uint16(0x0001))
	binary.Write(&buf, binary.LittleEndian, b.tag)
	return buf.Bytes()
}

// withClues sets title, author, copyright, the clues and notes in file order.
func (b *fileBuilder) withClues(title string, clues []string, notes string) *fileBuilder {
	b.strings = append([]string{title, "Author", "Copyright"}, clues...)
	b.strings = append(b.strings, notes)
	b.clues = len(clues)
	return b
}

func (b *fileBuilder) bytes() []byte {
	buf := bytes.NewBuffer(b.header())
	buf.WriteString(b.solution)
	buf.WriteString(b.grid)
	for _, s := range b.strings {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	buf.Write(b.trailing)
	return buf.Bytes()
}
