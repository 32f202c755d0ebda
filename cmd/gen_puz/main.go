// Command gen_puz writes the 5x5 sample puzzle used by the tests.
package main

import (
	"bytes"
	"encoding/binary"
	"os"

	"puzreader/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	var out string
	var lead, trail int

	cmd := &cobra.Command{
		Use:   "gen_puz",
		Short: "Write the sample .puz fixture",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.WriteFile(out, samplePuzzle(lead, trail), 0o644); err != nil {
				return err
			}
			logging.Default().Info("wrote sample puzzle", logging.FieldPath, out)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&out, "output", "o", "internal/puz/testdata/sample.puz", "output path")
	cmd.Flags().IntVar(&lead, "lead", 0, "junk bytes to write before the header")
	cmd.Flags().IntVar(&trail, "trail", 0, "junk bytes to write after the notes")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func samplePuzzle(lead, trail int) []byte {
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0xEE}, lead))

	// Header (0x34 bytes)
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // Checksum
	buf.WriteString("ACROSS&DOWN\x00")                 // Magic
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // CIB Checksum
	buf.Write(make([]byte, 8))                         // Masked Checksums
	buf.WriteString("1.3\x00")                         // Version
	buf.Write(make([]byte, 2))                         // Reserved
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // Scrambled Checksum
	buf.Write(make([]byte, 12))                        // Reserved
	buf.Write([]byte{5, 5})                            // Width, Height
	binary.Write(&buf, binary.LittleEndian, uint16(6)) // Num Clues
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // Bitmask
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // Scrambled Tag

	buf.WriteString("ABCDE" + "F.G.H" + "IJKLM" + "N.O.P" + "QRSTU")
	buf.WriteString("-----" + "-.-.-" + "-----" + "-.-.-" + "-----")

	strs := []string{
		"Sample Title",
		"Sample Author",
		"\xa9 Sample Copyright",
		"First row", "Left column", "Middle column", "Right column", "Middle row", "Last row",
		"Notes",
	}
	for _, s := range strs {
		buf.WriteString(s)
		buf.WriteByte(0)
	}

	buf.Write(bytes.Repeat([]byte{0xEE}, trail))
	return buf.Bytes()
}
