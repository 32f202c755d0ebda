package main

import (
	"errors"
	"fmt"
	"io"

	"puzreader/internal/app"
	"puzreader/internal/logging"
	"puzreader/internal/puz"
	"puzreader/internal/render"

	"github.com/spf13/cobra"
)

type dumpOptions struct {
	debug    bool
	color    string
	header   bool
	numbered bool
	notes    bool
	info     bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:     "puzdump [flags] FILE...",
		Short:   "Print the grids and clues of Across Lite .puz files",
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, path := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := dumpFile(out, path, opts); err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize output: auto, always, never")
	cmd.Flags().BoolVar(&opts.header, "header", false, "print title, author and copyright first")
	cmd.Flags().BoolVarP(&opts.numbered, "numbered", "n", false, "prefix clues with their grid numbers")
	cmd.Flags().BoolVar(&opts.notes, "notes", false, "print the notes field after the clues")
	cmd.Flags().BoolVar(&opts.info, "info", false, "print the decoded header fields instead of the grids")

	return cmd
}

func dumpFile(out io.Writer, path string, opts dumpOptions) error {
	logger := logging.Default()

	doc, err := puz.ReadFile(path)
	if err != nil {
		var de *puz.DecodeError
		if errors.As(err, &de) {
			logger.Debug("decode failed",
				logging.FieldPath, path,
				logging.FieldStage, de.Stage,
				logging.FieldOffset, de.Offset,
			)
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("decoded",
		logging.FieldPath, path,
		logging.FieldVersion, doc.Version,
		logging.FieldWidth, doc.Width,
		logging.FieldHeight, doc.Height,
		logging.FieldClues, len(doc.Clues),
	)

	if opts.info {
		return writeInfo(out, doc)
	}

	ropts := render.Options{
		Styles: render.NewStyles(render.IsColorEnabled(opts.color, out)),
		Header: opts.header,
		Notes:  opts.notes,
	}
	if opts.numbered {
		clues, err := app.NumberClues(doc)
		if err != nil {
			logger.Warn("clue numbers unavailable", logging.FieldPath, path, logging.FieldError, err)
		} else {
			for _, c := range clues {
				ropts.Labels = append(ropts.Labels, c.Label())
			}
		}
	}
	return render.Document(out, doc, ropts)
}

func writeInfo(out io.Writer, doc *puz.Document) error {
	_, err := fmt.Fprintf(out,
		"version:            %s\n"+
			"size:               %dx%d\n"+
			"clues:              %d\n"+
			"file checksum:      0x%04X\n"+
			"base checksum:      0x%04X\n"+
			"masked low:         % X\n"+
			"masked high:        % X\n"+
			"scrambled checksum: 0x%04X\n"+
			"scrambled tag:      0x%04X (scrambled: %t)\n"+
			"bitmask:            0x%04X\n"+
			"leading bytes:      %d\n"+
			"trailing bytes:     %d\n",
		doc.Version,
		doc.Width, doc.Height,
		doc.NumClues,
		doc.FileChecksum,
		doc.BaseChecksum,
		doc.MaskedLowChecksums,
		doc.MaskedHighChecksums,
		doc.ScrambledChecksum,
		doc.ScrambledTag, doc.Scrambled(),
		doc.UnknownBitmask,
		len(doc.LeadingBytes),
		len(doc.TrailingBytes),
	)
	return err
}
