// Command seed imports every .puz file in a directory into the puzzle library.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"puzreader/internal/app"
	"puzreader/internal/db"
	"puzreader/internal/logging"
	"sort"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

func main() {
	if err := newSeedCommand(os.Stdout).Execute(); err != nil {
		logging.Default().Error("seeding failed", logging.FieldError, err)
		os.Exit(1)
	}
}

func newSeedCommand(out io.Writer) *cobra.Command {
	var dir, dbPath string

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Import a directory of .puz files into the puzzle library",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := seed(out, dir, dbPath)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "internal/puz/testdata", "directory of .puz files")
	cmd.Flags().StringVar(&dbPath, "db", "puzzles.db", "sqlite database path")
	return cmd
}

// seed returns how many files were imported. Files that fail to read or
// decode are reported and skipped; only setup failures are returned.
func seed(out io.Writer, dir, dbPath string) (int, error) {
	dbConn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer dbConn.Close()

	if err := db.Migrate(dbConn); err != nil {
		return 0, fmt.Errorf("migrating database: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.puz"))
	if err != nil {
		return 0, fmt.Errorf("listing puzzles: %w", err)
	}
	sort.Strings(paths)

	service := app.NewService(db.New(dbConn), dbConn)
	defer service.Shutdown()
	ctx := context.Background()

	fmt.Fprintf(out, "Seeding %d puzzles from %s...\n", len(paths), dir)
	imported := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "Skipping %s: %v\n", path, err)
			continue
		}
		p, err := service.ImportPuzzle(ctx, filepath.Base(path), data)
		if err != nil {
			fmt.Fprintf(out, "Skipping %s: %v\n", path, err)
			continue
		}
		imported++
		fmt.Fprintf(out, "Imported %q (ID: %s)\n", p.Title, p.ID)
	}

	fmt.Fprintf(out, "\nSeeding complete: %d of %d imported.\n", imported, len(paths))
	fmt.Fprintln(out, "Browse them once the server is running: http://localhost:8080/puzzles")
	return imported, nil
}
