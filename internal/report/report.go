// Package report writes the ordered formula listing produced by the engine.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/specialistvlad/formulagraph/internal/ctxlog"
)

// DefaultCommentMarker starts metadata and comment lines when no marker is
// configured.
const DefaultCommentMarker = "#"

// Header returns the metadata lines that precede the listing.
func Header(source string, formulas int, elapsed time.Duration, marker string) []string {
	if marker == "" {
		marker = DefaultCommentMarker
	}
	return []string{
		fmt.Sprintf("%s source: %s", marker, filepath.Base(source)),
		fmt.Sprintf("%s formulas: %d", marker, formulas),
		fmt.Sprintf("%s elapsed: %s", marker, elapsed.Round(time.Millisecond)),
	}
}

// Write emits header then lines, one per row.
func Write(ctx context.Context, w io.Writer, header, lines []string) error {
	logger := ctxlog.FromContext(ctx)
	bw := bufio.NewWriter(w)
	for _, group := range [][]string{header, lines} {
		for _, l := range group {
			if _, err := bw.WriteString(l + "\n"); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Debug("Report written.", "header_lines", len(header), "lines", len(lines))
	return nil
}

// ContainsAt reports whether lines holds want verbatim starting at offset.
func ContainsAt(lines, want []string, offset int) bool {
	if offset < 0 || offset+len(want) > len(lines) {
		return false
	}
	for i, w := range want {
		if lines[offset+i] != w {
			return false
		}
	}
	return true
}
