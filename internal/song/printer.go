package song

import (
	"fmt"
	"io"
)

// Printer writes the complete song to a single output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes every line of the song in program order. It stops at the
// first write error; a failing output stream is the only way it can fail.
func (p *Printer) Print() error {
	for n := FirstVerse; n > 0; n-- {
		for _, line := range Verse(n) {
			if _, err := fmt.Fprintln(p.out, line); err != nil {
				return fmt.Errorf("failed to write verse %d: %w", n, err)
			}
		}
	}

	for _, line := range Closing() {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("failed to write closing lines: %w", err)
		}
	}

	return nil
}
