package output

import (
	"fmt"
	"io"
)

func init() {
	RegisterFormatter(NewRawFormatter())
}

// RawFormatter writes each result string exactly as the research tool
// returns it, one per line, with no query headings.
type RawFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*RawFormatter)(nil)

// NewRawFormatter returns a new RawFormatter.
func NewRawFormatter() *RawFormatter {
	return &RawFormatter{}
}

// Name returns the format name.
func (f *RawFormatter) Name() string {
	return "raw"
}

// Format writes the results to w.
func (f *RawFormatter) Format(report Report, w io.Writer) error {
	for _, r := range report.Results {
		if _, err := fmt.Fprintln(w, r.Result); err != nil {
			return err
		}
	}
	return nil
}
