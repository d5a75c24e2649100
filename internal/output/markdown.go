package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes each result under a level-one heading naming its
// query. Headings are colored when the terminal supports it.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the results, separated by blank lines.
func (m *MarkdownFormatter) Format(report Report, w io.Writer) error {
	heading := color.New(color.Bold, color.FgCyan)
	for i, r := range report.Results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n\n%s\n", heading.Sprint("# "+r.Query), r.Result); err != nil {
			return err
		}
	}
	return nil
}
