package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps results with metadata for the JSON output format.
type JSONEnvelope struct {
	Results  []Result     `json:"results"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONMetadata describes the invocation that produced the results.
type JSONMetadata struct {
	TotalCount        int    `json:"total_count"`
	Model             string `json:"model,omitempty"`
	SearchContextSize string `json:"search_context_size,omitempty"`
	GeneratedAt       string `json:"generated_at"`
}

// JSONFormatter writes results as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact forces single-line output. When false, output is indented for
	// terminals and compact for pipes and files.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the report as a JSON document to w.
func (f *JSONFormatter) Format(report Report, w io.Writer) error {
	results := report.Results
	if results == nil {
		results = []Result{}
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		Results: results,
		Metadata: JSONMetadata{
			TotalCount:        len(results),
			Model:             report.Model,
			SearchContextSize: report.SearchContextSize,
			GeneratedAt:       now.UTC().Format(time.RFC3339),
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// shouldCompact reports whether to skip indentation: always when Compact is
// set, otherwise only for *os.File writers that are not terminals.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := file.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}
