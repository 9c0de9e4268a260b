// Package output - machine-readable JSON rendering
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders quotes as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as JSON.
func (f *JSONFormatter) Render(w io.Writer, result *QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
