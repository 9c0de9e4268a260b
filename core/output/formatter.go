// Package output renders pricing results for human and machine consumers.
package output

import (
	"io"
	"time"

	"github.com/google/uuid"

	"cloudspend/core/pricing"
	"cloudspend/core/tiers"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *QuoteResult) error
}

// QuoteResult contains the complete quote output
type QuoteResult struct {
	// Quote is the computed pricing
	Quote *pricing.Quote `json:"quote"`

	// Tiers is the rate card the quote was priced against
	Tiers []tiers.Tier `json:"tiers,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// ID uniquely identifies this quote
	ID string `json:"id"`

	// Timestamp is when the quote was computed
	Timestamp string `json:"timestamp"`

	// Duration is how long the computation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewMetadata builds metadata for a quote computed since start.
func NewMetadata(start time.Time, version string) Metadata {
	return Metadata{
		ID:        uuid.New().String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Duration:  time.Since(start).String(),
		Version:   version,
	}
}

// For returns the formatter for a format type.
func For(format Format) (Formatter, bool) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{}, true
	case FormatJSON:
		return &JSONFormatter{}, true
	default:
		return nil, false
	}
}
