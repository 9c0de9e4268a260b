package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cloudspend/core/pricing"
	"cloudspend/core/tiers"
)

func sampleResult(t *testing.T) *QuoteResult {
	t.Helper()
	table := tiers.Default()
	quote, err := pricing.NewEngine(table).Quote(decimal.NewFromInt(500_000), decimal.NewFromInt(250_000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &QuoteResult{
		Quote:    quote,
		Tiers:    table.List(),
		Metadata: NewMetadata(time.Now(), "test"),
	}
}

// TestForSelectsFormatter verifies formatter lookup by format name.
func TestForSelectsFormatter(t *testing.T) {
	if f, ok := For(FormatCLI); !ok || f.Format() != FormatCLI {
		t.Error("expected CLI formatter")
	}
	if f, ok := For(FormatJSON); !ok || f.Format() != FormatJSON {
		t.Error("expected JSON formatter")
	}
	if _, ok := For(Format("xml")); ok {
		t.Error("expected no formatter for unknown format")
	}
}

// TestJSONRender verifies the JSON output is valid and carries the quote
// fields.
func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Render(&buf, sampleResult(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Quote struct {
			FlexCost   string `json:"flex_cost"`
			CommitCost string `json:"commit_cost"`
		} `json:"quote"`
		Metadata Metadata `json:"metadata"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Quote.FlexCost == "" {
		t.Error("flex_cost missing from JSON output")
	}
	if decoded.Metadata.ID == "" {
		t.Error("metadata id missing from JSON output")
	}
}

// TestCLIRender verifies the terminal table carries the comparison rows and
// the rate card.
func TestCLIRender(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{}
	if err := f.Render(&buf, sampleResult(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"PRICING COMPARISON", "Flex pricing", "Commit pricing", "Recommended commitment", "SPEND RANGE"} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q", want)
		}
	}
}

// TestGroupString verifies thousands separators.
func TestGroupString(t *testing.T) {
	cases := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"125000.50": "125,000.50",
		"250000000": "250,000,000",
	}
	for in, want := range cases {
		if got := groupString(in); got != want {
			t.Errorf("groupString(%s) = %s, want %s", in, got, want)
		}
	}
}
