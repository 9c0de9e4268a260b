// Package tiers - loading alternative tier tables
package tiers

import (
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"cloudspend/internal/errors"
)

// fileTier is the YAML shape of one tier entry. Rates are strings so they
// parse exactly, without a float round trip.
type fileTier struct {
	Lower int64  `yaml:"lower"`
	Upper int64  `yaml:"upper"`
	Rate  string `yaml:"rate"`
}

// LoadFile reads a tier table from a YAML file and validates it. The file
// is a list of entries:
//
//	- lower: 0
//	  upper: 125000
//	  rate: "0.0330"
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "read tier table "+path, err)
	}

	var rows []fileTier
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parse tier table "+path, err)
	}

	tiers := make([]Tier, 0, len(rows))
	for i, r := range rows {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, errors.Configf("tier %d: invalid rate %q", i, r.Rate)
		}
		tiers = append(tiers, Tier{Lower: r.Lower, Upper: r.Upper, Rate: rate})
	}

	return New(tiers)
}
