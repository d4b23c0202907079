package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gubsgame/gubs/internal/card"
	"github.com/gubsgame/gubs/internal/catalog"
)

// ValidationResults holds the problems found in a catalog file. Errors stop
// the catalog from loading; warnings do not.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator checks one catalog file
type Validator struct {
	CatalogPath string
	Results     ValidationResults
}

// NewValidator returns a Validator for the catalog at catalogPath
func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate checks a catalog file. The returned error is set only when the
// file cannot be read or decoded at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.CatalogPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("catalog file not found: %s", v.CatalogPath)
	}

	var f catalog.File
	md, err := toml.DecodeFile(v.CatalogPath, &f)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %w", v.CatalogPath, err)
	}

	v.validateHeader(f)
	v.validateCards(f.Cards)
	v.validateKeys(md)

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateHeader(f catalog.File) {
	if f.Name == "" {
		v.warnf("name is not set")
	}
	if len(f.Cards) == 0 {
		v.warnf("no [[card]] entries found")
	}
}

// validateCards checks every entry, reporting all problems rather than
// stopping at the first
func (v *Validator) validateCards(entries []catalog.SpecEntry) {
	seen := make(map[string]int)
	total := 0

	for i, e := range entries {
		label := fmt.Sprintf("card %d", i+1)
		if e.Name == "" {
			v.errorf("%s: name is required", label)
		} else {
			label = fmt.Sprintf("card %q", e.Name)
			if first, ok := seen[e.Name]; ok {
				v.errorf("%s: duplicate name (first defined as card %d)", label, first)
			} else {
				seen[e.Name] = i + 1
			}
		}

		if !card.Category(e.Category).Valid() {
			v.errorf("%s: unknown category %q (expected %s or %s)", label, e.Category, card.Playable, card.Event)
		}

		switch {
		case e.Count < 0:
			v.errorf("%s: count must not be negative (%d)", label, e.Count)
		case e.Count == 0:
			v.warnf("%s: count is 0, card will not appear in the deck", label)
		default:
			total += e.Count
		}
	}

	if len(entries) > 0 && total == 0 {
		v.warnf("catalog builds an empty deck")
	}
}

func (v *Validator) validateKeys(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		v.warnf("unknown key: %s", key.String())
	}
}
