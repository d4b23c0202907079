package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gubsgame/gubs/internal/card"
)

var (
	ErrUnknownCategory = card.ErrUnknownCategory
	ErrNegativeCount   = errors.New("negative count")
	ErrDuplicateName   = errors.New("duplicate card name")
	ErrEmptyName       = errors.New("card name is required")
)

// Catalog is a named, ordered card table
type Catalog struct {
	Name  string
	Specs []card.Spec
}

// File is the TOML layout of a catalog file
type File struct {
	Name  string      `toml:"name"`
	Cards []SpecEntry `toml:"card"`
}

// SpecEntry is one [[card]] table as written in a catalog file, before
// its category and count are checked
type SpecEntry struct {
	Name        string `toml:"name"`
	Count       int    `toml:"count"`
	Category    string `toml:"category"`
	Description string `toml:"description,omitempty"`
}

// DefaultName is the name of the built-in table
const DefaultName = "Gubs prototype"

// Default returns a fresh copy of the built-in card table
func Default() *Catalog {
	return &Catalog{
		Name: DefaultName,
		Specs: []card.Spec{
			{Name: "gub", Count: 8, Category: card.Playable, Description: "Move to your play area. Each free gub scores a point."},
			{Name: "spear", Count: 4, Category: card.Playable, Description: "Discard a gub or a protection card."},
			{Name: "mushroom", Count: 6, Category: card.Playable, Description: "Protect a gub."},
			{Name: "toad_rida", Count: 2, Category: card.Playable, Description: "Protect a gub."},
			{Name: "G", Count: 1, Category: card.Event},
			{Name: "U", Count: 1, Category: card.Event},
			{Name: "B", Count: 1, Category: card.Event},
			{Name: "flash_flood", Count: 1, Category: card.Event, Description: "Discard all unprotected gubs."},
		},
	}
}

// Total returns the number of cards the specs expand to
func Total(specs []card.Spec) int {
	n := 0
	for _, s := range specs {
		n += s.Count
	}
	return n
}

// Total returns the number of cards in the catalog
func (c *Catalog) Total() int {
	return Total(c.Specs)
}

// Load reads a catalog from a TOML file
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	c, err := f.Catalog()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// Catalog converts the decoded file into a checked Catalog
func (f File) Catalog() (*Catalog, error) {
	c := &Catalog{Name: f.Name}
	seen := make(map[string]bool, len(f.Cards))

	for i, e := range f.Cards {
		if e.Name == "" {
			return nil, fmt.Errorf("card %d: %w", i+1, ErrEmptyName)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("card %q: %w", e.Name, ErrDuplicateName)
		}
		seen[e.Name] = true

		if e.Count < 0 {
			return nil, fmt.Errorf("card %q: %w (%d)", e.Name, ErrNegativeCount, e.Count)
		}

		cat, err := card.ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", e.Name, err)
		}

		c.Specs = append(c.Specs, card.Spec{
			Name:        e.Name,
			Count:       e.Count,
			Category:    cat,
			Description: e.Description,
		})
	}

	return c, nil
}

// Write encodes the catalog as TOML
func Write(w io.Writer, c *Catalog) error {
	f := File{Name: c.Name}
	for _, s := range c.Specs {
		f.Cards = append(f.Cards, SpecEntry{
			Name:        s.Name,
			Count:       s.Count,
			Category:    s.Category.String(),
			Description: s.Description,
		})
	}

	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("error encoding catalog: %w", err)
	}
	return nil
}
