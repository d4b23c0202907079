package card

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category string is not recognised
var ErrUnknownCategory = errors.New("unknown category")

// Category is the broad kind of a card
type Category string

const (
	Playable Category = "playable" // kept in hand and played
	Event    Category = "event"    // resolved when drawn
)

// ParseCategory parses the string form of a category
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Playable, Event:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == Playable || c == Event
}

func (c Category) String() string {
	return string(c)
}

// Spec is a static template describing how many copies of a card go in a deck
type Spec struct {
	Name        string   // Card name (e.g., gub, spear, flash_flood)
	Count       int      // Number of copies
	Category    Category // playable or event
	Description string   // Optional rules text, display only
}

// Card is one concrete card in a deck. Cards with the same name and
// category are interchangeable.
type Card struct {
	Name     string
	Category Category
}

// FromSpec returns the card instance described by s
func FromSpec(s Spec) Card {
	return Card{Name: s.Name, Category: s.Category}
}

func (c Card) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Category)
}
