package deck

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gubsgame/gubs/internal/card"
)

// Source draws uniform random indexes. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic source for reproducible deals
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Build expands specs into cards in table order. It panics on a negative
// count.
func Build(specs []card.Spec) []card.Card {
	n := 0
	for _, s := range specs {
		if s.Count < 0 {
			panic(fmt.Sprintf("deck: negative count %d for card %q", s.Count, s.Name))
		}
		n += s.Count
	}

	cards := make([]card.Card, 0, n)
	for _, s := range specs {
		for i := 0; i < s.Count; i++ {
			cards = append(cards, card.FromSpec(s))
		}
	}
	return cards
}

// Shuffle returns a random permutation of cards using the process-wide
// generator. The input is left untouched.
func Shuffle(cards []card.Card) []card.Card {
	return ShuffleWith(globalSource{}, cards)
}

// ShuffleWith returns a random permutation of cards drawn from r. Each output
// slot takes a uniformly chosen card from those not yet placed.
func ShuffleWith(r Source, cards []card.Card) []card.Card {
	remaining := make([]card.Card, len(cards))
	copy(remaining, cards)

	out := make([]card.Card, 0, len(cards))
	for len(remaining) > 0 {
		i := r.IntN(len(remaining))
		out = append(out, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return out
}

// Deck is a shuffled draw pile plus discard and removed piles
type Deck struct {
	cards   []card.Card
	discard []card.Card
	removed []card.Card
	src     Source
}

// Option configures a Deck
type Option func(*Deck)

// WithSource sets the random source used for the initial shuffle
func WithSource(r Source) Option {
	return func(d *Deck) {
		d.src = r
	}
}

// New builds a deck from specs and shuffles it once
func New(specs []card.Spec, opts ...Option) *Deck {
	d := &Deck{src: globalSource{}}
	for _, opt := range opts {
		opt(d)
	}
	d.cards = ShuffleWith(d.src, Build(specs))
	return d
}

// Cards returns a copy of the draw pile, top first
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Len returns the number of cards in the draw pile
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining is the number of cards left to draw
func (d *Deck) Remaining() int {
	return d.Len()
}

// Counts returns how many copies of each card are in the draw pile
func (d *Deck) Counts() map[card.Card]int {
	return Counts(d.cards)
}

// Counts tallies cards by name and category
func Counts(cards []card.Card) map[card.Card]int {
	m := make(map[card.Card]int)
	for _, c := range cards {
		m[c]++
	}
	return m
}

// Summary lists the category of every card in deck order
func (d *Deck) Summary() string {
	return Summary(d.cards, func(c card.Card) string { return c.Category.String() })
}

// Names lists the name of every card in deck order
func (d *Deck) Names() string {
	return Summary(d.cards, func(c card.Card) string { return c.Name })
}

// Summary joins label(c) for each card with ", "
func Summary(cards []card.Card, label func(card.Card) string) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = label(c)
	}
	return strings.Join(parts, ", ")
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[0], true
}

// Draw removes and returns the top card
func (d *Deck) Draw() (card.Card, bool) {
	c, ok := d.Peek()
	if ok {
		d.cards = d.cards[1:]
	}
	return c, ok
}

// DrawN removes and returns the top n cards. Returns fewer if the deck is short.
func (d *Deck) DrawN(n int) []card.Card {
	if n < 0 {
		n = 0
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]card.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Discard puts c on top of the discard pile
func (d *Deck) Discard(c card.Card) {
	d.discard = append(d.discard, c)
}

// DiscardPile returns the discard pile, oldest first
func (d *Deck) DiscardPile() []card.Card {
	out := make([]card.Card, len(d.discard))
	copy(out, d.discard)
	return out
}

// TopDiscard returns the most recently discarded card
func (d *Deck) TopDiscard() (card.Card, bool) {
	if len(d.discard) == 0 {
		return card.Card{}, false
	}
	return d.discard[len(d.discard)-1], true
}

// Remove takes c out of play for good. Removed cards never return to the
// draw or discard pile.
func (d *Deck) Remove(c card.Card) {
	d.removed = append(d.removed, c)
}

// RemovedPile returns cards taken out of play, oldest first
func (d *Deck) RemovedPile() []card.Card {
	out := make([]card.Card, len(d.removed))
	copy(out, d.removed)
	return out
}

// State is a point-in-time view of the piles
type State struct {
	Remaining   int
	DiscardSize int
	RemovedSize int
	TopDiscard  *card.Card // nil when nothing has been discarded
}

// State reports pile sizes and the top of the discard pile
func (d *Deck) State() State {
	st := State{
		Remaining:   len(d.cards),
		DiscardSize: len(d.discard),
		RemovedSize: len(d.removed),
	}
	if top, ok := d.TopDiscard(); ok {
		st.TopDiscard = &top
	}
	return st
}
