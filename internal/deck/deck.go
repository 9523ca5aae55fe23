// Package deck models the ordered set of generated conversation cards.
package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address a card.
	ErrIndexOutOfRange = errors.New("deck: index out of range")
	// ErrIncompleteCard is returned when a card is missing one of its fields.
	ErrIncompleteCard = errors.New("deck: incomplete card")
)

// Card is one generated conversation prompt. The zero value is empty; use
// NewCard to build a populated one. Cards are never mutated after creation.
type Card struct {
	primary   string
	secondary string
	rationale string
	tip       string
}

// NewCard trims and validates all four fields. Both prompts must be present
// together.
func NewCard(primary, secondary, rationale, tip string) (Card, error) {
	c := Card{
		primary:   strings.TrimSpace(primary),
		secondary: strings.TrimSpace(secondary),
		rationale: strings.TrimSpace(rationale),
		tip:       strings.TrimSpace(tip),
	}
	switch {
	case c.primary == "" || c.secondary == "":
		return Card{}, fmt.Errorf("%w: both prompts are required", ErrIncompleteCard)
	case c.rationale == "":
		return Card{}, fmt.Errorf("%w: rationale is required", ErrIncompleteCard)
	case c.tip == "":
		return Card{}, fmt.Errorf("%w: tip is required", ErrIncompleteCard)
	}
	return c, nil
}

// PromptPrimary is the Chinese form of the question.
func (c Card) PromptPrimary() string { return c.primary }

// PromptSecondary is the English form of the question.
func (c Card) PromptSecondary() string { return c.secondary }

func (c Card) Rationale() string { return c.rationale }

func (c Card) Tip() string { return c.tip }

// Deck is an ordered, contiguous sequence of cards. Operations return new
// decks and never write into a backing array another Deck can see, so a
// reader holding a Deck always observes a complete sequence.
type Deck struct {
	cards []Card
}

// New copies cards into a fresh deck.
func New(cards ...Card) Deck {
	if len(cards) == 0 {
		return Deck{}
	}
	return Deck{cards: append([]Card(nil), cards...)}
}

// Replace returns a deck holding exactly cards, discarding d's contents.
func (d Deck) Replace(cards []Card) Deck {
	return New(cards...)
}

// RemoveAt returns a deck without the card at i; later cards shift down by one.
func (d Deck) RemoveAt(i int) (Deck, error) {
	if i < 0 || i >= len(d.cards) {
		return d, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.cards))
	}
	next := make([]Card, 0, len(d.cards)-1)
	next = append(next, d.cards[:i]...)
	next = append(next, d.cards[i+1:]...)
	return Deck{cards: next}, nil
}

func (d Deck) Len() int { return len(d.cards) }

func (d Deck) Empty() bool { return len(d.cards) == 0 }

// At returns the card at i.
func (d Deck) At(i int) (Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[i], true
}

// Cards returns a copy of the deck's cards in order.
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Contains reports whether an identical card is still in the deck.
func (d Deck) Contains(card Card) bool {
	for _, c := range d.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Label is the human position of index i, e.g. "Card 3".
func Label(i int) string {
	return fmt.Sprintf("Card %d", i+1)
}
