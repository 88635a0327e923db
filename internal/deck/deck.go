package deck

import rand "math/rand/v2"

// Deck represents a shuffled deck of the 52 unique (suit, rank) pairs.
// Cards are drawn from the top, which is the end of the slice.
type Deck struct {
	cards []Card
}

// NewShuffled builds a full 52-card deck and shuffles it with the
// provided RNG. The RNG is required so shuffles are reproducible in tests.
func NewShuffled(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})

	return d
}

// FromCards builds a deck with a fixed order, for deterministic deals.
// The last card in the slice is the top of the deck.
func FromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Draw removes and returns the top card. The second return is false
// when the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}
