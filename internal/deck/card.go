package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the lowercase english name for a suit, used in asset paths
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// TitleName returns the capitalized english name for a suit, used in
// event log lines
func (s Suit) TitleName() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are immutable once drawn.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the short representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// DisplayName returns the long form used in event logs (e.g., "A of Spades")
func (c Card) DisplayName() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit.TitleName())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValue returns true if the card counts as ten (10, J, Q, K)
func (c Card) IsTenValue() bool {
	return c.Rank >= Ten && c.Rank <= King
}

// HardValue returns the card's blackjack value counting Aces as 11
func (c Card) HardValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.IsTenValue():
		return 10
	default:
		return int(c.Rank)
	}
}

// ImagePath returns the renderer asset path for a card face.
// Ranks 2-9 are zero padded, faces and tens keep their token.
func (c Card) ImagePath() string {
	return fmt.Sprintf("%s/card_%s_%s.png", cardAssetDir, c.Suit.Name(), rankToken(c.Rank))
}

const cardAssetDir = "assets/images/playing-cards/Cards (large)"

// BackImagePath is the asset path for a face-down card.
const BackImagePath = cardAssetDir + "/card_back.png"

func rankToken(r Rank) string {
	switch {
	case r == Ten:
		return "10"
	case r > Ten:
		return r.String()
	default:
		return fmt.Sprintf("0%d", int(r))
	}
}
