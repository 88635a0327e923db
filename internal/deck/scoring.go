package deck

// BestTotal returns the best blackjack total for a set of cards.
// Aces start at 11 and are rebated to 1 one at a time while the total
// exceeds 21. The result may still exceed 21, which signals a bust.
func BestTotal(cards []Card) int {
	total := 0
	aces := 0

	for _, c := range cards {
		if c.IsAce() {
			aces++
		}
		total += c.HardValue()
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack reports whether cards form a natural: exactly two cards,
// one Ace and one ten-valued card.
func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	hasAce := false
	hasTen := false
	for _, c := range cards {
		if c.IsAce() {
			hasAce = true
		}
		if c.IsTenValue() {
			hasTen = true
		}
	}
	return hasAce && hasTen
}
