package legacy

// IsHonor reports whether t is a Wind or Dragon tile.
func IsHonor(t Tile) bool {
	return t.Suit == "Wind" || t.Suit == "Dragon"
}

// IsTerminal reports whether t is a 1 or 9 of a numbered suit. Honors are not
// terminals by this definition; callers wanting both write IsTerminal(t) || IsHonor(t).
func IsTerminal(t Tile) bool {
	return (t.Suit == "Man" || t.Suit == "Pin" || t.Suit == "Sou") && (t.Value == 1 || t.Value == 9)
}

// IsSimple reports whether t is a numbered tile from 2 through 8.
func IsSimple(t Tile) bool {
	return !IsHonor(t) && !IsTerminal(t)
}
