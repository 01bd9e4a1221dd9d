// Package tile encodes the 37 tile kinds used throughout a Riichi hand: the
// 34 normal kinds plus the three red-five variants.
package tile

import (
	"errors"
	"fmt"
	"strings"
)

// Tile is a 6-bit tile encoding, 0..=36.
//
//   - 0-8:   characters 1m-9m
//   - 9-17:  dots 1p-9p
//   - 18-26: bamboo 1s-9s
//   - 27-33: honors 1z-7z (east, south, west, north, white, green, red)
//   - 34-36: red fives of 5m, 5p, 5s
type Tile uint8

// Min and Max are the valid encoding bounds.
const (
	Min Tile = 0
	Max Tile = 36
)

// Suit indices, matching the packed-key ordering used by tile/decomp.
const (
	SuitMan = iota
	SuitPin
	SuitSou
	SuitHonor
)

// ErrInvalidEncoding is returned whenever a caller-supplied encoding, suit/num
// pair, or shorthand string does not describe a valid tile.
var ErrInvalidEncoding = errors.New("tile: invalid encoding")

// FromEncoding validates a raw encoding and wraps it as a Tile.
func FromEncoding(e uint8) (Tile, error) {
	if e > uint8(Max) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidEncoding, e)
	}
	return Tile(e), nil
}

// FromNumSuit builds a tile from a 1-indexed numeral/honor number and a suit.
// num == 0 with suit m/p/s denotes the red five of that suit.
func FromNumSuit(num int, suit int) (Tile, error) {
	switch suit {
	case SuitMan, SuitPin, SuitSou:
		if num == 0 {
			return Tile(34 + suit), nil
		}
		if num < 1 || num > 9 {
			return 0, fmt.Errorf("%w: num=%d suit=%d", ErrInvalidEncoding, num, suit)
		}
		return Tile(suit*9 + num - 1), nil
	case SuitHonor:
		if num < 1 || num > 7 {
			return 0, fmt.Errorf("%w: num=%d suit=%d", ErrInvalidEncoding, num, suit)
		}
		return Tile(27 + num - 1), nil
	default:
		return 0, fmt.Errorf("%w: suit=%d", ErrInvalidEncoding, suit)
	}
}

// FromWind builds an honor tile from a wind index, 0 (east) through 3 (north).
func FromWind(w int) (Tile, error) {
	if w < 0 || w > 3 {
		return 0, fmt.Errorf("%w: wind=%d", ErrInvalidEncoding, w)
	}
	return Tile(27 + w), nil
}

func (t Tile) Encoding() uint8 { return uint8(t) }

// IsValid reports whether t is within the 37-value encoding space.
func (t Tile) IsValid() bool { return t <= Max }

// IsRed reports whether t is one of the three red-five variants (encoding >= 34).
func (t Tile) IsRed() bool { return t >= 34 }

// IsNormal reports whether t is one of the 34 normal tile kinds.
func (t Tile) IsNormal() bool { return t <= 33 }

// HasRed reports whether t is a 5m/5p/5s (which have a red-five sibling) or
// is itself a red five.
func (t Tile) HasRed() bool {
	return t == 4 || t == 13 || t == 22 || t.IsRed()
}

// NormalEncoding folds red fives onto their normal sibling's encoding; it is
// the identity for already-normal tiles.
func (t Tile) NormalEncoding() uint8 {
	switch t {
	case 34:
		return 4
	case 35:
		return 13
	case 36:
		return 22
	default:
		return uint8(t)
	}
}

// ToNormal returns the normal-tile form of t.
func (t Tile) ToNormal() Tile { return Tile(t.NormalEncoding()) }

// ToRed returns the red-five sibling of t and true, if t is a 4/13/22 (5m/5p/5s).
func (t Tile) ToRed() (Tile, bool) {
	switch t {
	case 4:
		return 34, true
	case 13:
		return 35, true
	case 22:
		return 36, true
	default:
		return 0, false
	}
}

// IsNumeral reports whether t is a character/dot/bamboo tile (normal or red).
func (t Tile) IsNumeral() bool { return t.NormalEncoding() < 27 }

// IsHonor reports whether t is a wind or dragon tile.
func (t Tile) IsHonor() bool { return t.NormalEncoding() >= 27 }

// IsWind reports whether t is one of the four wind tiles.
func (t Tile) IsWind() bool { e := t.NormalEncoding(); return e >= 27 && e <= 30 }

// IsDragon reports whether t is one of the three dragon tiles.
func (t Tile) IsDragon() bool { e := t.NormalEncoding(); return e >= 31 && e <= 33 }

// IsPureTerminal reports whether t is a 1 or 9 of a numeral suit (excluding honors).
func (t Tile) IsPureTerminal() bool {
	switch t.NormalEncoding() {
	case 0, 8, 9, 17, 18, 26:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether t is a pure terminal or an honor.
func (t Tile) IsTerminal() bool { return t.IsPureTerminal() || t.IsHonor() }

// IsMiddle reports whether t is a numeral 2..8 (i.e. neither terminal nor honor).
func (t Tile) IsMiddle() bool { return t.IsNumeral() && !t.IsPureTerminal() }

// Suit returns 0/1/2/3 for man/pin/sou/honor.
func (t Tile) Suit() int { return int(t.NormalEncoding() / 9) }

// Num returns the 1-indexed numeral or honor index within the suit; red fives
// return 0 (matching the `0m`/`0p`/`0s` shorthand digit).
func (t Tile) Num() int {
	if t.IsRed() {
		return 0
	}
	return int(t.NormalEncoding()%9) + 1
}

// NormalNum returns the numeral/honor index, mapping red fives to 5.
func (t Tile) NormalNum() int { return int(t.NormalEncoding()%9) + 1 }

// Succ returns the next higher numeral in the same suit (1..=8 -> 2..=9), or
// false at the top of the suit or for honors.
func (t Tile) Succ() (Tile, bool) {
	if !t.IsNumeral() {
		return 0, false
	}
	n := t.NormalNum()
	if n >= 9 {
		return 0, false
	}
	r, _ := FromNumSuit(n+1, t.Suit())
	return r, true
}

// Succ2 returns the numeral two steps higher (for ryanmen-high completion).
func (t Tile) Succ2() (Tile, bool) {
	if !t.IsNumeral() {
		return 0, false
	}
	n := t.NormalNum()
	if n > 7 {
		return 0, false
	}
	r, _ := FromNumSuit(n+2, t.Suit())
	return r, true
}

// Pred returns the next lower numeral in the same suit.
func (t Tile) Pred() (Tile, bool) {
	if !t.IsNumeral() {
		return 0, false
	}
	n := t.NormalNum()
	if n <= 1 {
		return 0, false
	}
	r, _ := FromNumSuit(n-1, t.Suit())
	return r, true
}

// Pred2 returns the numeral two steps lower (for ryanmen-low completion).
func (t Tile) Pred2() (Tile, bool) {
	if !t.IsNumeral() {
		return 0, false
	}
	n := t.NormalNum()
	if n <= 2 {
		return 0, false
	}
	r, _ := FromNumSuit(n-2, t.Suit())
	return r, true
}

// Wind returns 0..3 (east..north) and true if t is a wind tile.
func (t Tile) Wind() (int, bool) {
	if !t.IsWind() {
		return 0, false
	}
	return int(t.NormalEncoding()) - 27, true
}

// indicatedDora is the literal dora-indicator -> dora lookup, ported from the
// original crate's table rather than re-derived per call: numerals wrap
// 1->2->...->9->1 within their suit, winds wrap E->S->W->N->E, dragons wrap
// white->green->red->white, and a red five indicates the 6 of its suit.
var indicatedDora = [37]uint8{
	1, 2, 3, 4, 5, 6, 7, 8, 0,
	10, 11, 12, 13, 14, 15, 16, 17, 9,
	19, 20, 21, 22, 23, 24, 25, 26, 18,
	28, 29, 30, 27,
	32, 33, 31,
	5, 14, 23,
}

// IndicatedDora returns the dora tile indicated by t as a dora indicator.
func (t Tile) IndicatedDora() Tile { return Tile(indicatedDora[t]) }

// orderingKey produces the total-order sort key: reds sit strictly between 4
// and 5 of their suit (1m < ... < 4m < 0m < 5m < 6m < ... < 9s < 1z < ... < 7z).
func (t Tile) orderingKey() int {
	if t <= 33 {
		return int(t) * 2
	}
	return 7 + (int(t)-34)*18
}

// Less reports whether t sorts strictly before o under the total tile order.
func (t Tile) Less(o Tile) bool { return t.orderingKey() < o.orderingKey() }

// Compare returns -1, 0, or 1 per the total tile order.
func (t Tile) Compare(o Tile) int {
	a, b := t.orderingKey(), o.orderingKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var suitChar = [4]byte{'m', 'p', 's', 'z'}

func suitFromChar(c byte) (int, bool) {
	switch c {
	case 'm':
		return SuitMan, true
	case 'p':
		return SuitPin, true
	case 's':
		return SuitSou, true
	case 'z':
		return SuitHonor, true
	default:
		return 0, false
	}
}

// String renders t in `<digit><suit>` shorthand, e.g. "5m", "0p" (red five).
func (t Tile) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("?(%d)", uint8(t))
	}
	suit := t.Suit()
	return fmt.Sprintf("%d%c", t.Num(), suitChar[suit])
}

// Parse reads one `<digit><suit>` shorthand tile.
func Parse(s string) (Tile, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
	if s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
	suit, ok := suitFromChar(s[1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
	num := int(s[0] - '0')
	if suit == SuitHonor && num == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
	return FromNumSuit(num, suit)
}

// ParseHandString parses a multi-tile shorthand string such as
// "1112345678999m" or "11m22m33m44p55p66s77z" into a tile slice, in the
// order the digits appear (each digit group is terminated by its suit letter).
func ParseHandString(s string) ([]Tile, error) {
	var out []Tile
	digitStart := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		suit, ok := suitFromChar(c)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected char %q in %q", ErrInvalidEncoding, c, s)
		}
		if i == digitStart {
			return nil, fmt.Errorf("%w: empty digit run before %q in %q", ErrInvalidEncoding, string(c), s)
		}
		for j := digitStart; j < i; j++ {
			num := int(s[j] - '0')
			t, err := FromNumSuit(num, suit)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		digitStart = i + 1
	}
	if digitStart != len(s) {
		return nil, fmt.Errorf("%w: dangling digits %q in %q", ErrInvalidEncoding, s[digitStart:], s)
	}
	return out, nil
}

// FormatHand renders tiles back into shorthand, grouping consecutive runs of
// the same suit the way ParseHandString expects, e.g. "123m456p".
func FormatHand(tiles []Tile) string {
	var b strings.Builder
	i := 0
	for i < len(tiles) {
		suit := tiles[i].Suit()
		j := i
		for j < len(tiles) && tiles[j].Suit() == suit {
			b.WriteString(fmt.Sprintf("%d", tiles[j].Num()))
			j++
		}
		b.WriteByte(suitChar[suit])
		i = j
	}
	return b.String()
}
