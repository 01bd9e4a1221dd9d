package meld

import (
	"fmt"
	"math/bits"

	"riichi-go/tile"
)

// Kind tags which of the five meld shapes a packed word encodes.
type Kind uint8

const (
	KindChii Kind = iota
	KindPon
	KindKakan
	KindDaiminkan
	KindAnkan
)

// pack4/unpack4 squeeze 4 booleans into (and back out of) a 4-bit field.
func pack4(a, b, c, d bool) uint8 {
	var x uint8
	if a {
		x |= 1
	}
	if b {
		x |= 2
	}
	if c {
		x |= 4
	}
	if d {
		x |= 8
	}
	return x
}

func unpack4(x uint8) (a, b, c, d bool) {
	return x&1 != 0, x&2 != 0, x&4 != 0, x&8 != 0
}

// normalizeBits replaces the low n bits of x with a left-packed run of
// popcount(low n bits of x) ones, leaving the remaining bits untouched. This
// canonicalizes "which of several interchangeable own tiles is red" down to
// "how many of them are red" (order among identical tiles never matters),
// e.g. 0b1010 and 0b0011 both normalize to 0b0011 for n=4.
func normalizeBits(x uint8, n uint8) uint8 {
	lsbs := x & ((1 << n) - 1)
	msbs := x &^ ((1 << n) - 1)
	newLsbs := uint8(1<<bits.OnesCount8(lsbs)) - 1
	return msbs | newLsbs
}

func normalizePon(x uint8) uint8       { return normalizeBits(x, 2) & 0b0111 }
func normalizeKakan(x uint8) uint8     { return normalizeBits(x, 2) & 0b1111 }
func normalizeDaiminkan(x uint8) uint8 { return normalizeBits(x, 3) & 0b1111 }
func normalizeAnkan(x uint8) uint8     { return normalizeBits(x, 4) & 0b1111 }

func sort2(a, b tile.Tile) (tile.Tile, tile.Tile) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func sortTiles(ts []tile.Tile) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].Less(ts[j-1]); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}

var suitChar = [4]byte{'m', 'p', 's', 'z'}

func digit(t tile.Tile) byte { return byte('0' + t.Num()) }

// Chii is an open run of 3 consecutive numerals (チー), always called from
// the player to one's left.
type Chii struct {
	Min    tile.Tile // smallest normal tile of the run
	Own    [2]tile.Tile
	Called tile.Tile
}

// FromTiles builds a Chii from the two tiles already in hand plus the called
// discard; all three must be distinct consecutive numerals of the same suit.
func FromTiles(own0, own1, called tile.Tile) (Chii, bool) {
	if !own0.IsNumeral() || !own1.IsNumeral() || !called.IsNumeral() {
		return Chii{}, false
	}
	if own0.Suit() != called.Suit() || own1.Suit() != called.Suit() {
		return Chii{}, false
	}
	nums := []int{own0.NormalNum(), own1.NormalNum(), called.NormalNum()}
	sorted := append([]int{}, nums...)
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if sorted[0] == sorted[1] || sorted[1] == sorted[2] || sorted[2]-sorted[0] != 2 {
		return Chii{}, false
	}
	min, err := tile.FromNumSuit(sorted[0], called.Suit())
	if err != nil {
		return Chii{}, false
	}
	o0, o1 := sort2(own0, own1)
	return Chii{Min: min, Own: [2]tile.Tile{o0, o1}, Called: called}, true
}

// ConsumeFromHand removes the two held tiles.
func (c Chii) ConsumeFromHand(hand *tile.Set37) {
	hand.Remove(c.Own[0])
	hand.Remove(c.Own[1])
}

// ToEquivalentGroup projects the Chii onto a closed-hand HandGroup, useful
// for feeding a completed hand's open melds through the same Yaku detectors
// that consume closed-hand decompositions.
func (c Chii) ToEquivalentGroup() HandGroup {
	return HandGroup{Kind: GroupShuntsu, Tile: c.Min}
}

func (c Chii) packed() uint16 {
	red := uint8(0)
	if c.Own[0].IsRed() || c.Own[1].IsRed() || c.Called.IsRed() {
		red = 1
	}
	dir := uint8(c.Called.NormalNum() - c.Min.Num())
	return packWord(c.Min.NormalEncoding(), dir, red, uint8(KindChii))
}

func chiiFromPacked(t tile.Tile, dir, red uint8) (Chii, bool) {
	minNum := t.Num()
	calledNum := minNum + int(dir)
	if calledNum < 1 || calledNum > 9 {
		return Chii{}, false
	}
	run := make([]tile.Tile, 3)
	for i := 0; i < 3; i++ {
		rt, err := tile.FromNumSuit(minNum+i, t.Suit())
		if err != nil {
			return Chii{}, false
		}
		run[i] = rt
	}
	if red&1 != 0 {
		for i, rt := range run {
			if rt.NormalNum() == 5 {
				red5, ok := rt.ToRed()
				if ok {
					run[i] = red5
				}
			}
		}
	}
	called := run[int(dir)]
	var own []tile.Tile
	for i, rt := range run {
		if i != int(dir) {
			own = append(own, rt)
		}
	}
	return FromTiles(own[0], own[1], called)
}

func (c Chii) String() string {
	return fmt.Sprintf("C%c%c%c%c", digit(c.Called), digit(c.Own[0]), digit(c.Own[1]), suitChar[c.Min.Suit()])
}

// Pon is an open triplet (ポン) called from any other player's discard.
type Pon struct {
	Own    [2]tile.Tile
	Called tile.Tile
	Dir    uint8 // (discarding player - self) mod 4, always 1..3
}

// FromTilesDir builds a Pon from the two held tiles, the called discard, and
// the relative seat offset of the discarding player.
func FromTilesDir(own0, own1, called tile.Tile, dir uint8) (Pon, bool) {
	if own0.ToNormal() != called.ToNormal() || own1.ToNormal() != called.ToNormal() || dir == 0 {
		return Pon{}, false
	}
	o0, o1 := sort2(own0, own1)
	return Pon{Own: [2]tile.Tile{o0, o1}, Called: called, Dir: dir}, true
}

// IsInHand reports whether the two own tiles are actually available in hand.
func (p Pon) IsInHand(hand tile.Set37) bool {
	if p.Own[0] != p.Own[1] {
		return hand.Count(p.Own[0]) >= 1 && hand.Count(p.Own[1]) >= 1
	}
	return hand.Count(p.Own[0]) >= 2
}

func (p Pon) ConsumeFromHand(hand *tile.Set37) {
	hand.Remove(p.Own[0])
	hand.Remove(p.Own[1])
}

func (p Pon) ToEquivalentGroup() HandGroup {
	return HandGroup{Kind: GroupKoutsu, Tile: p.Called.ToNormal()}
}

func (p Pon) packed() uint16 {
	red := pack4(p.Own[0].IsRed(), p.Own[1].IsRed(), p.Called.IsRed(), false)
	return packWord(p.Own[0].NormalEncoding(), p.Dir, red, uint8(KindPon))
}

func ponFromPacked(t tile.Tile, dir, red uint8) (Pon, bool) {
	own0, own1, called := t, t, t
	r0, r1, r2, _ := unpack4(normalizePon(red))
	if r0 {
		own0, _ = own0.ToRed()
	}
	if r1 {
		own1, _ = own1.ToRed()
	}
	if r2 {
		called, _ = called.ToRed()
	}
	return FromTilesDir(own0, own1, called, dir)
}

func (p Pon) String() string {
	n0, n1, nc, s := digit(p.Own[0]), digit(p.Own[1]), digit(p.Called), suitChar[p.Called.Suit()]
	switch p.Dir {
	case 1:
		return fmt.Sprintf("%c%cP%c%c", n0, n1, nc, s)
	case 2:
		return fmt.Sprintf("%cP%c%c%c", n0, nc, n1, s)
	case 3:
		return fmt.Sprintf("P%c%c%c%c", nc, n0, n1, s)
	default:
		return "?Pon"
	}
}

// Kakan is a Pon upgraded to a kan by adding the 4th tile from hand (加槓).
type Kakan struct {
	Pon   Pon
	Added tile.Tile
}

// FromPonAdded attaches the added tile to an existing Pon.
func FromPonAdded(pon Pon, added tile.Tile) (Kakan, bool) {
	if added.ToNormal() != pon.Called.ToNormal() {
		return Kakan{}, false
	}
	return Kakan{Pon: pon, Added: added}, true
}

// FromPonHand derives the added tile from the closed hand's remaining count
// of the Pon's tile kind (preferring the red variant only when the normal
// copy is exhausted, matching `count_for_kan`'s exact/1-of-the-other rule).
func FromPonHand(pon Pon, hand tile.Set37) (Kakan, bool) {
	normal := pon.Called.ToNormal()
	numNormal := hand.Count(normal)
	numRed := uint8(0)
	if normal.NormalNum() == 5 {
		if red, ok := normal.ToRed(); ok {
			numRed = hand.Count(red)
		}
	}
	switch {
	case numNormal == 1 && numRed == 0:
		return Kakan{Pon: pon, Added: normal}, true
	case numNormal == 0 && numRed == 1:
		red, _ := normal.ToRed()
		return Kakan{Pon: pon, Added: red}, true
	default:
		return Kakan{}, false
	}
}

func (k Kakan) ConsumeFromHand(hand *tile.Set37) { hand.Remove(k.Added) }

func (k Kakan) ToEquivalentGroup() HandGroup {
	return HandGroup{Kind: GroupKoutsu, Tile: k.Added.ToNormal()}
}

func (k Kakan) packed() uint16 {
	red := pack4(k.Pon.Own[0].IsRed(), k.Pon.Own[1].IsRed(), k.Pon.Called.IsRed(), k.Added.IsRed())
	return packWord(k.Pon.Own[0].NormalEncoding(), k.Pon.Dir, red, uint8(KindKakan))
}

func kakanFromPacked(t tile.Tile, dir, red uint8) (Kakan, bool) {
	own0, own1, called, added := t, t, t, t
	r0, r1, r2, r3 := unpack4(normalizeKakan(red))
	if r0 {
		own0, _ = own0.ToRed()
	}
	if r1 {
		own1, _ = own1.ToRed()
	}
	if r2 {
		called, _ = called.ToRed()
	}
	if r3 {
		added, _ = added.ToRed()
	}
	pon, ok := FromTilesDir(own0, own1, called, dir)
	if !ok {
		return Kakan{}, false
	}
	return FromPonAdded(pon, added)
}

func (k Kakan) String() string {
	n0, n1, nc, na, s := digit(k.Pon.Own[0]), digit(k.Pon.Own[1]), digit(k.Pon.Called), digit(k.Added), suitChar[k.Added.Suit()]
	switch k.Pon.Dir {
	case 1:
		return fmt.Sprintf("%c%cK(%c/%c)%c", n0, n1, na, nc, s)
	case 2:
		return fmt.Sprintf("%cK(%c/%c)%c%c", n0, na, nc, n1, s)
	case 3:
		return fmt.Sprintf("K(%c/%c)%c%c%c", na, nc, n0, n1, s)
	default:
		return "?Kakan"
	}
}

// Daiminkan is an open kan called directly from a discard (大明槓): the
// caller already holds 3 matching tiles and calls the 4th.
type Daiminkan struct {
	Own    [3]tile.Tile
	Called tile.Tile
	Dir    uint8
}

// DaiminkanFromTilesDir builds a Daiminkan from the three held tiles, the
// called discard, and the relative seat offset of the discarding player.
func DaiminkanFromTilesDir(own0, own1, own2, called tile.Tile, dir uint8) (Daiminkan, bool) {
	n := called.ToNormal()
	if own0.ToNormal() != n || own1.ToNormal() != n || own2.ToNormal() != n || dir == 0 {
		return Daiminkan{}, false
	}
	own := []tile.Tile{own0, own1, own2}
	sortTiles(own)
	return Daiminkan{Own: [3]tile.Tile{own[0], own[1], own[2]}, Called: called, Dir: dir}, true
}

func (d Daiminkan) ConsumeFromHand(hand *tile.Set37) {
	hand.Remove(d.Own[0])
	hand.Remove(d.Own[1])
	hand.Remove(d.Own[2])
}

func (d Daiminkan) ToEquivalentGroup() HandGroup {
	return HandGroup{Kind: GroupKoutsu, Tile: d.Called.ToNormal()}
}

func (d Daiminkan) packed() uint16 {
	red := pack4(d.Own[0].IsRed(), d.Own[1].IsRed(), d.Own[2].IsRed(), d.Called.IsRed())
	return packWord(d.Own[0].NormalEncoding(), d.Dir, red, uint8(KindDaiminkan))
}

func daiminkanFromPacked(t tile.Tile, dir, red uint8) (Daiminkan, bool) {
	own0, own1, own2, called := t, t, t, t
	r0, r1, r2, r3 := unpack4(normalizeDaiminkan(red))
	if r0 {
		own0, _ = own0.ToRed()
	}
	if r1 {
		own1, _ = own1.ToRed()
	}
	if r2 {
		own2, _ = own2.ToRed()
	}
	if r3 {
		called, _ = called.ToRed()
	}
	return DaiminkanFromTilesDir(own0, own1, own2, called, dir)
}

// String renders the call marker at the seat-relative position implied by
// Dir, generalizing Pon/Kakan's directional notation to 3 own tiles.
func (d Daiminkan) String() string {
	digits := [3]byte{digit(d.Own[0]), digit(d.Own[1]), digit(d.Own[2])}
	nc := digit(d.Called)
	s := suitChar[d.Called.Suit()]
	pos := 4 - int(d.Dir) // marker slot among the 4 positions around 3 own tiles
	if pos < 0 || pos > 3 {
		return "?Daiminkan"
	}
	var b []byte
	b = append(b, digits[:pos]...)
	b = append(b, 'D', nc)
	b = append(b, digits[pos:]...)
	b = append(b, s)
	return string(b)
}

// Ankan is a fully closed kan (暗槓): 4 identical tiles set aside during the
// owner's own turn. It does not open the hand for scoring purposes.
type Ankan struct {
	Own [4]tile.Tile
}

func AnkanFromTiles(own0, own1, own2, own3 tile.Tile) (Ankan, bool) {
	n := own0.ToNormal()
	if own1.ToNormal() != n || own2.ToNormal() != n || own3.ToNormal() != n {
		return Ankan{}, false
	}
	own := []tile.Tile{own0, own1, own2, own3}
	sortTiles(own)
	return Ankan{Own: [4]tile.Tile{own[0], own[1], own[2], own[3]}}, true
}

func (a Ankan) ToEquivalentGroup() HandGroup {
	return HandGroup{Kind: GroupKoutsu, Tile: a.Own[0].ToNormal()}
}

func (a Ankan) packed() uint16 {
	red := pack4(a.Own[0].IsRed(), a.Own[1].IsRed(), a.Own[2].IsRed(), a.Own[3].IsRed())
	return packWord(a.Own[0].NormalEncoding(), 0, red, uint8(KindAnkan))
}

func ankanFromPacked(t tile.Tile, red uint8) (Ankan, bool) {
	own := [4]tile.Tile{t, t, t, t}
	r0, r1, r2, r3 := unpack4(normalizeAnkan(red))
	flags := [4]bool{r0, r1, r2, r3}
	for i, f := range flags {
		if f {
			own[i], _ = own[i].ToRed()
		}
	}
	return AnkanFromTiles(own[0], own[1], own[2], own[3])
}

func (a Ankan) String() string {
	return fmt.Sprintf("A%c%c%c%c%c", digit(a.Own[0]), digit(a.Own[1]), digit(a.Own[2]), digit(a.Own[3]), suitChar[a.Own[0].Suit()])
}

// Meld is the sum of all five open/closed call shapes. Only the field named
// by Kind is meaningful; the others are zero.
type Meld struct {
	Kind      Kind
	Chii      Chii
	Pon       Pon
	Kakan     Kakan
	Daiminkan Daiminkan
	Ankan     Ankan
}

func FromChii(c Chii) Meld           { return Meld{Kind: KindChii, Chii: c} }
func FromPon(p Pon) Meld             { return Meld{Kind: KindPon, Pon: p} }
func FromKakan(k Kakan) Meld         { return Meld{Kind: KindKakan, Kakan: k} }
func FromDaiminkan(d Daiminkan) Meld { return Meld{Kind: KindDaiminkan, Daiminkan: d} }
func FromAnkan(a Ankan) Meld         { return Meld{Kind: KindAnkan, Ankan: a} }

// IsKan reports whether m is any of the three kan variants.
func (m Meld) IsKan() bool {
	switch m.Kind {
	case KindKakan, KindDaiminkan, KindAnkan:
		return true
	default:
		return false
	}
}

// ToEquivalentGroup maps the meld onto the closed-hand HandGroup it would be
// if concealed, used when scanning a winning hand's groups uniformly.
func (m Meld) ToEquivalentGroup() HandGroup {
	switch m.Kind {
	case KindChii:
		return m.Chii.ToEquivalentGroup()
	case KindPon:
		return m.Pon.ToEquivalentGroup()
	case KindKakan:
		return m.Kakan.ToEquivalentGroup()
	case KindDaiminkan:
		return m.Daiminkan.ToEquivalentGroup()
	default:
		return m.Ankan.ToEquivalentGroup()
	}
}

// ConsumeFromHand removes the meld's hand-held tiles (all but the called one
// for open melds; all four for an Ankan).
func (m Meld) ConsumeFromHand(hand *tile.Set37) {
	switch m.Kind {
	case KindChii:
		m.Chii.ConsumeFromHand(hand)
	case KindPon:
		m.Pon.ConsumeFromHand(hand)
	case KindKakan:
		m.Kakan.ConsumeFromHand(hand)
	case KindDaiminkan:
		m.Daiminkan.ConsumeFromHand(hand)
	case KindAnkan:
		for _, t := range m.Ankan.Own {
			hand.Remove(t)
		}
	}
}

func (m Meld) String() string {
	switch m.Kind {
	case KindChii:
		return m.Chii.String()
	case KindPon:
		return m.Pon.String()
	case KindKakan:
		return m.Kakan.String()
	case KindDaiminkan:
		return m.Daiminkan.String()
	default:
		return m.Ankan.String()
	}
}

// packWord assembles the 16-bit word: tile[5:0], dir[7:6], red[11:8], kind[14:12].
func packWord(t uint8, dir uint8, red uint8, kind uint8) uint16 {
	return uint16(t&0x3f) | uint16(dir&0x3)<<6 | uint16(red&0xf)<<8 | uint16(kind&0x7)<<12
}

// Packed encodes m into its 16-bit wire form.
func (m Meld) Packed() uint16 {
	switch m.Kind {
	case KindChii:
		return m.Chii.packed()
	case KindPon:
		return m.Pon.packed()
	case KindKakan:
		return m.Kakan.packed()
	case KindDaiminkan:
		return m.Daiminkan.packed()
	default:
		return m.Ankan.packed()
	}
}

// FromPacked decodes a 16-bit word back into a Meld, or reports false if the
// bits do not describe a structurally valid meld.
func FromPacked(packed uint16) (Meld, bool) {
	rawTile := uint8(packed & 0x3f)
	dir := uint8((packed >> 6) & 0x3)
	red := uint8((packed >> 8) & 0xf)
	kind := Kind((packed >> 12) & 0x7)

	t, err := tile.FromEncoding(rawTile)
	if err != nil {
		return Meld{}, false
	}
	t = t.ToNormal()

	switch kind {
	case KindChii:
		c, ok := chiiFromPacked(t, dir, red)
		return FromChii(c), ok
	case KindPon:
		p, ok := ponFromPacked(t, dir, red)
		return FromPon(p), ok
	case KindKakan:
		k, ok := kakanFromPacked(t, dir, red)
		return FromKakan(k), ok
	case KindDaiminkan:
		d, ok := daiminkanFromPacked(t, dir, red)
		return FromDaiminkan(d), ok
	case KindAnkan:
		a, ok := ankanFromPacked(t, red)
		return FromAnkan(a), ok
	default:
		return Meld{}, false
	}
}
