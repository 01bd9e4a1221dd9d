package decomp

import "riichi-go/tile"

// ResolvedGroup is a Group resolved against a concrete suit, ready to be
// turned into real Tile values.
type ResolvedGroup struct {
	Kind GroupKind
	Suit int
	Pos  uint8 // suit-relative position: 0..=8 for Koutsu, 0..=6 for Shuntsu
}

// Tiles returns the three member tiles of the group.
func (g ResolvedGroup) Tiles() [3]tile.Tile {
	if g.Kind == Koutsu {
		t, _ := tile.FromNumSuit(int(g.Pos)+1, g.Suit)
		return [3]tile.Tile{t, t, t}
	}
	t1, _ := tile.FromNumSuit(int(g.Pos)+1, g.Suit)
	t2, _ := tile.FromNumSuit(int(g.Pos)+2, g.Suit)
	t3, _ := tile.FromNumSuit(int(g.Pos)+3, g.Suit)
	return [3]tile.Tile{t1, t2, t3}
}

// Min returns the group's lowest tile (its koutsu tile, or a shuntsu's first tile).
func (g ResolvedGroup) Min() tile.Tile {
	t, _ := tile.FromNumSuit(int(g.Pos)+1, g.Suit)
	return t
}

// RegularWait is one fully resolved regular waiting-hand decomposition: the
// closed hand's groups (the one completed by the waiting tile last), the
// pair (for a Tanki wait, the waiting tile itself), the waiting kind, the
// pattern's anchor tile, and the concrete waiting tile.
type RegularWait struct {
	Groups      []ResolvedGroup
	Pair        tile.Tile
	PatternTile tile.Tile
	WaitingTile tile.Tile
	Kind        WaitingKind
}

// SortedGroups returns a copy of Groups sorted for unordered-multiset
// comparison, per spec.md's equality rule for RegularWait.
func (r RegularWait) SortedGroups() []ResolvedGroup {
	out := append([]ResolvedGroup{}, r.Groups...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && groupLess(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func groupLess(a, b ResolvedGroup) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Pos < b.Pos
}

// Equal compares two RegularWait values treating Groups as an unordered
// multiset.
func (r RegularWait) Equal(o RegularWait) bool {
	if r.Pair != o.Pair || r.PatternTile != o.PatternTile ||
		r.WaitingTile != o.WaitingTile || r.Kind != o.Kind {
		return false
	}
	a, b := r.SortedGroups(), o.SortedGroups()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// partialWait accumulates groups/pair while extending across suits; it
// becomes one or more RegularWait values once every suit has been visited.
type partialWait struct {
	groups      []ResolvedGroup
	pair        *tile.Tile
	suitW       int
	pos         uint8
	patternTile tile.Tile
	kind        WaitingKind
}

func (b partialWait) hasPairOrTanki() bool {
	return b.pair != nil || b.kind == Tanki
}

func fromWaitingPattern(suitW int, wp WaitingPattern) (partialWait, bool) {
	if suitW == tile.SuitHonor && wp.Kind.IsShuntsuPattern() {
		return partialWait{}, false
	}
	patternTile, err := tile.FromNumSuit(int(wp.Pos)+1, suitW)
	if err != nil {
		return partialWait{}, false
	}
	return partialWait{suitW: suitW, pos: wp.Pos, patternTile: patternTile, kind: wp.Kind}, true
}

func (b partialWait) tryExtend(suit int, g Grouping, key uint32) (partialWait, bool) {
	pairPos, gHasPair := g.Pair(key)
	if b.hasPairOrTanki() && gHasPair {
		return partialWait{}, false
	}
	if suit == tile.SuitHonor && g.HasShuntsu() {
		return partialWait{}, false
	}
	newGroups := make([]ResolvedGroup, len(b.groups)+len(g.Groups))
	copy(newGroups, b.groups)
	for i, grp := range g.Groups {
		newGroups[len(b.groups)+i] = ResolvedGroup{Kind: grp.Kind, Suit: suit, Pos: grp.Pos}
	}
	newPair := b.pair
	if gHasPair {
		t, _ := tile.FromNumSuit(int(pairPos)+1, suit)
		newPair = &t
	}
	nb := b
	nb.groups = newGroups
	nb.pair = newPair
	return nb, true
}

func appendResolvedGroup(groups []ResolvedGroup, g ResolvedGroup) []ResolvedGroup {
	ng := make([]ResolvedGroup, len(groups)+1)
	copy(ng, groups)
	ng[len(groups)] = g
	return ng
}

// complete resolves the waiting pattern into its final group/pair and
// concrete waiting tile(s), possibly yielding two RegularWait values for a
// RyanmenBoth wait.
func (b partialWait) complete() []RegularWait {
	switch b.kind {
	case Tanki:
		if b.pair != nil {
			return nil
		}
		wt := b.patternTile
		return []RegularWait{{Groups: b.groups, Pair: wt, PatternTile: b.patternTile, WaitingTile: wt, Kind: b.kind}}
	case Shanpon:
		if b.pair == nil {
			return nil
		}
		groups := appendResolvedGroup(b.groups, ResolvedGroup{Koutsu, b.suitW, b.pos})
		wt := b.patternTile
		return []RegularWait{{Groups: groups, Pair: *b.pair, PatternTile: b.patternTile, WaitingTile: wt, Kind: b.kind}}
	case Kanchan:
		if b.pair == nil {
			return nil
		}
		wt, ok := b.patternTile.Succ()
		if !ok {
			return nil
		}
		groups := appendResolvedGroup(b.groups, ResolvedGroup{Shuntsu, b.suitW, b.pos})
		return []RegularWait{{Groups: groups, Pair: *b.pair, PatternTile: b.patternTile, WaitingTile: wt, Kind: b.kind}}
	case RyanmenLow, RyanmenHigh, RyanmenBoth:
		if b.pair == nil {
			return nil
		}
		var out []RegularWait
		if b.kind != RyanmenHigh {
			if wt, ok := b.patternTile.Pred(); ok {
				groups := appendResolvedGroup(b.groups, ResolvedGroup{Shuntsu, b.suitW, uint8(int(b.pos) - 1)})
				out = append(out, RegularWait{Groups: groups, Pair: *b.pair, PatternTile: b.patternTile, WaitingTile: wt, Kind: b.kind})
			}
		}
		if b.kind != RyanmenLow {
			if wt, ok := b.patternTile.Succ2(); ok {
				groups := appendResolvedGroup(b.groups, ResolvedGroup{Shuntsu, b.suitW, b.pos})
				out = append(out, RegularWait{Groups: groups, Pair: *b.pair, PatternTile: b.patternTile, WaitingTile: wt, Kind: b.kind})
			}
		}
		return out
	default:
		return nil
	}
}

// Decomposer combines per-suit C-table/W-table lookups into full-hand
// regular waiting decompositions. It holds no per-hand state beyond the
// immutable tables, so one Decomposer is safe to reuse sequentially across
// many hands (not concurrently: construct one per goroutine).
type Decomposer struct {
	c Table
	w WTable
}

// NewDecomposer builds a Decomposer over an already-generated C-table and
// W-table.
func NewDecomposer(c Table, w WTable) *Decomposer {
	return &Decomposer{c: c, w: w}
}

var otherSuits = [4][3]int{
	{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2},
}

// VisitFunc receives one RegularWait at a time; DecomposeFunc calls it as
// results are produced rather than materializing the full cross-product
// up front.
type VisitFunc func(RegularWait)

// DecomposeFunc enumerates every regular waiting decomposition of the hand
// described by keys (man, pin, sou, honor packed-octal keys), calling visit
// once per decomposition.
func (d *Decomposer) DecomposeFunc(keys [4]uint32, visit VisitFunc) {
	var cForSuit [4][]Grouping
	for suit := 0; suit < 4; suit++ {
		groupings := d.c[keys[suit]]
		if suit == tile.SuitHonor {
			for _, g := range groupings {
				if !g.HasShuntsu() {
					cForSuit[suit] = append(cForSuit[suit], g)
				}
			}
		} else {
			cForSuit[suit] = groupings
		}
	}

	suitX := 4
	for suit := 0; suit < 4; suit++ {
		if len(cForSuit[suit]) == 0 {
			if suitX == 4 {
				suitX = suit
			} else {
				suitX = 5
			}
		}
	}
	if suitX == 5 {
		return
	}

	for suitW := 0; suitW < 4; suitW++ {
		if suitX != 4 && suitW != suitX {
			continue
		}
		d.decomposeForWaitingSuit(suitW, keys, cForSuit, visit)
	}
}

func (d *Decomposer) decomposeForWaitingSuit(suitW int, keys [4]uint32, cForSuit [4][]Grouping, visit VisitFunc) {
	for _, wp := range d.w.Iterate(keys[suitW]) {
		base, ok := fromWaitingPattern(suitW, wp)
		if !ok {
			continue
		}
		groupings := d.c[wp.CompleteKey]
		for _, g := range groupings {
			if suitW == tile.SuitHonor && g.HasShuntsu() {
				continue
			}
			partial, ok := base.tryExtend(suitW, g, wp.CompleteKey)
			if !ok {
				continue
			}
			d.extendAcrossSuits(partial, otherSuits[suitW], 0, keys, cForSuit, visit)
		}
	}
}

func (d *Decomposer) extendAcrossSuits(partial partialWait, suitsC [3]int, idx int, keys [4]uint32, cForSuit [4][]Grouping, visit VisitFunc) {
	if idx == 3 {
		for _, rw := range partial.complete() {
			visit(rw)
		}
		return
	}
	suit := suitsC[idx]
	for _, g := range cForSuit[suit] {
		np, ok := partial.tryExtend(suit, g, keys[suit])
		if !ok {
			continue
		}
		d.extendAcrossSuits(np, suitsC, idx+1, keys, cForSuit, visit)
	}
}

// Decompose is the non-streaming convenience wrapper over DecomposeFunc.
func (d *Decomposer) Decompose(keys [4]uint32) []RegularWait {
	var out []RegularWait
	d.DecomposeFunc(keys, func(rw RegularWait) { out = append(out, rw) })
	return out
}

// WaitingInfo bundles every way a hand can be interpreted as tenpai: the set
// of tiles that complete it, every regular decomposition, and the irregular
// pattern if one applies.
type WaitingInfo struct {
	WaitingTiles tile.Mask34
	RegularWaits []RegularWait
	Irregular    *IrregularWait
}

// BuildWaitingInfo runs both the regular decomposer and the irregular
// detector over the same packed keys and merges their waiting-tile sets.
func BuildWaitingInfo(d *Decomposer, keys [4]uint32) WaitingInfo {
	info := WaitingInfo{}
	d.DecomposeFunc(keys, func(rw RegularWait) {
		info.RegularWaits = append(info.RegularWaits, rw)
		info.WaitingTiles.Set(int(rw.WaitingTile.NormalEncoding()))
	})
	if irr, ok := DetectIrregular(keys); ok {
		info.Irregular = &irr
		info.WaitingTiles |= irr.ToWaitingSet()
	}
	return info
}
