// Package decomp builds the precomputed suited-histogram decomposition
// tables (C-table, W-table) and the regular/irregular waiting-hand
// decomposer that consumes them.
package decomp

import (
	"math/bits"

	"riichi-go/tile"
)

// GroupKind distinguishes a triplet from a sequence within one suit's
// grouping.
type GroupKind uint8

const (
	Koutsu GroupKind = iota
	Shuntsu
)

// Group is one group within a suited C-table grouping: a koutsu at a given
// position (0..=8) or a shuntsu starting at a given position (0..=6).
type Group struct {
	Kind GroupKind
	Pos  uint8
}

func (g Group) contribution() uint32 {
	if g.Kind == Koutsu {
		return 3 << (uint(g.Pos) * 3)
	}
	return 0o111 << (uint(g.Pos) * 3)
}

// Grouping is one complete way to partition a suited key's tiles into groups
// (0 to 4 of them); the key may additionally carry a pair, whose position is
// not stored here but recovered from the key (see Grouping.Pair).
type Grouping struct {
	Groups []Group
}

// HasShuntsu reports whether any group in the grouping is a sequence; used to
// reject sequence groupings for the honor suit, which cannot form sequences.
func (g Grouping) HasShuntsu() bool {
	for _, grp := range g.Groups {
		if grp.Kind == Shuntsu {
			return true
		}
	}
	return false
}

// Pair recovers the pair's position from key, if the key's tile count implies
// one is present (count mod 3 == 2). The pair position is whatever 3-bit
// slot remains after subtracting every group's contribution from the key.
func (g Grouping) Pair(key uint32) (uint8, bool) {
	if tile.KeySum(key)%3 != 2 {
		return 0, false
	}
	var contrib uint32
	for _, grp := range g.Groups {
		contrib += grp.contribution()
	}
	remainder := key - contrib
	if remainder == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros32(remainder) / 3), true
}

// Table maps a suited octal-packed key to every complete grouping of that
// key's tiles. The same map type serves all four suits; callers filter out
// shuntsu-bearing groupings themselves when working with the honor suit.
type Table map[uint32][]Grouping

// NumKeys is the invariant number of keys a correctly generated C-table has.
const NumKeys = 21743

// BuildCTable generates the complete C-table by depth-first enumeration: seed
// with the empty key and every pair-only key, then recursively add koutsu (at
// non-decreasing positions) and shuntsu (at non-decreasing positions 0..=6)
// groups, up to four per key, skipping any addition that overflows a 3-bit
// slot.
func BuildCTable() Table {
	t := make(Table, NumKeys)
	insert(t, 0, nil)
	dfsKoutsu(t, 0, nil, 0, 0)
	for j := 0; j <= 8; j++ {
		key := uint32(2) << uint(j*3)
		insert(t, key, nil)
		dfsKoutsu(t, key, nil, 0, 0)
	}
	return t
}

func insert(t Table, key uint32, groups []Group) {
	t[key] = append(t[key], Grouping{Groups: groups})
}

func appendGroup(groups []Group, g Group) []Group {
	ng := make([]Group, len(groups)+1)
	copy(ng, groups)
	ng[len(groups)] = g
	return ng
}

// dfsKoutsu extends key with koutsu groups from minK and shuntsu groups from
// minS; once a shuntsu is added, recursion continues only through dfsShuntsu
// (canonicalizing group order: all koutsu first, then all shuntsu, each
// non-decreasing, so no multiset of groups is generated more than once).
func dfsKoutsu(t Table, key uint32, groups []Group, minK, minS int) {
	if len(groups) >= 4 {
		return
	}
	for pos := minK; pos <= 8; pos++ {
		nk := key + (uint32(3) << uint(pos*3))
		if tile.KeyIsOverflow(nk) {
			continue
		}
		ng := appendGroup(groups, Group{Koutsu, uint8(pos)})
		insert(t, nk, ng)
		dfsKoutsu(t, nk, ng, pos, minS)
	}
	for pos := minS; pos <= 6; pos++ {
		nk := key + (uint32(0o111) << uint(pos*3))
		if tile.KeyIsOverflow(nk) {
			continue
		}
		ng := appendGroup(groups, Group{Shuntsu, uint8(pos)})
		insert(t, nk, ng)
		dfsShuntsu(t, nk, ng, pos)
	}
}

func dfsShuntsu(t Table, key uint32, groups []Group, minS int) {
	if len(groups) >= 4 {
		return
	}
	for pos := minS; pos <= 6; pos++ {
		nk := key + (uint32(0o111) << uint(pos*3))
		if tile.KeyIsOverflow(nk) {
			continue
		}
		ng := appendGroup(groups, Group{Shuntsu, uint8(pos)})
		insert(t, nk, ng)
		dfsShuntsu(t, nk, ng, pos)
	}
}
