package decomp

import (
	"math/bits"

	"riichi-go/tile"
)

// IrregularKind distinguishes the two irregular waiting-hand shapes.
type IrregularKind uint8

const (
	SevenPairs IrregularKind = iota
	ThirteenOrphans
	ThirteenOrphansAll
)

// IrregularWait is one of the two irregular waiting patterns; SevenPairs and
// ThirteenOrphans carry the single waiting tile, ThirteenOrphansAll (the
// 13-way wait) does not need one since every terminal/honor completes it.
type IrregularWait struct {
	Kind IrregularKind
	Tile tile.Tile // meaningful for SevenPairs and ThirteenOrphans only
}

// ToWaitingSet returns the mask of tiles that complete this wait.
func (w IrregularWait) ToWaitingSet() tile.Mask34 {
	switch w.Kind {
	case SevenPairs, ThirteenOrphans:
		var m tile.Mask34
		m.Set(int(w.Tile.NormalEncoding()))
		return m
	default: // ThirteenOrphansAll
		var m tile.Mask34
		for _, e := range []int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33} {
			m.Set(e)
		}
		return m
	}
}

// DetectIrregular checks the same four packed keys the regular Decomposer
// consumes for the two irregular waiting-hand shapes. The patterns are
// mutually exclusive; SevenPairs is checked first so it wins in any
// pathological input that could match both.
func DetectIrregular(keys [4]uint32) (IrregularWait, bool) {
	if w, ok := detectSevenPairs(keys); ok {
		return w, true
	}
	return detectThirteenOrphans(keys)
}

// oneTwo is a bit hack over one octal-packed suit key: it returns the bitmask
// and count of isolated tiles (count==1) and of pairs (count==2). If any
// slot holds 3 or more, both counts come back absurdly large so that callers
// relying on "num_twos/num_ones must match an exact total" naturally reject
// the key.
func oneTwo(x uint32) (onesMask, numOnes, twosMask, numTwos uint32) {
	over := (x + 0o111111111) & 0o444444444
	if over > 0 {
		return 0, 20, 0, 20
	}
	twos := (x >> 1) & 0o111111111
	numTwos = uint32(popcount32(twos))
	ones := x - twos*2
	numOnes = uint32(popcount32(ones))
	return ones, numOnes, twos, numTwos
}

func popcount32(x uint32) int { return bits.OnesCount32(x) }

func detectSevenPairs(keys [4]uint32) (IrregularWait, bool) {
	var numOnes, numTwos uint32
	var onesMask [4]uint32
	for i, k := range keys {
		o, no, _, nt := oneTwo(k)
		onesMask[i] = o
		numOnes += no
		numTwos += nt
	}
	if numTwos != 6 || numOnes != 1 {
		return IrregularWait{}, false
	}
	for i := 0; i < 4; i++ {
		if onesMask[i] == 0 {
			continue
		}
		pos := bits.TrailingZeros32(onesMask[i]) / 3
		t, err := tile.FromNumSuit(pos+1, i)
		if err != nil {
			return IrregularWait{}, false
		}
		return IrregularWait{Kind: SevenPairs, Tile: t}, true
	}
	return IrregularWait{}, false
}

// thirteenOrphanMask covers the 13 terminal/honor positions within each
// suit's 27-bit (or 21-bit honor) key: 1 and 9 for numeral suits, all 7
// honors.
var thirteenOrphanMask = [4]uint32{
	0o700000007,
	0o700000007,
	0o700000007,
	0o7777777,
}

func detectThirteenOrphans(keys [4]uint32) (IrregularWait, bool) {
	for i, k := range keys {
		if k & ^thirteenOrphanMask[i] != 0 {
			return IrregularWait{}, false
		}
	}
	var numOnes, numTwos uint32
	var onesMask, twosMask [4]uint32
	for i, k := range keys {
		o, no, tw, nt := oneTwo(k)
		onesMask[i], twosMask[i] = o, tw
		numOnes += no
		numTwos += nt
	}
	switch {
	case numOnes == 13 && numTwos == 0:
		return IrregularWait{Kind: ThirteenOrphansAll}, true
	case numOnes == 11 && numTwos == 1:
		for i := 0; i < 4; i++ {
			missing := (thirteenOrphanMask[i] & 0o111111111) &^ (onesMask[i] | twosMask[i])
			if missing == 0 {
				continue
			}
			pos := bits.TrailingZeros32(missing) / 3
			t, err := tile.FromNumSuit(pos+1, i)
			if err != nil {
				return IrregularWait{}, false
			}
			return IrregularWait{Kind: ThirteenOrphans, Tile: t}, true
		}
		return IrregularWait{}, false
	default:
		return IrregularWait{}, false
	}
}
