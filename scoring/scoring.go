// Package scoring turns a Yaku/dora han total and a Fu count into basic
// points and per-seat point deltas against the fixed han/fu/limit table.
package scoring

import "math"

// AgariKind distinguishes a self-draw win from a discard/call win; several
// Fu and payment rules key off it.
type AgariKind uint8

const (
	Ron AgariKind = iota
	Tsumo
)

// ComputeFu applies the base-Fu table: extraFu (meld Fu, closed/wait-group
// Fu, wait-shape bonus, yakuhai-pair Fu, all precomputed by the caller) plus
// a base that depends on whether extraFu is zero (the pinfu shape), the
// agari kind, and whether the hand is closed, rounded up to the nearest 10.
// Chiitoitsu (seven pairs) is a fixed 25 regardless of everything else.
func ComputeFu(extraFu int, kind AgariKind, closed bool, isSevenPairs bool) int {
	if isSevenPairs {
		return 25
	}
	var base int
	if extraFu == 0 {
		switch {
		case kind == Tsumo && closed:
			base = 20
		default:
			base = 30
		}
	} else {
		switch {
		case kind == Ron && !closed:
			base = 20
		case kind == Ron && closed:
			base = 30
		default: // Tsumo, open or closed
			base = 22
		}
	}
	return ceilTo(extraFu+base, 10)
}

// BasicPoints computes the base-points value (before the dealer/non-dealer
// payment multipliers) from total han, the yakuman multiplier (0 if none),
// and Fu.
func BasicPoints(han, yakumanMultiplier, fu int) int {
	switch {
	case yakumanMultiplier > 0:
		return 8000 * yakumanMultiplier
	case han >= 13:
		return 8000 // kazoe-yakuman
	case han >= 11:
		return 6000 // sanbaiman
	case han >= 8:
		return 4000 // baiman
	case han >= 6:
		return 3000 // haneman
	case han == 5:
		return 2000 // mangan
	default:
		raw := fu * (1 << uint(2+han))
		if raw > 2000 {
			return 2000
		}
		return raw
	}
}

func ceilTo(x, step int) int {
	return int(math.Ceil(float64(x)/float64(step))) * step
}

func ceilTo100(x int) int { return ceilTo(x, 100) }

// Scoring bundles a candidate's fully resolved point value: the han total
// that fed BasicPoints, the Fu from the Fu table (computed for every hand,
// though BasicPoints ignores it at limit and yakuman values), and the
// resulting basic points.
type Scoring struct {
	Han               int
	YakumanMultiplier int
	Fu                int
	BasicPoints       int
}

// DistributePoints splits basicPoints among the four seats for one win,
// following spec's tsumo/ron payment formulas: every inter-player transfer
// is independently rounded up to the next 100. winnerSeat/buttonSeat/
// contributorSeat are seat indices 0..3 (button = current dealer);
// contributorSeat is ignored for Tsumo. pot and riichiSticks*1000 go
// entirely to the winner.
func DistributePoints(basicPoints, honba, pot, riichiSticks, winnerSeat, contributorSeat, buttonSeat int, kind AgariKind) [4]int {
	var deltas [4]int
	isDealerWinner := winnerSeat == buttonSeat

	if kind == Tsumo {
		for seat := 0; seat < 4; seat++ {
			if seat == winnerSeat {
				continue
			}
			var pay int
			switch {
			case isDealerWinner, seat == buttonSeat:
				pay = ceilTo100(2*basicPoints + 100*honba)
			default:
				pay = ceilTo100(basicPoints + 100*honba)
			}
			deltas[seat] -= pay
			deltas[winnerSeat] += pay
		}
	} else {
		k := 4
		if isDealerWinner {
			k = 6
		}
		pay := ceilTo100(k*basicPoints + 300*honba)
		deltas[contributorSeat] -= pay
		deltas[winnerSeat] += pay
	}

	deltas[winnerSeat] += pot + riichiSticks*1000
	return deltas
}
