package agari

import (
	"riichi-go/meld"
	"riichi-go/rules"
	"riichi-go/scoring"
	"riichi-go/tile"
	"riichi-go/yaku"
)

// AgariResult bundles one scored candidate into the full outcome of a win,
// per spec.md §3.7: winner, contributor, the liable seat for a responsibility
// (pao) payment if any, every seat's point delta, the pot/riichi-stick gain,
// a snapshot of the winning hand, and the scored details (regular wait if
// any, Scoring, Yaku-value list) carried in Candidate.
type AgariResult struct {
	Winner      int
	Contributor int
	// LiablePlayer is the seat liable for a pao payment, -1 for none. The
	// core never computes pao itself; callers set this, and only when
	// PaoEligible reports true for the winning candidate.
	LiablePlayer int
	Deltas       [4]int
	PotGained    int

	ClosedHand  tile.Set37
	Melds       []meld.Meld
	WinningTile tile.Tile

	Candidate AgariCandidate
}

// PaoEligible reports whether c's Yaku is one a responsibility-payment rule
// can apply to (Daisangen, Daisuushi, Suukantsu) and rs.PaoEnabled is on.
// Precise pao triggers (who declared the completing call) are out of the
// core's scope; this only gates whether a caller should bother looking.
func PaoEligible(rs rules.Ruleset, c AgariCandidate) bool {
	if !rs.PaoEnabled {
		return false
	}
	for y := range c.Yaku {
		switch y {
		case yaku.Daisangen, yaku.Daisuushi, yaku.Suukantsu:
			return true
		}
	}
	return false
}

// Resolve turns one scored AgariCandidate into a full AgariResult: splits
// BasicPoints across the table via scoring.DistributePoints and attaches the
// hand snapshot. liablePlayer is the caller-resolved pao seat (-1 when
// PaoEligible is false or no pao applies); Resolve does not validate it.
func Resolve(in AgariInput, c AgariCandidate, pot, riichiSticks, liablePlayer int) AgariResult {
	kind := scoring.Ron
	if in.Action.IsTsumo() {
		kind = scoring.Tsumo
	}
	deltas := scoring.DistributePoints(c.Scoring.BasicPoints, in.Honba, pot, riichiSticks,
		in.WinnerSeat, in.ContributorSeat, in.ButtonSeat, kind)
	return AgariResult{
		Winner:       in.WinnerSeat,
		Contributor:  in.ContributorSeat,
		LiablePlayer: liablePlayer,
		Deltas:       deltas,
		PotGained:    pot + riichiSticks*1000,
		ClosedHand:   in.ClosedHand,
		Melds:        in.Melds,
		WinningTile:  in.WinningTile,
		Candidate:    c,
	}
}
