// Package agari takes a winning hand's full context (closed tiles, melds,
// how the winning tile arrived, dora, riichi state) and produces every
// scored interpretation of it: one AgariCandidate per regular or irregular
// decomposition, each carrying its own Yaku set, Fu, and basic points.
package agari

import (
	"errors"
	"fmt"

	"riichi-go/meld"
	"riichi-go/tile"
)

// ErrInconsistentHand reports a structurally invalid AgariInput: a closed
// hand whose tile count is not 3*(4-len(Melds))+1, or a packed key that
// overflows. A winning tile that completes nothing is not an error.
var ErrInconsistentHand = errors.New("agari: inconsistent hand")

// Action names how the winning tile reached the winner.
type Action uint8

const (
	ActionDiscard      Action = iota // Ron off an ordinary discard
	ActionSelfDraw                   // Tsumo (covers haitei and rinshan draws)
	ActionAddedKan                   // Chankan: Ron robbing another player's Kakan
	ActionConcealedKan               // Chankan: Ron robbing a concealed Ankan (kokushi exception)
)

// IsTsumo reports whether this action is a self-draw.
func (a Action) IsTsumo() bool { return a == ActionSelfDraw }

// IsChankan reports whether this action is a robbing-a-kan Ron.
func (a Action) IsChankan() bool { return a == ActionAddedKan || a == ActionConcealedKan }

// RiichiState carries the three riichi-related flags a hand's Yaku
// detection needs; the engine (out of scope here) is responsible for
// resolving interruptions to Ippatsu's window.
type RiichiState struct {
	Active       bool
	Double       bool
	IppatsuValid bool
}

// AgariInput bundles everything agari.Analyze needs for one winning hand,
// per spec.md §3.7.
type AgariInput struct {
	// RoundWind is the prevailing wind tile (27 = East round, etc).
	RoundWind tile.Tile
	// SeatWind is the winner's own seat wind tile.
	SeatWind tile.Tile
	Honba    int
	// ButtonSeat/WinnerSeat/ContributorSeat are seat indices 0..3.
	// ContributorSeat equals WinnerSeat for a self-draw.
	ButtonSeat      int
	WinnerSeat      int
	ContributorSeat int

	Action Action
	// RinshanDraw marks a self-draw taken from the dead wall after a kan.
	RinshanDraw bool
	// LastTile marks the wall's final tile (haitei if Tsumo, houtei if not).
	LastTile bool
	// FirstChance marks a win still within the first uninterrupted
	// go-around (for Tenhou/Chiihou/Renhou eligibility).
	FirstChance bool

	// ClosedHand is the winner's concealed tiles BEFORE the winning tile
	// arrives: for a hand with melds this is only the unmelded portion
	// (13 - 3*len(Melds) tiles for a standard hand).
	ClosedHand tile.Set37
	Melds      []meld.Meld
	WinningTile tile.Tile

	DoraIndicators    []tile.Tile
	UraDoraIndicators []tile.Tile // only meaningful when Riichi.Active

	Riichi RiichiState
}

// IsDealer reports whether the winner is sitting in the button seat.
func (in AgariInput) IsDealer() bool { return in.WinnerSeat == in.ButtonSeat }

// IsClosed reports whether the hand has no open calls (Ankan does not open
// a hand).
func (in AgariInput) IsClosed() bool {
	for _, m := range in.Melds {
		if m.Kind != meld.KindAnkan {
			return false
		}
	}
	return true
}

// validate checks the structural invariants AgariInput must satisfy before
// analysis: ClosedHand (the pre-win concealed tiles) must be exactly
// 3*(4-len(Melds))+1 tiles — a tenpai-shaped hand waiting on one more tile —
// and no packed key may overflow.
func (in AgariInput) validate() error {
	closedExpected := 3*(4-len(in.Melds)) + 1
	if in.ClosedHand.Total() != closedExpected {
		return fmt.Errorf("%w: closed hand has %d tiles, want %d for %d melds",
			ErrInconsistentHand, in.ClosedHand.Total(), closedExpected, len(in.Melds))
	}
	keys := in.ClosedHand.ToSet34().Packed34()
	for _, k := range keys {
		if tile.KeyIsOverflow(k) {
			return fmt.Errorf("%w: overflowing packed key %#o", ErrInconsistentHand, k)
		}
	}
	return nil
}
