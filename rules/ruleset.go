// Package rules holds the small set of table-rule toggles the core needs as
// input: which Yaku a table allows beyond the standard set, which it
// disables outright, and a handful of scoring/administrative switches. It
// mirrors the teacher's preference for a plain struct of defaulted fields
// (RiichiOption, Payment) over a reflection-driven config loader.
package rules

import "riichi-go/yaku"

// Ruleset is a plain value; construct one with NewDefault and override
// fields directly.
type Ruleset struct {
	// YakuExtra names non-standard Yaku this table recognizes (e.g. Renhou).
	YakuExtra map[yaku.Yaku]struct{}
	// YakuBlock names Yaku this table disables outright regardless of
	// standard status (e.g. a house rule banning Suuankou Tanki as a
	// separate yaku from plain Suuankou).
	YakuBlock map[yaku.Yaku]struct{}

	// OpenTanyaoAllowed permits Tanyaochuu on an open hand.
	OpenTanyaoAllowed bool
	// DoubleYakumanAllowed permits Kokushi13/SuuankouTanki/Junseichuurenpoutou/
	// Daisuushi to count as a double yakuman rather than being capped at -1.
	DoubleYakumanAllowed bool
	// KiriageMangan rounds a 4-han-30-fu or 3-han-60-fu hand up to a full
	// mangan rather than scoring its exact (slightly lower) basic points.
	KiriageMangan bool
	// KuitanAllowed carries the conventional name for open tanyao. agari.Analyze
	// does not read it; open Tanyaochuu is decided by OpenTanyaoAllowed alone.
	KuitanAllowed bool
	// ChankanOnConcealedKokushi allows Chankan off a player's own Ankan
	// declaration when the robbing hand is Thirteen Orphans.
	ChankanOnConcealedKokushi bool
	// PaoEnabled turns on liability-payment tracking for Daisangen,
	// Daisuushi, and Suukantsu (the core only exposes the field the caller
	// sets; it never computes pao itself, see spec's Open Questions).
	PaoEnabled bool

	// MinimumQualifyingHan is the fewest han (before dora) a hand must carry
	// to qualify for Agari at all, independent of Yaku value (almost always 1).
	MinimumQualifyingHan int
}

// NewDefault returns the standard ruleset: open tanyao allowed, no double
// yakuman, no kiriage mangan, pao tracked but not computed by the core.
func NewDefault() Ruleset {
	return Ruleset{
		YakuExtra:                 map[yaku.Yaku]struct{}{},
		YakuBlock:                 map[yaku.Yaku]struct{}{},
		OpenTanyaoAllowed:         true,
		KuitanAllowed:             true,
		DoubleYakumanAllowed:      false,
		KiriageMangan:             false,
		ChankanOnConcealedKokushi: true,
		PaoEnabled:                true,
		MinimumQualifyingHan:      1,
	}
}

// NewBuilder constructs a yaku.Builder pre-seeded from this ruleset's
// allowed-extra and blocked sets.
func (r Ruleset) NewBuilder() *yaku.Builder {
	return yaku.NewBuilder(r.YakuExtra, r.YakuBlock)
}
