package yaku

// blockedYaku lists, for a handful of Yaku pairs, which lower-priority Yaku
// must be suppressed when the higher-priority one is awarded. These are the
// "non-trivial" conflicts: both members' conditions can be true of the same
// hand, and they are not simply variants of one another (those cases — e.g.
// DoubleRiichi over Riichi, Junchantaiyaochuu over Honchantaiyaochuu,
// SuuankouTanki over Suuankou — are handled by detectors only ever awarding
// the stronger variant, never both).
var blockedYaku = map[Yaku][]Yaku{
	Chinroutou: {Junchantaiyaochuu, Honchantaiyaochuu},
	Honroutou:  {Junchantaiyaochuu, Honchantaiyaochuu},

	// A kan draw from the dead wall is never also "last tile in the game".
	Rinshankaihou: {Haiteimouyue, Houteiraoyui},
	Chankan:       {Haiteimouyue, Houteiraoyui},
}

// GetBlockedYaku returns every Yaku that must be suppressed once yaku is
// awarded.
func GetBlockedYaku(yaku Yaku) []Yaku {
	return blockedYaku[yaku]
}
