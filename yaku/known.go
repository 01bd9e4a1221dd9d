// Package yaku identifies which named scoring patterns (役) a completed hand
// satisfies, resolves conflicts between them via a small block-list engine,
// and reports each yaku's han value (negative for yakuman).
package yaku

// Yaku enumerates every scoring pattern this package can detect. Values are
// stable identifiers, not bit positions; iota order matches the upstream
// catalogue for easy cross-reference, not priority.
type Yaku uint16

const (
	Menzenchintsumohou Yaku = iota
	Riichi
	Ippatsu
	Chankan
	Rinshankaihou
	Haiteimouyue
	Houteiraoyui
	Pinfu
	Tanyaochuu
	Iipeikou
	JikazehaiAny
	JikazehaiE
	JikazehaiS
	JikazehaiW
	JikazehaiN
	BakazehaiAny
	BakazehaiE
	BakazehaiS
	BakazehaiW
	BakazehaiN
	SangenpaiHaku
	SangenpaiHatsu
	SangenpaiChun
	DoubleRiichi
	Chiitoitsu
	Honchantaiyaochuu
	Ikkitsuukan
	Sanshokudoujun
	Sanshokudoukou
	Sankantsu
	Toitoihou
	Sanankou
	Shousangen
	Honroutou
	Ryanpeikou
	Junchantaiyaochuu
	Honniisou
	Chinniisou
	Tenhou
	Chiihou
	Renhou
	Daisangen
	Suuankou
	SuuankouTanki
	Tsuuiisou
	Ryuuiisou
	Chinroutou
	Chuurenpoutou
	Junseichuurenpoutou
	Kokushi
	Kokushi13
	Daisuushi
	Shousuushi
	Suukantsu
)

var names = map[Yaku]string{
	Menzenchintsumohou: "Menzenchin Tsumohou",
	Riichi:              "Riichi",
	Ippatsu:             "Ippatsu",
	Chankan:             "Chankan",
	Rinshankaihou:       "Rinshan Kaihou",
	Haiteimouyue:        "Haitei Mouyue",
	Houteiraoyui:        "Houtei Raoyui",
	Pinfu:               "Pinfu",
	Tanyaochuu:          "Tanyaochuu",
	Iipeikou:            "Iipeikou",
	JikazehaiAny:        "Jikazehai",
	JikazehaiE:          "Jikazehai (East)",
	JikazehaiS:          "Jikazehai (South)",
	JikazehaiW:          "Jikazehai (West)",
	JikazehaiN:          "Jikazehai (North)",
	BakazehaiAny:        "Bakazehai",
	BakazehaiE:          "Bakazehai (East)",
	BakazehaiS:          "Bakazehai (South)",
	BakazehaiW:          "Bakazehai (West)",
	BakazehaiN:          "Bakazehai (North)",
	SangenpaiHaku:       "Sangenpai (Haku)",
	SangenpaiHatsu:      "Sangenpai (Hatsu)",
	SangenpaiChun:       "Sangenpai (Chun)",
	DoubleRiichi:        "Double Riichi",
	Chiitoitsu:          "Chiitoitsu",
	Honchantaiyaochuu:   "Honchantaiyaochuu",
	Ikkitsuukan:         "Ikkitsuukan",
	Sanshokudoujun:      "Sanshoku Doujun",
	Sanshokudoukou:      "Sanshoku Doukou",
	Sankantsu:           "Sankantsu",
	Toitoihou:           "Toitoihou",
	Sanankou:            "Sanankou",
	Shousangen:          "Shousangen",
	Honroutou:           "Honroutou",
	Ryanpeikou:          "Ryanpeikou",
	Junchantaiyaochuu:   "Junchantaiyaochuu",
	Honniisou:           "Honniisou",
	Chinniisou:          "Chinniisou",
	Tenhou:              "Tenhou",
	Chiihou:             "Chiihou",
	Renhou:              "Renhou",
	Daisangen:           "Daisangen",
	Suuankou:            "Suuankou",
	SuuankouTanki:       "Suuankou Tanki",
	Tsuuiisou:           "Tsuuiisou",
	Ryuuiisou:           "Ryuuiisou",
	Chinroutou:          "Chinroutou",
	Chuurenpoutou:       "Chuurenpoutou",
	Junseichuurenpoutou: "Junsei Chuurenpoutou",
	Kokushi:             "Kokushi Musou",
	Kokushi13:           "Kokushi Musou (13-wait)",
	Daisuushi:           "Daisuushi",
	Shousuushi:          "Shoushuushi",
	Suukantsu:           "Suukantsu",
}

func (y Yaku) String() string {
	if n, ok := names[y]; ok {
		return n
	}
	return "Unknown Yaku"
}

// standardYaku is every yaku a default ruleset recognizes. Renhou is the one
// upstream exception: its wiki entry marks it non-standard, so it only
// counts when a Ruleset explicitly opts in via YakuExtra.
var standardYaku = func() map[Yaku]struct{} {
	m := make(map[Yaku]struct{}, Suukantsu+1)
	for y := Menzenchintsumohou; y <= Suukantsu; y++ {
		if y != Renhou {
			m[y] = struct{}{}
		}
	}
	return m
}()

// IsStandard reports whether y is recognized under a default ruleset.
func IsStandard(y Yaku) bool {
	_, ok := standardYaku[y]
	return ok
}
