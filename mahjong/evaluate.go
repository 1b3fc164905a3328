package mahjong

import "sort"

type YakuValue struct {
	Name string
	Fan  int
}

// ScoreContext 单次和了的计分结果, 不含本场与立直棒
type ScoreContext struct {
	Yakus   []YakuValue
	Fu      int
	Fan     int
	Yakuman int
	Score   int64 // 和了者的总得点
	Points  Points
	Title   string
}

func countDora(hand *TileTable, melds []*Meld, indicators []Tile) int {
	n := hand.CountDora(indicators)
	for _, ind := range indicators {
		dora := ind.NextTile()
		for _, m := range melds {
			for _, t := range m.Tiles {
				if t.Normalize() == dora {
					n++
				}
			}
		}
	}
	return n
}

func countRedDora(hand *TileTable, melds []*Meld) int {
	n := hand.RedCountAll()
	for _, m := range melds {
		for _, t := range m.Tiles {
			if t.IsRed5() {
				n++
			}
		}
	}
	return n
}

// EvaluateHand 对和了形取最高得点的解释
// hand为门前牌且含和了牌; 非和了形或无役时返回nil; 不计本场数
func EvaluateHand(hand *TileTable, melds []*Meld, doras, uraDoras []Tile, winningTile Tile,
	isDrawn, isDealer bool, prevalentWind, seatWind Wind, flags YakuFlags) *ScoreContext {
	phs := ParseNormalWin(hand)
	if len(melds) == 0 {
		phs = append(phs, ParseChiitoitsuWin(hand)...)
		phs = append(phs, ParseKokushiWin(hand)...)
	}

	pm := ParseMelds(melds)
	var wins []*YakuContext
	for _, ph := range phs {
		full := make(ParsedHand, 0, len(ph)+len(pm))
		full = append(full, ph...)
		full = append(full, pm...)
		switch len(full) {
		case 0, 5, 7: // 国士, 通常, 七对子
		default:
			continue
		}
		wins = append(wins, NewYakuContext(hand, full, winningTile, prevalentWind, seatWind, isDrawn, flags))
	}
	if len(wins) == 0 {
		return nil
	}

	nDora := countDora(hand, melds, doras)
	nRedDora := countRedDora(hand, melds)
	nUraDora := 0
	if flags.Riichi || flags.Daburii {
		nUraDora = countDora(hand, melds, uraDoras)
	}

	var results []*ScoreContext
	for _, ctx := range wins {
		fu := ctx.CalcFu()
		yakus, yakuman, fan := ctx.CalcYaku()
		if len(yakus) == 0 {
			continue
		}

		values := make([]YakuValue, 0, len(yakus)+3)
		yakumanCount := 0
		for _, y := range yakus {
			f := y.FanClose
			if !yakuman && ctx.isOpen {
				f = y.FanOpen
			}
			values = append(values, YakuValue{y.Name, f})
		}
		if yakuman {
			yakumanCount = fan
		} else {
			fan += nDora + nRedDora + nUraDora
			if nDora != 0 {
				values = append(values, YakuValue{"宝牌", nDora})
			}
			if nRedDora != 0 {
				values = append(values, YakuValue{"红宝牌", nRedDora})
			}
			if nUraDora != 0 {
				values = append(values, YakuValue{"里宝牌", nUraDora})
			}
		}

		points := GetPoints(isDealer, fu, fan, yakumanCount)
		var score int64
		if isDrawn {
			if isDealer {
				score = points.TsumoEach * 3
			} else {
				score = points.TsumoEach*2 + points.TsumoDealer
			}
		} else {
			score = points.Ron
		}
		results = append(results, &ScoreContext{
			Yakus:   values,
			Fu:      fu,
			Fan:     fan,
			Yakuman: yakumanCount,
			Score:   score,
			Points:  points,
			Title:   GetScoreTitle(fu, fan, yakumanCount),
		})
	}
	if len(results) == 0 {
		return nil
	}

	// 同形多解取(役满, 番, 符)最高者
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Yakuman != b.Yakuman {
			return a.Yakuman < b.Yakuman
		}
		if a.Fan != b.Fan {
			return a.Fan < b.Fan
		}
		return a.Fu < b.Fu
	})
	return results[len(results)-1]
}

// EvaluateTenpaiDiscards 打牌听牌信息, 标注各和了牌是否有役及是否振听
func EvaluateTenpaiDiscards(hand *TileTable, melds []*Meld, prevalentWind, seatWind Wind, discards []Tile) []TenpaiInfo {
	var res []TenpaiInfo
	for _, tw := range TenpaiDiscards(hand) {
		info := TenpaiInfo{Discard: tw.Discard}
		h := hand.Clone()
		if err := h.Dec(tw.Discard); err != nil {
			continue
		}
		for _, wt := range tw.Wins {
			h.Inc(wt)
			sc := EvaluateHand(h, melds, nil, nil, wt, false, false, prevalentWind, seatWind, YakuFlags{})
			if err := h.Dec(wt); err != nil {
				continue
			}
			info.Wins = append(info.Wins, WinTileInfo{Tile: wt, HasYaku: sc != nil})
			if !info.IsFuriten {
				for _, d := range discards {
					if d.Normalize() == wt.Normalize() {
						info.IsFuriten = true
					}
				}
			}
		}
		res = append(res, info)
	}
	return res
}
