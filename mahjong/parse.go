package mahjong

type SetType int32

const (
	SetPair    SetType = iota // 雀头
	SetShuntsu                // 顺子
	SetKoutsu                 // 暗刻
	SetChow                   // 吃
	SetPon                    // 碰
	SetMinkan                 // 明杠(含加杠)
	SetAnkan                  // 暗杠
)

// Set 顺子与吃记首张牌, 红五并入五
type Set struct {
	Type SetType
	Tile Tile
}

type ParsedHand []Set

// ParseMelds 副露转换为分解单元
func ParseMelds(melds []*Meld) ParsedHand {
	res := make(ParsedHand, 0, len(melds))
	for _, m := range melds {
		t := m.Tiles[0].Normalize()
		switch m.Type {
		case MeldChow:
			res = append(res, Set{SetChow, t})
		case MeldPon:
			res = append(res, Set{SetPon, t})
		case MeldMinkan, MeldKakan:
			res = append(res, Set{SetMinkan, t})
		case MeldAnkan:
			res = append(res, Set{SetAnkan, t})
		}
	}
	return res
}

// parseRowIntoSets 把一行牌分解为刻子与顺子
// 三连刻存在刻子x3与顺子x3两种分法; 行必须预先确认可分解
func parseRowIntoSets(tr [10]int, color EColor) []ParsedHand {
	ph := make(ParsedHand, 0, 4)
	n0, n1 := tr[1], tr[2]
	for i := 1; i <= 7; i++ {
		n2 := tr[i+2]
		if n0 >= 3 {
			ph = append(ph, Set{SetKoutsu, MakeTile(color, i)})
		}
		n := n0 % 3
		for range n {
			ph = append(ph, Set{SetShuntsu, MakeTile(color, i)})
		}
		n0 = n1 - n
		n1 = n2 - n
	}
	if n0 == 3 {
		ph = append(ph, Set{SetKoutsu, MakeTile(color, 8)})
	}
	if n1 == 3 {
		ph = append(ph, Set{SetKoutsu, MakeTile(color, 9)})
	}

	if color == ColorHonor || len(ph) < 3 {
		return []ParsedHand{ph}
	}

	// 三连刻检查
	i, n := 0, 0
	for _, s := range ph {
		if s.Type != SetKoutsu {
			continue
		}
		if i+n == s.Tile.Point() {
			n++
			if n == 3 {
				break
			}
		} else {
			i = s.Tile.Point()
			n = 1
		}
	}
	if n != 3 {
		return []ParsedHand{ph}
	}

	ph2 := make(ParsedHand, 0, len(ph))
	for _, s := range ph {
		if s.Type == SetKoutsu && i <= s.Tile.Point() && s.Tile.Point() < i+3 {
			continue
		}
		ph2 = append(ph2, s)
	}
	run := Set{SetShuntsu, MakeTile(color, i)}
	ph2 = append(ph2, run, run, run)
	return []ParsedHand{ph, ph2}
}

// ParseNormalWin 通常形和了分解, 未和了返回空
func ParseNormalWin(hand *TileTable) []ParsedHand {
	pairs := calcPossiblePairs(hand)
	if len(pairs) == 0 {
		return nil
	}

	phsList := make([][]ParsedHand, 0, ColorEnd)

	// 含雀头的行
	pairColor := pairs[0].Color()
	tr := hand[pairColor]
	tr[0] = 0
	phs := make([]ParsedHand, 0, 2)
	for _, pair := range pairs {
		tr[pair.Point()] -= 2
		for _, ph := range parseRowIntoSets(tr, pairColor) {
			phs = append(phs, append(ph, Set{SetPair, pair}))
		}
		tr[pair.Point()] += 2
	}
	phsList = append(phsList, phs)

	// 其余行
	for c := ColorBegin; c < ColorEnd; c++ {
		if c == pairColor {
			continue
		}
		row := hand[c]
		row[0] = 0
		phsList = append(phsList, parseRowIntoSets(row, c))
	}

	// 各行分法的笛卡尔积
	res := []ParsedHand{{}}
	for _, phs := range phsList {
		next := make([]ParsedHand, 0, len(res)*len(phs))
		for _, base := range res {
			for _, ph := range phs {
				merged := make(ParsedHand, 0, len(base)+len(ph))
				merged = append(merged, base...)
				merged = append(merged, ph...)
				next = append(next, merged)
			}
		}
		res = next
	}
	return res
}

// ParseChiitoitsuWin 七对子和了分解, 未和了返回空
func ParseChiitoitsuWin(hand *TileTable) []ParsedHand {
	res := make(ParsedHand, 0, 7)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			switch hand[c][p] {
			case 0:
			case 2:
				res = append(res, Set{SetPair, MakeTile(c, p)})
			default:
				return nil
			}
		}
	}
	if len(res) != 7 {
		return nil
	}
	return []ParsedHand{res}
}

// ParseKokushiWin 国士无双以空分解表示
func ParseKokushiWin(hand *TileTable) []ParsedHand {
	if IsKokushiWin(hand) {
		return []ParsedHand{{}}
	}
	return nil
}
