package mahjong

// 和了与听牌判定, 基于每行计数的模3剪枝

// calcModsCnts 每个花色行的张数模3, 以及各余数的行数统计
func calcModsCnts(hand *TileTable) (mods [ColorEnd]int, cnts [3]int) {
	for c := ColorBegin; c < ColorEnd; c++ {
		sum := 0
		for p := 1; p < 10; p++ {
			sum += hand[c][p]
		}
		mods[c] = sum % 3
	}
	for c := ColorBegin; c < ColorEnd; c++ {
		cnts[mods[c]]++
	}
	return
}

// isSets 行是否可全部分解为面子
func isSets(tr [10]int, color EColor) bool {
	n0, n1 := tr[1], tr[2]
	for i := 1; i <= 7; i++ {
		n2 := tr[i+2]
		n := n0 % 3
		if (color == ColorHonor && n != 0) || n1 < n || n2 < n {
			return false
		}
		n0 = n1 - n
		n1 = n2 - n
	}
	return n0%3 == 0 && n1%3 == 0
}

func isSetsPair(tr [10]int, color EColor) bool {
	return len(calcPairCandidate(tr, color)) > 0
}

// calcPairCandidateIndex 面子点数和模3为0, 由此缩小雀头候选
func calcPairCandidateIndex(tr [10]int) []int {
	sum := 0
	for i := 1; i < 10; i++ {
		sum += i * tr[i]
	}
	mod3 := sum % 3
	return []int{3 - mod3, 6 - mod3, 9 - mod3}
}

// calcPairCandidate 行为雀头+面子时的雀头列表, 3113等形有两个候选
func calcPairCandidate(tr [10]int, color EColor) []Tile {
	res := make([]Tile, 0, 1)
	for _, p := range calcPairCandidateIndex(tr) {
		if p > PointCountByColor[color] || tr[p] < 2 {
			continue
		}
		tr[p] -= 2
		if isSets(tr, color) {
			res = append(res, MakeTile(color, p))
		}
		tr[p] += 2
	}
	return res
}

// calcPossiblePairs 和了形的雀头候选, 未和了返回空
func calcPossiblePairs(hand *TileTable) []Tile {
	mods, cnts := calcModsCnts(hand)
	if cnts[1] != 0 || cnts[2] != 1 {
		return nil
	}

	var res []Tile
	for c := ColorBegin; c < ColorEnd; c++ {
		row := hand[c]
		row[0] = 0
		if mods[c] == 2 {
			pairs := calcPairCandidate(row, c)
			if len(pairs) == 0 {
				return nil
			}
			res = pairs
		} else if !isSets(row, c) {
			return nil
		}
	}
	return res
}

func IsNormalWin(hand *TileTable) bool {
	return len(calcPossiblePairs(hand)) > 0
}

func IsChiitoitsuWin(hand *TileTable) bool {
	return len(ParseChiitoitsuWin(hand)) > 0
}

func IsKokushiWin(hand *TileTable) bool {
	count := 0
	for c := ColorCharacter; c <= ColorBamboo; c++ {
		if hand[c][1] == 0 || hand[c][9] == 0 {
			return false
		}
		for p := 2; p < 9; p++ {
			if hand[c][p] != 0 {
				return false
			}
		}
		count += hand[c][1] + hand[c][9]
	}
	for p := 1; p <= 7; p++ {
		if hand[ColorHonor][p] == 0 {
			return false
		}
		count += hand[ColorHonor][p]
	}
	return count == 14
}

// IsWin 任一和了形
func IsWin(hand *TileTable) bool {
	return IsNormalWin(hand) || IsChiitoitsuWin(hand) || IsKokushiWin(hand)
}

// WinningTilesNormal 13张手牌的通常形和了牌, 非听牌返回空
func WinningTilesNormal(hand *TileTable) []Tile {
	mods, cnts := calcModsCnts(hand)
	res := make([]Tile, 0, 4)

	if cnts[1] == 0 && cnts[2] == 2 {
		// 两个花色行都可能含雀头
		var mod2 []EColor
		for c := ColorBegin; c < ColorEnd; c++ {
			if mods[c] == 2 {
				mod2 = append(mod2, c)
			} else if !isSets(noRed(hand[c]), c) {
				return nil
			}
		}
		for i := 0; i < 2; i++ {
			c0, c1 := mod2[i], mod2[1-i]
			if !isSetsPair(noRed(hand[c0]), c0) {
				continue
			}
			tr := noRed(hand[c1])
			for p := 1; p <= PointCountByColor[c1]; p++ {
				tr[p]++
				if isSets(tr, c1) {
					res = append(res, MakeTile(c1, p))
				}
				tr[p]--
			}
		}
		return res
	}

	if cnts[1] == 1 && cnts[2] == 0 {
		// 雀头只在单一花色行
		for c := ColorBegin; c < ColorEnd; c++ {
			if mods[c] != 1 {
				if !isSets(noRed(hand[c]), c) {
					return nil
				}
				continue
			}
			tr := noRed(hand[c])
			for p := 1; p <= PointCountByColor[c]; p++ {
				tr[p]++
				if isSetsPair(tr, c) {
					res = append(res, MakeTile(c, p))
				}
				tr[p]--
			}
		}
		return res
	}
	return nil
}

// WinningTilesChiitoitsu 七对子和了牌
func WinningTilesChiitoitsu(hand *TileTable) []Tile {
	var res []Tile
	nPair := 0
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			switch hand[c][p] {
			case 1:
				if len(res) == 0 {
					res = append(res, MakeTile(c, p))
				}
			case 2:
				nPair++
			case 3, 4:
				return nil
			}
		}
	}
	if nPair != 6 {
		return nil
	}
	return res
}

// WinningTilesKokushi 国士无双和了牌, 十三面听返回全部幺九
func WinningTilesKokushi(hand *TileTable) []Tile {
	missing := TileNull
	nEnd := 0
	check := func(c EColor, p int) bool {
		n := hand[c][p]
		nEnd += n
		switch n {
		case 0:
			if missing != TileNull {
				return true
			}
			missing = MakeTile(c, p)
			return false
		case 1, 2:
			return false
		default:
			return true
		}
	}

	for c := ColorCharacter; c <= ColorBamboo; c++ {
		if check(c, 1) || check(c, 9) {
			return nil
		}
	}
	for p := 1; p <= 7; p++ {
		if check(ColorHonor, p) {
			return nil
		}
	}
	if nEnd != 13 {
		return nil
	}

	if missing != TileNull {
		return []Tile{missing}
	}
	res := make([]Tile, 0, 13)
	for c := ColorCharacter; c <= ColorBamboo; c++ {
		res = append(res, MakeTile(c, 1), MakeTile(c, 9))
	}
	for p := 1; p <= 7; p++ {
		res = append(res, MakeTile(ColorHonor, p))
	}
	return res
}

// WinningTiles 三种和了形的合并和了牌, 去重
func WinningTiles(hand *TileTable) []Tile {
	seen := make(map[Tile]struct{}, 13)
	var res []Tile
	add := func(tiles []Tile) {
		for _, t := range tiles {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				res = append(res, t)
			}
		}
	}
	add(WinningTilesNormal(hand))
	add(WinningTilesChiitoitsu(hand))
	add(WinningTilesKokushi(hand))
	return res
}

// TenpaiInfo 打出某张后的听牌信息
type TenpaiInfo struct {
	Discard   Tile
	Wins      []WinTileInfo
	IsFuriten bool
}

type WinTileInfo struct {
	Tile    Tile
	HasYaku bool
}

// TenpaiDiscardsNormal 14张手牌中打出后保持通常形听牌的牌
func TenpaiDiscardsNormal(hand *TileTable) []TileWins {
	var res []TileWins
	h := hand.Clone()
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			if h[c][p] == 0 {
				continue
			}
			h[c][p]--
			if wins := WinningTilesNormal(h); len(wins) > 0 {
				res = append(res, TileWins{MakeTile(c, p), wins})
			}
			h[c][p]++
		}
	}
	return discardsWithRed5(hand, res)
}

type TileWins struct {
	Discard Tile
	Wins    []Tile
}

// TenpaiDiscardsChiitoitsu 打出后保持七对子听牌的牌
func TenpaiDiscardsChiitoitsu(hand *TileTable) []TileWins {
	var v1, v2, v3 []Tile
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			switch hand[c][p] {
			case 0:
			case 1:
				if len(v1) > 1 {
					return nil
				}
				v1 = append(v1, MakeTile(c, p))
			case 2:
				v2 = append(v2, MakeTile(c, p))
			case 3:
				if len(v3) > 0 {
					return nil
				}
				v3 = append(v3, MakeTile(c, p))
			default:
				return nil
			}
		}
	}

	var res []TileWins
	switch len(v2) {
	case 5:
		if len(v1) == 1 && len(v3) == 1 {
			res = []TileWins{{v3[0], []Tile{v1[0]}}}
		}
	case 6:
		t0, t1 := v1[0], v1[1]
		res = []TileWins{{t0, []Tile{t1}}, {t1, []Tile{t0}}}
	case 7:
		// 和了形上选择不和
		for _, t := range v2 {
			res = append(res, TileWins{t, []Tile{t}})
		}
	}
	return discardsWithRed5(hand, res)
}

// TenpaiDiscardsKokushi 打出后保持国士无双听牌的牌
func TenpaiDiscardsKokushi(hand *TileTable) []TileWins {
	nEnd := 0
	for c := ColorCharacter; c <= ColorBamboo; c++ {
		if hand[c][1] > 0 {
			nEnd++
		}
		if hand[c][9] > 0 {
			nEnd++
		}
	}
	for p := 1; p <= 7; p++ {
		if hand[ColorHonor][p] > 0 {
			nEnd++
		}
	}
	if nEnd < 12 {
		return nil
	}

	var res []TileWins
	h := hand.Clone()
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			if h[c][p] == 0 {
				continue
			}
			h[c][p]--
			if wins := WinningTilesKokushi(h); len(wins) > 0 {
				res = append(res, TileWins{MakeTile(c, p), wins})
			}
			h[c][p]++
		}
	}
	return discardsWithRed5(hand, res)
}

// TenpaiDiscards 三种和了形的听牌打法合并, 同一打牌的和了牌并集
func TenpaiDiscards(hand *TileTable) []TileWins {
	merged := make(map[Tile]map[Tile]struct{})
	order := make([]Tile, 0, 14)
	add := func(list []TileWins) {
		for _, tw := range list {
			wins, ok := merged[tw.Discard]
			if !ok {
				wins = make(map[Tile]struct{})
				merged[tw.Discard] = wins
				order = append(order, tw.Discard)
			}
			for _, w := range tw.Wins {
				wins[w] = struct{}{}
			}
		}
	}
	add(TenpaiDiscardsNormal(hand))
	add(TenpaiDiscardsChiitoitsu(hand))
	add(TenpaiDiscardsKokushi(hand))

	res := make([]TileWins, 0, len(order))
	for _, d := range order {
		wins := make([]Tile, 0, len(merged[d]))
		for c := ColorBegin; c < ColorEnd; c++ {
			for p := 1; p <= PointCountByColor[c]; p++ {
				t := MakeTile(c, p)
				if _, ok := merged[d][t]; ok {
					wins = append(wins, t)
				}
			}
		}
		res = append(res, TileWins{d, wins})
	}
	return res
}

// TilesWithRed5 手牌中该种牌的红五与普通五变体
func TilesWithRed5(hand *TileTable, t Tile) []Tile {
	c, p := t.Color(), t.Point()
	if hand[c][p] == 0 {
		return nil
	}
	if p != 5 || c == ColorHonor {
		return []Tile{t}
	}
	if hand[c][0] == 0 {
		return []Tile{t}
	}
	if hand[c][0] == hand[c][5] {
		return []Tile{MakeTile(c, 0)}
	}
	return []Tile{t, MakeTile(c, 0)}
}

func discardsWithRed5(hand *TileTable, discards []TileWins) []TileWins {
	var res []TileWins
	for _, tw := range discards {
		for _, t2 := range TilesWithRed5(hand, tw.Discard) {
			res = append(res, TileWins{t2, tw.Wins})
		}
	}
	return res
}

// noRed 去掉红五标记位的行
func noRed(tr [10]int) [10]int {
	tr[0] = 0
	return tr
}
