package mahjong

import "slices"

// SelfChecker 摸牌后的自家操作检查
type SelfChecker interface {
	Check(play *Play, opt *ActionSet)
}

type CheckerDiscard struct{}  // 出牌检查器
type CheckerRiichi struct{}   // 立直检查器
type CheckerAnkan struct{}    // 暗杠检查器
type CheckerKakan struct{}    // 加杠检查器
type CheckerNukidora struct{} // 拔北检查器
type CheckerTsumo struct{}    // 自摸检查器
type CheckerKyushu struct{}   // 九种九牌检查器

func (c *CheckerDiscard) Check(play *Play, opt *ActionSet) {
	opt.Add(OperateDiscard)
	if play.IsAfterChowPon() {
		opt.Restricted = play.RestrictedDiscards(play.curSeat)
	}
}

func (c *CheckerRiichi) Check(play *Play, opt *ActionSet) {
	pd := play.playData[play.curSeat]
	if pd.drawnTile == TileNull || !pd.isMenzen || pd.isRiichi {
		return
	}
	if play.game.GetPlayer(play.curSeat).GetCurScore() < RiichiStickScore {
		return
	}
	if play.dealer.GetRestCount() < SeatCount {
		return
	}
	tenpais := play.RiichiTenpais(play.curSeat)
	if len(tenpais) == 0 {
		return
	}
	opt.Add(OperateRiichi)
	opt.RiichiTenpais = tenpais
}

func (c *CheckerAnkan) Check(play *Play, opt *ActionSet) {
	if play.dealer.GetRestCount() == 0 {
		return
	}
	pd := play.playData[play.curSeat]
	if pd.drawnTile == TileNull {
		return
	}
	hand := pd.HandTable()
	for color := ColorCharacter; color < ColorEnd; color++ {
		for p := 1; p <= PointCountByColor[color]; p++ {
			tile := MakeTile(color, p)
			if hand.Count(tile) < 4 {
				continue
			}
			if pd.isRiichi && !ankanKeepsWaits(pd, tile) {
				continue
			}
			opt.AnkanTiles = append(opt.AnkanTiles, tile)
		}
	}
	if len(opt.AnkanTiles) > 0 {
		opt.Add(OperateAnkan)
	}
}

// ankanKeepsWaits 立直中的暗杠限摸到的牌且不可改变待牌
func ankanKeepsWaits(pd *PlayData, tile Tile) bool {
	if pd.drawnTile.Normalize() != tile.Normalize() {
		return false
	}
	table := pd.HandTable().Clone()
	for i := 0; i < 4; i++ {
		if err := table.Dec(tile); err != nil {
			return false
		}
	}
	after := WinningTiles(table)
	if len(after) != len(pd.winTiles) {
		return false
	}
	for _, t := range after {
		if !slices.Contains(pd.winTiles, t) {
			return false
		}
	}
	return true
}

func (c *CheckerKakan) Check(play *Play, opt *ActionSet) {
	if play.dealer.GetRestCount() == 0 {
		return
	}
	pd := play.playData[play.curSeat]
	if pd.drawnTile == TileNull || pd.isRiichi {
		return
	}
	hand := pd.HandTable()
	for _, m := range pd.melds {
		if m.Type != MeldPon {
			continue
		}
		tile := m.Tiles[0].Normalize()
		if hand.Count(tile) > 0 {
			opt.KakanTiles = append(opt.KakanTiles, tile)
		}
	}
	if len(opt.KakanTiles) > 0 {
		opt.Add(OperateKakan)
	}
}

func (c *CheckerNukidora) Check(play *Play, opt *ActionSet) {
	if !play.rule.Nukidora {
		return
	}
	pd := play.playData[play.curSeat]
	if pd.drawnTile == TileNull || pd.HandTable().Count(TileNorth) == 0 {
		return
	}
	// 立直中仅限摸到的北
	if pd.isRiichi && pd.drawnTile != TileNorth {
		return
	}
	opt.Add(OperateNukidora)
}

func (c *CheckerTsumo) Check(play *Play, opt *ActionSet) {
	if play.EvaluateTsumo(play.curSeat) != nil {
		opt.Add(OperateTsumo)
	}
}

func (c *CheckerKyushu) Check(play *Play, opt *ActionSet) {
	if !play.isNoMeldTurn1(play.curSeat) {
		return
	}
	hand := play.playData[play.curSeat].HandTable()
	kinds := 0
	for color := ColorCharacter; color < ColorEnd; color++ {
		for p := 1; p <= PointCountByColor[color]; p++ {
			tile := MakeTile(color, p)
			if tile.IsTerminalOrHonor() && hand.Count(tile) > 0 {
				kinds++
			}
		}
	}
	if kinds >= 9 {
		opt.Add(OperateKyushu)
	}
}
