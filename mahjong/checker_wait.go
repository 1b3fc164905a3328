package mahjong

// WaitChecker 他家打牌后的应答操作检查
type WaitChecker interface {
	Check(play *Play, seat int32, opt *ActionSet)
}

type CheckerChow struct{}   // 吃检查器
type CheckerPon struct{}    // 碰检查器
type CheckerMinkan struct{} // 明杠检查器
type CheckerRon struct{}    // 荣和检查器

func (c *CheckerChow) Check(play *Play, seat int32, opt *ActionSet) {
	if play.lastTileType != OperateDiscard || play.dealer.GetRestCount() == 0 {
		return
	}
	if seat != GetNextSeat(play.curSeat, 1, SeatCount) {
		return
	}
	pd := play.playData[seat]
	if pd.isRiichi {
		return
	}
	called := play.curTile.Normalize()
	if !called.IsSuit() {
		return
	}

	hand := pd.HandTable()
	p := called.Point()
	for _, pts := range [][2]int{{p - 2, p - 1}, {p - 1, p + 1}, {p + 1, p + 2}} {
		if pts[0] < 1 || pts[1] > PointCountByColor[called.Color()] {
			continue
		}
		for _, a := range tileVariants(hand, called.Color(), pts[0]) {
			for _, b := range tileVariants(hand, called.Color(), pts[1]) {
				if chowLeavesDiscard(play, pd, called, []Tile{a, b}) {
					opt.ChowTiles = append(opt.ChowTiles, []Tile{a, b})
				}
			}
		}
	}
	if len(opt.ChowTiles) > 0 {
		opt.Add(OperateChow)
	}
}

func (c *CheckerPon) Check(play *Play, seat int32, opt *ActionSet) {
	if play.lastTileType != OperateDiscard || play.dealer.GetRestCount() == 0 {
		return
	}
	pd := play.playData[seat]
	if pd.isRiichi || !pd.canPon(play.curTile) {
		return
	}
	called := play.curTile.Normalize()
	hand := pd.HandTable()
	plain := hand.CountPlain(called)
	red := 0
	if called.IsSuit() && called.Point() == 5 {
		red = hand.RedCount(called.Color())
	}
	if plain >= 2 {
		opt.PonTiles = append(opt.PonTiles, []Tile{called, called})
	}
	if plain >= 1 && red >= 1 {
		opt.PonTiles = append(opt.PonTiles, []Tile{called, MakeTile(called.Color(), 0)})
	}
	if red >= 2 {
		r := MakeTile(called.Color(), 0)
		opt.PonTiles = append(opt.PonTiles, []Tile{r, r})
	}
	if len(opt.PonTiles) > 0 {
		opt.Add(OperatePon)
	}
}

func (c *CheckerMinkan) Check(play *Play, seat int32, opt *ActionSet) {
	if play.lastTileType != OperateDiscard || play.dealer.GetRestCount() == 0 {
		return
	}
	pd := play.playData[seat]
	if pd.isRiichi || !pd.canMinkan(play.curTile) {
		return
	}
	opt.Add(OperateMinkan)
}

func (c *CheckerRon) Check(play *Play, seat int32, opt *ActionSet) {
	if play.EvaluateRon(seat) != nil {
		opt.Add(OperateRon)
	}
}

// tileVariants 手中某点数的实际牌型, 红五与普通五分开
func tileVariants(hand *TileTable, color EColor, point int) []Tile {
	var v []Tile
	t := MakeTile(color, point)
	if hand.CountPlain(t) > 0 {
		v = append(v, t)
	}
	if point == 5 && hand.RedCount(color) > 0 {
		v = append(v, MakeTile(color, 0))
	}
	return v
}

// chowLeavesDiscard 吃后食替规则下仍须有可打的牌
func chowLeavesDiscard(play *Play, pd *PlayData, called Tile, used []Tile) bool {
	m := &Meld{Type: MeldChow, Tiles: append([]Tile{called}, used...), CalledTile: called}
	restricted := play.restrictedForMeld(m)

	table := pd.HandTable().Clone()
	for _, t := range used {
		if err := table.Dec(t); err != nil {
			return false
		}
	}
	for _, t := range table.Tiles() {
		banned := false
		for _, r := range restricted {
			if t == r {
				banned = true
				break
			}
		}
		if !banned {
			return true
		}
	}
	return false
}
