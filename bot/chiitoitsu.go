package bot

import (
	"context"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// Chiitoitsu 朝七对子收束: 留对子, 打落单最久的牌
type Chiitoitsu struct {
	base
}

func NewChiitoitsu() *Chiitoitsu {
	return &Chiitoitsu{base: base{name: "chiitoitsu"}}
}

func (b *Chiitoitsu) Select(ctx context.Context, req *mahjong.ActionRequest) <-chan mahjong.Action {
	acts := req.Acts
	switch {
	case acts.Has(mahjong.OperateTsumo):
		return reply(mahjong.Action{Type: mahjong.OperateTsumo})
	case acts.Has(mahjong.OperateRon):
		return reply(mahjong.Action{Type: mahjong.OperateRon})
	case acts.Has(mahjong.OperateRiichi):
		tp := acts.RiichiTenpais[0]
		return reply(mahjong.Action{Type: mahjong.OperateRiichi, Tile: tp.Discard})
	case acts.Has(mahjong.OperateDiscard):
		return reply(b.keepPairs(req))
	}
	return reply(mahjong.Action{Type: mahjong.OperatePass})
}

// keepPairs 打第3张及以上的重复牌, 其次打孤张
func (b *Chiitoitsu) keepPairs(req *mahjong.ActionRequest) mahjong.Action {
	pd := req.Play.GetPlayData(req.Seat)
	if pd.IsRiichi() {
		return mahjong.Action{Type: mahjong.OperateDiscard, Tile: pd.DrawnTile()}
	}
	hand := pd.HandTiles()
	count := make(map[mahjong.Tile]int, len(hand))
	for _, t := range hand {
		count[t.Normalize()]++
	}
	var extra, single mahjong.Tile = mahjong.TileNull, mahjong.TileNull
	for _, t := range hand {
		if restricted(req, t) {
			continue
		}
		switch n := count[t.Normalize()]; {
		case n >= 3 && extra == mahjong.TileNull:
			extra = t
		case n == 1 && single == mahjong.TileNull:
			single = t
		}
	}
	if extra != mahjong.TileNull {
		return mahjong.Action{Type: mahjong.OperateDiscard, Tile: extra}
	}
	if single != mahjong.TileNull {
		return mahjong.Action{Type: mahjong.OperateDiscard, Tile: single}
	}
	return discardAny(req)
}
