package bot

import (
	"context"
	"math/rand"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// Random 可和即和, 立直可立直, 其余随机打牌, 偶尔碰
type Random struct {
	base
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{
		base: base{name: "random"},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (b *Random) Select(ctx context.Context, req *mahjong.ActionRequest) <-chan mahjong.Action {
	acts := req.Acts
	switch {
	case acts.Has(mahjong.OperateTsumo):
		return reply(mahjong.Action{Type: mahjong.OperateTsumo})
	case acts.Has(mahjong.OperateRon):
		return reply(mahjong.Action{Type: mahjong.OperateRon})
	case acts.Has(mahjong.OperateRiichi):
		tp := acts.RiichiTenpais[b.rng.Intn(len(acts.RiichiTenpais))]
		return reply(mahjong.Action{Type: mahjong.OperateRiichi, Tile: tp.Discard})
	case acts.Has(mahjong.OperatePon) && b.rng.Intn(4) == 0:
		return reply(mahjong.Action{Type: mahjong.OperatePon, Tiles: acts.PonTiles[0]})
	case acts.Has(mahjong.OperateDiscard):
		return reply(b.randomDiscard(req))
	}
	return reply(mahjong.Action{Type: mahjong.OperatePass})
}

func (b *Random) randomDiscard(req *mahjong.ActionRequest) mahjong.Action {
	pd := req.Play.GetPlayData(req.Seat)
	if pd.IsRiichi() {
		return mahjong.Action{Type: mahjong.OperateDiscard, Tile: pd.DrawnTile()}
	}
	var legal []mahjong.Tile
	for _, t := range pd.HandTiles() {
		if !restricted(req, t) {
			legal = append(legal, t)
		}
	}
	if len(legal) == 0 {
		return discardAny(req)
	}
	return mahjong.Action{Type: mahjong.OperateDiscard, Tile: legal[b.rng.Intn(len(legal))]}
}
