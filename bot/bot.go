// Package bot 提供本地对局用的内置决策器
package bot

import (
	"context"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// base 公共部分: 记录座位, 事件默认忽略
type base struct {
	seat int32
	game *mahjong.Game
	name string
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Init(seat int32, game *mahjong.Game) {
	b.seat = seat
	b.game = game
}

func (b *base) Expire() {}

func (b *base) OnEvent(ev *mahjong.Event) {}

func reply(act mahjong.Action) <-chan mahjong.Action {
	ch := make(chan mahjong.Action, 1)
	ch <- act
	return ch
}

// Nop 永远摸切, 不吃碰不和, 基准测试用
type Nop struct {
	base
}

func NewNop() *Nop {
	return &Nop{base: base{name: "nop"}}
}

func (b *Nop) Select(ctx context.Context, req *mahjong.ActionRequest) <-chan mahjong.Action {
	if req.Acts.Has(mahjong.OperateDiscard) {
		return reply(discardAny(req))
	}
	return reply(mahjong.Action{Type: mahjong.OperatePass})
}

// discardAny 摸切, 摸牌为空时打第一张可打的牌
func discardAny(req *mahjong.ActionRequest) mahjong.Action {
	pd := req.Play.GetPlayData(req.Seat)
	tile := pd.DrawnTile()
	if tile == mahjong.TileNull || restricted(req, tile) {
		for _, t := range pd.HandTiles() {
			if !restricted(req, t) {
				tile = t
				break
			}
		}
	}
	return mahjong.Action{Type: mahjong.OperateDiscard, Tile: tile}
}

func restricted(req *mahjong.ActionRequest, tile mahjong.Tile) bool {
	for _, t := range req.Acts.Restricted {
		if t == tile {
			return true
		}
	}
	return false
}
