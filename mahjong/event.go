package mahjong

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kevin-chtw/tw_riichi/utils"
)

type EventType string

const (
	EventGameStart  EventType = "game_start"
	EventRoundStart EventType = "round_start"
	EventDeal       EventType = "deal"
	EventDraw       EventType = "draw"
	EventDiscard    EventType = "discard"
	EventMeld       EventType = "meld"
	EventNukidora   EventType = "nukidora"
	EventDora       EventType = "dora"
	EventRiichi     EventType = "riichi"
	EventWin        EventType = "win"
	EventRoundEnd   EventType = "round_end"
	EventGameEnd    EventType = "game_end"
)

// Event 对局事件, Seat为事件主体座位(无主体为SeatNull)
type Event struct {
	Type EventType
	Seat int32

	Tile  Tile   // 摸/打/杠/宝牌指示牌
	Tiles []Tile // 配牌或副露用牌

	Meld      *Meld
	Riichi    bool // 打牌带立直宣言
	Tsumogiri bool

	Scores      []int64       // 事件后各家持点
	DeltaScores []int64       // 本次结算各家增减
	Score       *ScoreContext // 和牌详情
	PaoSeat     int32         // 包牌承担者, 无则SeatNull
	DrawType    DrawType      // 流局类型
	Hands       [][]Tile      // 流局摊牌
	TenpaiFlags []bool        // 流局各家听牌
	Round       int
	Banker      int32
	Honba       int32
	Ranks       []int32 // 终局名次
}

// MaskFor 生成seat视角的事件副本, 他家手牌信息置空
func (e *Event) MaskFor(seat int32) *Event {
	masked := *e
	switch e.Type {
	case EventDeal:
		if e.Seat != seat {
			masked.Tiles = nil
		}
	case EventDraw:
		if e.Seat != seat {
			masked.Tile = TileNull
		}
	}
	return &masked
}

// Pack 打包为Any透传, 牌以int32编码; 失败记录日志并返回nil
func (e *Event) Pack() *anypb.Any {
	fields := map[string]any{
		"type": string(e.Type),
		"seat": int(e.Seat),
	}
	if e.Tile != TileNull {
		fields["tile"] = int(e.Tile)
	}
	if len(e.Tiles) > 0 {
		fields["tiles"] = tilesToAny(e.Tiles)
	}
	if e.Meld != nil {
		fields["meld"] = map[string]any{
			"type":  int(e.Meld.Type),
			"tiles": tilesToAny(e.Meld.Tiles),
			"from":  int(e.Meld.From),
		}
	}
	if e.Riichi {
		fields["riichi"] = true
	}
	if e.Tsumogiri {
		fields["tsumogiri"] = true
	}
	if len(e.Scores) > 0 {
		fields["scores"] = scoresToAny(e.Scores)
	}
	if len(e.DeltaScores) > 0 {
		fields["delta_scores"] = scoresToAny(e.DeltaScores)
	}
	if e.Score != nil {
		yakus := make([]any, len(e.Score.Yakus))
		for i, y := range e.Score.Yakus {
			yakus[i] = map[string]any{"name": y.Name, "fan": y.Fan}
		}
		fields["score"] = map[string]any{
			"yakus": yakus,
			"fu":    e.Score.Fu,
			"fan":   e.Score.Fan,
			"point": int(e.Score.Score),
			"title": e.Score.Title,
		}
	}
	if e.Type == EventWin && e.PaoSeat != SeatNull {
		fields["pao"] = int(e.PaoSeat)
	}
	if e.Type == EventRoundEnd {
		fields["draw_type"] = int(e.DrawType)
	}
	if len(e.Hands) > 0 {
		hands := make([]any, len(e.Hands))
		for i, h := range e.Hands {
			hands[i] = tilesToAny(h)
		}
		fields["hands"] = hands
	}
	if len(e.TenpaiFlags) > 0 {
		flags := make([]any, len(e.TenpaiFlags))
		for i, ok := range e.TenpaiFlags {
			flags[i] = ok
		}
		fields["tenpai"] = flags
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		logger.Log.Errorf("pack event %s failed: %v", e.Type, err)
		return nil
	}
	return utils.ToAny(st)
}

func scoresToAny(scores []int64) []any {
	v := make([]any, len(scores))
	for i, s := range scores {
		v[i] = int(s)
	}
	return v
}

func tilesToAny(tiles []Tile) []any {
	v := make([]any, len(tiles))
	for i, t := range tiles {
		v[i] = int(t)
	}
	return v
}

// Listener 旁观事件流, 回放与记录用
type Listener interface {
	OnEvent(ev *Event)
}
