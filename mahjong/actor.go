package mahjong

import "context"

// ActionRequest 请求某座位行动
type ActionRequest struct {
	Seat int32
	Acts *ActionSet
	Play *Play
}

// Actor 座位上的决策方, 机器人或外部接入均实现此接口
type Actor interface {
	Name() string

	// Init 对局开始时绑定座位
	Init(seat int32, game *Game)

	// Select 返回行动通道, ctx取消或超时后引擎不再读取
	Select(ctx context.Context, req *ActionRequest) <-chan Action

	// Expire 他家优先操作成立, 本次请求作废
	Expire()

	// OnEvent 接收本座位视角的事件
	OnEvent(ev *Event)
}
