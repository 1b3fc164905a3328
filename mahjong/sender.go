package mahjong

import (
	"google.golang.org/protobuf/types/known/anypb"
)

// Sink 打包后事件的投递出口
type Sink func(ev *anypb.Any)

// Sender 将事件流打包为Any转发给外部接入层
type Sender struct {
	sink Sink
}

func NewSender(sink Sink) *Sender {
	return &Sender{sink: sink}
}

func (s *Sender) OnEvent(ev *Event) {
	if packed := ev.Pack(); packed != nil {
		s.sink(packed)
	}
}
