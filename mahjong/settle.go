package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type ScoreReason int32

const (
	ReasonWin ScoreReason = iota
	ReasonHonba
	ReasonRiichiStick
	ReasonTenpai
	ReasonNagashi
	ReasonPao
)

// Settler 按来源累计分数变动, 终局一次入账
type Settler struct {
	game   *Game
	deltas map[ScoreReason][]int64
	total  []int64
}

func NewSettler(g *Game) *Settler {
	return &Settler{
		game:   g,
		deltas: make(map[ScoreReason][]int64),
		total:  make([]int64, SeatCount),
	}
}

func (s *Settler) Add(reason ScoreReason, deltas []int64) {
	if len(deltas) != SeatCount {
		logger.Log.Errorf("delta size not equal seat count, reason: %d", reason)
		return
	}
	if ref, ok := s.deltas[reason]; ok {
		for i := range ref {
			ref[i] += deltas[i]
		}
	} else {
		cp := make([]int64, SeatCount)
		copy(cp, deltas)
		s.deltas[reason] = cp
	}
	for i := range deltas {
		s.total[i] += deltas[i]
	}
}

func (s *Settler) Transfer(reason ScoreReason, from, to int32, amount int64) {
	deltas := make([]int64, SeatCount)
	deltas[from] -= amount
	deltas[to] += amount
	s.Add(reason, deltas)
}

// Gain 无对手方的入账, 供托与立直棒归属用
func (s *Settler) Gain(reason ScoreReason, seat int32, amount int64) {
	deltas := make([]int64, SeatCount)
	deltas[seat] += amount
	s.Add(reason, deltas)
}

func (s *Settler) Total(seat int32) int64 {
	return s.total[seat]
}

// Apply 入账并返回各家变动
func (s *Settler) Apply() []int64 {
	for i := int32(0); i < SeatCount; i++ {
		s.game.players[i].AddScore(s.total[i])
	}
	return s.total
}

// settleTsumo 自摸分: 三家支付, 包牌时由承包者全付; 返回各家变动
func settleTsumo(play *Play, seat int32, sc *ScoreContext, st *Settler) []int64 {
	pao := play.GetPao(seat)
	if sc.Yakuman > 0 && pao != SeatNull {
		total := int64(0)
		for i := int32(0); i < SeatCount; i++ {
			if i == seat {
				continue
			}
			total += tsumoPayment(play, seat, i, sc)
		}
		st.Transfer(ReasonPao, pao, seat, total)
	} else {
		for i := int32(0); i < SeatCount; i++ {
			if i == seat {
				continue
			}
			st.Transfer(ReasonWin, i, seat, tsumoPayment(play, seat, i, sc))
		}
	}
	if play.honba > 0 {
		for i := int32(0); i < SeatCount; i++ {
			if i != seat {
				st.Transfer(ReasonHonba, i, seat, int64(play.honba)*HonbaTsumoScore)
			}
		}
	}
	settleSticks(play, seat, st)
	return slices.Clone(st.total)
}

func tsumoPayment(play *Play, winner, payer int32, sc *ScoreContext) int64 {
	if !play.IsDealer(winner) && play.IsDealer(payer) {
		return sc.Points.TsumoDealer
	}
	return sc.Points.TsumoEach
}

// settleRon 荣和分, winners按放铳者下家起的顺序; 本场与供托归最近者
// 返回各和了家对应的分数变动
func settleRon(play *Play, discarder int32, winners []int32, scs []*ScoreContext, st *Settler) [][]int64 {
	per := make([][]int64, len(winners))
	for i, seat := range winners {
		sc := scs[i]
		before := slices.Clone(st.total)
		pao := play.GetPao(seat)
		if sc.Yakuman > 0 && pao != SeatNull && pao != discarder {
			// 包牌者与放铳者各付一半
			half := ceil100(sc.Points.Ron / 2)
			st.Transfer(ReasonWin, discarder, seat, half)
			st.Transfer(ReasonPao, pao, seat, sc.Points.Ron-half)
		} else {
			st.Transfer(ReasonWin, discarder, seat, sc.Points.Ron)
		}
		if i == 0 {
			if play.honba > 0 {
				st.Transfer(ReasonHonba, discarder, seat, int64(play.honba)*HonbaRonScore)
			}
			settleSticks(play, seat, st)
		}
		deltas := make([]int64, SeatCount)
		for k := range deltas {
			deltas[k] = st.total[k] - before[k]
		}
		per[i] = deltas
	}
	return per
}

func settleSticks(play *Play, seat int32, st *Settler) {
	if n := play.TakeRiichiSticks(); n > 0 {
		st.Gain(ReasonRiichiStick, seat, int64(n)*RiichiStickScore)
	}
}

// settleTenpai 荒牌流局听牌料
func settleTenpai(tenpai []bool, st *Settler) {
	cnt := 0
	for _, ok := range tenpai {
		if ok {
			cnt++
		}
	}
	if cnt == 0 || cnt == SeatCount {
		return
	}
	deltas := make([]int64, SeatCount)
	for i := int32(0); i < SeatCount; i++ {
		if tenpai[i] {
			deltas[i] = 3000 / int64(cnt)
		} else {
			deltas[i] = -3000 / int64(SeatCount-cnt)
		}
	}
	st.Add(ReasonTenpai, deltas)
}

// settleNagashi 流局满贯, 按满贯自摸支付
func settleNagashi(play *Play, seats []int32, st *Settler) {
	for _, seat := range seats {
		for i := int32(0); i < SeatCount; i++ {
			if i == seat {
				continue
			}
			amt := int64(2000)
			if play.IsDealer(seat) || play.IsDealer(i) {
				amt = 4000
			}
			st.Transfer(ReasonNagashi, i, seat, amt)
		}
	}
}
