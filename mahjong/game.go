package mahjong

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var ErrNoActor = errors.New("seat has no actor")

// GameResult 终局结果
type GameResult struct {
	Scores []int64
	Ranks  []int32 // ranks[seat]为名次, 1起
	Rounds int     // 实际进行的局数
}

// Game 一场半庄, 驱动状态机直至终局
type Game struct {
	rule      *Rule
	timer     *Timer
	players   [SeatCount]*Player
	actors    [SeatCount]Actor
	listeners []Listener

	play      *Play
	curState  IState
	nextState IState

	round        int
	banker       int32
	honba        int32
	riichiSticks int32
	handCount    int

	rng      *rand.Rand
	finished bool
	result   *GameResult
}

func NewGame(rule *Rule, seed int64) *Game {
	if rule == nil {
		rule = NewRule()
	}
	g := &Game{
		rule:   rule,
		timer:  NewTimer(DefaultActionTimeout),
		banker: 0,
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := int32(0); i < SeatCount; i++ {
		g.players[i] = NewPlayer(i, rule.InitScore)
	}
	return g
}

func (g *Game) SetActor(seat int32, actor Actor) {
	g.actors[seat] = actor
}

func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) SetActionTimeout(d time.Duration) {
	g.timer = NewTimer(d)
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) GetPlayer(seat int32) *Player {
	if seat < 0 || seat >= SeatCount {
		return nil
	}
	return g.players[seat]
}

func (g *Game) GetBanker() int32 {
	return g.banker
}

func (g *Game) GetRound() int {
	return g.round
}

func (g *Game) GetResult() *GameResult {
	return g.result
}

func (g *Game) GetCurScores() []int64 {
	scores := make([]int64, SeatCount)
	for i := int32(0); i < SeatCount; i++ {
		scores[i] = g.players[i].GetCurScore()
	}
	return scores
}

// Run 运行到终局, ctx取消则中途返回
func (g *Game) Run(ctx context.Context) (*GameResult, error) {
	for i := int32(0); i < SeatCount; i++ {
		if g.actors[i] == nil {
			return nil, ErrNoActor
		}
		g.actors[i].Init(i, g)
	}

	g.emit(&Event{Type: EventGameStart, Seat: SeatNull, Scores: g.GetCurScores()})
	g.SetNextState(NewStateRoundStart)
	g.enterNextState(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.result, nil
}

func (g *Game) SetNextState(newFn func(*Game, ...any) IState, args ...any) {
	g.nextState = newFn(g, args...)
}

func (g *Game) enterNextState(ctx context.Context) {
	for g.nextState != nil && !g.finished && ctx.Err() == nil {
		g.curState = g.nextState
		g.nextState = nil
		g.curState.OnEnter(ctx)
	}
}

// emit 广播事件, 每个座位收到各自视角的副本
func (g *Game) emit(ev *Event) {
	for i := int32(0); i < SeatCount; i++ {
		if g.actors[i] != nil {
			g.actors[i].OnEvent(ev.MaskFor(i))
		}
	}
	for _, l := range g.listeners {
		l.OnEvent(ev)
	}
}

// OnDoraRevealed Play翻出新宝牌指示牌时回调
func (g *Game) OnDoraRevealed(tile Tile) {
	g.emit(&Event{Type: EventDora, Seat: SeatNull, Tile: tile})
}

// OnRiichiEstablished 立直成立, 供点已入场
func (g *Game) OnRiichiEstablished(seat int32) {
	g.emit(&Event{Type: EventRiichi, Seat: seat, Scores: g.GetCurScores()})
}

// requestAction 请求单个座位行动, 超时或取消返回Pass
func (g *Game) requestAction(ctx context.Context, acts *ActionSet) Action {
	actor := g.actors[acts.Seat]
	actx, cancel := g.timer.ActionContext(ctx)
	defer cancel()

	select {
	case act, ok := <-actor.Select(actx, &ActionRequest{Seat: acts.Seat, Acts: acts, Play: g.play}):
		if !ok {
			return Action{Seat: acts.Seat, Type: OperatePass}
		}
		act.Seat = acts.Seat
		return act
	case <-actx.Done():
		logger.Log.Warnf("actor %s timeout on seat %d", actor.Name(), acts.Seat)
		return Action{Seat: acts.Seat, Type: OperatePass}
	}
}

// requestAll 并发请求多个座位, 全部返回后按座位序给出
func (g *Game) requestAll(ctx context.Context, sets []*ActionSet) []Action {
	actx, cancel := g.timer.ActionContext(ctx)
	defer cancel()

	type reply struct {
		idx int
		act Action
	}
	ch := make(chan reply, len(sets))
	for i, set := range sets {
		go func(i int, set *ActionSet) {
			actor := g.actors[set.Seat]
			select {
			case act, ok := <-actor.Select(actx, &ActionRequest{Seat: set.Seat, Acts: set, Play: g.play}):
				if !ok {
					act = Action{Type: OperatePass}
				}
				act.Seat = set.Seat
				ch <- reply{i, act}
			case <-actx.Done():
				ch <- reply{i, Action{Seat: set.Seat, Type: OperatePass}}
			}
		}(i, set)
	}

	acts := make([]Action, len(sets))
	for range sets {
		r := <-ch
		acts[r.idx] = r.act
	}
	return acts
}

// nextRound 局结束后推进庄位与局数, renchan为连庄
func (g *Game) nextRound(renchan bool) {
	g.handCount++
	if renchan {
		g.honba++
	} else {
		g.honba = 0
		g.banker = GetNextSeat(g.banker, 1, SeatCount)
		g.round++
	}
}

// isGameOver 终局判定: 有人被飞或打满规定局数
func (g *Game) isGameOver() bool {
	if g.rule.BustEnds {
		for i := int32(0); i < SeatCount; i++ {
			if g.players[i].GetCurScore() < 0 {
				return true
			}
		}
	}
	if g.round >= g.rule.Rounds {
		return true
	}
	// 连庄上限, 防止对局无法收束
	return g.handCount >= g.rule.Rounds*8
}

// finishGame 结算名次, 剩余立直棒归首位
func (g *Game) finishGame() {
	seats := []int32{0, 1, 2, 3}
	sort.SliceStable(seats, func(a, b int) bool {
		sa, sb := seats[a], seats[b]
		if g.players[sa].GetCurScore() != g.players[sb].GetCurScore() {
			return g.players[sa].GetCurScore() > g.players[sb].GetCurScore()
		}
		return sa < sb
	})
	if g.riichiSticks > 0 {
		g.players[seats[0]].AddScore(int64(g.riichiSticks) * RiichiStickScore)
		g.riichiSticks = 0
	}

	ranks := make([]int32, SeatCount)
	for rank, seat := range seats {
		ranks[seat] = int32(rank + 1)
		g.players[seat].SetRank(int32(rank + 1))
	}
	g.result = &GameResult{
		Scores: g.GetCurScores(),
		Ranks:  ranks,
		Rounds: g.handCount,
	}
	g.finished = true
	g.emit(&Event{Type: EventGameEnd, Seat: SeatNull, Scores: g.result.Scores, Ranks: ranks})
}
