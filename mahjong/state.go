package mahjong

import (
	"context"
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type IState interface {
	OnEnter(ctx context.Context)
}

// State 状态基类
type State struct {
	game *Game
}

func NewState(game *Game) *State {
	return &State{game: game}
}

func (s *State) play() *Play {
	return s.game.play
}

// StateRoundStart 开局: 洗牌配牌, 翻首张宝牌指示牌
type StateRoundStart struct {
	*State
}

func NewStateRoundStart(g *Game, args ...any) IState {
	return &StateRoundStart{State: NewState(g)}
}

func (s *StateRoundStart) OnEnter(ctx context.Context) {
	g := s.game
	g.play = NewPlay(g, g.round, g.banker, g.honba, g.riichiSticks, g.rng.Int63())
	g.riichiSticks = 0

	g.emit(&Event{
		Type:   EventRoundStart,
		Seat:   SeatNull,
		Round:  g.round,
		Banker: g.banker,
		Honba:  g.honba,
		Scores: g.GetCurScores(),
	})

	g.play.Deal()
	for i := int32(0); i < SeatCount; i++ {
		g.emit(&Event{Type: EventDeal, Seat: i, Tiles: g.play.GetPlayData(i).HandTiles()})
	}
	if doras := g.play.GetDealer().DoraIndicators(); len(doras) > 0 {
		g.emit(&Event{Type: EventDora, Seat: SeatNull, Tile: doras[0]})
	}

	g.SetNextState(NewStateTurn, g.banker)
}

// StateDraw 摸牌, rinshan为杠或拔北后的补牌
type StateDraw struct {
	*State
	seat    int32
	rinshan bool
}

func NewStateDraw(g *Game, args ...any) IState {
	return &StateDraw{State: NewState(g), seat: args[0].(int32), rinshan: args[1].(bool)}
}

func (s *StateDraw) OnEnter(ctx context.Context) {
	play := s.play()
	if !s.rinshan && play.GetDealer().GetRestCount() == 0 {
		play.updateAfterDiscardCompleted()
		s.game.SetNextState(NewStateRoundEnd, DrawExhaustive)
		return
	}

	var tile Tile
	var err error
	if s.rinshan {
		tile, err = play.DrawReplacementFor(s.seat)
	} else {
		tile, err = play.DrawFor(s.seat)
	}
	if err != nil {
		s.game.SetNextState(NewStateRoundEnd, DrawExhaustive)
		return
	}

	s.game.emit(&Event{Type: EventDraw, Seat: s.seat, Tile: tile})
	s.game.SetNextState(NewStateTurn, s.seat)
}

// StateTurn 行动方决策: 打牌/立直/杠/拔北/自摸/九种九牌
type StateTurn struct {
	*State
	seat int32
}

func NewStateTurn(g *Game, args ...any) IState {
	return &StateTurn{State: NewState(g), seat: args[0].(int32)}
}

func (s *StateTurn) OnEnter(ctx context.Context) {
	g := s.game
	play := s.play()
	acts := play.FetchSelfOperates()
	act := g.requestAction(ctx, acts)

	switch {
	case act.Type == OperateTsumo && acts.Has(OperateTsumo):
		g.SetNextState(NewStateWin, []int32{s.seat}, true)

	case act.Type == OperateKyushu && acts.Has(OperateKyushu):
		g.SetNextState(NewStateRoundEnd, DrawKyushu)

	case act.Type == OperateRiichi && acts.Has(OperateRiichi):
		tile := act.Tile
		if !riichiDiscardOK(acts.RiichiTenpais, tile) {
			tile = acts.RiichiTenpais[0].Discard
		}
		s.doDiscard(tile, true)

	case act.Type == OperateAnkan && acts.Has(OperateAnkan) && slices.Contains(acts.AnkanTiles, act.Tile.Normalize()):
		if err := play.Ankan(act.Tile.Normalize()); err != nil {
			s.fallbackDiscard()
			return
		}
		meld := lastMeld(play, s.seat)
		g.emit(&Event{Type: EventMeld, Seat: s.seat, Meld: meld})
		s.resolveChankan(ctx)

	case act.Type == OperateKakan && acts.Has(OperateKakan) && slices.Contains(acts.KakanTiles, act.Tile.Normalize()):
		if err := play.Kakan(act.Tile.Normalize()); err != nil {
			s.fallbackDiscard()
			return
		}
		meld := lastMeld(play, s.seat)
		g.emit(&Event{Type: EventMeld, Seat: s.seat, Meld: meld})
		s.resolveChankan(ctx)

	case act.Type == OperateNukidora && acts.Has(OperateNukidora):
		if err := play.Nukidora(); err != nil {
			s.fallbackDiscard()
			return
		}
		g.emit(&Event{Type: EventNukidora, Seat: s.seat, Tile: TileNorth})
		g.SetNextState(NewStateDraw, s.seat, true)

	case act.Type == OperateDiscard:
		s.doDiscard(act.Tile, false)

	default:
		s.fallbackDiscard()
	}
}

func riichiDiscardOK(tenpais []TenpaiInfo, tile Tile) bool {
	for _, tp := range tenpais {
		if tp.Discard == tile {
			return true
		}
	}
	return false
}

func lastMeld(play *Play, seat int32) *Meld {
	melds := play.GetPlayData(seat).Melds()
	if len(melds) == 0 {
		return nil
	}
	return melds[len(melds)-1]
}

func (s *StateTurn) doDiscard(tile Tile, riichi bool) {
	play := s.play()
	pd := play.GetPlayData(s.seat)
	if !s.discardAllowed(pd, tile) {
		s.fallbackDiscard()
		return
	}
	tsumogiri := tile == pd.DrawnTile()
	if err := play.Discard(tile, riichi); err != nil {
		s.fallbackDiscard()
		return
	}
	s.game.emit(&Event{
		Type:      EventDiscard,
		Seat:      s.seat,
		Tile:      tile,
		Riichi:    riichi,
		Tsumogiri: tsumogiri,
	})
	s.game.SetNextState(NewStateDiscarded)
}

// discardAllowed 立直后限摸切, 食替禁打牌不可出
func (s *StateTurn) discardAllowed(pd *PlayData, tile Tile) bool {
	if !slices.Contains(pd.HandTiles(), tile) {
		return false
	}
	if pd.IsRiichi() && tile != pd.DrawnTile() {
		return false
	}
	if slices.Contains(s.play().RestrictedDiscards(s.seat), tile) {
		return false
	}
	return true
}

// fallbackDiscard 无效或超时行动按摸切处理
func (s *StateTurn) fallbackDiscard() {
	play := s.play()
	pd := play.GetPlayData(s.seat)
	tile := pd.DrawnTile()
	if tile == TileNull {
		restricted := play.RestrictedDiscards(s.seat)
		for _, t := range pd.HandTiles() {
			if !slices.Contains(restricted, t) {
				tile = t
				break
			}
		}
	}
	if tile == TileNull {
		logger.Log.Errorf("seat %d has no legal discard", s.seat)
		s.game.SetNextState(NewStateRoundEnd, DrawExhaustive)
		return
	}
	s.doDiscard(tile, false)
}

// resolveChankan 杠后抢杠窗口, 无人荣和则补牌
func (s *StateTurn) resolveChankan(ctx context.Context) {
	g := s.game
	play := s.play()
	sets := collectWaitSets(play)
	if len(sets) > 0 {
		acts := g.requestAll(ctx, sets)
		winners := ronSeats(play, sets, acts)
		if len(winners) > 0 {
			expireOthers(g, sets, acts, winners)
			g.SetNextState(NewStateWin, winners, false)
			return
		}
	}
	g.SetNextState(NewStateDraw, s.seat, true)
}

// StateDiscarded 弃牌应答: 荣和>明杠>碰>吃, 全过则下家摸牌
type StateDiscarded struct {
	*State
}

func NewStateDiscarded(g *Game, args ...any) IState {
	return &StateDiscarded{State: NewState(g)}
}

func (s *StateDiscarded) OnEnter(ctx context.Context) {
	g := s.game
	play := s.play()

	sets := collectWaitSets(play)
	if len(sets) > 0 {
		acts := g.requestAll(ctx, sets)
		if s.resolve(sets, acts) {
			return
		}
	}
	s.afterPass()
}

// resolve 按优先级落实一项应答, 无人应答返回false
func (s *StateDiscarded) resolve(sets []*ActionSet, acts []Action) bool {
	g := s.game
	play := s.play()

	if winners := ronSeats(play, sets, acts); len(winners) > 0 {
		if len(winners) >= 3 && g.GetRule().TripleRonDraw {
			g.SetNextState(NewStateRoundEnd, DrawSanchaho)
			return true
		}
		expireOthers(g, sets, acts, winners)
		g.SetNextState(NewStateWin, winners, false)
		return true
	}

	for _, op := range []int32{OperateMinkan, OperatePon, OperateChow} {
		for i, act := range acts {
			if act.Type != op || !sets[i].Has(op) {
				continue
			}
			if s.applyCall(sets[i], act) {
				expireOthers(g, sets, acts, []int32{act.Seat})
				return true
			}
		}
	}
	return false
}

func (s *StateDiscarded) applyCall(set *ActionSet, act Action) bool {
	g := s.game
	play := s.play()

	switch act.Type {
	case OperateMinkan:
		if err := play.Minkan(act.Seat); err != nil {
			return false
		}
		g.emit(&Event{Type: EventMeld, Seat: act.Seat, Meld: lastMeld(play, act.Seat)})
		g.SetNextState(NewStateDraw, act.Seat, true)
	case OperatePon:
		tiles := pickCallTiles(set.PonTiles, act.Tiles)
		if tiles == nil {
			return false
		}
		if err := play.Pon(act.Seat, tiles); err != nil {
			return false
		}
		g.emit(&Event{Type: EventMeld, Seat: act.Seat, Meld: lastMeld(play, act.Seat)})
		g.SetNextState(NewStateTurn, act.Seat)
	case OperateChow:
		tiles := pickCallTiles(set.ChowTiles, act.Tiles)
		if tiles == nil {
			return false
		}
		if err := play.Chow(act.Seat, tiles); err != nil {
			return false
		}
		g.emit(&Event{Type: EventMeld, Seat: act.Seat, Meld: lastMeld(play, act.Seat)})
		g.SetNextState(NewStateTurn, act.Seat)
	default:
		return false
	}
	return true
}

// afterPass 全员放过: 先查中途流局, 再轮下家
func (s *StateDiscarded) afterPass() {
	g := s.game
	play := s.play()

	if play.isSuufuurenda() {
		play.updateAfterDiscardCompleted()
		g.SetNextState(NewStateRoundEnd, DrawSuufuurenda)
		return
	}
	if riichiCount(play) == SeatCount {
		play.updateAfterDiscardCompleted()
		g.SetNextState(NewStateRoundEnd, DrawSuuchariich)
		return
	}
	if total, seats := play.KanCountAll(); total >= 4 && seats >= 2 {
		play.updateAfterDiscardCompleted()
		g.SetNextState(NewStateRoundEnd, DrawSuukansanra)
		return
	}

	g.SetNextState(NewStateDraw, GetNextSeat(play.GetCurSeat(), 1, SeatCount), false)
}

func riichiCount(play *Play) int {
	n := 0
	for i := int32(0); i < SeatCount; i++ {
		if play.GetPlayData(i).IsRiichi() {
			n++
		}
	}
	return n
}

// collectWaitSets 收集所有可应答座位的操作集
func collectWaitSets(play *Play) []*ActionSet {
	var sets []*ActionSet
	for off := int32(1); off < SeatCount; off++ {
		seat := GetNextSeat(play.GetCurSeat(), off, SeatCount)
		if set := play.FetchWaitOperates(seat); set != nil {
			sets = append(sets, set)
		}
	}
	return sets
}

// ronSeats 选择荣和的座位, 自放铳者下家起排序
func ronSeats(play *Play, sets []*ActionSet, acts []Action) []int32 {
	var seats []int32
	for i, act := range acts {
		if act.Type == OperateRon && sets[i].Has(OperateRon) {
			seats = append(seats, act.Seat)
		}
	}
	slices.SortFunc(seats, func(a, b int32) int {
		return int(SeatOffset(play.GetCurSeat(), a) - SeatOffset(play.GetCurSeat(), b))
	})
	return seats
}

// expireOthers 通知落选座位本次请求作废
func expireOthers(g *Game, sets []*ActionSet, acts []Action, chosen []int32) {
	for i, set := range sets {
		if acts[i].Type == OperatePass || slices.Contains(chosen, set.Seat) {
			continue
		}
		g.actors[set.Seat].Expire()
	}
}

// pickCallTiles 校验玩家选择的组牌, 缺省取第一组
func pickCallTiles(options [][]Tile, chosen []Tile) []Tile {
	if len(options) == 0 {
		return nil
	}
	if len(chosen) == 2 {
		for _, opt := range options {
			if (opt[0] == chosen[0] && opt[1] == chosen[1]) || (opt[0] == chosen[1] && opt[1] == chosen[0]) {
				return opt
			}
		}
	}
	return options[0]
}

// StateWin 和了结算
type StateWin struct {
	*State
	seats []int32
	tsumo bool
}

func NewStateWin(g *Game, args ...any) IState {
	return &StateWin{State: NewState(g), seats: args[0].([]int32), tsumo: args[1].(bool)}
}

func (s *StateWin) OnEnter(ctx context.Context) {
	g := s.game
	play := s.play()
	st := NewSettler(g)

	if s.tsumo {
		seat := s.seats[0]
		sc := play.EvaluateTsumo(seat)
		if sc == nil {
			logger.Log.Errorf("tsumo evaluate failed on seat %d", seat)
			g.SetNextState(NewStateRoundEnd, DrawExhaustive)
			return
		}
		deltas := settleTsumo(play, seat, sc, st)
		st.Apply()
		g.emit(&Event{
			Type:        EventWin,
			Seat:        seat,
			Tile:        play.GetPlayData(seat).DrawnTile(),
			Score:       sc,
			Scores:      g.GetCurScores(),
			DeltaScores: deltas,
			PaoSeat:     play.GetPao(seat),
		})
	} else {
		play.CancelPendingRiichi()
		scs := make([]*ScoreContext, 0, len(s.seats))
		seats := make([]int32, 0, len(s.seats))
		for _, seat := range s.seats {
			if sc := play.EvaluateRon(seat); sc != nil {
				scs = append(scs, sc)
				seats = append(seats, seat)
			}
		}
		if len(seats) == 0 {
			logger.Log.Error("ron evaluate failed for all claimants")
			g.SetNextState(NewStateRoundEnd, DrawExhaustive)
			return
		}
		s.seats = seats
		per := settleRon(play, play.GetCurSeat(), seats, scs, st)
		st.Apply()
		for i, seat := range seats {
			g.emit(&Event{
				Type:        EventWin,
				Seat:        seat,
				Tile:        play.GetCurTile(),
				Score:       scs[i],
				Scores:      g.GetCurScores(),
				DeltaScores: per[i],
				PaoSeat:     play.GetPao(seat),
			})
		}
	}

	renchan := slices.Contains(s.seats, play.GetBanker())
	s.finishRound(renchan)
}

func (s *StateWin) finishRound(renchan bool) {
	g := s.game
	g.riichiSticks = 0
	g.nextRound(renchan)
	if g.isGameOver() {
		g.finishGame()
		return
	}
	g.SetNextState(NewStateRoundStart)
}

// StateRoundEnd 流局结算
type StateRoundEnd struct {
	*State
	drawType DrawType
}

func NewStateRoundEnd(g *Game, args ...any) IState {
	return &StateRoundEnd{State: NewState(g), drawType: args[0].(DrawType)}
}

func (s *StateRoundEnd) OnEnter(ctx context.Context) {
	g := s.game
	play := s.play()
	st := NewSettler(g)
	drawType := s.drawType
	renchan := true

	tenpai := make([]bool, SeatCount)
	hands := make([][]Tile, SeatCount)
	for i := int32(0); i < SeatCount; i++ {
		tenpai[i] = len(play.GetPlayData(i).WinTiles()) > 0
		hands[i] = play.GetPlayData(i).HandTiles()
	}

	if drawType == DrawExhaustive {
		var nagashi []int32
		for i := int32(0); i < SeatCount; i++ {
			if play.GetPlayData(i).IsNagashi() {
				nagashi = append(nagashi, i)
			}
		}
		if len(nagashi) > 0 {
			drawType = DrawNagashi
			settleNagashi(play, nagashi, st)
		} else {
			settleTenpai(tenpai, st)
		}
		renchan = tenpai[play.GetBanker()]
	}
	deltas := st.Apply()

	// 供托保留到下一局
	g.riichiSticks = play.GetRiichiSticks()
	g.emit(&Event{
		Type:        EventRoundEnd,
		Seat:        SeatNull,
		DrawType:    drawType,
		Scores:      g.GetCurScores(),
		DeltaScores: deltas,
		Hands:       hands,
		TenpaiFlags: tenpai,
	})

	g.nextRound(renchan)
	if g.isGameOver() {
		g.finishGame()
		return
	}
	g.SetNextState(NewStateRoundStart)
}
