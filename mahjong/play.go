package mahjong

import (
	"errors"
	"slices"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrNotYourTurn   = errors.New("not your turn")
)

// Play 单局牌桌, 管理牌墙, 各家牌面与振听/立直状态
type Play struct {
	game   *Game
	rule   *Rule
	dealer *Dealer

	round        int // 连续局编号, 东1为0
	banker       int32
	honba        int32
	riichiSticks int32

	curSeat      int32
	curTile      Tile  // 最近打出/杠出的牌
	lastTileType int32 // OperateDiscard/OperateKakan/OperateAnkan
	lastRiichi   int32 // 立直宣告后尚未成立的座位

	history        []Action
	playData       [SeatCount]*PlayData
	pao            [SeatCount]int32 // 包牌承担者
	pendingKanDora int              // 明杠/加杠延迟翻的宝牌数

	selfCheckers []SelfChecker
	waitCheckers []WaitChecker
}

func NewPlay(game *Game, round int, banker int32, honba, riichiSticks int32, seed int64) *Play {
	p := &Play{
		game:         game,
		rule:         game.GetRule(),
		dealer:       NewDealer(game.GetRule(), seed),
		round:        round,
		banker:       banker,
		honba:        honba,
		riichiSticks: riichiSticks,
		curSeat:      banker,
		curTile:      TileNull,
		lastTileType: OperateNone,
		lastRiichi:   SeatNull,
		history:      make([]Action, 0, 128),
	}
	for i := int32(0); i < SeatCount; i++ {
		p.playData[i] = NewPlayData(i)
		p.pao[i] = SeatNull
	}
	p.RegisterSelfCheck(
		&CheckerDiscard{},
		&CheckerRiichi{},
		&CheckerAnkan{},
		&CheckerKakan{},
		&CheckerNukidora{},
		&CheckerTsumo{},
		&CheckerKyushu{},
	)
	p.RegisterWaitCheck(
		&CheckerChow{},
		&CheckerPon{},
		&CheckerMinkan{},
		&CheckerRon{},
	)
	return p
}

func (p *Play) RegisterSelfCheck(cks ...SelfChecker) {
	p.selfCheckers = append(p.selfCheckers, cks...)
}

func (p *Play) RegisterWaitCheck(cks ...WaitChecker) {
	p.waitCheckers = append(p.waitCheckers, cks...)
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetRound() int {
	return p.round
}

func (p *Play) GetHonba() int32 {
	return p.honba
}

func (p *Play) GetRiichiSticks() int32 {
	return p.riichiSticks
}

func (p *Play) TakeRiichiSticks() int32 {
	n := p.riichiSticks
	p.riichiSticks = 0
	return n
}

func (p *Play) GetPao(seat int32) int32 {
	return p.pao[seat]
}

func (p *Play) PrevalentWind() Wind {
	return PrevalentWind(p.round)
}

func (p *Play) SeatWind(seat int32) Wind {
	return SeatWind(p.banker, seat)
}

func (p *Play) IsDealer(seat int32) bool {
	return seat == p.banker
}

func (p *Play) GetCurScores() []int64 {
	scores := make([]int64, SeatCount)
	for i := int32(0); i < SeatCount; i++ {
		scores[i] = p.game.GetPlayer(i).GetCurScore()
	}
	return scores
}

// Deal 配牌, 庄家多摸第14张
func (p *Play) Deal() {
	hands := p.dealer.Deal(p.banker)
	for i := int32(0); i < SeatCount; i++ {
		p.playData[i].SetHandTiles(hands[i])
		p.playData[i].FreshWinTiles()
	}
	tile, err := p.dealer.DrawTile()
	if err != nil {
		logrus.Error("wall exhausted on deal")
		return
	}
	p.playData[p.banker].PutHandTile(tile)
	p.addHistory(p.banker, tile, OperateDraw, nil)
}

// DrawFor 指定座位摸牌, 牌墙空返回错误
func (p *Play) DrawFor(seat int32) (Tile, error) {
	p.updateAfterDiscardCompleted()
	pd := p.playData[seat]
	tile, err := p.dealer.DrawTile()
	if err != nil {
		return TileNull, err
	}
	p.curSeat = seat
	p.curTile = TileNull
	p.lastTileType = OperateNone
	pd.PutHandTile(tile)
	if !pd.isRiichi {
		pd.isFuritenOther = false
	}
	p.addHistory(seat, tile, OperateDraw, nil)
	return tile, nil
}

// DrawReplacementFor 杠或拔北后摸岭上牌
func (p *Play) DrawReplacementFor(seat int32) (Tile, error) {
	p.updateAfterDiscardCompleted()
	if p.lastTileType == OperateKakan {
		// 加杠到此确定成立, 此时才清全场一发
		p.disableIppatsu()
	}
	tile, err := p.dealer.DrawReplacement()
	if err != nil {
		return TileNull, err
	}
	p.curSeat = seat
	p.curTile = TileNull
	p.lastTileType = OperateNone
	pd := p.playData[seat]
	pd.PutHandTile(tile)
	pd.isRinshan = true
	if !pd.isRiichi {
		pd.isFuritenOther = false
	}
	p.addHistory(seat, tile, OperateDraw, nil)
	return tile, nil
}

// Discard 当前座位打牌, riichi为立直宣言
func (p *Play) Discard(tile Tile, riichi bool) error {
	pd := p.playData[p.curSeat]
	if tile == TileNull {
		tile = pd.drawnTile
	}
	if riichi && (!pd.isMenzen || pd.isRiichi) {
		return ErrInvalidAction
	}
	isTurn1 := p.isNoMeldTurn1(p.curSeat)
	tsumogiri := tile == pd.drawnTile
	if !pd.Discard(tile, riichi) {
		return ErrInvalidAction
	}
	pd.isRinshan = false
	if riichi {
		pd.isRiichi = true
		pd.isIppatsu = true
		pd.isDaburii = isTurn1
		p.lastRiichi = p.curSeat
	} else {
		pd.isIppatsu = false
	}

	p.curTile = tile
	p.lastTileType = OperateDiscard
	p.addHistory(p.curSeat, tile, OperateDiscard, nil)

	// 手牌变化时重算和了牌
	if !tsumogiri {
		pd.FreshWinTiles()
	}
	for _, d := range pd.outTiles {
		if slices.Contains(pd.winTiles, d.Tile.Normalize()) {
			pd.isFuriten = true
			break
		}
	}

	// 明杠/加杠的新宝牌在打牌后翻开
	p.revealPendingDora()
	return nil
}

// Chow 吃上家弃牌, tiles为手中用掉的两张
func (p *Play) Chow(seat int32, tiles []Tile) error {
	pd := p.playData[seat]
	if !pd.Chow(p.curTile, tiles, p.curSeat) {
		return ErrInvalidAction
	}
	p.updateAfterDiscardCompleted()
	p.disableIppatsu()
	p.playData[p.curSeat].MarkLastOutCalled()
	p.addHistory(seat, p.curTile, OperateChow, tiles)
	p.curSeat = seat
	p.lastTileType = OperateNone
	return nil
}

// Pon 碰, tiles为手中用掉的两张
func (p *Play) Pon(seat int32, tiles []Tile) error {
	pd := p.playData[seat]
	if !pd.Pon(p.curTile, tiles, p.curSeat) {
		return ErrInvalidAction
	}
	p.updateAfterDiscardCompleted()
	p.disableIppatsu()
	p.checkPao(seat, p.curTile, p.curSeat)
	p.playData[p.curSeat].MarkLastOutCalled()
	p.addHistory(seat, p.curTile, OperatePon, tiles)
	p.curSeat = seat
	p.lastTileType = OperateNone
	return nil
}

// Minkan 明杠他家弃牌
func (p *Play) Minkan(seat int32) error {
	from := p.curSeat
	pd := p.playData[seat]
	if !pd.Minkan(p.curTile, from) {
		return ErrInvalidAction
	}
	p.updateAfterDiscardCompleted()
	p.disableIppatsu()
	p.checkPao(seat, p.curTile, from)
	p.playData[from].MarkLastOutCalled()
	p.addHistory(seat, p.curTile, OperateMinkan, nil)
	p.curSeat = seat
	p.pendingKanDora++
	pd.FreshWinTiles()
	return nil
}

// Ankan 暗杠, 杠后立即翻新宝牌
func (p *Play) Ankan(tile Tile) error {
	pd := p.playData[p.curSeat]
	if !pd.Ankan(tile) {
		return ErrInvalidAction
	}
	p.disableIppatsu()
	p.curTile = tile.Normalize()
	p.lastTileType = OperateAnkan
	p.addHistory(p.curSeat, tile, OperateAnkan, nil)
	p.revealDora()
	pd.FreshWinTiles()
	return nil
}

// Kakan 加杠, 抢杠确认前一发与新宝牌均挂起
func (p *Play) Kakan(tile Tile) error {
	pd := p.playData[p.curSeat]
	if !pd.Kakan(tile) {
		return ErrInvalidAction
	}
	p.curTile = tile
	p.lastTileType = OperateKakan
	p.addHistory(p.curSeat, tile, OperateKakan, nil)
	p.pendingKanDora++
	pd.FreshWinTiles()
	return nil
}

// Nukidora 拔北
func (p *Play) Nukidora() error {
	pd := p.playData[p.curSeat]
	if !pd.Nukidora() {
		return ErrInvalidAction
	}
	p.lastTileType = OperateNone
	p.addHistory(p.curSeat, TileNorth, OperateNukidora, nil)
	pd.FreshWinTiles()
	return nil
}

// KanCountAll 全场杠数与杠家数
func (p *Play) KanCountAll() (total int, seats int) {
	for i := int32(0); i < SeatCount; i++ {
		if n := p.playData[i].KanCount(); n > 0 {
			total += n
			seats++
		}
	}
	return
}

// updateAfterDiscardCompleted 打牌被放过后的结算: 见逃振听与立直成立
func (p *Play) updateAfterDiscardCompleted() {
	if p.lastTileType == OperateDiscard || p.lastTileType == OperateKakan {
		t := p.curTile.Normalize()
		for s := int32(0); s < SeatCount; s++ {
			pd := p.playData[s]
			if s == p.curSeat || !slices.Contains(pd.winTiles, t) {
				continue
			}
			if pd.isRiichi {
				pd.isFuriten = true
			} else {
				pd.isFuritenOther = true
			}
		}
	}

	if p.lastRiichi != SeatNull {
		seat := p.lastRiichi
		p.game.GetPlayer(seat).AddScore(-RiichiStickScore)
		p.riichiSticks++
		p.lastRiichi = SeatNull
		p.game.OnRiichiEstablished(seat)
	}
}

// CancelPendingRiichi 荣和打断时撤销未成立的立直
func (p *Play) CancelPendingRiichi() {
	if p.lastRiichi == SeatNull {
		return
	}
	pd := p.playData[p.lastRiichi]
	pd.isRiichi = false
	pd.isDaburii = false
	pd.isIppatsu = false
	if pd.riichiIndex >= 0 && pd.riichiIndex < len(pd.outTiles) {
		pd.outTiles[pd.riichiIndex].Riichi = false
	}
	pd.riichiIndex = -1
	p.lastRiichi = SeatNull
}

func (p *Play) disableIppatsu() {
	for i := int32(0); i < SeatCount; i++ {
		p.playData[i].isIppatsu = false
	}
}

func (p *Play) revealPendingDora() {
	for ; p.pendingKanDora > 0; p.pendingKanDora-- {
		p.revealDora()
	}
}

func (p *Play) revealDora() {
	if tile := p.dealer.RevealDora(); tile != TileNull {
		p.game.OnDoraRevealed(tile)
	}
}

// checkPao 碰/杠使大三元或大四喜成型时, 放出者承担包牌
func (p *Play) checkPao(seat int32, tile Tile, from int32) {
	pd := p.playData[seat]
	t := tile.Normalize()
	if t.IsDragon() {
		cnt := 0
		for _, m := range pd.melds {
			if m.Tiles[0].Normalize().IsDragon() {
				cnt++
			}
		}
		if cnt == 3 {
			p.pao[seat] = from
		}
		return
	}
	if t.IsWind() {
		cnt := 0
		for _, m := range pd.melds {
			if m.Tiles[0].Normalize().IsWind() {
				cnt++
			}
		}
		if cnt == 4 {
			p.pao[seat] = from
		}
	}
}

// isSuufuurenda 四风连打: 第一巡四家打出同一风牌且无副露
func (p *Play) isSuufuurenda() bool {
	var first Tile
	for i := int32(0); i < SeatCount; i++ {
		pd := p.playData[i]
		if len(pd.melds) != 0 || len(pd.nukidoras) != 0 || len(pd.outTiles) != 1 {
			return false
		}
		t := pd.outTiles[0].Tile
		if !t.IsWind() {
			return false
		}
		if i == 0 {
			first = t
		} else if t != first {
			return false
		}
	}
	return true
}

// isNoMeldTurn1 第一巡且无任何副露
func (p *Play) isNoMeldTurn1(seat int32) bool {
	if len(p.playData[seat].outTiles) != 0 {
		return false
	}
	for i := int32(0); i < SeatCount; i++ {
		if len(p.playData[i].melds) != 0 || len(p.playData[i].nukidoras) != 0 {
			return false
		}
	}
	return true
}

// EvaluateTsumo 自摸和了计分, 未和或无役返回nil
func (p *Play) EvaluateTsumo(seat int32) *ScoreContext {
	pd := p.playData[seat]
	if pd.drawnTile == TileNull {
		return nil
	}
	if !slices.Contains(pd.winTiles, pd.drawnTile.Normalize()) {
		return nil
	}

	flags := YakuFlags{
		Menzentsumo: pd.isMenzen,
		Riichi:      pd.isRiichi && !pd.isDaburii,
		Daburii:     pd.isDaburii,
		Ippatsu:     pd.isIppatsu,
		Haitei:      p.dealer.GetRestCount() == 0,
		Rinshan:     pd.isRinshan,
		Kuitan:      p.rule.Kuitan,
	}
	if p.isNoMeldTurn1(seat) {
		if p.IsDealer(seat) {
			flags.Tenhou = true
		} else {
			flags.Chiihou = true
		}
	}

	var uras []Tile
	if pd.isRiichi && p.rule.UraDora {
		uras = p.dealer.UraIndicators()
	}
	return EvaluateHand(pd.HandTable(), pd.melds, p.dealer.DoraIndicators(), uras,
		pd.drawnTile, true, p.IsDealer(seat), p.PrevalentWind(), p.SeatWind(seat), flags)
}

// EvaluateRon 荣和计分, 含抢杠; 振听或无役返回nil
func (p *Play) EvaluateRon(seat int32) *ScoreContext {
	if seat == p.curSeat {
		return nil
	}
	pd := p.playData[seat]
	if pd.IsFuriten() {
		return nil
	}
	if !slices.Contains(pd.winTiles, p.curTile.Normalize()) {
		return nil
	}

	hand := pd.HandTable()
	hand.Inc(p.curTile)

	flags := YakuFlags{
		Riichi:  pd.isRiichi && !pd.isDaburii,
		Daburii: pd.isDaburii,
		Ippatsu: pd.isIppatsu,
		Kuitan:  p.rule.Kuitan,
	}
	switch p.lastTileType {
	case OperateDiscard:
		flags.Houtei = p.dealer.GetRestCount() == 0
	case OperateKakan:
		flags.Chankan = true
	case OperateAnkan:
		// 暗杠只可抢国士
		if len(ParseKokushiWin(hand)) == 0 {
			return nil
		}
		flags.Chankan = true
	default:
		return nil
	}

	var uras []Tile
	if pd.isRiichi && p.rule.UraDora {
		uras = p.dealer.UraIndicators()
	}
	return EvaluateHand(hand, pd.melds, p.dealer.DoraIndicators(), uras,
		p.curTile, false, p.IsDealer(seat), p.PrevalentWind(), p.SeatWind(seat), flags)
}

// RiichiTenpais 当前座位立直可选的打牌与听牌信息
func (p *Play) RiichiTenpais(seat int32) []TenpaiInfo {
	pd := p.playData[seat]
	discards := make([]Tile, 0, len(pd.outTiles))
	for _, d := range pd.outTiles {
		discards = append(discards, d.Tile)
	}
	return EvaluateTenpaiDiscards(pd.HandTable(), pd.melds, p.PrevalentWind(), p.SeatWind(seat), discards)
}

// FetchSelfOperates 摸牌后可执行的操作
func (p *Play) FetchSelfOperates() *ActionSet {
	opt := NewActionSet(p.curSeat)
	for _, c := range p.selfCheckers {
		c.Check(p, opt)
	}
	return opt
}

// FetchWaitOperates 他家打牌/加杠后seat可执行的操作
func (p *Play) FetchWaitOperates(seat int32) *ActionSet {
	if seat == p.curSeat {
		return nil
	}
	opt := NewActionSet(seat)
	for _, c := range p.waitCheckers {
		c.Check(p, seat, opt)
	}
	if opt.Operates.Empty() {
		return nil
	}
	return opt
}

// RestrictedDiscards 吃/碰后的食替禁打牌
func (p *Play) RestrictedDiscards(seat int32) []Tile {
	pd := p.playData[seat]
	if len(pd.melds) == 0 {
		return nil
	}
	return p.restrictedForMeld(pd.melds[len(pd.melds)-1])
}

func (p *Play) restrictedForMeld(m *Meld) []Tile {
	var v []Tile
	switch m.Type {
	case MeldPon:
		v = append(v, m.CalledTile.Normalize())
	case MeldChow:
		called := m.CalledTile.Normalize()
		if !p.rule.KuikaeStrict {
			v = append(v, called)
			break
		}
		var others []int
		for _, t := range m.Tiles {
			if tn := t.Normalize(); tn != called {
				others = append(others, tn.Point())
			}
		}
		if len(others) != 2 {
			return nil
		}
		lo, hi := min(others[0], others[1]), max(others[0], others[1])
		color := called.Color()
		if lo+1 == hi {
			// 两面/边张: 禁现物与筋牌
			if lo-1 >= 1 {
				v = append(v, MakeTile(color, lo-1))
			}
			if hi+1 <= 9 {
				v = append(v, MakeTile(color, hi+1))
			}
		} else {
			// 嵌张: 禁现物
			v = append(v, MakeTile(color, lo+1))
		}
	default:
		return nil
	}

	// 禁打含5时红五一并禁止
	for _, t := range v {
		if t.IsSuit() && t.Point() == 5 {
			v = append(v, MakeTile(t.Color(), 0))
			break
		}
	}
	return v
}

// IsAfterChowPon 最近一手是否为当前座位的吃/碰
func (p *Play) IsAfterChowPon() bool {
	if len(p.history) == 0 {
		return false
	}
	a := p.history[len(p.history)-1]
	return a.Seat == p.curSeat && (a.Type == OperateChow || a.Type == OperatePon)
}

// CountVisible 某座位视角下可见的某种牌数
func (p *Play) CountVisible(seat int32, tile Tile) int {
	t := tile.Normalize()
	n := 0
	for _, ind := range p.dealer.DoraIndicators() {
		if ind.Normalize() == t {
			n++
		}
	}
	for i := int32(0); i < SeatCount; i++ {
		pd := p.playData[i]
		for _, d := range pd.outTiles {
			// 被叫走的弃牌已计入对方副露
			if d.Called {
				continue
			}
			if d.Tile.Normalize() == t {
				n++
			}
		}
		for _, m := range pd.melds {
			for _, mt := range m.Tiles {
				if mt.Normalize() == t {
					n++
				}
			}
		}
		for _, k := range pd.nukidoras {
			if k.Normalize() == t {
				n++
			}
		}
	}
	for _, h := range p.playData[seat].handTiles {
		if h.Normalize() == t {
			n++
		}
	}
	return n
}

func (p *Play) addHistory(seat int32, tile Tile, op int32, tiles []Tile) {
	p.history = append(p.history, Action{Seat: seat, Tile: tile, Type: op, Tiles: tiles})
}

func (p *Play) History() []Action {
	return p.history
}
