package mahjong

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlay(t *testing.T) *Play {
	t.Helper()
	g := NewGame(NewRule(), 1)
	return NewPlay(g, 0, 0, 0, 0, 1)
}

func setHand(p *Play, seat int32, tiles string) {
	p.playData[seat].SetHandTiles(MustTiles(tiles))
	p.playData[seat].FreshWinTiles()
}

func TestRiichiBankedOnNextDraw(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 0, "123m456p789s12344z")
	p.curSeat = 0
	p.playData[0].PutHandTile(MustTiles("4z")[0])

	require.NoError(t, p.Discard(MustTiles("1z")[0], true))
	pd := p.playData[0]
	assert.True(t, pd.isRiichi)
	assert.True(t, pd.isIppatsu)
	assert.Equal(t, int32(0), p.lastRiichi)
	// 宣言后尚未扣分
	assert.Equal(t, int64(25000), p.game.GetPlayer(0).GetCurScore())

	_, err := p.DrawFor(1)
	require.NoError(t, err)
	assert.Equal(t, int64(24000), p.game.GetPlayer(0).GetCurScore())
	assert.Equal(t, int32(1), p.riichiSticks)
	assert.Equal(t, SeatNull, p.lastRiichi)
}

func TestRiichiRefundedOnRon(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 0, "123m456p789s12344z")
	p.curSeat = 0
	p.playData[0].PutHandTile(MustTiles("4z")[0])
	require.NoError(t, p.Discard(MustTiles("1z")[0], true))

	p.CancelPendingRiichi()
	pd := p.playData[0]
	assert.False(t, pd.isRiichi)
	assert.False(t, pd.isIppatsu)
	assert.Equal(t, int64(25000), p.game.GetPlayer(0).GetCurScore())
	assert.Equal(t, int32(0), p.riichiSticks)
}

func TestFuritenOnOwnDiscard(t *testing.T) {
	p := newTestPlay(t)
	// 听69s
	setHand(p, 0, "123m456p78s11122z")
	p.curSeat = 0
	p.playData[0].PutHandTile(MustTiles("9s")[0])

	// 打掉刚摸的9s, 手牌照旧听69s, 成舍张振听
	require.NoError(t, p.Discard(MustTiles("9s")[0], false))
	assert.True(t, p.playData[0].isFuriten)
}

func TestTemporaryFuritenOnPassedRon(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 2, "123m456p78s11122z") // 座位2听69s
	setHand(p, 0, "159m159p159s1234z")
	p.curSeat = 0
	p.playData[0].PutHandTile(MustTiles("6s")[0])

	require.NoError(t, p.Discard(MustTiles("6s")[0], false))
	// 座位2放过, 下家摸牌时成同巡振听
	_, err := p.DrawFor(1)
	require.NoError(t, err)
	assert.True(t, p.playData[2].isFuritenOther)
	assert.True(t, p.playData[2].IsFuriten())
	assert.False(t, p.playData[2].isFuriten)
	assert.Nil(t, p.EvaluateRon(2))

	// 到自己摸牌时解除
	_, err = p.DrawFor(2)
	require.NoError(t, err)
	assert.False(t, p.playData[2].IsFuriten())
}

func TestAnkanRevealsDoraImmediately(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 0, "1111m23456p11122z")
	p.curSeat = 0
	before := p.dealer.DoraCount()
	require.NoError(t, p.Ankan(MustTiles("1m")[0]))
	assert.Equal(t, before+1, p.dealer.DoraCount())
	assert.Equal(t, OperateAnkan, p.lastTileType)
}

func TestKakanDoraDeferredUntilDiscard(t *testing.T) {
	p := newTestPlay(t)
	pd := p.playData[0]
	pd.SetHandTiles(MustTiles("123m456p99s11122z"))
	require.True(t, pd.Pon(MustTiles("9s")[0], MustTiles("9s9s"), 1))
	pd.PutHandTile(MustTiles("9s")[0])
	p.curSeat = 0

	before := p.dealer.DoraCount()
	require.NoError(t, p.Kakan(MustTiles("9s")[0]))
	assert.Equal(t, before, p.dealer.DoraCount())
	assert.Equal(t, 1, p.pendingKanDora)

	// 抢杠窗口过后摸岭上并打牌, 才翻新宝牌
	_, err := p.DrawReplacementFor(0)
	require.NoError(t, err)
	require.NoError(t, p.Discard(TileNull, false))
	assert.Equal(t, before+1, p.dealer.DoraCount())
	assert.Equal(t, 0, p.pendingKanDora)
}

func TestKanConsumesLiveWall(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 0, "1111m23456p11122z")
	p.curSeat = 0
	before := p.dealer.GetRestCount()

	require.NoError(t, p.Ankan(MustTiles("1m")[0]))
	_, err := p.DrawReplacementFor(0)
	require.NoError(t, err)
	// 岭上补牌消耗一张可摸数, 海底前移
	assert.Equal(t, before-1, p.dealer.GetRestCount())
}

func TestFailedCallLeavesRiichiPending(t *testing.T) {
	p := newTestPlay(t)
	setHand(p, 0, "123m456p789s12344z")
	p.curSeat = 0
	p.playData[0].PutHandTile(MustTiles("4z")[0])
	require.NoError(t, p.Discard(MustTiles("1z")[0], true))

	// 座位2无牌可碰, 失败的叫牌不得结算立直棒或清一发
	require.Error(t, p.Pon(2, MustTiles("1z1z")))
	assert.Equal(t, int32(0), p.lastRiichi)
	assert.Equal(t, int64(25000), p.game.GetPlayer(0).GetCurScore())
	assert.True(t, p.playData[0].isIppatsu)
}

func TestUraDoraRuleToggle(t *testing.T) {
	p := newTestPlay(t)
	// 里宝牌指示牌3p, 里宝4p两张
	p.dealer.uras = MustTiles("3p")
	setHand(p, 0, "234m567m789m44p55p")
	p.curSeat = 0
	p.playData[0].isRiichi = true
	p.playData[0].PutHandTile(MustTiles("5p")[0])

	names := func(sc *ScoreContext) []string {
		v := make([]string, 0, len(sc.Yakus))
		for _, y := range sc.Yakus {
			v = append(v, y.Name)
		}
		return v
	}
	sc := p.EvaluateTsumo(0)
	require.NotNil(t, sc)
	assert.Contains(t, names(sc), "里宝牌")

	p.rule.UraDora = false
	sc = p.EvaluateTsumo(0)
	require.NotNil(t, sc)
	assert.NotContains(t, names(sc), "里宝牌")
}

func TestChankanOnKakan(t *testing.T) {
	p := newTestPlay(t)
	// 座位1听2p5p, 座位0加杠5p
	setHand(p, 1, "234m567m34p666s88s")
	pd0 := p.playData[0]
	pd0.SetHandTiles(MustTiles("123m789m11z55p2s"))
	require.True(t, pd0.Pon(MustTiles("5p")[0], MustTiles("5p5p"), 3))
	pd0.PutHandTile(MustTiles("5p")[0])
	p.curSeat = 0

	require.NoError(t, p.Kakan(MustTiles("5p")[0]))
	sc := p.EvaluateRon(1)
	require.NotNil(t, sc)
	names := make([]string, 0)
	for _, y := range sc.Yakus {
		names = append(names, y.Name)
	}
	assert.Contains(t, names, "抢杠")
}

func TestAnkanRobbableOnlyByKokushi(t *testing.T) {
	p := newTestPlay(t)
	// 座位1国士听1m
	p.playData[1].SetHandTiles(MustTiles("99m19p19s1234567z"))
	p.playData[1].FreshWinTiles()
	pd0 := p.playData[0]
	pd0.SetHandTiles(MustTiles("1111m23456p11122z"))
	p.curSeat = 0
	require.NoError(t, p.Ankan(MustTiles("1m")[0]))

	sc := p.EvaluateRon(1)
	require.NotNil(t, sc)
	assert.Equal(t, 1, sc.Yakuman)

	// 普通听牌不可抢暗杠
	p2 := newTestPlay(t)
	setHand(p2, 1, "23m456p789s11122z") // 听14m
	p2.playData[0].SetHandTiles(MustTiles("1111m23456p11122z"))
	p2.curSeat = 0
	require.NoError(t, p2.Ankan(MustTiles("1m")[0]))
	assert.Nil(t, p2.EvaluateRon(1))
}

func TestRestrictedDiscardsAfterChow(t *testing.T) {
	p := newTestPlay(t)
	pd := p.playData[1]
	pd.SetHandTiles(MustTiles("23m456789p11122z"))
	p.curSeat = 0
	p.curTile = MustTiles("1m")[0]
	p.lastTileType = OperateDiscard
	require.NoError(t, p.Chow(1, MustTiles("2m3m")))

	restricted := p.RestrictedDiscards(1)
	// 边张123m吃: 禁打1m与筋4m
	assert.Contains(t, restricted, MustTiles("1m")[0])
	assert.Contains(t, restricted, MustTiles("4m")[0])
	assert.NotContains(t, restricted, MustTiles("2m")[0])
}

func TestSuufuurenda(t *testing.T) {
	p := newTestPlay(t)
	east := MustTiles("1z")[0]
	for i := int32(0); i < SeatCount; i++ {
		p.playData[i].outTiles = append(p.playData[i].outTiles, DiscardInfo{Tile: east})
	}
	assert.True(t, p.isSuufuurenda())

	p.playData[2].outTiles[0].Tile = MustTiles("2z")[0]
	assert.False(t, p.isSuufuurenda())
}

func TestNagashimangan(t *testing.T) {
	p := newTestPlay(t)
	pd := p.playData[2]
	for _, s := range []string{"1m", "9p", "1z", "7z", "9s"} {
		pd.outTiles = append(pd.outTiles, DiscardInfo{Tile: MustTiles(s)[0]})
	}
	assert.True(t, pd.IsNagashi())
	pd.outTiles[2].Called = true
	assert.False(t, pd.IsNagashi())
}

func TestPonWithTwoRedFives(t *testing.T) {
	rule := NewRule()
	rule.RedFives = [3]int{2, 1, 1}
	g := NewGame(rule, 1)
	p := NewPlay(g, 0, 0, 0, 0, 1)
	pd := p.playData[1]
	pd.SetHandTiles(MustTiles("00m123p456s11122z"))
	pd.FreshWinTiles()
	p.curSeat = 0
	p.curTile = MustTiles("5m")[0]
	p.lastTileType = OperateDiscard

	opt := NewActionSet(1)
	(&CheckerPon{}).Check(p, 1, opt)
	require.True(t, opt.Has(OperatePon))
	red := MakeTile(ColorCharacter, 0)
	assert.Contains(t, opt.PonTiles, []Tile{red, red})
}

func TestCountVisibleSkipsCalledDiscard(t *testing.T) {
	p := newTestPlay(t)
	five := MustTiles("5m")[0]
	p.dealer.doras = MustTiles("1z")
	p.playData[1].SetHandTiles(MustTiles("55m123p456s11122z"))
	p.playData[0].outTiles = append(p.playData[0].outTiles, DiscardInfo{Tile: five})
	p.curSeat = 0
	p.curTile = five
	p.lastTileType = OperateDiscard

	require.NoError(t, p.Pon(1, MustTiles("5m5m")))
	// 被碰走的弃牌只按副露计一次
	assert.Equal(t, 3, p.CountVisible(2, five))
}

func TestMidGameTileConservation(t *testing.T) {
	p := newTestPlay(t)
	p.Deal()

	verify := func() {
		t.Helper()
		counts := make(map[Tile]int)
		total := 0
		add := func(tiles ...Tile) {
			for _, tile := range tiles {
				counts[tile.Normalize()]++
				total++
			}
		}
		add(p.dealer.tileWall...)
		add(p.dealer.doras...)
		add(p.dealer.uras...)
		add(p.dealer.rinshan...)
		for i := int32(0); i < SeatCount; i++ {
			pd := p.playData[i]
			add(pd.handTiles...)
			add(pd.nukidoras...)
			for _, m := range pd.melds {
				add(m.Tiles...)
			}
			for _, d := range pd.outTiles {
				if !d.Called {
					add(d.Tile)
				}
			}
		}
		require.Equal(t, TileCountWall, total)
		for tile, n := range counts {
			require.Equalf(t, 4, n, "tile %v", tile)
		}
	}

	verify()
	seat := p.banker
	for p.dealer.GetRestCount() > 40 {
		if p.playData[seat].drawnTile == TileNull {
			_, err := p.DrawFor(seat)
			require.NoError(t, err)
		}
		kan := TileNull
		hand := p.playData[seat].HandTable()
	search:
		for c := ColorBegin; c < ColorEnd; c++ {
			for pt := 1; pt <= PointCountByColor[c]; pt++ {
				if tile := MakeTile(c, pt); hand.Count(tile) == 4 {
					kan = tile
					break search
				}
			}
		}
		if kan != TileNull {
			require.NoError(t, p.Ankan(kan))
			_, err := p.DrawReplacementFor(seat)
			require.NoError(t, err)
		}
		require.NoError(t, p.Discard(TileNull, false))
		verify()
		seat = GetNextSeat(seat, 1, SeatCount)
	}

	for pt := 1; pt <= 9; pt++ {
		tile := MakeTile(ColorDot, pt)
		for s := int32(0); s < SeatCount; s++ {
			assert.LessOrEqual(t, p.CountVisible(s, tile), 4)
		}
	}
}

type eventTap struct {
	events []*Event
}

func (e *eventTap) OnEvent(ev *Event) {
	e.events = append(e.events, ev)
}

func (e *eventTap) find(typ EventType) *Event {
	for _, ev := range e.events {
		if ev.Type == typ {
			return ev
		}
	}
	return nil
}

func TestWinEventCarriesDeltas(t *testing.T) {
	g := NewGame(NewRule(), 1)
	tap := &eventTap{}
	g.AddListener(tap)
	g.play = NewPlay(g, 0, 0, 0, 0, 1)
	p := g.play
	setHand(p, 1, "123m456p78s11122z")
	p.curSeat = 0
	p.curTile = MustTiles("6s")[0]
	p.lastTileType = OperateDiscard

	NewStateWin(g, []int32{1}, false).OnEnter(context.Background())

	win := tap.find(EventWin)
	require.NotNil(t, win)
	require.Len(t, win.DeltaScores, SeatCount)
	assert.Positive(t, win.DeltaScores[1])
	assert.Equal(t, -win.DeltaScores[1], win.DeltaScores[0])
	assert.Equal(t, SeatNull, win.PaoSeat)
}

func TestRoundEndRevealsTenpai(t *testing.T) {
	g := NewGame(NewRule(), 1)
	tap := &eventTap{}
	g.AddListener(tap)
	g.play = NewPlay(g, 0, 0, 0, 0, 1)
	setHand(g.play, 0, "123m456p78s11122z")
	setHand(g.play, 1, "159m258p369s1234z")

	NewStateRoundEnd(g, DrawExhaustive).OnEnter(context.Background())

	end := tap.find(EventRoundEnd)
	require.NotNil(t, end)
	require.Len(t, end.Hands, SeatCount)
	assert.Len(t, end.Hands[0], 13)
	require.Len(t, end.TenpaiFlags, SeatCount)
	assert.True(t, end.TenpaiFlags[0])
	assert.False(t, end.TenpaiFlags[1])
	assert.Equal(t, []int64{3000, -1000, -1000, -1000}, end.DeltaScores)
}
