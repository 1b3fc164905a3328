package game_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-chtw/tw_riichi/bot"
	"github.com/kevin-chtw/tw_riichi/game"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

type eventCounter struct {
	mu     sync.Mutex
	counts map[mahjong.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[mahjong.EventType]int)}
}

func (c *eventCounter) OnEvent(ev *mahjong.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[ev.Type]++
}

func (c *eventCounter) count(t mahjong.EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}

// payloadChecker 校验结算类事件携带的摊牌与分数变动
type payloadChecker struct {
	t *testing.T
}

func (c *payloadChecker) OnEvent(ev *mahjong.Event) {
	switch ev.Type {
	case mahjong.EventWin:
		assert.Len(c.t, ev.DeltaScores, mahjong.SeatCount)
		assert.Positive(c.t, ev.DeltaScores[ev.Seat])
	case mahjong.EventRoundEnd:
		assert.Len(c.t, ev.Hands, mahjong.SeatCount)
		assert.Len(c.t, ev.TenpaiFlags, mahjong.SeatCount)
	}
}

func runFullMatch(t *testing.T, seed int64, actors [4]mahjong.Actor) *mahjong.GameResult {
	t.Helper()
	rule := mahjong.NewRule()
	tb := game.NewTable("t-"+strconv.FormatInt(seed, 10), rule, seed)
	for i, a := range actors {
		_, err := tb.Join("p"+strconv.Itoa(i), a)
		require.NoError(t, err)
	}
	counter := newEventCounter()
	tb.AddListener(counter)
	tb.AddListener(&payloadChecker{t: t})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	result, err := tb.Run(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, counter.count(mahjong.EventGameStart))
	assert.Equal(t, 1, counter.count(mahjong.EventGameEnd))
	assert.GreaterOrEqual(t, counter.count(mahjong.EventRoundStart), 1)
	return result
}

func checkResult(t *testing.T, result *mahjong.GameResult) {
	t.Helper()
	require.Len(t, result.Scores, mahjong.SeatCount)
	require.Len(t, result.Ranks, mahjong.SeatCount)

	// 总分守恒, 剩余立直棒已归首位
	var total int64
	for _, s := range result.Scores {
		total += s
	}
	assert.Equal(t, int64(mahjong.SeatCount)*25000, total)

	// 名次为1..4的排列, 且与分数一致
	seen := make(map[int32]bool)
	for _, r := range result.Ranks {
		assert.GreaterOrEqual(t, r, int32(1))
		assert.LessOrEqual(t, r, int32(mahjong.SeatCount))
		assert.False(t, seen[r])
		seen[r] = true
	}
	for i := 0; i < mahjong.SeatCount; i++ {
		for j := 0; j < mahjong.SeatCount; j++ {
			if result.Ranks[i] < result.Ranks[j] {
				assert.GreaterOrEqual(t, result.Scores[i], result.Scores[j])
			}
		}
	}
	assert.GreaterOrEqual(t, result.Rounds, 1)
}

func TestTableFullMatchNop(t *testing.T) {
	result := runFullMatch(t, 1, [4]mahjong.Actor{
		bot.NewNop(), bot.NewNop(), bot.NewNop(), bot.NewNop(),
	})
	checkResult(t, result)
}

func TestTableFullMatchMixed(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run("seed"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			result := runFullMatch(t, seed, [4]mahjong.Actor{
				bot.NewRandom(seed),
				bot.NewChiitoitsu(),
				bot.NewRandom(seed + 100),
				bot.NewNop(),
			})
			checkResult(t, result)
		})
	}
}

func TestTableJoinLimit(t *testing.T) {
	tb := game.NewTable("full", nil, 7)
	for i := 0; i < mahjong.SeatCount; i++ {
		_, err := tb.Join("p"+strconv.Itoa(i), bot.NewNop())
		require.NoError(t, err)
	}
	_, err := tb.Join("extra", bot.NewNop())
	assert.ErrorIs(t, err, game.ErrTableFull)
}

func TestTableRunNotReady(t *testing.T) {
	tb := game.NewTable("short", nil, 7)
	_, err := tb.Join("only", bot.NewNop())
	require.NoError(t, err)
	_, err = tb.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrTableNotReady)
}

func TestMatchManager(t *testing.T) {
	mgr := game.NewMatchManager()
	tb := mgr.LoadOrStore("a", nil, 1)
	require.NotNil(t, tb)
	assert.Same(t, tb, mgr.LoadOrStore("a", nil, 2))
	assert.Same(t, tb, mgr.Get("a"))
	assert.Equal(t, 1, mgr.Count())
	mgr.Delete("a")
	assert.Nil(t, mgr.Get("a"))
	assert.Equal(t, 0, mgr.Count())
}
