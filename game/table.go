package game

import (
	"context"
	"errors"
	"sync"

	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

var (
	ErrTableFull     = errors.New("table full")
	ErrTableNotReady = errors.New("table not ready")
	ErrTableRunning  = errors.New("table already running")
)

// Table 一张本地牌桌, 凑满四人后可开局
type Table struct {
	mu           sync.Mutex
	id           string
	rule         *mahjong.Rule
	seed         int64
	participants []*Participant
	listeners    []mahjong.Listener
	game         *mahjong.Game
	running      bool
	result       *mahjong.GameResult
}

func NewTable(id string, rule *mahjong.Rule, seed int64) *Table {
	if rule == nil {
		rule = mahjong.NewRule()
	}
	return &Table{id: id, rule: rule, seed: seed}
}

func (t *Table) ID() string {
	return t.id
}

// Join 入座, 座位按加入顺序分配
func (t *Table) Join(id string, actor mahjong.Actor) (*Participant, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.participants) >= mahjong.SeatCount {
		return nil, ErrTableFull
	}
	p := NewParticipant(id, actor)
	p.seat = int32(len(t.participants))
	t.participants = append(t.participants, p)
	return p, nil
}

func (t *Table) AddListener(l mahjong.Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Run 同步运行到终局
func (t *Table) Run(ctx context.Context) (*mahjong.GameResult, error) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil, ErrTableRunning
	}
	if len(t.participants) != mahjong.SeatCount {
		t.mu.Unlock()
		return nil, ErrTableNotReady
	}
	t.running = true
	g := mahjong.NewGame(t.rule, t.seed)
	for _, p := range t.participants {
		g.SetActor(p.seat, p.actor)
	}
	for _, l := range t.listeners {
		g.AddListener(l)
	}
	t.game = g
	t.mu.Unlock()

	result, err := g.Run(ctx)

	t.mu.Lock()
	t.running = false
	t.result = result
	t.mu.Unlock()
	if err != nil {
		logger.Log.Errorf("table %s aborted: %v", t.id, err)
		return nil, err
	}
	return result, nil
}

func (t *Table) Result() *mahjong.GameResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}
