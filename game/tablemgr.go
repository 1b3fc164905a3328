package game

import (
	"sync"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// MatchManager 管理多张并行的牌桌
type MatchManager struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewMatchManager() *MatchManager {
	return &MatchManager{tables: make(map[string]*Table)}
}

func (m *MatchManager) Get(id string) *Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[id]
}

// LoadOrStore 获取或创建牌桌
func (m *MatchManager) LoadOrStore(id string, rule *mahjong.Rule, seed int64) *Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[id]; ok {
		return t
	}
	t := NewTable(id, rule, seed)
	m.tables[id] = t
	return t
}

func (m *MatchManager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, id)
}

func (m *MatchManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}
