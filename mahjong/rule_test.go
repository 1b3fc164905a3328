package mahjong_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestRuleDefaults(t *testing.T) {
	r := mahjong.NewRule()
	assert.Equal(t, int64(25000), r.InitScore)
	assert.Equal(t, 8, r.Rounds)
	assert.True(t, r.UraDora)
	assert.True(t, r.Kuitan)
	assert.True(t, r.KuikaeStrict)
	assert.True(t, r.TripleRonDraw)
	assert.True(t, r.BustEnds)
	assert.False(t, r.Nukidora)
}

func TestRuleOverlay(t *testing.T) {
	r := mahjong.NewRule()
	r.LoadRule(`{"ura_dora":false,"kuitan":false,"triple_ron_draw":false,"rounds":4}`)
	assert.False(t, r.UraDora)
	assert.False(t, r.Kuitan)
	assert.False(t, r.TripleRonDraw)
	assert.Equal(t, 4, r.Rounds)
	// 未覆盖的字段保留默认
	assert.Equal(t, int64(25000), r.InitScore)
	assert.True(t, r.KuikaeStrict)

	r.LoadRule("not-json")
	assert.Equal(t, 4, r.Rounds)
}
