package mahjong_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func evalClosed(t *testing.T, tiles string, win string, isDrawn, isDealer bool, flags mahjong.YakuFlags) *mahjong.ScoreContext {
	t.Helper()
	hand := mahjong.NewTileTable(mahjong.MustTiles(tiles))
	winTile, err := mahjong.ParseTile(win)
	require.NoError(t, err)
	return mahjong.EvaluateHand(hand, nil, nil, nil, winTile, isDrawn, isDealer,
		mahjong.PointEast, mahjong.PointEast, flags)
}

func TestEvaluatePinfuTsumoDealer(t *testing.T) {
	sc := evalClosed(t, "234m456m789p23455s", "4s", true, true,
		mahjong.YakuFlags{Menzentsumo: true})
	require.NotNil(t, sc)
	assert.Equal(t, 2, sc.Fan)
	assert.Equal(t, 20, sc.Fu)
	assert.Equal(t, int64(700), sc.Points.TsumoEach)
	assert.Equal(t, int64(2100), sc.Score)
	names := yakuNames(sc)
	assert.Contains(t, names, "平和")
	assert.Contains(t, names, "门前清自摸和")
}

func TestEvaluateRiichiIppatsuTanyao(t *testing.T) {
	// 222m暗刻荣和: 20+10+4=34切上40符
	sc := evalClosed(t, "222m345m456p67866s", "8s", false, false,
		mahjong.YakuFlags{Riichi: true, Ippatsu: true})
	require.NotNil(t, sc)
	assert.Equal(t, 3, sc.Fan)
	assert.Equal(t, 40, sc.Fu)
	assert.Equal(t, int64(5200), sc.Points.Ron)
	names := yakuNames(sc)
	assert.Contains(t, names, "立直")
	assert.Contains(t, names, "一发")
	assert.Contains(t, names, "断幺九")
}

func TestEvaluateKokushiDealerTsumo(t *testing.T) {
	sc := evalClosed(t, "119m19p19s123456z7z", "7z", true, true,
		mahjong.YakuFlags{Menzentsumo: true})
	require.NotNil(t, sc)
	assert.Equal(t, 1, sc.Yakuman)
	assert.Equal(t, int64(16000), sc.Points.TsumoEach)
	assert.Contains(t, yakuNames(sc), "国士无双")
}

func TestEvaluateKokushi13Wait(t *testing.T) {
	// 和牌前十三面单骑, 双倍役满
	sc := evalClosed(t, "119m19p19s1234567z", "1m", false, false, mahjong.YakuFlags{})
	require.NotNil(t, sc)
	assert.Equal(t, 2, sc.Yakuman)
	assert.Equal(t, int64(64000), sc.Points.Ron)
	assert.Contains(t, yakuNames(sc), "国士无双十三面")
}

func TestEvaluateChiitoitsu(t *testing.T) {
	sc := evalClosed(t, "1122m3344p5566s77z", "7z", false, false,
		mahjong.YakuFlags{Riichi: true})
	require.NotNil(t, sc)
	assert.Equal(t, 25, sc.Fu)
	assert.GreaterOrEqual(t, sc.Fan, 3)
	assert.Contains(t, yakuNames(sc), "七对子")
}

func TestEvaluateKuitanToggle(t *testing.T) {
	melds := []*mahjong.Meld{{
		Type:       mahjong.MeldPon,
		Tiles:      mahjong.MustTiles("555p"),
		From:       1,
		CalledTile: mahjong.MustTiles("5p")[0],
	}}
	hand := mahjong.NewTileTable(mahjong.MustTiles("234m567m456s88s"))
	win := mahjong.MustTiles("8s")[0]

	sc := mahjong.EvaluateHand(hand, melds, nil, nil, win, false, false,
		mahjong.PointEast, mahjong.PointSouth, mahjong.YakuFlags{Kuitan: true})
	require.NotNil(t, sc)
	assert.Contains(t, yakuNames(sc), "断幺九")
	assert.Equal(t, 1, sc.Fan)

	// 喰断无效时副露断幺九不成役
	sc = mahjong.EvaluateHand(hand, melds, nil, nil, win, false, false,
		mahjong.PointEast, mahjong.PointSouth, mahjong.YakuFlags{})
	assert.Nil(t, sc)
}

func TestEvaluatePrefersHigherShape(t *testing.T) {
	// 七对子与二杯口两解, 取高番形
	sc := evalClosed(t, "112233m445566p77s", "6p", false, false, mahjong.YakuFlags{})
	require.NotNil(t, sc)
	names := yakuNames(sc)
	assert.Contains(t, names, "二杯口")
	assert.Contains(t, names, "平和")
	assert.NotContains(t, names, "七对子")
	assert.Equal(t, 4, sc.Fan)
	assert.Equal(t, 30, sc.Fu)
	assert.Equal(t, int64(7700), sc.Points.Ron)
}

func TestEvaluateNoYaku(t *testing.T) {
	// 副露断幺外的无役荣和
	melds := []*mahjong.Meld{{
		Type:       mahjong.MeldChow,
		Tiles:      mahjong.MustTiles("123m"),
		From:       1,
		CalledTile: mahjong.MustTiles("1m")[0],
	}}
	hand := mahjong.NewTileTable(mahjong.MustTiles("456p789s99s1m23m"))
	winTile := mahjong.MustTiles("1m")[0]
	sc := mahjong.EvaluateHand(hand, melds, nil, nil, winTile, false, false,
		mahjong.PointEast, mahjong.PointSouth, mahjong.YakuFlags{})
	assert.Nil(t, sc)
}

func TestEvaluateDora(t *testing.T) {
	// 宝牌指示牌1s, 宝牌2s两张; 红五另计
	hand := mahjong.NewTileTable(mahjong.MustTiles("234m456m789p22055s"))
	winTile := mahjong.MustTiles("5s")[0]
	doras := mahjong.MustTiles("1s")
	sc := mahjong.EvaluateHand(hand, nil, doras, nil, winTile, true, false,
		mahjong.PointEast, mahjong.PointSouth, mahjong.YakuFlags{Menzentsumo: true})
	if sc == nil {
		t.Fatal("expected win")
	}
	names := yakuNames(sc)
	assert.Contains(t, names, "宝牌")
	assert.Contains(t, names, "红宝牌")
	assert.Equal(t, 4, sc.Fan) // 自摸+宝2+红宝1
}

func TestGetPoints(t *testing.T) {
	type Case struct {
		isDealer bool
		fu, fan  int
		yakuman  int
		ron      int64
	}
	testCases := []Case{
		{false, 30, 3, 0, 3900},
		{false, 30, 4, 0, 7700},
		{false, 30, 5, 0, 8000},
		{true, 30, 1, 0, 1500},
		{true, 30, 4, 0, 11600},
		{false, 25, 2, 0, 1600},
		{false, 0, 0, 1, 32000},
		{true, 0, 0, 2, 96000},
	}
	for _, tc := range testCases {
		got := mahjong.GetPoints(tc.isDealer, tc.fu, tc.fan, tc.yakuman)
		assert.Equal(t, tc.ron, got.Ron, "fu=%d fan=%d yakuman=%d", tc.fu, tc.fan, tc.yakuman)
	}
}

func TestGetScoreTitle(t *testing.T) {
	assert.Equal(t, "满贯", mahjong.GetScoreTitle(30, 5, 0))
	assert.Equal(t, "跳满", mahjong.GetScoreTitle(30, 6, 0))
	assert.Equal(t, "倍满", mahjong.GetScoreTitle(30, 8, 0))
	assert.Equal(t, "三倍满", mahjong.GetScoreTitle(30, 11, 0))
	assert.Equal(t, "累计役满", mahjong.GetScoreTitle(30, 13, 0))
	assert.Equal(t, "役满", mahjong.GetScoreTitle(0, 0, 1))
	assert.Equal(t, "两倍役满", mahjong.GetScoreTitle(0, 0, 2))
	assert.Equal(t, "", mahjong.GetScoreTitle(30, 2, 0))
}

func yakuNames(sc *mahjong.ScoreContext) []string {
	names := make([]string, 0, len(sc.Yakus))
	for _, y := range sc.Yakus {
		names = append(names, y.Name)
	}
	return names
}
