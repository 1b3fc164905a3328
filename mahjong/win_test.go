package mahjong_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestIsWin(t *testing.T) {
	type Case struct {
		tiles string
		want  bool
	}
	testCases := []Case{
		{"123m456p789s11122z", true},  // 三顺一刻一对
		{"111222333m44455p", true},    // 三连刻可作三顺
		{"11223344556677m", true},     // 二杯口形
		{"1122334455667m7p", false},   // 七对缺一对
		{"11m22p33s44m55p66s77m", true}, // 七对子
		{"19m19p19s12345677z", true},  // 国士无双
		{"19m19p19s12345667z", false}, // 国士缺中
		{"123m456p789s1112z", false},  // 差一张
		{"055m123456789s55p", false},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			hand := mahjong.NewTileTable(mahjong.MustTiles(tc.tiles))
			if got := mahjong.IsWin(hand); got != tc.want {
				t.Errorf("IsWin(%s) = %v, want %v", tc.tiles, got, tc.want)
			}
		})
	}
}

func TestWinningTiles(t *testing.T) {
	type Case struct {
		tiles string
		want  string
	}
	testCases := []Case{
		{"1112345678999m", "123456789m"}, // 九莲待九面
		{"123m456p789s1122z", "12z"},     // 双碰
		{"123m456p78s11122z", "69s"},     // 两面
		{"123m456p79s11122z", "8s"},      // 嵌张
		{"11m22p33s44m55p66s7m", "7m"},   // 七对单骑
		{"19m19p19s1234567z", "19m19p19s1234567z"}, // 国士十三面
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			hand := mahjong.NewTileTable(mahjong.MustTiles(tc.tiles))
			got := mahjong.WinningTiles(hand)
			want := mahjong.MustTiles(tc.want)
			slices.Sort(got)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("WinningTiles(%s) = %s, want %s", tc.tiles, mahjong.TilesString(got), tc.want)
			}
		})
	}
}

func TestTenpaiDiscards(t *testing.T) {
	// 14张打1张后听牌
	hand := mahjong.NewTileTable(mahjong.MustTiles("123m456p789s11122z"))
	got := mahjong.TenpaiDiscards(hand)
	if len(got) == 0 {
		t.Fatal("expected tenpai discards for winning shape")
	}
	for _, tw := range got {
		if len(tw.Wins) == 0 {
			t.Errorf("discard %v has no winning tiles", tw.Discard)
		}
	}
}

func TestTenpaiDiscardsNoten(t *testing.T) {
	hand := mahjong.NewTileTable(mahjong.MustTiles("159m159p159s1234z2m"))
	if got := mahjong.TenpaiDiscards(hand); len(got) != 0 {
		t.Errorf("expected no tenpai discards, got %d", len(got))
	}
}
