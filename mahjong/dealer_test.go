package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestDealerConservation(t *testing.T) {
	rule := mahjong.NewRule()
	d := mahjong.NewDealer(rule, 42)

	counts := make(map[mahjong.Tile]int)
	reds := 0
	add := func(tiles ...mahjong.Tile) {
		for _, tile := range tiles {
			counts[tile.Normalize()]++
			if tile.IsRed5() {
				reds++
			}
		}
	}

	hands := d.Deal(0)
	total := 0
	for _, hand := range hands {
		if len(hand) != 13 {
			t.Fatalf("hand size = %d, want 13", len(hand))
		}
		add(hand...)
		total += len(hand)
	}

	for {
		tile, err := d.DrawTile()
		if err != nil {
			if !errors.Is(err, mahjong.ErrWallEmpty) {
				t.Fatal(err)
			}
			break
		}
		add(tile)
		total++
	}
	for i := 0; i < 4; i++ {
		tile, err := d.DrawReplacement()
		if err != nil {
			t.Fatal(err)
		}
		add(tile)
		total++
	}
	for i := 0; i < 4; i++ {
		d.RevealDora()
	}
	add(d.DoraIndicators()...)
	add(d.UraIndicators()...)
	total += len(d.DoraIndicators()) + len(d.UraIndicators())

	if total != mahjong.TileCountWall {
		t.Fatalf("total tiles = %d, want %d", total, mahjong.TileCountWall)
	}
	for tile, n := range counts {
		if n != 4 {
			t.Errorf("tile %v count = %d, want 4", tile, n)
		}
	}
	if reds != 3 {
		t.Errorf("red fives = %d, want 3", reds)
	}
}

func TestDealerReplacementShortensWall(t *testing.T) {
	rule := mahjong.NewRule()
	d := mahjong.NewDealer(rule, 5)
	d.Deal(0)

	before := d.GetRestCount()
	for i := 1; i <= 4; i++ {
		tile, err := d.DrawReplacement()
		if err != nil {
			t.Fatal(err)
		}
		if !tile.IsValid() {
			t.Fatalf("replacement tile %v invalid", tile)
		}
		if got := d.GetRestCount(); got != before-int32(i) {
			t.Fatalf("rest count after %d replacements = %d, want %d", i, got, before-int32(i))
		}
	}
}

func TestDealerDeterminism(t *testing.T) {
	rule := mahjong.NewRule()
	d1 := mahjong.NewDealer(rule, 7)
	d2 := mahjong.NewDealer(rule, 7)
	h1, h2 := d1.Deal(1), d2.Deal(1)
	for i := range h1 {
		if len(h1[i]) != len(h2[i]) {
			t.Fatal("hand sizes differ")
		}
		for j := range h1[i] {
			if h1[i][j] != h2[i][j] {
				t.Fatalf("seat %d tile %d differs", i, j)
			}
		}
	}
	if d1.DoraIndicators()[0] != d2.DoraIndicators()[0] {
		t.Error("dora indicators differ for same seed")
	}

	d3 := mahjong.NewDealer(rule, 8)
	h3 := d3.Deal(1)
	same := true
	for i := range h1 {
		for j := range h1[i] {
			if h1[i][j] != h3[i][j] {
				same = false
			}
		}
	}
	if same {
		t.Error("different seeds produced identical deals")
	}
}

func TestDealerDoraReveal(t *testing.T) {
	rule := mahjong.NewRule()
	d := mahjong.NewDealer(rule, 3)
	if n := len(d.DoraIndicators()); n != 1 {
		t.Fatalf("initial indicators = %d, want 1", n)
	}
	for i := 0; i < 10; i++ {
		d.RevealDora()
	}
	if n := len(d.DoraIndicators()); n != mahjong.DoraIndicatorMax {
		t.Fatalf("indicators capped at %d, got %d", mahjong.DoraIndicatorMax, n)
	}
	if n := len(d.UraIndicators()); n != mahjong.DoraIndicatorMax {
		t.Fatalf("ura indicators = %d, want %d", n, mahjong.DoraIndicatorMax)
	}
}
