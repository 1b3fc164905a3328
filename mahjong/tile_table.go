package mahjong

import "fmt"

// TileTable 手牌计数表
// 每行一个花色, 下标为点数; 数牌行的0号位记红五张数, 红五同时计入5号位
type TileTable [ColorEnd][10]int

func NewTileTable(tiles []Tile) *TileTable {
	t := &TileTable{}
	for _, tile := range tiles {
		t.Inc(tile)
	}
	return t
}

func (t *TileTable) Inc(tile Tile) {
	c, p := tile.Color(), tile.Point()
	if p == 0 {
		t[c][0]++
		t[c][5]++
		return
	}
	t[c][p]++
}

func (t *TileTable) Dec(tile Tile) error {
	c, p := tile.Color(), tile.Point()
	if p == 0 {
		if t[c][0] <= 0 {
			return fmt.Errorf("no red five %v to remove", tile)
		}
		t[c][0]--
		t[c][5]--
		return nil
	}
	if t[c][p] <= 0 {
		return fmt.Errorf("no tile %v to remove", tile)
	}
	// 普通五不足时动用红五
	if p == 5 && t[c][p] == t[c][0] {
		t[c][0]--
	}
	t[c][p]--
	return nil
}

// Count 同种牌总数, 红五与普通五合并计
func (t *TileTable) Count(tile Tile) int {
	c, p := tile.Color(), tile.NormalPoint()
	return t[c][p]
}

// CountPlain 不含红五的张数
func (t *TileTable) CountPlain(tile Tile) int {
	c, p := tile.Color(), tile.Point()
	if p == 0 {
		return t[c][0]
	}
	if p == 5 {
		return t[c][5] - t[c][0]
	}
	return t[c][p]
}

func (t *TileTable) RedCount(color EColor) int {
	return t[color][0]
}

func (t *TileTable) RedCountAll() int {
	n := 0
	for c := ColorCharacter; c <= ColorBamboo; c++ {
		n += t[c][0]
	}
	return n
}

func (t *TileTable) Has(tile Tile) bool {
	if tile.Point() == 0 {
		return t[tile.Color()][0] > 0
	}
	return t.CountPlain(tile) > 0
}

func (t *TileTable) Total() int {
	n := 0
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p < 10; p++ {
			n += t[c][p]
		}
	}
	return n
}

// Tiles 展开为牌列表, 五中先出红五
func (t *TileTable) Tiles() []Tile {
	tiles := make([]Tile, 0, t.Total())
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			n := t[c][p]
			if p == 5 {
				for range t[c][0] {
					tiles = append(tiles, MakeTile(c, 0))
				}
				n -= t[c][0]
			}
			for range n {
				tiles = append(tiles, MakeTile(c, p))
			}
		}
	}
	return tiles
}

// Kinds 出现过的牌种, 红五并入五
func (t *TileTable) Kinds() []Tile {
	kinds := make([]Tile, 0, 14)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 1; p <= PointCountByColor[c]; p++ {
			if t[c][p] > 0 {
				kinds = append(kinds, MakeTile(c, p))
			}
		}
	}
	return kinds
}

func (t *TileTable) Clone() *TileTable {
	n := *t
	return &n
}

// CountDora 按指示牌计算手牌内的宝牌数
func (t *TileTable) CountDora(indicators []Tile) int {
	n := 0
	for _, ind := range indicators {
		dora := ind.NextTile()
		n += t.Count(dora)
	}
	return n
}
