package mahjong

import (
	"slices"
)

// DiscardInfo 一次弃牌
type DiscardInfo struct {
	Tile      Tile
	Tsumogiri bool // 摸切
	Riichi    bool // 立直宣言牌
	Called    bool // 被他家叫走
}

// PlayData 单个座位的牌桌数据
type PlayData struct {
	seat      int32
	handTiles []Tile
	drawnTile Tile // 刚摸到的牌, 已计入handTiles
	outTiles  []DiscardInfo
	melds     []*Meld
	nukidoras []Tile

	winTiles       []Tile // 当前手牌的和了牌
	riichiIndex    int    // 立直宣言牌在outTiles的下标
	isMenzen       bool
	isRiichi       bool
	isDaburii      bool
	isIppatsu      bool
	isRinshan      bool
	isFuriten      bool // 舍张振听
	isFuritenOther bool // 同巡/立直见逃振听
}

func NewPlayData(seat int32) *PlayData {
	return &PlayData{
		seat:        seat,
		handTiles:   make([]Tile, 0, TileCountInitBanker),
		drawnTile:   TileNull,
		outTiles:    make([]DiscardInfo, 0, 24),
		melds:       make([]*Meld, 0, 4),
		riichiIndex: -1,
		isMenzen:    true,
	}
}

func (p *PlayData) Seat() int32 {
	return p.seat
}

func (p *PlayData) HandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) DrawnTile() Tile {
	return p.drawnTile
}

func (p *PlayData) Melds() []*Meld {
	return p.melds
}

func (p *PlayData) Nukidoras() []Tile {
	return p.nukidoras
}

func (p *PlayData) OutTiles() []DiscardInfo {
	return p.outTiles
}

func (p *PlayData) WinTiles() []Tile {
	return p.winTiles
}

func (p *PlayData) IsMenzen() bool {
	return p.isMenzen
}

func (p *PlayData) IsRiichi() bool {
	return p.isRiichi
}

func (p *PlayData) IsDaburii() bool {
	return p.isDaburii
}

func (p *PlayData) IsIppatsu() bool {
	return p.isIppatsu
}

func (p *PlayData) IsFuriten() bool {
	return p.isFuriten || p.isFuritenOther
}

// HandTable 手牌计数表, 含摸到的牌
func (p *PlayData) HandTable() *TileTable {
	return NewTileTable(p.handTiles)
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
	p.drawnTile = tile
}

func (p *PlayData) SetHandTiles(tiles []Tile) {
	p.handTiles = slices.Clone(tiles)
	p.drawnTile = TileNull
}

func (p *PlayData) removeHandTile(tile Tile, count int) bool {
	for range count {
		i := slices.Index(p.handTiles, tile)
		if i < 0 {
			return false
		}
		p.handTiles = slices.Delete(p.handTiles, i, i+1)
	}
	return true
}

// removeHandTileAnyRed 优先移除指定牌, 不足时在红五与普通五间替换
func (p *PlayData) removeHandTileAnyRed(tile Tile, count int) bool {
	for range count {
		if p.removeHandTile(tile, 1) {
			continue
		}
		var alt Tile
		if tile.IsRed5() {
			alt = tile.Normalize()
		} else if tile.IsSuit() && tile.Point() == 5 {
			alt = MakeTile(tile.Color(), 0)
		} else {
			return false
		}
		if !p.removeHandTile(alt, 1) {
			return false
		}
	}
	return true
}

// Discard 打出一张手牌
func (p *PlayData) Discard(tile Tile, riichi bool) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	tsumogiri := tile == p.drawnTile
	p.removeHandTile(tile, 1)
	if riichi {
		p.riichiIndex = len(p.outTiles)
	}
	p.outTiles = append(p.outTiles, DiscardInfo{Tile: tile, Tsumogiri: tsumogiri, Riichi: riichi})
	p.drawnTile = TileNull
	return true
}

// MarkLastOutCalled 最后一张弃牌被叫走
func (p *PlayData) MarkLastOutCalled() {
	if n := len(p.outTiles); n > 0 {
		p.outTiles[n-1].Called = true
	}
}

func (p *PlayData) canChow(tile Tile) bool {
	if !tile.IsSuit() {
		return false
	}
	t := tile.Normalize()
	has := func(point int) bool {
		if point < 1 || point > 9 {
			return false
		}
		want := MakeTile(t.Color(), point)
		return slices.ContainsFunc(p.handTiles, func(h Tile) bool {
			return h.Normalize() == want
		})
	}
	p0 := t.Point()
	return (has(p0-2) && has(p0-1)) || (has(p0-1) && has(p0+1)) || (has(p0+1) && has(p0+2))
}

func (p *PlayData) canPon(tile Tile) bool {
	t := tile.Normalize()
	n := 0
	for _, h := range p.handTiles {
		if h.Normalize() == t {
			n++
		}
	}
	return n >= 2
}

func (p *PlayData) canMinkan(tile Tile) bool {
	t := tile.Normalize()
	n := 0
	for _, h := range p.handTiles {
		if h.Normalize() == t {
			n++
		}
	}
	return n == 3
}

// Chow 吃上家弃牌, tiles为手中用掉的两张
func (p *PlayData) Chow(called Tile, tiles []Tile, from int32) bool {
	for _, t := range tiles {
		if !slices.Contains(p.handTiles, t) {
			return false
		}
	}
	for _, t := range tiles {
		p.removeHandTile(t, 1)
	}
	meld := &Meld{
		Type:       MeldChow,
		Tiles:      sortedMeldTiles(append([]Tile{called}, tiles...)),
		From:       from,
		CalledTile: called,
	}
	p.melds = append(p.melds, meld)
	p.isMenzen = false
	return true
}

// Pon 碰, tiles为手中用掉的两张
func (p *PlayData) Pon(called Tile, tiles []Tile, from int32) bool {
	for _, t := range tiles {
		if !p.removeHandTile(t, 1) {
			return false
		}
	}
	meld := &Meld{
		Type:       MeldPon,
		Tiles:      append([]Tile{called}, tiles...),
		From:       from,
		CalledTile: called,
	}
	p.melds = append(p.melds, meld)
	p.isMenzen = false
	return true
}

// Minkan 明杠他家弃牌
func (p *PlayData) Minkan(called Tile, from int32) bool {
	if !p.canMinkan(called) {
		return false
	}
	tiles := []Tile{called}
	t := called.Normalize()
	for _, h := range slices.Clone(p.handTiles) {
		if h.Normalize() == t {
			p.removeHandTile(h, 1)
			tiles = append(tiles, h)
		}
	}
	meld := &Meld{Type: MeldMinkan, Tiles: tiles, From: from, CalledTile: called}
	p.melds = append(p.melds, meld)
	p.isMenzen = false
	return true
}

// Ankan 暗杠手中四张
func (p *PlayData) Ankan(tile Tile) bool {
	t := tile.Normalize()
	tiles := make([]Tile, 0, 4)
	for _, h := range slices.Clone(p.handTiles) {
		if h.Normalize() == t {
			p.removeHandTile(h, 1)
			tiles = append(tiles, h)
		}
	}
	if len(tiles) != 4 {
		p.handTiles = append(p.handTiles, tiles...)
		return false
	}
	p.melds = append(p.melds, &Meld{Type: MeldAnkan, Tiles: tiles, From: p.seat, CalledTile: TileNull})
	return true
}

// Kakan 加杠已碰的牌, 原地升级碰副露
func (p *PlayData) Kakan(tile Tile) bool {
	t := tile.Normalize()
	for _, m := range p.melds {
		if m.Type != MeldPon || m.Tiles[0].Normalize() != t {
			continue
		}
		if !p.removeHandTileAnyRed(tile, 1) {
			return false
		}
		m.Type = MeldKakan
		m.Tiles = append(m.Tiles, tile)
		return true
	}
	return false
}

// Nukidora 拔北
func (p *PlayData) Nukidora() bool {
	if !p.removeHandTile(TileNorth, 1) {
		return false
	}
	p.nukidoras = append(p.nukidoras, TileNorth)
	return true
}

// FreshWinTiles 依13张形手牌重算和了牌
func (p *PlayData) FreshWinTiles() {
	p.winTiles = WinningTiles(p.HandTable())
}

// KanCount 杠的数量
func (p *PlayData) KanCount() int {
	n := 0
	for _, m := range p.melds {
		if m.IsKon() {
			n++
		}
	}
	return n
}

// IsNagashi 流局满贯形: 全部弃牌为幺九且未被叫走
func (p *PlayData) IsNagashi() bool {
	if len(p.outTiles) == 0 {
		return false
	}
	for _, d := range p.outTiles {
		if d.Called || !d.Tile.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func sortedMeldTiles(tiles []Tile) []Tile {
	slices.SortFunc(tiles, func(a, b Tile) int {
		return a.NormalPoint() - b.NormalPoint()
	})
	return tiles
}
