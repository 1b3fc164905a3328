package mahjong

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile 编码: color<<8 | point<<4 | 1
// 数牌point为1-9, 0表示红五; 字牌point为1-7
type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int32(color) << 8) | (int32(point) << 4) | 1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 {
		return false
	}
	c := t.Color()
	if c < ColorBegin || c >= ColorEnd {
		return false
	}
	p := t.Point()
	if c == ColorHonor {
		return p >= 1 && p <= PointCountByColor[c]
	}
	return p >= 0 && p <= PointCountByColor[c]
}

func (t Tile) IsRed5() bool {
	return t.IsSuit() && t.Point() == 0
}

// Normalize 红五转普通五, 其余不变
func (t Tile) Normalize() Tile {
	if t.IsRed5() {
		return MakeTile(t.Color(), 5)
	}
	return t
}

// NormalPoint 红五按5计
func (t Tile) NormalPoint() int {
	if t.IsRed5() {
		return 5
	}
	return t.Point()
}

func (t Tile) IsSuit() bool {
	return t > 0 && t.Color() >= ColorCharacter && t.Color() <= ColorBamboo
}

func (t Tile) IsHonor() bool {
	return t > 0 && t.Color() == ColorHonor
}

func (t Tile) IsWind() bool {
	return t.IsHonor() && t.Point() <= PointNorth
}

func (t Tile) IsDragon() bool {
	return t.IsHonor() && t.Point() >= PointWhite
}

func (t Tile) IsTerminal() bool {
	if !t.IsSuit() {
		return false
	}
	p := t.NormalPoint()
	return p == 1 || p == 9
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.IsTerminal()
}

// IsSimple 中张牌(2-8)
func (t Tile) IsSimple() bool {
	return t.IsSuit() && !t.IsTerminal()
}

// IsGreen 绿一色构成牌: 条子23468与发
func (t Tile) IsGreen() bool {
	if t == TileGreen {
		return true
	}
	if t.Color() != ColorBamboo {
		return false
	}
	switch t.NormalPoint() {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// NextTile 宝牌指示的下一张: 9接1, 北接东, 中接白
func (t Tile) NextTile() Tile {
	c := t.Color()
	p := t.NormalPoint()
	if c == ColorHonor {
		if p <= PointNorth {
			return MakeTile(c, p%4+1)
		}
		return MakeTile(c, (p-PointWhite+1)%3+PointWhite)
	}
	return MakeTile(c, p%9+1)
}

var colorLetters = [ColorEnd]string{"m", "p", "s", "z"}

// String 数字+花色字母, 红五记为0
func (t Tile) String() string {
	if !t.IsValid() {
		return "??"
	}
	return strconv.Itoa(t.Point()) + colorLetters[t.Color()]
}

func GetTileName(t Tile) string {
	if !t.IsValid() {
		return ""
	}
	switch t.Color() {
	case ColorCharacter:
		return strconv.Itoa(t.NormalPoint()) + "万"
	case ColorDot:
		return strconv.Itoa(t.NormalPoint()) + "筒"
	case ColorBamboo:
		return strconv.Itoa(t.NormalPoint()) + "条"
	case ColorHonor:
		names := []string{"东", "南", "西", "北", "白", "发", "中"}
		return names[t.Point()-1]
	default:
		return ""
	}
}

func GetTilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, GetTileName(tile))
	}
	return strings.Join(tileNames, ", ")
}

func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}

func colorByLetter(ch byte) (EColor, bool) {
	switch ch {
	case 'm':
		return ColorCharacter, true
	case 'p':
		return ColorDot, true
	case 's':
		return ColorBamboo, true
	case 'z':
		return ColorHonor, true
	}
	return ColorEnd, false
}

// ParseTile 解析"5m" "0p" "3z"形式
func ParseTile(s string) (Tile, error) {
	if len(s) != 2 {
		return TileNull, fmt.Errorf("invalid tile %q", s)
	}
	tiles, err := ParseTiles(s)
	if err != nil {
		return TileNull, err
	}
	return tiles[0], nil
}

// ParseTiles 解析"123m044p7z"形式, 数字后跟花色字母
func ParseTiles(s string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(s))
	points := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			points = append(points, int(ch-'0'))
			continue
		}
		color, ok := colorByLetter(ch)
		if !ok || len(points) == 0 {
			return nil, fmt.Errorf("invalid tiles %q", s)
		}
		for _, p := range points {
			t := MakeTile(color, p)
			if !t.IsValid() {
				return nil, fmt.Errorf("invalid tile %d%c in %q", p, ch, s)
			}
			tiles = append(tiles, t)
		}
		points = points[:0]
	}
	if len(points) != 0 {
		return nil, fmt.Errorf("trailing digits in %q", s)
	}
	return tiles, nil
}

// MustTiles 测试与配置用, 非法串panic
func MustTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}
