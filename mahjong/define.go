package mahjong

const (
	TileNull Tile  = -1
	SeatNull int32 = -1
)

const (
	SeatCount = 4

	TileCountInitBanker = 14
	TileCountInitNormal = 13
	TileCountWall       = 136

	DoraIndicatorMax = 5
	DeadWallDoras    = 5
	DeadWallUras     = 5
	DeadWallRinshan  = 4

	RiichiStickScore = 1000
	HonbaTsumoScore  = 100
	HonbaRonScore    = 300
)

type EColor int32

const (
	ColorCharacter EColor = iota // 万
	ColorDot                     // 筒
	ColorBamboo                  // 条
	ColorHonor                   // 字
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 7}

// 字牌点数: 1-4风(东南西北), 5-7箭(白发中)
const (
	PointEast  = 1
	PointSouth = 2
	PointWest  = 3
	PointNorth = 4
	PointWhite = 5
	PointGreen = 6
	PointRed   = 7
)

var (
	TileEast  = MakeTile(ColorHonor, PointEast)
	TileSouth = MakeTile(ColorHonor, PointSouth)
	TileWest  = MakeTile(ColorHonor, PointWest)
	TileNorth = MakeTile(ColorHonor, PointNorth)
	TileWhite = MakeTile(ColorHonor, PointWhite)
	TileGreen = MakeTile(ColorHonor, PointGreen)
	TileRed   = MakeTile(ColorHonor, PointRed)
)

// Wind 1=东 2=南 3=西 4=北
type Wind = int

func WindTile(w Wind) Tile {
	return MakeTile(ColorHonor, w)
}

// PrevalentWind 场风, round从0开始连续编号
func PrevalentWind(round int) Wind {
	return round/SeatCount%SeatCount + 1
}

// SeatWind 自风
func SeatWind(banker, seat int32) Wind {
	return int((seat-banker+SeatCount)%SeatCount) + 1
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// SeatOffset 从from按出牌顺序数到to的距离
func SeatOffset(from, to int32) int32 {
	return (to - from + SeatCount) % SeatCount
}

type MeldType int32

const (
	MeldNone MeldType = iota
	MeldChow          // 吃
	MeldPon           // 碰
	MeldMinkan        // 明杠
	MeldAnkan         // 暗杠
	MeldKakan         // 加杠
)

// Meld From为被叫牌的来源座位, 暗杠时为自身
type Meld struct {
	Type       MeldType
	Tiles      []Tile
	From       int32
	CalledTile Tile
}

func (m *Meld) IsKon() bool {
	return m.Type == MeldMinkan || m.Type == MeldAnkan || m.Type == MeldKakan
}

// DrawType 流局类型
type DrawType int32

const (
	DrawNone        DrawType = iota
	DrawExhaustive           // 荒牌流局
	DrawNagashi              // 流局满贯
	DrawKyushu               // 九种九牌
	DrawSuufuurenda          // 四风连打
	DrawSuukansanra          // 四杠散了
	DrawSuuchariich          // 四家立直
	DrawSanchaho             // 三家和了
)

var drawTypeNames = map[DrawType]string{
	DrawExhaustive:  "荒牌流局",
	DrawNagashi:     "流局满贯",
	DrawKyushu:      "九种九牌",
	DrawSuufuurenda: "四风连打",
	DrawSuukansanra: "四杠散了",
	DrawSuuchariich: "四家立直",
	DrawSanchaho:    "三家和了",
}

func (d DrawType) String() string {
	if s, ok := drawTypeNames[d]; ok {
		return s
	}
	return ""
}

// Action 玩家的一次决策
type Action struct {
	Seat  int32
	Type  int32
	Tile  Tile
	Tiles []Tile // 吃碰杠的组牌, 立直时为可选的打牌
}
