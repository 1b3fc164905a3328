package mahjong

const (
	OperateNone     int32 = -1
	OperatePass     int32 = 0         // 过
	OperateDiscard  int32 = 1 << iota // 出牌
	OperateChow                       // 吃
	OperatePon                        // 碰
	OperateMinkan                     // 明杠
	OperateAnkan                      // 暗杠
	OperateKakan                      // 加杠
	OperateRiichi                     // 立直
	OperateTsumo                      // 自摸
	OperateRon                        // 荣和
	OperateKyushu                     // 九种九牌
	OperateNukidora                   // 拔北
	OperateDraw                       // 摸牌, 仅记录用
)

var OperateNames = map[int32]string{
	OperatePass:     "Pass",
	OperateDiscard:  "Discard",
	OperateChow:     "Chow",
	OperatePon:      "Pon",
	OperateMinkan:   "Minkan",
	OperateAnkan:    "Ankan",
	OperateKakan:    "Kakan",
	OperateRiichi:   "Riichi",
	OperateTsumo:    "Tsumo",
	OperateRon:      "Ron",
	OperateKyushu:   "Kyushu",
	OperateNukidora: "Nukidora",
}

func GetOperateName(operate int32) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}

// Operates 可选操作集合
type Operates struct {
	Value int32
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) AddOperates(ops *Operates) {
	o.Value |= ops.Value
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Empty() bool {
	return o.Value == 0
}

func (o *Operates) Reset() {
	o.Value = 0
}

// ActionSet 某座位的可选操作及其附带选项
type ActionSet struct {
	Seat     int32
	Operates Operates

	ChowTiles  [][]Tile // 每组为吃时用掉的两张手牌
	PonTiles   [][]Tile // 每组为碰时用掉的两张手牌
	AnkanTiles []Tile   // 可暗杠的牌
	KakanTiles []Tile   // 可加杠的牌

	RiichiTenpais []TenpaiInfo // 立直可打的牌及听牌详情
	Restricted    []Tile       // 食替禁打牌
}

func NewActionSet(seat int32) *ActionSet {
	return &ActionSet{Seat: seat}
}

func (a *ActionSet) Add(op int32) {
	a.Operates.AddOperate(op)
}

func (a *ActionSet) Has(op int32) bool {
	return a.Operates.HasOperate(op)
}
