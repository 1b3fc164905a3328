package mahjong

// YakuContext 单一分解形的役判定上下文
type YakuContext struct {
	hand          *TileTable // 门前手牌(含和了牌, 不含副露)
	parsedHand    ParsedHand // 含副露的全部面子
	pairTile      Tile
	winningTile   Tile
	isSelfDrawn   bool
	isOpen        bool
	prevalentWind Wind
	seatWind      Wind
	flags         YakuFlags
	counts        setCounts
	iipeikouCount int
	yakuhaiCheck  [10]int // 役牌面子计数, 按字牌点数索引
}

// YakuFlags 与牌型无关的役与规则开关, 由外部设置
type YakuFlags struct {
	Menzentsumo bool
	Riichi      bool
	Daburii     bool
	Ippatsu     bool
	Haitei      bool
	Houtei      bool
	Rinshan     bool
	Chankan     bool
	Tenhou      bool
	Chiihou     bool
	Kuitan      bool // 副露断幺九有效
}

type setCounts struct {
	pair         int
	shuntsu      int
	koutsu       int
	chow         int
	pon          int
	minkan       int
	ankan        int
	shuntsuTotal int // shuntsu + chow
	koutsuTotal  int // koutsu + pon + minkan + ankan
	ankouTotal   int // koutsu + ankan
	kantsuTotal  int // minkan + ankan
	tis          [ColorEnd]int
	nis          [10]int // 数牌点数计数, 不含字牌
}

func NewYakuContext(hand *TileTable, ph ParsedHand, winningTile Tile, prevalentWind, seatWind Wind, isSelfDrawn bool, flags YakuFlags) *YakuContext {
	ctx := &YakuContext{
		hand:          hand,
		parsedHand:    ph,
		pairTile:      getPair(ph),
		winningTile:   winningTile.Normalize(),
		isSelfDrawn:   isSelfDrawn,
		prevalentWind: prevalentWind,
		seatWind:      seatWind,
		flags:         flags,
	}
	ctx.counts = countSets(ph)
	ctx.iipeikouCount = countIipeikou(ph)
	ctx.yakuhaiCheck = checkYakuhai(ph)
	ctx.isOpen = ctx.counts.chow+ctx.counts.pon+ctx.counts.minkan != 0
	return ctx
}

func getPair(ph ParsedHand) Tile {
	for _, s := range ph {
		if s.Type == SetPair {
			return s.Tile
		}
	}
	return TileNull // 国士无双无雀头
}

func countSets(ph ParsedHand) setCounts {
	var cnt setCounts
	for _, s := range ph {
		switch s.Type {
		case SetPair:
			cnt.pair++
		case SetShuntsu:
			cnt.shuntsu++
		case SetKoutsu:
			cnt.koutsu++
		case SetChow:
			cnt.chow++
		case SetPon:
			cnt.pon++
		case SetMinkan:
			cnt.minkan++
		case SetAnkan:
			cnt.ankan++
		}
		cnt.tis[s.Tile.Color()]++
		if s.Tile.IsSuit() {
			cnt.nis[s.Tile.Point()]++
		}
	}
	cnt.shuntsuTotal = cnt.shuntsu + cnt.chow
	cnt.koutsuTotal = cnt.koutsu + cnt.pon + cnt.minkan + cnt.ankan
	cnt.ankouTotal = cnt.koutsu + cnt.ankan
	cnt.kantsuTotal = cnt.minkan + cnt.ankan
	return cnt
}

func countIipeikou(ph ParsedHand) int {
	n := 0
	var shuntsu TileTable
	for _, s := range ph {
		if s.Type != SetShuntsu {
			continue
		}
		shuntsu[s.Tile.Color()][s.Tile.Point()]++
		if shuntsu[s.Tile.Color()][s.Tile.Point()] == 2 {
			n++
		}
	}
	return n
}

func checkYakuhai(ph ParsedHand) [10]int {
	var tr [10]int
	for _, s := range ph {
		switch s.Type {
		case SetKoutsu, SetPon, SetMinkan, SetAnkan:
			if s.Tile.IsHonor() {
				tr[s.Tile.Point()]++
			}
		}
	}
	return tr
}

// Yaku 役定义, 食い下がり在FanOpen体现, 役满记13以上
type Yaku struct {
	Name     string
	check    func(*YakuContext) bool
	FanClose int
	FanOpen  int
}

var YakuList = []Yaku{
	{"场风", isBakaze, 1, 1},
	{"自风", isJikaze, 1, 1},
	{"白", isHaku, 1, 1},
	{"发", isHatsu, 1, 1},
	{"中", isChun, 1, 1},
	{"断幺九", isTanyao, 1, 1},
	{"平和", isPinfu, 1, 0},
	{"一杯口", isIipeikou, 1, 0},
	{"二杯口", isRyanpeikou, 3, 0},
	{"一气通贯", isIkkitsuukan, 2, 1},
	{"三色同顺", isSanshokuDoujun, 2, 1},
	{"三色同刻", isSanshokuDoukou, 2, 2},
	{"混全带幺九", isChanta, 2, 1},
	{"纯全带幺九", isJunchan, 3, 2},
	{"混老头", isHonroutou, 2, 2},
	{"清老头", isChinroutou, 13, 13},
	{"对对和", isToitoi, 2, 2},
	{"三暗刻", isSanankou, 2, 2},
	{"四暗刻", isSuuankou, 13, 0},
	{"四暗刻单骑", isSuuankouTanki, 14, 0},
	{"三杠子", isSankantsu, 2, 2},
	{"四杠子", isSuukantsu, 13, 13},
	{"混一色", isHoniisou, 3, 2},
	{"清一色", isChiniisou, 6, 5},
	{"小三元", isShousangen, 2, 2},
	{"大三元", isDaisangen, 13, 13},
	{"小四喜", isShousuushii, 13, 13},
	{"大四喜", isDaisuushii, 14, 14},
	{"绿一色", isRyuuiisou, 13, 13},
	{"字一色", isTsuuiisou, 13, 13},
	{"九莲宝灯", isChuuren, 13, 0},
	{"纯正九莲宝灯", isJunseiChuuren, 14, 0},
	{"国士无双", isKokushi, 13, 0},
	{"国士无双十三面", isKokushi13, 14, 0},
	{"七对子", isChiitoitsu, 2, 0},
	{"门前清自摸和", isMenzentsumo, 1, 0},
	{"立直", isRiichiYaku, 1, 0},
	{"两立直", isDaburii, 2, 0},
	{"一发", isIppatsu, 1, 0},
	{"海底捞月", isHaitei, 1, 1},
	{"河底捞鱼", isHoutei, 1, 1},
	{"岭上开花", isRinshan, 1, 1},
	{"抢杠", isChankan, 1, 1},
	{"天和", isTenhou, 1, 1},
	{"地和", isChiihou, 1, 1},
}

// CalcYaku 返回(役列表, 是否役满, 番数或役满倍数)
// 含役满时仅保留役满役, 倍数为各役满(FanClose-12)之和
func (ctx *YakuContext) CalcYaku() ([]*Yaku, bool, int) {
	var yaku []*Yaku
	for i := range YakuList {
		y := &YakuList[i]
		if y.check(ctx) {
			yaku = append(yaku, y)
		}
	}

	var yakuman []*Yaku
	for _, y := range yaku {
		if y.FanClose >= 13 {
			yakuman = append(yakuman, y)
		}
	}
	if len(yakuman) > 0 {
		m := 0
		for _, y := range yakuman {
			m += y.FanClose - 12
		}
		return yakuman, true, m
	}

	m := 0
	for _, y := range yaku {
		if ctx.isOpen {
			m += y.FanOpen
		} else {
			m += y.FanClose
		}
	}
	return yaku, false, m
}

// CalcFu 符数计算, 平和20七对25, 其余切上到10
func (ctx *YakuContext) CalcFu() int {
	if isPinfu(ctx) {
		if ctx.isSelfDrawn {
			return 20
		}
		return 30 // 门前荣和
	}
	if isChiitoitsu(ctx) {
		return 25
	}

	fu := 20 // 副底
	if ctx.isSelfDrawn {
		fu += 2
	} else if !ctx.isOpen {
		fu += 10 // 门前荣和
	}

	for _, s := range ctx.parsedHand {
		t := s.Tile
		switch s.Type {
		case SetPair:
			if t.IsTerminal() || t.IsDragon() {
				fu += 2
			} else if t.IsHonor() {
				if t.Point() == ctx.prevalentWind || t.Point() == ctx.seatWind {
					fu += 2
				}
			}
		case SetKoutsu:
			fu += fuBySimple(t, 4)
		case SetPon:
			fu += fuBySimple(t, 2)
		case SetMinkan:
			fu += fuBySimple(t, 8)
		case SetAnkan:
			fu += fuBySimple(t, 16)
		}
	}

	if !ctx.isRyanmenOrShanpon() {
		fu += 2
	}
	return (fu + 9) / 10 * 10
}

func fuBySimple(t Tile, base int) int {
	if t.IsTerminalOrHonor() {
		return base * 2
	}
	return base
}

// isRyanmenOrShanpon 两面或双碰以外的待子加2符
func (ctx *YakuContext) isRyanmenOrShanpon() bool {
	wt := ctx.winningTile
	for _, s := range ctx.parsedHand {
		t := s.Tile
		switch s.Type {
		case SetShuntsu:
			if t.Color() == wt.Color() &&
				(t.Point() == wt.Point() || (wt.Point() > 2 && t.Point() == wt.Point()-2)) {
				return true
			}
		case SetKoutsu:
			if t == wt {
				return true
			}
		}
	}
	return false
}

// 役判定 ====================================================================

func isBakaze(ctx *YakuContext) bool {
	return ctx.yakuhaiCheck[ctx.prevalentWind] == 1
}

func isJikaze(ctx *YakuContext) bool {
	return ctx.yakuhaiCheck[ctx.seatWind] == 1
}

func isHaku(ctx *YakuContext) bool {
	return ctx.yakuhaiCheck[PointWhite] == 1
}

func isHatsu(ctx *YakuContext) bool {
	return ctx.yakuhaiCheck[PointGreen] == 1
}

func isChun(ctx *YakuContext) bool {
	return ctx.yakuhaiCheck[PointRed] == 1
}

func isTanyao(ctx *YakuContext) bool {
	if len(ctx.parsedHand) == 0 {
		return false // 国士
	}
	if ctx.isOpen && !ctx.flags.Kuitan {
		return false
	}
	for _, s := range ctx.parsedHand {
		switch s.Type {
		case SetChow, SetShuntsu:
			if s.Tile.Point() == 1 || s.Tile.Point() == 7 {
				return false
			}
		default:
			if s.Tile.IsTerminalOrHonor() {
				return false
			}
		}
	}
	return true
}

func isPinfu(ctx *YakuContext) bool {
	if ctx.counts.shuntsu != 4 {
		return false
	}
	pt := ctx.pairTile
	if pt.IsHonor() {
		if pt.IsDragon() || pt.Point() == ctx.prevalentWind || pt.Point() == ctx.seatWind {
			return false
		}
	}

	wt := ctx.winningTile
	if wt.IsHonor() {
		return false
	}
	for _, s := range ctx.parsedHand {
		if s.Type != SetShuntsu {
			continue
		}
		t := s.Tile
		if t.Color() == wt.Color() &&
			(t.Point() == wt.Point() || (wt.Point() > 2 && t.Point() == wt.Point()-2)) {
			return true
		}
	}
	return false
}

func isIipeikou(ctx *YakuContext) bool {
	return !ctx.isOpen && ctx.iipeikouCount == 1
}

func isRyanpeikou(ctx *YakuContext) bool {
	return !ctx.isOpen && ctx.iipeikouCount == 2
}

func isIkkitsuukan(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal < 3 {
		return false
	}
	var f147 [3]bool
	for _, s := range ctx.parsedHand {
		if s.Type != SetShuntsu && s.Type != SetChow {
			continue
		}
		t := s.Tile
		if ctx.counts.tis[t.Color()] >= 3 {
			switch t.Point() {
			case 1, 4, 7:
				f147[t.Point()/3] = true
			}
		}
	}
	return f147[0] && f147[1] && f147[2]
}

func isSanshokuDoujun(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal < 3 {
		return false
	}
	var mps [3]bool
	for _, s := range ctx.parsedHand {
		if s.Type != SetShuntsu && s.Type != SetChow {
			continue
		}
		if s.Tile.IsSuit() && ctx.counts.nis[s.Tile.Point()] >= 3 {
			mps[s.Tile.Color()] = true
		}
	}
	return mps[0] && mps[1] && mps[2]
}

func isSanshokuDoukou(ctx *YakuContext) bool {
	if ctx.counts.koutsuTotal < 3 {
		return false
	}
	var mps [3]bool
	for _, s := range ctx.parsedHand {
		switch s.Type {
		case SetKoutsu, SetPon, SetMinkan, SetAnkan:
			if s.Tile.IsSuit() && ctx.counts.nis[s.Tile.Point()] >= 3 {
				mps[s.Tile.Color()] = true
			}
		}
	}
	return mps[0] && mps[1] && mps[2]
}

func isChanta(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal == 0 {
		return false
	}
	hasHonor := false
	for _, s := range ctx.parsedHand {
		switch s.Type {
		case SetShuntsu, SetChow:
			if s.Tile.Point() != 1 && s.Tile.Point() != 7 {
				return false
			}
		default:
			if s.Tile.IsHonor() {
				hasHonor = true
			} else if !s.Tile.IsTerminal() {
				return false
			}
		}
	}
	return hasHonor
}

func isJunchan(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal == 0 {
		return false
	}
	for _, s := range ctx.parsedHand {
		switch s.Type {
		case SetShuntsu, SetChow:
			if s.Tile.Point() != 1 && s.Tile.Point() != 7 {
				return false
			}
		default:
			if !s.Tile.IsTerminal() {
				return false
			}
		}
	}
	return true
}

func isHonroutou(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal != 0 {
		return false
	}
	hasHonor, hasTerminal := false, false
	for _, s := range ctx.parsedHand {
		if s.Tile.IsHonor() {
			hasHonor = true
		} else if s.Tile.IsTerminal() {
			hasTerminal = true
		} else {
			return false
		}
	}
	return hasHonor && hasTerminal
}

func isChinroutou(ctx *YakuContext) bool {
	if ctx.counts.shuntsuTotal != 0 {
		return false
	}
	hasTerminal := false
	for _, s := range ctx.parsedHand {
		if !s.Tile.IsTerminal() {
			return false
		}
		hasTerminal = true
	}
	return hasTerminal
}

func isToitoi(ctx *YakuContext) bool {
	return ctx.counts.koutsuTotal == 4
}

func isSanankou(ctx *YakuContext) bool {
	return ctx.counts.ankouTotal == 3
}

func isSuuankou(ctx *YakuContext) bool {
	return ctx.counts.ankouTotal == 4 && ctx.winningTile != ctx.pairTile && ctx.isSelfDrawn
}

func isSuuankouTanki(ctx *YakuContext) bool {
	return ctx.counts.ankouTotal == 4 && ctx.winningTile == ctx.pairTile
}

func isSankantsu(ctx *YakuContext) bool {
	return ctx.counts.kantsuTotal == 3
}

func isSuukantsu(ctx *YakuContext) bool {
	return ctx.counts.kantsuTotal == 4
}

func isHoniisou(ctx *YakuContext) bool {
	tis := &ctx.counts.tis
	suit := min(tis[ColorCharacter], 1) + min(tis[ColorDot], 1) + min(tis[ColorBamboo], 1)
	return suit == 1 && tis[ColorHonor] > 0
}

func isChiniisou(ctx *YakuContext) bool {
	tis := &ctx.counts.tis
	suit := min(tis[ColorCharacter], 1) + min(tis[ColorDot], 1) + min(tis[ColorBamboo], 1)
	return suit == 1 && tis[ColorHonor] == 0
}

func isShousangen(ctx *YakuContext) bool {
	yc := &ctx.yakuhaiCheck
	return yc[PointWhite]+yc[PointGreen]+yc[PointRed] == 2 && ctx.pairTile.IsDragon()
}

func isDaisangen(ctx *YakuContext) bool {
	yc := &ctx.yakuhaiCheck
	return yc[PointWhite]+yc[PointGreen]+yc[PointRed] == 3
}

func isShousuushii(ctx *YakuContext) bool {
	yc := &ctx.yakuhaiCheck
	return yc[PointEast]+yc[PointSouth]+yc[PointWest]+yc[PointNorth] == 3 && ctx.pairTile.IsWind()
}

func isDaisuushii(ctx *YakuContext) bool {
	yc := &ctx.yakuhaiCheck
	return yc[PointEast]+yc[PointSouth]+yc[PointWest]+yc[PointNorth] == 4
}

func isRyuuiisou(ctx *YakuContext) bool {
	tis := &ctx.counts.tis
	if tis[ColorBamboo]+tis[ColorHonor] != 5 {
		return false
	}
	for _, s := range ctx.parsedHand {
		t := s.Tile
		switch s.Type {
		case SetShuntsu, SetChow:
			if t.Point() != 2 { // 顺子仅234可用
				return false
			}
		default:
			if !t.IsGreen() {
				return false
			}
		}
	}
	return true
}

func isTsuuiisou(ctx *YakuContext) bool {
	return (len(ctx.parsedHand) == 5 && ctx.counts.tis[ColorHonor] == 5) ||
		ctx.counts.tis[ColorHonor] == 7
}

func isChuuren(ctx *YakuContext) bool {
	cnt := ctx.hand.Count(ctx.winningTile)
	return isChuurenBase(ctx) && (cnt == 1 || cnt == 3)
}

func isJunseiChuuren(ctx *YakuContext) bool {
	cnt := ctx.hand.Count(ctx.winningTile)
	return isChuurenBase(ctx) && (cnt == 2 || cnt == 4)
}

func isChuurenBase(ctx *YakuContext) bool {
	if ctx.isOpen {
		return false
	}
	tis := &ctx.counts.tis
	var color EColor
	switch {
	case tis[ColorCharacter] == 5:
		color = ColorCharacter
	case tis[ColorDot] == 5:
		color = ColorDot
	case tis[ColorBamboo] == 5:
		color = ColorBamboo
	default:
		return false
	}

	h := ctx.hand
	if h[color][1] < 3 || h[color][9] < 3 {
		return false
	}
	for p := 2; p < 9; p++ {
		if h[color][p] == 0 {
			return false
		}
	}
	return true
}

func isKokushi(ctx *YakuContext) bool {
	if len(ctx.parsedHand) != 0 {
		return false
	}
	return IsKokushiWin(ctx.hand) && ctx.hand.Count(ctx.winningTile) != 2
}

func isKokushi13(ctx *YakuContext) bool {
	if len(ctx.parsedHand) != 0 {
		return false
	}
	return IsKokushiWin(ctx.hand) && ctx.hand.Count(ctx.winningTile) == 2
}

func isChiitoitsu(ctx *YakuContext) bool {
	return len(ctx.parsedHand) == 7
}

func isMenzentsumo(ctx *YakuContext) bool {
	return ctx.flags.Menzentsumo
}

func isRiichiYaku(ctx *YakuContext) bool {
	return ctx.flags.Riichi && !ctx.flags.Daburii
}

func isDaburii(ctx *YakuContext) bool {
	return ctx.flags.Daburii
}

func isIppatsu(ctx *YakuContext) bool {
	return ctx.flags.Ippatsu
}

func isHaitei(ctx *YakuContext) bool {
	return ctx.flags.Haitei
}

func isHoutei(ctx *YakuContext) bool {
	return ctx.flags.Houtei
}

func isRinshan(ctx *YakuContext) bool {
	return ctx.flags.Rinshan
}

func isChankan(ctx *YakuContext) bool {
	return ctx.flags.Chankan
}

func isTenhou(ctx *YakuContext) bool {
	return ctx.flags.Tenhou
}

func isChiihou(ctx *YakuContext) bool {
	return ctx.flags.Chiihou
}
