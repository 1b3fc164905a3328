package mahjong

import "fmt"

// 点数表, 行为番数(0-12), 列为符数索引(20,25,30,40..110)
// 13番以上按累计役满处理

var pointDealer = [13][11]int64{
	{},
	{0, 0, 1500, 2000, 2400, 2900, 3400, 3900, 4400, 4800, 5300},
	{2000, 2400, 2900, 3900, 4800, 5800, 6800, 7700, 8700, 9600, 10600},
	{3900, 4800, 5800, 7700, 9600, 11600, 12000, 12000, 12000, 12000, 12000},
	{7700, 9600, 11600, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000},
	{18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000},
	{36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000},
}

var pointNonDealer = [13][11]int64{
	{},
	{0, 0, 1000, 1300, 1600, 2000, 2300, 2600, 2900, 3200, 3600},
	{1300, 1600, 2000, 2600, 3200, 3900, 4500, 5200, 5800, 6400, 7100},
	{2600, 3200, 3900, 5200, 6400, 7700, 8000, 8000, 8000, 8000, 8000},
	{5200, 6400, 7700, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000},
	{8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
}

const (
	pointYakumanDealer    int64 = 48000
	pointYakumanNonDealer int64 = 32000
)

func calcFuIndex(fu int) int {
	switch fu {
	case 20:
		return 0
	case 25:
		return 1
	default:
		if fu >= 30 && fu <= 110 && fu%10 == 0 {
			return fu/10 - 1
		}
	}
	panic(fmt.Sprintf("invalid fu %d", fu))
}

func ceil100(n int64) int64 {
	return (n + 99) / 100 * 100
}

// Points (荣和得点, 自摸子家支付, 自摸庄家支付)
type Points struct {
	Ron         int64
	TsumoEach   int64
	TsumoDealer int64
}

// GetPoints 按庄闲与番符查点数, 役满倍数优先
func GetPoints(isDealer bool, fu, fan, yakumanCount int) Points {
	if yakumanCount > 0 {
		if isDealer {
			s := pointYakumanDealer * int64(yakumanCount)
			return Points{s, s / 3, 0}
		}
		s := pointYakumanNonDealer * int64(yakumanCount)
		return Points{s, s / 4, s / 2}
	}

	fuIndex := calcFuIndex(fu)
	if isDealer {
		point := pointYakumanDealer
		if fan < 13 {
			point = pointDealer[fan][fuIndex]
		}
		return Points{point, ceil100(point / 3), 0}
	}
	point := pointYakumanNonDealer
	if fan < 13 {
		point = pointNonDealer[fan][fuIndex]
	}
	return Points{point, ceil100(point / 4), ceil100(point / 2)}
}

var yakumanTitles = []string{"", "役满", "两倍役满", "三倍役满", "四倍役满", "五倍役满", "六倍役满", "七倍役满"}

// GetScoreTitle 满贯及以上的称号, 不足满贯返回空串
func GetScoreTitle(fu, fan, yakumanCount int) string {
	if yakumanCount > 0 {
		if yakumanCount < len(yakumanTitles) {
			return yakumanTitles[yakumanCount]
		}
		return yakumanTitles[len(yakumanTitles)-1]
	}
	if fan >= 13 {
		return "累计役满"
	}
	switch pointNonDealer[fan][calcFuIndex(fu)] {
	case 8000:
		return "满贯"
	case 12000:
		return "跳满"
	case 16000:
		return "倍满"
	case 24000:
		return "三倍满"
	}
	return ""
}
