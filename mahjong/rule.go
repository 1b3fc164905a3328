package mahjong

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Rule 对局规则
// 多家荣和时本场与供托固定归放铳者下家方向最近的和了家, 不作开关
type Rule struct {
	InitScore     int64  `json:"init_score"`
	Rounds        int    `json:"rounds"` // 场风局数, 8为半庄
	RedFives      [3]int `json:"red_fives"`
	UraDora       bool   `json:"ura_dora"`        // 立直和了计里宝牌
	Kuitan        bool   `json:"kuitan"`          // 副露断幺九有效
	KuikaeStrict  bool   `json:"kuikae_strict"`   // 禁止现物外的筋替换
	TripleRonDraw bool   `json:"triple_ron_draw"` // 三家荣和流局
	Nukidora      bool   `json:"nukidora"`        // 拔北规则
	BustEnds      bool   `json:"bust_ends"`       // 有人被飞即终局
}

func NewRule() *Rule {
	return &Rule{
		InitScore:     25000,
		Rounds:        8,
		RedFives:      [3]int{1, 1, 1},
		UraDora:       true,
		Kuitan:        true,
		KuikaeStrict:  true,
		TripleRonDraw: true,
		BustEnds:      true,
	}
}

// LoadRule 从json覆盖默认值, 解析失败保留默认
func (r *Rule) LoadRule(property string) {
	if property == "" {
		return
	}
	if err := json.Unmarshal([]byte(property), r); err != nil {
		logrus.Errorf("load rule failed: %v", err)
	}
}

func (r *Rule) ToString() string {
	data, err := json.Marshal(r)
	if err != nil {
		logrus.Errorf("marshal rule failed: %v", err)
		return ""
	}
	return string(data)
}
