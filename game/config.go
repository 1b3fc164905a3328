package game

import (
	"github.com/spf13/viper"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// Config 牌桌配置, 从yaml加载
type Config struct {
	Name     string `yaml:"name"`
	Seed     int64  `yaml:"seed"`
	Property string `yaml:"property"` // 规则json, 覆盖默认值
}

// LoadConfig 读取配置文件, 失败返回错误
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Rule 配置对应的对局规则
func (c *Config) Rule() *mahjong.Rule {
	rule := mahjong.NewRule()
	rule.LoadRule(c.Property)
	return rule
}
