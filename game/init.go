package game

import (
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/kevin-chtw/tw_riichi/utils"
)

var matchManager *MatchManager

// Init 初始化日志与对局管理器
func Init(level logrus.Level) {
	logger.SetLogger(utils.Logger(level))
	matchManager = NewMatchManager()
}

// GetMatchManager 获取对局管理器实例
func GetMatchManager() *MatchManager {
	return matchManager
}
