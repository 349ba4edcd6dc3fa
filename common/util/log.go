package util

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/thetatoken/treasury/common"
)

const defaultLogLevel = "warn"

var (
	logLevels map[string]string
	loggers   sync.Map
)

// InitLog configures the global formatter and the per-module log levels.
func InitLog() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	logLevels = parseLogLevelConfig(viper.GetString(common.CfgLogLevels))
	loggers = sync.Map{}

	if level, err := log.ParseLevel(logLevels["*"]); err == nil {
		log.SetLevel(level)
	}
}

// parseLogLevelConfig parses "*:error,p2p:debug" into module -> level. The
// wildcard entry falls back to warn when absent.
func parseLogLevelConfig(config string) map[string]string {
	ret := make(map[string]string)
	for _, entry := range strings.Split(config, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 {
			continue
		}
		ret[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if _, ok := ret["*"]; !ok {
		ret["*"] = defaultLogLevel
	}
	return ret
}

// GetLoggerForModule returns a logger tagged with the module name and set to
// the level configured for that module.
func GetLoggerForModule(module string) *log.Entry {
	if entry, ok := loggers.Load(module); ok {
		return entry.(*log.Entry)
	}

	levelStr, ok := logLevels[module]
	if !ok {
		levelStr, ok = logLevels["*"]
	}
	if !ok {
		levelStr = defaultLogLevel
	}
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.WarnLevel
	}

	logger := log.New()
	logger.Formatter = log.StandardLogger().Formatter
	logger.Out = log.StandardLogger().Out
	logger.Level = level

	entry, _ := loggers.LoadOrStore(module, logger.WithFields(log.Fields{"prefix": module}))
	return entry.(*log.Entry)
}
