package logging

import (
	"fmt"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/config"
	"go.uber.org/zap"
)

var Logger = zap.NewNop().Sugar()

// Init replaces the no-op Logger with a production or development logger,
// depending on the environment, at the configured level.
func Init() {
	zapConfig := zap.NewDevelopmentConfig()
	if config.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	}

	if config.C.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(config.C.Log.Level)
		if err != nil {
			panic(fmt.Errorf("invalid log level %q: %w", config.C.Log.Level, err))
		}
		zapConfig.Level = level
	}

	logger, err := zapConfig.Build()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}

	Logger = logger.Sugar()
}

func Sync() {
	_ = Logger.Sync()
}
