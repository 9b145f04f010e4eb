package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init builds the global zap logger. environment "development" gets the
// human friendly console encoder, anything else JSON. An empty lvl keeps the
// environment's default level.
func Init(environment, lvl string) error {
	conf := zap.NewProductionConfig()
	if environment == "development" {
		conf = zap.NewDevelopmentConfig()
	}

	level.SetLevel(conf.Level.Level())
	if err := SetLevel(lvl); err != nil {
		return err
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(lvl string) error {
	if lvl == "" {
		return nil
	}

	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}
	level.SetLevel(parsed)

	return nil
}
