package bintreetesting

import (
	"fmt"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel can be "", which defaults to NOOP. "TEST" records every entry
	// in logger.Recorded so tests can assert on what was logged.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}

	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	// Each context gets its own service name so interleaved test logs can be
	// told apart.
	c.Log = logger.Sugar.WithServiceName(
		fmt.Sprintf("%s-%s", cfg.TestLabelPrefix, uuid.NewString()[:8]))

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
