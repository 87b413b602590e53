package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bhanuteja449896/AskMyFile/pkg/utils/logging"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)
	gt.V(t, logger).NotNil()

	logger.Info("test message")
	gt.S(t, buf.String()).Contains("test message")
}

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("warn", buf)

	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	gt.S(t, output).NotContains("info message")
	gt.S(t, output).Contains("warn message")
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("bogus", buf)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	gt.S(t, output).NotContains("debug message")
	gt.S(t, output).Contains("info message")
}

func TestWithAndFrom(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf)

	ctx := logging.With(context.Background(), logger)
	retrieved := logging.From(ctx)
	gt.Equal(t, retrieved, logger)

	retrieved.Info("context message")
	gt.S(t, buf.String()).Contains("context message")
}

func TestFromWithoutLogger(t *testing.T) {
	logger := logging.From(context.Background())
	gt.V(t, logger).NotNil()
}
