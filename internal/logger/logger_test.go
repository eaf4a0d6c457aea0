package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	t.Run("User and request id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "user_id", "user-123")
		ctx = context.WithValue(ctx, "request_id", "req-1")

		l := WithContext(ctx)
		assert.Equal(t, "user-123", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})

	t.Run("Anonymous", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
		assert.NotContains(t, l.Data, "request_id")
	})
}

func TestLoggerFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().
		WithField("format_id", "gen9ou").
		WithFields(map[string]interface{}{"slot": 2}).
		WithError(errors.New("boom")).
		Error("ruleset failure")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "ruleset failure", entry.Message)
	assert.Equal(t, "gen9ou", entry.Data["format_id"])
	assert.Equal(t, 2, entry.Data["slot"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
