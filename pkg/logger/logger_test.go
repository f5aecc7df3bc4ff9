package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger(t *testing.T) {
	t.Run("falls back to global entry", func(t *testing.T) {
		entry := GetLogger(context.Background())
		assert.NotNil(t, entry)
		assert.Equal(t, L.Logger, entry.Logger)
	})

	t.Run("returns attached entry", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("component", "detector")
		ctx := WithLogger(context.Background(), custom)

		entry := GetLogger(ctx)
		assert.Equal(t, "detector", entry.Data["component"])
	})
}

func TestSetLevel(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		require.NoError(t, SetLevel("debug"))
		assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())
		require.NoError(t, SetLevel("info"))
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, SetLevel("loud"))
	})
}

func TestSetFormat(t *testing.T) {
	defer SetFormat("text")
	defer SetOutput(L.Logger.Out)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetFormat("json")

	L.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
