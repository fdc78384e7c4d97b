package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "production", "")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l.WithField("user_id", "abc").Info("user registered")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "user registered", line["msg"])
	assert.Equal(t, "abc", line["user_id"])
}

func TestNewLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "development", "warn")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l = NewWithOutput(&buf, "development", "loud")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestFromContext(t *testing.T) {
	fallback := logrus.New()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	entry := fallback.WithField("request_id", "r-1")
	ctx := WithLogger(context.Background(), entry)
	assert.Same(t, entry, FromContext(ctx, fallback))
}
