package logrus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/dresoeta/indoshim/pkg/logger"
)

func newTestAdapter() (*Adapter, *bytes.Buffer) {
	var buf bytes.Buffer
	backend := logrus.New()
	backend.SetOutput(&buf)
	backend.SetFormatter(&logrus.JSONFormatter{})
	return NewAdapter(backend), &buf
}

func TestAdapter_WritesStructuredFields(t *testing.T) {
	log, buf := newTestAdapter()

	log.WithFields(map[string]any{"pair": "DRX/IDR", "scale": 100}).Info("price scaled")

	out := buf.String()
	require.Contains(t, out, `"pair":"DRX/IDR"`)
	require.Contains(t, out, "price scaled")
}

func TestAdapter_WithError(t *testing.T) {
	log, buf := newTestAdapter()

	log.WithError(errors.New("summary failed")).Warnf("tier %d skipped", 3)

	out := buf.String()
	require.Contains(t, out, "summary failed")
	require.Contains(t, out, "tier 3 skipped")
}

func TestAdapter_LevelRoundTrip(t *testing.T) {
	log, _ := newTestAdapter()

	for _, level := range []logger.Level{
		logger.DebugLevel, logger.InfoLevel, logger.WarnLevel,
		logger.ErrorLevel, logger.FatalLevel,
	} {
		log.SetLevel(level)
		require.Equal(t, level, log.GetLevel())
	}
}
