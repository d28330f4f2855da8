package zerolog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dresoeta/indoshim/pkg/logger"
)

func TestAdapter_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.WithField("pair", "DRX/IDR").Infof("limits relaxed: %d bounds", 3)

	out := buf.String()
	require.Contains(t, out, `"pair":"DRX/IDR"`)
	require.Contains(t, out, "limits relaxed: 3 bounds")
}

func TestAdapter_WithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.WithError(errors.New("listing failed")).Warn("degraded mode")

	out := buf.String()
	require.Contains(t, out, `"error":"listing failed"`)
	require.Contains(t, out, "degraded mode")
}

func TestAdapter_LevelRoundTrip(t *testing.T) {
	log := New(&bytes.Buffer{})

	for _, level := range []logger.Level{
		logger.DebugLevel, logger.InfoLevel, logger.WarnLevel,
		logger.ErrorLevel, logger.FatalLevel, logger.Disabled,
	} {
		log.SetLevel(level)
		require.Equal(t, level, log.GetLevel())
	}
}

func TestAdapter_LevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.SetLevel(logger.WarnLevel)
	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("visible")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "visible")
}
