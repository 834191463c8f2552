package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, false)

	log.Info().Msg("ledger loaded")
	log.Debug().Msg("create record")

	output := buf.String()
	if !strings.Contains(output, "ledger loaded") {
		t.Errorf("expected output to contain the info message, got: %s", output)
	}
	if strings.Contains(output, "create record") {
		t.Errorf("expected debug messages to be filtered out, got: %s", output)
	}
}

func TestNewWithWriter_Verbose(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, true)

	log.Debug().Int("id", 3).Msg("create record")

	if output := buf.String(); !strings.Contains(output, "create record") {
		t.Errorf("expected verbose output to contain the debug message, got: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, false))

	log := FromContext(ctx)
	log.Info().Msg("test")

	if !strings.Contains(buf.String(), "test") {
		t.Errorf("expected the logger from the context to be used, got: %s", buf.String())
	}
}

func TestFromContext_Missing(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("expected a disabled logger, got level %v", log.GetLevel())
	}
}
