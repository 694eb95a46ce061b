// internal/pkg/email/service_test.go
package email

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulateService(t *testing.T) (*Service, *test.Hook) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Email.Provider = "simulate"
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewService(cfg, logger), hook
}

func TestSendSimulatedLogsPreview(t *testing.T) {
	svc, hook := newSimulateService(t)

	res, err := svc.Send(context.Background(), &Message{
		To:          []string{"marie@example.fr"},
		From:        "no-reply@lepetitmarche.fr",
		Subject:     "Bonjour",
		TextContent: "Un message court.",
		Type:        MessageTypeContactOwner,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.MessageID, "sim-"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Un message court.", entry.Data["preview"])
	assert.Equal(t, MessageTypeContactOwner, entry.Data["type"])
}

func TestSimulatedPreviewTruncatesOnRuneBoundary(t *testing.T) {
	svc, hook := newSimulateService(t)

	// One ASCII byte then two-byte runes puts byte offset 180 in the
	// middle of a character.
	body := "a" + strings.Repeat("é", 120)
	_, err := svc.Send(context.Background(), &Message{
		To:          []string{"marie@example.fr"},
		TextContent: body,
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	preview, ok := entry.Data["preview"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(preview), 180)
	assert.True(t, utf8.ValidString(preview))
	assert.True(t, strings.HasSuffix(preview, "é"))
}

func TestSendRejectsMissingRecipient(t *testing.T) {
	svc, _ := newSimulateService(t)

	_, err := svc.Send(context.Background(), &Message{Subject: "x"})
	assert.Error(t, err)
}

func TestSendRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Email.Provider = "pigeon"
	logger, _ := test.NewNullLogger()
	svc := NewService(cfg, logger)

	_, err := svc.Send(context.Background(), &Message{To: []string{"a@b.fr"}})
	assert.Error(t, err)
}
