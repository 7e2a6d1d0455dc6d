package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/resepmakanan/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testGreeting = "Halo! Ada yang bisa dibantu di dapur?"

// stubGenerator returns a fixed reply or error
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

// blockingGenerator holds the request open until released
type blockingGenerator struct {
	release chan struct{}
}

func (b *blockingGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	<-b.release
	return "akhirnya selesai", nil
}

func TestNewServiceSeedsGreeting(t *testing.T) {
	s := NewService(&stubGenerator{}, testGreeting, zap.NewNop())

	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, RoleAssistant, transcript[0].Role)
	assert.Equal(t, testGreeting, transcript[0].Content)
}

func TestSendAppendsUserAndAssistantMessages(t *testing.T) {
	s := NewService(&stubGenerator{reply: "Coba buat nasi goreng!"}, testGreeting, zap.NewNop())

	reply, err := s.Send(context.Background(), "  nasi sisa, telur  ")
	require.NoError(t, err)
	assert.Equal(t, RoleAssistant, reply.Role)
	assert.Equal(t, "Coba buat nasi goreng!", reply.Content)

	transcript := s.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, RoleUser, transcript[1].Role)
	// input is trimmed before it enters the transcript
	assert.Equal(t, "nasi sisa, telur", transcript[1].Content)
	assert.Equal(t, reply, transcript[2])
	assert.False(t, s.Pending())
}

func TestSendRejectsEmptyInput(t *testing.T) {
	s := NewService(&stubGenerator{reply: "tidak terpakai"}, testGreeting, zap.NewNop())

	_, err := s.Send(context.Background(), "   \t\n ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	// nothing was appended
	assert.Len(t, s.Transcript(), 1)
}

func TestSendQuotaFallbackMentionsIngredients(t *testing.T) {
	gen := &stubGenerator{err: apperrors.NewQuotaExceededError("gemini")}
	s := NewService(gen, testGreeting, zap.NewNop())

	reply, err := s.Send(context.Background(), "telur, bawang")
	require.NoError(t, err)
	assert.Equal(t, RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "telur, bawang")
	assert.Contains(t, reply.Content, "nasi goreng spesial")
}

func TestSendGenericFallbackOnOtherErrors(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	s := NewService(gen, testGreeting, zap.NewNop())

	reply, err := s.Send(context.Background(), "tempe")
	require.NoError(t, err)
	assert.Equal(t, genericFallback, reply.Content)
}

func TestSendRejectsWhilePending(t *testing.T) {
	gen := &blockingGenerator{release: make(chan struct{})}
	s := NewService(gen, testGreeting, zap.NewNop())

	first := make(chan error, 1)
	go func() {
		_, err := s.Send(context.Background(), "ayam")
		first <- err
	}()

	// wait for the first request to take the pending slot
	for !s.Pending() {
		time.Sleep(time.Millisecond)
	}

	_, err := s.Send(context.Background(), "ikan")
	assert.ErrorIs(t, err, ErrRequestPending)

	close(gen.release)
	require.NoError(t, <-first)
	assert.False(t, s.Pending())
}

func TestMessageParagraphs(t *testing.T) {
	m := Message{Role: RoleAssistant, Content: "Ide pertama.\nIde kedua.\nIde ketiga."}
	assert.Equal(t, []string{"Ide pertama.", "Ide kedua.", "Ide ketiga."}, m.Paragraphs())
}
