// Package chat implements the kitchen assistant widget: a transcript
// of user and assistant messages bridged to a hosted text-generation
// service, with canned fallbacks when the service is unavailable.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/resepmakanan/v1/internal/ports/outbound"
	apperrors "github.com/resepmakanan/v1/pkg/errors"
	"go.uber.org/zap"
)

// Role identifies the author of a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the append-only transcript
type Message struct {
	Role    Role
	Content string
}

// Paragraphs splits the message content on newlines for display
func (m Message) Paragraphs() []string {
	return strings.Split(m.Content, "\n")
}

var (
	// ErrEmptyInput is returned for empty or whitespace-only input;
	// no outbound request is made.
	ErrEmptyInput = errors.New("chat input is empty")

	// ErrRequestPending is returned while a request is outstanding;
	// new submissions are rejected until it resolves.
	ErrRequestPending = errors.New("a chat request is already pending")
)

var requestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "resepmakanan",
	Subsystem: "chat",
	Name:      "requests_total",
	Help:      "Chat bridge requests by outcome.",
}, []string{"outcome"})

// Fallback replies. The quota message still offers three generic dish
// suggestions built around the user's stated ingredients.
const (
	quotaFallbackFormat = "Waduh, dapur AI kami sedang sangat ramai! Tapi jangan khawatir, dengan bahan %s, anda biasanya bisa membuat tumisan sayur campur, nasi goreng spesial, atau omelet telur yang lezat. Coba lagi nanti ya untuk resep lebih detail dari AI!"

	genericFallback = "Maaf, asisten dapur sedang istirahat sebentar. Silakan coba lagi beberapa saat lagi!"
)

// Service owns the chat session state. At most one outbound request is
// in flight at a time; reentrancy is prevented by the pending flag
// rather than by queueing.
type Service struct {
	generator outbound.TextGenerator
	logger    *zap.Logger

	mu         sync.Mutex
	transcript []Message
	pending    bool
}

// NewService creates a chat session seeded with the greeting message
func NewService(generator outbound.TextGenerator, greeting string, logger *zap.Logger) *Service {
	s := &Service{
		generator: generator,
		logger:    logger,
	}
	if greeting != "" {
		s.transcript = append(s.transcript, Message{Role: RoleAssistant, Content: greeting})
	}
	return s
}

// Transcript returns a copy of the current transcript
func (s *Service) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Pending reports whether a request is currently outstanding
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Send submits free-text ingredient input and returns the assistant
// reply that was appended to the transcript. Whitespace-only input is
// rejected without issuing a request. Failures never propagate: quota
// exhaustion and other errors each resolve to a canned reply.
func (s *Service) Send(ctx context.Context, input string) (Message, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Message{}, ErrEmptyInput
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return Message{}, ErrRequestPending
	}
	s.pending = true
	s.transcript = append(s.transcript, Message{Role: RoleUser, Content: trimmed})
	s.mu.Unlock()

	reply := s.resolve(ctx, trimmed)

	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.pending = false
	s.mu.Unlock()

	return reply, nil
}

// resolve performs the single outbound call and maps failures to the
// canned fallbacks. Each call is independent of prior transcript.
func (s *Service) resolve(ctx context.Context, ingredients string) Message {
	prompt := fmt.Sprintf("Saran resep untuk bahan: %s. Berikan 3 ide unik dalam Bahasa Indonesia.", ingredients)

	text, err := s.generator.GenerateText(ctx, prompt)
	switch {
	case err == nil:
		requestOutcomes.WithLabelValues("success").Inc()
		return Message{Role: RoleAssistant, Content: text}
	case apperrors.Is(err, apperrors.CodeQuotaExceeded):
		requestOutcomes.WithLabelValues("quota").Inc()
		s.logger.Warn("chat bridge quota exhausted", zap.Error(err))
		return Message{
			Role:    RoleAssistant,
			Content: fmt.Sprintf(quotaFallbackFormat, ingredients),
		}
	default:
		requestOutcomes.WithLabelValues("error").Inc()
		s.logger.Error("chat bridge request failed", zap.Error(err))
		return Message{Role: RoleAssistant, Content: genericFallback}
	}
}
