package chat

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/abuhisan/coffee-backend/internal/logger"
	"github.com/abuhisan/coffee-backend/internal/product"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrEmptyMessage = errors.New("message is empty")

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is one line of a chat transcript.
type Message struct {
	ID           string            `json:"id"`
	Role         string            `json:"role"`
	Text         string            `json:"text"`
	Intent       string            `json:"intent,omitempty"`
	Products     []product.Product `json:"products,omitempty"`
	QuickReplies []string          `json:"quickReplies,omitempty"`
	ReplyTo      string            `json:"replyTo,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Scheduler runs fn after d. Each submitted message schedules exactly one
// reply; replies to different messages may land in any order.
type Scheduler func(d time.Duration, fn func())

func afterFunc(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

// Service keeps per-session transcripts and answers messages after a
// simulated typing delay.
type Service struct {
	responder *Responder
	log       logger.Logger

	mu    sync.Mutex
	store *cache.Cache

	typingMin time.Duration
	typingMax time.Duration
	schedule  Scheduler
	now       func() time.Time
}

func NewService(r *Responder, ttl, typingMin, typingMax time.Duration, log logger.Logger) *Service {
	if typingMax < typingMin {
		typingMax = typingMin
	}
	return &Service{
		responder: r,
		log:       log,
		store:     cache.New(ttl, 10*time.Minute),
		typingMin: typingMin,
		typingMax: typingMax,
		schedule:  afterFunc,
		now:       time.Now,
	}
}

// WithScheduler replaces the timer used for delayed replies.
func (s *Service) WithScheduler(sch Scheduler) *Service {
	s.schedule = sch
	return s
}

// Submit records the user's message and schedules the bot reply.
func (s *Service) Submit(sessionID, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	msg := Message{ID: uuid.NewString(), Role: RoleUser, Text: text, CreatedAt: s.now()}
	s.append(sessionID, msg)

	delay := s.typingDelay()
	s.schedule(delay, func() {
		reply := s.responder.Respond(text)
		s.append(sessionID, Message{
			ID:           uuid.NewString(),
			Role:         RoleBot,
			Text:         reply.Text,
			Intent:       reply.Intent,
			Products:     reply.Products,
			QuickReplies: reply.QuickReplies,
			ReplyTo:      msg.ID,
			CreatedAt:    s.now(),
		})
		s.log.Debug("chat", "reply delivered", map[string]interface{}{
			"session":  sessionID,
			"intent":   reply.Intent,
			"delay_ms": delay.Milliseconds(),
		})
	})
	return msg, nil
}

// Transcript returns a copy of the session's messages in arrival order.
func (s *Service) Transcript(sessionID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.load(sessionID)...)
}

// Respond answers immediately without touching any transcript.
func (s *Service) Respond(text string) Reply {
	return s.responder.Respond(text)
}

func (s *Service) append(sessionID string, m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.load(sessionID)
	next := make([]Message, len(msgs), len(msgs)+1)
	copy(next, msgs)
	s.store.Set(sessionID, append(next, m), cache.DefaultExpiration)
}

func (s *Service) load(sessionID string) []Message {
	if x, found := s.store.Get(sessionID); found {
		return x.([]Message)
	}
	return nil
}

func (s *Service) typingDelay() time.Duration {
	span := s.typingMax - s.typingMin
	if span <= 0 {
		return s.typingMin
	}
	return s.typingMin + time.Duration(rand.Int63n(int64(span)+1))
}
