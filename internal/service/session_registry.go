package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"english-tutor/internal/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("session limit reached")
)

// SessionRegistry guarda conversaciones independientes en memoria, sin persistencia.
type SessionRegistry struct {
	mu        sync.RWMutex
	sessions  map[string]*Conversation
	responder *Responder
	opts      ConversationOptions
	ttl       time.Duration
	max       int
	logger    *zap.Logger
}

// NewSessionRegistry crea el registro. max <= 0 significa sin tope de sesiones.
func NewSessionRegistry(logger *zap.Logger, responder *Responder, opts ConversationOptions, ttl time.Duration, max int) *SessionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Logger == nil {
		opts.Logger = logger
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &SessionRegistry{
		sessions:  make(map[string]*Conversation),
		responder: responder,
		opts:      opts,
		ttl:       ttl,
		max:       max,
		logger:    logger,
	}
}

// Create abre una conversación nueva para el plan indicado.
func (r *SessionRegistry) Create(profile domain.PlanProfile) (string, *Conversation, error) {
	id := uuid.NewString()
	conv := NewConversation(r.responder, profile, r.opts)

	r.mu.Lock()
	if r.max > 0 && len(r.sessions) >= r.max {
		r.mu.Unlock()
		r.logger.Warn("session limit reached", zap.Int("max", r.max))
		return "", nil, ErrSessionLimit
	}
	r.sessions[id] = conv
	r.mu.Unlock()

	r.logger.Info("session created", zap.String("session_id", id), zap.String("plan", string(profile.Key)))
	return id, conv, nil
}

// Get cuenta como actividad: una sesión que sólo se consulta no expira.
func (r *SessionRegistry) Get(id string) (*Conversation, error) {
	r.mu.RLock()
	conv, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	conv.touch()
	return conv, nil
}

func (r *SessionRegistry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep elimina las sesiones inactivas por más de ttl. Devuelve cuántas borró.
func (r *SessionRegistry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.opts.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, conv := range r.sessions {
		if conv.lastActivity().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("sessions swept", zap.Int("removed", removed), zap.Int("remaining", len(r.sessions)))
	}
	return removed
}
