package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"english-tutor/internal/domain"
	"english-tutor/internal/plan"
)

// DefaultReplyDelay simula la latencia de una respuesta.
const DefaultReplyDelay = 500 * time.Millisecond

var (
	ErrConversationNotConfigured = errors.New("conversation not configured")
	ErrEmptyInput                = errors.New("message empty")
	ErrReplyPending              = errors.New("reply pending")
	ErrQuotaExceeded             = errors.New("daily quota exceeded")
)

// ConversationView es lo que consume la capa de presentación.
type ConversationView struct {
	Messages     []domain.ChatMessage `json:"messages"`
	IsLoading    bool                 `json:"is_loading"`
	ChatsLeft    *int                 `json:"chats_left"`
	LimitReached bool                 `json:"limit_reached"`
	Plan         domain.PlanProfile   `json:"plan"`
}

// ConversationOptions permite inyectar reloj, ids y scheduler en tests.
type ConversationOptions struct {
	Delay     time.Duration
	Now       func() time.Time
	NewID     func() string
	AfterFunc func(d time.Duration, f func())
	Logger    *zap.Logger
}

// Conversation mantiene la lista de mensajes de una sesión y el flag de envío en curso.
type Conversation struct {
	mu         sync.Mutex
	responder  *Responder
	plan       domain.PlanProfile
	messages   []domain.ChatMessage
	pending    bool
	generation uint64
	touchedAt  time.Time

	delay     time.Duration
	now       func() time.Time
	newID     func() string
	afterFunc func(d time.Duration, f func())
	logger    *zap.Logger
}

func NewConversation(responder *Responder, profile domain.PlanProfile, opts ConversationOptions) *Conversation {
	if opts.Delay <= 0 {
		opts.Delay = DefaultReplyDelay
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	c := &Conversation{
		responder: responder,
		delay:     opts.Delay,
		now:       opts.Now,
		newID:     opts.NewID,
		afterFunc: opts.AfterFunc,
		logger:    opts.Logger,
	}
	c.reset(profile)
	return c
}

// reset requiere c.mu tomado (o el objeto aún sin publicar).
func (c *Conversation) reset(profile domain.PlanProfile) {
	c.plan = profile
	c.messages = []domain.ChatMessage{c.newMessage(domain.RoleAssistant, profile.Welcome)}
	c.pending = false
	c.generation++
	c.touchedAt = c.now()
}

func (c *Conversation) newMessage(role domain.Role, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        c.newID(),
		Role:      role,
		Content:   text,
		CreatedAt: c.now(),
	}
}

func (c *Conversation) userCount() int {
	n := 0
	for _, m := range c.messages {
		if m.Role == domain.RoleUser {
			n++
		}
	}
	return n
}

func (c *Conversation) limitReached() bool {
	return !c.plan.Unlimited() && c.userCount() >= c.plan.DailyQuota
}

// Submit agrega el mensaje del usuario y agenda la respuesta. El canal devuelto
// recibe la respuesta del asistente, o se cierra vacío si la respuesta se abandona
// por un cambio de plan o un borrado del historial.
func (c *Conversation) Submit(text string) (domain.ChatMessage, <-chan domain.ChatMessage, error) {
	if c == nil || c.responder == nil {
		return domain.ChatMessage{}, nil, ErrConversationNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, nil, ErrEmptyInput
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return domain.ChatMessage{}, nil, ErrReplyPending
	}
	if c.limitReached() {
		c.mu.Unlock()
		return domain.ChatMessage{}, nil, ErrQuotaExceeded
	}
	msg := c.newMessage(domain.RoleUser, text)
	c.messages = append(c.messages, msg)
	c.pending = true
	c.touchedAt = msg.CreatedAt
	gen := c.generation
	c.mu.Unlock()

	reply := make(chan domain.ChatMessage, 1)
	c.afterFunc(c.delay, func() { c.deliver(gen, text, reply) })
	return msg, reply, nil
}

func (c *Conversation) deliver(gen uint64, text string, reply chan<- domain.ChatMessage) {
	defer close(reply)

	answer := Sanitize(c.responder.Respond(text))

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.logger.Debug("reply abandoned", zap.Uint64("generation", gen))
		return
	}
	msg := c.newMessage(domain.RoleAssistant, answer)
	c.messages = append(c.messages, msg)
	c.pending = false
	c.touchedAt = msg.CreatedAt
	reply <- msg
}

// SelectPlan reinicia la conversación sólo si cambia la identidad del plan.
func (c *Conversation) SelectPlan(profile domain.PlanProfile) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.plan.Key == profile.Key {
		return false
	}
	c.logger.Info("plan changed", zap.String("from", string(c.plan.Key)), zap.String("to", string(profile.Key)))
	c.reset(profile)
	return true
}

// Clear deja sólo el mensaje de bienvenida del plan actual.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(c.plan)
}

func (c *Conversation) View() ConversationView {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := make([]domain.ChatMessage, len(c.messages))
	copy(msgs, c.messages)
	view := ConversationView{
		Messages:     msgs,
		IsLoading:    c.pending,
		LimitReached: c.limitReached(),
		Plan:         c.plan,
	}
	if !c.plan.Unlimited() {
		left := c.plan.DailyQuota - c.userCount()
		if left < 0 {
			left = 0
		}
		view.ChatsLeft = &left
	}
	return view
}

func (c *Conversation) Plan() domain.PlanProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan
}

// touch registra actividad sin modificar la conversación (p. ej. un GET).
func (c *Conversation) touch() {
	c.mu.Lock()
	c.touchedAt = c.now()
	c.mu.Unlock()
}

func (c *Conversation) lastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touchedAt
}

// QuotaMessage devuelve el aviso para un error de Submit, si corresponde.
func QuotaMessage(err error) (string, bool) {
	if errors.Is(err, ErrQuotaExceeded) {
		return plan.QuotaExceededMessage, true
	}
	return "", false
}
