package service

import (
	"fmt"
	"strings"

	"english-tutor/internal/domain"
)

// DefaultTranscriptLimit es la cantidad de mensajes que se muestran por defecto.
const DefaultTranscriptLimit = 10

// TranscriptService formatea el historial como texto plano, en el orden de la lista.
type TranscriptService struct {
	limit int
}

func NewTranscriptService(limit int) *TranscriptService {
	if limit <= 0 {
		limit = DefaultTranscriptLimit
	}
	return &TranscriptService{limit: limit}
}

func (s *TranscriptService) Render(messages []domain.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}

	// La lista ya está en orden de inserción; no se reordena por CreatedAt.
	ordered := messages
	if len(ordered) > s.limit {
		ordered = ordered[len(ordered)-s.limit:]
	}

	lines := make([]string, 0, len(ordered))
	for _, m := range ordered {
		speaker := "Bạn"
		if m.Role == domain.RoleAssistant {
			speaker = "Tutor"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Content))
	}
	return strings.Join(lines, "\n")
}
