package service

import (
	"strings"

	"english-tutor/internal/content"
	"english-tutor/internal/domain"
)

// NotFoundMessage es la guía fija cuando ningún topic coincide.
const NotFoundMessage = "Xin lỗi, mình chưa có nội dung cho chủ đề này. Bạn có thể hỏi về: animals, food, colors, phrases, grammar (present simple, present continuous, past simple, future simple, conditional), exercise hoặc conversation."

const exampleLabel = "Ví dụ:"

// Responder busca respuestas enlatadas en la tabla de contenido.
type Responder struct {
	table *content.Table
}

func NewResponder(table *content.Table) *Responder {
	if table == nil {
		table = content.Default()
	}
	return &Responder{table: table}
}

// Respond recibe el input crudo del usuario, lo normaliza y arma la respuesta.
// Nunca devuelve string vacío.
func (r *Responder) Respond(input string) string {
	key := Normalize(input)

	if key == KeyGrammar {
		entries := r.table.Filter(func(e domain.ContentEntry) bool {
			return e.Category == domain.CategoryGrammar
		})
		if len(entries) == 0 {
			return NotFoundMessage
		}
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, e.Topic+":\n"+e.Content+"\n"+exampleLabel+"\n"+e.Example)
		}
		return strings.Join(parts, "\n\n")
	}

	// El topic de la entrada debe estar contenido en la clave, no al revés.
	entries := r.table.Filter(func(e domain.ContentEntry) bool {
		return strings.Contains(key, e.Topic)
	})
	if len(entries) == 0 {
		return NotFoundMessage
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Example != "" {
			parts = append(parts, e.Content+"\n"+exampleLabel+"\n"+e.Example)
			continue
		}
		parts = append(parts, e.Content)
	}
	return strings.Join(parts, "\n\n")
}
