package service

import (
	"strings"
	"testing"

	"english-tutor/internal/content"
	"english-tutor/internal/domain"
)

func TestResponder_Animals(t *testing.T) {
	r := NewResponder(content.Default())
	got := r.Respond("tell me about animals")
	want := "cat - mèo\nVí dụ:\nThe cat is sleeping on the sofa.\n\ndog - chó\nVí dụ:\nMy dog likes to run in the park."
	if got != want {
		t.Fatalf("unexpected animals response:\n%s", got)
	}
}

func TestResponder_Conditional(t *testing.T) {
	r := NewResponder(content.Default())
	got := r.Respond("what is conditional 2")
	want := "If + S + V, S + V\nVí dụ:\nIf you heat water, it boils."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResponder_GrammarListsAllTopicsInOrder(t *testing.T) {
	table := content.Default()
	r := NewResponder(table)
	got := r.Respond("Grammar")

	var parts []string
	for _, e := range table.Entries() {
		if e.Category == domain.CategoryGrammar {
			parts = append(parts, e.Topic+":")
		}
	}
	if len(parts) == 0 {
		t.Fatalf("expected grammar entries in default table")
	}
	if !containsAllInOrder(got, parts) {
		t.Fatalf("expected grammar topics in table order, got:\n%s", got)
	}
	if strings.Contains(got, "cat - mèo") {
		t.Fatalf("grammar response must not include vocabulary")
	}
}

func TestResponder_NotFound(t *testing.T) {
	r := NewResponder(content.Default())
	for _, in := range []string{"quantum physics", "", "   "} {
		if got := r.Respond(in); got != NotFoundMessage {
			t.Fatalf("Respond(%q) expected guidance message, got %q", in, got)
		}
	}
}

func TestResponder_EntryWithoutExample(t *testing.T) {
	table, err := content.NewTable([]domain.ContentEntry{
		{Topic: "phrases", Category: domain.CategoryPhrase, Content: "See you later - Hẹn gặp lại"},
		{Topic: "phrases", Category: domain.CategoryPhrase, Content: "Good luck - Chúc may mắn", Example: "Good luck with your exam!"},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	got := NewResponder(table).Respond("phrases")
	want := "See you later - Hẹn gặp lại\n\nGood luck - Chúc may mắn\nVí dụ:\nGood luck with your exam!"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResponder_TopicContainedInKey(t *testing.T) {
	// La dirección es topic-en-clave: una clave más larga que contiene el topic coincide.
	table, err := content.NewTable([]domain.ContentEntry{
		{Topic: "greetings", Category: domain.CategoryPhrase, Content: "Hello - Xin chào"},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	r := NewResponder(table)
	if got := r.Respond("greetings and goodbyes"); got != "Hello - Xin chào" {
		t.Fatalf("expected superstring key to match, got %q", got)
	}
	if got := r.Respond("greeting"); got != NotFoundMessage {
		t.Fatalf("expected substring key not to match, got %q", got)
	}
}

func TestResponder_Deterministic(t *testing.T) {
	r := NewResponder(nil)
	if r.Respond("exercise") != r.Respond("exercise") {
		t.Fatalf("expected deterministic output")
	}
}

func containsAllInOrder(text string, parts []string) bool {
	idx := 0
	for _, p := range parts {
		pos := strings.Index(text[idx:], p)
		if pos == -1 {
			return false
		}
		idx += pos + len(p)
	}
	return true
}
