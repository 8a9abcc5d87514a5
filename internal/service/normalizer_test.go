package service

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"  Present Simple please", KeyPresentSimple},
		{"present", KeyPresentSimple},
		{"how to use present continuous?", KeyPresentContinuous},
		{"PAST", KeyPastSimple},
		{"explain past simple", KeyPastSimple},
		{"future", KeyFutureSimple},
		{"what is conditional 2", KeyConditional},
		{"conditional type 3", KeyConditional},
		{"grammar", KeyGrammar},
		{"give me an exercise", KeyExercise},
		{"tell me about animals", KeyAnimals},
		{"food", KeyFood},
		{"colors", KeyColors},
		{"useful phrases", KeyPhrases},
		{"let's practice conversation", KeyConversation},
		{"  Something Else  ", "something else"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.input); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalize_IdempotentOnCanonicalKeys(t *testing.T) {
	keys := []string{
		KeyPresentSimple, KeyPresentContinuous, KeyPastSimple, KeyFutureSimple,
		KeyConditional, KeyGrammar, KeyExercise, KeyAnimals, KeyFood, KeyColors,
		KeyPhrases, KeyConversation, "unknown words",
	}
	for _, k := range keys {
		once := Normalize(k)
		if twice := Normalize(once); twice != once {
			t.Fatalf("expected idempotent normalize for %q, got %q then %q", k, once, twice)
		}
	}
}

func TestNormalize_PresentSimplePriority(t *testing.T) {
	// "present simple" gana aunque el texto mencione otras reglas.
	inputs := []string{
		"present simple grammar exercise",
		"conditional or present simple?",
		"animals in present simple",
	}
	for _, in := range inputs {
		if got := Normalize(in); got != KeyPresentSimple {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, KeyPresentSimple)
		}
	}
}
