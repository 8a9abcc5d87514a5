package service

import "strings"

// Claves canónicas reconocidas por el normalizador.
const (
	KeyPresentSimple     = "present simple"
	KeyPresentContinuous = "present continuous"
	KeyPastSimple        = "past simple"
	KeyFutureSimple      = "future simple"
	KeyConditional       = "conditional 0"
	KeyGrammar           = "grammar"
	KeyExercise          = "exercise"
	KeyAnimals           = "animals"
	KeyFood              = "food"
	KeyColors            = "colors"
	KeyPhrases           = "phrases"
	KeyConversation      = "conversation"
)

type matcher func(input string) bool

func equals(alias string) matcher {
	return func(input string) bool { return input == alias }
}

func contains(phrase string) matcher {
	return func(input string) bool { return strings.Contains(input, phrase) }
}

type normalizeRule struct {
	match matcher
	key   string
}

// normalizeRules se evalúa en orden; gana la primera coincidencia.
var normalizeRules = []normalizeRule{
	{contains("present simple"), KeyPresentSimple},
	{equals("present"), KeyPresentSimple},
	{contains("present continuous"), KeyPresentContinuous},
	{contains("present progressive"), KeyPresentContinuous},
	{contains("past simple"), KeyPastSimple},
	{equals("past"), KeyPastSimple},
	{contains("future simple"), KeyFutureSimple},
	{equals("future"), KeyFutureSimple},
	// Todos los tipos de condicional colapsan en el tipo 0.
	{contains("conditional"), KeyConditional},
	{contains("grammar"), KeyGrammar},
	{equals("ngữ pháp"), KeyGrammar},
	{contains("exercise"), KeyExercise},
	{equals("bài tập"), KeyExercise},
	{contains("animals"), KeyAnimals},
	{equals("animal"), KeyAnimals},
	{contains("food"), KeyFood},
	{contains("colors"), KeyColors},
	{equals("color"), KeyColors},
	{contains("phrases"), KeyPhrases},
	{equals("phrase"), KeyPhrases},
	{contains("conversation"), KeyConversation},
}

// Normalize convierte texto libre en una clave canónica. Si ninguna regla
// coincide devuelve el input en minúsculas y sin espacios extremos.
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, r := range normalizeRules {
		if r.match(s) {
			return r.key
		}
	}
	return s
}
