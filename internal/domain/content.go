package domain

// Category clasifica el tipo pedagógico de una entrada de contenido.
type Category string

const (
	CategoryVocabulary   Category = "vocabulary"
	CategoryPhrase       Category = "phrase"
	CategoryGrammar      Category = "grammar"
	CategoryExercise     Category = "exercise"
	CategoryConversation Category = "conversation"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVocabulary, CategoryPhrase, CategoryGrammar, CategoryExercise, CategoryConversation:
		return true
	default:
		return false
	}
}

// ContentEntry es una entrada estática de la tabla de contenido.
type ContentEntry struct {
	Topic    string   `json:"topic" yaml:"topic"`
	Category Category `json:"category" yaml:"category"`
	Content  string   `json:"content" yaml:"content"`
	Example  string   `json:"example,omitempty" yaml:"example,omitempty"`
}
