package content

import "english-tutor/internal/domain"

var defaultEntries = []domain.ContentEntry{
	{Topic: "animals", Category: domain.CategoryVocabulary, Content: "cat - mèo", Example: "The cat is sleeping on the sofa."},
	{Topic: "animals", Category: domain.CategoryVocabulary, Content: "dog - chó", Example: "My dog likes to run in the park."},
	{Topic: "food", Category: domain.CategoryVocabulary, Content: "apple - quả táo", Example: "I eat an apple every morning."},
	{Topic: "food", Category: domain.CategoryVocabulary, Content: "rice - cơm", Example: "We have rice for dinner."},
	{Topic: "colors", Category: domain.CategoryVocabulary, Content: "red - màu đỏ", Example: "Her dress is red."},
	{Topic: "colors", Category: domain.CategoryVocabulary, Content: "blue - màu xanh dương", Example: "The sky is blue today."},
	{Topic: "phrases", Category: domain.CategoryPhrase, Content: "How are you? - Bạn khỏe không?", Example: "A: How are you?\nB: I'm fine, thank you."},
	{Topic: "phrases", Category: domain.CategoryPhrase, Content: "Thank you very much - Cảm ơn bạn rất nhiều"},
	{Topic: "present simple", Category: domain.CategoryGrammar, Content: "S + V(s/es)", Example: "She **works** in a hospital."},
	{Topic: "present continuous", Category: domain.CategoryGrammar, Content: "S + am/is/are + V-ing", Example: "They are playing football now."},
	{Topic: "past simple", Category: domain.CategoryGrammar, Content: "S + V2/V-ed", Example: "I visited Hanoi last year."},
	{Topic: "future simple", Category: domain.CategoryGrammar, Content: "S + will + V", Example: "I will call you tomorrow."},
	{Topic: "conditional 0", Category: domain.CategoryGrammar, Content: "If + S + V, S + V", Example: "If you heat water, it boils."},
	{Topic: "exercise", Category: domain.CategoryExercise, Content: "Điền vào chỗ trống: She ___ (go) to school every day.", Example: "Đáp án: `goes`"},
	{Topic: "exercise", Category: domain.CategoryExercise, Content: "Chia động từ: Yesterday I ___ (watch) TV.", Example: "Đáp án: `watched`"},
	{Topic: "conversation", Category: domain.CategoryConversation, Content: "Luyện hội thoại: Giới thiệu bản thân", Example: "A: Hi, I'm Nam. What's your name?\nB: I'm Lan. Nice to meet you."},
}

// Default devuelve la tabla de contenido incluida en el binario.
func Default() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}
