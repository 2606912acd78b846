package appdata

import (
	_ "embed"
	"fmt"
)

//go:embed quiz.json
var quizJSON []byte

// EmbeddedQuiz parses the quiz dataset bundled into the binary.
func EmbeddedQuiz() (QuizSet, error) {
	var quiz QuizSet
	if err := decodeValidated("quiz.json", quizSchema, quizJSON, &quiz); err != nil {
		return nil, fmt.Errorf("embedded quiz: %w", err)
	}
	return quiz, nil
}
