package quiz

import (
	"errors"
	"math"

	"github.com/abhisek/sparklearn/internal/tutor"
)

// ErrNoQuestions is returned when scoring an empty quiz.
var ErrNoQuestions = errors.New("quiz has no questions")

// Result is the outcome of scoring a quiz.
type Result struct {
	Correct int `json:"correctAnswers"`
	Total   int `json:"totalQuestions"`
	Percent int `json:"score"`
}

// Score counts answers matching each question's correct option. answers
// maps question ID to the chosen option index; missing IDs are wrong.
func Score(questions []tutor.Question, answers map[int]int) (Result, error) {
	if len(questions) == 0 {
		return Result{}, ErrNoQuestions
	}

	r := Result{Total: len(questions)}
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.Correct {
			r.Correct++
		}
	}
	r.Percent = int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
	return r, nil
}
