package practice

import (
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/tutor"
)

// questionsReadyMsg carries a generated quiz. Seq ties it to the request
// that produced it so results of abandoned requests are dropped.
type questionsReadyMsg struct {
	Seq int
	Set *tutor.QuestionSet
	Err error
}

// submittedMsg carries the scored quiz.
type submittedMsg struct {
	Seq     int
	Outcome *quiz.Outcome
	Err     error
}
