package practice

import (
	"context"
	"errors"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/router"
	"github.com/abhisek/sparklearn/internal/screens/result"
	"github.com/abhisek/sparklearn/internal/tutor"
)

type fakeQuizzer struct {
	set    *tutor.QuestionSet
	genErr error

	gotTier *difficulty.Tier
	gotSub  quiz.Submission
}

func (f *fakeQuizzer) Generate(_ context.Context, _, topic string, tier *difficulty.Tier, _ int) (*tutor.QuestionSet, error) {
	f.gotTier = tier
	if f.genErr != nil {
		return nil, f.genErr
	}
	set := *f.set
	set.Topic = topic
	return &set, nil
}

func (f *fakeQuizzer) Submit(_ context.Context, _ string, sub quiz.Submission) (*quiz.Outcome, error) {
	f.gotSub = sub
	res, err := quiz.Score(sub.Questions, sub.Answers)
	if err != nil {
		return nil, err
	}
	return &quiz.Outcome{Result: res, Adjustment: difficulty.Adjust(res.Percent, sub.Tier), Persisted: true}, nil
}

func testSet() *tutor.QuestionSet {
	return &tutor.QuestionSet{
		Difficulty: difficulty.Beginner,
		Questions: []tutor.Question{
			{ID: 1, Question: "2+2?", Options: []string{"3", "4", "5", "6"}, Correct: 1},
			{ID: 2, Question: "3*3?", Options: []string{"6", "8", "9", "12"}, Correct: 2},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// run executes cmd and feeds every non-tick message back into s.
func run(t *testing.T, s *PracticeScreen, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			m := c()
			if _, tick := m.(spinner.TickMsg); tick {
				continue
			}
			out = append(out, m)
		}
		return out
	}
	return append(out, msg)
}

func startQuiz(t *testing.T, f *fakeQuizzer, tierIndex int) *PracticeScreen {
	t.Helper()
	s := New(t.Context(), f, Options{UserID: "student-1", Topic: "Arithmetic", Count: 2})
	s.Update(specialKey(tea.KeyEnter))
	require.Equal(t, phaseTier, s.phase)
	for range tierIndex {
		s.Update(specialKey(tea.KeyDown))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.Equal(t, phaseLoading, s.phase)
	for _, m := range run(t, s, cmd) {
		s.Update(m)
	}
	return s
}

func TestPractice_EmptyTopicStays(t *testing.T) {
	s := New(t.Context(), &fakeQuizzer{set: testSet()}, Options{})
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, phaseTopic, s.phase)
}

func TestPractice_AutoTierLeavesTierUnset(t *testing.T) {
	f := &fakeQuizzer{set: testSet()}
	s := startQuiz(t, f, 0)
	assert.Equal(t, phaseQuestions, s.phase)
	assert.Nil(t, f.gotTier)
	assert.Len(t, s.choices, 2)
}

func TestPractice_ExplicitTier(t *testing.T) {
	f := &fakeQuizzer{set: testSet()}
	startQuiz(t, f, 3)
	require.NotNil(t, f.gotTier)
	assert.Equal(t, difficulty.Advanced, *f.gotTier)
}

func TestPractice_AnswerAndSubmit(t *testing.T) {
	f := &fakeQuizzer{set: testSet()}
	s := startQuiz(t, f, 0)

	s.Update(keyPress('b'))
	assert.Equal(t, 1, s.current, "answering advances")
	_, cmd := s.Update(keyPress('c'))
	require.Equal(t, phaseSubmitting, s.phase, "answering the last question submits")

	msgs := run(t, s, cmd)
	require.Len(t, msgs, 1)
	_, cmd = s.Update(msgs[0])

	assert.Equal(t, map[int]int{1: 1, 2: 2}, f.gotSub.Answers)
	assert.Equal(t, "Arithmetic", f.gotSub.Topic)
	assert.Equal(t, difficulty.Intermediate, s.Tier(), "a perfect score promotes")
	assert.Equal(t, phaseTopic, s.phase)

	var pushed *router.PushScreenMsg
	for _, m := range run(t, s, cmd) {
		if p, ok := m.(router.PushScreenMsg); ok {
			pushed = &p
		}
	}
	require.NotNil(t, pushed)
	assert.IsType(t, &result.ResultScreen{}, pushed.Screen)
}

func TestPractice_GenerationFailure(t *testing.T) {
	f := &fakeQuizzer{genErr: errors.New("provider down")}
	s := startQuiz(t, f, 0)
	assert.Equal(t, phaseError, s.phase)
	assert.Contains(t, s.View(80, 24), "provider down")

	s.Update(keyPress('x'))
	assert.Equal(t, phaseTopic, s.phase)
}

func TestPractice_EscDuringLoadingDropsResult(t *testing.T) {
	f := &fakeQuizzer{set: testSet()}
	s := New(t.Context(), f, Options{Topic: "Arithmetic"})
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEscape))
	assert.Equal(t, phaseTier, s.phase)

	for _, m := range run(t, s, cmd) {
		s.Update(m)
	}
	assert.Equal(t, phaseTier, s.phase, "stale questions are ignored")
}

func TestPractice_NavigateBack(t *testing.T) {
	s := startQuiz(t, &fakeQuizzer{set: testSet()}, 0)
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 0, s.current)
	assert.False(t, s.allAnswered())
	assert.Contains(t, s.View(80, 24), "Question 1/2")
}
