// Package practice is the interactive quiz screen: pick a topic, answer
// generated questions, submit for scoring.
package practice

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/router"
	"github.com/abhisek/sparklearn/internal/screen"
	"github.com/abhisek/sparklearn/internal/screens/result"
	"github.com/abhisek/sparklearn/internal/tutor"
	"github.com/abhisek/sparklearn/internal/ui/components"
	"github.com/abhisek/sparklearn/internal/ui/layout"
)

// Quizzer generates and scores quizzes. *quiz.Service satisfies it.
type Quizzer interface {
	Generate(ctx context.Context, userID, topic string, tier *difficulty.Tier, count int) (*tutor.QuestionSet, error)
	Submit(ctx context.Context, userID string, sub quiz.Submission) (*quiz.Outcome, error)
}

type phase int

const (
	phaseTopic phase = iota
	phaseTier
	phaseLoading
	phaseQuestions
	phaseSubmitting
	phaseError
)

// autoTier is the menu value for "use my stored level".
const autoTier = ""

// Options configure a practice screen.
type Options struct {
	UserID string
	// Tier is the student's current tier, shown in the header.
	Tier  difficulty.Tier
	Count int
	// Topic pre-fills the topic input.
	Topic string
}

type PracticeScreen struct {
	ctx  context.Context
	quiz Quizzer
	opts Options

	phase   phase
	tier    difficulty.Tier
	input   components.TextInput
	tiers   components.Menu
	spinner components.Spinner
	seq     int
	errMsg  string

	topic   string
	set     *tutor.QuestionSet
	choices []components.MultiChoice
	current int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.TierProvider = (*PracticeScreen)(nil)

// New creates a practice screen. Generation and scoring run under ctx.
func New(ctx context.Context, q Quizzer, opts Options) *PracticeScreen {
	items := []components.MenuItem{{Label: "My level", Hint: "from your progress", Value: autoTier}}
	for _, t := range difficulty.AllTiers() {
		items = append(items, components.MenuItem{Label: t.DisplayName(), Value: string(t)})
	}
	s := &PracticeScreen{
		ctx:   ctx,
		quiz:  q,
		opts:  opts,
		tier:  opts.Tier,
		input: components.NewTextInput("e.g. Photosynthesis", 80),
		tiers: components.NewMenu(items),
	}
	s.input.SetValue(opts.Topic)
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PracticeScreen) Title() string { return "Practice" }

func (s *PracticeScreen) Tier() difficulty.Tier { return s.tier }

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseTopic:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
	case phaseTier:
		return []layout.KeyHint{{Key: "↑↓", Description: "Choose"}, {Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Back"}}
	case phaseQuestions:
		hints := []layout.KeyHint{{Key: "A-D", Description: "Answer"}, {Key: "←→", Description: "Move"}}
		if s.allAnswered() {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	case phaseError:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestions(msg)
	case submittedMsg:
		return s.handleSubmitted(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseTopic {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch s.phase {
	case phaseTopic:
		switch key {
		case "esc":
			return s, tea.Quit
		case "enter":
			if s.input.Value() == "" {
				return s, nil
			}
			s.topic = s.input.Value()
			s.phase = phaseTier
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseTier:
		switch key {
		case "esc":
			s.phase = phaseTopic
			return s, s.input.Init()
		case "enter":
			return s, s.startGenerate()
		}
		s.tiers, _ = s.tiers.Update(msg)
		return s, nil

	case phaseLoading, phaseSubmitting:
		if key == "esc" && s.phase == phaseLoading {
			s.seq++
			s.phase = phaseTier
		}
		return s, nil

	case phaseQuestions:
		return s.handleQuestionKey(key, msg)

	case phaseError:
		s.errMsg = ""
		s.phase = phaseTopic
		return s, s.input.Init()
	}
	return s, nil
}

func (s *PracticeScreen) handleQuestionKey(key string, msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.reset()
		return s, s.input.Init()
	case "left", "shift+tab":
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case "right", "tab":
		if s.current < len(s.choices)-1 {
			s.current++
		}
		return s, nil
	case "ctrl+s":
		if s.allAnswered() {
			return s, s.startSubmit()
		}
		return s, nil
	}

	mc := s.choices[s.current]
	before := mc.Chosen
	mc, _ = mc.Update(msg)
	s.choices[s.current] = mc

	if mc.Chosen != before && mc.Chosen >= 0 {
		if s.current < len(s.choices)-1 {
			s.current++
		} else if s.allAnswered() {
			return s, s.startSubmit()
		}
	}
	return s, nil
}

func (s *PracticeScreen) startGenerate() tea.Cmd {
	s.seq++
	s.phase = phaseLoading
	s.spinner = components.NewSpinner("Writing your questions...")

	seq, topic := s.seq, s.topic
	var tier *difficulty.Tier
	if v := s.tiers.Chosen().Value; v != autoTier {
		t := difficulty.Tier(v)
		tier = &t
	}
	ctx, q, user, count := s.ctx, s.quiz, s.opts.UserID, s.opts.Count
	return tea.Batch(s.spinner.Tick(), func() tea.Msg {
		set, err := q.Generate(ctx, user, topic, tier, count)
		return questionsReadyMsg{Seq: seq, Set: set, Err: err}
	})
}

func (s *PracticeScreen) handleQuestions(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq || s.phase != phaseLoading {
		return s, nil
	}
	if msg.Err != nil {
		s.fail(msg.Err)
		return s, nil
	}
	if msg.Set == nil || len(msg.Set.Questions) == 0 {
		s.fail(quiz.ErrNoQuestions)
		return s, nil
	}
	s.set = msg.Set
	s.choices = make([]components.MultiChoice, len(msg.Set.Questions))
	for i, q := range msg.Set.Questions {
		s.choices[i] = components.NewMultiChoice(q.Question, q.Options, q.Correct)
	}
	s.current = 0
	s.phase = phaseQuestions
	return s, nil
}

func (s *PracticeScreen) startSubmit() tea.Cmd {
	s.seq++
	s.phase = phaseSubmitting
	s.spinner = components.NewSpinner("Scoring...")

	sub := quiz.Submission{
		Topic:     s.topic,
		Tier:      s.set.Difficulty,
		Questions: s.set.Questions,
		Answers:   s.answers(),
	}
	seq, ctx, q, user := s.seq, s.ctx, s.quiz, s.opts.UserID
	return tea.Batch(s.spinner.Tick(), func() tea.Msg {
		out, err := q.Submit(ctx, user, sub)
		return submittedMsg{Seq: seq, Outcome: out, Err: err}
	})
}

func (s *PracticeScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq || s.phase != phaseSubmitting {
		return s, nil
	}
	if msg.Err != nil {
		s.fail(msg.Err)
		return s, nil
	}
	s.tier = msg.Outcome.Adjustment.NewTier
	res := result.New(s.topic, msg.Outcome, s.set.Questions, s.answers())
	s.reset()
	return s, tea.Batch(s.input.Init(), func() tea.Msg {
		return router.PushScreenMsg{Screen: res}
	})
}

// answers keys chosen options by question ID.
func (s *PracticeScreen) answers() map[int]int {
	out := make(map[int]int, len(s.choices))
	for i, mc := range s.choices {
		if mc.Answered() {
			out[s.set.Questions[i].ID] = mc.Chosen
		}
	}
	return out
}

func (s *PracticeScreen) allAnswered() bool {
	if len(s.choices) == 0 {
		return false
	}
	for _, mc := range s.choices {
		if !mc.Answered() {
			return false
		}
	}
	return true
}

func (s *PracticeScreen) fail(err error) {
	s.errMsg = err.Error()
	s.phase = phaseError
}

// reset returns to topic entry, keeping the last topic.
func (s *PracticeScreen) reset() {
	s.phase = phaseTopic
	s.set = nil
	s.choices = nil
	s.current = 0
}
