// Package tutor generates learning content for a topic through an LLM
// provider: explanations, revision notes, quizzes, doubt answers and
// weekly plans.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/llm"
	"github.com/abhisek/sparklearn/internal/logger"
)

var (
	// ErrInvalidInput is returned for an empty topic, question or subject list.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidContent is returned when generated content is unusable
	// after validation.
	ErrInvalidContent = errors.New("invalid generated content")
)

// Service generates tutoring content.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewService creates a tutor service. log may be nil.
func NewService(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	MicroTask   string `json:"microTask"`
}

// Explain returns a student-friendly explanation of topic.
func (s *Service) Explain(ctx context.Context, topic string, tier difficulty.Tier) (*Explanation, error) {
	topic, tier, err := normalize(topic, tier)
	if err != nil {
		return nil, err
	}

	var out explanationOutput
	err = s.generate(llm.WithPurpose(ctx, llm.PurposeExplain), ExplanationSchema, buildExplainMessage(topic, tier), s.cfg.MaxTokens, &out)
	if err != nil {
		if s.fallback(ctx, "explain", err) {
			return fallbackExplanation(topic, tier, err), nil
		}
		return nil, fmt.Errorf("explain %q: %w", topic, err)
	}

	return &Explanation{
		Topic:       topic,
		Difficulty:  tier,
		Explanation: out.Explanation,
		Example:     out.Example,
		MicroTask:   out.MicroTask,
	}, nil
}

type revisionOutput struct {
	Notes   []NoteSection `json:"notes"`
	Summary string        `json:"summary"`
}

// RevisionNotes returns a revision sheet for topic.
func (s *Service) RevisionNotes(ctx context.Context, topic string, tier difficulty.Tier) (*RevisionNotes, error) {
	topic, tier, err := normalize(topic, tier)
	if err != nil {
		return nil, err
	}

	var out revisionOutput
	err = s.generate(llm.WithPurpose(ctx, llm.PurposeRevision), RevisionSchema, buildRevisionMessage(topic, tier), s.cfg.MaxTokens, &out)
	if err == nil && len(out.Notes) == 0 {
		err = fmt.Errorf("%w: no note sections", ErrInvalidContent)
	}
	if err != nil {
		if s.fallback(ctx, "revision", err) {
			return fallbackRevision(topic, tier), nil
		}
		return nil, fmt.Errorf("revision notes %q: %w", topic, err)
	}

	return &RevisionNotes{
		Topic:      topic,
		Difficulty: tier,
		Notes:      out.Notes,
		Summary:    out.Summary,
	}, nil
}

type questionsOutput struct {
	MCQs []Question `json:"mcqs"`
}

// Questions generates count multiple choice questions. A count of zero
// uses the configured default. Malformed questions are dropped and the
// rest renumbered from 1.
func (s *Service) Questions(ctx context.Context, topic string, tier difficulty.Tier, count int) (*QuestionSet, error) {
	topic, tier, err := normalize(topic, tier)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = max(s.cfg.QuestionCount, 1)
	}
	count = min(count, MaxQuestions)

	var out questionsOutput
	err = s.generate(llm.WithPurpose(ctx, llm.PurposeQuiz), QuestionsSchema, buildQuestionsMessage(topic, tier, count), s.cfg.MaxTokens, &out)
	var questions []Question
	if err == nil {
		questions = ValidQuestions(out.MCQs)
		if len(questions) == 0 {
			err = fmt.Errorf("%w: no usable questions", ErrInvalidContent)
		}
	}
	if err != nil {
		if s.fallback(ctx, "quiz", err) {
			return fallbackQuestions(topic, tier), nil
		}
		return nil, fmt.Errorf("questions %q: %w", topic, err)
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return &QuestionSet{Topic: topic, Difficulty: tier, Questions: questions}, nil
}

// ValidQuestions keeps questions with text, exactly four options and an
// in-range answer, renumbering them from 1.
func ValidQuestions(in []Question) []Question {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			continue
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			continue
		}
		q.ID = len(out) + 1
		out = append(out, q)
	}
	return out
}

// AnswerDoubt answers a free-form question. The last few history
// messages are included as conversation context.
func (s *Service) AnswerDoubt(ctx context.Context, question, topic string, history []ChatMessage) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", ErrInvalidInput)
	}

	var text string
	err := s.generate(llm.WithPurpose(ctx, llm.PurposeDoubt), nil, buildDoubtMessage(question, strings.TrimSpace(topic), history), s.cfg.MaxTokens, &text)
	if err == nil && strings.TrimSpace(text) == "" {
		err = fmt.Errorf("%w: empty answer", ErrInvalidContent)
	}
	if err != nil {
		if s.fallback(ctx, "doubt", err) {
			return fallbackAnswer(), nil
		}
		return nil, fmt.Errorf("answer doubt: %w", err)
	}
	return &Answer{Text: text}, nil
}

type planOutput struct {
	Plan []PlanDay `json:"plan"`
	Tips []string  `json:"tips"`
}

// WeeklyPlan builds a seven-day plan across subjects.
func (s *Service) WeeklyPlan(ctx context.Context, subjects []string, tier difficulty.Tier) (*WeeklyPlan, error) {
	subjects = cleanSubjects(subjects)
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: no subjects", ErrInvalidInput)
	}
	if !tier.Valid() {
		tier = difficulty.Beginner
	}

	var out planOutput
	err := s.generate(llm.WithPurpose(ctx, llm.PurposeStudyPlan), WeeklyPlanSchema, buildPlanMessage(subjects, tier), s.cfg.PlanMaxTokens, &out)
	if err == nil && len(out.Plan) == 0 {
		err = fmt.Errorf("%w: empty plan", ErrInvalidContent)
	}
	if err != nil {
		if s.fallback(ctx, "weekly-plan", err) {
			return fallbackPlan(subjects, tier), nil
		}
		return nil, fmt.Errorf("weekly plan: %w", err)
	}

	for i := range out.Plan {
		for j := range out.Plan[i].Tasks {
			t := &out.Plan[i].Tasks[j]
			if !slices.Contains(taskTypes, any(t.Type)) {
				t.Type = TaskStudy
			}
		}
	}

	return &WeeklyPlan{
		Subjects:   subjects,
		Difficulty: tier,
		Plan:       out.Plan,
		Tips:       out.Tips,
	}, nil
}

func (s *Service) generate(ctx context.Context, schema *llm.Schema, userMsg string, maxTokens int, out any) error {
	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   maxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := resp.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}

// fallback reports whether err should be answered with placeholder
// content. Cancellation always propagates.
func (s *Service) fallback(ctx context.Context, purpose string, err error) bool {
	if !s.cfg.FallbackOnError || ctx.Err() != nil {
		return false
	}
	s.log.Warn("serving fallback content", "purpose", purpose, "error", err)
	return true
}

func normalize(topic string, tier difficulty.Tier) (string, difficulty.Tier, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", "", fmt.Errorf("%w: empty topic", ErrInvalidInput)
	}
	if !tier.Valid() {
		tier = difficulty.Beginner
	}
	return topic, tier, nil
}

func cleanSubjects(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
