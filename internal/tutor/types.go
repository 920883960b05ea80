package tutor

import "github.com/abhisek/sparklearn/internal/difficulty"

// Explanation is a topic walkthrough with an example and a short task.
type Explanation struct {
	Topic       string          `json:"topic"`
	Difficulty  difficulty.Tier `json:"difficulty"`
	Explanation string          `json:"explanation"`
	Example     string          `json:"example"`
	MicroTask   string          `json:"microTask"`
	Fallback    bool            `json:"fallback,omitempty"`
}

// NoteSection is one headed block of revision notes.
type NoteSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// RevisionNotes is a revision sheet for a topic.
type RevisionNotes struct {
	Topic      string          `json:"topic"`
	Difficulty difficulty.Tier `json:"difficulty"`
	Notes      []NoteSection   `json:"notes"`
	Summary    string          `json:"summary"`
	Fallback   bool            `json:"fallback,omitempty"`
}

// Question is a four-option multiple choice question. Correct is the
// zero-based index of the right option.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// QuestionSet is a generated quiz.
type QuestionSet struct {
	Topic      string          `json:"topic"`
	Difficulty difficulty.Tier `json:"difficulty"`
	Questions  []Question      `json:"mcqs"`
	Fallback   bool            `json:"fallback,omitempty"`
}

// ChatMessage is one turn of a doubt conversation.
type ChatMessage struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// Answer is the tutor's reply to a doubt.
type Answer struct {
	Text     string `json:"answer"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Task types in a weekly plan.
const (
	TaskStudy    = "study"
	TaskPractice = "practice"
	TaskRevision = "revision"
	TaskReview   = "review"
	TaskBreak    = "break"
)

var taskTypes = []any{TaskStudy, TaskPractice, TaskRevision, TaskReview, TaskBreak}

// PlanTask is one scheduled block of a plan day.
type PlanTask struct {
	Time     string `json:"time"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
	Type     string `json:"type"`
}

// PlanDay is a day of the weekly plan.
type PlanDay struct {
	Day   string     `json:"day"`
	Tasks []PlanTask `json:"tasks"`
}

// WeeklyPlan is a seven-day study schedule.
type WeeklyPlan struct {
	Subjects   []string        `json:"subjects"`
	Difficulty difficulty.Tier `json:"difficulty"`
	Plan       []PlanDay       `json:"plan"`
	Tips       []string        `json:"tips"`
	Fallback   bool            `json:"fallback,omitempty"`
}
