package tutor

import (
	"fmt"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

func fallbackExplanation(topic string, tier difficulty.Tier, err error) *Explanation {
	return &Explanation{
		Topic:       topic,
		Difficulty:  tier,
		Explanation: fmt.Sprintf("⚠️ **AI Error:** %v\n\nPlease check:\n• The LLM provider API key is set\n• The provider is reachable\n• The server logs for details", err),
		Example:     "Unable to generate. See error above.",
		MicroTask:   "📝 Try again in a moment.",
		Fallback:    true,
	}
}

func fallbackRevision(topic string, tier difficulty.Tier) *RevisionNotes {
	return &RevisionNotes{
		Topic:      topic,
		Difficulty: tier,
		Notes:      []NoteSection{{Heading: "Error", Content: "Could not generate revision notes. Please try again."}},
		Summary:    "Please try again in a moment.",
		Fallback:   true,
	}
}

func fallbackQuestions(topic string, tier difficulty.Tier) *QuestionSet {
	return &QuestionSet{
		Topic:      topic,
		Difficulty: tier,
		Questions: []Question{{
			ID:          1,
			Question:    fmt.Sprintf("Could not generate questions for %q. Please try again.", topic),
			Options:     []string{"Try again", "Refresh", "Change topic", "Check connection"},
			Correct:     0,
			Explanation: "There was an API error. Please try again.",
		}},
		Fallback: true,
	}
}

func fallbackAnswer() *Answer {
	return &Answer{
		Text:     "Oops! I had trouble processing that. Could you try rephrasing your question? 😅",
		Fallback: true,
	}
}

func fallbackPlan(subjects []string, tier difficulty.Tier) *WeeklyPlan {
	return &WeeklyPlan{
		Subjects:   subjects,
		Difficulty: tier,
		Plan: []PlanDay{{
			Day:   "Error",
			Tasks: []PlanTask{{Task: "Could not generate plan. Please try again.", Type: TaskStudy}},
		}},
		Tips:     []string{"Please try again in a moment."},
		Fallback: true,
	}
}
