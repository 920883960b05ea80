package tutor

// Config holds generation settings.
type Config struct {
	MaxTokens     int
	PlanMaxTokens int // weekly plans are long; they get their own budget
	Temperature   float64

	// QuestionCount is used when a caller asks for zero questions.
	QuestionCount int

	// FallbackOnError returns placeholder content marked Fallback instead
	// of an error when the provider fails.
	FallbackOnError bool
}

// DefaultConfig returns sensible defaults for tutoring content.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		PlanMaxTokens: 8192,
		Temperature:   0.7,
		QuestionCount: 5,
	}
}

// MaxQuestions bounds a single quiz.
const MaxQuestions = 20

// DoubtContextMessages is how much chat history accompanies a doubt.
const DoubtContextMessages = 6
