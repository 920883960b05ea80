package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	userKey    contextKey = "llm_user"
)

// Purposes label generation requests in the event log.
const (
	PurposeExplain   = "explain"
	PurposeRevision  = "revision"
	PurposeQuiz      = "quiz"
	PurposeDoubt     = "doubt"
	PurposeStudyPlan = "study-plan"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithUser tags the context with the requesting user for log lines.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserFrom returns the user tagged by WithUser, or "".
func UserFrom(ctx context.Context) string {
	v, _ := ctx.Value(userKey).(string)
	return v
}
