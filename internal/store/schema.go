package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableActivityEvents = "activity_events"
	tableProgress       = "progress"
	tableQuizAttempts   = "quiz_attempts"
	tableBookmarks      = "bookmarks"
	tableNotes          = "notes"
	tableLLMEvents      = "llm_request_events"

	colUserID = "user_id"
)

// userTables are the tables partitioned by user_id.
var userTables = []string{tableActivityEvents, tableProgress, tableQuizAttempts, tableBookmarks, tableNotes}

var (
	activityEventsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	activityEventsTable = &schema.Table{
		Name:       tableActivityEvents,
		Columns:    activityEventsColumns,
		PrimaryKey: []*schema.Column{activityEventsColumns[0], activityEventsColumns[1]},
		Indexes: []*schema.Index{
			{Name: "activityevent_user_id_timestamp", Columns: []*schema.Column{activityEventsColumns[0], activityEventsColumns[6]}},
		},
	}

	// Nullable counters are unset overrides.
	progressColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "topics_studied", Type: field.TypeInt, Nullable: true},
		{Name: "quizzes_completed", Type: field.TypeInt, Nullable: true},
		{Name: "streak", Type: field.TypeInt, Nullable: true},
		{Name: "total_study_time", Type: field.TypeInt, Nullable: true},
		{Name: "tier", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	progressTable = &schema.Table{
		Name:       tableProgress,
		Columns:    progressColumns,
		PrimaryKey: []*schema.Column{progressColumns[0]},
	}

	quizAttemptsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "quiz_date", Type: field.TypeTime},
	}
	quizAttemptsTable = &schema.Table{
		Name:       tableQuizAttempts,
		Columns:    quizAttemptsColumns,
		PrimaryKey: []*schema.Column{quizAttemptsColumns[0], quizAttemptsColumns[1]},
		Indexes: []*schema.Index{
			{Name: "quizattempt_user_id_quiz_date", Columns: []*schema.Column{quizAttemptsColumns[0], quizAttemptsColumns[8]}},
		},
	}

	bookmarksColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "saved_at", Type: field.TypeTime},
	}
	bookmarksTable = &schema.Table{
		Name:       tableBookmarks,
		Columns:    bookmarksColumns,
		PrimaryKey: []*schema.Column{bookmarksColumns[0], bookmarksColumns[1]},
	}

	notesColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "saved_at", Type: field.TypeTime},
	}
	notesTable = &schema.Table{
		Name:       tableNotes,
		Columns:    notesColumns,
		PrimaryKey: []*schema.Column{notesColumns[0], notesColumns[1]},
	}

	llmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmEventsTable = &schema.Table{
		Name:       tableLLMEvents,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmEventsColumns[1]}},
		},
	}

	// Tables holds every table the store migrates.
	Tables = []*schema.Table{
		activityEventsTable,
		progressTable,
		quizAttemptsTable,
		bookmarksTable,
		notesTable,
		llmEventsTable,
	}
)
