package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/dashboard"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/study"
	"github.com/abhisek/sparklearn/internal/tutor"
)

type handlers struct {
	study     *study.Service
	quiz      *quiz.Service
	dashboard *dashboard.Service
}

func (h *handlers) healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// bind decodes the JSON body, answering 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("%w: %v", tutor.ErrInvalidInput, err))
		return false
	}
	return true
}

// tierOrDefault parses an optional tier; empty means beginner.
func tierOrDefault(s string) (difficulty.Tier, error) {
	if s == "" {
		return difficulty.Beginner, nil
	}
	return difficulty.ParseTier(s)
}

// GET /api/dashboard
func (h *handlers) getDashboard(c *gin.Context) {
	d, err := h.dashboard.Load(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, d)
}

// GET /api/stats
func (h *handlers) getStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, stats)
}

// GET /api/history?type=quiz
func (h *handlers) getHistory(c *gin.Context) {
	var typ activity.Type
	if q := c.Query("type"); q != "" {
		t, err := activity.ParseType(q)
		if err != nil {
			respondErr(c, err, false)
			return
		}
		typ = t
	}
	events, err := h.dashboard.History(c.Request.Context(), userID(c), typ)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, gin.H{"history": events})
}

// GET /api/progress
func (h *handlers) getProgress(c *gin.Context) {
	snap, err := h.dashboard.Progress(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, snap)
}

// PATCH /api/progress
// body: { "streak": 3, "currentLevel": "advanced", ... }
func (h *handlers) patchProgress(c *gin.Context) {
	var p activity.Patch
	if !bind(c, &p) {
		return
	}
	if p.Tier != nil && !p.Tier.Valid() {
		respondErr(c, fmt.Errorf("%w: %q", difficulty.ErrUnknownTier, *p.Tier), false)
		return
	}
	for _, n := range []*int{p.TopicsStudied, p.QuizzesCompleted, p.Streak, p.TotalStudyTime} {
		if n != nil && *n < 0 {
			respondErr(c, fmt.Errorf("%w: counters cannot be negative", tutor.ErrInvalidInput), false)
			return
		}
	}
	snap, err := h.dashboard.UpdateProgress(c.Request.Context(), userID(c), p)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, snap)
}

type topicRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// POST /api/learn
func (h *handlers) learn(c *gin.Context) {
	var req topicRequest
	if !bind(c, &req) {
		return
	}
	tier, err := tierOrDefault(req.Difficulty)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	exp, err := h.study.Learn(c.Request.Context(), userID(c), req.Topic, tier)
	if err != nil {
		respondErr(c, err, true)
		return
	}
	RespondOK(c, exp)
}

// POST /api/revision
func (h *handlers) revise(c *gin.Context) {
	var req topicRequest
	if !bind(c, &req) {
		return
	}
	tier, err := tierOrDefault(req.Difficulty)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	notes, err := h.study.Revise(c.Request.Context(), userID(c), req.Topic, tier)
	if err != nil {
		respondErr(c, err, true)
		return
	}
	RespondOK(c, notes)
}

// POST /api/doubts
// body: { "question": "...", "topic": "...", "history": [{ "text": "...", "isUser": true }] }
func (h *handlers) askDoubt(c *gin.Context) {
	var req struct {
		Question string              `json:"question"`
		Topic    string              `json:"topic"`
		History  []tutor.ChatMessage `json:"history"`
	}
	if !bind(c, &req) {
		return
	}
	ans, err := h.study.AskDoubt(c.Request.Context(), userID(c), req.Question, req.Topic, req.History)
	if err != nil {
		respondErr(c, err, true)
		return
	}
	RespondOK(c, ans)
}

// POST /api/weekly-plan
func (h *handlers) weeklyPlan(c *gin.Context) {
	var req struct {
		Subjects   []string `json:"subjects"`
		Difficulty string   `json:"difficulty"`
	}
	if !bind(c, &req) {
		return
	}
	tier, err := tierOrDefault(req.Difficulty)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	plan, err := h.study.PlanWeek(c.Request.Context(), req.Subjects, tier)
	if err != nil {
		respondErr(c, err, true)
		return
	}
	RespondOK(c, plan)
}

// POST /api/quiz/generate
// An omitted difficulty uses the tier stored in the user's progress.
func (h *handlers) generateQuiz(c *gin.Context) {
	var req struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count"`
	}
	if !bind(c, &req) {
		return
	}
	var tier *difficulty.Tier
	if req.Difficulty != "" {
		t, err := difficulty.ParseTier(req.Difficulty)
		if err != nil {
			respondErr(c, err, false)
			return
		}
		tier = &t
	}
	set, err := h.quiz.Generate(c.Request.Context(), userID(c), req.Topic, tier, req.Count)
	if err != nil {
		respondErr(c, err, true)
		return
	}
	RespondOK(c, set)
}

// POST /api/quiz/submit
// body: { "topic", "difficulty", "questions": [...], "answers": { "1": 2 } }
func (h *handlers) submitQuiz(c *gin.Context) {
	var req struct {
		Topic      string           `json:"topic"`
		Difficulty string           `json:"difficulty"`
		Questions  []tutor.Question `json:"questions"`
		Answers    map[int]int      `json:"answers"`
	}
	if !bind(c, &req) {
		return
	}
	tier, err := tierOrDefault(req.Difficulty)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	out, err := h.quiz.Submit(c.Request.Context(), userID(c), quiz.Submission{
		Topic:     req.Topic,
		Tier:      tier,
		Questions: req.Questions,
		Answers:   req.Answers,
	})
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, out)
}

// GET /api/quiz/attempts?limit=10
func (h *handlers) listAttempts(c *gin.Context) {
	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("invalid limit %q", q))
			return
		}
		limit = n
	}
	attempts, err := h.quiz.Attempts(c.Request.Context(), userID(c), limit)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	if attempts == nil {
		attempts = []store.QuizAttempt{}
	}
	RespondOK(c, gin.H{"attempts": attempts})
}

// GET /api/bookmarks
func (h *handlers) listBookmarks(c *gin.Context) {
	bookmarks, err := h.study.Bookmarks(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	if bookmarks == nil {
		bookmarks = []store.Bookmark{}
	}
	RespondOK(c, gin.H{"bookmarks": bookmarks})
}

// PUT /api/bookmarks
func (h *handlers) saveBookmark(c *gin.Context) {
	var req topicRequest
	if !bind(c, &req) {
		return
	}
	// Unknown tiers are stored as beginner rather than rejected.
	b, err := h.study.SaveBookmark(c.Request.Context(), userID(c), req.Topic, difficulty.Tier(req.Difficulty))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, b)
}

// DELETE /api/bookmarks/:id
func (h *handlers) deleteBookmark(c *gin.Context) {
	if err := h.study.RemoveBookmark(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		respondErr(c, err, false)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/notes
func (h *handlers) listNotes(c *gin.Context) {
	notes, err := h.study.Notes(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err, false)
		return
	}
	if notes == nil {
		notes = []store.Note{}
	}
	RespondOK(c, gin.H{"notes": notes})
}

// PUT /api/notes
func (h *handlers) saveNote(c *gin.Context) {
	var req struct {
		Topic   string `json:"topic"`
		Content string `json:"content"`
	}
	if !bind(c, &req) {
		return
	}
	n, err := h.study.SaveNote(c.Request.Context(), userID(c), req.Topic, req.Content)
	if err != nil {
		respondErr(c, err, false)
		return
	}
	RespondOK(c, n)
}

// DELETE /api/notes/:id
func (h *handlers) deleteNote(c *gin.Context) {
	if err := h.study.RemoveNote(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		respondErr(c, err, false)
		return
	}
	c.Status(http.StatusNoContent)
}
