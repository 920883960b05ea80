package server

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(d.Log))
	r.Use(CORS(d.CORSOrigins))

	h := &handlers{study: d.Study, quiz: d.Quiz, dashboard: d.Dashboard}

	r.GET("/healthcheck", h.healthCheck)

	api := r.Group("/api")
	api.Use(Identity(d.Tokens))
	{
		// Dashboard
		api.GET("/dashboard", h.getDashboard)
		api.GET("/stats", h.getStats)
		api.GET("/history", h.getHistory)
		api.GET("/progress", h.getProgress)

		// Study
		api.POST("/learn", h.learn)
		api.POST("/revision", h.revise)
		api.POST("/doubts", h.askDoubt)
		api.POST("/weekly-plan", h.weeklyPlan)

		// Quiz
		api.POST("/quiz/generate", h.generateQuiz)
		api.POST("/quiz/submit", h.submitQuiz)
		api.GET("/quiz/attempts", h.listAttempts)

		// Library
		api.GET("/bookmarks", h.listBookmarks)
		api.GET("/notes", h.listNotes)
	}

	protected := api.Group("/")
	protected.Use(RequireUser())
	{
		protected.PATCH("/progress", h.patchProgress)

		protected.PUT("/bookmarks", h.saveBookmark)
		protected.DELETE("/bookmarks/:id", h.deleteBookmark)

		protected.PUT("/notes", h.saveNote)
		protected.DELETE("/notes/:id", h.deleteNote)
	}

	return r
}
