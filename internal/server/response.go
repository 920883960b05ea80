package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sparklearn/internal/activity"
	"github.com/abhisek/sparklearn/internal/difficulty"
	"github.com/abhisek/sparklearn/internal/quiz"
	"github.com/abhisek/sparklearn/internal/store"
	"github.com/abhisek/sparklearn/internal/tutor"
)

// Error codes in the JSON envelope.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeUnauthorized     = "unauthorized"
	CodeNotFound         = "not_found"
	CodeGenerationFailed = "generation_failed"
	CodeCancelled        = "request_cancelled"
	CodeInternal         = "internal_error"
)

// statusClientClosedRequest is the conventional status for a request the
// client abandoned.
const statusClientClosedRequest = 499

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondErr maps a service error to the envelope. Anything not
// recognized as bad input or missing identity is blamed on generation
// when generating is true.
func respondErr(c *gin.Context, err error, generating bool) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, tutor.ErrInvalidInput),
		errors.Is(err, quiz.ErrNoQuestions),
		errors.Is(err, difficulty.ErrUnknownTier),
		errors.Is(err, activity.ErrUnknownType):
		RespondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
	case errors.Is(err, store.ErrNoUser):
		RespondError(c, http.StatusUnauthorized, CodeUnauthorized, err)
	case errors.Is(err, store.ErrNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		RespondError(c, statusClientClosedRequest, CodeCancelled, err)
	case generating:
		RespondError(c, http.StatusBadGateway, CodeGenerationFailed, err)
	default:
		RespondError(c, http.StatusInternalServerError, CodeInternal, err)
	}
}
