package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spfmatch/spfmatch/internal/domain/quiz"
	"github.com/spfmatch/spfmatch/internal/domain/reminder"
	"github.com/spfmatch/spfmatch/internal/domain/resources"
	apperrors "github.com/spfmatch/spfmatch/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	quizSvc     quiz.Service
	reminderSvc reminder.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(quizSvc quiz.Service, reminderSvc reminder.Service, logger *slog.Logger) *Handler {
	return &Handler{
		quizSvc:     quizSvc,
		reminderSvc: reminderSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Questions returns the questionnaire in display order.
func (h *Handler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.quizSvc.Questions(c.Request.Context())})
}

// Evaluate classifies an answer set and returns product recommendations.
func (h *Handler) Evaluate(c *gin.Context) {
	var req quiz.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.quizSvc.Evaluate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "evaluate_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UVReport returns current UV conditions and the reapplication guideline.
func (h *Handler) UVReport(c *gin.Context) {
	req := reminder.ReportRequest{
		FitzpatrickType: queryInt(c, "fitzpatrickType", 3),
		Latitude:        queryFloat(c, "latitude"),
		Longitude:       queryFloat(c, "longitude"),
	}
	c.JSON(http.StatusOK, h.reminderSvc.Report(c.Request.Context(), req))
}

// StartReminder opens a reapplication timer session.
func (h *Handler) StartReminder(c *gin.Context) {
	var req reminder.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	sess, err := h.reminderSvc.Start(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, reminderError(err))
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// ReminderStatus reports the session's timer state.
func (h *Handler) ReminderStatus(c *gin.Context) {
	sess, err := h.reminderSvc.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, reminderError(err))
		return
	}
	c.JSON(http.StatusOK, sess)
}

// RestartReminder re-arms the session's timer with fresh UV conditions.
func (h *Handler) RestartReminder(c *gin.Context) {
	sess, err := h.reminderSvc.Restart(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, reminderError(err))
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CancelReminder stops the timer and frees the session.
func (h *Handler) CancelReminder(c *gin.Context) {
	if err := h.reminderSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, reminderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Resources returns the curated reading list.
func (h *Handler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"articles": resources.Articles()})
}

func reminderError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "reminder_failed"
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "not_found"):
		status = http.StatusNotFound
		code = "not_found"
	case apperrors.IsCode(err, "timer_not_needed"):
		status = http.StatusConflict
		code = "timer_not_needed"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
