package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/domain/session"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

type startSessionRequest struct {
	FormData chat.FormSubmission `json:"formData" binding:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func registerSessionRoutes(router gin.IRoutes, handler *handlers.SessionHandler) {
	router.POST("/sessions", startSession(handler))
	router.GET("/sessions/:id", getSession(handler))
	router.POST("/sessions/:id/messages", sendSessionMessage(handler))
	router.POST("/sessions/:id/end", endSession(handler))
	router.POST("/sessions/:id/unload", unloadSession(handler))
}

// startSession godoc
// @Summary      Start a chat session for a fresh idea submission
// @Description  Creates the session and runs the greeting round trip. On relay failure the first assistant message is a local template referencing the destination and the submitter's first name.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request  body      startSessionRequest  true  "Submitted form data"
// @Success      201  {object}  session.Snapshot
// @Failure      400  {object}  errorResponse
// @Router       /v1/sessions [post]
func startSession(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		snap, err := handler.Start(c.Request.Context(), req.FormData)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to start session"})
			return
		}
		c.JSON(http.StatusCreated, snap)
	}
}

// getSession godoc
// @Summary      Fetch a session snapshot
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.Snapshot
// @Failure      404  {object}  errorResponse
// @Router       /v1/sessions/{id} [get]
func getSession(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := handler.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// sendSessionMessage godoc
// @Summary      Send a user message in a session
// @Description  Appends the user message, relays the full history, and appends the assistant reply (or a local apology on relay failure). Reaching six messages via an assistant reply dispatches the transcript automatically.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Session ID"
// @Param        request  body      sendMessageRequest  true  "Message content"
// @Success      200  {object}  session.Snapshot
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/sessions/{id}/messages [post]
func sendSessionMessage(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		snap, err := handler.Send(c.Request.Context(), c.Param("id"), req.Content)
		if err != nil {
			writeSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// endSession godoc
// @Summary      End a session and dispatch the transcript
// @Description  Explicit end action; requires at least three messages and no relay round trip in flight. Dispatch happens at most once per session no matter how many triggers fire.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  session.Snapshot
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/sessions/{id}/end [post]
func endSession(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := handler.End(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

// unloadSession godoc
// @Summary      Page-unload beacon
// @Description  Best-effort dispatch trigger for browsers leaving the page. Always returns 204 immediately; the forward runs detached and its outcome is never observed by the caller.
// @Tags         sessions
// @Param        id   path      string  true  "Session ID"
// @Success      204  "no content"
// @Router       /v1/sessions/{id}/unload [post]
func unloadSession(handler *handlers.SessionHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		// sendBeacon cannot read the response; report nothing either way.
		_ = handler.Unload(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
	case errors.Is(err, session.ErrBusy):
		c.JSON(http.StatusConflict, errorResponse{Error: "a request is already in flight"})
	case errors.Is(err, session.ErrSessionClosed):
		c.JSON(http.StatusConflict, errorResponse{Error: "session already closed"})
	case errors.Is(err, session.ErrTooFewMessages):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "not enough messages to end the chat"})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "something went wrong"})
	}
}
