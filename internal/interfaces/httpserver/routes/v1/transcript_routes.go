package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

type transcriptRequest struct {
	FormData chat.FormSubmission `json:"formData" binding:"required"`
	Messages []chat.Message      `json:"messages" binding:"required,min=1"`
}

type transcriptResponse struct {
	Success bool `json:"success"`
}

func registerTranscriptRoutes(router gin.IRoutes, handler *handlers.TranscriptHandler) {
	router.POST("/transcript", forwardTranscript(handler))
}

// forwardTranscript godoc
// @Summary      Forward a conversation transcript to the curator
// @Description  Formats the conversation and sends it to the form relay. Delivery is fire-and-forget: the response is success-shaped even when the upstream forward fails, which is only recorded server-side.
// @Tags         transcript
// @Accept       json
// @Produce      json
// @Param        request  body      transcriptRequest  true  "Form data and conversation"
// @Success      200  {object}  transcriptResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/transcript [post]
func forwardTranscript(handler *handlers.TranscriptHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transcriptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		// The lead was already captured by the form submission, so transcript
		// delivery failures are non-actionable for the visitor. The dispatcher
		// logs and counts the true outcome.
		_ = handler.Dispatch(c.Request.Context(), req.FormData, req.Messages)

		c.JSON(http.StatusOK, transcriptResponse{Success: true})
	}
}
