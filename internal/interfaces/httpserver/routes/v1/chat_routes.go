package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/domain/chat"
	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

type chatRequest struct {
	Messages []chat.Message       `json:"messages" binding:"required,min=1"`
	FormData *chat.FormSubmission `json:"formData"`
}

type chatResponse struct {
	Message string `json:"message" example:"Hey Ana! Love the Faroe Islands idea."`
}

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", createChatReply(handler))
}

// createChatReply godoc
// @Summary      Relay a conversation to the assistant
// @Description  Forwards the message history (plus optional one-shot form context) to the model provider and returns the reply text.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      chatRequest  true  "Conversation history"
// @Success      200  {object}  chatResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/chat [post]
func createChatReply(handler *handlers.ChatHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		message, err := handler.Reply(c.Request.Context(), req.Messages, req.FormData)
		if err != nil {
			// Upstream detail never reaches the caller.
			if errors.Is(err, chat.ErrNotConfigured) {
				c.JSON(http.StatusInternalServerError, errorResponse{Error: "assistant is not configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get response"})
			return
		}

		c.JSON(http.StatusOK, chatResponse{Message: message})
	}
}
