package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes under the /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerChatRoutes(group, r.handlers.Chat)
	registerTranscriptRoutes(group, r.handlers.Transcript)
	registerSessionRoutes(group, r.handlers.Session)
	registerIdeaRoutes(group, r.handlers.Idea)
}

type errorResponse struct {
	Error string `json:"error"`
}
