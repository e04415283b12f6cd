package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
	v1 "github.com/keelridge/blankchart/internal/interfaces/httpserver/routes/v1"
)

// Provider aggregates versioned route registrars.
type Provider struct {
	v1 *v1.Routes
}

// NewProvider builds the route provider from the handler set.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		v1: v1.NewRoutes(handlerProvider),
	}
}

// Register attaches every API version to the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.v1.Register(engine)
}
