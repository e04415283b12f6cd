package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keelridge/blankchart/internal/interfaces/httpserver/handlers"
)

func registerIdeaRoutes(router gin.IRoutes, handler *handlers.IdeaHandler) {
	router.GET("/ideas", listIdeas(handler))
	router.GET("/ideas/:slug", getIdea(handler))
}

// listIdeas godoc
// @Summary      List the idea catalog
// @Tags         ideas
// @Produce      json
// @Param        tag  query     string  false  "Filter by activity tag"
// @Success      200  {array}   idea.Idea
// @Router       /v1/ideas [get]
func listIdeas(handler *handlers.IdeaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ideas, err := handler.List(c.Request.Context(), c.Query("tag"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list ideas"})
			return
		}
		c.JSON(http.StatusOK, ideas)
	}
}

// getIdea godoc
// @Summary      Fetch one idea by slug
// @Tags         ideas
// @Produce      json
// @Param        slug  path      string  true  "Idea slug"
// @Success      200  {object}  idea.Idea
// @Failure      404  {object}  errorResponse
// @Router       /v1/ideas/{slug} [get]
func getIdea(handler *handlers.IdeaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := handler.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, errorResponse{Error: "idea not found"})
			return
		}
		c.JSON(http.StatusOK, found)
	}
}
