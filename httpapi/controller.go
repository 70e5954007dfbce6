package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/service"
)

// Engine is the part of service.Engine the controller needs.
type Engine interface {
	Search(ctx context.Context, req service.SearchRequest) (*service.SearchResponse, error)
	GenerateMaze(ctx context.Context, req service.MazeRequest) (*service.MazeResponse, error)
}

// GridController handles search and maze requests.
type GridController struct {
	engine Engine
}

// NewGridController creates a new GridController.
func NewGridController(e Engine) *GridController {
	return &GridController{
		engine: e,
	}
}

// RegisterPublic registers public routes.
func (c *GridController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/search", c.search)
	route.POST("/maze", c.maze)
	route.GET("/strategies", c.strategies)
}

// search handles POST /search.
func (c *GridController) search(ctx *gin.Context) {
	var request SearchRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := search.ParseStrategy(request.Strategy)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := c.engine.Search(ctx.Request.Context(), request.toService(strategy))
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSearchResponse(res))
}

// maze handles POST /maze.
func (c *GridController) maze(ctx *gin.Context) {
	var request MazeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := c.engine.GenerateMaze(ctx.Request.Context(), service.MazeRequest{
		Rows:     request.Rows,
		Cols:     request.Cols,
		Animated: request.Animated,
		Seed:     request.Seed,
	})
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(request, res))
}

// strategies handles GET /strategies.
func (c *GridController) strategies(ctx *gin.Context) {
	all := search.Strategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}

	ctx.JSON(http.StatusOK, gin.H{"strategies": names})
}

// statusOf maps engine errors to HTTP status codes.
func statusOf(err error) int {
	if errors.Is(err, service.ErrInvalidRequest) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
