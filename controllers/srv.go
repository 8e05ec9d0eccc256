// controllers/srv.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/cache"
	"github.com/Dhiekson/ToolTrack/engine"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Engine *engine.Engine
	Cache  *cache.SummaryCache
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Engine: engine.New(a.Repo, engine.SystemClock()),
		Cache:  cache.NewSummaryCache(a.RDB, a.Config.CacheTTL),
	}
}

// writeError maps engine error kinds onto status codes; anything untyped
// is a server fault.
func writeError(c *gin.Context, err error) {
	var (
		validation  *engine.ValidationError
		notFound    *engine.NotFoundError
		unavailable *engine.UnavailableError
		conflict    *engine.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
