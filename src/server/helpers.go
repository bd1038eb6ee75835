package server

import (
	"strconv"

	"market-backdrop/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------

// viewportFromQuery reads width, height and dpr, keeping fallback values
// for missing or malformed parameters, capped at limit.
func viewportFromQuery(c *gin.Context, fallback models.MViewport, limit models.MViewportLimit) models.MViewport {
	return models.MViewport{
		Width:      queryFloat(c, "width", fallback.Width),
		Height:     queryFloat(c, "height", fallback.Height),
		PixelRatio: queryFloat(c, "dpr", fallback.PixelRatio),
	}.Within(limit)
}

// -----------------------------------------------------------------------------

func queryFloat(c *gin.Context, key string, defaultValue float64) float64 {
	if v, ok := c.GetQuery(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// -----------------------------------------------------------------------------

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if v, ok := c.GetQuery(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

// -----------------------------------------------------------------------------

func queryUint64(c *gin.Context, key string, defaultValue uint64) uint64 {
	if v, ok := c.GetQuery(key); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
