package app

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nesymno/property-api/types"
)

const (
	healthStatus  = "ok"
	healthMessage = "Rust backend is running"

	// Numeric offset, so UTC renders as +00:00.
	timestampLayout = "2006-01-02T15:04:05"
	offsetLayout    = "-07:00"
)

type App struct {
	// Now is the wall clock used for health timestamps. Defaults to time.Now.
	Now func() time.Time
}

func New() *App {
	return &App{Now: time.Now}
}

func (app *App) now() time.Time {
	if app.Now == nil {
		return time.Now()
	}
	return app.Now()
}

func (app *App) HealthHandler(c *gin.Context) {
	log.Printf("[%s] health check endpoint called", RequestIDFrom(c))

	response := types.HealthResponse{
		Status:    healthStatus,
		Message:   healthMessage,
		Timestamp: formatTimestamp(app.now()),
	}

	c.JSON(http.StatusOK, response)
}

func (app *App) PropertiesHandler(c *gin.Context) {
	log.Printf("[%s] get properties endpoint called", RequestIDFrom(c))
	c.JSON(http.StatusOK, mockProperties())
}

func (app *App) UsersHandler(c *gin.Context) {
	log.Printf("[%s] get users endpoint called", RequestIDFrom(c))
	c.JSON(http.StatusOK, mockUsers())
}

// formatTimestamp renders t in UTC as RFC 3339. The fraction is omitted when
// zero, otherwise padded to 3, 6 or 9 digits, whichever is the shortest exact
// width.
func formatTimestamp(t time.Time) string {
	t = t.UTC()
	ns := t.Nanosecond()

	var frac string
	switch {
	case ns == 0:
	case ns%1_000_000 == 0:
		frac = fmt.Sprintf(".%03d", ns/1_000_000)
	case ns%1_000 == 0:
		frac = fmt.Sprintf(".%06d", ns/1_000)
	default:
		frac = fmt.Sprintf(".%09d", ns)
	}
	return t.Format(timestampLayout) + frac + t.Format(offsetLayout)
}
