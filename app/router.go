package app

import "github.com/gin-gonic/gin"

const APIPrefix = "/api/v1"

// Endpoints lists the served routes in registration order. Each also
// answers HEAD.
var Endpoints = []string{
	"GET " + APIPrefix + "/health",
	"GET " + APIPrefix + "/properties",
	"GET " + APIPrefix + "/users",
}

func NewRouter(app *App) *gin.Engine {
	r := gin.New()
	// Unknown paths stay 404 and wrong methods 405; no slash redirects.
	r.HandleMethodNotAllowed = true
	r.RedirectTrailingSlash = false

	r.Use(gin.Recovery(), RequestID(), AccessLog(), CORS())

	v1 := r.Group(APIPrefix)
	routes := []struct {
		path    string
		handler gin.HandlerFunc
	}{
		{"/health", app.HealthHandler},
		{"/properties", app.PropertiesHandler},
		{"/users", app.UsersHandler},
	}
	for _, rt := range routes {
		v1.GET(rt.path, rt.handler)
		v1.HEAD(rt.path, rt.handler)
	}

	return r
}
