// Package routes defines the routers mounted by the application.
package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/blogem/goodhome/controllers"
)

// Index returns the router mounted at the application root
func Index(ctrl *controllers.Controllers) chi.Router {
	r := chi.NewRouter()
	r.Get("/", ctrl.Home.Index)
	return r
}
