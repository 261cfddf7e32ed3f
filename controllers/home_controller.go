package controllers

import (
	"net/http"

	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/requestctx"
)

// HomeController handles the home page
type HomeController struct {
	*renderer
}

// newHomeController creates a new home controller
func newHomeController(rd *renderer) *HomeController {
	return &HomeController{renderer: rd}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	page := models.NewPageData("Good Home", "home")
	page.RequestID = requestctx.GetRequestID(r.Context())

	c.render(w, r, http.StatusOK, "index", page)
}
