package controllers

import (
	"bytes"
	"net/http"

	"github.com/blogem/goodhome/errorpage"
	"github.com/blogem/goodhome/metrics"
	"github.com/blogem/goodhome/services"
	"github.com/blogem/goodhome/views"
)

// Options holds what controllers need; every field may be left empty
type Options struct {
	Views     views.Engine
	Responder *errorpage.Responder
	Metrics   *metrics.Metrics
	Services  *services.Services
}

// renderer renders views and answers render failures
type renderer struct {
	views     views.Engine
	responder *errorpage.Responder
	metrics   *metrics.Metrics
}

// render renders a view with the provided data and status code.
// Nothing is written before the view has rendered completely.
func (rd *renderer) render(w http.ResponseWriter, r *http.Request, statusCode int, view string, data interface{}) {
	var buf bytes.Buffer
	err := views.Render(rd.views, &buf, view, data)
	rd.metrics.RecordViewRender(view, err)

	if err != nil {
		rd.responder.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = buf.WriteTo(w)
}

// Controllers holds all controller instances
type Controllers struct {
	Home   *HomeController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(opts Options) *Controllers {
	responder := opts.Responder
	if responder == nil {
		responder = &errorpage.Responder{}
	}

	srvs := opts.Services
	if srvs == nil {
		srvs = &services.Services{}
	}

	rd := &renderer{
		views:     opts.Views,
		responder: responder,
		metrics:   opts.Metrics,
	}

	return &Controllers{
		Home:   newHomeController(rd),
		Health: NewHealthController(srvs),
	}
}
