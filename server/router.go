package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SearchHandler is the set of HTTP endpoints the router exposes.
type SearchHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	Plot(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	searchHandler   SearchHandler
	router          *mux.Router
	enableDebugPlot bool
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	searchHandler SearchHandler,
	router *mux.Router,
	enableDebugPlot bool) *Router {
	return &Router{
		searchHandler:   searchHandler,
		router:          router,
		enableDebugPlot: enableDebugPlot,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/places/search", r.searchHandler.Search).Methods("POST")

	r.router.HandleFunc("/ping", r.searchHandler.Ping).Methods("GET")

	if r.enableDebugPlot {
		// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={radius_m(float)}
		r.router.HandleFunc("/v1/places/plot", r.searchHandler.Plot).Methods("GET")
	}
}
