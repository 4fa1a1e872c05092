package web

import (
	"fmt"
	"net/http"
)

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern string, h http.HandlerFunc) {
		r.Handle(pattern, s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware()))
	}

	handle("GET /{$}", s.homeHandler)
	handle("GET /about", s.aboutHandler)
	handle("GET /services", s.servicesHandler)
	handle("GET /gallery", s.galleryHandler)
	handle("GET /contact", s.contactHandler)
	handle("POST /contact", s.contactSubmitHandler)
	handle("GET /rooms", s.roomsHandler)
	handle("GET /booking", s.bookingHandler)
	handle("POST /booking", s.bookingSubmitHandler)
	handle("GET /admin", s.adminHandler)
	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
