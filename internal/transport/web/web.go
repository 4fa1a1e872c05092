package web

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/HackerShabi/hotelwebsite/internal/admin"
	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
)

type Server struct {
	srv       *http.Server
	router    *http.ServeMux
	l         *logger.Logger
	conf      Conf
	templates *template.Template
	content   *catalog.Content
	apiClient *api.Client
	adminView *admin.View
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(
	ctx context.Context,
	conf Conf,
	content *catalog.Content,
	apiClient *api.Client,
	adminView *admin.View,
) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	server := &Server{
		srv:       srv,
		router:    mux,
		l:         conf.L,
		conf:      conf,
		templates: templates,
		content:   content,
		apiClient: apiClient,
		adminView: adminView,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
