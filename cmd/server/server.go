package main

import (
	"time"

	"github.com/JaimeStill/promptcraft/internal/config"
	"github.com/JaimeStill/promptcraft/internal/infrastructure"
)

// Server owns the infrastructure, mounted modules, and HTTP listener.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
	errs    chan error
}

// NewServer builds every module and the router from cfg without starting anything.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"store", infra.Store.Backend(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
		errs:    make(chan error, 1),
	}, nil
}

// Start runs infrastructure startup hooks and begins serving HTTP.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle, s.fail); err != nil {
		return err
	}

	go func() {
		if err := s.infra.Lifecycle.WaitForStartup(); err != nil {
			s.infra.Logger.Error("startup failed", "error", err)
			s.fail(err)
			return
		}
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Errors delivers the first fatal runtime error.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Shutdown cancels the lifecycle and waits up to timeout for shutdown hooks.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

func (s *Server) fail(err error) {
	select {
	case s.errs <- err:
	default:
	}
}
