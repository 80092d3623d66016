// Package server exposes the cube over a small read-only JSON API:
// slice (/api/cara), dice (/api/seccion), dynamic pivot
// (/api/cubo_dinamico), predefined views (/api/cubo) and cell drill-down
// (/api/celda).
package server

import (
	"github.com/fasthttp/router"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/eduardofuncao/cubo/internal/cube"
)

type Server struct {
	addr   string
	ds     cube.Dataset
	router *router.Router
	srv    *fasthttp.Server
}

func New(addr string, ds cube.Dataset) *Server {
	s := &Server{
		addr:   addr,
		ds:     ds,
		router: router.New(),
	}

	s.router.GET("/api/opciones", s.recovery(s.logAccess(s.handleOpciones)))
	s.router.GET("/api/cara", s.recovery(s.logAccess(s.handleCara)))
	s.router.GET("/api/seccion", s.recovery(s.logAccess(s.handleSeccion)))
	s.router.GET("/api/cubo_dinamico", s.recovery(s.logAccess(s.handleCuboDinamico)))
	s.router.GET("/api/cubo", s.recovery(s.logAccess(s.handleCubo)))
	s.router.GET("/api/celda", s.recovery(s.logAccess(s.handleCelda)))

	s.srv = &fasthttp.Server{
		Handler: s.router.Handler,
		Name:    "cubo",
	}
	return s
}

// Handler returns the root request handler, used by tests to serve over
// in-memory listeners.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.router.Handler
}

func (s *Server) Run() error {
	log.Infof("cube API listening on %s (%d records)", s.addr, len(s.ds))
	return s.srv.ListenAndServe(s.addr)
}

func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}
