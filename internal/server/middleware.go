package server

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// logAccess tags each request with an id and logs method, path, status and
// latency once the handler returns.
func (s *Server) logAccess(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		reqId := uuid.New().String()
		ctx.Response.Header.Set("X-Request-Id", reqId)

		start := time.Now()
		next(ctx)

		log.WithFields(log.Fields{
			"request_id": reqId,
			"method":     string(ctx.Method()),
			"path":       string(ctx.Path()),
			"status":     ctx.Response.StatusCode(),
			"duration":   time.Since(start).String(),
		}).Info("request served")
	}
}

func (s *Server) recovery(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("panic while serving %s: %v", ctx.Path(), r)
				ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			}
		}()
		next(ctx)
	}
}
