package server

import (
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const contentJson = "application/json; charset=utf-8"

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status"`
}

func writeJsonResponse(ctx *fasthttp.RequestCtx, resp any) {
	ctx.SetContentType(contentJson)
	jval, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	if _, err := ctx.Write(jval); err != nil {
		return
	}
}

func setBadMsg(ctx *fasthttp.RequestCtx, msg string) {
	if msg == "" {
		msg = "Bad Request"
	}
	ctx.SetStatusCode(fasthttp.StatusBadRequest)
	writeJsonResponse(ctx, errorResponse{Message: msg, StatusCode: fasthttp.StatusBadRequest})
}

// queryParam reads a query-string argument with a fallback, mirroring the
// defaults every endpoint documents.
func queryParam(ctx *fasthttp.RequestCtx, name, fallback string) string {
	if v := ctx.QueryArgs().Peek(name); len(v) > 0 {
		return string(v)
	}
	return fallback
}
