// Package client talks to a cube API server and decodes its result sets.
// It knows the three response shapes the API uses: {columns, data},
// {cols, data}, and a map of view label to row records.
package client

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"

	"github.com/eduardofuncao/cubo/internal/cube"
	"github.com/eduardofuncao/cubo/internal/view"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 15 * time.Second

type Client struct {
	BaseURL string
	HTTP    *fasthttp.Client
	Timeout time.Duration
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &fasthttp.Client{},
		Timeout: defaultTimeout,
	}
}

type Options struct {
	Dimensiones []string `json:"dimensiones"`
	Metricas    []string `json:"metricas"`
}

// NamedView is one predefined view of /api/cubo, with its column order
// inferred from the first record.
type NamedView struct {
	Label  string
	Result cube.ResultSet
}

// resultEnvelope covers both {columns, data} and {cols, data} responses.
type resultEnvelope struct {
	Columns []string         `json:"columns"`
	Cols    []string         `json:"cols"`
	Data    []map[string]any `json:"data"`
}

func (e resultEnvelope) toResultSet() cube.ResultSet {
	columns := e.Columns
	if columns == nil {
		columns = e.Cols
	}
	return cube.ResultSet{Columns: columns, Data: e.Data}
}

func (c *Client) Opciones() (Options, error) {
	body, err := c.get("/api/opciones", nil)
	if err != nil {
		return Options{}, err
	}
	var opts Options
	if err := json.Unmarshal(body, &opts); err != nil {
		return Options{}, fmt.Errorf("decode opciones: %w", err)
	}
	return opts, nil
}

func (c *Client) Cara(dimX, dimY, metric string) (cube.ResultSet, error) {
	return c.fetchResultSet("/api/cara", url.Values{
		"dim_x":  {dimX},
		"dim_y":  {dimY},
		"metric": {metric},
	})
}

func (c *Client) Seccion(anios, regiones, productos, canales string) (cube.ResultSet, error) {
	params := url.Values{}
	setIfPresent(params, "anios", anios)
	setIfPresent(params, "regiones", regiones)
	setIfPresent(params, "productos", productos)
	setIfPresent(params, "canales", canales)
	return c.fetchResultSet("/api/seccion", params)
}

func (c *Client) CuboDinamico(index, columns, metric string) (cube.ResultSet, error) {
	return c.fetchResultSet("/api/cubo_dinamico", url.Values{
		"index":   {index},
		"columns": {columns},
		"metric":  {metric},
	})
}

func (c *Client) Celda(dimX, valX, dimY, valY string) (cube.ResultSet, error) {
	return c.fetchResultSet("/api/celda", url.Values{
		"dim_x":   {dimX},
		"valor_x": {valX},
		"dim_y":   {dimY},
		"valor_y": {valY},
	})
}

// Cubo fetches the predefined views. The response carries no column lists,
// so each view's columns are inferred from its first record; known view
// labels come first, anything new after them alphabetically.
func (c *Client) Cubo() ([]NamedView, error) {
	body, err := c.get("/api/cubo", nil)
	if err != nil {
		return nil, err
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode cubo: %w", err)
	}

	out := make([]NamedView, 0, len(raw))
	for _, label := range orderedLabels(raw) {
		data := raw[label]
		var columns []string
		if len(data) > 0 {
			columns = cube.InferColumns(data[0])
		} else {
			columns = []string{}
		}
		out = append(out, NamedView{
			Label:  label,
			Result: cube.ResultSet{Columns: columns, Data: data},
		})
	}
	return out, nil
}

// RunView executes a saved view against its endpoint.
func (c *Client) RunView(v view.View) (cube.ResultSet, error) {
	params := url.Values{}
	for k, val := range v.Params {
		setIfPresent(params, k, val)
	}

	switch v.Kind {
	case view.KindCara:
		return c.fetchResultSet("/api/cara", params)
	case view.KindSeccion:
		return c.fetchResultSet("/api/seccion", params)
	case view.KindCubo:
		return c.fetchResultSet("/api/cubo_dinamico", params)
	case view.KindCelda:
		return c.fetchResultSet("/api/celda", params)
	}
	return cube.ResultSet{}, fmt.Errorf("unknown view kind %q", v.Kind)
}

func (c *Client) fetchResultSet(path string, params url.Values) (cube.ResultSet, error) {
	body, err := c.get(path, params)
	if err != nil {
		return cube.ResultSet{}, err
	}
	var env resultEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return cube.ResultSet{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return env.toResultSet(), nil
}

func (c *Client) get(path string, params url.Values) ([]byte, error) {
	uri := c.BaseURL + path
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.HTTP.DoTimeout(req, resp, c.Timeout); err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("server: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("server returned %d for %s", resp.StatusCode(), path)
	}

	// The response body is pooled with resp; keep our own copy.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func orderedLabels(raw map[string][]map[string]any) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, known := range cube.ViewLabels {
		if _, ok := raw[known]; ok {
			labels = append(labels, known)
			seen[known] = true
		}
	}
	var rest []string
	for label := range raw {
		if !seen[label] {
			rest = append(rest, label)
		}
	}
	sort.Strings(rest)
	return append(labels, rest...)
}
