package view

import (
	"fmt"
	"strconv"
)

// Kinds of saved views, one per cube endpoint.
const (
	KindCara    = "cara"    // 2D slice
	KindSeccion = "seccion" // filtered subset
	KindCubo    = "cubo"    // dynamic pivot
	KindCelda   = "celda"   // cell drill-down
)

// View is a saved cube query: which endpoint to hit and with which
// parameters. Views are stored per server in the config file.
type View struct {
	Name   string            `yaml:"name"`
	Id     int               `yaml:"id"`
	Kind   string            `yaml:"kind"`
	Params map[string]string `yaml:"params"`
}

func ValidKind(kind string) bool {
	switch kind {
	case KindCara, KindSeccion, KindCubo, KindCelda:
		return true
	}
	return false
}

// FindWithSelector resolves a view by numeric id or by name.
func FindWithSelector(views map[string]View, selector string) (View, bool) {
	if id, err := strconv.Atoi(selector); err == nil {
		for _, v := range views {
			if v.Id == id {
				return v, true
			}
		}
		return View{}, false
	}
	v, ok := views[selector]
	return v, ok
}

func NextId(views map[string]View) int {
	used := make(map[int]bool)
	for _, v := range views {
		used[v.Id] = true
	}
	for i := 1; ; i++ {
		if !used[i] {
			return i
		}
	}
}

// Describe is the one-line summary shown by `cubo list`.
func (v View) Describe() string {
	switch v.Kind {
	case KindCara:
		return fmt.Sprintf("cara %s × %s (%s)", v.Params["dim_x"], v.Params["dim_y"], v.Params["metric"])
	case KindSeccion:
		return "seccion " + joinParams(v.Params, "anios", "regiones", "productos", "canales")
	case KindCubo:
		return fmt.Sprintf("cubo %s × %s (%s)", v.Params["index"], v.Params["columns"], v.Params["metric"])
	case KindCelda:
		return fmt.Sprintf("celda %s=%s, %s=%s", v.Params["dim_x"], v.Params["valor_x"], v.Params["dim_y"], v.Params["valor_y"])
	}
	return v.Kind
}

func joinParams(params map[string]string, keys ...string) string {
	out := ""
	for _, k := range keys {
		if params[k] == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += k + "=" + params[k]
	}
	if out == "" {
		return "(sin filtros)"
	}
	return out
}
