package view

import "testing"

func sampleViews() map[string]View {
	return map[string]View{
		"ventas_region": {Name: "ventas_region", Id: 1, Kind: KindCara},
		"detalle_norte": {Name: "detalle_norte", Id: 3, Kind: KindCelda},
	}
}

func TestFindWithSelector(t *testing.T) {
	views := sampleViews()

	if v, ok := FindWithSelector(views, "detalle_norte"); !ok || v.Id != 3 {
		t.Errorf("by name: got %+v, ok=%v", v, ok)
	}
	if v, ok := FindWithSelector(views, "1"); !ok || v.Name != "ventas_region" {
		t.Errorf("by id: got %+v, ok=%v", v, ok)
	}
	if _, ok := FindWithSelector(views, "2"); ok {
		t.Error("id 2 should not resolve")
	}
	if _, ok := FindWithSelector(views, "nope"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestNextId(t *testing.T) {
	if id := NextId(sampleViews()); id != 2 {
		t.Errorf("NextId() = %d, want 2 (first gap)", id)
	}
	if id := NextId(nil); id != 1 {
		t.Errorf("NextId(nil) = %d, want 1", id)
	}
}

func TestValidKind(t *testing.T) {
	for _, kind := range []string{KindCara, KindSeccion, KindCubo, KindCelda} {
		if !ValidKind(kind) {
			t.Errorf("ValidKind(%q) = false", kind)
		}
	}
	if ValidKind("rollup") {
		t.Error("ValidKind(rollup) should be false")
	}
}

func TestDescribe(t *testing.T) {
	v := View{
		Kind:   KindCara,
		Params: map[string]string{"dim_x": "Año", "dim_y": "Región", "metric": "Ventas"},
	}
	want := "cara Año × Región (Ventas)"
	if got := v.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	empty := View{Kind: KindSeccion, Params: map[string]string{}}
	if got := empty.Describe(); got != "seccion (sin filtros)" {
		t.Errorf("Describe() = %q", got)
	}
}
