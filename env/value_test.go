package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func toolSpec() Spec {
	var s Spec

	s.Set("PIPELINE", Scalar("P:/pipeline"))
	s.Set("DYLD_LIBRARY_PATH", Variant(map[string]Value{
		Darwin: Scalar("{PIPELINE}/lib"),
	}))
	s.Set("MAYA_LOCATION", Variant(map[string]Value{
		Windows: Scalar(`C:\Program Files\Autodesk\Maya2018`),
		Linux:   Scalar("/usr/autodesk/maya2018"),
		Darwin:  Scalar("/Applications/Autodesk/maya2018/Maya.app/Contents"),
	}))
	s.Set("PATH", List("{MAYA_LOCATION}/bin", "{PATH}"))

	return s
}

func TestSelect(t *testing.T) {
	tests := []struct {
		platform string
		want     []string
	}{
		{Darwin, []string{
			"PIPELINE=P:/pipeline",
			"DYLD_LIBRARY_PATH={PIPELINE}/lib",
			"MAYA_LOCATION=/Applications/Autodesk/maya2018/Maya.app/Contents",
			"PATH={MAYA_LOCATION}/bin:{PATH}",
		}},
		{Windows, []string{
			"PIPELINE=P:/pipeline",
			`MAYA_LOCATION=C:\Program Files\Autodesk\Maya2018`,
			"PATH={MAYA_LOCATION}/bin;{PATH}",
		}},
		{Linux, []string{
			"PIPELINE=P:/pipeline",
			"MAYA_LOCATION=/usr/autodesk/maya2018",
			"PATH={MAYA_LOCATION}/bin:{PATH}",
		}},
		{"plan9", []string{
			"PIPELINE=P:/pipeline",
			"PATH={MAYA_LOCATION}/bin:{PATH}",
		}},
	}

	spec := toolSpec()

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			got := Select(spec, PlatformFor(tt.platform))
			if diff := cmp.Diff(tt.want, got.Environ()); diff != "" {
				t.Errorf("Select mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValue_Flatten(t *testing.T) {
	nested := Variant(map[string]Value{
		Windows: List(`C:\a`, `C:\b`),
		Linux: Variant(map[string]Value{
			Linux: Scalar("/deep"),
		}),
	})

	tests := []struct {
		name  string
		value Value
		plat  string
		want  string
		ok    bool
	}{
		{"scalar", Scalar("x"), Linux, "x", true},
		{"empty list", List(), Linux, "", true},
		{"list", List("a", "b"), Linux, "a:b", true},
		{"variant list", nested, Windows, `C:\a;C:\b`, true},
		{"variant of variant", nested, Linux, "/deep", true},
		{"variant missing", nested, Darwin, "", false},
		{"unknown kind", Value{Kind: Kind(99)}, Linux, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Flatten(PlatformFor(tt.plat))
			if got != tt.want || ok != tt.ok {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestValue_ConstructorsCopy(t *testing.T) {
	items := []string{"a", "b"}
	list := List(items...)
	items[0] = "z"

	if list.Items[0] != "a" {
		t.Errorf("List shares storage with its arguments")
	}

	variants := map[string]Value{Linux: Scalar("a")}
	variant := Variant(variants)
	variants[Linux] = Scalar("z")

	if variant.Variants[Linux].Text != "a" {
		t.Errorf("Variant shares storage with its arguments")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindScalar, "Scalar"},
		{KindList, "List"},
		{KindVariant, "Variant"},
		{Kind(-1), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestCompose(t *testing.T) {
	var maya, studio Spec

	maya.Set("PATH", List("/maya/bin", "{PATH}"))
	maya.Set("MAYA_VERSION", Scalar("2018"))

	studio.Set("PATH", List("/studio/bin", "/maya/bin"))
	studio.Set("STUDIO", Variant(map[string]Value{Windows: Scalar("S:")}))
	studio.Set("PROJECT", Scalar("demo"))

	got := Compose(PlatformFor(Linux), maya, studio)

	want := []string{
		"PATH=/maya/bin:{PATH}:/studio/bin",
		"MAYA_VERSION=2018",
		"PROJECT=demo",
	}

	if diff := cmp.Diff(want, got.Environ()); diff != "" {
		t.Errorf("Compose mismatch (-want +got):\n%s", diff)
	}
}

func TestSpec_Order(t *testing.T) {
	s := ScalarSpec("B", "b", "A", "a", "B", "bb", "C")

	var keys []string
	for k := range s.Keys() {
		keys = append(keys, k)
	}

	if diff := cmp.Diff([]string{"B", "A", "C"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	if v, ok := s.Get("B"); !ok || v.Text != "bb" {
		t.Errorf("expected B=bb, got %+v", v)
	}

	if v, ok := s.Get("C"); !ok || v.Text != "" {
		t.Errorf("expected C to be empty, got %+v", v)
	}

	if s.Len() != 3 {
		t.Errorf("expected 3 definitions, got %d", s.Len())
	}
}
