package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelector(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"light", Config{Theme: ModeLight}, `:root[data-theme="light"]`},
		{"dark tenant", Config{Theme: ModeDark, TenantID: "acme"}, `:root[data-theme="dark"][data-tenant="acme"]`},
		{"unset mode", Config{}, `:root[data-theme="light"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Selector(tt.cfg); got != tt.want {
				t.Errorf("Selector = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleSheet(t *testing.T) {
	cfg := Config{Theme: ModeLight, AccentColor: AccentRed, TenantID: "acme"}
	sheet := StyleSheet(cfg)

	if !strings.HasPrefix(sheet, `:root[data-theme="light"][data-tenant="acme"] {`+"\n") {
		t.Errorf("unexpected stylesheet head:\n%s", sheet)
	}
	if !strings.HasSuffix(sheet, ";\n}") {
		t.Errorf("unexpected stylesheet tail:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--accent-10: hsl(5 78% 52%);") {
		t.Errorf("stylesheet missing accent step 10:\n%s", sheet)
	}
	if sheet != StyleSheet(cfg) {
		t.Error("StyleSheet is not deterministic")
	}
}

func TestRootAttributes(t *testing.T) {
	got := RootAttributes(Config{Theme: ModeDark, HasBackground: Bool(false), TenantID: "acme"})
	want := []Attribute{
		{"theme", "dark"},
		{"accent-color", "indigo"},
		{"gray-color", "slate"},
		{"radius", "medium"},
		{"scaling", "100%"},
		{"panel-background", "translucent"},
		{"has-background", "false"},
		{"tenant", "acme"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RootAttributes mismatch (-want +got):\n%s", diff)
	}

	noTenant := RootAttributes(Config{Theme: ModeLight})
	for _, attr := range noTenant {
		if attr.Name == AttrTenant {
			t.Errorf("unexpected tenant attribute %+v", attr)
		}
	}
}

func TestOverrides(t *testing.T) {
	base := Default()
	next := Merge(base, Config{AccentColor: AccentTeal, Radius: RadiusLarge, HasBackground: Bool(false), TenantID: "acme"})

	got := Overrides(base, next)
	want := Config{AccentColor: AccentTeal, Radius: RadiusLarge, HasBackground: Bool(false), TenantID: "acme"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Overrides mismatch (-want +got):\n%s", diff)
	}

	if back := Merge(base, got); back.AccentColor != AccentTeal || back.Background() || back.Theme != base.Theme {
		t.Errorf("Merge(base, Overrides) did not restore next: %+v", back)
	}

	if same := Overrides(base, base); same != (Config{}) {
		t.Errorf("expected no overrides for identical configs, got %+v", same)
	}
}

func TestMergeAndResolved(t *testing.T) {
	base := Default()
	next := Config{Theme: ModeDark, AccentColor: AccentTeal, HasBackground: Bool(false)}

	got := Merge(base, next)
	if got.Theme != ModeDark || got.AccentColor != AccentTeal {
		t.Errorf("Merge did not apply next: %+v", got)
	}
	if got.GrayColor != GraySlate || got.Radius != RadiusMedium {
		t.Errorf("Merge dropped base fields: %+v", got)
	}
	if got.Background() {
		t.Error("expected HasBackground=false after merge")
	}

	// Merge must not alias next's pointer.
	*next.HasBackground = true
	if got.Background() {
		t.Error("Merge shares the HasBackground pointer with next")
	}

	sparse := Config{Theme: ModeLight}
	resolved := sparse.Resolved()
	if resolved.Scaling != Scaling100 || resolved.PanelBackground != PanelTranslucent {
		t.Errorf("Resolved missing defaults: %+v", resolved)
	}
	if sparse.Scaling != "" {
		t.Error("Resolved modified its receiver")
	}
}

func TestParse(t *testing.T) {
	if m, err := ParseMode(" Dark "); err != nil || m != ModeDark {
		t.Errorf("ParseMode = %q, %v", m, err)
	}
	if a, err := ParseAccentColor("CRIMSON"); err != nil || a != AccentCrimson {
		t.Errorf("ParseAccentColor = %q, %v", a, err)
	}
	if g, err := ParseGrayColor("auto"); err != nil || g != GrayAuto {
		t.Errorf("ParseGrayColor = %q, %v", g, err)
	}
	if r, err := ParseRadius("full"); err != nil || r != RadiusFull {
		t.Errorf("ParseRadius = %q, %v", r, err)
	}
	if s, err := ParseScaling("105"); err != nil || s != Scaling105 {
		t.Errorf("ParseScaling(105) = %q, %v", s, err)
	}
	if s, err := ParseScaling("95%"); err != nil || s != Scaling95 {
		t.Errorf("ParseScaling(95%%) = %q, %v", s, err)
	}
	if p, err := ParsePanelBackground("solid"); err != nil || p != PanelSolid {
		t.Errorf("ParsePanelBackground = %q, %v", p, err)
	}
	if b, err := ParseBool("off"); err != nil || b {
		t.Errorf("ParseBool(off) = %v, %v", b, err)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := ParseAccentColor("crimsn")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "crimson"`) {
		t.Errorf("expected suggestion in %q", err.Error())
	}

	_, err = ParseRadius("xyz")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "valid: none, small, medium, large, full") {
		t.Errorf("expected valid list in %q", err.Error())
	}

	if _, err := ParseScaling("120"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for 120%%, got %v", err)
	}
	if _, err := ParseBool("maybe"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue for maybe, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := []Config{
		{Theme: ModeLight},
		Default(),
		{Theme: ModeDark, AccentColor: AccentSky, GrayColor: GrayAuto, TenantID: "tenant-42"},
	}
	for _, cfg := range valid {
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", cfg, err)
		}
	}

	tests := []struct {
		name    string
		cfg     Config
		wantMsg string
	}{
		{"missing theme", Config{}, "theme is required"},
		{"bad mode", Config{Theme: "sepia"}, `theme has unsupported value "sepia"`},
		{"bad accent", Config{Theme: ModeLight, AccentColor: "chartreuse"}, "accentColor"},
		{"bad scaling", Config{Theme: ModeLight, Scaling: "120%"}, "scaling"},
		{"quote in tenant", Config{Theme: ModeLight, TenantID: `a"b`}, "tenantId"},
		{"bracket in tenant", Config{Theme: ModeLight, TenantID: "a]b"}, "tenantId"},
		{"markup in tenant", Config{Theme: ModeLight, TenantID: "x</style><script>alert(1)</script>"}, "tenantId"},
		{"long tenant", Config{Theme: ModeLight, TenantID: strings.Repeat("x", MaxTenantIDLength+1)}, "tenantId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidTenantID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"acme", true},
		{"tenant-42", true},
		{"org.example:eu/west@v2_1", true},
		{"", false},
		{"has space", false},
		{`a"b`, false},
		{"a]b", false},
		{"x</style><script>alert(1)</script>", false},
		{"a<b", false},
		{"a>b", false},
		{strings.Repeat("x", MaxTenantIDLength), true},
		{strings.Repeat("x", MaxTenantIDLength+1), false},
	}
	for _, tt := range tests {
		if got := ValidTenantID(tt.id); got != tt.want {
			t.Errorf("ValidTenantID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
