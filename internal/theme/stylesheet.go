package theme

import "strings"

// Attribute is a data-* attribute placed on the document root. Name omits
// the "data-" prefix.
type Attribute struct {
	Name  string
	Value string
}

// AttrTenant is the root attribute that scopes a stylesheet to a tenant.
const AttrTenant = "tenant"

// Selector returns the root selector a stylesheet for cfg is scoped to.
func Selector(cfg Config) string {
	mode := cfg.Theme
	if mode == "" {
		mode = DefaultMode
	}
	var b strings.Builder
	b.WriteString(`:root[data-theme="`)
	b.WriteString(string(mode))
	b.WriteString(`"]`)
	if cfg.TenantID != "" {
		b.WriteString(`[data-tenant="`)
		b.WriteString(cfg.TenantID)
		b.WriteString(`"]`)
	}
	return b.String()
}

// StyleSheet renders the full rule block for cfg.
func StyleSheet(cfg Config) string {
	return Selector(cfg) + " {\n" + Serialize(Generate(cfg)) + "\n}"
}

// RootAttributes lists the data attributes describing cfg, with defaults
// applied. The tenant attribute is only present when a tenant is set.
func RootAttributes(cfg Config) []Attribute {
	r := cfg.Resolved()
	hasBackground := "true"
	if !r.Background() {
		hasBackground = "false"
	}
	attrs := []Attribute{
		{"theme", string(r.Theme)},
		{"accent-color", string(r.AccentColor)},
		{"gray-color", string(r.GrayColor)},
		{"radius", string(r.Radius)},
		{"scaling", string(r.Scaling)},
		{"panel-background", string(r.PanelBackground)},
		{"has-background", hasBackground},
	}
	if r.TenantID != "" {
		attrs = append(attrs, Attribute{AttrTenant, r.TenantID})
	}
	return attrs
}
