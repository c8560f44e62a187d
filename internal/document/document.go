// Package document is an in-memory stand-in for the browser document that
// twui themes are applied to: a set of <style> elements in the head and the
// data attributes on the root element.
//
// A Document can be rendered to a standalone HTML preview page.
package document

import (
	"sync"

	"nathanbeddoewebdev/twui/internal/theme"
)

// Document holds the head style elements and root data attributes.
// It is safe for concurrent use.
type Document struct {
	mu     sync.Mutex
	styles []*Style
	attrs  []theme.Attribute
}

// Style is a <style> element owned by a Document.
type Style struct {
	doc  *Document
	id   string
	text string
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// EnsureStyle returns the style element with the given id, appending a new
// empty one to the head when none exists.
func (d *Document) EnsureStyle(id string) *Style {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s := d.lookup(id); s != nil {
		return s
	}
	s := &Style{doc: d, id: id}
	d.styles = append(d.styles, s)
	return s
}

// Style returns the style element with the given id, or nil.
func (d *Document) Style(id string) *Style {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lookup(id)
}

// Styles returns the attached style elements in insertion order.
func (d *Document) Styles() []*Style {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Style, len(d.styles))
	copy(out, d.styles)
	return out
}

// SetRootAttributes applies attrs to the root element. Existing attributes
// are overwritten; the tenant attribute is removed when attrs has none.
func (d *Document) SetRootAttributes(attrs []theme.Attribute) {
	d.mu.Lock()
	defer d.mu.Unlock()

	hasTenant := false
	for _, a := range attrs {
		if a.Name == theme.AttrTenant {
			hasTenant = true
		}
		d.setAttr(a)
	}
	if !hasTenant {
		d.deleteAttr(theme.AttrTenant)
	}
}

// RootAttribute returns the value of the root data attribute name.
func (d *Document) RootAttribute(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RootAttributes returns a copy of the root data attributes.
func (d *Document) RootAttributes() []theme.Attribute {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]theme.Attribute, len(d.attrs))
	copy(out, d.attrs)
	return out
}

func (d *Document) lookup(id string) *Style {
	for _, s := range d.styles {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (d *Document) setAttr(attr theme.Attribute) {
	for i := range d.attrs {
		if d.attrs[i].Name == attr.Name {
			d.attrs[i].Value = attr.Value
			return
		}
	}
	d.attrs = append(d.attrs, attr)
}

func (d *Document) deleteAttr(name string) {
	for i := range d.attrs {
		if d.attrs[i].Name == name {
			d.attrs = append(d.attrs[:i], d.attrs[i+1:]...)
			return
		}
	}
}

// ID returns the element id.
func (s *Style) ID() string { return s.id }

// Text returns the element's text content.
func (s *Style) Text() string {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	return s.text
}

// SetText replaces the element's text content.
func (s *Style) SetText(text string) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	s.text = text
}

// Attached reports whether the element is still in its document.
func (s *Style) Attached() bool {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	return s.doc.lookup(s.id) == s
}

// Remove detaches the element from its document. Removing twice is a no-op.
func (s *Style) Remove() {
	d := s.doc
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, other := range d.styles {
		if other == s {
			d.styles = append(d.styles[:i], d.styles[i+1:]...)
			return
		}
	}
}
