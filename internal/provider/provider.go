// Package provider holds the active theme configuration, applies it to a
// document and notifies observers when it changes.
//
// A Provider runs in one of two modes. Uncontrolled (Options.Value is nil)
// keeps its own state, seeded from Options.Default. Controlled
// (Options.Value set) never changes its own value: Set only reports the
// requested configuration through OnChange, and the owner pushes the new
// value back with SetValue.
package provider

import (
	"errors"
	"fmt"
	"sync"

	"nathanbeddoewebdev/twui/internal/document"
	"nathanbeddoewebdev/twui/internal/logging"
	"nathanbeddoewebdev/twui/internal/theme"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// StyleIDPrefix prefixes the id of every style element a provider owns.
const StyleIDPrefix = "twui-theme"

// ErrClosed is returned by Set after Close.
var ErrClosed = errors.New("provider: closed")

// Host is the document a provider writes into.
type Host interface {
	EnsureStyle(id string) *document.Style
	SetRootAttributes(attrs []theme.Attribute)
}

// Options configures a Provider.
type Options struct {
	// Value makes the provider controlled.
	Value *theme.Config

	// Default seeds the uncontrolled state. Unset fields fall back to
	// theme.Default().
	Default theme.Config

	// OnChange receives every configuration passed to Set.
	OnChange func(next theme.Config)

	Logger *log.Logger
}

// Provider owns one style element in a Host.
type Provider struct {
	mu       sync.Mutex
	host     Host
	style    *document.Style
	styleID  string
	value    *theme.Config
	state    theme.Config
	onChange func(theme.Config)
	subs     map[int]func(theme.Config)
	nextSub  int
	closed   bool
	logger   *log.Logger
}

// New creates a provider and applies the initial configuration to host.
func New(host Host, opts Options) *Provider {
	p := &Provider{
		host:     host,
		styleID:  StyleIDPrefix + "-" + uuid.NewString(),
		state:    theme.Merge(theme.Default(), opts.Default),
		onChange: opts.OnChange,
		subs:     make(map[int]func(theme.Config)),
		logger:   logging.OrDiscard(opts.Logger).With("component", "provider"),
	}
	if opts.Value != nil {
		v := *opts.Value
		p.value = &v
	}

	p.mu.Lock()
	p.applyLocked()
	p.mu.Unlock()
	return p
}

// StyleID returns the id of the style element this provider owns.
func (p *Provider) StyleID() string { return p.styleID }

// Controlled reports whether the provider mirrors an external value.
func (p *Provider) Controlled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value != nil
}

// Config returns the active configuration with defaults applied.
func (p *Provider) Config() theme.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLocked()
}

// Set requests a new configuration. It is the provider's setter: in
// uncontrolled mode next becomes the active configuration; in both modes
// OnChange receives next.
func (p *Provider) Set(next theme.Config) error {
	if err := theme.Validate(theme.Merge(theme.Default(), next)); err != nil {
		return fmt.Errorf("provider: %w", err)
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	onChange := p.onChange
	controlled := p.value != nil
	var current theme.Config
	var subs []func(theme.Config)
	if !controlled {
		p.state = next
		current = p.applyLocked()
		subs = p.subscribersLocked()
	}
	p.mu.Unlock()

	if onChange != nil {
		onChange(next)
	}
	for _, fn := range subs {
		fn(current)
	}
	return nil
}

// SetValue replaces the controlled value. Passing nil switches the provider
// back to its uncontrolled state.
func (p *Provider) SetValue(value *theme.Config) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if value == nil {
		p.value = nil
	} else {
		v := *value
		p.value = &v
	}
	current := p.applyLocked()
	subs := p.subscribersLocked()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
}

// Subscribe registers fn to run after every change of the active
// configuration. The returned function unregisters it.
func (p *Provider) Subscribe(fn func(theme.Config)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
}

// Close removes the provider's style element. Calling Close more than once
// is safe.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.style != nil {
		p.style.Remove()
		p.style = nil
	}
	p.subs = map[int]func(theme.Config){}
	p.logger.Debug("removed style element", "id", p.styleID)
	return nil
}

func (p *Provider) currentLocked() theme.Config {
	if p.value != nil {
		return theme.Merge(theme.Default(), *p.value)
	}
	return theme.Merge(theme.Default(), p.state)
}

// applyLocked writes the active configuration into the host and returns it.
func (p *Provider) applyLocked() theme.Config {
	current := p.currentLocked()
	if p.host == nil {
		return current
	}
	if p.style == nil {
		p.style = p.host.EnsureStyle(p.styleID)
	}
	p.style.SetText(theme.StyleSheet(current))
	p.host.SetRootAttributes(theme.RootAttributes(current))

	p.logger.Debug("applied theme",
		"id", p.styleID,
		"theme", current.Theme,
		"accent", current.AccentColor,
		"tenant", current.TenantID,
	)
	return current
}

func (p *Provider) subscribersLocked() []func(theme.Config) {
	subs := make([]func(theme.Config), 0, len(p.subs))
	for i := 0; i < p.nextSub; i++ {
		if fn, ok := p.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
