package keymaps

import "sort"

// DefaultLayout is returned by Get for unknown names.
const DefaultLayout = "qwerty"

// Provider provides key binding tables for different physical layouts
type Provider struct {
	layouts map[string]*Table
}

// NewProvider creates an empty provider
func NewProvider() *Provider {
	return &Provider{
		layouts: map[string]*Table{},
	}
}

// DefaultProvider creates and returns a provider with all built-in layouts
func DefaultProvider() *Provider {
	p := NewProvider()

	RegisterQwertyLayout(p)
	RegisterUpperRowLayout(p)

	return p
}

// Get returns the named layout and whether it was found. Unknown names fall
// back to the default layout.
func (p *Provider) Get(name string) (*Table, bool) {
	t, exists := p.layouts[name]
	if !exists {
		return p.layouts[DefaultLayout], false
	}
	return t, true
}

// Register adds or replaces a named layout
func (p *Provider) Register(name string, t *Table) {
	p.layouts[name] = t
}

// Names returns the registered layout names, sorted.
func (p *Provider) Names() []string {
	names := make([]string, 0, len(p.layouts))
	for name := range p.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
