// Package templates holds the static catalog of visual templates an export
// can be rendered with. The catalog is immutable and loaded once at process
// start; callers receive a Registry value and never touch package state.
package templates

// PageSetup describes the physical page a template targets when printed.
type PageSetup struct {
	Size   string `json:"size"`
	Margin string `json:"margin"`
}

// Template is a named bundle of stylesheet and page metadata selecting the
// visual presentation of an export.
type Template struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Features     []string   `json:"features"`
	PreviewStyle string     `json:"preview_style"`
	CSSStyles    string     `json:"-"`
	PageSetup    *PageSetup `json:"page_setup,omitempty"`

	// Paged marks templates rendered one physical page per content
	// fragment instead of one flowing section per chapter.
	Paged bool `json:"paged"`
}

// Registry is an immutable, id-keyed lookup over the template catalog. The
// first catalog entry is the designated fallback for unknown ids.
type Registry struct {
	ordered []Template
	byID    map[string]int
}

// NewRegistry builds the registry from the built-in catalog.
func NewRegistry() *Registry {
	return newRegistry(catalog)
}

func newRegistry(list []Template) *Registry {
	byID := make(map[string]int, len(list))
	for i, t := range list {
		byID[t.ID] = i
	}
	return &Registry{ordered: list, byID: byID}
}

// All returns the catalog in its fixed display order.
func (r *Registry) All() []Template {
	out := make([]Template, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Get looks up a template by exact id.
func (r *Registry) Get(id string) (Template, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Template{}, false
	}
	return r.ordered[i], true
}

// Default returns the fallback template used for unknown ids.
func (r *Registry) Default() Template {
	return r.ordered[0]
}

// Resolve returns the template for id, or the default template when id is
// unknown. It never fails: a stale template reference in stored export
// settings degrades to the default look instead of aborting the export.
func (r *Registry) Resolve(id string) Template {
	if t, ok := r.Get(id); ok {
		return t
	}
	return r.Default()
}

// ResolveCSS returns the stylesheet for id, falling back to the default
// template's stylesheet for unknown ids.
func (r *Registry) ResolveCSS(id string) string {
	return r.Resolve(id).CSSStyles
}
