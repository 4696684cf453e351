package registry

import "strings"

// Filter selects declarations by the package path of their declared type (or
// of the setup function). A nil *Filter matches everything.
type Filter struct {
	// Name keys the scan memoization cache; filters with equal names are
	// assumed equivalent.
	Name string
	// Match reports whether a package path is in scope.
	Match func(pkgPath string) bool
}

// PrefixFilter matches package paths sharing a slash-delimited prefix. It is
// the module-scoping analog used to bound a scan to one codebase:
//
//	registry.PrefixFilter("github.com/acme")
func PrefixFilter(prefix string) *Filter {
	return &Filter{
		Name: "prefix:" + prefix,
		Match: func(pkgPath string) bool {
			return pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/")
		},
	}
}

func (f *Filter) key() string {
	if f == nil {
		return ""
	}
	return f.Name
}

func (f *Filter) match(pkgPath string) bool {
	if f == nil || f.Match == nil {
		return true
	}
	return f.Match(pkgPath)
}

// Snapshot is an immutable filtered view of the registry's declarations.
type Snapshot struct {
	Bindings      []*BindingDeclaration
	Configs       []*ConfigDeclaration
	ServiceSetups []*ServiceSetup
	AppSetups     []*AppSetup
}

// Scan returns the declarations matching a filter, in declaration order.
// Results are memoized per filter name so repeated consumers — the binding
// resolver, the configuration binder, and both setup invokers — share one
// traversal; the cleanup guard purges the memo after startup.
func (r *Registry) Scan(filter *Filter) *Snapshot {
	key := filter.key()

	r.mu.RLock()
	if snap, ok := r.scanCache[key]; ok {
		r.mu.RUnlock()
		return snap
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if snap, ok := r.scanCache[key]; ok {
		return snap
	}

	snap := &Snapshot{}
	for _, d := range r.bindings {
		if filter.match(d.pkgPath) {
			snap.Bindings = append(snap.Bindings, d)
		}
	}
	for _, d := range r.configs {
		if filter.match(d.pkgPath) {
			snap.Configs = append(snap.Configs, d)
		}
	}
	for _, s := range r.serviceSetups {
		if filter.match(s.pkgPath) {
			snap.ServiceSetups = append(snap.ServiceSetups, s)
		}
	}
	for _, s := range r.appSetups {
		if filter.match(s.pkgPath) {
			snap.AppSetups = append(snap.AppSetups, s)
		}
	}

	r.scanCache[key] = snap
	return snap
}
