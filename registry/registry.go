package registry

import (
	"reflect"
	"sync"

	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/errors"
)

// Registry collects declarations at startup and serves filtered snapshots of
// them to the initialization phases. It also owns the process-lifetime state
// the phases share: the scan memoization cache and the invoked-setup set,
// both cleared by the cleanup guard once startup completes.
type Registry struct {
	mu sync.RWMutex

	bindings      []*BindingDeclaration
	configs       []*ConfigDeclaration
	serviceSetups []*ServiceSetup
	appSetups     []*AppSetup

	capabilityList []reflect.Type
	capabilitySet  map[reflect.Type]bool

	boundTypes  map[reflect.Type]bool
	configTypes map[reflect.Type]bool
	setupNames  map[string]bool

	seq int

	scanCache map[string]*Snapshot
	invoked   map[string]bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		capabilitySet: make(map[reflect.Type]bool),
		boundTypes:    make(map[reflect.Type]bool),
		configTypes:   make(map[reflect.Type]bool),
		setupNames:    make(map[string]bool),
		scanCache:     make(map[string]*Snapshot),
		invoked:       make(map[string]bool),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry used by package-level
// declarations made from init functions.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Bind records a binding declaration for T. Instances are pointers to T.
// Explicit capabilities are checked against the type at declaration time:
// declaring a capability *T does not implement is an error here, not a
// surprise at resolution time.
func Bind[T any](r *Registry, opts ...BindOption) error {
	elem := reflect.TypeOf((*T)(nil)).Elem()
	concrete := reflect.PointerTo(elem)

	decl := &BindingDeclaration{
		Concrete: concrete,
		Lifetime: container.Singleton,
		Policy:   Add,
		pkgPath:  elem.PkgPath(),
	}
	for _, opt := range opts {
		opt(decl)
	}
	if decl.Provider == nil {
		decl.Provider = func(*container.Container) (any, error) {
			return reflect.New(elem).Interface(), nil
		}
	}

	for _, capability := range decl.capabilities {
		if capability.Kind() != reflect.Interface {
			return errors.InvalidDeclaration(concrete.String(), "capability "+capability.String()+" is not an interface")
		}
		if !concrete.Implements(capability) {
			return errors.InvalidDeclaration(concrete.String(), "does not implement capability "+capability.String())
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.boundTypes[concrete] {
		return errors.DuplicateDeclaration("binding", concrete.String())
	}
	r.boundTypes[concrete] = true
	decl.seq = r.nextSeq()
	r.bindings = append(r.bindings, decl)
	for _, capability := range decl.capabilities {
		r.addCapability(capability)
	}
	r.invalidateScans()
	return nil
}

// Configure records a configuration declaration for T.
func Configure[T any](r *Registry, opts ...ConfigOption) error {
	elem := reflect.TypeOf((*T)(nil)).Elem()

	decl := &ConfigDeclaration{
		Type:    elem,
		Key:     defaultConfigKey(elem),
		pkgPath: elem.PkgPath(),
	}
	for _, opt := range opts {
		opt(decl)
	}
	if decl.Key == "" {
		return errors.InvalidDeclaration(elem.String(), "configuration key is empty")
	}
	if elem.Kind() != reflect.Struct {
		return errors.InvalidDeclaration(elem.String(), "configuration types must be structs")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.configTypes[elem] {
		return errors.DuplicateDeclaration("configuration", elem.String())
	}
	r.configTypes[elem] = true
	decl.seq = r.nextSeq()
	r.configs = append(r.configs, decl)
	r.invalidateScans()
	return nil
}

// Capability records an interface in the capability index consulted when a
// binding declares no explicit capability list.
func Capability[I any](r *Registry) {
	iface := reflect.TypeOf((*I)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addCapability(iface)
	r.invalidateScans()
}

// addCapability must hold r.mu.
func (r *Registry) addCapability(iface reflect.Type) {
	if iface.Kind() != reflect.Interface || r.capabilitySet[iface] {
		return
	}
	r.capabilitySet[iface] = true
	r.capabilityList = append(r.capabilityList, iface)
}

// CapabilitiesFor expands a declaration's capability targets. Explicit lists
// are returned as declared; a nil list expands to every registry capability
// the concrete type implements, in capability registration order.
func (r *Registry) CapabilitiesFor(d *BindingDeclaration) []reflect.Type {
	if caps, explicit := d.ExplicitCapabilities(); explicit {
		return caps
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []reflect.Type
	for _, iface := range r.capabilityList {
		if d.Concrete.Implements(iface) {
			out = append(out, iface)
		}
	}
	return out
}

// nextSeq must hold r.mu.
func (r *Registry) nextSeq() int {
	r.seq++
	return r.seq
}

// invalidateScans must hold r.mu. Declarations recorded after a scan would
// otherwise be invisible to later consumers of the memoized snapshot.
func (r *Registry) invalidateScans() {
	if len(r.scanCache) > 0 {
		r.scanCache = make(map[string]*Snapshot)
	}
}

// MarkInvoked records an app-setup as run, reporting whether it was newly
// recorded. The set survives across initialization calls so each app-setup
// runs at most once per process.
func (r *Registry) MarkInvoked(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.invoked[name] {
		return false
	}
	r.invoked[name] = true
	return true
}

// Invoked reports whether an app-setup has already run.
func (r *Registry) Invoked(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.invoked[name]
}

// ClearCaches purges the scan memoization cache. The cleanup guard calls
// this once startup completes; retaining snapshots beyond startup is pure
// waste. The invoked-setup set is deliberately kept so app-setups stay
// at-most-once per process.
func (r *Registry) ClearCaches() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanCache = make(map[string]*Snapshot)
}

// CachedScans returns the number of memoized scan snapshots.
func (r *Registry) CachedScans() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.scanCache)
}
