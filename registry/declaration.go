package registry

import (
	"path"
	"reflect"

	"github.com/kbukum/wirekit/container"
)

// Policy governs what happens when multiple declarations target the same
// capability. Policies are applied in ascending order, so Add registrations
// exist before Replace and Skip declarations observe them.
type Policy int

const (
	// Add registers unconditionally, allowing multiple implementations per
	// capability.
	Add Policy = iota
	// Replace removes any existing registrations for the capability before
	// registering, leaving exactly one.
	Replace
	// Skip registers only if the capability has no registration yet.
	Skip
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case Add:
		return "add"
	case Replace:
		return "replace"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// BindingDeclaration marks a concrete type for automatic container
// registration. Declarations are immutable once recorded.
type BindingDeclaration struct {
	// Concrete is the pointer type registered and produced by the provider.
	Concrete reflect.Type
	// Lifetime applies to the concrete type and every capability target.
	Lifetime container.Lifetime
	// Policy resolves conflicts per capability.
	Policy Policy
	// Provider builds the instance; defaults to a zero value of the type.
	Provider container.Provider

	// capabilities is the explicit target list. nil means "every registry
	// capability the type implements"; empty means "concrete type only".
	capabilities []reflect.Type
	explicit     bool

	pkgPath string
	seq     int
}

// PkgPath returns the package path of the declared type, used by scan filters.
func (d *BindingDeclaration) PkgPath() string { return d.pkgPath }

// ExplicitCapabilities returns the declared capability list and whether one
// was declared at all (nil list with explicit=true means "concrete only").
func (d *BindingDeclaration) ExplicitCapabilities() ([]reflect.Type, bool) {
	return d.capabilities, d.explicit
}

// ConfigDeclaration marks a concrete type for automatic binding from the
// configuration source.
type ConfigDeclaration struct {
	// Type is the struct type populated from the source.
	Type reflect.Type
	// Key is the section path; defaults to the type's package-qualified name.
	Key string
	// Dynamic re-binds the instance on every resolve so it always reflects
	// the current source state. Static declarations fail at startup when the
	// section is absent.
	Dynamic bool
	// Validated runs struct-tag validation on every bound instance.
	Validated bool

	pkgPath string
	seq     int
}

// PkgPath returns the package path of the declared type, used by scan filters.
func (d *ConfigDeclaration) PkgPath() string { return d.pkgPath }

// defaultConfigKey derives a section key from a type's package-qualified
// name: package base name and type name, colon-joined ("billing:DbConfig").
func defaultConfigKey(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}
	return path.Base(t.PkgPath()) + ":" + t.Name()
}

// BindOption customizes a binding declaration.
type BindOption func(*BindingDeclaration)

// WithLifetime sets the declaration's lifetime. The default is Singleton.
func WithLifetime(l container.Lifetime) BindOption {
	return func(d *BindingDeclaration) { d.Lifetime = l }
}

// WithPolicy sets the declaration's conflict policy. The default is Add.
func WithPolicy(p Policy) BindOption {
	return func(d *BindingDeclaration) { d.Policy = p }
}

// As adds an explicit capability target. Declaring any explicit capability
// disables the "all implemented capabilities" expansion.
func As[I any]() BindOption {
	return func(d *BindingDeclaration) {
		d.explicit = true
		d.capabilities = append(d.capabilities, reflect.TypeOf((*I)(nil)).Elem())
	}
}

// ConcreteOnly restricts registration to the concrete type itself.
func ConcreteOnly() BindOption {
	return func(d *BindingDeclaration) {
		d.explicit = true
		d.capabilities = nil
	}
}

// WithProvider sets a custom provider for the declared type.
func WithProvider(p container.Provider) BindOption {
	return func(d *BindingDeclaration) { d.Provider = p }
}

// ProviderOf adapts a typed constructor into a container.Provider.
//
//	registry.WithProvider(registry.ProviderOf(func(c *container.Container) (*Mailer, error) {
//	    return NewMailer(container.MustResolve[*MailConfig](c)), nil
//	}))
func ProviderOf[T any](fn func(*container.Container) (*T, error)) container.Provider {
	return func(c *container.Container) (any, error) {
		return fn(c)
	}
}

// ConfigOption customizes a configuration declaration.
type ConfigOption func(*ConfigDeclaration)

// WithKey overrides the derived section key.
func WithKey(key string) ConfigOption {
	return func(d *ConfigDeclaration) { d.Key = key }
}

// Dynamic marks the declaration for live re-binding: every resolve reads the
// current source state, and the section may appear after startup.
func Dynamic() ConfigOption {
	return func(d *ConfigDeclaration) { d.Dynamic = true }
}

// Validated runs struct-tag validation on bound instances.
func Validated() ConfigOption {
	return func(d *ConfigDeclaration) { d.Validated = true }
}
