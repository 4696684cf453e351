package registry

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/kbukum/wirekit/config"
	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/errors"
	"github.com/kbukum/wirekit/pipeline"
)

// ServiceSetupFunc performs side-effecting setup during the service
// registration phase. The container and the configuration source are the two
// collaborators; anything returned non-nil aborts initialization.
type ServiceSetupFunc func(c *container.Container, src *config.Source) error

// AppSetupFunc performs side-effecting setup during the app pipeline build
// phase.
type AppSetupFunc func(b *pipeline.Builder, src *config.Source) error

// ServiceSetup is a named service-phase setup declaration.
type ServiceSetup struct {
	Name string
	Fn   ServiceSetupFunc

	pkgPath string
	seq     int
}

// AppSetup is a named app-phase setup declaration.
type AppSetup struct {
	Name string
	Fn   AppSetupFunc

	pkgPath string
	seq     int
}

// OnServiceSetup records a setup to run during InitializeServices. Names must
// be unique across both setup phases; a nil function or empty name is an
// invalid-setup error.
func (r *Registry) OnServiceSetup(name string, fn ServiceSetupFunc) error {
	if err := r.checkSetup(name, fn == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setupNames[name] {
		return errors.DuplicateDeclaration("setup", name)
	}
	r.setupNames[name] = true
	r.serviceSetups = append(r.serviceSetups, &ServiceSetup{
		Name:    name,
		Fn:      fn,
		pkgPath: pkgPathOfFunc(fn),
		seq:     r.nextSeq(),
	})
	r.invalidateScans()
	return nil
}

// OnAppSetup records a setup to run during InitializeApp. Each app setup runs
// at most once per process, no matter how many times InitializeApp is called.
func (r *Registry) OnAppSetup(name string, fn AppSetupFunc) error {
	if err := r.checkSetup(name, fn == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setupNames[name] {
		return errors.DuplicateDeclaration("setup", name)
	}
	r.setupNames[name] = true
	r.appSetups = append(r.appSetups, &AppSetup{
		Name:    name,
		Fn:      fn,
		pkgPath: pkgPathOfFunc(fn),
		seq:     r.nextSeq(),
	})
	r.invalidateScans()
	return nil
}

func (r *Registry) checkSetup(name string, nilFn bool) error {
	if name == "" {
		return errors.InvalidSetup(name, "name is empty")
	}
	if nilFn {
		return errors.InvalidSetup(name, "function is nil")
	}
	return nil
}

// pkgPathOfFunc derives the defining package of a setup function so scan
// filters apply to setups the same way they apply to declared types.
func pkgPathOfFunc(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	full := rf.Name() // "github.com/acme/billing.registerRoutes" or ".func1"
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return full
	}
	return full[:slash+1+dot]
}
