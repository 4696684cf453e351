package registry

import (
	"testing"

	"github.com/kbukum/wirekit/config"
	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/errors"
	"github.com/kbukum/wirekit/pipeline"
)

type notifier interface{ Notify() }

type mailNotifier struct{}

func (m *mailNotifier) Notify() {}

type smsNotifier struct{}

func (s *smsNotifier) Notify() {}

type plainService struct{}

type mailConfig struct {
	From string `mapstructure:"From"`
}

func TestBindRecordsDeclaration(t *testing.T) {
	r := New()
	if err := Bind[mailNotifier](r, As[notifier]()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	snap := r.Scan(nil)
	if len(snap.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(snap.Bindings))
	}
	d := snap.Bindings[0]
	if d.Lifetime != container.Singleton {
		t.Errorf("expected singleton default, got %v", d.Lifetime)
	}
	if d.Policy != Add {
		t.Errorf("expected add default, got %v", d.Policy)
	}
	caps, explicit := d.ExplicitCapabilities()
	if !explicit || len(caps) != 1 {
		t.Errorf("expected one explicit capability, got %v (explicit=%v)", caps, explicit)
	}
}

func TestBindRejectsDuplicateType(t *testing.T) {
	r := New()
	if err := Bind[mailNotifier](r); err != nil {
		t.Fatalf("first Bind failed: %v", err)
	}
	err := Bind[mailNotifier](r, WithPolicy(Replace))
	if !errors.IsCode(err, errors.ErrCodeDuplicateDeclaration) {
		t.Fatalf("expected duplicate-declaration error, got %v", err)
	}
}

func TestBindRejectsUnimplementedCapability(t *testing.T) {
	r := New()
	err := Bind[plainService](r, As[notifier]())
	if !errors.IsCode(err, errors.ErrCodeInvalidDeclaration) {
		t.Fatalf("expected invalid-declaration error, got %v", err)
	}
}

func TestCapabilitiesForExpandsImplicitly(t *testing.T) {
	r := New()
	Capability[notifier](r)
	if err := Bind[mailNotifier](r); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if err := Bind[plainService](r); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	snap := r.Scan(nil)
	if got := r.CapabilitiesFor(snap.Bindings[0]); len(got) != 1 {
		t.Errorf("mailNotifier should expand to the notifier capability, got %v", got)
	}
	if got := r.CapabilitiesFor(snap.Bindings[1]); len(got) != 0 {
		t.Errorf("plainService implements nothing, got %v", got)
	}
}

func TestConcreteOnlySuppressesExpansion(t *testing.T) {
	r := New()
	Capability[notifier](r)
	if err := Bind[mailNotifier](r, ConcreteOnly()); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	snap := r.Scan(nil)
	if got := r.CapabilitiesFor(snap.Bindings[0]); len(got) != 0 {
		t.Errorf("concrete-only declarations expand to no capabilities, got %v", got)
	}
}

func TestConfigureDefaultsAndOverrides(t *testing.T) {
	r := New()
	if err := Configure[mailConfig](r); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	snap := r.Scan(nil)
	if got := snap.Configs[0].Key; got != "registry:mailConfig" {
		t.Errorf("unexpected derived key %q", got)
	}

	r2 := New()
	if err := Configure[mailConfig](r2, WithKey("Mail"), Dynamic(), Validated()); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	d := r2.Scan(nil).Configs[0]
	if d.Key != "Mail" || !d.Dynamic || !d.Validated {
		t.Errorf("options not applied: %+v", d)
	}
}

func TestConfigureRejectsDuplicateAndEmptyKey(t *testing.T) {
	r := New()
	if err := Configure[mailConfig](r); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if err := Configure[mailConfig](r); !errors.IsCode(err, errors.ErrCodeDuplicateDeclaration) {
		t.Errorf("expected duplicate-declaration error, got %v", err)
	}

	r2 := New()
	if err := Configure[mailConfig](r2, WithKey("")); !errors.IsCode(err, errors.ErrCodeInvalidDeclaration) {
		t.Errorf("expected invalid-declaration error for empty key, got %v", err)
	}
}

func TestSetupRegistrationValidation(t *testing.T) {
	r := New()
	fn := func(*container.Container, *config.Source) error { return nil }

	if err := r.OnServiceSetup("", fn); !errors.IsCode(err, errors.ErrCodeInvalidSetup) {
		t.Errorf("expected invalid-setup error for empty name, got %v", err)
	}
	if err := r.OnServiceSetup("nil-fn", nil); !errors.IsCode(err, errors.ErrCodeInvalidSetup) {
		t.Errorf("expected invalid-setup error for nil fn, got %v", err)
	}

	if err := r.OnServiceSetup("wire", fn); err != nil {
		t.Fatalf("OnServiceSetup failed: %v", err)
	}
	// Names are unique across both setup phases.
	if err := r.OnAppSetup("wire", func(*pipeline.Builder, *config.Source) error { return nil }); !errors.IsCode(err, errors.ErrCodeDuplicateDeclaration) {
		t.Errorf("expected duplicate-declaration error, got %v", err)
	}
}

func TestScanMemoizationAndInvalidation(t *testing.T) {
	r := New()
	if err := Bind[mailNotifier](r); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	first := r.Scan(nil)
	if second := r.Scan(nil); second != first {
		t.Error("expected memoized snapshot on repeat scan")
	}
	if r.CachedScans() != 1 {
		t.Errorf("expected 1 cached scan, got %d", r.CachedScans())
	}

	// A new declaration invalidates the memo.
	if err := Bind[smsNotifier](r); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if r.CachedScans() != 0 {
		t.Errorf("expected cache invalidated after declaration, got %d", r.CachedScans())
	}
	if got := r.Scan(nil); len(got.Bindings) != 2 {
		t.Errorf("expected rescan to see both bindings, got %d", len(got.Bindings))
	}

	r.ClearCaches()
	if r.CachedScans() != 0 {
		t.Errorf("expected cache cleared, got %d", r.CachedScans())
	}
}

func TestScanFilterByPackagePrefix(t *testing.T) {
	r := New()
	if err := Bind[mailNotifier](r); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if err := r.OnServiceSetup("wire", func(*container.Container, *config.Source) error { return nil }); err != nil {
		t.Fatalf("OnServiceSetup failed: %v", err)
	}

	in := r.Scan(PrefixFilter("github.com/kbukum/wirekit"))
	if len(in.Bindings) != 1 || len(in.ServiceSetups) != 1 {
		t.Errorf("matching prefix should include declarations, got %d bindings, %d setups",
			len(in.Bindings), len(in.ServiceSetups))
	}

	out := r.Scan(PrefixFilter("github.com/other"))
	if len(out.Bindings) != 0 || len(out.ServiceSetups) != 0 {
		t.Errorf("non-matching prefix should exclude declarations, got %d bindings, %d setups",
			len(out.Bindings), len(out.ServiceSetups))
	}
}

func TestMarkInvokedSurvivesCacheClear(t *testing.T) {
	r := New()
	if !r.MarkInvoked("routes") {
		t.Fatal("first mark should report newly recorded")
	}
	if r.MarkInvoked("routes") {
		t.Error("second mark should report already recorded")
	}

	r.ClearCaches()
	if !r.Invoked("routes") {
		t.Error("invoked set must survive cache clearing")
	}
}

func TestDefaultRegistryIsStable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same registry")
	}
}
