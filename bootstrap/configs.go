package bootstrap

import (
	"reflect"
	"sort"

	"github.com/kbukum/wirekit/config"
	"github.com/kbukum/wirekit/container"
	"github.com/kbukum/wirekit/errors"
	"github.com/kbukum/wirekit/logger"
	"github.com/kbukum/wirekit/registry"
	"github.com/kbukum/wirekit/validation"
)

// applyConfigurations binds every scanned configuration declaration and
// returns the sorted, deduplicated union of the leaf key paths the bound
// types consume.
func applyConfigurations(c *container.Container, src *config.Source, snap *registry.Snapshot, log *logger.Logger) ([]string, error) {
	keySet := make(map[string]bool)
	for _, d := range snap.Configs {
		if d.Dynamic {
			bindDynamic(c, src, d)
		} else if err := bindStatic(c, src, d); err != nil {
			return nil, err
		}
		log.Debug("configuration bound", logger.Fields(
			logger.FieldType, d.Type.String(),
			logger.FieldPath, d.Key,
		))
		for _, k := range config.Keys(d.Type, d.Key) {
			keySet[k] = true
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Info("configurations bound", logger.Fields(logger.FieldCount, len(snap.Configs)))
	return keys, nil
}

// bindStatic populates one instance now and registers it as a fixed
// singleton. A missing section is a startup failure.
func bindStatic(c *container.Container, src *config.Source, d *registry.ConfigDeclaration) error {
	if !src.Has(d.Key) {
		return errors.MissingSection(d.Type.String(), d.Key)
	}
	instance, err := populate(src, d)
	if err != nil {
		return err
	}
	c.Put(reflect.PointerTo(d.Type), container.ForInstance(instance))
	return nil
}

// bindDynamic registers a transient provider that re-reads the source on
// every resolution, so the bound value follows the current source state. A
// section absent at resolution time yields a zero-valued instance; the
// section may appear later.
func bindDynamic(c *container.Container, src *config.Source, d *registry.ConfigDeclaration) {
	key := reflect.PointerTo(d.Type)
	provider := func(*container.Container) (any, error) {
		if !src.Has(d.Key) {
			return reflect.New(d.Type).Interface(), nil
		}
		return populate(src, d)
	}
	c.Put(key, container.NewRegistration(key, container.Transient, provider))
}

func populate(src *config.Source, d *registry.ConfigDeclaration) (any, error) {
	instance := reflect.New(d.Type).Interface()
	if err := src.Unmarshal(d.Key, instance); err != nil {
		return nil, errors.Instantiation(d.Type.String(), err)
	}
	if d.Validated {
		if err := validation.Validate(instance); err != nil {
			return nil, errors.InvalidConfig(d.Type.String(), d.Key, err)
		}
	}
	return instance, nil
}
