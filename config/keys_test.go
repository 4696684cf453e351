package config

import (
	"reflect"
	"sort"
	"testing"
	"time"
)

type inner struct {
	Value string
}

type outer struct {
	Inner inner
	Name  string
}

func TestKeysNestedStructs(t *testing.T) {
	keys := Keys(reflect.TypeOf(outer{}), "App")
	sort.Strings(keys)

	want := []string{"App:Inner:Value", "App:Name"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestKeysNoIntermediateEntries(t *testing.T) {
	keys := Keys(reflect.TypeOf(outer{}), "App")
	for _, k := range keys {
		if k == "App" || k == "App:Inner" {
			t.Errorf("unexpected intermediate entry %q", k)
		}
	}
}

func TestKeysMapstructureTags(t *testing.T) {
	type tagged struct {
		Host    string `mapstructure:"host"`
		Ignored string `mapstructure:"-"`
	}
	keys := Keys(reflect.TypeOf(tagged{}), "Db")

	want := []string{"Db:host"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestKeysSquashedEmbedding(t *testing.T) {
	type Base struct {
		Name string `mapstructure:"name"`
	}
	type svc struct {
		Base `mapstructure:",squash"`
		Port int `mapstructure:"port"`
	}
	keys := Keys(reflect.TypeOf(svc{}), "Svc")
	sort.Strings(keys)

	want := []string{"Svc:name", "Svc:port"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestKeysPointerAndTimeFields(t *testing.T) {
	type leaf struct {
		At   time.Time
		Next *inner
	}
	keys := Keys(reflect.TypeOf(&leaf{}), "Job")
	sort.Strings(keys)

	want := []string{"Job:At", "Job:Next:Value"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestKeysCyclicType(t *testing.T) {
	type node struct {
		Label string
		Child *node
	}
	keys := Keys(reflect.TypeOf(node{}), "Tree")

	// The cycle is cut after one descent; enumeration must terminate.
	found := false
	for _, k := range keys {
		if k == "Tree:Label" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Tree:Label in %v", keys)
	}
}

func TestKeysScalarRoot(t *testing.T) {
	keys := Keys(reflect.TypeOf(42), "Answer")
	if !reflect.DeepEqual(keys, []string{"Answer"}) {
		t.Errorf("expected single leaf, got %v", keys)
	}
}
