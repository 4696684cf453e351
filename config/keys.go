package config

import (
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Keys enumerates every leaf configuration key path consumed when binding a
// value of type t rooted at prefix. Paths are colon-joined; only leaves are
// returned, never intermediate sections.
//
// Enumeration is driven purely by the declared field shapes: a field is a
// section when its (possibly pointer) type is a struct, and a leaf otherwise.
// time.Time fields are leaves. Field names honor mapstructure tags, including
// ",squash" for embedded structs; fields tagged "-" are skipped. Recursive
// type cycles are cut rather than followed.
//
//	type Outer struct{ Inner Inner }
//	type Inner struct{ Value string }
//	config.Keys(reflect.TypeOf(Outer{}), "App")
//	// → ["App:Inner:Value"]
func Keys(t reflect.Type, prefix string) []string {
	return appendKeys(nil, t, prefix, map[reflect.Type]bool{})
}

func appendKeys(out []string, t reflect.Type, prefix string, seen map[reflect.Type]bool) []string {
	t = deref(t)
	if !isSection(t) {
		if prefix != "" {
			out = append(out, prefix)
		}
		return out
	}
	if seen[t] {
		return out
	}
	seen[t] = true
	defer delete(seen, t)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, squash := fieldKey(field)
		if name == "-" {
			continue
		}

		childPrefix := prefix
		if !squash {
			childPrefix = join(prefix, name)
		}

		ft := deref(field.Type)
		if isSection(ft) {
			out = appendKeys(out, ft, childPrefix, seen)
		} else if childPrefix != "" {
			out = append(out, childPrefix)
		}
	}
	return out
}

// fieldKey returns the configuration key segment for a struct field and
// whether the field is squashed into its parent.
func fieldKey(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("mapstructure")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	squash := false
	for _, opt := range parts[1:] {
		if opt == "squash" {
			squash = true
		}
	}
	if name == "" {
		name = field.Name
	}
	return name, squash
}

func isSection(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t != timeType
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + KeyDelimiter + name
}
