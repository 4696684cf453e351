// Package config provides the hierarchical configuration source consumed by
// wirekit's configuration binder.
//
// A Source wraps Viper configured with ":" as the key delimiter, so key paths
// line up with declared property hierarchies ("App:Db:Host"). Sources are
// built from files (with .env and environment variable overlay), from nested
// maps in tests, or empty.
//
// # Loading
//
//	src, err := config.Load("billing")               // discovers config.yml and .env
//	src, err := config.Load("billing",
//	    config.WithConfigFile("deploy/config.yml"))
//
// # Key enumeration
//
// Keys walks a struct type's declared shape and returns every leaf key path
// the binder will consume, independent of what the source actually contains.
package config
