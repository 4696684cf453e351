// Package bootstrap orchestrates startup from recorded declarations.
//
// InitializeServices turns the registry's binding and configuration
// declarations into container registrations and runs the service setups;
// InitializeApp runs the app setups against a pipeline builder. Both accept a
// scan filter to restrict which declarations participate. CompleteStartup
// ends the startup window, releasing the caches the phases share.
//
//	c := container.New()
//	src, _ := config.Load("billing")
//	if _, err := bootstrap.InitializeServices(c, src); err != nil {
//	    log.Fatal(err)
//	}
//	b := pipeline.NewDefault()
//	if err := bootstrap.InitializeApp(b, src); err != nil {
//	    log.Fatal(err)
//	}
//	bootstrap.CompleteStartup(c)
package bootstrap
