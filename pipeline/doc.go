// Package pipeline provides the HTTP application pipeline builder handed to
// app-setup functions during InitializeApp.
//
// A Builder wraps a Gin engine and an http.Server (with h2c so gRPC-style
// handlers can share the port). App-setup functions receive the builder and
// attach middleware, routes, and extra handlers; the host then calls Start.
//
//	b := pipeline.New(cfg, log)
//	b.Use(middleware.RequestID(), middleware.Recovery())
//	b.Engine().GET("/healthz", handler)
//	err := b.Start(ctx)
package pipeline
