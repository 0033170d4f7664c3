// Package dockhand provisions disposable Docker containers and networks for
// integration tests and other short-lived workloads.
//
// A fluent builder turns a declarative configuration into a running container
// through a fixed pipeline (optional image pull, create, start, inspect) and
// returns a handle exposing the container's identity, published ports and a
// forced-removal teardown:
//
//	ctr, err := dockhand.NewContainerBuilder("couchdb").
//		Tag("2.3.0").
//		Name("couch").
//		SlugLength(6).
//		Expose(5984, 5984, dockhand.TCP).
//		Env("COUCHDB_USER=admin").
//		PullOnBuild(true).
//		Build(ctx)
//	if err != nil {
//		return err
//	}
//	defer ctr.Delete(ctx)
//
// Handles do not clean themselves up: dropping one without calling Delete
// leaves the container running in the daemon. With wraps a build in a
// guaranteed teardown for callers who want scoped cleanup:
//
//	err := dockhand.With(ctx, dockhand.NewContainerBuilder("alpine"), func(ctr *dockhand.Container) error {
//		// use ctr.ID(), ctr.Ports(), ...
//		return nil
//	})
//
// All builders share a lazily constructed process-wide client by default; pass
// a custom one with the Client setter when a test needs its own connection.
package dockhand
