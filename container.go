package dockhand

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
)

// Container is a handle to a container a Build started. Dropping a handle
// without calling Delete leaves the container running in the daemon
// indefinitely; teardown is deliberately caller-driven so test failures stay
// diagnosable. Use With for scoped cleanup.
type Container struct {
	details container.InspectResponse
	client  *Client
}

// ID returns the identifier the daemon assigned to the container.
func (c *Container) ID() string {
	return c.details.ID
}

// Name returns the container name, without the daemon's leading slash.
func (c *Container) Name() string {
	return strings.TrimPrefix(c.details.Name, "/")
}

// RawPorts exposes the daemon's native port-mapping structure verbatim, for
// callers needing detail the typed Ports accessor does not surface.
func (c *Container) RawPorts() nat.PortMap {
	if c.details.NetworkSettings == nil {
		return nil
	}
	return c.details.NetworkSettings.Ports
}

// Delete force-removes the container, the equivalent of `docker rm -f`. The
// handle must not be used afterwards. Removing a container that is already
// gone is not masked as success; it fails with a delete StageError that
// IsNotFound recognises.
func (c *Container) Delete(ctx context.Context) error {
	if err := c.client.engine.ContainerRemove(ctx, c.ID(), container.RemoveOptions{Force: true}); err != nil {
		return stageError(StageDelete, c.ID(), err)
	}
	return nil
}

// With builds a container from b, invokes fn with it, and deletes it on every
// exit path including a panic in fn. The build error, fn's error or the
// delete error is returned, in that order of precedence.
func With(ctx context.Context, b *ContainerBuilder, fn func(*Container) error) (err error) {
	ctr, buildErr := b.Build(ctx)
	if buildErr != nil {
		return buildErr
	}
	defer func() {
		if delErr := ctr.Delete(ctx); delErr != nil && err == nil {
			err = delErr
		}
	}()
	return fn(ctr)
}
