package dockhand

import (
	"context"
	"io"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

//go:generate mockgen -source=client.go -destination=mock_engine.go -package=dockhand

// Engine is the subset of the Docker Engine API this package drives.
// *client.Client satisfies it; tests substitute the generated mock.
type Engine interface {
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	NetworkCreate(ctx context.Context, name string, options network.CreateOptions) (network.CreateResponse, error)
	NetworkRemove(ctx context.Context, networkID string) error
	Ping(ctx context.Context) (types.Ping, error)
}

// Client is a shareable handle to the Docker daemon. The zero value is not
// usable; construct one with NewClient, Default or FromEngine. A Client is
// safe for concurrent use by any number of builders and handles.
type Client struct {
	engine Engine
}

// NewClient connects to the daemon using the standard environment variables
// (DOCKER_HOST etc.) with API version negotiation. Most callers should use
// Default instead and share one connection pool per process.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Client{engine: cli}, nil
}

// FromEngine wraps an existing Engine, typically a *client.Client with custom
// transport options, or a mock in tests.
func FromEngine(engine Engine) *Client {
	return &Client{engine: engine}
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the process-wide shared client, constructing it on first
// use. The instance is never torn down; it lives for the rest of the process.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = NewClient()
	})
	return defaultClient, defaultErr
}

// Ping checks connectivity with the daemon.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.engine.Ping(ctx)
	return err
}

// RemoveContainer force-removes a container by identifier, without a handle.
// This is the escape hatch for containers leaked by a failed build: a
// StageError from the start or inspect stage carries the identifier to pass
// here.
func (c *Client) RemoveContainer(ctx context.Context, id string) error {
	if err := c.engine.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}); err != nil {
		return stageError(StageDelete, id, err)
	}
	return nil
}

// RemoveNetwork removes a network by identifier, without a handle.
func (c *Client) RemoveNetwork(ctx context.Context, id string) error {
	if err := c.engine.NetworkRemove(ctx, id); err != nil {
		return stageError(StageDelete, id, err)
	}
	return nil
}
