package dockhand

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/network"
)

// Network is a handle to a virtual network. Networks are created directly in
// a ready state, so the pipeline is a single create stage. Like Container, a
// Network is not removed when the handle is dropped; call Delete.
type Network struct {
	id     string
	name   string
	client *Client
}

// NewNetwork creates a network with the default client. Shorthand for
// NewNetworkBuilder(name).Build(ctx).
func NewNetwork(ctx context.Context, name string) (*Network, error) {
	return NewNetworkBuilder(name).Build(ctx)
}

// NetworkBuilder configures a single virtual network.
type NetworkBuilder struct {
	name   string
	client *Client
}

func NewNetworkBuilder(name string) *NetworkBuilder {
	return &NetworkBuilder{name: name}
}

// Client overrides the shared Default client.
func (b *NetworkBuilder) Client(c *Client) *NetworkBuilder {
	b.client = c
	return b
}

// Build creates the network and returns its handle. Failures are returned as
// a create *StageError.
func (b *NetworkBuilder) Build(ctx context.Context) (*Network, error) {
	cli := b.client
	if cli == nil {
		var err error
		if cli, err = Default(); err != nil {
			return nil, fmt.Errorf("no docker client available: %w", err)
		}
	}

	resp, err := cli.engine.NetworkCreate(ctx, b.name, network.CreateOptions{})
	if err != nil {
		return nil, stageError(StageCreate, "", err)
	}
	return &Network{id: resp.ID, name: b.name, client: cli}, nil
}

// ID returns the identifier the daemon assigned to the network.
func (n *Network) ID() string {
	return n.id
}

// Name returns the name the network was created with.
func (n *Network) Name() string {
	return n.name
}

// Delete removes the network. Same contract as Container.Delete: removal of
// an already-absent network is surfaced, not masked.
func (n *Network) Delete(ctx context.Context) error {
	if err := n.client.engine.NetworkRemove(ctx, n.id); err != nil {
		return stageError(StageDelete, n.id, err)
	}
	return nil
}
