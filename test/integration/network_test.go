package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/docker/docker/api/types/network"
	"github.com/localstack/dockhand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkLifecycle(t *testing.T) {
	requireDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	name := uniqueName("dockhand-it-net")
	n, err := dockhand.NewNetwork(ctx, name)
	require.NoError(t, err)
	t.Cleanup(func() {
		client, err := dockhand.Default()
		if err != nil {
			return
		}
		_ = client.RemoveNetwork(context.Background(), n.ID())
	})

	assert.NotEmpty(t, n.ID())
	assert.Equal(t, name, n.Name())

	inspect, err := dockerClient.NetworkInspect(ctx, n.ID(), network.InspectOptions{})
	require.NoError(t, err)
	assert.Equal(t, name, inspect.Name)

	require.NoError(t, n.Delete(ctx))

	_, err = dockerClient.NetworkInspect(ctx, n.ID(), network.InspectOptions{})
	assert.True(t, dockhand.IsNotFound(err))
}

func TestNetworkDeleteAfterOutOfBandRemoval(t *testing.T) {
	requireDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := dockhand.NewNetwork(ctx, uniqueName("dockhand-it-net-gone"))
	require.NoError(t, err)

	client, err := dockhand.Default()
	require.NoError(t, err)
	require.NoError(t, client.RemoveNetwork(ctx, n.ID()))

	err = n.Delete(ctx)
	require.Error(t, err)
	assert.True(t, dockhand.IsNotFound(err))
}
