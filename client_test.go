package dockhand

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDefaultReturnsSharedInstance(t *testing.T) {
	t.Parallel()

	first, err1 := Default()
	second, err2 := Default()

	// Constructing the client needs no running daemon, only a well-formed
	// environment, so this should not fail on CI.
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, first, second)
}

func TestPingDelegatesToEngine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().Ping(gomock.Any()).Return(types.Ping{}, nil)
	require.NoError(t, FromEngine(engine).Ping(context.Background()))

	engine.EXPECT().Ping(gomock.Any()).Return(types.Ping{}, errors.New("daemon unreachable"))
	assert.Error(t, FromEngine(engine).Ping(context.Background()))
}

func TestRemoveContainerByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().
		ContainerRemove(gomock.Any(), "orphan1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, options container.RemoveOptions) error {
			assert.True(t, options.Force)
			return nil
		})

	require.NoError(t, FromEngine(engine).RemoveContainer(context.Background(), "orphan1"))
}

func TestRemoveContainerFailureIsDeleteStage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().ContainerRemove(gomock.Any(), "orphan2", gomock.Any()).Return(errors.New("device busy"))

	err := FromEngine(engine).RemoveContainer(context.Background(), "orphan2")
	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageDelete, serr.Stage)
	assert.Equal(t, "orphan2", serr.ResourceID)
}
