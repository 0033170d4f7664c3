package dockhand

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testContainer(engine *MockEngine, id, name string) *Container {
	return &Container{details: inspectResponse(id, name), client: FromEngine(engine)}
}

func TestDeleteForcesRemoval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().
		ContainerRemove(gomock.Any(), "c0ffee", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, options container.RemoveOptions) error {
			assert.True(t, options.Force, "delete must remove regardless of run state")
			return nil
		})

	ctr := testContainer(engine, "c0ffee", "/p")
	require.NoError(t, ctr.Delete(context.Background()))
}

func TestDeleteOfAbsentContainerIsNotMasked(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().
		ContainerRemove(gomock.Any(), "gone1", gomock.Any()).
		Return(fmt.Errorf("remove gone1: %w", errdefs.ErrNotFound))

	ctr := testContainer(engine, "gone1", "/p")
	err := ctr.Delete(context.Background())

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageDelete, serr.Stage)
	assert.Equal(t, "gone1", serr.ResourceID)
	assert.True(t, IsNotFound(err))
}

func TestNameStripsDaemonSlash(t *testing.T) {
	t.Parallel()

	ctr := &Container{details: inspectResponse("x", "/festive_mendel")}
	assert.Equal(t, "festive_mendel", ctr.Name())

	ctr = &Container{details: inspectResponse("x", "plain")}
	assert.Equal(t, "plain", ctr.Name())
}

func TestWithDeletesOnSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	var got createArgs
	expectCreate(engine, "aa10", &got)
	engine.EXPECT().ContainerStart(gomock.Any(), "aa10", gomock.Any()).Return(nil)
	engine.EXPECT().ContainerInspect(gomock.Any(), "aa10").Return(inspectResponse("aa10", "/w"), nil)
	engine.EXPECT().ContainerRemove(gomock.Any(), "aa10", gomock.Any()).Return(nil)

	var sawID string
	err := With(context.Background(), NewContainerBuilder("alpine").Client(FromEngine(engine)), func(ctr *Container) error {
		sawID = ctr.ID()
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "aa10", sawID)
}

func TestWithDeletesOnCallbackError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	var got createArgs
	expectCreate(engine, "aa11", &got)
	engine.EXPECT().ContainerStart(gomock.Any(), "aa11", gomock.Any()).Return(nil)
	engine.EXPECT().ContainerInspect(gomock.Any(), "aa11").Return(inspectResponse("aa11", "/w"), nil)
	engine.EXPECT().ContainerRemove(gomock.Any(), "aa11", gomock.Any()).Return(nil)

	wantErr := errors.New("assertion failed")
	err := With(context.Background(), NewContainerBuilder("alpine").Client(FromEngine(engine)), func(*Container) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestWithDeletesOnPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	var got createArgs
	expectCreate(engine, "aa12", &got)
	engine.EXPECT().ContainerStart(gomock.Any(), "aa12", gomock.Any()).Return(nil)
	engine.EXPECT().ContainerInspect(gomock.Any(), "aa12").Return(inspectResponse("aa12", "/w"), nil)
	engine.EXPECT().ContainerRemove(gomock.Any(), "aa12", gomock.Any()).Return(nil)

	assert.Panics(t, func() {
		_ = With(context.Background(), NewContainerBuilder("alpine").Client(FromEngine(engine)), func(*Container) error {
			panic("boom")
		})
	})
}

func TestWithSkipsCallbackOnBuildFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	engine.EXPECT().
		ContainerCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(container.CreateResponse{}, errors.New("quota exceeded"))

	called := false
	err := With(context.Background(), NewContainerBuilder("alpine").Client(FromEngine(engine)), func(*Container) error {
		called = true
		return nil
	})

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageCreate, serr.Stage)
	assert.False(t, called)
}
