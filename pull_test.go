package dockhand

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// trackingStream records whether the pull stream was drained and closed.
type trackingStream struct {
	r      io.Reader
	sawEOF bool
	closed bool
}

func (s *trackingStream) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err == io.EOF {
		s.sawEOF = true
	}
	return n, err
}

func (s *trackingStream) Close() error {
	s.closed = true
	return nil
}

func TestPullDrainsStreamToEOF(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	stream := &trackingStream{r: strings.NewReader(
		`{"status":"Pulling from library/alpine"}` +
			`{"status":"Downloading","id":"layer1","progressDetail":{"current":10,"total":100}}` +
			`{"status":"Download complete","id":"layer1"}`,
	)}
	engine.EXPECT().ImagePull(gomock.Any(), "alpine:latest", gomock.Any()).Return(stream, nil)

	var seen []PullProgress
	err := pullImage(context.Background(), engine, "alpine:latest", func(p PullProgress) {
		seen = append(seen, p)
	})

	require.NoError(t, err)
	assert.True(t, stream.sawEOF, "the stream must be consumed to exhaustion")
	assert.True(t, stream.closed)
	require.Len(t, seen, 3)
	assert.Equal(t, int64(10), seen[1].Current)
	assert.Equal(t, int64(100), seen[1].Total)
}

func TestPullWithoutObserver(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	stream := &trackingStream{r: strings.NewReader(`{"status":"Already exists","id":"layer1"}`)}
	engine.EXPECT().ImagePull(gomock.Any(), "alpine:latest", gomock.Any()).Return(stream, nil)

	require.NoError(t, pullImage(context.Background(), engine, "alpine:latest", nil))
	assert.True(t, stream.sawEOF)
}

func TestPullStopsAtErrorMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	stream := &trackingStream{r: strings.NewReader(
		`{"status":"Pulling from ghost"}{"error":"pull access denied"}{"status":"never reached"}`,
	)}
	engine.EXPECT().ImagePull(gomock.Any(), "ghost:latest", gomock.Any()).Return(stream, nil)

	var seen []PullProgress
	err := pullImage(context.Background(), engine, "ghost:latest", func(p PullProgress) {
		seen = append(seen, p)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pull access denied")
	assert.True(t, stream.closed)
	require.Len(t, seen, 1, "messages after the error must not be observed")
}

func TestPullGarbageStream(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)

	stream := &trackingStream{r: strings.NewReader(`{"status":"ok"}not json`)}
	engine.EXPECT().ImagePull(gomock.Any(), "alpine:latest", gomock.Any()).Return(stream, nil)

	err := pullImage(context.Background(), engine, "alpine:latest", nil)
	require.Error(t, err)
	assert.True(t, stream.closed)
}
