package dockhand

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// Stage identifies the pipeline step a failure occurred in.
type Stage string

const (
	StagePull    Stage = "pull"
	StageCreate  Stage = "create"
	StageStart   Stage = "start"
	StageInspect Stage = "inspect"
	StageDelete  Stage = "delete"
)

// StageError reports which pipeline stage failed. Failures are terminal for
// the call that produced them; nothing is retried and no compensating cleanup
// runs. ResourceID is set once the daemon has assigned an identifier, so a
// container left behind by a start or inspect failure can still be removed
// with Client.RemoveContainer.
type StageError struct {
	Stage      Stage
	ResourceID string
	Err        error
}

func (e *StageError) Error() string {
	if e.ResourceID != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.ResourceID, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, id string, err error) *StageError {
	return &StageError{Stage: stage, ResourceID: id, Err: err}
}

// IsNotFound reports whether err was caused by the resource being absent from
// the daemon, e.g. a Delete racing an out-of-band removal.
func IsNotFound(err error) bool {
	return errdefs.IsNotFound(err)
}
