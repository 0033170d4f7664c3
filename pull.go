package dockhand

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/docker/docker/api/types/image"
)

// PullProgress is one decoded status message from the daemon's image pull
// stream.
type PullProgress struct {
	LayerID string
	Status  string
	Current int64
	Total   int64
}

// pullImage fetches ref and drains the status stream to EOF. The stream must
// be consumed fully; abandoning it early can leave the daemon's pull
// operation outstanding. An error object anywhere in the stream aborts the
// pull.
func pullImage(ctx context.Context, engine Engine, ref string, observe func(PullProgress)) error {
	reader, err := engine.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close image pull reader: %v", err)
		}
	}()

	decoder := json.NewDecoder(reader)
	for {
		var msg struct {
			Status         string `json:"status"`
			ID             string `json:"id"`
			Error          string `json:"error"`
			ProgressDetail struct {
				Current int64 `json:"current"`
				Total   int64 `json:"total"`
			} `json:"progressDetail"`
		}
		if err := decoder.Decode(&msg); err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if msg.Error != "" {
			return fmt.Errorf("image pull failed: %s", msg.Error)
		}

		if observe != nil {
			observe(PullProgress{
				LayerID: msg.ID,
				Status:  msg.Status,
				Current: msg.ProgressDetail.Current,
				Total:   msg.ProgressDetail.Total,
			})
		}
	}
	return nil
}
