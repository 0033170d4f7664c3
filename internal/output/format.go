package output

import "fmt"

// FormatEventLine converts an output event into a single display line.
func FormatEventLine(event any) (string, bool) {
	switch e := event.(type) {
	case LogEvent:
		return e.Message, true
	case WarningEvent:
		return fmt.Sprintf("Warning: %s", e.Message), true
	case ResourceStatusEvent:
		return formatStatusLine(e), true
	case ProgressEvent:
		return formatProgressLine(e)
	default:
		return "", false
	}
}

func formatStatusLine(e ResourceStatusEvent) string {
	switch e.Phase {
	case "pulling":
		return fmt.Sprintf("Pulling %s...", e.Resource)
	case "creating":
		return fmt.Sprintf("Creating %s...", e.Resource)
	case "ready":
		if e.Detail != "" {
			return fmt.Sprintf("%s ready (%s)", e.Resource, e.Detail)
		}
		return fmt.Sprintf("%s ready", e.Resource)
	case "removing":
		return fmt.Sprintf("Removing %s...", e.Resource)
	case "removed":
		return fmt.Sprintf("%s removed", e.Resource)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s (%s)", e.Resource, e.Phase, e.Detail)
		}
		return fmt.Sprintf("%s: %s", e.Resource, e.Phase)
	}
}

func formatProgressLine(e ProgressEvent) (string, bool) {
	if e.Total > 0 {
		pct := float64(e.Current) / float64(e.Total) * 100
		return fmt.Sprintf("  %s: %s %.1f%%", e.LayerID, e.Status, pct), true
	}
	if e.Status != "" {
		if e.LayerID == "" {
			return fmt.Sprintf("  %s", e.Status), true
		}
		return fmt.Sprintf("  %s: %s", e.LayerID, e.Status), true
	}
	return "", false
}
