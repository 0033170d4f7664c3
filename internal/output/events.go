package output

type Event interface {
	LogEvent | WarningEvent | ResourceStatusEvent | ProgressEvent
}

type Sink interface {
	// using any as the type only here; at call sites we'll have type safety from the union interface
	emit(event any)
}

type SinkFunc func(event any)

func (f SinkFunc) emit(event any) {
	if f == nil {
		return
	}
	f(event)
}

type LogEvent struct {
	Message string
}

type WarningEvent struct {
	Message string
}

// ResourceStatusEvent marks a pipeline phase transition for one resource,
// e.g. "pulling", "creating", "ready", "removing", "removed".
type ResourceStatusEvent struct {
	Phase    string
	Resource string
	Detail   string // optional extra info (e.g., resource ID)
}

// ProgressEvent carries one image-pull layer status update.
type ProgressEvent struct {
	LayerID string
	Status  string
	Current int64
	Total   int64
}

// Emit sends an event to the sink with compile-time type safety via generics.
func Emit[E Event](sink Sink, event E) {
	if sink == nil {
		return
	}
	sink.emit(event)
}

func EmitLog(sink Sink, message string) {
	Emit(sink, LogEvent{Message: message})
}

func EmitWarning(sink Sink, message string) {
	Emit(sink, WarningEvent{Message: message})
}

func EmitStatus(sink Sink, phase, resource, detail string) {
	Emit(sink, ResourceStatusEvent{Phase: phase, Resource: resource, Detail: detail})
}

func EmitProgress(sink Sink, layerID, status string, current, total int64) {
	Emit(sink, ProgressEvent{
		LayerID: layerID,
		Status:  status,
		Current: current,
		Total:   total,
	})
}
