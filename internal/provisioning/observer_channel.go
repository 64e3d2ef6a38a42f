package provisioning

import (
	"fmt"
	"maps"
)

// ChannelObserver forwards events to a channel, typically drained by the
// terminal UI. Sends block until the event is consumed or done is closed.
type ChannelObserver struct {
	events chan<- Event
	done   <-chan struct{}
	fields map[string]string
}

// NewChannelObserver creates an observer sending to events. Closing done
// turns further sends into no-ops.
func NewChannelObserver(events chan<- Event, done <-chan struct{}) *ChannelObserver {
	return &ChannelObserver{events: events, done: done}
}

// Printf implements Logger. Log lines travel as progress events without a phase.
func (o *ChannelObserver) Printf(format string, v ...any) {
	o.send(Event{Type: EventProgress, Message: fmt.Sprintf(format, v...)})
}

// Event implements Observer.
func (o *ChannelObserver) Event(event Event) {
	o.send(event)
}

// Progress implements Observer.
func (o *ChannelObserver) Progress(phase string, current, total int) {
	o.send(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: fmt.Sprintf("%d/%d", current, total),
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

// WithFields implements Observer.
func (o *ChannelObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	maps.Copy(merged, o.fields)
	maps.Copy(merged, fields)
	return &ChannelObserver{events: o.events, done: o.done, fields: merged}
}

func (o *ChannelObserver) send(event Event) {
	if len(o.fields) > 0 {
		event.Fields = mergeFields(o.fields, event.Fields)
	}
	select {
	case o.events <- event:
	case <-o.done:
	}
}
