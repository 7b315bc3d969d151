package playlist

const progressName = "progress"

// ProgressEvent reports the scan moving from pending entry Old to New.
// The first event of a scan carries Old == -1.
type ProgressEvent struct {
	Name string
	Old  int
	New  int
}

// ProgressListener receives scan progress synchronously on the scanning
// goroutine. A slow listener stalls the scan.
type ProgressListener interface {
	OnProgress(ProgressEvent)
}

// Subscribe registers a listener for progress events. Listener values must
// be comparable so they can be unsubscribed again.
func (p *Playlist) Subscribe(l ProgressListener) {
	p.listeners = append(p.listeners, l)
}

// Unsubscribe removes a previously subscribed listener. Unknown listeners
// are ignored.
func (p *Playlist) Unsubscribe(l ProgressListener) {
	for i, have := range p.listeners {
		if have == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

func (p *Playlist) fireProgress(oldIdx, newIdx int) {
	for _, l := range p.listeners {
		l.OnProgress(ProgressEvent{Name: progressName, Old: oldIdx, New: newIdx})
	}
}
