package wave

// FrameCallback receives a monotonically increasing timestamp in milliseconds.
type FrameCallback func(timestamp float64)

// FrameHandle identifies a scheduled frame callback. The zero value never
// refers to a live request.
type FrameHandle uint64

// FrameScheduler runs callbacks before the next repaint.
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	cb     FrameCallback
}

// FrameQueue is a FrameScheduler drained explicitly with Flush. Callbacks
// requested while a flush is running are deferred to the next flush.
type FrameQueue struct {
	next     FrameHandle
	pending  []frameRequest
	flushing []frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules cb for the next Flush.
func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameHandle {
	q.next++
	q.pending = append(q.pending, frameRequest{handle: q.next, cb: cb})
	return q.next
}

// CancelFrame removes a scheduled callback, including one in the batch of a
// running flush that has not been reached yet. Unknown handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range q.flushing {
		if q.flushing[i].handle == h {
			q.flushing[i].cb = nil
			return
		}
	}
	for i, req := range q.pending {
		if req.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs every callback scheduled before the call and returns how many
// ran.
func (q *FrameQueue) Flush(timestamp float64) int {
	q.flushing = q.pending
	q.pending = nil
	ran := 0
	for i := range q.flushing {
		cb := q.flushing[i].cb
		if cb == nil {
			continue
		}
		q.flushing[i].cb = nil
		cb(timestamp)
		ran++
	}
	q.flushing = nil
	return ran
}

// Len reports the number of scheduled callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
