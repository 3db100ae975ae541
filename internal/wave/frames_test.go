package wave

import "testing"

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	var ran []string
	h := q.RequestFrame(func(float64) { ran = append(ran, "a") })
	q.RequestFrame(func(float64) { ran = append(ran, "b") })
	q.CancelFrame(h)
	q.CancelFrame(0)
	q.CancelFrame(9999)

	if n := q.Flush(1); n != 1 {
		t.Fatalf("Expected 1 callback, got %d", n)
	}
	if len(ran) != 1 || ran[0] != "b" {
		t.Errorf("Unexpected callbacks: %v", ran)
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	q := NewFrameQueue()
	var stamps []float64
	var cb FrameCallback
	cb = func(ts float64) {
		stamps = append(stamps, ts)
		q.RequestFrame(cb)
	}
	q.RequestFrame(cb)

	q.Flush(10)
	if len(stamps) != 1 || q.Len() != 1 {
		t.Fatalf("Expected one run and one pending, got %d runs, %d pending", len(stamps), q.Len())
	}
	q.Flush(20)
	if len(stamps) != 2 || stamps[1] != 20 {
		t.Errorf("Unexpected timestamps: %v", stamps)
	}
}

func TestFrameQueueCancelDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	var second FrameHandle
	secondRan := false
	q.RequestFrame(func(float64) { q.CancelFrame(second) })
	second = q.RequestFrame(func(float64) { secondRan = true })

	if n := q.Flush(1); n != 1 {
		t.Errorf("Expected 1 callback, got %d", n)
	}
	if secondRan {
		t.Error("Cancelled callback ran")
	}
}
