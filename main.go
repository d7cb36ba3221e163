package str_queue_go

import (
	"strings"
	"sync"
)

// LockingStringQueue is a fixed-capacity FIFO of null-terminated text
// records backed by a single byte arena. The arena holds capacity+1 bytes;
// the extra byte stays unused so an equal read/write cursor always means
// empty and never full.
//
// Intended for one producer and one consumer in different goroutines. Each
// operation runs under the queue mutex, so cursor updates made by one side
// are visible to the other. Nothing blocks: a full queue rejects the
// enqueue and an empty queue rejects the dequeue, immediately.
type LockingStringQueue struct {
	data []byte

	readPos  int
	writePos int

	capacity int
	mu       sync.Mutex
}

// NewLockingStringQueue creates a queue with the given usable capacity in
// bytes. Capacities below one are raised to one, which yields a queue that
// admits nothing but stays well defined.
func NewLockingStringQueue(capacity int) *LockingStringQueue {
	if capacity < 1 {
		capacity = 1
	}

	return &LockingStringQueue{
		data: make([]byte, capacity+1),

		readPos:  0,
		writePos: 0,

		capacity: capacity,
	}
}

// advance moves a cursor one byte forward, wrapping at the arena end. All
// cursor movement goes through here so the wraparound arithmetic lives in
// one place.
func (queue *LockingStringQueue) advance(pos int) int {
	pos++
	if pos == len(queue.data) {
		pos = 0
	}

	return pos
}

// used reports the occupied byte count. Callers hold the mutex.
func (queue *LockingStringQueue) used() int {
	if queue.writePos >= queue.readPos {
		return queue.writePos - queue.readPos
	}

	return len(queue.data) - queue.readPos + queue.writePos
}

// available reports the largest admissible record length including its
// terminator. Callers hold the mutex.
func (queue *LockingStringQueue) available() int {
	return queue.capacity - queue.used() - 1
}

// Enqueue appends s to the queue as one record, storing its bytes and a
// trailing terminator. An embedded NUL byte in s ends the record at that
// point. If the record does not fit in the available space the queue is
// left untouched and ErrQueueFull is returned; partial records are never
// written.
func (queue *LockingStringQueue) Enqueue(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	queue.mu.Lock()
	defer queue.mu.Unlock()

	if len(s)+1 > queue.available() {
		return ErrQueueFull
	}

	for i := 0; i < len(s); i++ {
		queue.data[queue.writePos] = s[i]
		queue.writePos = queue.advance(queue.writePos)
	}
	queue.data[queue.writePos] = 0
	queue.writePos = queue.advance(queue.writePos)

	return nil
}

// Dequeue copies the oldest record into p as a null-terminated string and
// returns the payload length. Copying stops at the record terminator, at
// the write cursor, or at the capacity of p, whichever comes first. When
// the write cursor or the capacity of p cuts the record short a terminator
// is forced into p and the call still succeeds; the remaining bytes of
// that record surface on the next Dequeue.
//
// A p shorter than one byte returns ErrInvalidArgument and an empty queue
// returns ErrQueueEmpty; in both cases no record bytes are consumed and on
// ErrQueueEmpty p is forced to the empty string.
func (queue *LockingStringQueue) Dequeue(p []byte) (int, error) {
	if len(p) < 1 {
		return 0, ErrInvalidArgument
	}

	queue.mu.Lock()
	defer queue.mu.Unlock()

	p[0] = 0
	if queue.writePos == queue.readPos {
		return 0, ErrQueueEmpty
	}

	for i := 0; i < len(p)-1; i++ {
		c := queue.data[queue.readPos]
		queue.readPos = queue.advance(queue.readPos)
		p[i] = c

		if c == 0 {
			return i, nil
		}
		if queue.readPos == queue.writePos {
			p[i+1] = 0
			return i + 1, nil
		}
		if i == len(p)-2 {
			p[i+1] = 0
			return i + 1, nil
		}
	}

	// len(p) == 1: only the forced terminator fits.
	return 0, nil
}

// DequeueString dequeues into a fresh maxLen-byte destination and returns
// the payload as a string, terminator stripped. Truncation behaves exactly
// as in Dequeue.
func (queue *LockingStringQueue) DequeueString(maxLen int) (string, error) {
	if maxLen < 1 {
		return "", ErrInvalidArgument
	}

	p := make([]byte, maxLen)
	n, err := queue.Dequeue(p)
	if err != nil {
		return "", err
	}

	return string(p[:n]), nil
}

// IsEmpty reports whether the queue holds no records.
func (queue *LockingStringQueue) IsEmpty() bool {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	return queue.writePos == queue.readPos
}

// UsedBytes returns the number of arena bytes occupied by buffered
// records, terminators included.
func (queue *LockingStringQueue) UsedBytes() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	return queue.used()
}

// AvailableBytes returns the largest record length, terminator included,
// that Enqueue would currently admit.
func (queue *LockingStringQueue) AvailableBytes() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	return queue.available()
}

// Size returns the fixed usable capacity the queue was created with.
func (queue *LockingStringQueue) Size() int {
	return queue.capacity
}

// Reset discards all buffered records by rewinding both cursors. The
// arena is kept; the discarded bytes are unrecoverable.
func (queue *LockingStringQueue) Reset() {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	queue.readPos = 0
	queue.writePos = 0
}
