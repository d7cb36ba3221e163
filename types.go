package str_queue_go

import (
	"errors"
)

// StringQueueInterface defines the public API for the string queue.
//
// The queue stores null-terminated text records FIFO inside one fixed-size
// byte arena of capacity+1 bytes. Two cursors (read and write) index the
// arena; one byte is always kept unused so that the empty and full states
// stay distinguishable by cursor comparison alone. No count field exists.
//
// Notes on semantics:
//   - Enqueue is atomic: either the whole record including its terminator
//     is admitted, or nothing is written and ErrQueueFull is returned. The
//     admission check compares the record length (payload + terminator)
//     against AvailableBytes before any byte is copied.
//   - Dequeue copies from the read cursor into the caller's buffer until
//     the record terminator, the write cursor, or the buffer capacity is
//     reached, whichever comes first. The last two cases truncate silently:
//     a terminator is forced into the output and the call still succeeds.
//     A record longer than the destination surfaces as multiple results
//     across successive Dequeue calls; callers retry with another Dequeue
//     rather than expecting one atomic record read.
//   - Neither operation blocks. Full and empty report errors immediately.
//   - Reset discards all buffered records without recovery.
//
// All methods are safe for concurrent use by one producer and one consumer.
type StringQueueInterface interface {
	// Appends a null-terminated record to the queue.
	Enqueue(s string) (err error)

	// Copies the oldest record into p as a null-terminated string and
	// returns the payload length (terminator excluded).
	Dequeue(p []byte) (n int, err error)

	// Like Dequeue with a maxLen-byte destination, returning the payload
	// as a string.
	DequeueString(maxLen int) (s string, err error)

	// Reports whether the queue holds no records.
	IsEmpty() bool

	// Returns the number of arena bytes currently occupied by records.
	UsedBytes() int

	// Returns the largest record length (terminator included) that can
	// currently be admitted.
	AvailableBytes() int

	// Returns the fixed usable capacity, for diagnostics.
	Size() int

	// Discards all buffered records.
	Reset()
}

var _ StringQueueInterface = &LockingStringQueue{}

// ErrQueueFull indicates the record does not fit in the currently
// available arena space. Nothing was written.
var ErrQueueFull = errors.New("strqueue: queue is full")

// ErrQueueEmpty indicates there is no record to dequeue. The destination
// is forced to the empty string.
var ErrQueueEmpty = errors.New("strqueue: queue is empty")

// ErrInvalidArgument indicates the destination buffer cannot hold even a
// bare terminator. Queue state is untouched.
var ErrInvalidArgument = errors.New("strqueue: destination capacity must be at least 1")
