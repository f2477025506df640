package queue

import (
	"strconv"
	"strings"
)

var _ Queue = (*Bounded)(nil)

// Bounded is a fixed-capacity FIFO queue backed by a circular buffer.
// It never grows. A zero-capacity queue is both empty and full.
// Bounded is not safe for concurrent use.
type Bounded struct {
	buf      []float64
	capacity int
	front    int // index of the oldest element
	size     int // number of valid elements starting at front
}

// NewBounded creates a queue that holds at most capacity elements.
func NewBounded(capacity int) (*Bounded, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Bounded{
		buf:      make([]float64, capacity),
		capacity: capacity,
	}, nil
}

// wrapIndex maps a logical position onto the backing slice.
func (q *Bounded) wrapIndex(pos int) int {
	return pos % q.capacity
}

// Enqueue appends v at the back of the queue.
// Validity is checked before fullness, so an invalid element on a full
// queue yields ErrInvalidElement.
func (q *Bounded) Enqueue(v float64) error {
	if !IsValidNumber(v) {
		return ErrInvalidElement
	}
	if q.IsFull() {
		return ErrQueueFull
	}

	q.buf[q.wrapIndex(q.front+q.size)] = v
	q.size++
	return nil
}

// EnqueueValue is Enqueue for values whose type is not known statically,
// such as decoded JSON. Non-numeric values are rejected with ErrInvalidElement.
func (q *Bounded) EnqueueValue(v any) error {
	f, ok := ToElement(v)
	if !ok {
		return ErrInvalidElement
	}
	return q.Enqueue(f)
}

// Dequeue removes and returns the oldest element.
func (q *Bounded) Dequeue() (float64, error) {
	if q.IsEmpty() {
		return 0, ErrQueueEmpty
	}

	v := q.buf[q.front]
	q.buf[q.front] = 0
	q.front = q.wrapIndex(q.front + 1)
	q.size--
	return v, nil
}

// Peek returns the oldest element without removing it.
func (q *Bounded) Peek() (float64, error) {
	if q.IsEmpty() {
		return 0, ErrQueueEmpty
	}
	return q.buf[q.front], nil
}

// IsEmpty returns true if the queue holds no elements.
func (q *Bounded) IsEmpty() bool {
	return q.size == 0
}

// IsFull returns true if the queue holds Capacity() elements.
func (q *Bounded) IsFull() bool {
	return q.size == q.capacity
}

// Size returns the number of elements in the queue.
func (q *Bounded) Size() int {
	return q.size
}

// Capacity returns the fixed capacity of the queue.
func (q *Bounded) Capacity() int {
	return q.capacity
}

// Available returns the number of free slots.
func (q *Bounded) Available() int {
	return q.capacity - q.size
}

// Values returns a copy of the queued elements, oldest first.
func (q *Bounded) Values() []float64 {
	out := make([]float64, 0, q.size)
	if q.size == 0 {
		return out
	}

	// Simple case: no wrap-around
	end := q.front + q.size
	if end <= q.capacity {
		return append(out, q.buf[q.front:end]...)
	}

	// Wrap-around case
	out = append(out, q.buf[q.front:]...)
	return append(out, q.buf[:end-q.capacity]...)
}

// String renders the queue as "[e1, e2] is_empty(): false, is_full(): false".
func (q *Bounded) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range q.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatElement(v))
	}
	sb.WriteString("] is_empty(): ")
	sb.WriteString(strconv.FormatBool(q.IsEmpty()))
	sb.WriteString(", is_full(): ")
	sb.WriteString(strconv.FormatBool(q.IsFull()))
	return sb.String()
}

// FormatElement formats v in its shortest decimal form, without an exponent.
func FormatElement(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
