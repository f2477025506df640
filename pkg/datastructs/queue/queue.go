package queue

// Queue is the interface for bounded FIFO queues of numeric elements.
type Queue interface {
	// Enqueue adds an item to the back of the queue.
	// Returns ErrInvalidElement for non-finite values and ErrQueueFull when no slot is free.
	Enqueue(item float64) error

	// Dequeue removes and returns the item at the front of the queue.
	// Returns ErrQueueEmpty if there is nothing to remove.
	Dequeue() (float64, error)

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// IsFull reports whether the queue holds Capacity() items.
	IsFull() bool

	// Size returns the number of items currently held.
	Size() int

	// Capacity returns the total capacity of the queue.
	Capacity() int
}
