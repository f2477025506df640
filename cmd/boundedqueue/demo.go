package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-boundedqueue/pkg/datastructs/queue"
)

// runDemo walks a queue of the given capacity through fill, partial drain
// and refill, writing the rendering after each step.
func runDemo(w io.Writer, capacity int) error {
	q, err := queue.NewBounded(capacity)
	if err != nil {
		return errors.Wrapf(err, "capacity %d", capacity)
	}
	fmt.Fprintf(w, "created:   %s\n", q)

	for i := 0; !q.IsFull(); i++ {
		if err := q.Enqueue(float64(i)); err != nil {
			return errors.Wrap(err, "fill")
		}
	}
	fmt.Fprintf(w, "filled:    %s\n", q)

	drained := min(3, q.Size())
	for i := 0; i < drained; i++ {
		if _, err := q.Dequeue(); err != nil {
			return errors.Wrap(err, "drain")
		}
	}
	fmt.Fprintf(w, "dequeued %d: %s\n", drained, q)

	refill := min(2, q.Available())
	for i := 1; i <= refill; i++ {
		if err := q.Enqueue(float64(i)); err != nil {
			return errors.Wrap(err, "refill")
		}
	}
	fmt.Fprintf(w, "enqueued %d: %s\n", refill, q)

	if err := q.Enqueue(99); err != nil {
		fmt.Fprintf(w, "enqueue 99: %v\n", err)
	}
	return nil
}
