package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-boundedqueue/pkg/datastructs/queue"
)

// Snapshot is a consistent view of the queue taken under the service lock.
type Snapshot struct {
	Capacity int       `json:"capacity"`
	Size     int       `json:"size"`
	IsEmpty  bool      `json:"is_empty"`
	IsFull   bool      `json:"is_full"`
	Elements []float64 `json:"elements"`
	Display  string    `json:"display"`
}

// QueueService shares one bounded queue between concurrent callers.
type QueueService struct {
	mu     sync.Mutex
	q      *queue.Bounded
	logger *zap.Logger
}

// NewQueueService creates a service around a new queue of the given capacity.
func NewQueueService(capacity int, logger *zap.Logger) (*QueueService, error) {
	q, err := queue.NewBounded(capacity)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueService{q: q, logger: logger.Named("queue")}, nil
}

// Enqueue validates and appends v, returning the resulting snapshot.
func (s *QueueService) Enqueue(_ context.Context, v any) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.q.EnqueueValue(v); err != nil {
		s.logger.Debug("enqueue rejected", zap.Any("element", v), zap.Error(err))
		return s.snapshot(), err
	}
	s.logger.Debug("enqueued", zap.Any("element", v), zap.Int("size", s.q.Size()))
	return s.snapshot(), nil
}

// Dequeue removes the oldest element.
func (s *QueueService) Dequeue(_ context.Context) (float64, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.q.Dequeue()
	if err != nil {
		s.logger.Debug("dequeue rejected", zap.Error(err))
		return 0, s.snapshot(), err
	}
	s.logger.Debug("dequeued", zap.Float64("element", v), zap.Int("size", s.q.Size()))
	return v, s.snapshot(), nil
}

// Peek returns the oldest element without removing it.
func (s *QueueService) Peek(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Peek()
}

// Snapshot returns the current state of the queue.
func (s *QueueService) Snapshot(_ context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot must be called with mu held.
func (s *QueueService) snapshot() Snapshot {
	return Snapshot{
		Capacity: s.q.Capacity(),
		Size:     s.q.Size(),
		IsEmpty:  s.q.IsEmpty(),
		IsFull:   s.q.IsFull(),
		Elements: s.q.Values(),
		Display:  s.q.String(),
	}
}
