package rest

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/huynhanx03/go-boundedqueue/internal/service"
	"github.com/huynhanx03/go-boundedqueue/pkg/common/apperr"
)

const serviceName = "queue"

// EnqueueRequest carries the raw element so that non-numeric JSON values
// (strings, null, booleans, objects) reach the element validity check.
type EnqueueRequest struct {
	Element json.RawMessage `json:"element"`
}

type ElementResponse struct {
	Element float64 `json:"element"`
}

type DequeueResponse struct {
	Element float64          `json:"element"`
	Queue   service.Snapshot `json:"queue"`
}

// QueueHandler exposes a QueueService over HTTP.
type QueueHandler struct {
	svc *service.QueueService
}

func NewQueueHandler(svc *service.QueueService) *QueueHandler {
	return &QueueHandler{svc: svc}
}

func (h *QueueHandler) Snapshot(ctx context.Context) (service.Snapshot, error) {
	return h.svc.Snapshot(ctx), nil
}

func (h *QueueHandler) Enqueue(ctx context.Context, req *EnqueueRequest) (service.Snapshot, error) {
	element := decodeElement(req.Element)
	snap, err := h.svc.Enqueue(ctx, element)
	if err != nil {
		return service.Snapshot{}, apperr.FromQueueError(serviceName, err, apperr.MsgEnqueueFailed)
	}
	return snap, nil
}

func (h *QueueHandler) Dequeue(ctx context.Context) (DequeueResponse, error) {
	v, snap, err := h.svc.Dequeue(ctx)
	if err != nil {
		return DequeueResponse{}, apperr.FromQueueError(serviceName, err, apperr.MsgDequeueFailed)
	}
	return DequeueResponse{Element: v, Queue: snap}, nil
}

func (h *QueueHandler) Peek(ctx context.Context) (ElementResponse, error) {
	v, err := h.svc.Peek(ctx)
	if err != nil {
		return ElementResponse{}, apperr.FromQueueError(serviceName, err, apperr.MsgPeekFailed)
	}
	return ElementResponse{Element: v}, nil
}

// decodeElement turns the raw JSON value into a Go value, keeping numbers
// as json.Number. A missing or malformed element decodes to nil.
func decodeElement(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
