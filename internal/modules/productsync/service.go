package productsync

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

var (
	ErrUnknownHandle    = errors.New("unknown sync handle")
	ErrAlreadyCompleted = errors.New("sync already completed")
)

// Service runs catalog syncs as two explicit phases. The caller decides what
// happens between BeginSync and CompleteSync (a delay, or nothing in tests).
type Service interface {
	BeginSync(ctx context.Context) (*SyncHandle, error)
	CompleteSync(ctx context.Context, handleID string) (*Result, error)
	PendingProducts(ctx context.Context) ([]catalog.Product, error)
}

type service struct {
	holder *catalog.Holder
	clock  Clock
	logger *logrus.Logger

	mu      sync.Mutex
	handles map[string]*handleState
}

type handleState struct {
	handle    SyncHandle
	completed bool
}

// NewService creates a sync service over the catalog holder. A nil clock uses
// the system clock.
func NewService(holder *catalog.Holder, clock Clock, logger *logrus.Logger) Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &service{
		holder:  holder,
		clock:   clock,
		logger:  logger,
		handles: make(map[string]*handleState),
	}
}

func (s *service) BeginSync(_ context.Context) (*SyncHandle, error) {
	var pending []string
	for _, p := range s.holder.Snapshot().Products() {
		if p.PendingSync {
			pending = append(pending, p.ID)
		}
	}
	h := SyncHandle{
		ID:         uuid.New().String(),
		ProductIDs: pending,
		StartedAt:  s.clock.Now(),
	}
	if h.ProductIDs == nil {
		h.ProductIDs = []string{}
	}

	s.mu.Lock()
	s.handles[h.ID] = &handleState{handle: h}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"module":   "productsync",
		"handle":   h.ID,
		"products": len(h.ProductIDs),
	}).Info("sync started")
	out := h
	out.ProductIDs = slices.Clone(h.ProductIDs)
	return &out, nil
}

func (s *service) CompleteSync(_ context.Context, handleID string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.handles[handleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, handleID)
	}
	if st.completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, handleID)
	}

	now := s.clock.Now()
	visible := []string{}
	_, err := s.holder.Update(func(d *catalog.Data) error {
		for i := range d.Products {
			p := &d.Products[i]
			if !p.PendingSync || !slices.Contains(st.handle.ProductIDs, p.ID) {
				continue
			}
			p.PendingSync = false
			syncedAt := now
			p.SyncedAt = &syncedAt
			visible = append(visible, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish synced catalog: %w", err)
	}
	st.completed = true

	s.logger.WithFields(logrus.Fields{
		"module":  "productsync",
		"handle":  handleID,
		"visible": len(visible),
	}).Info("sync completed")
	return &Result{HandleID: handleID, NewlyVisibleProductIDs: visible, CompletedAt: now}, nil
}

func (s *service) PendingProducts(_ context.Context) ([]catalog.Product, error) {
	out := []catalog.Product{}
	for _, p := range s.holder.Snapshot().Products() {
		if p.PendingSync {
			out = append(out, p)
		}
	}
	return out, nil
}
