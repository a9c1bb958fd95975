package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid request")
)

// Source hands out the current catalog snapshot. Every call of the service
// works on one snapshot from start to finish.
type Source interface {
	Snapshot() *catalog.Snapshot
}

// ProductStatus is a product together with its resolved publications.
type ProductStatus struct {
	catalog.Product
	Published    bool          `json:"published"`
	Publications []Publication `json:"publications"`
}

// Service exposes the resolution engine as read-only queries.
type Service interface {
	ListProducts(ctx context.Context, c Criteria) ([]ProductStatus, error)
	Publications(ctx context.Context, productID string) ([]Publication, error)
	Listings(ctx context.Context, productID string) ([]Listing, error)
	UnpublishedReason(ctx context.Context, productID string) (*UnpublishedReason, error)
	SessionTypeID(ctx context.Context, routingID, productID string) (string, error)
	ChannelDistribution(ctx context.Context, routingID string) ([]ChannelAssignment, error)
	WarehouseUsage(ctx context.Context, warehouseID string) (*WarehouseUsage, error)
	Diagnostics(ctx context.Context) ([]Violation, error)
}

type service struct{ source Source }

func NewService(source Source) Service { return &service{source: source} }

func (s *service) ListProducts(_ context.Context, c Criteria) ([]ProductStatus, error) {
	switch c.PublishedState {
	case "", StateAll, StatePublished, StateUnpublished:
	default:
		return nil, fmt.Errorf("%w: published state %q (allowed: all, published, unpublished)", ErrInvalid, c.PublishedState)
	}
	snap := s.source.Snapshot()
	products := FilterProducts(snap, snap.Products(), c)
	out := make([]ProductStatus, 0, len(products))
	for _, p := range products {
		pubs := ResolvePublications(snap, p.ID)
		if pubs == nil {
			pubs = []Publication{}
		}
		out = append(out, ProductStatus{Product: p, Published: len(pubs) > 0, Publications: pubs})
	}
	return out, nil
}

// product returns the snapshot the caller should keep using, or ErrNotFound.
func (s *service) product(productID string) (*catalog.Snapshot, error) {
	snap := s.source.Snapshot()
	if _, ok := snap.Product(productID); !ok {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	return snap, nil
}

func (s *service) Publications(_ context.Context, productID string) ([]Publication, error) {
	snap, err := s.product(productID)
	if err != nil {
		return nil, err
	}
	pubs := ResolvePublications(snap, productID)
	if pubs == nil {
		pubs = []Publication{}
	}
	return pubs, nil
}

func (s *service) Listings(_ context.Context, productID string) ([]Listing, error) {
	snap, err := s.product(productID)
	if err != nil {
		return nil, err
	}
	listings := ResolveListings(snap, productID)
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

// UnpublishedReason returns nil for a published product.
func (s *service) UnpublishedReason(_ context.Context, productID string) (*UnpublishedReason, error) {
	snap, err := s.product(productID)
	if err != nil {
		return nil, err
	}
	return Unpublished(snap, productID), nil
}

func (s *service) SessionTypeID(_ context.Context, routingID, productID string) (string, error) {
	if strings.TrimSpace(routingID) == "" {
		return "", fmt.Errorf("%w: routing_id is required", ErrInvalid)
	}
	if strings.TrimSpace(productID) == "" {
		return "", fmt.Errorf("%w: product_id is required", ErrInvalid)
	}
	return SessionTypeID(routingID, productID), nil
}

func (s *service) ChannelDistribution(_ context.Context, routingID string) ([]ChannelAssignment, error) {
	out, ok := ChannelDistribution(s.source.Snapshot(), routingID)
	if !ok {
		return nil, fmt.Errorf("routing %s: %w", routingID, ErrNotFound)
	}
	return out, nil
}

func (s *service) WarehouseUsage(_ context.Context, warehouseID string) (*WarehouseUsage, error) {
	u, ok := UsageOfWarehouse(s.source.Snapshot(), warehouseID)
	if !ok {
		return nil, fmt.Errorf("warehouse %s: %w", warehouseID, ErrNotFound)
	}
	return u, nil
}

func (s *service) Diagnostics(_ context.Context) ([]Violation, error) {
	v := Diagnose(s.source.Snapshot())
	if v == nil {
		v = []Violation{}
	}
	return v, nil
}
