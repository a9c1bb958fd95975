package routing

import (
	"slices"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

// Publication is a product effectively for sale through one sales routing.
type Publication struct {
	SessionTypeID string               `json:"session_type_id"`
	SalesRouting  catalog.SalesRouting `json:"sales_routing"`
	Event         catalog.Event        `json:"event"`
}

// ReasonType classifies why a product has no publication.
type ReasonType string

const (
	// ReasonNoRouting: no routing's warehouse pool holds any warehouse of the product.
	ReasonNoRouting ReasonType = "no-routing"
	// ReasonNotSelected: some routing pools hold the product's warehouse but never assign it.
	ReasonNotSelected ReasonType = "not-selected"
	// ReasonPendingSync: the product awaits a catalog sync and is invisible to resolution.
	ReasonPendingSync ReasonType = "pending-sync"
)

// UnpublishedReason explains why a product is not published. Routings is only
// set for ReasonNotSelected.
type UnpublishedReason struct {
	Type     ReasonType             `json:"type"`
	Routings []catalog.SalesRouting `json:"routings,omitempty"`
}

// eligibility is the outcome of matching one product against one routing.
type eligibility struct {
	boxOffice bool
	online    bool
}

func (e eligibility) any() bool { return e.boxOffice || e.online }

// evaluate applies both eligibility checks. They are independent on purpose:
// Box-Office eligibility only needs the product's warehouse in the routing pool,
// online eligibility needs a channel (Box-Office included) assigned to one of
// the product's warehouses.
func evaluate(s *catalog.Snapshot, r *catalog.SalesRouting, productWarehouses []string) eligibility {
	var e eligibility
	if !overlaps(r.WarehouseIDs, productWarehouses) {
		return e
	}
	e.boxOffice = r.HasChannel(s.BoxOfficeChannelID())
	for _, wid := range r.ChannelWarehouseMapping {
		if slices.Contains(productWarehouses, wid) {
			e.online = true
			break
		}
	}
	return e
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return true
		}
	}
	return false
}

// visibleWarehouses returns the warehouses of a product as seen by resolution.
// Products waiting for a sync have none.
func visibleWarehouses(s *catalog.Snapshot, productID string) []string {
	if p, ok := s.Product(productID); ok && p.PendingSync {
		return nil
	}
	return s.WarehouseIDsForProduct(productID)
}

// ResolvePublications returns one publication per routing, in routing order, through
// which the product is for sale. Routings whose event cannot be found are skipped.
func ResolvePublications(s *catalog.Snapshot, productID string) []Publication {
	warehouses := visibleWarehouses(s, productID)
	if len(warehouses) == 0 {
		return nil
	}
	var out []Publication
	routings := s.SalesRoutings()
	for i := range routings {
		r := &routings[i]
		if !evaluate(s, r, warehouses).any() {
			continue
		}
		event, ok := s.Event(r.EventID)
		if !ok {
			continue
		}
		out = append(out, Publication{
			SessionTypeID: SessionTypeID(r.ID, productID),
			SalesRouting:  *r,
			Event:         event,
		})
	}
	return out
}

// IsPublished reports whether the product has at least one publication.
func IsPublished(s *catalog.Snapshot, productID string) bool {
	return len(ResolvePublications(s, productID)) > 0
}

// Unpublished explains why a product has no publication, or returns nil when it
// is published. Near-miss routings are matched on their warehouse pool alone,
// which is looser than the publication check.
func Unpublished(s *catalog.Snapshot, productID string) *UnpublishedReason {
	if p, ok := s.Product(productID); ok && p.PendingSync {
		return &UnpublishedReason{Type: ReasonPendingSync}
	}
	if IsPublished(s, productID) {
		return nil
	}
	warehouses := s.WarehouseIDsForProduct(productID)
	var nearMisses []catalog.SalesRouting
	for _, r := range s.SalesRoutings() {
		if overlaps(r.WarehouseIDs, warehouses) {
			nearMisses = append(nearMisses, r)
		}
	}
	if len(nearMisses) == 0 {
		return &UnpublishedReason{Type: ReasonNoRouting}
	}
	return &UnpublishedReason{Type: ReasonNotSelected, Routings: nearMisses}
}
