package routing

import (
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

// ChannelAssignment summarises where one channel of a routing draws its stock from.
type ChannelAssignment struct {
	Channel      catalog.Channel    `json:"channel"`
	Warehouse    *catalog.Warehouse `json:"warehouse,omitempty"`
	ProductCount int                `json:"product_count"`
	BoxOffice    bool               `json:"box_office"`
}

// ChannelDistribution lists the selected channels of a routing with their
// assigned warehouse and the number of visible products it holds. An unmapped
// channel has no warehouse and a zero count. The bool is false when the routing
// does not exist.
func ChannelDistribution(s *catalog.Snapshot, routingID string) ([]ChannelAssignment, bool) {
	r, ok := s.SalesRouting(routingID)
	if !ok {
		return nil, false
	}
	out := make([]ChannelAssignment, 0, len(r.ChannelIDs))
	for _, chID := range r.ChannelIDs {
		ch, ok := s.Channel(chID)
		if !ok {
			continue
		}
		a := ChannelAssignment{Channel: ch, BoxOffice: s.IsBoxOffice(chID)}
		if wid, ok := r.ChannelWarehouseMapping[chID]; ok {
			if wh, ok := s.Warehouse(wid); ok {
				a.Warehouse = &wh
				a.ProductCount = visibleProductCount(s, wid)
			}
		}
		out = append(out, a)
	}
	return out, true
}

func visibleProductCount(s *catalog.Snapshot, warehouseID string) int {
	n := 0
	for _, p := range s.ProductsInWarehouse(warehouseID) {
		if !p.PendingSync {
			n++
		}
	}
	return n
}

// RoutingUsage describes how one routing uses a warehouse.
type RoutingUsage struct {
	RoutingID      string   `json:"routing_id"`
	EventID        string   `json:"event_id"`
	ChannelIDs     []string `json:"channel_ids"`
	BoxOffice      bool     `json:"box_office"`
	PriceReference bool     `json:"price_reference"`
}

// WarehouseUsage summarises which routings, channels and terminals draw from a warehouse.
type WarehouseUsage struct {
	Warehouse       catalog.Warehouse        `json:"warehouse"`
	ProductCount    int                      `json:"product_count"`
	Routings        []RoutingUsage           `json:"routings"`
	BoxOfficeSetups []catalog.BoxOfficeSetup `json:"box_office_setups"`
}

// UsageOfWarehouse builds the usage summary of a warehouse. Only routings whose
// pool includes the warehouse are listed; BoxOffice is set when such a routing
// sells through the Box-Office. The bool is false when the warehouse does not exist.
func UsageOfWarehouse(s *catalog.Snapshot, warehouseID string) (*WarehouseUsage, bool) {
	wh, ok := s.Warehouse(warehouseID)
	if !ok {
		return nil, false
	}
	u := &WarehouseUsage{
		Warehouse:       wh,
		ProductCount:    visibleProductCount(s, warehouseID),
		Routings:        []RoutingUsage{},
		BoxOfficeSetups: []catalog.BoxOfficeSetup{},
	}
	for _, r := range s.SalesRoutings() {
		if !r.HasWarehouse(warehouseID) {
			continue
		}
		ru := RoutingUsage{
			RoutingID:      r.ID,
			EventID:        r.EventID,
			ChannelIDs:     []string{},
			BoxOffice:      r.HasChannel(s.BoxOfficeChannelID()),
			PriceReference: r.PriceReferenceWarehouseID == warehouseID,
		}
		// channel order follows the routing's selection, not map order
		for _, chID := range r.ChannelIDs {
			if r.ChannelWarehouseMapping[chID] == warehouseID {
				ru.ChannelIDs = append(ru.ChannelIDs, chID)
			}
		}
		u.Routings = append(u.Routings, ru)
	}
	for _, b := range s.BoxOfficeSetups() {
		if b.WarehouseID == warehouseID {
			u.BoxOfficeSetups = append(u.BoxOfficeSetups, b)
		}
	}
	return u, true
}
