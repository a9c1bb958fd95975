package routing

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

// Listing is one sellable {event, channel, warehouse, price} tuple of a product.
type Listing struct {
	SessionTypeID string            `json:"session_type_id"`
	RoutingID     string            `json:"routing_id"`
	Event         catalog.Event     `json:"event"`
	Channel       catalog.Channel   `json:"channel"`
	Warehouse     catalog.Warehouse `json:"warehouse"`
	Price         decimal.Decimal   `json:"price"`
	Currency      string            `json:"currency"`
	DisplayPrice  string            `json:"display_price"`
	Stock         int               `json:"stock"`
	BoxOffice     bool              `json:"box_office"`
}

// ResolveListings fans every publication of a product out per selected channel.
// Online channels list the product only from their assigned warehouse; the
// Box-Office lists it from its stock source warehouse (see boxOfficeSource).
// Channels or warehouses missing from the snapshot contribute nothing.
func ResolveListings(s *catalog.Snapshot, productID string) []Listing {
	warehouses := visibleWarehouses(s, productID)
	if len(warehouses) == 0 {
		return nil
	}
	var out []Listing
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
		sessionID := SessionTypeID(r.ID, productID)
		for _, chID := range r.ChannelIDs {
			boxOffice := s.IsBoxOffice(chID)
			var wid string
			switch {
			case boxOffice:
				wid = boxOfficeSource(r, chID, warehouses)
			case !boxOffice:
				if mapped, ok := r.ChannelWarehouseMapping[chID]; ok && slices.Contains(warehouses, mapped) {
					wid = mapped
				}
			}
			if wid == "" {
				continue
			}
			ch, ok := s.Channel(chID)
			if !ok {
				continue
			}
			wh, ok := s.Warehouse(wid)
			if !ok {
				continue
			}
			pw, ok := s.Link(productID, wid)
			if !ok {
				continue
			}
			out = append(out, Listing{
				SessionTypeID: sessionID,
				RoutingID:     r.ID,
				Event:         event,
				Channel:       ch,
				Warehouse:     wh,
				Price:         pw.Price,
				Currency:      pw.Currency,
				DisplayPrice:  pw.Display(),
				Stock:         pw.Stock,
				BoxOffice:     boxOffice,
			})
		}
	}
	return out
}

// boxOfficeSource picks the warehouse whose price and stock the Box-Office uses:
// the price reference warehouse, then the Box-Office assignment, then the first
// pool warehouse stocking the product.
func boxOfficeSource(r *catalog.SalesRouting, boxOfficeID string, productWarehouses []string) string {
	if ref := r.PriceReferenceWarehouseID; ref != "" && r.HasWarehouse(ref) && slices.Contains(productWarehouses, ref) {
		return ref
	}
	if mapped, ok := r.ChannelWarehouseMapping[boxOfficeID]; ok && slices.Contains(productWarehouses, mapped) {
		return mapped
	}
	return firstPoolWarehouse(r, productWarehouses)
}

func firstPoolWarehouse(r *catalog.SalesRouting, productWarehouses []string) string {
	for _, wid := range r.WarehouseIDs {
		if slices.Contains(productWarehouses, wid) {
			return wid
		}
	}
	return ""
}
