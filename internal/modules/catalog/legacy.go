package catalog

import (
	"maps"
	"slices"
	"time"
)

// LegacyRoutingType is the explicit routing type carried by routings created
// before channel-to-warehouse mappings existed.
type LegacyRoutingType string

const (
	LegacyBoxOffice LegacyRoutingType = "box-office"
	LegacyOnline    LegacyRoutingType = "online"
	LegacyHybrid    LegacyRoutingType = "hybrid"
)

// RoutingKind is the shape a routing arrives in at ingestion: LegacyKind or CurrentKind.
type RoutingKind interface{ isRoutingKind() }

// LegacyKind selects products explicitly and maps each product to channels.
type LegacyKind struct {
	Type                  LegacyRoutingType   `json:"type"`
	SelectedProductIDs    []string            `json:"selected_product_ids"`
	ProductChannelMapping map[string][]string `json:"product_channel_mapping"`
}

// CurrentKind assigns exactly one warehouse to every selected channel.
type CurrentKind struct {
	ChannelWarehouseMapping map[string]string `json:"channel_warehouse_mapping"`
}

func (LegacyKind) isRoutingKind()  {}
func (CurrentKind) isRoutingKind() {}

// RoutingRecord is a sales routing as ingested, before normalisation.
type RoutingRecord struct {
	ID                        string
	EventID                   string
	WarehouseIDs              []string
	PriceReferenceWarehouseID string
	ChannelIDs                []string
	Status                    RoutingStatus
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	Kind                      RoutingKind
}

// NormalizeRouting translates a routing record into the current shape. Legacy
// records get a channel-to-warehouse mapping derived from their product
// selection; links is the product/warehouse table the selection is resolved against.
func NormalizeRouting(rec RoutingRecord, links []ProductWarehouse, boxOfficeID string) SalesRouting {
	r := SalesRouting{
		ID:                        rec.ID,
		EventID:                   rec.EventID,
		WarehouseIDs:              slices.Clone(rec.WarehouseIDs),
		PriceReferenceWarehouseID: rec.PriceReferenceWarehouseID,
		ChannelIDs:                slices.Clone(rec.ChannelIDs),
		Status:                    rec.Status,
		CreatedAt:                 rec.CreatedAt,
		UpdatedAt:                 rec.UpdatedAt,
		ChannelWarehouseMapping:   map[string]string{},
	}
	switch k := rec.Kind.(type) {
	case CurrentKind:
		if k.ChannelWarehouseMapping != nil {
			r.ChannelWarehouseMapping = maps.Clone(k.ChannelWarehouseMapping)
		}
	case LegacyKind:
		translateLegacy(&r, k, links, boxOfficeID)
	}
	return r
}

// NormalizeRoutings normalises every record, preserving order.
func NormalizeRoutings(recs []RoutingRecord, links []ProductWarehouse, boxOfficeID string) []SalesRouting {
	out := make([]SalesRouting, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeRouting(rec, links, boxOfficeID))
	}
	return out
}

func translateLegacy(r *SalesRouting, k LegacyKind, links []ProductWarehouse, boxOfficeID string) {
	if k.Type == LegacyBoxOffice || k.Type == LegacyHybrid {
		if !slices.Contains(r.ChannelIDs, boxOfficeID) {
			r.ChannelIDs = append(r.ChannelIDs, boxOfficeID)
		}
	}
	// products carried per channel
	carried := map[string][]string{}
	for _, pid := range k.SelectedProductIDs {
		for _, ch := range k.ProductChannelMapping[pid] {
			if !slices.Contains(r.ChannelIDs, ch) {
				r.ChannelIDs = append(r.ChannelIDs, ch)
			}
			carried[ch] = append(carried[ch], pid)
		}
	}
	if len(r.WarehouseIDs) == 0 {
		return
	}
	for _, ch := range r.ChannelIDs {
		products := carried[ch]
		if ch == boxOfficeID {
			products = k.SelectedProductIDs
		}
		r.ChannelWarehouseMapping[ch] = firstStockingWarehouse(r.WarehouseIDs, products, links)
	}
}

// firstStockingWarehouse returns the first pool warehouse that stocks any of the
// products, falling back to the first pool warehouse.
func firstStockingWarehouse(pool, productIDs []string, links []ProductWarehouse) string {
	for _, wid := range pool {
		for _, pw := range links {
			if pw.WarehouseID == wid && slices.Contains(productIDs, pw.ProductID) {
				return wid
			}
		}
	}
	return pool[0]
}
