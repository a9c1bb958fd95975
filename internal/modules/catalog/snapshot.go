package catalog

import (
	"maps"
	"slices"
)

// Data is the raw content of a catalog snapshot. Slices keep ingestion order,
// which is the natural order every accessor and the resolution engine preserve.
type Data struct {
	Integration        *CatalogIntegration
	Events             []Event
	Warehouses         []Warehouse
	Products           []Product
	ProductWarehouses  []ProductWarehouse
	Channels           []Channel
	SalesRoutings      []SalesRouting
	BoxOfficeSetups    []BoxOfficeSetup
	BoxOfficeChannelID string
}

// Snapshot is an immutable, indexed view of the catalog. Values handed out by
// its accessors must be treated as read-only; mutations go through Data() and
// NewSnapshot to produce a new snapshot.
type Snapshot struct {
	data Data

	events     map[string]int
	warehouses map[string]int
	products   map[string]int
	channels   map[string]int
	routings   map[string]int
	setups     map[string]int

	linksByProduct   map[string][]int
	linksByWarehouse map[string][]int
}

// NewSnapshot indexes d. The invariants of the data model are assumed, not enforced;
// on duplicate ids the first record wins.
func NewSnapshot(d Data) *Snapshot {
	if d.BoxOfficeChannelID == "" {
		d.BoxOfficeChannelID = DefaultBoxOfficeChannelID
	}
	s := &Snapshot{
		data:             d,
		events:           make(map[string]int, len(d.Events)),
		warehouses:       make(map[string]int, len(d.Warehouses)),
		products:         make(map[string]int, len(d.Products)),
		channels:         make(map[string]int, len(d.Channels)),
		routings:         make(map[string]int, len(d.SalesRoutings)),
		setups:           make(map[string]int, len(d.BoxOfficeSetups)),
		linksByProduct:   make(map[string][]int),
		linksByWarehouse: make(map[string][]int),
	}
	for i, e := range d.Events {
		index(s.events, e.ID, i)
	}
	for i, w := range d.Warehouses {
		index(s.warehouses, w.ID, i)
	}
	for i, p := range d.Products {
		index(s.products, p.ID, i)
	}
	for i, c := range d.Channels {
		index(s.channels, c.ID, i)
	}
	for i, r := range d.SalesRoutings {
		index(s.routings, r.ID, i)
	}
	for i, b := range d.BoxOfficeSetups {
		index(s.setups, b.ID, i)
	}
	for i, pw := range d.ProductWarehouses {
		s.linksByProduct[pw.ProductID] = append(s.linksByProduct[pw.ProductID], i)
		s.linksByWarehouse[pw.WarehouseID] = append(s.linksByWarehouse[pw.WarehouseID], i)
	}
	return s
}

func index(m map[string]int, id string, i int) {
	if _, ok := m[id]; !ok {
		m[id] = i
	}
}

// Data returns a copy of the snapshot content that callers may modify freely.
func (s *Snapshot) Data() Data {
	d := Data{
		Events:             slices.Clone(s.data.Events),
		Warehouses:         slices.Clone(s.data.Warehouses),
		Products:           slices.Clone(s.data.Products),
		ProductWarehouses:  slices.Clone(s.data.ProductWarehouses),
		Channels:           slices.Clone(s.data.Channels),
		SalesRoutings:      make([]SalesRouting, len(s.data.SalesRoutings)),
		BoxOfficeSetups:    slices.Clone(s.data.BoxOfficeSetups),
		BoxOfficeChannelID: s.data.BoxOfficeChannelID,
	}
	if s.data.Integration != nil {
		in := *s.data.Integration
		d.Integration = &in
	}
	for i, r := range s.data.SalesRoutings {
		r.WarehouseIDs = slices.Clone(r.WarehouseIDs)
		r.ChannelIDs = slices.Clone(r.ChannelIDs)
		r.ChannelWarehouseMapping = maps.Clone(r.ChannelWarehouseMapping)
		d.SalesRoutings[i] = r
	}
	return d
}

// ── Box-Office identity ───────────────────────────────────────────────────────

// BoxOfficeChannelID returns the reserved id of the Box-Office channel.
func (s *Snapshot) BoxOfficeChannelID() string { return s.data.BoxOfficeChannelID }

// IsBoxOffice reports whether channelID is the Box-Office channel. The check is by
// identity only; a channel's Type is never consulted.
func (s *Snapshot) IsBoxOffice(channelID string) bool {
	return channelID == s.data.BoxOfficeChannelID
}

// ── Lookups ───────────────────────────────────────────────────────────────────

func (s *Snapshot) Integration() (CatalogIntegration, bool) {
	if s.data.Integration == nil {
		return CatalogIntegration{}, false
	}
	return *s.data.Integration, true
}

func (s *Snapshot) Event(id string) (Event, bool) {
	i, ok := s.events[id]
	if !ok {
		return Event{}, false
	}
	return s.data.Events[i], true
}

func (s *Snapshot) Warehouse(id string) (Warehouse, bool) {
	i, ok := s.warehouses[id]
	if !ok {
		return Warehouse{}, false
	}
	return s.data.Warehouses[i], true
}

func (s *Snapshot) Product(id string) (Product, bool) {
	i, ok := s.products[id]
	if !ok {
		return Product{}, false
	}
	return s.data.Products[i], true
}

func (s *Snapshot) Channel(id string) (Channel, bool) {
	i, ok := s.channels[id]
	if !ok {
		return Channel{}, false
	}
	return s.data.Channels[i], true
}

func (s *Snapshot) SalesRouting(id string) (SalesRouting, bool) {
	i, ok := s.routings[id]
	if !ok {
		return SalesRouting{}, false
	}
	return s.data.SalesRoutings[i], true
}

func (s *Snapshot) BoxOfficeSetup(id string) (BoxOfficeSetup, bool) {
	i, ok := s.setups[id]
	if !ok {
		return BoxOfficeSetup{}, false
	}
	return s.data.BoxOfficeSetups[i], true
}

// ── Collections ───────────────────────────────────────────────────────────────

func (s *Snapshot) Events() []Event                       { return s.data.Events }
func (s *Snapshot) Warehouses() []Warehouse               { return s.data.Warehouses }
func (s *Snapshot) Products() []Product                   { return s.data.Products }
func (s *Snapshot) Channels() []Channel                   { return s.data.Channels }
func (s *Snapshot) SalesRoutings() []SalesRouting         { return s.data.SalesRoutings }
func (s *Snapshot) BoxOfficeSetups() []BoxOfficeSetup     { return s.data.BoxOfficeSetups }
func (s *Snapshot) ProductWarehouses() []ProductWarehouse { return s.data.ProductWarehouses }

// ── Product / warehouse join ──────────────────────────────────────────────────

// LinksForProduct returns the price/stock records of a product in link order.
func (s *Snapshot) LinksForProduct(productID string) []ProductWarehouse {
	return s.collect(s.linksByProduct[productID])
}

// LinksForWarehouse returns the price/stock records held by a warehouse in link order.
func (s *Snapshot) LinksForWarehouse(warehouseID string) []ProductWarehouse {
	return s.collect(s.linksByWarehouse[warehouseID])
}

func (s *Snapshot) collect(idx []int) []ProductWarehouse {
	out := make([]ProductWarehouse, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.data.ProductWarehouses[i])
	}
	return out
}

// Link returns the price/stock record of a product in a warehouse.
func (s *Snapshot) Link(productID, warehouseID string) (ProductWarehouse, bool) {
	for _, i := range s.linksByProduct[productID] {
		if pw := s.data.ProductWarehouses[i]; pw.WarehouseID == warehouseID {
			return pw, true
		}
	}
	return ProductWarehouse{}, false
}

// WarehouseIDsForProduct returns the distinct warehouses stocking a product, in link order.
func (s *Snapshot) WarehouseIDsForProduct(productID string) []string {
	idx := s.linksByProduct[productID]
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if id := s.data.ProductWarehouses[i].WarehouseID; !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// ProductsInWarehouse returns the products linked to a warehouse. Links to
// unknown products are skipped.
func (s *Snapshot) ProductsInWarehouse(warehouseID string) []Product {
	return s.ProductsInAnyWarehouse([]string{warehouseID})
}

// ProductsInAnyWarehouse returns the products linked to any of the given
// warehouses, deduplicated by product id and ordered by first occurrence in the
// link table.
func (s *Snapshot) ProductsInAnyWarehouse(warehouseIDs []string) []Product {
	seen := make(map[string]bool)
	var out []Product
	for _, pw := range s.data.ProductWarehouses {
		if seen[pw.ProductID] || !slices.Contains(warehouseIDs, pw.WarehouseID) {
			continue
		}
		p, ok := s.Product(pw.ProductID)
		if !ok {
			continue
		}
		seen[pw.ProductID] = true
		out = append(out, p)
	}
	return out
}
