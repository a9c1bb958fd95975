package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBoxOfficeChannelID is the reserved id of the onsite Box-Office channel.
const DefaultBoxOfficeChannelID = "box-office"

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventActive EventStatus = "active"
	EventDraft  EventStatus = "draft"
	EventEnded  EventStatus = "ended"
)

// Provider identifies the external POS / e-commerce platform a catalog is imported from.
type Provider string

const (
	ProviderSquare  Provider = "square"
	ProviderShopify Provider = "shopify"
)

// DisplayName returns the provider name as shown on warehouses.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderSquare:
		return "Square"
	case ProviderShopify:
		return "Shopify"
	}
	return string(p)
}

// ChannelType categorises a sales channel.
type ChannelType string

const (
	ChannelOnsite      ChannelType = "onsite"
	ChannelMarketplace ChannelType = "marketplace"
	ChannelWhitelabel  ChannelType = "whitelabel"
	ChannelKiosk       ChannelType = "kiosk"
	ChannelOTA         ChannelType = "ota"
)

// RoutingStatus tracks whether a sales routing is live.
type RoutingStatus string

const (
	RoutingDraft    RoutingStatus = "draft"
	RoutingActive   RoutingStatus = "active"
	RoutingInactive RoutingStatus = "inactive"
)

// Event is an ingested event. Never mutated by this service.
type Event struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Date   time.Time   `json:"date"`
	Venue  string      `json:"venue"`
	City   string      `json:"city"`
	Status EventStatus `json:"status"`
}

// CatalogIntegration is the tenant's single connection to an external catalog provider.
type CatalogIntegration struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Provider          Provider  `json:"provider"`
	ExternalAccountID string    `json:"external_account_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// Warehouse is a stock-keeping location tied 1:1 to an external provider location.
type Warehouse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Integration        string `json:"integration"` // provider display name
	ExternalLocationID string `json:"external_location_id"`
	ProductCount       int    `json:"product_count"`
	MasterCatalogID    string `json:"master_catalog_id,omitempty"`
}

// Product is a catalog-scoped item. PendingSync products are invisible to resolution.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SKU         string     `json:"sku"`
	ImageURL    string     `json:"image_url,omitempty"`
	PendingSync bool       `json:"pending_sync,omitempty"`
	SyncedAt    *time.Time `json:"synced_at,omitempty"`
}

// ProductWarehouse is the price/stock record of one product in one warehouse.
// A (ProductID, WarehouseID) pair is unique.
type ProductWarehouse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
}

// Channel is a sales surface. Exactly one channel, identified by the reserved
// Box-Office id, is the onsite channel.
type Channel struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type ChannelType `json:"type"`
}

// SalesRouting binds one event to a candidate pool of warehouses and a set of channels.
// WarehouseIDs is the pool; ChannelWarehouseMapping is the actual channel assignment.
type SalesRouting struct {
	ID                        string            `json:"id"`
	EventID                   string            `json:"event_id"`
	WarehouseIDs              []string          `json:"warehouse_ids"`
	PriceReferenceWarehouseID string            `json:"price_reference_warehouse_id,omitempty"`
	ChannelIDs                []string          `json:"channel_ids"`
	ChannelWarehouseMapping   map[string]string `json:"channel_warehouse_mapping"`
	Status                    RoutingStatus     `json:"status"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
}

// HasWarehouse reports whether id is in the routing's candidate pool.
func (r *SalesRouting) HasWarehouse(id string) bool {
	for _, w := range r.WarehouseIDs {
		if w == id {
			return true
		}
	}
	return false
}

// HasChannel reports whether the routing selects the channel.
func (r *SalesRouting) HasChannel(id string) bool {
	for _, c := range r.ChannelIDs {
		if c == id {
			return true
		}
	}
	return false
}

// BoxOfficeSetup is a physical terminal bound to one routing and one warehouse.
type BoxOfficeSetup struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SalesRoutingID string `json:"sales_routing_id"`
	WarehouseID    string `json:"warehouse_id"`
}
