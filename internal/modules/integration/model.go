package integration

import "github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"

// ConnectRequest connects the tenant's catalog to an external provider.
type ConnectRequest struct {
	Name              string `json:"name" validate:"required"`
	Provider          string `json:"provider" validate:"required,oneof=square shopify"`
	ExternalAccountID string `json:"external_account_id" validate:"required"`
}

// RenameRequest changes the display name of the connected integration.
type RenameRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateWarehouseRequest registers a provider location as a warehouse.
type CreateWarehouseRequest struct {
	Name               string `json:"name" validate:"required"`
	ExternalLocationID string `json:"external_location_id" validate:"required"`
	MasterCatalogID    string `json:"master_catalog_id,omitempty"`
}

// RoutingRequest creates or replaces a sales routing. When Type is set the
// payload is in the legacy shape (explicit product selection) and is translated
// to a channel-to-warehouse mapping before it is stored.
type RoutingRequest struct {
	EventID                   string                `json:"event_id" validate:"required"`
	WarehouseIDs              []string              `json:"warehouse_ids" validate:"min=1,dive,required"`
	PriceReferenceWarehouseID string                `json:"price_reference_warehouse_id,omitempty"`
	ChannelIDs                []string              `json:"channel_ids" validate:"dive,required"`
	ChannelWarehouseMapping   map[string]string     `json:"channel_warehouse_mapping,omitempty"`
	Status                    catalog.RoutingStatus `json:"status,omitempty" validate:"omitempty,oneof=draft active inactive"`

	// legacy shape
	Type                  catalog.LegacyRoutingType `json:"type,omitempty" validate:"omitempty,oneof=box-office online hybrid"`
	SelectedProductIDs    []string                  `json:"selected_product_ids,omitempty" validate:"dive,required"`
	ProductChannelMapping map[string][]string       `json:"product_channel_mapping,omitempty"`
}

func (req RoutingRequest) kind() catalog.RoutingKind {
	if req.Type != "" {
		return catalog.LegacyKind{
			Type:                  req.Type,
			SelectedProductIDs:    req.SelectedProductIDs,
			ProductChannelMapping: req.ProductChannelMapping,
		}
	}
	return catalog.CurrentKind{ChannelWarehouseMapping: req.ChannelWarehouseMapping}
}
