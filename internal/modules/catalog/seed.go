package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedData returns the demo catalog served when no database is configured.
func SeedData() Data {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 19, 0, 0, 0, time.UTC) }

	link := func(pid, wid, price string, stock int) ProductWarehouse {
		return ProductWarehouse{
			ProductID:   pid,
			WarehouseID: wid,
			Price:       decimal.RequireFromString(price),
			Currency:    "USD",
			Stock:       stock,
		}
	}

	return Data{
		BoxOfficeChannelID: DefaultBoxOfficeChannelID,
		Integration: &CatalogIntegration{
			ID:                "int-001",
			Name:              "Main Square Account",
			Provider:          ProviderSquare,
			ExternalAccountID: "sq-acct-88231",
			CreatedAt:         created,
		},
		Events: []Event{
			{ID: "evt-001", Name: "Summer Music Festival", Date: day(time.July, 12), Venue: "Riverside Park", City: "Austin", Status: EventActive},
			{ID: "evt-002", Name: "Jazz Night", Date: day(time.August, 2), Venue: "Blue Room", City: "Chicago", Status: EventActive},
			{ID: "evt-003", Name: "Food & Wine Expo", Date: day(time.September, 20), Venue: "Convention Center", City: "Napa", Status: EventDraft},
			{ID: "evt-004", Name: "Winter Gala", Date: day(time.January, 18), Venue: "Grand Hotel", City: "Denver", Status: EventEnded},
		},
		Warehouses: []Warehouse{
			{ID: "wh-001", Name: "Main Venue Bar", Integration: "Square", ExternalLocationID: "LOC-1001", ProductCount: 5, MasterCatalogID: "cat-main"},
			{ID: "wh-002", Name: "Online Store Stock", Integration: "Square", ExternalLocationID: "LOC-1002", ProductCount: 5, MasterCatalogID: "cat-main"},
			{ID: "wh-003", Name: "Merch Stand", Integration: "Square", ExternalLocationID: "LOC-1003", ProductCount: 4, MasterCatalogID: "cat-main"},
			{ID: "wh-004", Name: "VIP Lounge", Integration: "Square", ExternalLocationID: "LOC-1004", ProductCount: 2, MasterCatalogID: "cat-main"},
			{ID: "wh-005", Name: "Wine Cellar", Integration: "Square", ExternalLocationID: "LOC-1005", ProductCount: 1, MasterCatalogID: "cat-main"},
		},
		Products: []Product{
			{ID: "p-001", Name: "Festival T-Shirt", SKU: "TSH-FEST-001", ImageURL: "https://cdn.example.com/p-001.png"},
			{ID: "p-002", Name: "Souvenir Mug", SKU: "MUG-SOUV-002"},
			{ID: "p-003", Name: "Craft Beer", SKU: "BEV-BEER-003"},
			{ID: "p-004", Name: "Tour Poster", SKU: "PST-TOUR-004"},
			{ID: "p-005", Name: "Snapback Cap", SKU: "CAP-SNAP-005"},
			{ID: "p-006", Name: "Canvas Tote Bag", SKU: "BAG-TOTE-006"},
			{ID: "p-007", Name: "Enamel Pin", SKU: "PIN-ENAM-007"},
			{ID: "p-008", Name: "Champagne Flute", SKU: "BEV-CHMP-008"},
			{ID: "p-009", Name: "VIP Lanyard", SKU: "ACC-LNYD-009"},
			{ID: "p-010", Name: "Vinyl Record", SKU: "MUS-VINY-010"},
			{ID: "p-011", Name: "Zip Hoodie", SKU: "HOD-ZIP-011"},
			{ID: "p-012", Name: "Sticker Pack", SKU: "STK-PACK-012"},
			{ID: "p-013", Name: "Gift Card", SKU: "GFT-CARD-013"},
			{ID: "p-014", Name: "Wine Tasting Set", SKU: "WIN-TAST-014"},
			{ID: "p-015", Name: "Limited Edition Print", SKU: "PRT-LTD-015", PendingSync: true},
		},
		ProductWarehouses: []ProductWarehouse{
			link("p-001", "wh-001", "25.00", 120),
			link("p-001", "wh-003", "27.50", 40),
			link("p-002", "wh-001", "12.00", 80),
			link("p-003", "wh-001", "8.50", 300),
			link("p-004", "wh-002", "15.00", 60),
			link("p-005", "wh-002", "22.00", 45),
			link("p-005", "wh-003", "22.00", 20),
			link("p-006", "wh-003", "18.00", 35),
			link("p-007", "wh-003", "6.00", 150),
			link("p-008", "wh-004", "14.00", 90),
			link("p-009", "wh-004", "5.00", 200),
			link("p-010", "wh-002", "30.00", 25),
			link("p-011", "wh-001", "55.00", 30),
			link("p-011", "wh-002", "55.00", 50),
			link("p-012", "wh-001", "4.00", 500),
			link("p-014", "wh-005", "65.00", 12),
			link("p-015", "wh-002", "80.00", 10),
		},
		Channels: []Channel{
			{ID: DefaultBoxOfficeChannelID, Name: "Box Office", Type: ChannelOnsite},
			{ID: "ch-001", Name: "Ticketmaster", Type: ChannelMarketplace},
			{ID: "ch-002", Name: "Branded Web Shop", Type: ChannelWhitelabel},
			{ID: "ch-003", Name: "Lobby Kiosk", Type: ChannelKiosk},
			{ID: "ch-004", Name: "GetYourGuide", Type: ChannelOTA},
		},
		SalesRoutings: []SalesRouting{
			{
				ID:                        "sr-001",
				EventID:                   "evt-001",
				WarehouseIDs:              []string{"wh-001", "wh-002"},
				PriceReferenceWarehouseID: "wh-001",
				ChannelIDs:                []string{DefaultBoxOfficeChannelID, "ch-001"},
				ChannelWarehouseMapping:   map[string]string{DefaultBoxOfficeChannelID: "wh-001", "ch-001": "wh-002"},
				Status:                    RoutingActive,
				CreatedAt:                 created,
				UpdatedAt:                 created,
			},
			{
				ID:                      "sr-002",
				EventID:                 "evt-002",
				WarehouseIDs:            []string{"wh-002", "wh-003"},
				ChannelIDs:              []string{"ch-002", "ch-003"},
				ChannelWarehouseMapping: map[string]string{"ch-002": "wh-002", "ch-003": "wh-002"},
				Status:                  RoutingActive,
				CreatedAt:               created,
				UpdatedAt:               created,
			},
			{
				// references an event that was never ingested
				ID:                      "sr-003",
				EventID:                 "evt-999",
				WarehouseIDs:            []string{"wh-003"},
				ChannelIDs:              []string{"ch-004"},
				ChannelWarehouseMapping: map[string]string{"ch-004": "wh-003"},
				Status:                  RoutingDraft,
				CreatedAt:               created,
				UpdatedAt:               created,
			},
			{
				ID:                      "sr-004",
				EventID:                 "evt-003",
				WarehouseIDs:            []string{"wh-004"},
				ChannelIDs:              []string{DefaultBoxOfficeChannelID},
				ChannelWarehouseMapping: map[string]string{DefaultBoxOfficeChannelID: "wh-004"},
				Status:                  RoutingDraft,
				CreatedAt:               created,
				UpdatedAt:               created,
			},
		},
		BoxOfficeSetups: []BoxOfficeSetup{
			{ID: "bo-001", Name: "Main Gate POS", SalesRoutingID: "sr-001", WarehouseID: "wh-001"},
			{ID: "bo-002", Name: "Bar POS", SalesRoutingID: "sr-001", WarehouseID: "wh-002"},
			{ID: "bo-003", Name: "VIP Lounge POS", SalesRoutingID: "sr-004", WarehouseID: "wh-004"},
		},
	}
}

// Seed returns the demo catalog as a snapshot.
func Seed() *Snapshot { return NewSnapshot(SeedData()) }
