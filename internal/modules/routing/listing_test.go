package routing

import (
	"reflect"
	"testing"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

type listingKey struct {
	routing, channel, warehouse, price string
}

func listingKeys(ls []Listing) []listingKey {
	out := []listingKey{}
	for _, l := range ls {
		out = append(out, listingKey{l.RoutingID, l.Channel.ID, l.Warehouse.ID, l.DisplayPrice})
	}
	return out
}

func TestResolveListings(t *testing.T) {
	s := catalog.Seed()
	bo := catalog.DefaultBoxOfficeChannelID

	tests := []struct {
		name     string
		product  string
		expected []listingKey
	}{
		{
			name:     "box office uses price reference warehouse",
			product:  "p-001",
			expected: []listingKey{{"sr-001", bo, "wh-001", "$25.00"}},
		},
		{
			name:    "box office falls back to first stocking pool warehouse",
			product: "p-004",
			expected: []listingKey{
				{"sr-001", bo, "wh-002", "$15.00"},
				{"sr-001", "ch-001", "wh-002", "$15.00"},
				{"sr-002", "ch-002", "wh-002", "$15.00"},
				{"sr-002", "ch-003", "wh-002", "$15.00"},
			},
		},
		{
			name:    "each channel sells from its own warehouse",
			product: "p-011",
			expected: []listingKey{
				{"sr-001", bo, "wh-001", "$55.00"},
				{"sr-001", "ch-001", "wh-002", "$55.00"},
				{"sr-002", "ch-002", "wh-002", "$55.00"},
				{"sr-002", "ch-003", "wh-002", "$55.00"},
			},
		},
		{name: "unpublished product", product: "p-014", expected: []listingKey{}},
		{name: "pending product", product: "p-015", expected: []listingKey{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := listingKeys(ResolveListings(s, tc.product))
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("ResolveListings(%q) expected %v, got %v", tc.product, tc.expected, got)
			}
		})
	}
}

func TestResolveListings_CarriesSessionAndStock(t *testing.T) {
	s := catalog.Seed()
	ls := ResolveListings(s, "p-008")
	if len(ls) != 1 {
		t.Fatalf("expected one listing for p-008, got %d", len(ls))
	}
	l := ls[0]
	if l.SessionTypeID != SessionTypeID("sr-004", "p-008") {
		t.Fatalf("expected session id of sr-004/p-008, got %s", l.SessionTypeID)
	}
	if !l.BoxOffice || l.Stock != 90 || l.Event.ID != "evt-003" {
		t.Fatalf("unexpected listing %+v", l)
	}
}

func TestResolveListings_BoxOfficeMappingBeforePool(t *testing.T) {
	d := catalog.SeedData()
	d.SalesRoutings = []catalog.SalesRouting{{
		ID:                      "sr-bo",
		EventID:                 "evt-001",
		WarehouseIDs:            []string{"wh-001", "wh-003"},
		ChannelIDs:              []string{catalog.DefaultBoxOfficeChannelID},
		ChannelWarehouseMapping: map[string]string{catalog.DefaultBoxOfficeChannelID: "wh-003"},
	}}
	got := listingKeys(ResolveListings(catalog.NewSnapshot(d), "p-001"))
	expected := []listingKey{{"sr-bo", catalog.DefaultBoxOfficeChannelID, "wh-003", "$27.50"}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
