package catalog

import (
	"context"
	"reflect"
	"testing"
)

func productIDs(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSnapshot_Lookups(t *testing.T) {
	s := Seed()

	if _, ok := s.Event("evt-001"); !ok {
		t.Fatalf("Event(evt-001) expected found")
	}
	if _, ok := s.Event("evt-999"); ok {
		t.Fatalf("Event(evt-999) expected not found")
	}
	if w, ok := s.Warehouse("wh-005"); !ok || w.Name != "Wine Cellar" {
		t.Fatalf("Warehouse(wh-005) expected Wine Cellar, got %+v (found=%v)", w, ok)
	}
	if p, ok := s.Product("p-014"); !ok || p.Name != "Wine Tasting Set" {
		t.Fatalf("Product(p-014) expected Wine Tasting Set, got %+v", p)
	}
	if _, ok := s.SalesRouting("sr-404"); ok {
		t.Fatalf("SalesRouting(sr-404) expected not found")
	}
	if b, ok := s.BoxOfficeSetup("bo-003"); !ok || b.SalesRoutingID != "sr-004" {
		t.Fatalf("BoxOfficeSetup(bo-003) expected routing sr-004, got %+v", b)
	}
	if in, ok := s.Integration(); !ok || in.Provider != ProviderSquare {
		t.Fatalf("Integration() expected square, got %+v", in)
	}
}

func TestSnapshot_IsBoxOfficeByIdentity(t *testing.T) {
	d := SeedData()
	d.Channels = append(d.Channels, Channel{ID: "ch-onsite-2", Name: "Second Gate", Type: ChannelOnsite})
	s := NewSnapshot(d)

	if !s.IsBoxOffice(DefaultBoxOfficeChannelID) {
		t.Fatalf("IsBoxOffice(%q) expected true", DefaultBoxOfficeChannelID)
	}
	if s.IsBoxOffice("ch-onsite-2") {
		t.Fatalf("IsBoxOffice(ch-onsite-2) expected false for onsite channel without reserved id")
	}
}

func TestSnapshot_WarehouseIDsForProduct(t *testing.T) {
	s := Seed()
	cases := []struct {
		product  string
		expected []string
	}{
		{"p-001", []string{"wh-001", "wh-003"}},
		{"p-014", []string{"wh-005"}},
		{"p-013", []string{}},
		{"p-unknown", []string{}},
	}
	for _, tc := range cases {
		got := s.WarehouseIDsForProduct(tc.product)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("WarehouseIDsForProduct(%q) expected %v, got %v", tc.product, tc.expected, got)
		}
	}
}

func TestSnapshot_ProductsInAnyWarehouse_DedupFirstOccurrence(t *testing.T) {
	s := Seed()

	got := productIDs(s.ProductsInAnyWarehouse([]string{"wh-003", "wh-001"}))
	expected := []string{"p-001", "p-002", "p-003", "p-005", "p-006", "p-007", "p-011", "p-012"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("ProductsInAnyWarehouse expected %v, got %v", expected, got)
	}

	got = productIDs(s.ProductsInWarehouse("wh-004"))
	if !reflect.DeepEqual(got, []string{"p-008", "p-009"}) {
		t.Fatalf("ProductsInWarehouse(wh-004) expected [p-008 p-009], got %v", got)
	}
	if got := s.ProductsInAnyWarehouse(nil); len(got) != 0 {
		t.Fatalf("ProductsInAnyWarehouse(nil) expected empty, got %v", productIDs(got))
	}
}

func TestSnapshot_Link(t *testing.T) {
	s := Seed()
	pw, ok := s.Link("p-001", "wh-003")
	if !ok {
		t.Fatalf("Link(p-001, wh-003) expected found")
	}
	if pw.Display() != "$27.50" {
		t.Fatalf("Link(p-001, wh-003).Display() expected $27.50, got %s", pw.Display())
	}
	if _, ok := s.Link("p-001", "wh-002"); ok {
		t.Fatalf("Link(p-001, wh-002) expected not found")
	}
}

func TestSnapshot_DataIsDetached(t *testing.T) {
	s := Seed()
	d := s.Data()
	d.SalesRoutings[0].ChannelWarehouseMapping["ch-001"] = "wh-999"
	d.SalesRoutings[0].WarehouseIDs[0] = "wh-999"
	d.Products[0].Name = "changed"

	r, _ := s.SalesRouting("sr-001")
	if r.ChannelWarehouseMapping["ch-001"] != "wh-002" || r.WarehouseIDs[0] != "wh-001" {
		t.Fatalf("mutating Data() leaked into snapshot routing: %+v", r)
	}
	if p, _ := s.Product("p-001"); p.Name != "Festival T-Shirt" {
		t.Fatalf("mutating Data() leaked into snapshot product: %+v", p)
	}
}

func TestSeedRepository_RekeysBoxOffice(t *testing.T) {
	s, err := NewSeedRepository().LoadSnapshot(context.Background(), "onsite-main")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if s.BoxOfficeChannelID() != "onsite-main" {
		t.Fatalf("BoxOfficeChannelID expected onsite-main, got %s", s.BoxOfficeChannelID())
	}
	r, _ := s.SalesRouting("sr-001")
	if !r.HasChannel("onsite-main") || r.ChannelWarehouseMapping["onsite-main"] != "wh-001" {
		t.Fatalf("sr-001 expected rekeyed Box-Office channel, got %+v", r)
	}
	if _, ok := s.Channel("onsite-main"); !ok {
		t.Fatalf("Channel(onsite-main) expected found")
	}
}
