package routing

import (
	"reflect"
	"testing"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

func violationCodes(vs []Violation) []ViolationCode {
	out := []ViolationCode{}
	for _, v := range vs {
		out = append(out, v.Code)
	}
	return out
}

func TestDiagnose_Seed(t *testing.T) {
	got := Diagnose(catalog.Seed())
	if len(got) != 1 || got[0].Code != ViolationDanglingEvent || got[0].Subject != "sr-003" {
		t.Fatalf("expected only the dangling event of sr-003, got %+v", got)
	}
}

func TestDiagnoseRouting(t *testing.T) {
	s := catalog.Seed()
	bo := catalog.DefaultBoxOfficeChannelID

	tests := []struct {
		name     string
		routing  catalog.SalesRouting
		expected []ViolationCode
	}{
		{
			name: "valid",
			routing: catalog.SalesRouting{
				ID: "sr-x", EventID: "evt-001", WarehouseIDs: []string{"wh-001"},
				ChannelIDs: []string{bo, "ch-001"}, ChannelWarehouseMapping: map[string]string{"ch-001": "wh-001"},
			},
			expected: []ViolationCode{},
		},
		{
			name: "online channel without warehouse",
			routing: catalog.SalesRouting{
				ID: "sr-x", EventID: "evt-001", WarehouseIDs: []string{"wh-001"},
				ChannelIDs: []string{"ch-001"}, ChannelWarehouseMapping: map[string]string{},
			},
			expected: []ViolationCode{ViolationUnmappedChannel},
		},
		{
			name: "mapping outside pool and unknown references",
			routing: catalog.SalesRouting{
				ID: "sr-x", EventID: "evt-404", WarehouseIDs: []string{"wh-001", "wh-404"},
				ChannelIDs: []string{"ch-001", "ch-404"}, ChannelWarehouseMapping: map[string]string{"ch-001": "wh-003", "ch-404": "wh-001"},
			},
			expected: []ViolationCode{ViolationDanglingEvent, ViolationDanglingWarehouse, ViolationMappingOutsidePool, ViolationDanglingChannel},
		},
		{
			name: "box office over several warehouses needs a price reference",
			routing: catalog.SalesRouting{
				ID: "sr-x", EventID: "evt-001", WarehouseIDs: []string{"wh-001", "wh-002"},
				ChannelIDs: []string{bo}, ChannelWarehouseMapping: map[string]string{bo: "wh-001"},
			},
			expected: []ViolationCode{ViolationMissingPriceReference},
		},
		{
			name: "price reference outside pool",
			routing: catalog.SalesRouting{
				ID: "sr-x", EventID: "evt-001", WarehouseIDs: []string{"wh-001"}, PriceReferenceWarehouseID: "wh-002",
				ChannelIDs: []string{bo}, ChannelWarehouseMapping: map[string]string{},
			},
			expected: []ViolationCode{ViolationPriceReferenceOutsidePool},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := violationCodes(DiagnoseRouting(s, tc.routing))
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDiagnose_SetupsAndDuplicates(t *testing.T) {
	d := catalog.SeedData()
	d.SalesRoutings = d.SalesRoutings[:2]
	d.BoxOfficeSetups = []catalog.BoxOfficeSetup{
		{ID: "bo-x", SalesRoutingID: "sr-404", WarehouseID: "wh-001"},
		{ID: "bo-y", SalesRoutingID: "sr-001", WarehouseID: "wh-004"},
	}
	d.ProductWarehouses = append(d.ProductWarehouses, d.ProductWarehouses[0])

	got := violationCodes(Diagnose(catalog.NewSnapshot(d)))
	expected := []ViolationCode{ViolationSetupDanglingRouting, ViolationSetupWarehouseOutsidePool, ViolationDuplicateLink}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
