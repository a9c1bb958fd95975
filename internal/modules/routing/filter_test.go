package routing

import (
	"reflect"
	"testing"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

func ids(ps []catalog.Product) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	s := catalog.Seed()

	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{
			name:     "search matches name case-insensitively",
			criteria: Criteria{SearchText: "  WINE "},
			expected: []string{"p-014"},
		},
		{
			name:     "search matches sku",
			criteria: Criteria{SearchText: "bev-"},
			expected: []string{"p-003", "p-008"},
		},
		{
			name:     "warehouse containment",
			criteria: Criteria{WarehouseID: "wh-003"},
			expected: []string{"p-001", "p-005", "p-006", "p-007"},
		},
		{
			name:     "unpublished",
			criteria: Criteria{PublishedState: StateUnpublished},
			expected: []string{"p-006", "p-007", "p-013", "p-014", "p-015"},
		},
		{
			name:     "event",
			criteria: Criteria{EventID: "evt-003"},
			expected: []string{"p-008", "p-009"},
		},
		{
			name:     "channel",
			criteria: Criteria{ChannelID: "ch-002"},
			expected: []string{"p-004", "p-005", "p-010", "p-011"},
		},
		{
			name:     "conjunction",
			criteria: Criteria{WarehouseID: "wh-001", ChannelID: "ch-002", PublishedState: StatePublished},
			expected: []string{"p-011"},
		},
		{
			name:     "event of a dangling routing matches nothing",
			criteria: Criteria{EventID: "evt-999"},
			expected: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterProducts(s, s.Products(), tc.criteria))
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("FilterProducts(%+v) expected %v, got %v", tc.criteria, tc.expected, got)
			}
		})
	}
}

func TestFilterProducts_PublishedComplementsUnpublished(t *testing.T) {
	s := catalog.Seed()
	all := s.Products()

	published := FilterProducts(s, all, Criteria{PublishedState: StatePublished})
	unpublished := FilterProducts(s, all, Criteria{PublishedState: StateUnpublished})

	if len(published)+len(unpublished) != len(all) {
		t.Fatalf("expected %d products split, got %d + %d", len(all), len(published), len(unpublished))
	}
	in := map[string]bool{}
	for _, p := range published {
		in[p.ID] = true
	}
	for _, p := range unpublished {
		if in[p.ID] {
			t.Fatalf("product %s is both published and unpublished", p.ID)
		}
	}
	if got := FilterProducts(s, all, Criteria{PublishedState: StateAll}); len(got) != len(all) {
		t.Fatalf("StateAll expected %d products, got %d", len(all), len(got))
	}
}
