package routing

import (
	"strings"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

// PublishedState selects products by publication status.
type PublishedState string

const (
	StateAll         PublishedState = "all"
	StatePublished   PublishedState = "published"
	StateUnpublished PublishedState = "unpublished"
)

// Criteria are the product list filters. Empty fields do not filter.
type Criteria struct {
	SearchText     string         `json:"search_text,omitempty"`
	WarehouseID    string         `json:"warehouse_id,omitempty"`
	PublishedState PublishedState `json:"published_state,omitempty"`
	EventID        string         `json:"event_id,omitempty"`
	ChannelID      string         `json:"channel_id,omitempty"`
}

// FilterProducts keeps the products matching every criterion, preserving input order.
// Filters run cheapest first: text, warehouse, publication state, event, channel.
// Publications are resolved at most once per product within a call.
func FilterProducts(s *catalog.Snapshot, products []catalog.Product, c Criteria) []catalog.Product {
	search := strings.ToLower(strings.TrimSpace(c.SearchText))
	memo := make(map[string][]Publication)
	publications := func(id string) []Publication {
		pubs, ok := memo[id]
		if !ok {
			pubs = ResolvePublications(s, id)
			memo[id] = pubs
		}
		return pubs
	}

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if c.WarehouseID != "" {
			if _, ok := s.Link(p.ID, c.WarehouseID); !ok {
				continue
			}
		}
		switch c.PublishedState {
		case StatePublished:
			if len(publications(p.ID)) == 0 {
				continue
			}
		case StateUnpublished:
			if len(publications(p.ID)) > 0 {
				continue
			}
		}
		if c.EventID != "" && !anyPublication(publications(p.ID), func(pub Publication) bool {
			return pub.Event.ID == c.EventID
		}) {
			continue
		}
		if c.ChannelID != "" && !anyPublication(publications(p.ID), func(pub Publication) bool {
			return pub.SalesRouting.HasChannel(c.ChannelID)
		}) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func anyPublication(pubs []Publication, match func(Publication) bool) bool {
	for _, pub := range pubs {
		if match(pub) {
			return true
		}
	}
	return false
}
