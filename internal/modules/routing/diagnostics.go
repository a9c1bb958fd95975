package routing

import (
	"fmt"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

// ViolationCode names a broken data-model invariant.
type ViolationCode string

const (
	ViolationDanglingEvent             ViolationCode = "dangling-event"
	ViolationDanglingWarehouse         ViolationCode = "dangling-warehouse"
	ViolationDanglingChannel           ViolationCode = "dangling-channel"
	ViolationUnmappedChannel           ViolationCode = "unmapped-channel"
	ViolationMappingOutsidePool        ViolationCode = "mapping-outside-pool"
	ViolationMissingPriceReference     ViolationCode = "missing-price-reference"
	ViolationPriceReferenceOutsidePool ViolationCode = "price-reference-outside-pool"
	ViolationSetupDanglingRouting      ViolationCode = "setup-dangling-routing"
	ViolationSetupWarehouseOutsidePool ViolationCode = "setup-warehouse-outside-pool"
	ViolationDuplicateLink             ViolationCode = "duplicate-product-warehouse"
)

// Violation is one invariant problem found in a snapshot. Resolution tolerates
// all of them; they are reported here and never through resolution results.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Subject string        `json:"subject"`
	Message string        `json:"message"`
}

// Diagnose checks every routing, Box-Office setup and product/warehouse link.
func Diagnose(s *catalog.Snapshot) []Violation {
	var out []Violation
	for _, r := range s.SalesRoutings() {
		out = append(out, DiagnoseRouting(s, r)...)
	}
	for _, b := range s.BoxOfficeSetups() {
		r, ok := s.SalesRouting(b.SalesRoutingID)
		if !ok {
			out = append(out, Violation{ViolationSetupDanglingRouting, b.ID,
				fmt.Sprintf("box office setup %s references unknown routing %s", b.ID, b.SalesRoutingID)})
			continue
		}
		if !r.HasWarehouse(b.WarehouseID) {
			out = append(out, Violation{ViolationSetupWarehouseOutsidePool, b.ID,
				fmt.Sprintf("box office setup %s uses warehouse %s outside routing %s", b.ID, b.WarehouseID, r.ID)})
		}
	}
	seen := make(map[[2]string]bool)
	for _, pw := range s.ProductWarehouses() {
		key := [2]string{pw.ProductID, pw.WarehouseID}
		if seen[key] {
			out = append(out, Violation{ViolationDuplicateLink, pw.ProductID,
				fmt.Sprintf("product %s has more than one record for warehouse %s", pw.ProductID, pw.WarehouseID)})
		}
		seen[key] = true
	}
	return out
}

// DiagnoseRouting checks a single routing against the snapshot it would live in.
func DiagnoseRouting(s *catalog.Snapshot, r catalog.SalesRouting) []Violation {
	var out []Violation
	add := func(code ViolationCode, format string, args ...any) {
		out = append(out, Violation{Code: code, Subject: r.ID, Message: fmt.Sprintf(format, args...)})
	}

	if _, ok := s.Event(r.EventID); !ok {
		add(ViolationDanglingEvent, "routing %s references unknown event %s", r.ID, r.EventID)
	}
	for _, wid := range r.WarehouseIDs {
		if _, ok := s.Warehouse(wid); !ok {
			add(ViolationDanglingWarehouse, "routing %s references unknown warehouse %s", r.ID, wid)
		}
	}
	boxOffice := false
	for _, chID := range r.ChannelIDs {
		if _, ok := s.Channel(chID); !ok {
			add(ViolationDanglingChannel, "routing %s references unknown channel %s", r.ID, chID)
		}
		if s.IsBoxOffice(chID) {
			boxOffice = true
			continue
		}
		wid, ok := r.ChannelWarehouseMapping[chID]
		if !ok {
			add(ViolationUnmappedChannel, "routing %s has no warehouse for channel %s", r.ID, chID)
			continue
		}
		if !r.HasWarehouse(wid) {
			add(ViolationMappingOutsidePool, "routing %s maps channel %s to warehouse %s outside its pool", r.ID, chID, wid)
		}
	}
	if ref := r.PriceReferenceWarehouseID; ref != "" && !r.HasWarehouse(ref) {
		add(ViolationPriceReferenceOutsidePool, "routing %s price reference %s is outside its pool", r.ID, ref)
	} else if ref == "" && boxOffice && len(r.WarehouseIDs) > 1 {
		add(ViolationMissingPriceReference, "routing %s sells through the box office from %d warehouses without a price reference", r.ID, len(r.WarehouseIDs))
	}
	return out
}
