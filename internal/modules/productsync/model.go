package productsync

import "time"

// SyncHandle identifies a sync that has begun. ProductIDs are the products that
// were pending when it began; only those become visible when it completes.
type SyncHandle struct {
	ID         string    `json:"id"`
	ProductIDs []string  `json:"product_ids"`
	StartedAt  time.Time `json:"started_at"`
}

// Result reports what a completed sync made visible.
type Result struct {
	HandleID               string    `json:"handle_id"`
	NewlyVisibleProductIDs []string  `json:"newly_visible_product_ids"`
	CompletedAt            time.Time `json:"completed_at"`
}

// Clock supplies the time stamped on synced products.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
