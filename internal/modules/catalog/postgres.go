package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct {
	db              *sql.DB
	defaultCurrency string
}

// NewPostgresRepository reads the catalog tables written by the ingestion job.
// Links stored without a currency are priced in defaultCurrency.
func NewPostgresRepository(db *sql.DB, defaultCurrency string) Repository {
	return &postgresRepo{db: db, defaultCurrency: defaultCurrency}
}

func (r *postgresRepo) LoadSnapshot(ctx context.Context, boxOfficeChannelID string) (*Snapshot, error) {
	d := Data{BoxOfficeChannelID: boxOfficeChannelID}
	var err error

	if d.Integration, err = r.integration(ctx); err != nil {
		return nil, fmt.Errorf("failed to load catalog integration: %w", err)
	}
	if d.Events, err = r.events(ctx); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if d.Warehouses, err = r.warehouses(ctx); err != nil {
		return nil, fmt.Errorf("failed to load warehouses: %w", err)
	}
	if d.Products, err = r.products(ctx); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if d.ProductWarehouses, err = r.productWarehouses(ctx); err != nil {
		return nil, fmt.Errorf("failed to load product warehouses: %w", err)
	}
	if d.Channels, err = r.channels(ctx); err != nil {
		return nil, fmt.Errorf("failed to load channels: %w", err)
	}
	records, err := r.routingRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales routings: %w", err)
	}
	if d.BoxOfficeSetups, err = r.boxOfficeSetups(ctx); err != nil {
		return nil, fmt.Errorf("failed to load box office setups: %w", err)
	}
	if d.BoxOfficeChannelID == "" {
		d.BoxOfficeChannelID = DefaultBoxOfficeChannelID
	}
	d.SalesRoutings = NormalizeRoutings(records, d.ProductWarehouses, d.BoxOfficeChannelID)
	return NewSnapshot(d), nil
}

func (r *postgresRepo) integration(ctx context.Context) (*CatalogIntegration, error) {
	in := &CatalogIntegration{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id,name,provider,external_account_id,created_at
		FROM catalog_integrations ORDER BY created_at ASC LIMIT 1`).
		Scan(&in.ID, &in.Name, &in.Provider, &in.ExternalAccountID, &in.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

// query runs q and hands every row to scan.
func (r *postgresRepo) query(ctx context.Context, q string, scan func(*sql.Rows) error) error {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *postgresRepo) events(ctx context.Context) ([]Event, error) {
	var out []Event
	err := r.query(ctx, `SELECT id,name,date,venue,city,status FROM events ORDER BY seq`, func(rows *sql.Rows) error {
		var e Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Venue, &e.City, &e.Status); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	return out, err
}

func (r *postgresRepo) warehouses(ctx context.Context) ([]Warehouse, error) {
	var out []Warehouse
	err := r.query(ctx, `
		SELECT id,name,integration,external_location_id,product_count,COALESCE(master_catalog_id,'')
		FROM warehouses ORDER BY seq`, func(rows *sql.Rows) error {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Integration, &w.ExternalLocationID,
			&w.ProductCount, &w.MasterCatalogID); err != nil {
			return err
		}
		out = append(out, w)
		return nil
	})
	return out, err
}

func (r *postgresRepo) products(ctx context.Context) ([]Product, error) {
	var out []Product
	err := r.query(ctx, `
		SELECT id,name,sku,COALESCE(image_url,''),pending_sync,synced_at
		FROM products ORDER BY seq`, func(rows *sql.Rows) error {
		var p Product
		var syncedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.ImageURL, &p.PendingSync, &syncedAt); err != nil {
			return err
		}
		if syncedAt.Valid {
			t := syncedAt.Time
			p.SyncedAt = &t
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

func (r *postgresRepo) productWarehouses(ctx context.Context) ([]ProductWarehouse, error) {
	var out []ProductWarehouse
	err := r.query(ctx, `
		SELECT product_id,warehouse_id,price,currency,stock
		FROM product_warehouses ORDER BY seq`, func(rows *sql.Rows) error {
		var pw ProductWarehouse
		var currency sql.NullString
		if err := rows.Scan(&pw.ProductID, &pw.WarehouseID, &pw.Price, &currency, &pw.Stock); err != nil {
			return err
		}
		pw.Currency = r.defaultCurrency
		if currency.Valid && currency.String != "" {
			pw.Currency = currency.String
		}
		out = append(out, pw)
		return nil
	})
	return out, err
}

func (r *postgresRepo) channels(ctx context.Context) ([]Channel, error) {
	var out []Channel
	err := r.query(ctx, `SELECT id,name,type FROM channels ORDER BY seq`, func(rows *sql.Rows) error {
		var c Channel
		if err := rows.Scan(&c.ID, &c.Name, &c.Type); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// routingRecords reads routings in either shape. A non-null legacy_type marks a
// routing that predates channel-to-warehouse mappings.
func (r *postgresRepo) routingRecords(ctx context.Context) ([]RoutingRecord, error) {
	var out []RoutingRecord
	err := r.query(ctx, `
		SELECT id,event_id,warehouse_ids,COALESCE(price_reference_warehouse_id,''),channel_ids,
		       channel_warehouse_mapping,legacy_type,selected_product_ids,product_channel_mapping,
		       status,created_at,updated_at
		FROM sales_routings ORDER BY seq`, func(rows *sql.Rows) error {
		var rec RoutingRecord
		var mapping, productChannels []byte
		var legacyType sql.NullString
		var selected []string
		if err := rows.Scan(&rec.ID, &rec.EventID, pq.Array(&rec.WarehouseIDs),
			&rec.PriceReferenceWarehouseID, pq.Array(&rec.ChannelIDs), &mapping, &legacyType,
			pq.Array(&selected), &productChannels, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return err
		}
		if legacyType.Valid {
			k := LegacyKind{Type: LegacyRoutingType(legacyType.String), SelectedProductIDs: selected}
			if len(productChannels) > 0 {
				if err := json.Unmarshal(productChannels, &k.ProductChannelMapping); err != nil {
					return fmt.Errorf("routing %s: product_channel_mapping: %w", rec.ID, err)
				}
			}
			rec.Kind = k
		} else {
			k := CurrentKind{}
			if len(mapping) > 0 {
				if err := json.Unmarshal(mapping, &k.ChannelWarehouseMapping); err != nil {
					return fmt.Errorf("routing %s: channel_warehouse_mapping: %w", rec.ID, err)
				}
			}
			rec.Kind = k
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

func (r *postgresRepo) boxOfficeSetups(ctx context.Context) ([]BoxOfficeSetup, error) {
	var out []BoxOfficeSetup
	err := r.query(ctx, `
		SELECT id,name,sales_routing_id,warehouse_id
		FROM box_office_setups ORDER BY seq`, func(rows *sql.Rows) error {
		var b BoxOfficeSetup
		if err := rows.Scan(&b.ID, &b.Name, &b.SalesRoutingID, &b.WarehouseID); err != nil {
			return err
		}
		out = append(out, b)
		return nil
	})
	return out, err
}
