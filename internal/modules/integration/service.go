package integration

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/routing"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid request")
	ErrConflict = errors.New("conflict")
)

// Service accepts create/update/delete intents for the catalog integration,
// warehouses and sales routings. Every accepted intent publishes a new snapshot.
type Service interface {
	Connect(ctx context.Context, req ConnectRequest) (*catalog.CatalogIntegration, error)
	Rename(ctx context.Context, req RenameRequest) (*catalog.CatalogIntegration, error)
	Disconnect(ctx context.Context) error

	CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*catalog.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error

	CreateRouting(ctx context.Context, req RoutingRequest) (*catalog.SalesRouting, error)
	UpdateRouting(ctx context.Context, id string, req RoutingRequest) (*catalog.SalesRouting, error)
	DeleteRouting(ctx context.Context, id string) error
}

type service struct {
	holder   *catalog.Holder
	validate *validator.Validate
	logger   *logrus.Logger
	now      func() time.Time
}

func NewService(holder *catalog.Holder, logger *logrus.Logger) Service {
	return &service{
		holder:   holder,
		validate: validator.New(),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) check(req interface{}) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (s *service) logMutation(action, subject string) {
	s.logger.WithFields(logrus.Fields{
		"module":  "integration",
		"action":  action,
		"subject": subject,
	}).Info("catalog mutated")
}

// ── Catalog integration ───────────────────────────────────────────────────────

func (s *service) Connect(_ context.Context, req ConnectRequest) (*catalog.CatalogIntegration, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	in := catalog.CatalogIntegration{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.Name),
		Provider:          catalog.Provider(req.Provider),
		ExternalAccountID: req.ExternalAccountID,
		CreatedAt:         s.now(),
	}
	_, err := s.holder.Update(func(d *catalog.Data) error {
		if d.Integration != nil {
			return fmt.Errorf("%w: catalog already connected to %s", ErrConflict, d.Integration.Provider.DisplayName())
		}
		d.Integration = &in
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logMutation("connect", in.ID)
	return &in, nil
}

func (s *service) Rename(_ context.Context, req RenameRequest) (*catalog.CatalogIntegration, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	var out catalog.CatalogIntegration
	_, err := s.holder.Update(func(d *catalog.Data) error {
		if d.Integration == nil {
			return fmt.Errorf("catalog integration: %w", ErrNotFound)
		}
		d.Integration.Name = strings.TrimSpace(req.Name)
		out = *d.Integration
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logMutation("rename", out.ID)
	return &out, nil
}

// Disconnect removes the integration together with every warehouse it owns.
func (s *service) Disconnect(_ context.Context) error {
	var id string
	_, err := s.holder.Update(func(d *catalog.Data) error {
		if d.Integration == nil {
			return fmt.Errorf("catalog integration: %w", ErrNotFound)
		}
		owner := d.Integration.Provider.DisplayName()
		id = d.Integration.ID
		for _, w := range slices.Clone(d.Warehouses) {
			if w.Integration == owner {
				removeWarehouse(d, w.ID)
			}
		}
		d.Integration = nil
		return nil
	})
	if err != nil {
		return err
	}
	s.logMutation("disconnect", id)
	return nil
}

// ── Warehouses ────────────────────────────────────────────────────────────────

func (s *service) CreateWarehouse(_ context.Context, req CreateWarehouseRequest) (*catalog.Warehouse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	var w catalog.Warehouse
	_, err := s.holder.Update(func(d *catalog.Data) error {
		if d.Integration == nil {
			return fmt.Errorf("%w: no catalog integration connected", ErrInvalid)
		}
		for _, existing := range d.Warehouses {
			if existing.ExternalLocationID == req.ExternalLocationID {
				return fmt.Errorf("%w: location %s already registered as %s", ErrConflict, req.ExternalLocationID, existing.ID)
			}
		}
		w = catalog.Warehouse{
			ID:                 uuid.New().String(),
			Name:               strings.TrimSpace(req.Name),
			Integration:        d.Integration.Provider.DisplayName(),
			ExternalLocationID: req.ExternalLocationID,
			MasterCatalogID:    req.MasterCatalogID,
		}
		d.Warehouses = append(d.Warehouses, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logMutation("create_warehouse", w.ID)
	return &w, nil
}

func (s *service) DeleteWarehouse(_ context.Context, id string) error {
	_, err := s.holder.Update(func(d *catalog.Data) error {
		if !slices.ContainsFunc(d.Warehouses, func(w catalog.Warehouse) bool { return w.ID == id }) {
			return fmt.Errorf("warehouse %s: %w", id, ErrNotFound)
		}
		removeWarehouse(d, id)
		return nil
	})
	if err != nil {
		return err
	}
	s.logMutation("delete_warehouse", id)
	return nil
}

// removeWarehouse drops a warehouse with its product links, its place in every
// routing pool, the channel assignments and terminals that point at it.
func removeWarehouse(d *catalog.Data, id string) {
	d.Warehouses = slices.DeleteFunc(d.Warehouses, func(w catalog.Warehouse) bool { return w.ID == id })
	d.ProductWarehouses = slices.DeleteFunc(d.ProductWarehouses, func(pw catalog.ProductWarehouse) bool {
		return pw.WarehouseID == id
	})
	d.BoxOfficeSetups = slices.DeleteFunc(d.BoxOfficeSetups, func(b catalog.BoxOfficeSetup) bool {
		return b.WarehouseID == id
	})
	for i := range d.SalesRoutings {
		r := &d.SalesRoutings[i]
		r.WarehouseIDs = slices.DeleteFunc(r.WarehouseIDs, func(w string) bool { return w == id })
		for ch, w := range r.ChannelWarehouseMapping {
			if w == id {
				delete(r.ChannelWarehouseMapping, ch)
			}
		}
		if r.PriceReferenceWarehouseID == id {
			r.PriceReferenceWarehouseID = ""
		}
	}
}

// ── Sales routings ────────────────────────────────────────────────────────────

func (s *service) CreateRouting(_ context.Context, req RoutingRequest) (*catalog.SalesRouting, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	now := s.now()
	var out catalog.SalesRouting
	_, err := s.holder.Update(func(d *catalog.Data) error {
		r, err := buildRouting(d, uuid.New().String(), req, now, now)
		if err != nil {
			return err
		}
		d.SalesRoutings = append(d.SalesRoutings, r)
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logMutation("create_routing", out.ID)
	return &out, nil
}

func (s *service) UpdateRouting(_ context.Context, id string, req RoutingRequest) (*catalog.SalesRouting, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	var out catalog.SalesRouting
	_, err := s.holder.Update(func(d *catalog.Data) error {
		i := slices.IndexFunc(d.SalesRoutings, func(r catalog.SalesRouting) bool { return r.ID == id })
		if i < 0 {
			return fmt.Errorf("routing %s: %w", id, ErrNotFound)
		}
		r, err := buildRouting(d, id, req, d.SalesRoutings[i].CreatedAt, s.now())
		if err != nil {
			return err
		}
		d.SalesRoutings[i] = r
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logMutation("update_routing", id)
	return &out, nil
}

// DeleteRouting removes a routing and the Box-Office terminals bound to it.
func (s *service) DeleteRouting(_ context.Context, id string) error {
	_, err := s.holder.Update(func(d *catalog.Data) error {
		n := len(d.SalesRoutings)
		d.SalesRoutings = slices.DeleteFunc(d.SalesRoutings, func(r catalog.SalesRouting) bool { return r.ID == id })
		if len(d.SalesRoutings) == n {
			return fmt.Errorf("routing %s: %w", id, ErrNotFound)
		}
		d.BoxOfficeSetups = slices.DeleteFunc(d.BoxOfficeSetups, func(b catalog.BoxOfficeSetup) bool {
			return b.SalesRoutingID == id
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.logMutation("delete_routing", id)
	return nil
}

// buildRouting normalises the request and rejects it when the resulting routing
// would break a data-model invariant.
func buildRouting(d *catalog.Data, id string, req RoutingRequest, createdAt, updatedAt time.Time) (catalog.SalesRouting, error) {
	status := req.Status
	if status == "" {
		status = catalog.RoutingDraft
	}
	r := catalog.NormalizeRouting(catalog.RoutingRecord{
		ID:                        id,
		EventID:                   req.EventID,
		WarehouseIDs:              req.WarehouseIDs,
		PriceReferenceWarehouseID: req.PriceReferenceWarehouseID,
		ChannelIDs:                req.ChannelIDs,
		Status:                    status,
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
		Kind:                      req.kind(),
	}, d.ProductWarehouses, d.BoxOfficeChannelID)

	if len(r.ChannelIDs) == 0 {
		return r, fmt.Errorf("%w: at least one channel is required", ErrInvalid)
	}
	if violations := routing.DiagnoseRouting(catalog.NewSnapshot(*d), r); len(violations) > 0 {
		msgs := make([]string, 0, len(violations))
		for _, v := range violations {
			msgs = append(msgs, v.Message)
		}
		return r, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}
	return r, nil
}
