package catalog

import "context"

// Repository loads the ingested catalog as one consistent snapshot.
type Repository interface {
	LoadSnapshot(ctx context.Context, boxOfficeChannelID string) (*Snapshot, error)
}

type seedRepo struct{}

// NewSeedRepository returns a Repository serving the built-in demo catalog.
func NewSeedRepository() Repository { return seedRepo{} }

func (seedRepo) LoadSnapshot(_ context.Context, boxOfficeChannelID string) (*Snapshot, error) {
	d := SeedData()
	if boxOfficeChannelID != "" && boxOfficeChannelID != d.BoxOfficeChannelID {
		d = rekeyBoxOffice(d, boxOfficeChannelID)
	}
	return NewSnapshot(d), nil
}

// rekeyBoxOffice renames the reserved Box-Office channel id throughout d.
func rekeyBoxOffice(d Data, id string) Data {
	old := d.BoxOfficeChannelID
	for i := range d.Channels {
		if d.Channels[i].ID == old {
			d.Channels[i].ID = id
		}
	}
	for i := range d.SalesRoutings {
		r := &d.SalesRoutings[i]
		for j, c := range r.ChannelIDs {
			if c == old {
				r.ChannelIDs[j] = id
			}
		}
		if w, ok := r.ChannelWarehouseMapping[old]; ok {
			delete(r.ChannelWarehouseMapping, old)
			r.ChannelWarehouseMapping[id] = w
		}
	}
	d.BoxOfficeChannelID = id
	return d
}
