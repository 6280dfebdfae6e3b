// ABOUTME: Rack persistence and occupancy snapshot reads
// ABOUTME: Builds the point-in-time RackSnapshot consumed by the evaluator

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/markalston/assetdex-dcim/models"
)

// CreateRack inserts a rack. A zero TotalUnits uses the store default.
func (s *Store) CreateRack(ctx context.Context, rack models.Rack) (models.Rack, error) {
	if rack.TotalUnits <= 0 {
		rack.TotalUnits = s.defaultUnits
	}
	rack.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO racks (name, location, total_units, created_at) VALUES (?, ?, ?, ?)",
		rack.Name, rack.Location, rack.TotalUnits, rack.CreatedAt)
	if err != nil {
		if isConstraintViolation(err) {
			return models.Rack{}, fmt.Errorf("rack %s: %w", rack.Name, ErrDuplicate)
		}
		return models.Rack{}, fmt.Errorf("creating rack %s: %w", rack.Name, err)
	}
	return rack, nil
}

// GetRack returns a single rack by name.
func (s *Store) GetRack(ctx context.Context, name string) (models.Rack, error) {
	return getRack(ctx, s.db, name)
}

func getRack(ctx context.Context, q queryer, name string) (models.Rack, error) {
	var r models.Rack
	err := q.QueryRowContext(ctx,
		"SELECT name, location, total_units, created_at FROM racks WHERE name = ?", name).
		Scan(&r.Name, &r.Location, &r.TotalUnits, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rack{}, fmt.Errorf("rack %s: %w", name, ErrRackNotFound)
	}
	if err != nil {
		return models.Rack{}, fmt.Errorf("reading rack %s: %w", name, err)
	}
	return r, nil
}

// ListRacks returns every rack with its unit usage, ordered by name.
func (s *Store) ListRacks(ctx context.Context) ([]models.RackSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.name, r.location, r.total_units, r.created_at,
			COUNT(sv.id), COALESCE(SUM(sv.unit_height), 0)
		FROM racks r
		LEFT JOIN servers sv ON sv.rack = r.name AND sv.unit IS NOT NULL
		GROUP BY r.name
		ORDER BY r.name`)
	if err != nil {
		return nil, fmt.Errorf("listing racks: %w", err)
	}
	defer rows.Close()

	racks := []models.RackSummary{}
	for rows.Next() {
		var rs models.RackSummary
		if err := rows.Scan(&rs.Name, &rs.Location, &rs.TotalUnits, &rs.CreatedAt, &rs.ServerCount, &rs.UsedUnits); err != nil {
			return nil, fmt.Errorf("scanning rack: %w", err)
		}
		rs.FreeUnits = max(rs.TotalUnits-rs.UsedUnits, 0)
		racks = append(racks, rs)
	}
	return racks, rows.Err()
}

// DeleteRack removes a rack and unracks every server mounted in it.
func (s *Store) DeleteRack(ctx context.Context, name string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"UPDATE servers SET rack = NULL, unit = NULL, updated_at = ? WHERE rack = ?",
			time.Now().UTC(), name); err != nil {
			return fmt.Errorf("unracking servers in %s: %w", name, err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM racks WHERE name = ?", name)
		if err != nil {
			return fmt.Errorf("deleting rack %s: %w", name, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("rack %s: %w", name, ErrRackNotFound)
		}
		return nil
	})
}

// RackServers returns the rack and the servers mounted in it, top unit first.
func (s *Store) RackServers(ctx context.Context, name string) (models.Rack, []models.Server, error) {
	return rackServers(ctx, s.db, name)
}

func rackServers(ctx context.Context, q queryer, name string) (models.Rack, []models.Server, error) {
	rack, err := getRack(ctx, q, name)
	if err != nil {
		return models.Rack{}, nil, err
	}

	servers, err := queryServers(ctx, q, serverSelectSQL+" WHERE rack = ? AND unit IS NOT NULL ORDER BY unit DESC", name)
	if err != nil {
		return models.Rack{}, nil, err
	}
	return rack, servers, nil
}

// Snapshot reads the current occupancy of a rack. Read failures other than a
// missing rack are wrapped in ErrSnapshotUnavailable.
func (s *Store) Snapshot(ctx context.Context, name string) (models.RackSnapshot, error) {
	return snapshot(ctx, s.db, name)
}

func snapshot(ctx context.Context, q queryer, name string) (models.RackSnapshot, error) {
	rack, servers, err := rackServers(ctx, q, name)
	if errors.Is(err, ErrRackNotFound) {
		return models.RackSnapshot{}, err
	}
	if err != nil {
		return models.RackSnapshot{}, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}
	return NewSnapshot(rack, servers), nil
}

// NewSnapshot builds a RackSnapshot from a rack and its mounted servers.
func NewSnapshot(rack models.Rack, servers []models.Server) models.RackSnapshot {
	snap := models.RackSnapshot{
		Rack:       rack.Name,
		TotalUnits: rack.TotalUnits,
		Devices:    make([]models.RackUnitInterval, 0, len(servers)),
	}
	for _, srv := range servers {
		if srv.Racked() {
			snap.Devices = append(snap.Devices, srv.Interval())
		}
	}
	return snap
}
