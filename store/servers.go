// ABOUTME: Server persistence with write-time placement re-validation
// ABOUTME: Every placement write re-reads the rack inside its transaction

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/markalston/assetdex-dcim/models"
)

const serverSelectSQL = "SELECT id, hostname, model, serial, rack, unit, unit_height, updated_at FROM servers"

// ListServers returns servers ordered by hostname. A non-empty rack limits
// the result to servers mounted in that rack.
func (s *Store) ListServers(ctx context.Context, rack string) ([]models.Server, error) {
	if rack == "" {
		return queryServers(ctx, s.db, serverSelectSQL+" ORDER BY hostname")
	}
	return queryServers(ctx, s.db, serverSelectSQL+" WHERE rack = ? ORDER BY hostname", rack)
}

// GetServer returns a single server by id.
func (s *Store) GetServer(ctx context.Context, id string) (models.Server, error) {
	return getServer(ctx, s.db, id)
}

// CreateServer inserts a server with a generated id. If the server has a
// rack and unit, the placement is re-checked in the same transaction.
func (s *Store) CreateServer(ctx context.Context, srv models.Server) (models.Server, error) {
	srv.ID = uuid.NewString()
	srv.UpdatedAt = time.Now().UTC()
	if srv.UnitHeight <= 0 {
		srv.UnitHeight = 1
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if srv.Racked() {
			if err := s.recheck(ctx, tx, models.CandidatePlacement{
				Rack:      srv.Rack,
				StartUnit: srv.Unit,
				Height:    srv.UnitHeight,
			}); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO servers (id, hostname, model, serial, rack, unit, unit_height, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			srv.ID, srv.Hostname, srv.Model, srv.Serial,
			nullString(srv.Rack), nullUnit(srv.Unit), srv.UnitHeight, srv.UpdatedAt)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("server %s: %w", srv.Hostname, ErrDuplicate)
			}
			return fmt.Errorf("creating server %s: %w", srv.Hostname, err)
		}
		return nil
	})
	if err != nil {
		return models.Server{}, err
	}

	slog.Info("Server created", "id", srv.ID, "hostname", srv.Hostname, "rack", srv.Rack, "unit", srv.Unit)
	return srv, nil
}

// PlaceServer mounts (or moves) a server at unit in rack. A zero height keeps
// the server's current height. The server itself is excluded from conflicts.
func (s *Store) PlaceServer(ctx context.Context, id, rack string, unit, height int) (models.Server, error) {
	var placed models.Server

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		srv, err := getServer(ctx, tx, id)
		if err != nil {
			return err
		}
		if height <= 0 {
			height = srv.UnitHeight
		}

		if err := s.recheck(ctx, tx, models.CandidatePlacement{
			Rack:            rack,
			StartUnit:       unit,
			Height:          height,
			ExcludeDeviceID: srv.ID,
		}); err != nil {
			return err
		}

		srv.Rack, srv.Unit, srv.UnitHeight = rack, unit, height
		srv.UpdatedAt = time.Now().UTC()
		if _, err := tx.ExecContext(ctx,
			"UPDATE servers SET rack = ?, unit = ?, unit_height = ?, updated_at = ? WHERE id = ?",
			srv.Rack, srv.Unit, srv.UnitHeight, srv.UpdatedAt, srv.ID); err != nil {
			return fmt.Errorf("placing server %s: %w", srv.ID, err)
		}
		placed = srv
		return nil
	})
	if err != nil {
		return models.Server{}, err
	}

	slog.Info("Server placed", "id", placed.ID, "hostname", placed.Hostname, "rack", placed.Rack,
		"unit", models.FormatUnit(placed.Unit), "height", placed.UnitHeight)
	return placed, nil
}

// UnrackServer clears a server's mounting position.
func (s *Store) UnrackServer(ctx context.Context, id string) (models.Server, error) {
	var srv models.Server

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		srv, err = getServer(ctx, tx, id)
		if err != nil {
			return err
		}

		srv.Rack, srv.Unit = "", 0
		srv.UpdatedAt = time.Now().UTC()
		_, err = tx.ExecContext(ctx,
			"UPDATE servers SET rack = NULL, unit = NULL, updated_at = ? WHERE id = ?", srv.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("unracking server %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return models.Server{}, err
	}
	return srv, nil
}

// DeleteServer removes a server.
func (s *Store) DeleteServer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM servers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting server %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("server %s: %w", id, ErrServerNotFound)
	}
	return nil
}

// recheck is the authoritative availability check run inside a write
// transaction. It returns *ConflictError when the units are taken.
func (s *Store) recheck(ctx context.Context, tx *sql.Tx, candidate models.CandidatePlacement) error {
	snap, err := snapshot(ctx, tx, candidate.Rack)
	if err != nil {
		return err
	}

	result, err := s.evaluator.Evaluate(snap, candidate)
	if err != nil {
		return err
	}

	if !result.Available {
		slog.Warn("Placement rejected by write-time re-check",
			"rack", candidate.Rack,
			"unit", models.FormatUnit(candidate.StartUnit),
			"height", candidate.Height,
			"conflicts", len(result.Conflicts),
		)
		return &ConflictError{Rack: candidate.Rack, Result: result}
	}
	return nil
}

func getServer(ctx context.Context, q queryer, id string) (models.Server, error) {
	servers, err := queryServers(ctx, q, serverSelectSQL+" WHERE id = ?", id)
	if err != nil {
		return models.Server{}, err
	}
	if len(servers) == 0 {
		return models.Server{}, fmt.Errorf("server %s: %w", id, ErrServerNotFound)
	}
	return servers[0], nil
}

func queryServers(ctx context.Context, q queryer, query string, args ...any) ([]models.Server, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying servers: %w", err)
	}
	defer rows.Close()

	servers := []models.Server{}
	for rows.Next() {
		var (
			srv  models.Server
			rack sql.NullString
			unit sql.NullInt64
		)
		if err := rows.Scan(&srv.ID, &srv.Hostname, &srv.Model, &srv.Serial, &rack, &unit, &srv.UnitHeight, &srv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning server: %w", err)
		}
		srv.Rack = rack.String
		srv.Unit = int(unit.Int64)
		servers = append(servers, srv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating servers: %w", err)
	}
	return servers, nil
}

// IsNotFound reports whether err is a missing rack or server.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRackNotFound) || errors.Is(err, ErrServerNotFound)
}
