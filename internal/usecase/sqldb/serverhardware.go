package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/pkg/db"
)

// ErrNotFound is returned when no document is stored under a uuid.
var ErrNotFound = errors.New("server hardware not found")

//go:embed migrations/*.sql
var migrations embed.FS

// ServerHardwareRepo stores OneView server-hardware documents as JSON.
type ServerHardwareRepo struct {
	*db.SQL
}

// NewServerHardwareRepo -.
func NewServerHardwareRepo(database *db.SQL) *ServerHardwareRepo {
	return &ServerHardwareRepo{database}
}

// Migrate applies the embedded schema migrations.
func (r *ServerHardwareRepo) Migrate() error {
	if err := r.SQL.Migrate(migrations, "migrations"); err != nil {
		return fmt.Errorf("ServerHardwareRepo - Migrate: %w", err)
	}

	return nil
}

// GetByUUID -.
func (r *ServerHardwareRepo) GetByUUID(ctx context.Context, uuid string) (*entity.ServerHardware, error) {
	sqlQuery, args, err := r.Builder.
		Select("payload").
		From("server_hardware").
		Where("uuid = ?", uuid).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ServerHardwareRepo - GetByUUID - r.Builder: %w", err)
	}

	var payload string

	err = r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uuid)
	}

	if err != nil {
		return nil, fmt.Errorf("ServerHardwareRepo - GetByUUID - r.Pool.QueryRow: %w", err)
	}

	hw := &entity.ServerHardware{}
	if err := json.Unmarshal([]byte(payload), hw); err != nil {
		return nil, fmt.Errorf("ServerHardwareRepo - GetByUUID - json.Unmarshal: %w", err)
	}

	return hw, nil
}

// GetUUIDs returns stored uuids ordered by uuid.
func (r *ServerHardwareRepo) GetUUIDs(ctx context.Context, limit, offset int) ([]string, error) {
	builder := r.Builder.
		Select("uuid").
		From("server_hardware").
		OrderBy("uuid")

	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ServerHardwareRepo - GetUUIDs - r.Builder: %w", err)
	}

	rows, err := r.Pool.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ServerHardwareRepo - GetUUIDs - r.Pool.Query: %w", err)
	}
	defer rows.Close()

	uuids := make([]string, 0)

	for rows.Next() {
		var uuid string
		if err := rows.Scan(&uuid); err != nil {
			return nil, fmt.Errorf("ServerHardwareRepo - GetUUIDs - rows.Scan: %w", err)
		}

		uuids = append(uuids, uuid)
	}

	return uuids, rows.Err()
}

// Upsert inserts hw or replaces the stored document with the same uuid.
func (r *ServerHardwareRepo) Upsert(ctx context.Context, hw *entity.ServerHardware) error {
	payload, err := json.Marshal(hw)
	if err != nil {
		return fmt.Errorf("ServerHardwareRepo - Upsert - json.Marshal: %w", err)
	}

	sqlQuery, args, err := r.Builder.
		Insert("server_hardware").
		Columns("uuid", "name", "payload").
		Values(hw.UUID, hw.Name, string(payload)).
		Suffix("ON CONFLICT(uuid) DO UPDATE SET name = excluded.name, payload = excluded.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("ServerHardwareRepo - Upsert - r.Builder: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("ServerHardwareRepo - Upsert - r.Pool.Exec: %w", err)
	}

	return nil
}

// Count returns the number of stored documents.
func (r *ServerHardwareRepo) Count(ctx context.Context) (int, error) {
	sqlQuery, args, err := r.Builder.
		Select("COUNT(*)").
		From("server_hardware").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ServerHardwareRepo - Count - r.Builder: %w", err)
	}

	var count int
	if err := r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ServerHardwareRepo - Count - r.Pool.QueryRow: %w", err)
	}

	return count, nil
}
