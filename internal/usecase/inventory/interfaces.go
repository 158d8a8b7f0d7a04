package inventory

import (
	"context"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
)

type (
	// Repository persists server-hardware documents.
	Repository interface {
		GetByUUID(ctx context.Context, uuid string) (*entity.ServerHardware, error)
		GetUUIDs(ctx context.Context, limit, offset int) ([]string, error)
		Count(ctx context.Context) (int, error)
		Upsert(ctx context.Context, hw *entity.ServerHardware) error
	}

	// Feature is what the Redfish controllers consume.
	Feature interface {
		GetServerHardware(ctx context.Context, uuid string) (*entity.ServerHardware, error)
		GetChassisIDs(ctx context.Context, limit, offset int) ([]string, error)
		CountChassis(ctx context.Context) (int, error)
	}
)
