// Package inventory serves OneView server-hardware documents to the Redfish
// controllers.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/sqldb"
	"github.com/device-management-toolkit/oneview-redfish/pkg/logger"
)

// ErrNotFound is returned when no server hardware is stored under a uuid.
var ErrNotFound = errors.New("server hardware not found")

// UseCase -.
type UseCase struct {
	repo     Repository
	validate *validator.Validate
	log      logger.Interface
}

var _ Feature = (*UseCase)(nil)

// New -.
func New(r Repository, log logger.Interface) *UseCase {
	return &UseCase{
		repo:     r,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// GetServerHardware -.
func (uc *UseCase) GetServerHardware(ctx context.Context, uuid string) (*entity.ServerHardware, error) {
	hw, err := uc.repo.GetByUUID(ctx, uuid)
	if errors.Is(err, sqldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, uuid)
	}

	if err != nil {
		return nil, fmt.Errorf("inventory - GetServerHardware: %w", err)
	}

	return hw, nil
}

// GetChassisIDs -.
func (uc *UseCase) GetChassisIDs(ctx context.Context, limit, offset int) ([]string, error) {
	ids, err := uc.repo.GetUUIDs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("inventory - GetChassisIDs: %w", err)
	}

	return ids, nil
}

// CountChassis returns the number of stored server-hardware documents.
func (uc *UseCase) CountChassis(ctx context.Context) (int, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("inventory - CountChassis: %w", err)
	}

	return count, nil
}

// Put validates hw and stores it. Seed is its only caller; documents enter
// the inventory at startup.
func (uc *UseCase) Put(ctx context.Context, hw *entity.ServerHardware) error {
	if err := uc.validate.Struct(hw); err != nil {
		return fmt.Errorf("inventory - Put - validate: %w", err)
	}

	if err := uc.repo.Upsert(ctx, hw); err != nil {
		return fmt.Errorf("inventory - Put: %w", err)
	}

	return nil
}

// Seed loads every *.json server-hardware document in dir. Documents that
// fail to parse or validate are logged and skipped. It returns the number
// of documents stored.
func (uc *UseCase) Seed(ctx context.Context, dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("inventory - Seed - glob: %w", err)
	}

	sort.Strings(files)

	stored := 0

	for _, file := range files {
		hw, err := readServerHardware(file)
		if err != nil {
			uc.log.Warn("inventory - Seed: skipping %s: %v", file, err)

			continue
		}

		if err := uc.Put(ctx, hw); err != nil {
			uc.log.Warn("inventory - Seed: skipping %s: %v", file, err)

			continue
		}

		stored++
	}

	uc.log.Info("inventory - Seed: stored %d of %d documents from %s", stored, len(files), dir)

	return stored, nil
}

func readServerHardware(file string) (*entity.ServerHardware, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	hw := &entity.ServerHardware{}
	if err := json.Unmarshal(raw, hw); err != nil {
		return nil, err
	}

	return hw, nil
}
