package inventory_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/internal/mocks"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/inventory"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/sqldb"
)

const serverHardwareJSON = `{
  "uuid": "30303437-3034-4D32-3230-313133364752",
  "name": "0000A66101, bay 3",
  "portMap": {
    "deviceSlots": [
      {
        "deviceName": "HP FlexFabric 10Gb 2-port 554FLB Adapter",
        "slotNumber": 1,
        "physicalPorts": [
          {"portNumber": 1, "type": "Ethernet", "mac": "EC:B1:D7:7F:5A:30"},
          {"portNumber": 2, "type": "FibreChannel", "wwn": "10:00:38:EA:A7:12:34:56"}
        ]
      }
    ]
  }
}`

func setup(t *testing.T) (*inventory.UseCase, *mocks.MockInventoryRepository, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockInventoryRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)

	return inventory.New(repo, log), repo, log
}

func TestGetServerHardware(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	expected := &entity.ServerHardware{UUID: "uuid-1"}
	repo.EXPECT().
		GetByUUID(gomock.Any(), "uuid-1").
		Return(expected, nil)

	hw, err := uc.GetServerHardware(context.Background(), "uuid-1")
	require.NoError(t, err)
	assert.Same(t, expected, hw)
}

func TestGetServerHardwareNotFound(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	repo.EXPECT().
		GetByUUID(gomock.Any(), "missing").
		Return(nil, sqldb.ErrNotFound)

	_, err := uc.GetServerHardware(context.Background(), "missing")
	require.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestGetServerHardwareRepoError(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	repoErr := errors.New("database is locked")
	repo.EXPECT().
		GetByUUID(gomock.Any(), "uuid-1").
		Return(nil, repoErr)

	_, err := uc.GetServerHardware(context.Background(), "uuid-1")
	require.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, inventory.ErrNotFound)
}

func TestGetChassisIDs(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	repo.EXPECT().
		GetUUIDs(gomock.Any(), 100, 0).
		Return([]string{"a", "b"}, nil)

	ids, err := uc.GetChassisIDs(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestCountChassis(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	repo.EXPECT().
		Count(gomock.Any()).
		Return(3, nil)

	count, err := uc.CountChassis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCountChassisError(t *testing.T) {
	t.Parallel()

	uc, repo, _ := setup(t)

	repoErr := errors.New("database is locked")
	repo.EXPECT().
		Count(gomock.Any()).
		Return(0, repoErr)

	_, err := uc.CountChassis(context.Background())
	require.ErrorIs(t, err, repoErr)
}

func TestPutRejectsMissingUUID(t *testing.T) {
	t.Parallel()

	uc, _, _ := setup(t)

	err := uc.Put(context.Background(), &entity.ServerHardware{Name: "no uuid"})
	require.Error(t, err)
}

func TestPutRejectsNegativePortNumber(t *testing.T) {
	t.Parallel()

	uc, _, _ := setup(t)

	negative := -1
	hw := &entity.ServerHardware{
		UUID: "uuid-1",
		PortMap: &entity.PortMap{DeviceSlots: []entity.DeviceSlot{
			{PhysicalPorts: []entity.PhysicalPort{{PortNumber: &negative, Type: entity.PortTypeEthernet}}},
		}},
	}

	require.Error(t, uc.Put(context.Background(), hw))
}

func TestSeed(t *testing.T) {
	t.Parallel()

	uc, repo, log := setup(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bay3.json"), []byte(serverHardwareJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"uuid":`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nouuid.json"), []byte(`{"name":"x"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hw *entity.ServerHardware) error {
			assert.Equal(t, "30303437-3034-4D32-3230-313133364752", hw.UUID)
			require.NotNil(t, hw.PortMap)
			assert.Len(t, hw.PortMap.DeviceSlots[0].PhysicalPorts, 2)

			return nil
		})

	log.EXPECT().Warn(gomock.Any(), gomock.Any()).Times(2)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).Times(1)

	stored, err := uc.Seed(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}
