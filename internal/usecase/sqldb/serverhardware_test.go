package sqldb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/oneview-redfish/internal/entity"
	"github.com/device-management-toolkit/oneview-redfish/internal/usecase/sqldb"
	"github.com/device-management-toolkit/oneview-redfish/pkg/db"
)

func setupRepo(t *testing.T) *sqldb.ServerHardwareRepo {
	t.Helper()

	ctx := context.Background()

	database, err := db.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	repo := sqldb.NewServerHardwareRepo(database)
	require.NoError(t, repo.Migrate())

	return repo
}

func sampleHardware(uuid, mac string) *entity.ServerHardware {
	number := 1

	return &entity.ServerHardware{
		UUID: uuid,
		Name: "Encl1, bay 1",
		PortMap: &entity.PortMap{
			DeviceSlots: []entity.DeviceSlot{
				{PhysicalPorts: []entity.PhysicalPort{
					{PortNumber: &number, Type: entity.PortTypeEthernet, MAC: &mac},
				}},
			},
		},
	}
}

func TestServerHardwareRepoUpsertAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Upsert(ctx, sampleHardware("uuid-1", "AA:AA:AA:AA:AA:AA")))

	hw, err := repo.GetByUUID(ctx, "uuid-1")
	require.NoError(t, err)

	assert.Equal(t, "uuid-1", hw.UUID)
	require.NotNil(t, hw.PortMap)
	require.Len(t, hw.PortMap.DeviceSlots, 1)
	require.Len(t, hw.PortMap.DeviceSlots[0].PhysicalPorts, 1)

	port := hw.PortMap.DeviceSlots[0].PhysicalPorts[0]
	require.NotNil(t, port.PortNumber)
	assert.Equal(t, 1, *port.PortNumber)
	require.NotNil(t, port.MAC)
	assert.Equal(t, "AA:AA:AA:AA:AA:AA", *port.MAC)
	assert.Nil(t, port.WWN)
}

func TestServerHardwareRepoUpsertReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Upsert(ctx, sampleHardware("uuid-1", "AA:AA:AA:AA:AA:AA")))
	require.NoError(t, repo.Upsert(ctx, sampleHardware("uuid-1", "BB:BB:BB:BB:BB:BB")))

	hw, err := repo.GetByUUID(ctx, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "BB:BB:BB:BB:BB:BB", *hw.PortMap.DeviceSlots[0].PhysicalPorts[0].MAC)

	uuids, err := repo.GetUUIDs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-1"}, uuids)
}

func TestServerHardwareRepoGetNotFound(t *testing.T) {
	t.Parallel()

	_, err := setupRepo(t).GetByUUID(context.Background(), "missing")
	require.ErrorIs(t, err, sqldb.ErrNotFound)
}

func TestServerHardwareRepoGetUUIDsPaged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Upsert(ctx, sampleHardware(id, "AA:AA:AA:AA:AA:AA")))
	}

	uuids, err := repo.GetUUIDs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, uuids)

	uuids, err = repo.GetUUIDs(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, uuids)
}

func TestServerHardwareRepoCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for _, id := range []string{"a", "b", "a"} {
		require.NoError(t, repo.Upsert(ctx, sampleHardware(id, "AA:AA:AA:AA:AA:AA")))
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServerHardwareRepoMigrateTwice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Upsert(ctx, sampleHardware("uuid-1", "AA:AA:AA:AA:AA:AA")))
	require.NoError(t, repo.Migrate())

	_, err := repo.GetByUUID(ctx, "uuid-1")
	require.NoError(t, err)
}
