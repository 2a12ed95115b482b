package commands_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/inventory"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/routing"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWaybillRepository struct{ mock.Mock }

func (m *MockWaybillRepository) Add(ctx context.Context, w *waybill.Waybill) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWaybillRepository) Update(ctx context.Context, w *waybill.Waybill) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWaybillRepository) Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waybill.Waybill), args.Error(1)
}

func (m *MockWaybillRepository) GetByNumber(ctx context.Context, waybillNumber string) (*waybill.Waybill, error) {
	args := m.Called(ctx, waybillNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waybill.Waybill), args.Error(1)
}

func (m *MockWaybillRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*waybill.Waybill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waybill.Waybill), args.Error(1)
}

func (m *MockWaybillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) IsWaybillManifested(ctx context.Context, waybillID kernel.UUID) (bool, error) {
	args := m.Called(ctx, waybillID)
	return args.Bool(0), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByNumber(ctx context.Context, waybillNumber string) (*inventory.Item, error) {
	args := m.Called(ctx, waybillNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

type MockRoutingRepository struct{ mock.Mock }

func (m *MockRoutingRepository) Upsert(ctx context.Context, association *routing.Association) error {
	args := m.Called(ctx, association)
	return args.Error(0)
}

func (m *MockRoutingRepository) Get(
	ctx context.Context,
	associationType routing.AssociationType,
	fromPartnerCode string,
) (*routing.Association, error) {
	args := m.Called(ctx, associationType, fromPartnerCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routing.Association), args.Error(1)
}

// MockUoW satisfies every unit-of-work combination the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WaybillRepository() ports.WaybillRepository {
	args := m.Called()
	return args.Get(0).(ports.WaybillRepository)
}

func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) RoutingRepository() ports.RoutingRepository {
	args := m.Called()
	return args.Get(0).(ports.RoutingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWaybillUoWFactory struct{ mock.Mock }

func (m *MockWaybillUoWFactory) Create() commands.WaybillUoW {
	args := m.Called()
	return args.Get(0).(commands.WaybillUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockRoutingUoWFactory struct{ mock.Mock }

func (m *MockRoutingUoWFactory) Create() commands.RoutingUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutingUoW)
}
