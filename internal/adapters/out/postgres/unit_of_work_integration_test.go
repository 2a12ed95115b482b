package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/inventoryrepo"
	"freight/internal/adapters/out/postgres/manifestrepo"
	"freight/internal/adapters/out/postgres/routingrepo"
	"freight/internal/adapters/out/postgres/waybillrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&waybillrepo.WaybillDTO{},
		&manifestrepo.ManifestDTO{},
		&inventoryrepo.ItemDTO{},
		&routingrepo.AssociationDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE waybills, manifests, inventory_items, partner_associations").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.WaybillRepository(), "First instance should provide waybill repository")
	suite.NotNil(uow1.ManifestRepository(), "First instance should provide manifest repository")
	suite.NotNil(uow2.InventoryRepository(), "Second instance should provide inventory repository")
	suite.NotNil(uow2.RoutingRepository(), "Second instance should provide routing repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWaybill := createTestWaybill("AWB-1001")

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add waybill within transaction
	err = uow.WaybillRepository().Add(ctx, testWaybill)
	suite.Require().NoError(err)

	// Verify waybill exists within transaction
	retrieved, err := uow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().NoError(err)
	suite.Equal(testWaybill.ID(), retrieved.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify waybill persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().NoError(err)
	suite.Equal(testWaybill.ID(), retrieved.ID())
}

// TestUnitOfWork_DispatchCascade verifies the dispatch workflow: the manifest
// and every member waybill change status atomically in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchCascade() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Assemble a draft manifest with two pending waybills
	first := createTestWaybill("AWB-2001")
	second := createTestWaybill("AWB-2002")
	testManifest := createTestManifest("M-2001")
	suite.Require().NoError(testManifest.AddWaybill(first))
	suite.Require().NoError(testManifest.AddWaybill(second))

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.WaybillRepository().Add(ctx, first))
	suite.Require().NoError(uow.WaybillRepository().Add(ctx, second))
	suite.Require().NoError(uow.ManifestRepository().Add(ctx, testManifest))

	// Dispatch cascade: Draft → Dispatched, members Pending → In Transit
	members, err := uow.WaybillRepository().GetAllByIDs(ctx, testManifest.WaybillIDs())
	suite.Require().NoError(err)

	err = services.NewManifestDispatcher().Dispatch(testManifest, members)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ManifestRepository().Update(ctx, testManifest))
	for _, member := range members {
		suite.Require().NoError(uow.WaybillRepository().Update(ctx, member))
	}

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the cascade persisted atomically
	newUow := suite.factory.Create()

	retrievedManifest, err := newUow.ManifestRepository().Get(ctx, testManifest.ID())
	suite.Require().NoError(err)
	suite.Equal(manifest.StatusDispatched, retrievedManifest.Status())

	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		retrieved, getErr := newUow.WaybillRepository().Get(ctx, id)
		suite.Require().NoError(getErr)
		suite.Equal(waybill.StatusInTransit, retrieved.Status())
	}
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWaybill := createTestWaybill("AWB-3001")
	testManifest := createTestManifest("M-3001")

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.WaybillRepository().Add(ctx, testWaybill)
	suite.Require().NoError(err)

	err = uow.ManifestRepository().Add(ctx, testManifest)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().NoError(err)

	_, err = uow.ManifestRepository().Get(ctx, testManifest.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().Error(err, "Waybill should not exist after rollback")

	_, err = newUow.ManifestRepository().Get(ctx, testManifest.ID())
	suite.Require().Error(err, "Manifest should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	waybill1 := createTestWaybill("AWB-4001")
	waybill2 := createTestWaybill("AWB-4002")

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different waybills in each transaction
	err = uow1.WaybillRepository().Add(ctx, waybill1)
	suite.Require().NoError(err)

	err = uow2.WaybillRepository().Add(ctx, waybill2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.WaybillRepository().Get(ctx, waybill1.ID())
	suite.Require().NoError(err, "UOW1 should see waybill1")

	_, err = uow1.WaybillRepository().Get(ctx, waybill2.ID())
	suite.Require().Error(err, "UOW1 should not see waybill2")

	_, err = uow2.WaybillRepository().Get(ctx, waybill2.ID())
	suite.Require().NoError(err, "UOW2 should see waybill2")

	_, err = uow2.WaybillRepository().Get(ctx, waybill1.ID())
	suite.Require().Error(err, "UOW2 should not see waybill1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only waybill1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.WaybillRepository().Get(ctx, waybill1.ID())
	suite.Require().NoError(err, "Waybill1 should persist after commit")

	_, err = newUow.WaybillRepository().Get(ctx, waybill2.ID())
	suite.Require().Error(err, "Waybill2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWaybill := createTestWaybill("AWB-5001")

	// Add waybill without beginning transaction (should auto-commit)
	err := uow.WaybillRepository().Add(ctx, testWaybill)
	suite.Require().NoError(err)

	// Verify waybill persists immediately
	retrieved, err := uow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().NoError(err)
	suite.Equal(testWaybill.ID(), retrieved.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.WaybillRepository().Get(ctx, testWaybill.ID())
	suite.Require().NoError(err)
	suite.Equal(testWaybill.ID(), retrieved.ID())
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial waybill outside transaction
	existing := createTestWaybill("AWB-6001")
	err := uow.WaybillRepository().Add(ctx, existing)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add valid entities
	newWaybill := createTestWaybill("AWB-6002")
	newManifest := createTestManifest("M-6001")

	err = uow.WaybillRepository().Add(ctx, newWaybill)
	suite.Require().NoError(err)
	err = uow.ManifestRepository().Add(ctx, newManifest)
	suite.Require().NoError(err)

	// Try to reuse an existing waybill number (should fail)
	duplicate := createTestWaybill("AWB-6001")
	err = uow.WaybillRepository().Add(ctx, duplicate)
	suite.Require().Error(err, "Adding duplicate waybill number should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing waybill should still exist (was added before transaction)
	_, err = newUow.WaybillRepository().Get(ctx, existing.ID())
	suite.Require().NoError(err, "Existing waybill should still exist")

	// New entities should not exist (transaction was rolled back)
	_, err = newUow.WaybillRepository().Get(ctx, newWaybill.ID())
	suite.Require().Error(err, "New waybill should not exist after rollback")

	_, err = newUow.ManifestRepository().Get(ctx, newManifest.ID())
	suite.Require().Error(err, "New manifest should not exist after rollback")
}

// TestUnitOfWork_VerificationWorkflow tests the hub receiving flow: dispatch,
// scan boxes, then save verification, each step in its own transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_VerificationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testWaybill := createTestWaybill("AWB-7001")
	testManifest := createTestManifest("M-7001")
	suite.Require().NoError(testManifest.AddWaybill(testWaybill))

	// Dispatch in one transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WaybillRepository().Add(ctx, testWaybill))
	suite.Require().NoError(uow.ManifestRepository().Add(ctx, testManifest))

	members, err := uow.WaybillRepository().GetAllByIDs(ctx, testManifest.WaybillIDs())
	suite.Require().NoError(err)
	suite.Require().NoError(services.NewManifestDispatcher().Dispatch(testManifest, members))
	suite.Require().NoError(uow.ManifestRepository().Update(ctx, testManifest))
	for _, member := range members {
		suite.Require().NoError(uow.WaybillRepository().Update(ctx, member))
	}
	suite.Require().NoError(uow.Commit(ctx))

	// Verify both boxes in a second transaction
	verifyUow := suite.factory.Create()
	err = verifyUow.Begin(ctx)
	suite.Require().NoError(err)

	loadedManifest, err := verifyUow.ManifestRepository().Get(ctx, testManifest.ID())
	suite.Require().NoError(err)
	loadedMembers, err := verifyUow.WaybillRepository().GetAllByIDs(ctx, loadedManifest.WaybillIDs())
	suite.Require().NoError(err)

	verifier := services.NewBoxVerifier()
	expected, err := verifier.ExpectedBoxes(loadedManifest, loadedMembers)
	suite.Require().NoError(err)
	suite.Require().Len(expected, 2)

	for _, box := range expected {
		suite.Require().NoError(verifier.VerifyBox(loadedManifest, loadedMembers, box.BoxID))
	}
	suite.Require().NoError(verifier.SaveVerification(loadedManifest, loadedMembers))
	suite.Require().NoError(verifyUow.ManifestRepository().Update(ctx, loadedManifest))
	suite.Require().NoError(verifyUow.Commit(ctx))

	// Fully scanned manifest lands in Received
	finalUow := suite.factory.Create()
	final, err := finalUow.ManifestRepository().Get(ctx, testManifest.ID())
	suite.Require().NoError(err)
	suite.Equal(manifest.StatusReceived, final.Status())
	suite.Len(final.VerifiedBoxIDs(), 2)
}

// createTestWaybill creates a valid pending waybill for testing purposes.
func createTestWaybill(number string) *waybill.Waybill {
	shippingDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	testWaybill, _ := waybill.NewWaybill(
		kernel.NewUUID(), number, "P1", 2, 12.5,
		"Pune", "Maharashtra", shippingDate, nil,
	)
	return testWaybill
}

// createTestManifest creates a valid draft manifest for testing purposes.
func createTestManifest(manifestNo string) *manifest.Manifest {
	date := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	testManifest, _ := manifest.NewManifest(
		kernel.NewUUID(), manifestNo, date, manifest.OriginBooking,
		"MH12AB1234", "S. Patil", "9800000000", "P1", "",
	)
	return testManifest
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
