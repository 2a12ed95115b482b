package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/inventoryrepo"
	"freight/internal/adapters/out/postgres/manifestrepo"
	"freight/internal/adapters/out/postgres/raterepo"
	"freight/internal/adapters/out/postgres/waybillrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against a
// real PostgreSQL database seeded with raw SQL, the same access path the
// handlers themselves use.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&waybillrepo.WaybillDTO{},
		&manifestrepo.ManifestDTO{},
		&inventoryrepo.ItemDTO{},
		&raterepo.RateDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE waybills, manifests, inventory_items, rates").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedInventoryItem inserts one reserved number directly.
func (suite *QueriesIntegrationTestSuite) seedInventoryItem(number, partnerCode, companyCode string, isUsed bool) {
	err := suite.db.Exec(`
		INSERT INTO inventory_items (id, waybill_number, partner_code, company_code, is_used)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New(), number, partnerCode, companyCode, isUsed).Error
	suite.Require().NoError(err)
}

// seedWaybill inserts one pending waybill and returns its id.
func (suite *QueriesIntegrationTestSuite) seedWaybill(number string, boxes int, city string) kernel.UUID {
	id := kernel.NewUUID()
	err := suite.db.Exec(`
		INSERT INTO waybills (
			id, waybill_number, partner_code, number_of_boxes, package_weight,
			receiver_city, receiver_state, status, shipping_date, received_by
		) VALUES (?, ?, 'P1', ?, 10.0, ?, 'Maharashtra', 'Pending', ?, '')
	`, id.Bytes(), number, boxes, city, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).Error
	suite.Require().NoError(err)
	return id
}

// seedManifest inserts one manifest with the given membership and scans.
func (suite *QueriesIntegrationTestSuite) seedManifest(
	manifestNo, status string, waybillIDs []kernel.UUID, verifiedBoxIDs []string,
) kernel.UUID {
	id := kernel.NewUUID()
	members := make(pq.StringArray, 0, len(waybillIDs))
	for _, waybillID := range waybillIDs {
		members = append(members, waybillID.String())
	}
	scans := pq.StringArray(verifiedBoxIDs)
	if scans == nil {
		scans = pq.StringArray{}
	}

	err := suite.db.Exec(`
		INSERT INTO manifests (
			id, manifest_no, date, origin, status, waybill_ids, verified_box_ids,
			vehicle_no, driver_name, driver_contact, creator_partner_code, delivery_partner_code
		) VALUES (?, ?, ?, 'booking', ?, ?, ?, 'MH12AB1234', 'S. Patil', '9800000000', 'P1', '')
	`, id.Bytes(), manifestNo, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		status, members, scans).Error
	suite.Require().NoError(err)
	return id
}

// seedRate inserts one rate band.
func (suite *QueriesIntegrationTestSuite) seedRate(partnerCode, state string, from, to, charge float64) {
	err := suite.db.Exec(`
		INSERT INTO rates (partner_code, state, weight_from, weight_to, charge, payload)
		VALUES (?, ?, ?, ?, ?, '{}')
	`, partnerCode, state, from, to, charge).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestListAvailableInventory_DefaultScope_MarketOnly() {
	suite.seedInventoryItem("AWB-M1", "P1", "", false)
	suite.seedInventoryItem("AWB-C1", "P1", "C1", false)
	suite.seedInventoryItem("AWB-U1", "P1", "", true)
	suite.seedInventoryItem("AWB-X1", "P2", "", false)

	query, err := queries.NewListAvailableInventoryQuery("P1", "", false)
	suite.Require().NoError(err)

	items, err := queries.NewListAvailableInventoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	// No company selected: only the partner's unused market pool
	suite.Require().Len(items, 1)
	suite.Equal("AWB-M1", items[0].WaybillNumber)
	suite.Equal("P1", items[0].PartnerCode)
	suite.Empty(items[0].CompanyCode)
}

func (suite *QueriesIntegrationTestSuite) TestListAvailableInventory_CompanyScope_SeesPinnedAndMarket() {
	suite.seedInventoryItem("AWB-M1", "P1", "", false)
	suite.seedInventoryItem("AWB-C1", "P1", "C1", false)
	suite.seedInventoryItem("AWB-C2", "P1", "C2", false)

	query, err := queries.NewListAvailableInventoryQuery("P1", "C1", false)
	suite.Require().NoError(err)

	items, err := queries.NewListAvailableInventoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	// C1 sees its own pinned numbers plus the market pool, never C2's
	suite.Require().Len(items, 2)
	suite.Equal("AWB-C1", items[0].WaybillNumber)
	suite.Equal("AWB-M1", items[1].WaybillNumber)
}

func (suite *QueriesIntegrationTestSuite) TestListAvailableInventory_MarketOnly_IgnoresCompany() {
	suite.seedInventoryItem("AWB-M1", "P1", "", false)
	suite.seedInventoryItem("AWB-C1", "P1", "C1", false)

	query, err := queries.NewListAvailableInventoryQuery("P1", "C1", true)
	suite.Require().NoError(err)

	items, err := queries.NewListAvailableInventoryQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(items, 1)
	suite.Equal("AWB-M1", items[0].WaybillNumber)
}

func (suite *QueriesIntegrationTestSuite) TestLookupRate_NarrowestBandWins() {
	suite.seedRate("P1", "Maharashtra", 0, 100, 500)
	suite.seedRate("P1", "Maharashtra", 10, 25, 180)
	suite.seedRate("P1", "Karnataka", 10, 25, 210)

	query, err := queries.NewLookupRateQuery("P1", "Maharashtra", 15)
	suite.Require().NoError(err)

	response, err := queries.NewLookupRateQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("P1", response.PartnerCode)
	suite.Equal("Maharashtra", response.State)
	suite.InDelta(180, response.Charge, 0.001)
}

func (suite *QueriesIntegrationTestSuite) TestLookupRate_NoMatchingBand_ReturnsNotFoundError() {
	suite.seedRate("P1", "Maharashtra", 0, 25, 180)

	query, err := queries.NewLookupRateQuery("P1", "Maharashtra", 40)
	suite.Require().NoError(err)

	_, err = queries.NewLookupRateQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueriesIntegrationTestSuite) TestExpectedBoxes_DerivedInMemberOrderWithScanFlags() {
	firstID := suite.seedWaybill("AWB-1001", 2, "Pune")
	secondID := suite.seedWaybill("AWB-1002", 1, "Nagpur")
	manifestID := suite.seedManifest(
		"M-1001", "Dispatched",
		[]kernel.UUID{firstID, secondID},
		[]string{"AWB-1001-2"},
	)

	query, err := queries.NewExpectedBoxesQuery(manifestID)
	suite.Require().NoError(err)

	boxes, err := queries.NewExpectedBoxesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(boxes, 3)
	suite.Equal("AWB-1001-1", boxes[0].BoxID)
	suite.Equal("Pune", boxes[0].Destination)
	suite.False(boxes[0].Verified)
	suite.Equal("AWB-1001-2", boxes[1].BoxID)
	suite.True(boxes[1].Verified)
	suite.Equal("AWB-1002-1", boxes[2].BoxID)
	suite.Equal("Nagpur", boxes[2].Destination)
	suite.False(boxes[2].Verified)
}

func (suite *QueriesIntegrationTestSuite) TestShortage_ListsOnlyUnscannedBoxes() {
	firstID := suite.seedWaybill("AWB-2001", 2, "Pune")
	manifestID := suite.seedManifest(
		"M-2001", "Dispatched",
		[]kernel.UUID{firstID},
		[]string{"AWB-2001-1"},
	)

	query, err := queries.NewShortageQuery(manifestID)
	suite.Require().NoError(err)

	missing, err := queries.NewShortageQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(missing, 1)
	suite.Equal("AWB-2001-2", missing[0].BoxID)
}

func (suite *QueriesIntegrationTestSuite) TestGetWaybill_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetWaybillQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetWaybillQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueriesIntegrationTestSuite) TestListWaybillsByManifest_PreservesMembershipOrder() {
	firstID := suite.seedWaybill("AWB-3002", 1, "Pune")
	secondID := suite.seedWaybill("AWB-3001", 1, "Nagpur")
	// Membership order deliberately differs from waybill-number order
	manifestID := suite.seedManifest(
		"M-3001", "Draft",
		[]kernel.UUID{firstID, secondID},
		nil,
	)

	query, err := queries.NewListWaybillsByManifestQuery(manifestID)
	suite.Require().NoError(err)

	waybills, err := queries.NewListWaybillsByManifestQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(waybills, 2)
	suite.Equal("AWB-3002", waybills[0].WaybillNumber)
	suite.Equal("AWB-3001", waybills[1].WaybillNumber)
}

func (suite *QueriesIntegrationTestSuite) seedHubManifest(manifestNo, status string) {
	err := suite.db.Exec(`
		INSERT INTO manifests (
			id, manifest_no, date, origin, status, waybill_ids, verified_box_ids,
			vehicle_no, driver_name, driver_contact, creator_partner_code, delivery_partner_code
		) VALUES (?, ?, ?, 'hub', ?, ?, ?, 'MH14CD5678', 'A. Kulkarni', '9811111111', 'H1', 'D1')
	`, kernel.NewUUID().Bytes(), manifestNo, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		status, pq.StringArray{}, pq.StringArray{}).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestListManifests_FiltersByStatusAndOrigin() {
	memberID := suite.seedWaybill("AWB-5001", 2, "Pune")
	suite.seedManifest("M-5001", "Draft", []kernel.UUID{memberID}, nil)
	suite.seedManifest("M-5002", "Dispatched", []kernel.UUID{memberID}, []string{"AWB-5001-1"})
	suite.seedHubManifest("M-5003", "Draft")

	handler := queries.NewListManifestsQueryHandler(suite.db)

	all, err := handler.Handle(context.Background(), queries.NewListManifestsQuery("", ""))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("M-5001", all[0].ManifestNo)
	suite.Equal(1, all[0].WaybillCount)
	suite.Equal(0, all[0].VerifiedBoxCount)
	suite.Equal(1, all[1].VerifiedBoxCount)

	drafts, err := handler.Handle(context.Background(), queries.NewListManifestsQuery("Draft", ""))
	suite.Require().NoError(err)
	suite.Require().Len(drafts, 2)

	hubDrafts, err := handler.Handle(context.Background(), queries.NewListManifestsQuery("Draft", "hub"))
	suite.Require().NoError(err)
	suite.Require().Len(hubDrafts, 1)
	suite.Equal("M-5003", hubDrafts[0].ManifestNo)
	suite.Equal("D1", hubDrafts[0].DeliveryPartnerCode)
}

// seedWaybillWithExpiry inserts one waybill with an explicit status and
// e-way bill expiry date.
func (suite *QueriesIntegrationTestSuite) seedWaybillWithExpiry(number, status string, expiry time.Time) {
	err := suite.db.Exec(`
		INSERT INTO waybills (
			id, waybill_number, partner_code, number_of_boxes, package_weight,
			receiver_city, receiver_state, status, shipping_date, received_by, eway_expiry_date
		) VALUES (?, ?, 'P1', 1, 10.0, 'Pune', 'Maharashtra', ?, ?, '', ?)
	`, kernel.NewUUID().Bytes(), number, status, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), expiry).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TestListExpiredEWayBills_OnlyInFlightPastCutoff() {
	cutoff := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.seedWaybillWithExpiry("AWB-4001", "In Transit", cutoff.AddDate(0, 0, -3))
	suite.seedWaybillWithExpiry("AWB-4002", "In Transit", cutoff.AddDate(0, 0, 2))
	suite.seedWaybillWithExpiry("AWB-4003", "Delivered", cutoff.AddDate(0, 0, -5))
	suite.seedWaybillWithExpiry("AWB-4004", "Cancelled", cutoff.AddDate(0, 0, -5))
	// No expiry date at all stays out of the sweep
	suite.seedWaybill("AWB-4005", 1, "Pune")

	query, err := queries.NewListExpiredEWayBillsQuery(cutoff)
	suite.Require().NoError(err)

	expired, err := queries.NewListExpiredEWayBillsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(expired, 1)
	suite.Equal("AWB-4001", expired[0].WaybillNumber)
	suite.Equal("P1", expired[0].PartnerCode)
	suite.Equal("In Transit", expired[0].Status)
	suite.True(expired[0].EWayBillExpiryDate.Before(cutoff))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
