// Package http exposes the engine's operations to the presentation
// collaborators over Echo. The adapter translates between wire DTOs and
// commands/queries; business rules never live here.
package http

import (
	"io"
	"net/http"
	"strconv"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/application/usecases/snapshot"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/routing"
	"freight/internal/core/domain/model/waybill"

	"github.com/labstack/echo/v4"
)

const (
	partnerCodeHeader = "X-Partner-Code"
	partnerRoleHeader = "X-Partner-Role"
)

// CommandHandlers bundles the write-side use cases the server exposes.
type CommandHandlers struct {
	CreateWaybill             commands.CreateWaybillCommandHandler
	TransitionWaybillStatus   commands.TransitionWaybillStatusCommandHandler
	DeleteWaybill             commands.DeleteWaybillCommandHandler
	CreateManifest            commands.CreateManifestCommandHandler
	AddWaybillToManifest      commands.AddWaybillToManifestCommandHandler
	RemoveWaybillFromManifest commands.RemoveWaybillFromManifestCommandHandler
	DispatchManifest          commands.DispatchManifestCommandHandler
	VerifyBox                 commands.VerifyBoxCommandHandler
	SaveVerification          commands.SaveVerificationCommandHandler
	AllocateInventoryRange    commands.AllocateInventoryRangeCommandHandler
	ConsumeInventory          commands.ConsumeInventoryCommandHandler
	SetPartnerAssociation     commands.SetPartnerAssociationCommandHandler
}

// QueryHandlers bundles the read-side use cases the server exposes.
type QueryHandlers struct {
	GetWaybill             queries.GetWaybillQueryHandler
	ListWaybills           queries.ListWaybillsQueryHandler
	ListWaybillsByManifest queries.ListWaybillsByManifestQueryHandler
	ListManifests          queries.ListManifestsQueryHandler
	ExpectedBoxes          queries.ExpectedBoxesQueryHandler
	Shortage               queries.ShortageQueryHandler
	ListAvailableInventory queries.ListAvailableInventoryQueryHandler
	GetPartnerAssociation  queries.GetPartnerAssociationQueryHandler
	LookupRate             queries.LookupRateQueryHandler
}

// Server wires the HTTP surface to the application layer.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	exporter snapshot.Exporter
	importer snapshot.Importer
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	exporter snapshot.Exporter,
	importer snapshot.Importer,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		exporter: exporter,
		importer: importer,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	v1 := e.Group("/api/v1")

	v1.POST("/waybills", s.CreateWaybill)
	v1.GET("/waybills", s.ListWaybills)
	v1.GET("/waybills/:waybillId", s.GetWaybill)
	v1.POST("/waybills/:waybillId/status", s.TransitionWaybillStatus)
	v1.DELETE("/waybills/:waybillId", s.DeleteWaybill)

	v1.POST("/manifests", s.CreateManifest)
	v1.GET("/manifests", s.ListManifests)
	v1.GET("/manifests/:manifestId/waybills", s.ListWaybillsByManifest)
	v1.POST("/manifests/:manifestId/waybills", s.AddWaybillToManifest)
	v1.DELETE("/manifests/:manifestId/waybills/:waybillId", s.RemoveWaybillFromManifest)
	v1.POST("/manifests/:manifestId/dispatch", s.DispatchManifest)
	v1.GET("/manifests/:manifestId/boxes", s.ExpectedBoxes)
	v1.GET("/manifests/:manifestId/shortage", s.Shortage)
	v1.POST("/manifests/:manifestId/verified-boxes", s.VerifyBox)
	v1.POST("/manifests/:manifestId/verification", s.SaveVerification)

	v1.POST("/inventory/ranges", s.AllocateInventoryRange)
	v1.POST("/inventory/consume", s.ConsumeInventory)
	v1.GET("/inventory", s.ListAvailableInventory)

	v1.PUT("/associations", s.SetPartnerAssociation)
	v1.GET("/associations/:associationType/:fromPartnerCode", s.GetPartnerAssociation)

	v1.GET("/rates", s.LookupRate)

	v1.GET("/snapshot", s.ExportSnapshot)
	v1.PUT("/snapshot", s.ImportSnapshot)
}

// actorFromRequest builds the acting partner context from the identity
// headers set by the session collaborator in front of this service.
func actorFromRequest(ctx echo.Context) (kernel.ActorContext, error) {
	role, err := kernel.RoleFromString(ctx.Request().Header.Get(partnerRoleHeader))
	if err != nil {
		return kernel.ActorContext{}, err
	}

	return kernel.NewActorContext(ctx.Request().Header.Get(partnerCodeHeader), role)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func readBody(ctx echo.Context) ([]byte, error) {
	defer func() { _ = ctx.Request().Body.Close() }()
	return io.ReadAll(ctx.Request().Body)
}

func fail(ctx echo.Context, err error) error {
	code, response := newErrorResponse(err)
	return ctx.JSON(code, response)
}

func reject(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: err.Error(),
	})
}

// CreateWaybill handles POST /api/v1/waybills.
func (s *Server) CreateWaybill(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	var request CreateWaybillRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	waybillID := kernel.NewUUID()
	cmd, err := commands.NewCreateWaybillCommand(
		waybillID,
		actor,
		request.WaybillNumber,
		request.NumberOfBoxes,
		request.PackageWeight,
		request.ReceiverCity,
		request.ReceiverState,
		request.ShippingDate,
		request.EWayBillExpiryDate,
		request.FromInventory,
	)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.CreateWaybill.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: waybillID.String()})
}

// GetWaybill handles GET /api/v1/waybills/:waybillId.
func (s *Server) GetWaybill(ctx echo.Context) error {
	waybillID, err := pathUUID(ctx, "waybillId")
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewGetWaybillQuery(waybillID)
	if err != nil {
		return reject(ctx, err)
	}

	response, err := s.queries.GetWaybill.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWaybillResponse(response))
}

// ListWaybills handles GET /api/v1/waybills.
func (s *Server) ListWaybills(ctx echo.Context) error {
	query := queries.NewListWaybillsQuery(ctx.QueryParam("partnerCode"))

	waybills, err := s.queries.ListWaybills.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWaybillResponses(waybills))
}

// TransitionWaybillStatus handles POST /api/v1/waybills/:waybillId/status.
func (s *Server) TransitionWaybillStatus(ctx echo.Context) error {
	waybillID, err := pathUUID(ctx, "waybillId")
	if err != nil {
		return reject(ctx, err)
	}

	var request TransitionWaybillStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	newStatus, err := waybill.StatusFromString(request.NewStatus)
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewTransitionWaybillStatusCommand(waybillID, newStatus, request.ReceivedBy, request.OccurredAt)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.TransitionWaybillStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWaybill handles DELETE /api/v1/waybills/:waybillId.
func (s *Server) DeleteWaybill(ctx echo.Context) error {
	waybillID, err := pathUUID(ctx, "waybillId")
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewDeleteWaybillCommand(waybillID)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.DeleteWaybill.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateManifest handles POST /api/v1/manifests.
func (s *Server) CreateManifest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	var request CreateManifestRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	origin, err := manifest.OriginFromString(request.Origin)
	if err != nil {
		return reject(ctx, err)
	}

	manifestID := kernel.NewUUID()
	cmd, err := commands.NewCreateManifestCommand(
		manifestID,
		actor,
		request.ManifestNo,
		request.Date,
		origin,
		request.VehicleNo,
		request.DriverName,
		request.DriverContact,
		request.DeliveryPartnerCode,
	)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.CreateManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: manifestID.String()})
}

// ListManifests handles GET /api/v1/manifests.
func (s *Server) ListManifests(ctx echo.Context) error {
	query := queries.NewListManifestsQuery(ctx.QueryParam("status"), ctx.QueryParam("origin"))

	manifests, err := s.queries.ListManifests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toManifestResponses(manifests))
}

// ListWaybillsByManifest handles GET /api/v1/manifests/:manifestId/waybills.
func (s *Server) ListWaybillsByManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewListWaybillsByManifestQuery(manifestID)
	if err != nil {
		return reject(ctx, err)
	}

	waybills, err := s.queries.ListWaybillsByManifest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWaybillResponses(waybills))
}

// AddWaybillToManifest handles POST /api/v1/manifests/:manifestId/waybills.
func (s *Server) AddWaybillToManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	var request AddWaybillToManifestRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewAddWaybillToManifestCommand(manifestID, request.WaybillNumber)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.AddWaybillToManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveWaybillFromManifest handles DELETE /api/v1/manifests/:manifestId/waybills/:waybillId.
func (s *Server) RemoveWaybillFromManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	waybillID, err := pathUUID(ctx, "waybillId")
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewRemoveWaybillFromManifestCommand(manifestID, waybillID)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.RemoveWaybillFromManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchManifest handles POST /api/v1/manifests/:manifestId/dispatch.
func (s *Server) DispatchManifest(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewDispatchManifestCommand(manifestID)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.DispatchManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExpectedBoxes handles GET /api/v1/manifests/:manifestId/boxes.
func (s *Server) ExpectedBoxes(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewExpectedBoxesQuery(manifestID)
	if err != nil {
		return reject(ctx, err)
	}

	boxes, err := s.queries.ExpectedBoxes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBoxResponses(boxes))
}

// Shortage handles GET /api/v1/manifests/:manifestId/shortage.
func (s *Server) Shortage(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewShortageQuery(manifestID)
	if err != nil {
		return reject(ctx, err)
	}

	missing, err := s.queries.Shortage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBoxResponses(missing))
}

// VerifyBox handles POST /api/v1/manifests/:manifestId/verified-boxes.
func (s *Server) VerifyBox(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	var request VerifyBoxRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyBoxCommand(manifestID, request.BoxID)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.VerifyBox.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveVerification handles POST /api/v1/manifests/:manifestId/verification.
func (s *Server) SaveVerification(ctx echo.Context) error {
	manifestID, err := pathUUID(ctx, "manifestId")
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewSaveVerificationCommand(manifestID)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.SaveVerification.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AllocateInventoryRange handles POST /api/v1/inventory/ranges.
func (s *Server) AllocateInventoryRange(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	var request AllocateInventoryRangeRequest
	if err = ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewAllocateInventoryRangeCommand(
		actor, request.CompanyCode, request.Prefix, request.Start, request.End,
	)
	if err != nil {
		return reject(ctx, err)
	}

	result, err := s.commands.AllocateInventoryRange.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAllocationResultResponse(result))
}

// ConsumeInventory handles POST /api/v1/inventory/consume.
func (s *Server) ConsumeInventory(ctx echo.Context) error {
	var request ConsumeInventoryRequest
	if err := ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewConsumeInventoryCommand(request.WaybillNumber)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.ConsumeInventory.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListAvailableInventory handles GET /api/v1/inventory.
func (s *Server) ListAvailableInventory(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	marketOnly, _ := strconv.ParseBool(ctx.QueryParam("marketOnly"))
	query, err := queries.NewListAvailableInventoryQuery(
		actor.PartnerCode(), ctx.QueryParam("companyCode"), marketOnly,
	)
	if err != nil {
		return reject(ctx, err)
	}

	items, err := s.queries.ListAvailableInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventoryItemResponses(items))
}

// SetPartnerAssociation handles PUT /api/v1/associations.
func (s *Server) SetPartnerAssociation(ctx echo.Context) error {
	var request SetPartnerAssociationRequest
	if err := ctx.Bind(&request); err != nil {
		return reject(ctx, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	associationType, err := routing.AssociationTypeFromString(request.AssociationType)
	if err != nil {
		return reject(ctx, err)
	}

	cmd, err := commands.NewSetPartnerAssociationCommand(
		associationType, request.FromPartnerCode, request.ToPartnerCode,
	)
	if err != nil {
		return reject(ctx, err)
	}

	if err = s.commands.SetPartnerAssociation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPartnerAssociation handles GET /api/v1/associations/:associationType/:fromPartnerCode.
func (s *Server) GetPartnerAssociation(ctx echo.Context) error {
	associationType, err := routing.AssociationTypeFromString(ctx.Param("associationType"))
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewGetPartnerAssociationQuery(associationType, ctx.Param("fromPartnerCode"))
	if err != nil {
		return reject(ctx, err)
	}

	response, err := s.queries.GetPartnerAssociation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssociationResponse{
		AssociationType: response.AssociationType,
		FromPartnerCode: response.FromPartnerCode,
		ToPartnerCode:   response.ToPartnerCode,
	})
}

// LookupRate handles GET /api/v1/rates.
func (s *Server) LookupRate(ctx echo.Context) error {
	weight, err := strconv.ParseFloat(ctx.QueryParam("weight"), 64)
	if err != nil {
		return reject(ctx, err)
	}

	query, err := queries.NewLookupRateQuery(ctx.QueryParam("partnerCode"), ctx.QueryParam("state"), weight)
	if err != nil {
		return reject(ctx, err)
	}

	response, err := s.queries.LookupRate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RateResponse{
		PartnerCode: response.PartnerCode,
		State:       response.State,
		Charge:      response.Charge,
	})
}

// ExportSnapshot handles GET /api/v1/snapshot.
func (s *Server) ExportSnapshot(ctx echo.Context) error {
	document, err := s.exporter.Export(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}

	encoded, err := document.Encode()
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, encoded)
}

// ImportSnapshot handles PUT /api/v1/snapshot.
func (s *Server) ImportSnapshot(ctx echo.Context) error {
	body, err := readBody(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	document, err := snapshot.DecodeDocument(body)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.importer.Import(ctx.Request().Context(), document); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
