package http

import (
	"errors"
	"net/http"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/domain/model/product"
	"freightbid/internal/core/domain/model/transport"
	"freightbid/internal/generated/servers"
	"freightbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the generated ServerInterface. It translates HTTP
// requests into commands and queries and application errors back into
// HTTP status codes.
type Server struct {
	// Command handlers
	grantRoleHandler             commands.GrantRoleCommandHandler
	revokeRoleHandler            commands.RevokeRoleCommandHandler
	registerProductHandler       commands.RegisterProductCommandHandler
	updateProductHandler         commands.UpdateProductCommandHandler
	changeProductStatusHandler   commands.ChangeProductStatusCommandHandler
	createAuctionHandler         commands.CreateAuctionCommandHandler
	placeBidHandler              commands.PlaceBidCommandHandler
	updateBidHandler             commands.UpdateBidCommandHandler
	cancelBidHandler             commands.CancelBidCommandHandler
	completeAuctionHandler       commands.CompleteAuctionCommandHandler
	cancelAuctionHandler         commands.CancelAuctionCommandHandler
	createTransportHandler       commands.CreateTransportCommandHandler
	addCheckpointHandler         commands.AddCheckpointCommandHandler
	updateTransportStatusHandler commands.UpdateTransportStatusCommandHandler
	completeDeliveryHandler      commands.CompleteDeliveryCommandHandler
	confirmDeliveryHandler       commands.ConfirmDeliveryCommandHandler
	raiseDisputeHandler          commands.RaiseDisputeCommandHandler

	// Query handlers
	getActiveAuctionsHandler          queries.GetActiveAuctionsQueryHandler
	getAuctionHandler                 queries.GetAuctionQueryHandler
	getProductHandler                 queries.GetProductQueryHandler
	getProductsByProducerHandler      queries.GetProductsByProducerQueryHandler
	getProductsWithoutAuctionsHandler queries.GetProductsWithoutAuctionsQueryHandler
	getTransportHandler               queries.GetTransportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	grantRoleHandler commands.GrantRoleCommandHandler,
	revokeRoleHandler commands.RevokeRoleCommandHandler,
	registerProductHandler commands.RegisterProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	changeProductStatusHandler commands.ChangeProductStatusCommandHandler,
	createAuctionHandler commands.CreateAuctionCommandHandler,
	placeBidHandler commands.PlaceBidCommandHandler,
	updateBidHandler commands.UpdateBidCommandHandler,
	cancelBidHandler commands.CancelBidCommandHandler,
	completeAuctionHandler commands.CompleteAuctionCommandHandler,
	cancelAuctionHandler commands.CancelAuctionCommandHandler,
	createTransportHandler commands.CreateTransportCommandHandler,
	addCheckpointHandler commands.AddCheckpointCommandHandler,
	updateTransportStatusHandler commands.UpdateTransportStatusCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	raiseDisputeHandler commands.RaiseDisputeCommandHandler,
	getActiveAuctionsHandler queries.GetActiveAuctionsQueryHandler,
	getAuctionHandler queries.GetAuctionQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductsByProducerHandler queries.GetProductsByProducerQueryHandler,
	getProductsWithoutAuctionsHandler queries.GetProductsWithoutAuctionsQueryHandler,
	getTransportHandler queries.GetTransportQueryHandler,
) *Server {
	return &Server{
		grantRoleHandler:                  grantRoleHandler,
		revokeRoleHandler:                 revokeRoleHandler,
		registerProductHandler:            registerProductHandler,
		updateProductHandler:              updateProductHandler,
		changeProductStatusHandler:        changeProductStatusHandler,
		createAuctionHandler:              createAuctionHandler,
		placeBidHandler:                   placeBidHandler,
		updateBidHandler:                  updateBidHandler,
		cancelBidHandler:                  cancelBidHandler,
		completeAuctionHandler:            completeAuctionHandler,
		cancelAuctionHandler:              cancelAuctionHandler,
		createTransportHandler:            createTransportHandler,
		addCheckpointHandler:              addCheckpointHandler,
		updateTransportStatusHandler:      updateTransportStatusHandler,
		completeDeliveryHandler:           completeDeliveryHandler,
		confirmDeliveryHandler:            confirmDeliveryHandler,
		raiseDisputeHandler:               raiseDisputeHandler,
		getActiveAuctionsHandler:          getActiveAuctionsHandler,
		getAuctionHandler:                 getAuctionHandler,
		getProductHandler:                 getProductHandler,
		getProductsByProducerHandler:      getProductsByProducerHandler,
		getProductsWithoutAuctionsHandler: getProductsWithoutAuctionsHandler,
		getTransportHandler:               getTransportHandler,
	}
}

// respondError maps application errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var (
		unauthorized *errs.UnauthorizedError
		notFound     *errs.ObjectNotFoundError
		conflict     *errs.StateConflictError
		required     *errs.ValueIsRequiredError
		invalid      *errs.ValueIsInvalidError
		outOfRange   *errs.ValueIsOutOfRangeError
	)

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &unauthorized):
		code = http.StatusForbidden
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &conflict):
		code = http.StatusConflict
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// actorID converts the gateway-supplied principal header into a domain UUID.
// A zero UUID is rejected, so an unauthenticated caller never reaches a handler.
func actorID(ctx echo.Context, principalID openapi_types.UUID) (kernel.UUID, bool) {
	actor, err := kernel.UUIDFromBytes(principalID[:])
	if err != nil {
		_ = badRequest(ctx, err)
		return kernel.UUID{}, false
	}
	return actor, true
}

func entityID(ctx echo.Context, name string, value int64) (kernel.EntityID, bool) {
	id, err := kernel.NewEntityID(value)
	if err != nil {
		_ = badRequest(ctx, errs.NewValueIsInvalidErrorWithCause(name, err))
		return kernel.NoEntityID(), false
	}
	return id, true
}

func pageOffset(offset *int) int {
	if offset == nil {
		return 0
	}
	return *offset
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GrantRole handles POST /roles/grant - grants a role to a principal.
func (s *Server) GrantRole(ctx echo.Context, params servers.GrantRoleParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	var change servers.RoleChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, err)
	}

	grantee, err := kernel.UUIDFromBytes(change.PrincipalId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := principal.RoleFromString(string(change.Role))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewGrantRoleCommand(actor, grantee, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.grantRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeRole handles POST /roles/revoke - revokes a role from a principal.
func (s *Server) RevokeRole(ctx echo.Context, params servers.RevokeRoleParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	var change servers.RoleChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, err)
	}

	holder, err := kernel.UUIDFromBytes(change.PrincipalId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := principal.RoleFromString(string(change.Role))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRevokeRoleCommand(actor, holder, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.revokeRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterProduct handles POST /products - registers a new product.
func (s *Server) RegisterProduct(ctx echo.Context, params servers.RegisterProductParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	unitPrice, err := kernel.NewMoney(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterProductCommand(actor, body.Name, body.Details, body.Quantity, unitPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	productID, err := s.registerProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Value()})
}

// UpdateProduct handles PUT /products/{productId} - updates mutable product fields.
func (s *Server) UpdateProduct(ctx echo.Context, productId int64, params servers.UpdateProductParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "productId", productId)
	if !ok {
		return nil
	}

	var body servers.ProductUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	unitPrice, err := kernel.NewMoney(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(actor, id, strOrEmpty(body.Quantity), unitPrice, strOrEmpty(body.Details))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeProductStatus handles POST /products/{productId}/status.
func (s *Server) ChangeProductStatus(ctx echo.Context, productId int64, params servers.ChangeProductStatusParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "productId", productId)
	if !ok {
		return nil
	}

	var body servers.ProductStatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	status, err := product.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeProductStatusCommand(actor, id, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.changeProductStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProduct handles GET /products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId int64, params servers.GetProductParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	id, ok := entityID(ctx, "productId", productId)
	if !ok {
		return nil
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(p))
}

// GetProducerProducts handles GET /producers/{producerId}/products.
func (s *Server) GetProducerProducts(ctx echo.Context, producerId openapi_types.UUID, params servers.GetProducerProductsParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	producer, err := kernel.UUIDFromBytes(producerId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetProductsByProducerQuery(producer, pageOffset(params.Offset), params.Count)
	if err != nil {
		return badRequest(ctx, err)
	}

	products, err := s.getProductsByProducerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productToResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnauctionedProducts handles GET /products/unauctioned.
func (s *Server) GetUnauctionedProducts(ctx echo.Context, params servers.GetUnauctionedProductsParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	query, err := queries.NewGetProductsWithoutAuctionsQuery(pageOffset(params.Offset), params.Count)
	if err != nil {
		return badRequest(ctx, err)
	}

	products, err := s.getProductsWithoutAuctionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productToResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAuction handles POST /auctions - opens a reverse auction for a product.
func (s *Server) CreateAuction(ctx echo.Context, params servers.CreateAuctionParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	var body servers.NewAuction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	productID, ok := entityID(ctx, "productId", body.ProductId)
	if !ok {
		return nil
	}

	startingPrice, err := kernel.NewMoney(body.StartingPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateAuctionCommand(
		actor,
		productID,
		body.Title,
		body.Description,
		time.Duration(body.DurationSeconds)*time.Second,
		body.Origin,
		body.Destination,
		startingPrice,
		strOrEmpty(body.SpecialRequirements),
		body.Weight,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	auctionID, err := s.createAuctionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: auctionID.Value()})
}

// GetActiveAuctions handles GET /auctions - lists auctions open for bidding.
func (s *Server) GetActiveAuctions(ctx echo.Context, params servers.GetActiveAuctionsParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	query, err := queries.NewGetActiveAuctionsQuery(pageOffset(params.Offset), params.Count)
	if err != nil {
		return badRequest(ctx, err)
	}

	auctions, err := s.getActiveAuctionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.AuctionSummary, len(auctions))
	for i, a := range auctions {
		response[i] = servers.AuctionSummary{
			Id:               a.ID.Value(),
			ProductId:        a.ProductID.Value(),
			ProducerId:       a.Producer.Bytes(),
			Title:            a.Title,
			Origin:           a.Origin,
			Destination:      a.Destination,
			Weight:           a.Weight,
			EndTime:          a.EndTime,
			StartingPrice:    a.StartingPrice.Amount(),
			CurrentLowestBid: a.CurrentLowestBid.Amount(),
			BidCount:         a.BidCount,
			Status:           a.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuction handles GET /auctions/{auctionId} - auction with its bid ledger.
func (s *Server) GetAuction(ctx echo.Context, auctionId int64, params servers.GetAuctionParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	query, err := queries.NewGetAuctionQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	a, err := s.getAuctionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	bids := make([]servers.Bid, len(a.Bids))
	for i, b := range a.Bids {
		bids[i] = servers.Bid{
			Seq:       b.Seq,
			CarrierId: b.Carrier.Bytes(),
			Amount:    b.Amount.Amount(),
			Notes:     optString(b.Notes),
			Timestamp: b.Timestamp,
			Active:    b.Active,
		}
	}

	response := servers.Auction{
		Id:                  a.ID.Value(),
		ProductId:           a.ProductID.Value(),
		ProducerId:          a.Producer.Bytes(),
		Title:               a.Title,
		Description:         a.Description,
		Origin:              a.Origin,
		Destination:         a.Destination,
		Weight:              a.Weight,
		SpecialRequirements: optString(a.SpecialRequirements),
		StartTime:           a.StartTime,
		EndTime:             a.EndTime,
		StartingPrice:       a.StartingPrice.Amount(),
		CurrentLowestBid:    a.CurrentLowestBid.Amount(),
		BidCount:            a.BidCount,
		Status:              a.Status.String(),
		LastUpdated:         a.LastUpdated,
		Bids:                bids,
	}
	if !a.LowestBidder.IsZero() {
		bidder := a.LowestBidder.Bytes()
		response.LowestBidder = &bidder
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceBid handles POST /auctions/{auctionId}/bids.
func (s *Server) PlaceBid(ctx echo.Context, auctionId int64, params servers.PlaceBidParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	var body servers.NewBid
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceBidCommand(actor, id, amount, strOrEmpty(body.Notes))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.placeBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateBid handles PUT /auctions/{auctionId}/bids - supersedes the caller's bid.
func (s *Server) UpdateBid(ctx echo.Context, auctionId int64, params servers.UpdateBidParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	var body servers.NewBid
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateBidCommand(actor, id, amount, strOrEmpty(body.Notes))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelBid handles DELETE /auctions/{auctionId}/bids - withdraws the caller's bid.
func (s *Server) CancelBid(ctx echo.Context, auctionId int64, params servers.CancelBidParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelBidCommand(actor, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.cancelBidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAuction handles POST /auctions/{auctionId}/complete.
func (s *Server) CompleteAuction(ctx echo.Context, auctionId int64, params servers.CompleteAuctionParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteAuctionCommand(actor, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.completeAuctionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelAuction handles POST /auctions/{auctionId}/cancel.
func (s *Server) CancelAuction(ctx echo.Context, auctionId int64, params servers.CancelAuctionParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "auctionId", auctionId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelAuctionCommand(actor, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.cancelAuctionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTransport handles POST /transports - the winning carrier opens a transport record.
func (s *Server) CreateTransport(ctx echo.Context, params servers.CreateTransportParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	var body servers.NewTransport
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	auctionID, ok := entityID(ctx, "auctionId", body.AuctionId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCreateTransportCommand(actor, auctionID, body.EstimatedDeliveryTime)
	if err != nil {
		return badRequest(ctx, err)
	}

	transportID, err := s.createTransportHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: transportID.Value()})
}

// GetTransport handles GET /transports/{transportId}.
func (s *Server) GetTransport(ctx echo.Context, transportId int64, params servers.GetTransportParams) error {
	if _, ok := actorID(ctx, params.XPrincipalId); !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	query, err := queries.NewGetTransportQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	t, err := s.getTransportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	checkpoints := make([]servers.Checkpoint, len(t.Checkpoints))
	for i, cp := range t.Checkpoints {
		checkpoints[i] = servers.Checkpoint{
			Seq:        cp.Seq,
			Location:   cp.Location,
			Timestamp:  cp.Timestamp,
			Notes:      optString(cp.Notes),
			RecordedBy: cp.RecordedBy.Bytes(),
		}
	}

	response := servers.Transport{
		Id:                    t.ID.Value(),
		AuctionId:             t.AuctionID.Value(),
		ProductId:             t.ProductID.Value(),
		CarrierId:             t.Carrier.Bytes(),
		ProducerId:            t.Producer.Bytes(),
		Origin:                t.Origin,
		Destination:           t.Destination,
		StartTime:             t.StartTime,
		EstimatedDeliveryTime: t.EstimatedDeliveryTime,
		Status:                t.Status.String(),
		ProducerConfirmed:     t.ProducerConfirmed,
		Checkpoints:           checkpoints,
	}
	if !t.ActualDeliveryTime.IsZero() {
		actual := t.ActualDeliveryTime
		response.ActualDeliveryTime = &actual
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCheckpoint handles POST /transports/{transportId}/checkpoints.
func (s *Server) AddCheckpoint(ctx echo.Context, transportId int64, params servers.AddCheckpointParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	var body servers.NewCheckpoint
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddCheckpointCommand(actor, id, body.Location, strOrEmpty(body.Notes))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.addCheckpointHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTransportStatus handles POST /transports/{transportId}/status.
func (s *Server) UpdateTransportStatus(ctx echo.Context, transportId int64, params servers.UpdateTransportStatusParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	var body servers.TransportStatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	status, err := transport.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateTransportStatusCommand(actor, id, status, strOrEmpty(body.Notes))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateTransportStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /transports/{transportId}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, transportId int64, params servers.CompleteDeliveryParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	var body servers.DeliveryCompletion
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actor, id, body.FinalLocation)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /transports/{transportId}/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, transportId int64, params servers.ConfirmDeliveryParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewConfirmDeliveryCommand(actor, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RaiseDispute handles POST /transports/{transportId}/dispute.
func (s *Server) RaiseDispute(ctx echo.Context, transportId int64, params servers.RaiseDisputeParams) error {
	actor, ok := actorID(ctx, params.XPrincipalId)
	if !ok {
		return nil
	}

	id, ok := entityID(ctx, "transportId", transportId)
	if !ok {
		return nil
	}

	var body servers.Dispute
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRaiseDisputeCommand(actor, id, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.raiseDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func productToResponse(p queries.GetProductQueryResponse) servers.Product {
	response := servers.Product{
		Id:          p.ID.Value(),
		ProducerId:  p.Producer.Bytes(),
		Name:        p.Name,
		Quantity:    p.Quantity,
		Details:     p.Details,
		UnitPrice:   p.UnitPrice.Amount(),
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
		LastUpdated: p.LastUpdated,
	}
	if !p.LinkedAuctionID.IsZero() {
		linked := p.LinkedAuctionID.Value()
		response.LinkedAuctionId = &linked
	}
	return response
}
