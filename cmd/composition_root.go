package cmd

import (
	"context"

	"freightbid/internal/adapters/out/postgres"
	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets
// its own unit of work factory so concurrent requests never share a
// transaction.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, clock ports.Clock, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		publisher:  publisher,
	}
}

func (c *CompositionRoot) accessUoWFactory() commands.AccessUoWFactory {
	return FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) auctionUoWFactory() commands.AuctionUoWFactory {
	return FuncAuctionUoWFactory(func() commands.AuctionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transportUoWFactory() commands.TransportUoWFactory {
	return FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGrantRoleCommandHandler() (commands.GrantRoleCommandHandler, error) {
	return commands.NewGrantRoleCommandHandler(c.accessUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateRevokeRoleCommandHandler() (commands.RevokeRoleCommandHandler, error) {
	return commands.NewRevokeRoleCommandHandler(c.accessUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() (commands.RegisterProductCommandHandler, error) {
	return commands.NewRegisterProductCommandHandler(c.productUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() (commands.UpdateProductCommandHandler, error) {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateChangeProductStatusCommandHandler() (commands.ChangeProductStatusCommandHandler, error) {
	return commands.NewChangeProductStatusCommandHandler(c.productUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCreateAuctionCommandHandler() (commands.CreateAuctionCommandHandler, error) {
	return commands.NewCreateAuctionCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() (commands.PlaceBidCommandHandler, error) {
	return commands.NewPlaceBidCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateUpdateBidCommandHandler() (commands.UpdateBidCommandHandler, error) {
	return commands.NewUpdateBidCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCancelBidCommandHandler() (commands.CancelBidCommandHandler, error) {
	return commands.NewCancelBidCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCompleteAuctionCommandHandler() (commands.CompleteAuctionCommandHandler, error) {
	return commands.NewCompleteAuctionCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCancelAuctionCommandHandler() (commands.CancelAuctionCommandHandler, error) {
	return commands.NewCancelAuctionCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateSettleExpiredAuctionsCommandHandler() (commands.SettleExpiredAuctionsCommandHandler, error) {
	return commands.NewSettleExpiredAuctionsCommandHandler(c.auctionUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCreateTransportCommandHandler() (commands.CreateTransportCommandHandler, error) {
	return commands.NewCreateTransportCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateAddCheckpointCommandHandler() (commands.AddCheckpointCommandHandler, error) {
	return commands.NewAddCheckpointCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateUpdateTransportStatusCommandHandler() (commands.UpdateTransportStatusCommandHandler, error) {
	return commands.NewUpdateTransportStatusCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() (commands.CompleteDeliveryCommandHandler, error) {
	return commands.NewCompleteDeliveryCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() (commands.ConfirmDeliveryCommandHandler, error) {
	return commands.NewConfirmDeliveryCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateRaiseDisputeCommandHandler() (commands.RaiseDisputeCommandHandler, error) {
	return commands.NewRaiseDisputeCommandHandler(c.transportUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateGetActiveAuctionsQueryHandler() queries.GetActiveAuctionsQueryHandler {
	return queries.NewGetActiveAuctionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuctionQueryHandler() queries.GetAuctionQueryHandler {
	return queries.NewGetAuctionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsByProducerQueryHandler() queries.GetProductsByProducerQueryHandler {
	return queries.NewGetProductsByProducerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsWithoutAuctionsQueryHandler() queries.GetProductsWithoutAuctionsQueryHandler {
	return queries.NewGetProductsWithoutAuctionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransportQueryHandler() queries.GetTransportQueryHandler {
	return queries.NewGetTransportQueryHandler(c.gormDB)
}

// SeedDeployer grants the configured deployer principal the Admin and
// Producer roles. Role administration requires an existing admin, so the
// first one has to be planted outside the command path. The grant is
// idempotent and safe to run on every start.
func (c *CompositionRoot) SeedDeployer(ctx context.Context, deployerID string) error {
	id, err := kernel.UUIDFromString(deployerID)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deployer, err := uow.PrincipalRepository().Get(ctx, id)
	if err != nil {
		return err
	}

	if err := deployer.Grant(principal.Admin); err != nil {
		return err
	}
	if err := deployer.Grant(principal.Producer); err != nil {
		return err
	}

	if err := uow.PrincipalRepository().Save(ctx, deployer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncAuctionUoWFactory func() commands.AuctionUoW

func (f FuncAuctionUoWFactory) Create() commands.AuctionUoW {
	return f()
}

type FuncTransportUoWFactory func() commands.TransportUoW

func (f FuncTransportUoWFactory) Create() commands.TransportUoW {
	return f()
}
