package commands

import (
	"context"

	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// RevokeRoleCommandHandler handles role revocations. Only admins may revoke
// roles; the revocation itself is idempotent.
type RevokeRoleCommandHandler struct {
	uowFactory AccessUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewRevokeRoleCommandHandler creates a handler for role revocations.
func NewRevokeRoleCommandHandler(
	uowFactory AccessUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (RevokeRoleCommandHandler, error) {
	if uowFactory == nil {
		return RevokeRoleCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return RevokeRoleCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return RevokeRoleCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return RevokeRoleCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle processes the role revocation command.
func (h RevokeRoleCommandHandler) Handle(ctx context.Context, cmd RevokeRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	principals := uow.PrincipalRepository()
	if _, err := requireRole(ctx, principals, cmd.Actor(), principal.Admin); err != nil {
		return err
	}

	holder, err := principals.Get(ctx, cmd.Holder())
	if err != nil {
		return err
	}

	if err = holder.Revoke(cmd.Role()); err != nil {
		return err
	}

	if err = principals.Save(ctx, holder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:    ports.EventRoleRevoked,
		Kind:    cmd.Role().String(),
		Subject: cmd.Holder().String(),
		Actor:   cmd.Actor().String(),
		At:      h.clock.Now(),
	})
	return nil
}
