package commands

import (
	"context"

	"freightbid/internal/core/domain/model/principal"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// GrantRoleCommandHandler handles role grants. Only admins may grant roles;
// the grant itself is idempotent.
type GrantRoleCommandHandler struct {
	uowFactory AccessUoWFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
}

// NewGrantRoleCommandHandler creates a handler for role grants.
func NewGrantRoleCommandHandler(
	uowFactory AccessUoWFactory, clock ports.Clock, publisher ports.EventPublisher,
) (GrantRoleCommandHandler, error) {
	if uowFactory == nil {
		return GrantRoleCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if clock == nil {
		return GrantRoleCommandHandler{}, errs.NewValueIsRequiredError("clock")
	}
	if publisher == nil {
		return GrantRoleCommandHandler{}, errs.NewValueIsRequiredError("publisher")
	}
	return GrantRoleCommandHandler{uowFactory: uowFactory, clock: clock, publisher: publisher}, nil
}

// Handle processes the role grant command.
func (h GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) error {
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

	grantee, err := principals.Get(ctx, cmd.Grantee())
	if err != nil {
		return err
	}

	if err = grantee.Grant(cmd.Role()); err != nil {
		return err
	}

	if err = principals.Save(ctx, grantee); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Event{
		Name:    ports.EventRoleGranted,
		Kind:    cmd.Role().String(),
		Subject: cmd.Grantee().String(),
		Actor:   cmd.Actor().String(),
		At:      h.clock.Now(),
	})
	return nil
}
