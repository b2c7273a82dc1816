package commands

import (
	"errors"

	"freightbid/internal/pkg/guard"
)

// ErrSettleExpiredAuctionsCommandIsNotConstructed is returned when the
// command was not created through the constructor.
var ErrSettleExpiredAuctionsCommandIsNotConstructed = errors.New(
	"SettleExpiredAuctionsCommand must be created via NewSettleExpiredAuctionsCommand constructor",
)

// SettleExpiredAuctionsCommand triggers a sweep that completes every Active
// auction whose deadline has passed. It carries no actor: the sweep runs on a
// schedule, not on behalf of a principal.
type SettleExpiredAuctionsCommand struct {
	guard guard.ConstructorGuard
}

// NewSettleExpiredAuctionsCommand creates a sweep command.
func NewSettleExpiredAuctionsCommand() (SettleExpiredAuctionsCommand, error) {
	return SettleExpiredAuctionsCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleExpiredAuctionsCommand) Validate() error {
	return c.guard.Validate(ErrSettleExpiredAuctionsCommandIsNotConstructed)
}
