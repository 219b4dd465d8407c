package commands

import (
	"errors"

	"pizzabot/internal/pkg/guard"
)

var ErrAdvanceKitchenCommandIsNotConstructed = errors.New(
	"AdvanceKitchenCommand must be created via NewAdvanceKitchenCommand constructor",
)

// AdvanceKitchenCommand triggers one step of the simulated kitchen: every
// order in an active kitchen status moves to its next stage. This is a
// parameterless batch command run periodically by the scheduler.
type AdvanceKitchenCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceKitchenCommand creates a command to advance all in-kitchen orders.
func NewAdvanceKitchenCommand() AdvanceKitchenCommand {
	return AdvanceKitchenCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AdvanceKitchenCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenCommandIsNotConstructed)
}
