package commands

// DispatchPendingOrderCommand triggers one dispatch cycle: the oldest
// pending order is matched with the nearest free courier. Carries no data;
// the handler discovers the work itself.
type DispatchPendingOrderCommand struct {
	// Intentionally empty. Commands carry data; this one is a trigger.
}

// NewDispatchPendingOrderCommand creates a dispatch trigger command.
func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{}
}

// Validate always succeeds since the command has no data to validate.
func (c DispatchPendingOrderCommand) Validate() error {
	return nil
}
