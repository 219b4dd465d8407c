// Package order contains the order aggregate and its value objects.
//
// An Order owns its line items (Item) and its append-only status history
// (Update). The aggregate maintains the invariant that the order's current
// status always equals the status of the most recently appended Update: the
// only way to change the status is SetStatus, which does both in one step.
//
// The status progression
//
//	draft -> placed -> preparing -> baking -> out_for_delivery -> delivered
//	                                       \-> ready_for_pickup
//
// with cancelled reachable from any non-terminal state is advisory: SetStatus
// accepts any member of the closed status set from any state. Callers that
// want the linear kitchen flow use Status.NextStage.
//
// Identifiers are integer surrogate keys assigned by the persistence layer;
// entities created in memory carry a zero id until stored.
package order
