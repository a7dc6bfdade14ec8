package ports

// Task lifecycle event names carried over the broadcast channel.
const (
	EventTaskCreated  = "task:created"
	EventTaskUpdated  = "task:updated"
	EventTaskAssigned = "task:assigned"
	EventTaskDeleted  = "task:deleted"
)

// BroadcastPort fans a named event out to every connected session. Delivery is
// at-most-once per session, with no replay; recipients are not filtered by
// task visibility, so clients re-apply their own filtering on receipt.
type BroadcastPort interface {
	Publish(event string, payload interface{})
}
