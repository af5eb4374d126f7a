package ecs

// EntityId identifies an entity for the lifetime of the process.
// Ids come from one process-wide counter starting at 1 and are never reused,
// not even by another Storage, so a stale id can never alias a newer entity. The zero value is never a valid id.
type EntityId uint64

// IsZero reports whether the id is the invalid zero id.
func (e EntityId) IsZero() bool {
	return e == 0
}
