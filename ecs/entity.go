package ecs

import "strconv"

// Entity is an opaque id grouping zero or more components. Ids start at 1
// and are never reused, even after the entity is destroyed, so a stale
// handle can never alias a newer entity.
type Entity int

// InvalidEntity is the zero handle; no live entity ever has it.
const InvalidEntity Entity = 0

func (e Entity) Valid() bool {
	return e > 0
}

func (e Entity) String() string {
	return strconv.Itoa(int(e))
}
