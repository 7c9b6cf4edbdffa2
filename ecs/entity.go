package ecs

// EntityId is an opaque, non-negative handle identifying a live entity.
// Ids carry no intrinsic data. A destroyed entity's id may be reissued to a
// later entity, so an id is only unique among currently-live entities and
// must not be treated as unique across the whole process lifetime.
type EntityId int64
