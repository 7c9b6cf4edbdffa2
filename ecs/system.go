package ecs

// System is a unit of simulation logic run by the Scheduler each step.
// User-defined systems implement this interface and can declare Query and
// Resource fields, which the Scheduler initializes at registration time,
// alongside any state fields that persist between steps.
type System interface {
	Update(frame *UpdateFrame)
}
