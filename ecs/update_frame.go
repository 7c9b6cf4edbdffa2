package ecs

// UpdateFrame carries everything a system may touch during one step: the
// store for reads, the command buffer for deferred structural changes, the
// event bus for synchronous notifications, and the dispatcher for queueing
// host commands.
type UpdateFrame struct {
	DeltaTime  float64
	Store      *Store
	Commands   *Commands
	Events     *EventBus
	Dispatcher *CommandDispatcher
}

func newUpdateFrame(dt float64, store *Store, events *EventBus, dispatcher *CommandDispatcher) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime:  dt,
		Store:      store,
		Commands:   newCommands(),
		Events:     events,
		Dispatcher: dispatcher,
	}
}
