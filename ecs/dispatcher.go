package ecs

// CommandDispatcher is a minimal FIFO command queue. It assumes nothing
// about command shape or routing policy: systems and hosts queue values,
// and the host drains them with PopAll or Process, typically handing them
// to a CommandRouter.
type CommandDispatcher struct {
	queue []any
}

// NewCommandDispatcher creates an empty dispatcher.
func NewCommandDispatcher() *CommandDispatcher {
	return &CommandDispatcher{}
}

// Dispatch appends a command to the queue.
func (d *CommandDispatcher) Dispatch(command any) {
	d.queue = append(d.queue, command)
}

// Pop removes and returns the oldest queued command.
func (d *CommandDispatcher) Pop() (any, bool) {
	if len(d.queue) == 0 {
		return nil, false
	}
	command := d.queue[0]
	d.queue = d.queue[1:]
	return command, true
}

// PopAll removes and returns all queued commands in dispatch order.
func (d *CommandDispatcher) PopAll() []any {
	if len(d.queue) == 0 {
		return nil
	}
	commands := d.queue
	d.queue = nil
	return commands
}

// Len returns the number of queued commands.
func (d *CommandDispatcher) Len() int {
	return len(d.queue)
}

// Process drains the queue through the handler. The handler may dispatch
// new commands; they are processed in the same drain.
func (d *CommandDispatcher) Process(handler func(command any)) {
	for len(d.queue) > 0 {
		command := d.queue[0]
		d.queue = d.queue[1:]
		handler(command)
	}
}
