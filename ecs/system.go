package ecs

// System is one step of a frame. Exported Query[T] and Singleton[T] fields
// of a system struct are bound to the storage by Scheduler.Register; other
// fields keep their values between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
