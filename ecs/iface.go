package ecs

import "unsafe"

// iface represents the internal memory layout of an interface{}.
// View uses it to read the data pointer out of an `any` holding a *T.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
