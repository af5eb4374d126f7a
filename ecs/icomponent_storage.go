package ecs

import (
	"iter"
	"reflect"
)

// iComponentStorage is an interface for a type-erased, slot-indexed component storage.
type iComponentStorage interface {
	Set(slot int, item any) bool
	Delete(slot int)
	Get(slot int) any
	Has(slot int) bool
	Len() int
	Type() reflect.Type
	Iter() iter.Seq[int]
}
