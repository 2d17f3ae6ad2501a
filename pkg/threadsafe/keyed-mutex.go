package threadsafe

import "sync"

// KeyedMutex provides independent mutual exclusion per key. Locks for
// different keys never contend with each other.
type KeyedMutex[T int | string] struct {
	inner map[T]*keyedLock
	mux   *sync.Mutex
}

type keyedLock struct {
	mux  sync.Mutex
	refs int
}

func NewKeyedMutex[T int | string]() *KeyedMutex[T] {
	return &KeyedMutex[T]{
		inner: make(map[T]*keyedLock),
		mux:   &sync.Mutex{},
	}
}

func (km *KeyedMutex[T]) Lock(key T) {
	km.mux.Lock()
	lock, ok := km.inner[key]
	if !ok {
		lock = &keyedLock{}
		km.inner[key] = lock
	}
	lock.refs++
	km.mux.Unlock()

	lock.mux.Lock()
}

func (km *KeyedMutex[T]) Unlock(key T) {
	km.mux.Lock()
	lock, ok := km.inner[key]
	if !ok {
		km.mux.Unlock()
		panic("threadsafe: unlock of unheld keyed mutex")
	}
	lock.refs--
	if lock.refs == 0 {
		delete(km.inner, key)
	}
	km.mux.Unlock()

	lock.mux.Unlock()
}
