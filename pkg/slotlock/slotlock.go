// Package slotlock serializes work keyed by an arbitrary string.
//
// The booking flow uses it to serialize the conflict-check-then-insert
// sequence for the same (date, time) slot within one process. It does
// not close the race across multiple process instances; the external
// store offers no conditional write, so that window is accepted.
package slotlock

import (
	"context"
	"sync"
)

// KeyedLock provides per-key mutual exclusion.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty KeyedLock.
func New() *KeyedLock {
	return &KeyedLock{locks: make(map[string]*entry)}
}

// DoExclusive runs fn while holding the lock for key. Callers with
// different keys proceed in parallel. The context is checked before
// fn runs, so a caller that waited past its deadline does not execute.
func (k *KeyedLock) DoExclusive(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	e := k.acquire(key)
	e.mu.Lock()
	defer func() {
		e.mu.Unlock()
		k.release(key)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (k *KeyedLock) acquire(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedLock) release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.locks[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}
