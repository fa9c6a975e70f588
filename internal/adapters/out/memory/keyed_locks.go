package memory

import (
	"context"
	"sync"
)

// keyedLocks hands out one mutex per key. Waiting honours context cancellation.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	token chan struct{}
	refs  int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free or ctx is done.
func (l *keyedLocks) Lock(ctx context.Context, key string) error {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{token: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.token <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		l.release(key, kl)
		l.mu.Unlock()
		return ctx.Err()
	}
}

// Unlock frees key. It must only be called by the holder.
func (l *keyedLocks) Unlock(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		return
	}
	<-kl.token
	l.release(key, kl)
}

func (l *keyedLocks) release(key string, kl *keyLock) {
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
