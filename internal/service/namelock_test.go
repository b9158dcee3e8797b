package service

import (
	"sync"
	"testing"
	"time"
)

func TestNameLock_SameKeySerializes(t *testing.T) {
	l := newNameLock()
	l.lock("org_acme_inc")

	acquired := make(chan struct{})
	go func() {
		l.lock("org_acme_inc")
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first was held")
	case <-time.After(50 * time.Millisecond):
	}

	l.unlock("org_acme_inc")

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock never acquired after unlock")
	}
	l.unlock("org_acme_inc")
}

func TestNameLock_DifferentKeysIndependent(t *testing.T) {
	l := newNameLock()
	l.lock("org_acme_inc")
	// Must not block; a deadlock here fails the test run.
	l.lock("org_globex")
	l.unlock("org_globex")
	l.unlock("org_acme_inc")
}

func TestNameLock_PairNoDeadlock(t *testing.T) {
	l := newNameLock()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		a, b := "org_acme_inc", "org_globex"
		if i == 1 {
			a, b = b, a
		}
		go func(a, b string) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.lockPair(a, b)
				l.unlockPair(a, b)
			}
		}(a, b)
	}
	wg.Wait()
}

func TestNameLock_PairSameKey(t *testing.T) {
	l := newNameLock()
	l.lockPair("org_acme_inc", "org_acme_inc")
	l.unlockPair("org_acme_inc", "org_acme_inc")

	// A second acquisition proves the single underlying lock was released.
	l.lock("org_acme_inc")
	l.unlock("org_acme_inc")
}

func TestNameLock_EntriesReclaimed(t *testing.T) {
	l := newNameLock()
	l.lock("org_acme_inc")
	l.unlock("org_acme_inc")
	l.lockPair("org_acme_inc", "org_globex")
	l.unlockPair("org_acme_inc", "org_globex")

	l.mu.Lock()
	n := len(l.locks)
	l.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected idle entries to be removed, %d remain", n)
	}
}
