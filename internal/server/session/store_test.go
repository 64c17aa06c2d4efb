package session

import (
	"sync"
	"testing"
)

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()

	store.Put(1, Session{State: StateAwaitingPeriodToken, Flow: FlowSelfMonthly})
	store.Put(2, Session{State: StateAwaitingTargetAccount, Flow: FlowRename})

	if got := store.Get(1); got.State != StateAwaitingPeriodToken || got.Flow != FlowSelfMonthly {
		t.Errorf("caller 1: unexpected session %+v", got)
	}
	if got := store.Get(2); got.State != StateAwaitingTargetAccount || got.Flow != FlowRename {
		t.Errorf("caller 2: unexpected session %+v", got)
	}

	store.Reset(1)
	if got := store.Get(1); got.State != StateIdle {
		t.Errorf("caller 1 after reset: state = %v, want idle", got.State)
	}
	if got := store.Get(2); got.State != StateAwaitingTargetAccount {
		t.Errorf("caller 2 must be untouched by reset of caller 1, got %+v", got)
	}
}

func TestMemoryStoreZeroValue(t *testing.T) {
	store := NewMemoryStore()
	got := store.Get(42)
	if got.State != StateIdle || got.Flow != FlowNone || got.TargetID != "" {
		t.Errorf("unknown caller must get idle session, got %+v", got)
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := int64(0); i < 32; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Put(id, Session{State: StateAwaitingPeriodToken, Year: int(id)})
				_ = store.Get(id)
				store.Reset(id)
			}
		}(i)
	}
	wg.Wait()
}
