package observer

import (
	"testing"
)

func TestEmitter_Fire(t *testing.T) {
	tests := []struct {
		name      string
		old, new  string
		wantFired bool
		wantCalls int
	}{
		{"changed value fires", "a", "b", true, 1},
		{"same value is ignored", "a", "a", false, 0},
		{"empty to value fires", "", "x", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Emitter[string]
			calls := 0
			var gotOld, gotNew string
			e.Add(func(old, new string) {
				calls++
				gotOld, gotNew = old, new
			})

			fired := e.Fire(tt.old, tt.new)
			if fired != tt.wantFired {
				t.Errorf("Fire() = %v, want %v", fired, tt.wantFired)
			}
			if calls != tt.wantCalls {
				t.Errorf("listener called %d times, want %d", calls, tt.wantCalls)
			}
			if tt.wantFired && (gotOld != tt.old || gotNew != tt.new) {
				t.Errorf("listener got (%q, %q), want (%q, %q)", gotOld, gotNew, tt.old, tt.new)
			}
		})
	}
}

func TestEmitter_RemoveKeepsOthers(t *testing.T) {
	var e Emitter[int]
	var order []string

	first := e.Add(func(_, _ int) { order = append(order, "first") })
	e.Add(func(_, _ int) { order = append(order, "second") })
	e.Add(func(_, _ int) { order = append(order, "third") })

	if !e.Remove(first) {
		t.Fatal("Remove() returned false for a registered listener")
	}
	if e.Remove(first) {
		t.Error("Remove() returned true for an already removed listener")
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}

	e.Fire(1, 2)
	if len(order) != 2 || order[0] != "second" || order[1] != "third" {
		t.Errorf("fire order = %v, want [second third]", order)
	}
}

func TestEmitter_ListenerRemovesItself(t *testing.T) {
	var e Emitter[bool]
	calls := 0
	var id ListenerID
	id = e.Add(func(_, _ bool) {
		calls++
		e.Remove(id)
	})
	e.Add(func(_, _ bool) { calls++ })

	e.Fire(false, true)
	e.Fire(true, false)

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSignal_FireOnce(t *testing.T) {
	var s Signal
	calls := 0
	s.Add(func() { calls++ })

	if !s.FireOnce() {
		t.Error("first FireOnce() returned false")
	}
	if s.FireOnce() {
		t.Error("second FireOnce() returned true")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !s.Fired() {
		t.Error("Fired() = false after firing")
	}
}
