package clock

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.At(300*time.Millisecond, func(time.Duration) { got = append(got, "c") })
	s.At(100*time.Millisecond, func(time.Duration) { got = append(got, "a") })
	s.At(100*time.Millisecond, func(time.Duration) { got = append(got, "b") })

	s.Advance(99 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}
	s.Advance(100 * time.Millisecond)
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	s.Advance(time.Second)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerAfterIsRelativeToNow(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	var firedAt time.Duration
	s.After(450*time.Millisecond, func(now time.Duration) { firedAt = now })

	s.Advance(1449 * time.Millisecond)
	if firedAt != 0 {
		t.Fatalf("fired early at %v", firedAt)
	}
	s.Advance(1500 * time.Millisecond)
	if firedAt != 1450*time.Millisecond {
		t.Errorf("firedAt = %v, want 1.45s", firedAt)
	}
}

func TestSchedulerEveryRepeats(t *testing.T) {
	s := NewScheduler()
	var ticks []time.Duration
	s.Every(1800*time.Millisecond, func(now time.Duration) { ticks = append(ticks, now) })

	for now := time.Duration(0); now <= 6*time.Second; now += 100 * time.Millisecond {
		s.Advance(now)
	}
	want := []time.Duration{1800 * time.Millisecond, 3600 * time.Millisecond, 5400 * time.Millisecond}
	if !reflect.DeepEqual(ticks, want) {
		t.Errorf("ticks = %v, want %v", ticks, want)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := 0
	h := s.After(time.Second, func(time.Duration) { fired++ })
	s.Cancel(h)
	s.Cancel(h)
	s.Advance(2 * time.Second)
	if fired != 0 {
		t.Errorf("cancelled entry fired %d times", fired)
	}
}

func TestSchedulerCancelFromInsideRepeatingCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0
	var h Handle
	h = s.Every(time.Second, func(time.Duration) {
		fired++
		if fired == 2 {
			s.Cancel(h)
		}
	})
	s.Advance(10 * time.Second)
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
}

func TestSchedulerCancelAllDropsPendingAndRefusesNew(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(time.Second, func(time.Duration) { fired++ })
	s.Every(time.Second, func(time.Duration) { fired++ })
	s.CancelAll()

	if h := s.After(time.Millisecond, func(time.Duration) { fired++ }); h != 0 {
		t.Errorf("handle after CancelAll = %d, want 0", h)
	}
	s.Advance(time.Minute)
	if fired != 0 {
		t.Errorf("fired = %d after CancelAll, want 0", fired)
	}
	if !s.Cancelled() {
		t.Error("Cancelled() = false")
	}
}

func TestSchedulerCallbackCancellingEverythingStopsTheBatch(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.At(time.Second, func(time.Duration) {
		got = append(got, 1)
		s.CancelAll()
	})
	s.At(time.Second, func(time.Duration) { got = append(got, 2) })
	s.Advance(time.Second)
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("got %v, want [1]", got)
	}
}
