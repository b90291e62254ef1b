package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	c := NewFake(epoch)
	var order []string

	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })

	c.Advance(25 * time.Millisecond)
	if got := len(order); got != 2 {
		t.Fatalf("Expected 2 callbacks after 25ms, got %d", got)
	}

	c.Advance(5 * time.Millisecond)
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected order %v, got %v", want, order)
			break
		}
	}
}

func TestFakeSameDeadlineKeepsScheduleOrder(t *testing.T) {
	c := NewFake(epoch)
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.AfterFunc(time.Second, func() { order = append(order, i) })
	}
	c.Advance(time.Second)
	for i, v := range order {
		if v != i {
			t.Fatalf("Expected schedule order, got %v", order)
		}
	}
}

func TestFakeNestedScheduling(t *testing.T) {
	c := NewFake(epoch)
	fired := 0
	var again func()
	again = func() {
		fired++
		c.AfterFunc(10*time.Millisecond, again)
	}
	c.AfterFunc(10*time.Millisecond, again)

	c.Advance(100 * time.Millisecond)
	if fired != 10 {
		t.Errorf("Expected 10 chained firings, got %d", fired)
	}
	if !c.Now().Equal(epoch.Add(100 * time.Millisecond)) {
		t.Errorf("Expected clock at +100ms, got %v", c.Now().Sub(epoch))
	}
}

func TestFakeStop(t *testing.T) {
	c := NewFake(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Error("Stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", c.Pending())
	}
}

func TestFakeStopAfterFire(t *testing.T) {
	c := NewFake(epoch)
	timer := c.AfterFunc(time.Millisecond, func() {})
	c.Advance(time.Millisecond)
	if timer.Stop() {
		t.Error("Expected Stop after firing to report false")
	}
}
