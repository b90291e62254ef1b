package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yildizm/landing/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestActivePanel(t *testing.T) {
	c := New(clock.NewFake(epoch))
	assert.Equal(t, Left, c.Active())
	assert.Equal(t, "Summer Glow Set", c.ActivePanel().Title)

	c.Activate(Right)
	assert.Equal(t, "Desert Bloom Kit", c.ActivePanel().Title)

	c.Toggle()
	assert.Equal(t, Left, c.Active())
}

func TestToastClearsAfterDuration(t *testing.T) {
	clk := clock.NewFake(epoch)
	changes := 0
	c := New(clk, WithOnChange(func() { changes++ }))

	msg := c.AddToBag("Body Wash")
	assert.Equal(t, "Added Body Wash to bag!", msg)
	assert.Equal(t, msg, c.Message())

	clk.Advance(DefaultToastDuration - time.Millisecond)
	assert.Equal(t, msg, c.Message())

	clk.Advance(time.Millisecond)
	assert.Empty(t, c.Message())
	assert.Equal(t, 1, changes)
}

func TestNewerToastRestartsTimer(t *testing.T) {
	clk := clock.NewFake(epoch)
	c := New(clk)

	c.AddToBag("Body Wash")
	clk.Advance(1500 * time.Millisecond)
	c.AddToBag("Hand Cream")

	clk.Advance(1 * time.Second)
	assert.Equal(t, "Added Hand Cream to bag!", c.Message())

	clk.Advance(1 * time.Second)
	assert.Empty(t, c.Message())
	assert.Zero(t, clk.Pending())
}

func TestCloseStopsTimer(t *testing.T) {
	clk := clock.NewFake(epoch)
	changes := 0
	c := New(clk, WithToastDuration(time.Second), WithOnChange(func() { changes++ }))

	c.AddToBag("Oil Roller")
	c.Close()
	clk.Advance(time.Minute)

	assert.Zero(t, changes)
	assert.Zero(t, clk.Pending())
}
