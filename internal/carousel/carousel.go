// Package carousel implements the two-panel product showcase and its
// "added to bag" toast.
package carousel

import (
	"fmt"
	"sync"
	"time"

	"github.com/yildizm/landing/internal/clock"
)

// Side identifies a panel
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// DefaultToastDuration is how long a toast stays visible.
const DefaultToastDuration = 2 * time.Second

// Product is an item that can be added to the bag
type Product struct {
	Name string
}

// Panel is one half of the carousel
type Panel struct {
	Side        Side
	Title       string
	Description string
	Badge       string
	Products    []Product
}

// Panels returns the left and right panels.
func Panels() []Panel {
	return []Panel{
		{
			Side:        Left,
			Title:       "Summer Glow Set",
			Description: "A limited-edition collection for radiant hair and skin, featuring light, floral scents perfect for the season.",
			Badge:       "LIMITED EDITION",
			Products:    []Product{{Name: "Body Wash"}, {Name: "Hair Mist"}},
		},
		{
			Side:        Right,
			Title:       "Desert Bloom Kit",
			Description: "Nourishing blends with warm, earthy notes, designed to restore and hydrate skin in any climate.",
			Badge:       "LIMITED EDITION",
			Products:    []Product{{Name: "Hand Cream"}, {Name: "Oil Roller"}},
		},
	}
}

// Option configures a Carousel
type Option func(*Carousel)

// WithToastDuration overrides DefaultToastDuration.
func WithToastDuration(d time.Duration) Option {
	return func(c *Carousel) {
		c.toastDuration = d
	}
}

// WithOnChange registers a function called when the toast is cleared by
// its timer.
func WithOnChange(fn func()) Option {
	return func(c *Carousel) {
		c.onChange = fn
	}
}

// Carousel tracks the active panel and the current toast
type Carousel struct {
	clock         clock.Clock
	toastDuration time.Duration
	onChange      func()
	panels        []Panel

	mu      sync.Mutex
	active  Side
	message string
	timer   clock.Timer
	// gen invalidates clear timers that fire after being superseded.
	gen    int
	closed bool
}

// New creates a carousel with the left panel active.
func New(clk clock.Clock, opts ...Option) *Carousel {
	c := &Carousel{
		clock:         clk,
		toastDuration: DefaultToastDuration,
		panels:        Panels(),
		active:        Left,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Panels returns the carousel's panels.
func (c *Carousel) Panels() []Panel {
	return c.panels
}

// Active returns the expanded panel.
func (c *Carousel) Active() Side {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ActivePanel returns the expanded panel's content.
func (c *Carousel) ActivePanel() Panel {
	side := c.Active()
	for _, p := range c.panels {
		if p.Side == side {
			return p
		}
	}
	return c.panels[0]
}

// Activate expands the given panel.
func (c *Carousel) Activate(side Side) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = side
}

// Toggle expands the other panel.
func (c *Carousel) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == Left {
		c.active = Right
	} else {
		c.active = Left
	}
}

// Message returns the visible toast, or "" when none is shown.
func (c *Carousel) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// AddToBag shows the confirmation toast for a product. A toast shown while
// another is visible replaces it and restarts the timer.
func (c *Carousel) AddToBag(product string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.message = fmt.Sprintf("Added %s to bag!", product)
	if c.closed {
		return c.message
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.toastDuration, func() { c.clear(gen) })
	return c.message
}

// Close stops the pending toast timer.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Carousel) clear(gen int) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.message = ""
	c.timer = nil
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange()
	}
}
