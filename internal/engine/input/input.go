// Package input translates SDL2 events into engine events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies the kind of input event.
type EventType int

const (
	EventQuit EventType = iota
	EventResize
	EventKeyDown
	EventKeyUp
)

// Event is a single input event polled from SDL.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input polls SDL events each frame and buffers them for the caller.
type Input struct {
	events []Event
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL event queue. Returns true when a quit was requested,
// either via the window close button or the Escape key.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Resized reports the last resize event of the frame, if any.
func (i *Input) Resized() (w, h int, ok bool) {
	for idx := len(i.events) - 1; idx >= 0; idx-- {
		if i.events[idx].Type == EventResize {
			return i.events[idx].Width, i.events[idx].Height, true
		}
	}
	return 0, 0, false
}
