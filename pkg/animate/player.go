package animate

import (
	"context"
	"time"
)

// Player steps through a fixed frame sequence.
// The zero value has no frames.
type Player struct {
	frames []string
	delay  time.Duration
	pos    int
}

// NewPlayer returns a player positioned before the first frame.
func NewPlayer(frames []string, delay time.Duration) *Player {
	return &Player{frames: frames, delay: delay}
}

// Len returns the number of frames.
func (p *Player) Len() int { return len(p.frames) }

// Position returns the index of the next frame to be returned.
func (p *Player) Position() int { return p.pos }

// Delay returns the pause between frames.
func (p *Player) Delay() time.Duration { return p.delay }

// Next returns the next frame, or false once all frames were returned.
func (p *Player) Next() (string, bool) {
	if p.pos >= len(p.frames) {
		return "", false
	}
	f := p.frames[p.pos]
	p.pos++
	return f, true
}

// Last returns the final frame, or "" if there are none.
func (p *Player) Last() string {
	if len(p.frames) == 0 {
		return ""
	}
	return p.frames[len(p.frames)-1]
}

// Rewind moves back to the first frame.
func (p *Player) Rewind() { p.pos = 0 }

// Play hands every remaining frame to show, waiting the player's delay
// between frames. It stops early when ctx is done or show fails.
func (p *Player) Play(ctx context.Context, show func(frame string) error) error {
	for {
		f, ok := p.Next()
		if !ok {
			return nil
		}
		if err := show(f); err != nil {
			return err
		}
		if p.pos == len(p.frames) || p.delay <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		t := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}
