package sim

import (
	"fmt"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
)

// Facing selects the character's sprite row.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the sprite name fragment for the facing.
func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// facingFor picks the facing for a movement vector. Horizontal movement wins
// over vertical movement.
func facingFor(v core.Vec) Facing {
	switch {
	case v.X < 0:
		return FacingLeft
	case v.X > 0:
		return FacingRight
	case v.Y < 0:
		return FacingUp
	default:
		return FacingDown
	}
}

// Character is the player. There is exactly one per world.
type Character struct {
	Body          core.Rect
	Direction     core.Vec // Movement for the current tick
	LastDirection core.Vec // Last non-zero movement, used to aim the boomerang
	Facing        Facing
	Frame         int

	prev       core.Rect // Body before this tick's move
	speed      int
	animFrames int
	animStep   int
}

func newCharacter(cfg config.CharacterConfig) *Character {
	body := core.NewRect(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	return &Character{
		Body:          body,
		LastDirection: core.V(0, 1),
		Facing:        FacingDown,
		prev:          body,
		speed:         cfg.Speed,
		animFrames:    cfg.AnimFrames,
		animStep:      cfg.AnimStep,
	}
}

// SetMovement overwrites the movement direction from this tick's input.
// Components are reduced to -1, 0 or 1.
func (c *Character) SetMovement(v core.Vec) {
	c.Direction = v.Sign()
}

// Tick advances the walk animation. An idle character rests on frame 0.
func (c *Character) Tick() {
	if c.Direction.IsZero() {
		c.Frame = 0
		return
	}
	c.Facing = facingFor(c.Direction)
	c.Frame = (c.Frame + 1) % (c.animFrames * c.animStep)
}

// Move applies the movement direction and clamps to bounds.
func (c *Character) Move(bounds core.Rect) {
	c.prev = c.Body
	c.Body = c.Body.Translate(c.Direction.Scale(c.speed)).ClampTo(bounds)
	if !c.Direction.IsZero() {
		c.LastDirection = c.Direction
	}
}

// Revert undoes this tick's move entirely and stops the character.
func (c *Character) Revert() {
	c.Body = c.prev
	c.Direction = core.Vec{}
}

// SpriteID names the current animation frame, e.g. "link-left3".
func (c *Character) SpriteID() string {
	return fmt.Sprintf("link-%s%d", c.Facing, c.Frame/c.animStep+1)
}
