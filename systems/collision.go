package systems

import (
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sizeOf resolves an image name to its pixel dimensions. Swappable so
// collision logic can run without decoded assets in tests.
var sizeOf = assets.ImageSize

// UpdateCollisions resolves skier-versus-obstacle hits. Runs after movement
// so the bounds reflect this tick's position.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Skier.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState != cfg.Skiing && state.CurrentState != cfg.Jumping {
			return
		}

		skier := components.Skier.Get(e)
		obj := components.Object.Get(e)

		x, y, w, h, ok := skierBounds(skier)
		if !ok {
			// No resolvable sprite, no bounds: skip collision this tick.
			return
		}
		obj.X, obj.Y, obj.W, obj.H = x, y, w, h
		obj.Update()

		check := obj.Check(0, 0, tags.ResolvRamp, tags.ResolvRock, tags.ResolvTree)
		if check == nil {
			return
		}

		// The cell check is coarse; verify a real rectangle overlap and act
		// on the first obstacle that has one.
		hit := firstOverlapping(obj.Object, check.Objects)
		if hit == nil {
			return
		}

		switch {
		case hit.HasTags(tags.ResolvRamp):
			// Already-airborne skiers sail over the ramp unchanged.
			if state.CurrentState != cfg.Jumping {
				StartJump(e)
			}
		case hit.HasTags(tags.ResolvRock):
			// Rocks can be cleared mid-jump.
			if state.CurrentState != cfg.Jumping {
				crashSkier(e)
			}
		default:
			crashSkier(e)
		}
	})
}

// skierBounds derives the collision rect from the current sprite: centered
// on position, with the bottom edge pulled up to a quarter height below
// center so the skier visibly lands inside whatever they hit.
func skierBounds(skier *components.SkierData) (x, y, w, h float64, ok bool) {
	iw, ih, ok := sizeOf(skier.ImageName)
	if !ok {
		return 0, 0, 0, 0, false
	}

	fw := float64(iw)
	fh := float64(ih)

	x = skier.Position.X - fw/2
	y = skier.Position.Y - fh/2
	w = fw
	h = fh/2 + fh/4

	return x, y, w, h, true
}

// firstOverlapping returns the first candidate whose rectangle strictly
// overlaps the object. Touching edges do not count.
func firstOverlapping(obj *resolv.Object, candidates []*resolv.Object) *resolv.Object {
	for _, c := range candidates {
		if obj.X < c.X+c.W && c.X < obj.X+obj.W &&
			obj.Y < c.Y+c.H && c.Y < obj.Y+obj.H {
			return c
		}
	}
	return nil
}
