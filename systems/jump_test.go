package systems

import (
	"testing"
	"time"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/yohamta/donburi"
)

// fakeClock pins jumpNow so stage pacing can be driven explicitly.
type fakeClock struct {
	now time.Time
}

func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
	orig := jumpNow
	jumpNow = func() time.Time { return clock.now }
	t.Cleanup(func() { jumpNow = orig })
	return clock
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func jumpOf(entry *donburi.Entry) *components.JumpData {
	return components.Jump.Get(entry)
}

func TestStartJumpShowsFirstPoseImmediately(t *testing.T) {
	installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)

	if !StartJump(entry) {
		t.Fatal("jump from skiing not handled")
	}

	if got := stateOf(entry).CurrentState; got != cfg.Jumping {
		t.Fatalf("state = %v, want jumping", got)
	}
	if got := jumpOf(entry).Stage; got != 0 {
		t.Fatalf("stage = %d, want 0", got)
	}
	if got := skierOf(entry).ImageName; got != cfg.JumpStageImages[0] {
		t.Fatalf("image = %q, want %q", got, cfg.JumpStageImages[0])
	}
}

func TestJumpStagesAdvanceOnTheWallClock(t *testing.T) {
	clock := installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	delay := time.Duration(cfg.Skier.JumpStageDelayMs) * time.Millisecond

	// Just shy of the deadline nothing changes, however many ticks run.
	clock.advance(delay - time.Millisecond)
	UpdateJump(e)
	UpdateJump(e)
	if got := jumpOf(entry).Stage; got != 0 {
		t.Fatalf("stage before first deadline = %d, want 0", got)
	}

	for want := 1; want < cfg.Skier.JumpStages-1; want++ {
		clock.advance(delay)
		UpdateJump(e)
		if got := jumpOf(entry).Stage; got != want {
			t.Fatalf("stage = %d, want %d", got, want)
		}
		if got := skierOf(entry).ImageName; got != cfg.JumpStageImages[want] {
			t.Fatalf("image at stage %d = %q, want %q", want, got, cfg.JumpStageImages[want])
		}
		if got := stateOf(entry).CurrentState; got != cfg.Jumping {
			t.Fatalf("state at stage %d = %v, want jumping", want, got)
		}
	}

	// The final pose lands the skier.
	clock.advance(delay)
	UpdateJump(e)
	if got := stateOf(entry).CurrentState; got != cfg.Skiing {
		t.Fatalf("state after last stage = %v, want skiing", got)
	}
	if got := skierOf(entry).ImageName; got != cfg.DirectionImages[cfg.DirDown] {
		t.Fatalf("image after landing = %q, want %q", got, cfg.DirectionImages[cfg.DirDown])
	}
	if got := skierOf(entry).ArcOffset; got != 0 {
		t.Fatalf("arc offset after landing = %f, want 0", got)
	}
}

func TestJumpCatchesUpAfterLongStall(t *testing.T) {
	clock := installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	// One update far past every deadline runs the whole sequence out.
	clock.advance(10 * time.Second)
	UpdateJump(e)

	if got := stateOf(entry).CurrentState; got != cfg.Skiing {
		t.Fatalf("state = %v, want skiing after the sequence drained", got)
	}
}

func TestStartJumpWhileAirborneContinuesSequence(t *testing.T) {
	clock := installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	delay := time.Duration(cfg.Skier.JumpStageDelayMs) * time.Millisecond
	clock.advance(delay)
	UpdateJump(e)

	stage := jumpOf(entry).Stage
	if !StartJump(entry) {
		t.Fatal("jump while airborne reported unhandled")
	}
	if got := jumpOf(entry).Stage; got != stage {
		t.Fatalf("restart changed stage from %d to %d", stage, got)
	}
}

func TestStartJumpRefusedWhileDownOrDead(t *testing.T) {
	installFakeClock(t)

	e := newTestECS()
	crashed := newTestSkier(t, e, 0, 0)
	crashSkier(crashed)
	if StartJump(crashed) {
		t.Fatal("crashed skier started a jump")
	}

	e2 := newTestECS()
	dead := newTestSkier(t, e2, 0, 0)
	KillSkier(dead)
	if StartJump(dead) {
		t.Fatal("dead skier started a jump")
	}
}

func TestDeathMidJumpFreezesTheSequence(t *testing.T) {
	clock := installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	clock.advance(time.Duration(cfg.Skier.JumpStageDelayMs) * time.Millisecond)
	UpdateJump(e)
	stage := jumpOf(entry).Stage

	KillSkier(entry)
	clock.advance(10 * time.Second)
	UpdateJump(e)

	if got := stateOf(entry).CurrentState; got != cfg.Dead {
		t.Fatalf("state = %v, want dead", got)
	}
	if got := jumpOf(entry).Stage; got != stage {
		t.Fatalf("stage advanced to %d after death, want %d", got, stage)
	}
}

func TestTurnWhileAirborneKeepsTheJumpPose(t *testing.T) {
	clock := installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	if !HandleSkierAction(entry, cfg.ActionTurnLeft) {
		t.Fatal("turn while airborne reported unhandled")
	}
	if got := skierOf(entry).Direction; got != cfg.DirLeftDown {
		t.Fatalf("direction = %v, want left-down", got)
	}
	if got := skierOf(entry).ImageName; got != cfg.JumpStageImages[0] {
		t.Fatalf("image mid-jump = %q, want %q", got, cfg.JumpStageImages[0])
	}

	// The new facing shows once the skier lands.
	clock.advance(10 * time.Second)
	UpdateJump(e)
	if got := skierOf(entry).ImageName; got != cfg.DirectionImages[cfg.DirLeftDown] {
		t.Fatalf("image after landing = %q, want %q", got, cfg.DirectionImages[cfg.DirLeftDown])
	}
}

func TestGroundedSkierCarriesNoLift(t *testing.T) {
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	skierOf(entry).ArcOffset = 12

	UpdateTweens(e)

	if got := skierOf(entry).ArcOffset; got != 0 {
		t.Fatalf("grounded arc offset = %f, want 0", got)
	}
}

func TestAirborneLiftRisesThenSettles(t *testing.T) {
	installFakeClock(t)
	e := newTestECS()
	entry := newTestSkier(t, e, 0, 0)
	StartJump(entry)

	UpdateTweens(e)
	first := skierOf(entry).ArcOffset
	UpdateTweens(e)
	second := skierOf(entry).ArcOffset

	if second <= first {
		t.Fatalf("lift did not rise early in the jump: %f then %f", first, second)
	}
	if second > cfg.Skier.JumpArcHeight {
		t.Fatalf("lift %f exceeds arc height %f", second, cfg.Skier.JumpArcHeight)
	}
}
