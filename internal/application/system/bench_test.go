package system

import (
	"testing"

	"github.com/younwookim/skyjump/internal/domain/entity"
)

// A tall tower: every landed run stays registered with physics.
const towerHeight = 200

func createTower(sys *PhysicsSystem) []*entity.PlatformRun {
	runs := make([]*entity.PlatformRun, towerHeight)
	for i := range runs {
		run := entity.NewPlatformRun(i, entity.SideFromLeft(i%2 == 0), 400, 640-float64(i)*entity.BrickSize, entity.BricksForScore(i))
		run.Refresh()
		sys.Collide(run, func(Contact) {})
		runs[i] = run
	}
	return runs
}

func BenchmarkPhysicsSystem_UpdateStanding(b *testing.B) {
	sys, j := createTestPhysics()
	createTower(sys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Update(j, frame)
	}
}

func BenchmarkPhysicsSystem_UpdateJumping(b *testing.B) {
	sys, j := createTestPhysics()
	createTower(sys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if j.OnGround {
			j.Jump()
		}
		sys.Update(j, frame)
	}
}

func BenchmarkPlatformRun_SlideRefresh(b *testing.B) {
	run := entity.NewPlatformRun(0, entity.SideLeft, -160, 640, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run.Slide(float64(i % 400))
		run.Refresh()
	}
}
