package object

import (
	"math"
	"math/rand"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ha5him97/game/internal/input"
	"github.com/ha5him97/game/internal/loop/config"
)

// scriptRand replays a fixed sequence of values, cycling when exhausted.
type scriptRand struct {
	vals  []float64
	calls int
}

func (r *scriptRand) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

var testScreen = Screen{Width: config.ViewWidth, Height: config.ViewHeight}

func TestPlayerSpawn(t *testing.T) {
	p := NewPlayer(testScreen)
	if p.X != 400 || p.Y != 540 {
		t.Errorf("spawn = (%v, %v), want (400, 540)", p.X, p.Y)
	}
	if p.Width != 40 || p.Height != 40 || p.Speed != 5 {
		t.Errorf("player dims = %vx%v speed %v", p.Width, p.Height, p.Speed)
	}

	p.X, p.Y, p.Cooldown = 3, 4, 7
	p.Respawn(testScreen)
	if p.X != 400 || p.Y != 540 || p.Cooldown != 0 {
		t.Errorf("Respawn = (%v, %v) cooldown %d", p.X, p.Y, p.Cooldown)
	}
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name         string
		held         input.KeySet
		wantX, wantY float64
	}{
		{"idle", 0, 400, 540},
		{"left", input.Keys(input.KeyLeft), 395, 540},
		{"right", input.Keys(input.KeyRight), 405, 540},
		{"up", input.Keys(input.KeyUp), 400, 535},
		{"down", input.Keys(input.KeyDown), 400, 545},
		{"diagonal", input.Keys(input.KeyUp, input.KeyLeft), 395, 535},
		{"opposing", input.Keys(input.KeyLeft, input.KeyRight), 400, 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testScreen)
			p.Move(tt.held, testScreen)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("Move = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerMoveStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	screens := []Screen{testScreen, {Width: 300, Height: 200}, {Width: 41, Height: 41}}

	for _, screen := range screens {
		p := NewPlayer(screen)
		for i := 0; i < 5000; i++ {
			held := input.KeySet(rng.Intn(32))
			p.Move(held, screen)
			if p.X < 0 || p.X > screen.Width-p.Width {
				t.Fatalf("screen %v tick %d: x = %v out of [0, %v]", screen, i, p.X, screen.Width-p.Width)
			}
			if p.Y < 0 || p.Y > screen.Height-p.Height {
				t.Fatalf("screen %v tick %d: y = %v out of [0, %v]", screen, i, p.Y, screen.Height-p.Height)
			}
		}
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	p := NewPlayer(testScreen)
	fire := input.Keys(input.KeyFire)

	var shots []int
	for tick := 0; tick < 35; tick++ {
		if _, fired := p.Shoot(fire); fired {
			shots = append(shots, tick)
		}
		if p.Cooldown < 0 {
			t.Fatalf("tick %d: cooldown went negative", tick)
		}
	}

	want := []int{0, 10, 20, 30}
	if len(shots) != len(want) {
		t.Fatalf("shots at %v, want %v", shots, want)
	}
	for i := range want {
		if shots[i] != want[i] {
			t.Fatalf("shots at %v, want %v", shots, want)
		}
	}
}

func TestPlayerShootPosition(t *testing.T) {
	p := NewPlayer(testScreen)
	b, fired := p.Shoot(input.Keys(input.KeyFire))
	if !fired {
		t.Fatal("first shot did not fire")
	}
	if b.X != p.X+p.Width/2-2 || b.Y != p.Y {
		t.Errorf("bullet at (%v, %v), want (%v, %v)", b.X, b.Y, p.X+p.Width/2-2, p.Y)
	}
	if p.Cooldown != config.ShootCooldownTicks-1 {
		t.Errorf("cooldown after shot = %d, want %d", p.Cooldown, config.ShootCooldownTicks-1)
	}
}

func TestPlayerCooldownRunsWithoutFire(t *testing.T) {
	p := NewPlayer(testScreen)
	p.Cooldown = 3
	for i := 0; i < 5; i++ {
		p.Shoot(0)
	}
	if p.Cooldown != 0 {
		t.Errorf("cooldown = %d, want 0", p.Cooldown)
	}
}

func TestBulletStep(t *testing.T) {
	b := NewBullet(100, 20)
	if b.Step() {
		t.Fatal("bullet at y=12 removed")
	}
	if b.Y != 12 {
		t.Errorf("y = %v, want 12", b.Y)
	}
	if b.Step() {
		t.Fatal("bullet at y=4 removed")
	}
	if !b.Step() {
		t.Errorf("bullet at y=%v not removed", b.Y)
	}
}

func TestEnemyStepAndMiss(t *testing.T) {
	e := NewEnemy(10, 598, 2, colorful.Color{R: 1})
	e.Step()
	if e.Y != 600 || e.Missed(testScreen) {
		t.Fatalf("enemy at y=%v counted as missed", e.Y)
	}
	e.Step()
	if !e.Missed(testScreen) {
		t.Errorf("enemy at y=%v not missed", e.Y)
	}
}

func TestEnemyDamage(t *testing.T) {
	e := NewEnemy(0, 0, 1, colorful.Color{})
	if !e.Damage() {
		t.Error("single-health enemy survived a hit")
	}
	if e.Health != 0 {
		t.Errorf("health = %d, want 0", e.Health)
	}
	if !e.Damage() || e.Health != 0 {
		t.Errorf("second hit: health = %d", e.Health)
	}
}

func TestEnemySpawnerChance(t *testing.T) {
	s := NewEnemySpawner(colorful.Color{})
	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.025},
		{2, 0.03},
		{10, 0.07},
	}
	for _, tt := range tests {
		if got := s.Chance(tt.level); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Chance(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestEnemySpawnerUpdate(t *testing.T) {
	red := colorful.Color{R: 1}
	s := NewEnemySpawner(red)

	t.Run("below chance spawns", func(t *testing.T) {
		rng := &scriptRand{vals: []float64{0.01, 0.5, 0.25}}
		e, ok := s.Update(rng, 1, testScreen)
		if !ok {
			t.Fatal("no spawn")
		}
		if e.X != 0.5*(800-30) || e.Y != -30 {
			t.Errorf("spawn at (%v, %v), want (%v, -30)", e.X, e.Y, 0.5*(800-30))
		}
		if e.Speed != 1.5 {
			t.Errorf("speed = %v, want 1.5", e.Speed)
		}
		if e.Health != 1 || e.Color != red {
			t.Errorf("health %d colour %v", e.Health, e.Color)
		}
	})

	t.Run("at chance does not spawn", func(t *testing.T) {
		rng := &scriptRand{vals: []float64{0.025}}
		if _, ok := s.Update(rng, 1, testScreen); ok {
			t.Error("spawned at exactly the threshold")
		}
		if rng.calls != 1 {
			t.Errorf("made %d draws, want 1", rng.calls)
		}
	})

	t.Run("higher level spawns more", func(t *testing.T) {
		rng := &scriptRand{vals: []float64{0.05, 0, 0}}
		if _, ok := s.Update(rng, 1, testScreen); ok {
			t.Error("level 1 spawned at 0.05")
		}
		rng = &scriptRand{vals: []float64{0.05, 0, 0}}
		if _, ok := s.Update(rng, 8, testScreen); !ok {
			t.Error("level 8 did not spawn at 0.05")
		}
	})
}

func TestEnemySpawnerSpeedRange(t *testing.T) {
	s := NewEnemySpawner(colorful.Color{})
	rng := rand.New(rand.NewSource(3))
	spawned := 0
	for i := 0; i < 20000; i++ {
		e, ok := s.Update(rng, 1, testScreen)
		if !ok {
			continue
		}
		spawned++
		if e.Speed < 1 || e.Speed >= 3 {
			t.Fatalf("speed %v outside [1, 3)", e.Speed)
		}
		if e.X < 0 || e.X > 770 {
			t.Fatalf("x %v outside [0, 770]", e.X)
		}
	}
	// 2.5% of 20000 is 500; allow wide tolerance
	if spawned < 350 || spawned > 650 {
		t.Errorf("spawned %d enemies, expected about 500", spawned)
	}
}

func TestParticleDecay(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	burst := SpawnBurst(rng, 50, 60, colorful.Color{G: 1}, 20)
	if len(burst) != 20 {
		t.Fatalf("burst size = %d, want 20", len(burst))
	}

	for i := range burst {
		p := &burst[i]
		if p.X != 50 || p.Y != 60 {
			t.Fatalf("particle %d starts at (%v, %v)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > config.ParticleMaxSpeed || math.Abs(p.VY) > config.ParticleMaxSpeed {
			t.Fatalf("particle %d velocity (%v, %v) too fast", i, p.VX, p.VY)
		}
		if p.Size < 1 || p.Size >= 4 {
			t.Fatalf("particle %d size %v outside [1, 4)", i, p.Size)
		}

		for tick := 1; tick <= config.ParticleLife; tick++ {
			if a := p.Alpha(); a <= 0 || a > 1 {
				t.Fatalf("particle %d tick %d alpha %v outside (0, 1]", i, tick, a)
			}
			removed := p.Step()
			if removed != (tick == config.ParticleLife) {
				t.Fatalf("particle %d removed=%v at tick %d of %d", i, removed, tick, config.ParticleLife)
			}
		}
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life, max int
		want      float64
	}{
		{30, 30, 1},
		{15, 30, 0.5},
		{0, 30, 0},
		{-2, 30, 0},
		{40, 30, 1},
		{5, 0, 0},
	}
	for _, tt := range tests {
		p := Particle{Life: tt.life, MaxLife: tt.max}
		if got := p.Alpha(); got != tt.want {
			t.Errorf("Alpha(%d/%d) = %v, want %v", tt.life, tt.max, got, tt.want)
		}
	}
}

func TestSpawnBurstEmpty(t *testing.T) {
	if got := SpawnBurst(&scriptRand{vals: []float64{0}}, 0, 0, colorful.Color{}, 0); got != nil {
		t.Errorf("SpawnBurst(0) = %v, want nil", got)
	}
}

func TestStarField(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	stars := NewStarField(rng, testScreen, config.StarCount)
	if len(stars) != 100 {
		t.Fatalf("star count = %d, want 100", len(stars))
	}
	for i, s := range stars {
		if s.X < 0 || s.X >= 800 || s.Y < 0 || s.Y >= 600 {
			t.Errorf("star %d at (%v, %v) off screen", i, s.X, s.Y)
		}
		if s.Speed < 1 || s.Speed >= 3 || s.Opacity < 0 || s.Opacity >= 1 || s.Size < 0 || s.Size >= 2 {
			t.Errorf("star %d has bad attributes %+v", i, s)
		}
	}
}

func TestStarWrap(t *testing.T) {
	rng := &scriptRand{vals: []float64{0.25}}
	s := Star{X: 10, Y: 599, Speed: 2}

	s.Step(rng, testScreen)
	if s.Y != 0 || s.X != 200 {
		t.Errorf("wrapped star at (%v, %v), want (200, 0)", s.X, s.Y)
	}

	s.Step(rng, testScreen)
	if s.Y != 2 || s.X != 200 {
		t.Errorf("star at (%v, %v), want (200, 2)", s.X, s.Y)
	}
}

func TestKindString(t *testing.T) {
	if KindEnemy.String() != "enemy" || Kind(99).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
