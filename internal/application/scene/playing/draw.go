package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/skyjump/internal/application/state"
	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/mathx"
)

// Colors for rendering
var (
	colorSpace    = color.RGBA{8, 10, 32, 255}
	colorSkyTop   = color.RGBA{12, 16, 48, 255}
	colorSkyLow   = color.RGBA{120, 190, 240, 255}
	colorCloud    = color.RGBA{245, 248, 255, 230}
	colorGround   = color.RGBA{96, 72, 52, 255}
	colorGrass    = color.RGBA{88, 160, 72, 255}
	colorBrick    = color.RGBA{200, 110, 70, 255}
	colorBrickTop = color.RGBA{230, 150, 100, 255}
	colorLanded   = color.RGBA{170, 100, 70, 255}
	colorPlayer   = color.RGBA{250, 220, 90, 255}
	colorHitbox   = color.RGBA{255, 0, 0, 96}
)

const (
	skyBands  = 32
	starCount = 90
)

// view holds render-only state. Nothing here feeds back into the game.
type view struct {
	stars     [][2]float64 // fractions of the stars sprite
	playerImg *ebiten.Image
}

func newView(seed int64) *view {
	// A separate source keeps rendering out of the gameplay random stream.
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	v := &view{stars: make([][2]float64, starCount)}
	for i := range v.stars {
		v.stars[i] = [2]float64{rng.Float64(), rng.Float64()}
	}
	return v
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSpace)

	p.drawSky(screen)
	p.drawStars(screen)
	p.drawClouds(screen)
	p.drawGround(screen)
	p.drawRuns(screen)
	p.drawPlayer(screen)

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// fillRect draws a world-space rect through the camera.
func (p *Playing) fillRect(screen *ebiten.Image, r entity.Rect, scroll float64, c color.Color) {
	x, y := p.camera.WorldToScreen(r.X, r.Y, scroll)
	z := p.camera.Zoom()
	if y > float64(p.height) || y+r.H*z < 0 || x > float64(p.width) || x+r.W*z < 0 {
		return
	}
	ebitenutil.DrawRect(screen, x, y, r.W*z, r.H*z, c)
}

func (p *Playing) drawSky(screen *ebiten.Image) {
	sky := p.layout.Sky
	r := sky.Rect()
	band := r.H / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / float64(skyBands-1)
		c := lerpColor(colorSkyTop, colorSkyLow, t)
		p.fillRect(screen, entity.Rect{X: r.X, Y: r.Y + float64(i)*band, W: r.W, H: band + 1}, sky.ScrollFactor, c)
	}
}

func (p *Playing) drawStars(screen *ebiten.Image) {
	stars := p.layout.Stars
	if stars.Alpha <= 0 {
		return
	}
	a := uint8(255 * stars.Alpha)
	c := color.RGBA{a, a, a, a}
	r := stars.Rect()
	for _, s := range p.view.stars {
		x := r.X + s[0]*r.W
		y := r.Y + s[1]*r.H
		ebitenutil.DrawRect(screen, x, y, 2, 2, c)
	}
}

func (p *Playing) drawClouds(screen *ebiten.Image) {
	for _, cloud := range p.layout.Clouds {
		r := cloud.Rect()
		// three puffs per cloud
		p.fillRect(screen, entity.Rect{X: r.X, Y: r.Y + r.H*0.45, W: r.W, H: r.H * 0.55}, cloud.ScrollFactor, colorCloud)
		p.fillRect(screen, entity.Rect{X: r.X + r.W*0.15, Y: r.Y + r.H*0.2, W: r.W * 0.4, H: r.H * 0.5}, cloud.ScrollFactor, colorCloud)
		p.fillRect(screen, entity.Rect{X: r.X + r.W*0.45, Y: r.Y, W: r.W * 0.4, H: r.H * 0.6}, cloud.ScrollFactor, colorCloud)
	}
}

func (p *Playing) drawGround(screen *ebiten.Image) {
	for _, b := range p.ground.Bricks {
		body := b.Body()
		p.fillRect(screen, body, 1, colorGround)
		p.fillRect(screen, entity.Rect{X: body.X, Y: body.Y, W: body.W, H: 6}, 1, colorGrass)
	}
}

func (p *Playing) drawRuns(screen *ebiten.Image) {
	for _, run := range p.platforms.Runs() {
		c := colorBrick
		if run.State == entity.RunLanded {
			c = colorLanded
		}
		for _, b := range run.Bricks {
			r := entity.RectFromCenter(b.X, b.Y, entity.BrickSize, entity.BrickSize)
			p.fillRect(screen, entity.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, 1, c)
			p.fillRect(screen, entity.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: 8}, 1, colorBrickTop)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	sprite := p.player.SpriteRect()
	if p.view.playerImg == nil {
		p.view.playerImg = ebiten.NewImage(int(sprite.W), int(sprite.H))
		p.view.playerImg.Fill(colorPlayer)
	}

	cx, cy := sprite.Center()
	sx, sy := p.camera.WorldToScreen(cx, cy, 1)
	z := p.camera.Zoom()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sprite.W/2, -sprite.H/2)
	if p.player.LookLeft() {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Rotate(p.player.Rotation)
	op.GeoM.Scale(z, z)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(p.view.playerImg, op)

	// Draw hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.fillRect(screen, p.player.HitRect(), 1, colorHitbox)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	text := fmt.Sprintf("Score: %d", p.platforms.Score())
	if p.opts.Autoplay {
		text += "  [AUTO]"
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 10)

	if p.state.Running() && p.platforms.Score() == 0 {
		ebitenutil.DebugPrintAt(screen, "Click / Space: Jump | ESC: Pause", 10, p.height-20)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.width), float64(p.height), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.width/2-50, p.height/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 120}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.width), float64(p.height), overlay)

	text := fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress R to restart", p.platforms.Score())
	ebitenutil.DebugPrintAt(screen, text, p.width/2-60, p.height/2-30)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = mathx.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
