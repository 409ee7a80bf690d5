package game

import (
	"math"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// particle is one confetti glyph. Positions are fractions of the screen
// so the effect survives resizes.
type particle struct {
	x, y  float64
	vy    float64
	glyph rune
	color core.Color
}

var confettiGlyphs = []rune{'*', '+', '.', 'o', '~', '\''}

func (g *Game) spawnConfetti() {
	n := g.cfg.Animation.ConfettiParticles
	g.confetti = make([]particle, n)
	for i := range g.confetti {
		g.confetti[i] = g.newParticle(g.rng.Float64())
	}
}

func (g *Game) newParticle(y float64) particle {
	return particle{
		x:     g.rng.Float64(),
		y:     y,
		vy:    0.005 + g.rng.Float64()*0.015,
		glyph: confettiGlyphs[g.rng.Intn(len(confettiGlyphs))],
		color: core.ConfettiColors[g.rng.Intn(len(core.ConfettiColors))],
	}
}

// stepConfetti moves particles down, respawning at the top, until the
// configured duration has passed.
func (g *Game) stepConfetti() {
	if g.sinceWin >= g.cfg.Animation.ConfettiDuration {
		g.confetti = nil
		return
	}
	for i := range g.confetti {
		p := &g.confetti[i]
		p.y += p.vy
		if p.y >= 1 {
			*p = g.newParticle(0)
		}
	}
}

// pulseOn is the two-phase blink used for the player and goal markers.
func (g *Game) pulseOn() bool {
	return math.Sin(g.pulse*2*math.Pi) >= 0
}

// glow returns the hint intensity in [0, 1].
func (g *Game) glow() float64 {
	return core.ClampF((math.Sin(g.pulse*g.cfg.Animation.GlowSpeed)+1)/2, 0, 1)
}
