// Package celebrate plays the confetti animation shown after a win. The
// animation only writes to its io.Writer; it stops when its duration runs
// out or its context is cancelled.
package celebrate

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const (
	canvasWidth  = 160
	canvasHeight = 96

	startVelocity = 0.03
	gravity       = 0.004
	drag          = 0.92
	particleLife  = 8
	particleSize  = 3
	maxParticles  = 50
)

// Palette holds the confetti colours
var Palette = []string{"#10b981", "#fbbf24", "#3b82f6", "#ef4444"}

var background = colorful.Color{R: 0.02, G: 0.31, B: 0.23}

// Options control one run of the animation
type Options struct {
	Duration time.Duration
	Interval time.Duration
	Width    int // terminal columns
	Height   int // terminal rows
	Rand     *rand.Rand
}

// DefaultOptions returns the standard five-second show, four frames a second
func DefaultOptions(width, height int) Options {
	return Options{
		Duration: 5 * time.Second,
		Interval: 250 * time.Millisecond,
		Width:    width,
		Height:   height,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type particle struct {
	x, y   float64
	vx, vy float64
	color  colorful.Color
	age    int
}

// Run draws frames to w until the duration elapses or ctx is done. It
// returns ctx.Err() when cancelled and nil when the show ran to its end.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	opts = withDefaults(opts)

	palette := make([]colorful.Color, 0, len(Palette))
	for _, hex := range Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return err
		}
		palette = append(palette, c)
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	start := time.Now()
	end := start.Add(opts.Duration)
	var particles []particle

	fmt.Fprint(w, "\x1b[2J")
	defer fmt.Fprint(w, "\x1b[0m\x1b[2J\x1b[H")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			timeLeft := end.Sub(now)
			if timeLeft <= 0 {
				return nil
			}

			count := ParticleCount(timeLeft, opts.Duration)
			particles = burst(particles, opts.Rand, palette, count, randomInRange(opts.Rand, 0.1, 0.3), opts.Rand.Float64()-0.2)
			particles = burst(particles, opts.Rand, palette, count, randomInRange(opts.Rand, 0.7, 0.9), opts.Rand.Float64()-0.2)
			particles = step(particles)

			fmt.Fprint(w, "\x1b[H")
			fmt.Fprint(w, Frame(draw(particles), opts.Width, opts.Height))
		}
	}
}

// ParticleCount returns how many particles each burst throws: fifty at the
// start, falling linearly to none at the end.
func ParticleCount(timeLeft, duration time.Duration) int {
	if duration <= 0 || timeLeft <= 0 {
		return 0
	}
	if timeLeft > duration {
		timeLeft = duration
	}
	return int(maxParticles * float64(timeLeft) / float64(duration))
}

func withDefaults(opts Options) Options {
	def := DefaultOptions(80, 24)
	if opts.Duration <= 0 {
		opts.Duration = def.Duration
	}
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Rand == nil {
		opts.Rand = def.Rand
	}
	return opts
}

func randomInRange(r *rand.Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// burst throws count particles in every direction from (ox, oy)
func burst(ps []particle, r *rand.Rand, palette []colorful.Color, count int, ox, oy float64) []particle {
	for i := 0; i < count; i++ {
		angle := r.Float64() * 2 * math.Pi
		speed := startVelocity * (0.5 + r.Float64()/2)
		ps = append(ps, particle{
			x:     ox,
			y:     oy,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			color: palette[r.Intn(len(palette))],
		})
	}
	return ps
}

// step moves every particle one frame and drops the expired ones
func step(ps []particle) []particle {
	alive := ps[:0]
	for _, p := range ps {
		p.x += p.vx
		p.y += p.vy
		p.vx *= drag
		p.vy = p.vy*drag + gravity
		p.age++
		if p.age < particleLife {
			alive = append(alive, p)
		}
	}
	return alive
}

// draw paints the particles on a fixed-size canvas. Older particles fade
// into the background.
func draw(ps []particle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	bg := colorfulToColor(background)
	for y := 0; y < canvasHeight; y++ {
		for x := 0; x < canvasWidth; x++ {
			img.Set(x, y, bg)
		}
	}

	for _, p := range ps {
		fade := float64(p.age) / particleLife
		c := colorfulToColor(p.color.BlendRgb(background, fade))
		px, py := int(p.x*canvasWidth), int(p.y*canvasHeight)
		for dy := 0; dy < particleSize; dy++ {
			for dx := 0; dx < particleSize; dx++ {
				if image.Pt(px+dx, py+dy).In(img.Bounds()) {
					img.Set(px+dx, py+dy, c)
				}
			}
		}
	}
	return img
}

// Frame converts an image to ANSI art of width columns and height rows,
// two pixels per cell with the upper half block.
func Frame(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Bilinear)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))
			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func colorfulToColor(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI colors
func ansiColorString(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}
