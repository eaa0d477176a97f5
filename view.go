package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/portalarena/common"
	"github.com/milk9111/portalarena/scene"
	"github.com/milk9111/portalarena/session"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// pixelsPerUnit maps world units to screen pixels in the top-down view.
const pixelsPerUnit = 20.0

// View draws the scene graph from above: X to the right, Z downwards.
// Height is shown by shading.
type View struct {
	face ebtext.Face
}

func NewView() *View {
	return &View{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (v *View) project(p mgl64.Vec3) (float32, float32) {
	return float32(common.BaseWidth/2 + p.X()*pixelsPerUnit), float32(common.BaseHeight/2 + p.Z()*pixelsPerUnit)
}

func (v *View) Draw(screen *ebiten.Image, s *session.Session) {
	screen.Fill(colornames.Black)

	s.Scene().Each(func(_ scene.NodeID, n scene.Node) {
		if n.Hidden {
			return
		}
		v.drawNode(screen, n)
	})
	v.drawLockouts(screen, s)
	v.drawCamera(screen, s.Scene().Camera())
}

func (v *View) drawNode(screen *ebiten.Image, n scene.Node) {
	x, y := v.project(n.Position)
	w := float32(n.Size.X() * pixelsPerUnit)
	d := float32(n.Size.Z() * pixelsPerUnit)
	c := shade(n.Color, n.Position.Y())

	switch n.Kind {
	case scene.NodeGround:
		vector.FillRect(screen, x-w/2, y-d/2, w, d, n.Color, false)
	case scene.NodeWall:
		vector.FillRect(screen, x-w/2, y-d/2, w, d, n.Color, false)
		vector.StrokeRect(screen, x-w/2, y-d/2, w, d, 1, colornames.Lightgray, false)
	case scene.NodeBox:
		vector.FillRect(screen, x-w/2, y-d/2, w, d, c, true)
	case scene.NodeSphere:
		vector.FillCircle(screen, x, y, w/2, c, true)
	case scene.NodeRing:
		// a ring seen from above is a segment across its facing direction
		half := float64(w / 2)
		sin, cos := math.Sincos(n.Yaw)
		dx, dy := float32(cos*half), float32(-sin*half)
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 3, c, true)
		vector.StrokeCircle(screen, x, y, w/2, 1, common.Fade(c, 0.4), true)
	}
}

// drawLockouts dims portals that are locked out, in proportion to the time
// left.
func (v *View) drawLockouts(screen *ebiten.Image, s *session.Session) {
	now := s.Now()
	for _, p := range s.Portals().Portals() {
		if p.Active {
			continue
		}
		x, y := v.project(p.Position)
		r := float32(p.Radius * pixelsPerUnit)
		left := p.LockoutUntil.Sub(now).Seconds()
		vector.FillCircle(screen, x, y, r, common.Fade(colornames.Gray, 0.2+0.6*math.Min(1, math.Max(0, left))), true)
	}
}

func (v *View) drawCamera(screen *ebiten.Image, cam scene.Camera) {
	x, y := v.project(cam.Position)
	f := cam.Forward()
	flat := mgl64.Vec3{f.X(), 0, f.Z()}
	if flat.Len() == 0 {
		return
	}
	tip := cam.Position.Add(flat.Normalize().Mul(1.5))
	tx, ty := v.project(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, colornames.Yellow, true)
}

func (v *View) DrawHUD(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(10, float64(10+i*16))
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, v.face, op)
	}
}

// shade brightens nodes that are higher up so jumps and falls are visible
// from above.
func shade(c color.RGBA, height float64) color.RGBA {
	return common.Scale(c, 0.6+0.4*math.Min(1, math.Max(0, height/10)))
}
