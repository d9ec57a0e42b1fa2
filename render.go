package main

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/system"
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

type drawable struct {
	body       *component.PhysicsBody
	appearance *component.Appearance
}

// drawWorld fills every collider shape with its entity's appearance, offset
// by the camera's left edge.
func drawWorld(screen *ebiten.Image, w *ecs.World, ps *system.PhysicsSystem, camX float64) {
	var items []drawable
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.AppearanceComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, app *component.Appearance) {
		items = append(items, drawable{body: body, appearance: app})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].appearance.RenderLayer < items[j].appearance.RenderLayer
	})

	for _, it := range items {
		for _, shape := range it.body.Shapes {
			poly, ok := shape.Class.(*cp.PolyShape)
			if !ok {
				continue
			}
			fill := it.appearance.Fill
			if ref, ok := ps.PartOf(shape); ok && ref.Label.Lethal() && it.appearance.Accent.A != 0 {
				fill = it.appearance.Accent
			}
			pts := make([]cp.Vector, poly.Count())
			for i := range pts {
				v := poly.TransformVert(i)
				pts[i] = cp.Vector{X: v.X - camX, Y: v.Y}
			}
			fillPolygon(screen, pts, fill)
		}
	}
}

func fillRect(screen *ebiten.Image, x, y, w, h float32, clr color.RGBA) {
	fillPolygon(screen, []cp.Vector{
		{X: float64(x), Y: float64(y)},
		{X: float64(x + w), Y: float64(y)},
		{X: float64(x + w), Y: float64(y + h)},
		{X: float64(x), Y: float64(y + h)},
	}, clr)
}

func fillPolygon(screen *ebiten.Image, pts []cp.Vector, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

const debugDotSize = 4

func drawPhysicsDebug(screen *ebiten.Image, space *cp.Space, camX float64) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, camX: camX})
}

// physicsDebugDrawer outlines chipmunk shapes and contact points.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos)
	vector.StrokeCircle(d.screen, x, y, float32(radius), 1, toNRGBA(outline), true)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32(v.X - d.camX), float32(v.Y)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
