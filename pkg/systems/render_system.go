package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/greentrain/pkg/components"
	"github.com/gonewx/greentrain/pkg/ecs"
)

// RenderSystem 绘制装饰粒子
// 粒子按实体创建顺序绘制，后生成的在上层
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建粒子渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// DrawParticles 绘制所有粒子
func (s *RenderSystem) DrawParticles(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if p.Alpha <= 0 {
			continue
		}
		drawParticle(screen, p, pos.X, pos.Y)
	}
}

// drawParticle 按形状绘制单个粒子
func drawParticle(screen *ebiten.Image, p *components.ParticleComponent, x, y float64) {
	c := withAlpha(p.Color, p.Alpha)
	size := float32(p.Size)

	switch p.Shape {
	case components.ShapeCircle:
		vector.FillCircle(screen, float32(x), float32(y), size/2, c, true)
	case components.ShapeLeaf:
		drawRotatedQuad(screen, x, y, p.Size, p.Size*0.45, p.Rotation, c)
	default:
		drawRotatedQuad(screen, x, y, p.Size, p.Size*0.6, p.Rotation, c)
	}
}

// drawRotatedQuad 绘制以 (x, y) 为中心、旋转 deg 度的矩形
func drawRotatedQuad(screen *ebiten.Image, x, y, w, h, deg float64, c color.Color) {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	hw, hh := w/2, h/2

	var path vector.Path
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	for i, corner := range corners {
		px := x + corner[0]*cos - corner[1]*sin
		py := y + corner[0]*sin + corner[1]*cos
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()

	op := &vector.FillOptions{}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, op, drawOp)
}

// withAlpha 按透明度缩放颜色（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
