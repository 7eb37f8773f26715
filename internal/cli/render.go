package cli

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	gocube "github.com/SeamusWaldron/gocube_viewer"
)

// pixel is one virtual pixel of the canvas. A terminal cell holds two of
// them stacked vertically, drawn with the upper half block.
type pixel uint8

const (
	pxEmpty pixel = iota
	pxBody
	pxSticker // pxSticker + Color
)

func stickerPixel(c gocube.Color) pixel {
	return pxSticker + pixel(c)
}

func (p pixel) color() lipgloss.Color {
	switch p {
	case pxEmpty:
		return lipgloss.Color("")
	case pxBody:
		return lipgloss.Color("#1c1c1c")
	default:
		return lipgloss.Color(gocube.Color(p - pxSticker).Hex())
	}
}

// stickerInset is the sticker size relative to its cubie face.
const stickerInset = 0.82

// canvas is a grid of virtual pixels, width by height.
type canvas struct {
	width, height int
	px            []pixel
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &canvas{width: width, height: height, px: make([]pixel, width*height)}
}

func (c *canvas) at(x, y int) pixel {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return pxEmpty
	}
	return c.px[y*c.width+x]
}

func (c *canvas) count(p pixel) int {
	n := 0
	for _, v := range c.px {
		if v == p {
			n++
		}
	}
	return n
}

// fillQuad fills a convex quadrilateral given in screen order.
func (c *canvas) fillQuad(q [4]gocube.Point, v pixel) {
	area := 0.0
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) < 1e-9 {
		return
	}
	sign := 1.0
	if area < 0 {
		sign = -1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := max(0, int(math.Floor(minX)))
	x1 := min(c.width-1, int(math.Ceil(maxX)))
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(c.height-1, int(math.Ceil(maxY)))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideConvex(q, float64(x)+0.5, float64(y)+0.5, sign) {
				c.px[y*c.width+x] = v
			}
		}
	}
}

func insideConvex(q [4]gocube.Point, x, y, sign float64) bool {
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross*sign < 0 {
			return false
		}
	}
	return true
}

// faceQuad is one cubie face ready to paint.
type faceQuad struct {
	depth   float64
	body    [4]gocube.Point
	sticker [4]gocube.Point
	color   pixel
}

// faceCorners returns the four corners of face f of a cubie centred on the
// origin, scaled by k, in winding order.
func faceCorners(f gocube.Face, half, k float64) [4]mgl64.Vec3 {
	a := int(f.Axis())
	u, v := (a+1)%3, (a+2)%3
	var out [4]mgl64.Vec3
	signs := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, s := range signs {
		var p mgl64.Vec3
		p[a] = float64(f.Sign()) * half
		p[u] = s[0] * half * k
		p[v] = s[1] * half * k
		out[i] = p
	}
	return out
}

// drawCube paints every camera-facing cubie face, farthest first.
func drawCube(c *canvas, p gocube.Projector, g gocube.Geometry, draws []gocube.CubieDraw) {
	half := g.Edge / 2
	var quads []faceQuad

	for _, d := range draws {
		model := d.Model(g)
		mv := p.ModelView().Mul4(model)
		cubie := gocube.Cubie{Pos: d.Pos, Faces: d.Faces}

		for _, f := range gocube.Faces {
			n := f.Normal()
			normal := mgl64.Vec3{float64(n[0]), float64(n[1]), float64(n[2])}
			centre := normal.Mul(half)

			eyeCentre := mv.Mul4x1(centre.Vec4(1)).Vec3()
			eyeNormal := mv.Mul4x1(normal.Vec4(0)).Vec3()
			if eyeNormal.Dot(eyeCentre) >= 0 {
				continue
			}

			fq := faceQuad{depth: p.DepthModel(model, centre), color: pxBody}
			body := faceCorners(f, half, 1)
			sticker := faceCorners(f, half, stickerInset)
			for i := range body {
				fq.body[i] = p.ProjectModel(model, body[i])
				fq.sticker[i] = p.ProjectModel(model, sticker[i])
			}
			if cubie.Visible(f) {
				fq.color = stickerPixel(d.Faces[f])
			}
			quads = append(quads, fq)
		}
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].depth > quads[j].depth
	})

	for _, q := range quads {
		c.fillQuad(q.body, pxBody)
		if q.color != pxBody {
			c.fillQuad(q.sticker, q.color)
		}
	}
}

// cellStyles caches one style per (upper, lower) pixel pair.
type cellStyles map[[2]pixel]lipgloss.Style

func (cs cellStyles) render(top, bottom pixel) string {
	if top == pxEmpty && bottom == pxEmpty {
		return " "
	}
	key := [2]pixel{top, bottom}
	st, ok := cs[key]
	if !ok {
		switch {
		case top == pxEmpty:
			st = lipgloss.NewStyle().Foreground(bottom.color())
		case bottom == pxEmpty:
			st = lipgloss.NewStyle().Foreground(top.color())
		default:
			st = lipgloss.NewStyle().Foreground(top.color()).Background(bottom.color())
		}
		cs[key] = st
	}
	if top == pxEmpty {
		return st.Render("▄")
	}
	return st.Render("▀")
}

// cells converts the canvas into rows of rendered terminal cells.
func (c *canvas) cells(styles cellStyles) [][]string {
	rows := make([][]string, (c.height+1)/2)
	for r := range rows {
		row := make([]string, c.width)
		for x := 0; x < c.width; x++ {
			row[x] = styles.render(c.at(x, 2*r), c.at(x, 2*r+1))
		}
		rows[r] = row
	}
	return rows
}

func joinCells(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell)
		}
	}
	return b.String()
}
