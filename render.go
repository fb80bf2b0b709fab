package park

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTileSize is the largest tile edge, in world units, faces are split
// into. Smaller tiles give smoother lighting and fewer sorting artifacts.
const DefaultTileSize float32 = 1

// triangle is one screen-space triangle waiting to be sorted and drawn.
type triangle struct {
	verts [3]ebiten.Vertex
	image *ebiten.Image
	layer Layer
	// depth is the mean NDC z; larger is farther away.
	depth float32
	order int
}

// Renderer draws a Scene with a painter's algorithm: every face is
// tessellated, lit per vertex, clipped, culled and sorted back to front
// before being handed to DrawTriangles.
type Renderer struct {
	// TileSize bounds the tile edge length of tessellated faces.
	TileSize float32
	// Debug enables per-frame stats logging.
	Debug bool
	// StatsInterval is how many frames pass between debug log lines.
	StatsInterval int

	logger *slog.Logger

	tris    []triangle
	sortBuf []triangle

	grid    []clipVertex
	polyBuf []clipVertex
	clipOut []clipVertex
	clipTmp []clipVertex

	batchVerts []ebiten.Vertex
	batchInds  []uint16

	frames int
	stats  RenderStats
}

// NewRenderer creates a renderer with the default tile size.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		TileSize:      DefaultTileSize,
		StatsInterval: 60,
		logger:        logger,
		// A triangle clipped by two planes has at most five corners.
		clipOut: make([]clipVertex, 0, 8),
		clipTmp: make([]clipVertex, 0, 8),
	}
}

// Stats returns the counters of the last drawn frame.
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Draw renders the scene onto screen as seen through the state's camera and
// lit by its light.
func (r *Renderer) Draw(screen *ebiten.Image, scene *Scene, st *State, textures *TextureCache) {
	screen.Fill(ClearColor.toRGBA())

	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	view := frameView{
		viewProj: ProjectionMatrix(st.Projection, st.Camera.Zoom, w, h).Mul4(st.Camera.ViewMatrix()),
		light:    st.Light.resolve(st.Camera),
		width:    float32(w),
		height:   float32(h),
	}

	var stats RenderStats
	t0 := time.Now()
	r.build(scene.Root(), &view, textures, &stats)
	t1 := time.Now()
	r.mergeSort()
	t2 := time.Now()
	stats.batches = r.submit(screen)
	t3 := time.Now()

	stats.buildTime = t1.Sub(t0)
	stats.sortTime = t2.Sub(t1)
	stats.submitTime = t3.Sub(t2)
	stats.triangles = len(r.tris)
	r.stats = stats
	r.frames++
	r.debugLog()
}

// frameView is everything about the viewpoint needed to build a frame.
type frameView struct {
	viewProj      mgl32.Mat4
	light         lightFrame
	width, height float32
}

// build fills r.tris with every visible triangle of the subtree at root.
func (r *Renderer) build(root *Node, view *frameView, textures *TextureCache, stats *RenderStats) {
	r.tris = r.tris[:0]
	root.Walk(func(n *Node) {
		world := n.World()
		for i := range n.Parts {
			p := &n.Parts[i]
			stats.parts++
			r.buildPart(world.Mul4(p.Model), p, view, textures, stats)
		}
	})
}

func (r *Renderer) buildPart(model mgl32.Mat4, p *Part, view *frameView, textures *TextureCache, stats *RenderStats) {
	img := textures.whitePixel()
	tw, th := float32(1), float32(1)
	tint := ColorWhite
	plain := true
	if p.Material.Diffuse != "" {
		// A missing texture falls back to the tint when the part has one.
		if tex := textures.Get(p.Material.Diffuse); !tex.Missing || !p.Material.hasTint() {
			img = tex.Image
			tw, th = float32(tex.Width), float32(tex.Height)
			plain = false
		}
	}
	if plain && p.Material.hasTint() {
		tint = p.Material.Tint
	}
	spec := textures.SpecularStrength(p.Material.Specular)
	shininess := p.Material.Shininess
	if shininess <= 0 {
		shininess = defaultShininess
	}

	for fi := range unitCube {
		wf, ok := transformFace(model, &unitCube[fi])
		if !ok {
			continue
		}
		stats.faces++
		nu, nv := tileCounts(&wf, r.TileSize)

		// Lit grid of (nu+1) x (nv+1) vertices in clip space. Shades above 1
		// are kept and saturate in the framebuffer.
		r.grid = r.grid[:0]
		for j := 0; j <= nv; j++ {
			t := float32(j) / float32(nv)
			for i := 0; i <= nu; i++ {
				s := float32(i) / float32(nu)
				pos, uv := facePoint(&wf, s, t)
				shade := float32(1)
				if !p.Material.Emissive {
					shade = view.light.shade(pos, wf.normal, spec, shininess)
				}
				r.grid = append(r.grid, clipVertex{
					pos:   view.viewProj.Mul4x1(pos.Vec4(1)),
					u:     uv[0] * tw,
					v:     uv[1] * th,
					shade: shade,
				})
			}
		}

		stride := nu + 1
		for j := 0; j < nv; j++ {
			for i := 0; i < nu; i++ {
				a := r.grid[j*stride+i]
				b := r.grid[j*stride+i+1]
				c := r.grid[(j+1)*stride+i+1]
				d := r.grid[(j+1)*stride+i]
				r.emit(a, b, c, img, tint, p.Layer, view, stats)
				r.emit(a, c, d, img, tint, p.Layer, view, stats)
			}
		}
	}
}

// emit clips one counter-clockwise triangle, projects the pieces and appends
// the front-facing ones.
func (r *Renderer) emit(a, b, c clipVertex, img *ebiten.Image, tint Color, layer Layer, view *frameView, stats *RenderStats) {
	r.polyBuf = append(r.polyBuf[:0], a, b, c)
	poly := clipPolygon(r.polyBuf, r.clipOut, r.clipTmp)
	if len(poly) < 3 {
		stats.clipped++
		return
	}

	s0 := toScreen(poly[0], view.width, view.height)
	for i := 1; i+1 < len(poly); i++ {
		s1 := toScreen(poly[i], view.width, view.height)
		s2 := toScreen(poly[i+1], view.width, view.height)
		if !frontFacing(s0, s1, s2) {
			stats.culled++
			continue
		}
		r.tris = append(r.tris, triangle{
			verts: [3]ebiten.Vertex{vertex(s0, tint), vertex(s1, tint), vertex(s2, tint)},
			image: img,
			layer: layer,
			depth: (s0.z + s1.z + s2.z) / 3,
			order: len(r.tris),
		})
	}
}

func vertex(s screenVertex, tint Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   s.x,
		DstY:   s.y,
		SrcX:   s.u,
		SrcY:   s.v,
		ColorR: s.shade * tint.R,
		ColorG: s.shade * tint.G,
		ColorB: s.shade * tint.B,
		ColorA: 1,
	}
}

// --- Merge sort ---

// triangleLessOrEqual orders by layer, then far to near, then submission
// order. Using <= for order keeps the sort stable.
func triangleLessOrEqual(a, b *triangle) bool {
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts r.tris in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.tris)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]triangle, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.tris
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.tris, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []triangle, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if triangleLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
