package park

import "github.com/hajimehoshi/ebiten/v2"

// maxBatchVertices keeps every index inside uint16.
const maxBatchVertices = 1<<16 - 1

// submit draws the sorted triangles, merging consecutive triangles that share
// a texture into one DrawTriangles call. It returns the number of calls.
func (r *Renderer) submit(target *ebiten.Image) int {
	r.batchVerts = r.batchVerts[:0]
	r.batchInds = r.batchInds[:0]

	calls := 0
	var current *ebiten.Image
	for i := range r.tris {
		t := &r.tris[i]
		if t.image != current || len(r.batchVerts)+3 > maxBatchVertices {
			if r.flush(target, current) {
				calls++
			}
			current = t.image
		}
		base := uint16(len(r.batchVerts))
		r.batchVerts = append(r.batchVerts, t.verts[:]...)
		r.batchInds = append(r.batchInds, base, base+1, base+2)
	}
	if r.flush(target, current) {
		calls++
	}
	return calls
}

// flush submits accumulated vertices as a single DrawTriangles call and
// reports whether anything was drawn.
func (r *Renderer) flush(target, img *ebiten.Image) bool {
	if len(r.batchVerts) == 0 || img == nil {
		r.batchVerts = r.batchVerts[:0]
		r.batchInds = r.batchInds[:0]
		return false
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	op.Filter = ebiten.FilterLinear
	target.DrawTriangles(r.batchVerts, r.batchInds, img, &op)

	r.batchVerts = r.batchVerts[:0]
	r.batchInds = r.batchInds[:0]
	return true
}
