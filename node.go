package park

import "github.com/go-gl/mathgl/mgl32"

// Material describes how a part is textured and lit.
type Material struct {
	// Diffuse is the texture file name under the resource directory.
	Diffuse string
	// Specular selects one of the shared specular maps.
	Specular SpecularLevel
	// Shininess is the Phong exponent. Zero means defaultShininess.
	Shininess float32
	// Emissive parts ignore the light and are drawn at full brightness.
	Emissive bool
	// Tint colors the part when it has no texture or its texture is missing.
	// The zero value leaves it white.
	Tint Color
}

func (m Material) hasTint() bool {
	return m.Tint.A > 0
}

const defaultShininess float32 = 32

// Part is one textured cuboid. Model maps the unit cube into the owning
// node's space.
type Part struct {
	Name     string
	Model    mgl32.Mat4
	Material Material
	Layer    Layer
}

// Node groups parts and child nodes under a shared transform.
type Node struct {
	Name string

	Parent   *Node
	children []*Node

	// Position and Yaw (degrees about +Y) place the node in its parent.
	Position mgl32.Vec3
	Yaw      float32

	// Motion, if set, is applied inside the node's placement.
	Motion *Motion

	Parts []Part

	// Visible hides the node and its subtree when false.
	Visible bool

	world mgl32.Mat4
}

// NewNode creates an empty visible node at the origin.
func NewNode(name string) *Node {
	return &Node{Name: name, Visible: true, world: mgl32.Ident4()}
}

// At sets the node position and returns the node for chaining.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = mgl32.Vec3{x, y, z}
	return n
}

// AddPart appends a part to the node and returns the node for chaining.
func (n *Node) AddPart(name string, model mgl32.Mat4, mat Material) *Node {
	n.Parts = append(n.Parts, Part{Name: name, Model: model, Material: mat, Layer: LayerObject})
	return n
}

// AddPartOn appends a part drawn in the given layer.
func (n *Node) AddPartOn(layer Layer, name string, model mgl32.Mat4, mat Material) *Node {
	n.Parts = append(n.Parts, Part{Name: name, Model: model, Material: mat, Layer: layer})
	return n
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("park: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("park: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("park: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// Find returns the first node named name in this subtree, depth first.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for n and every visible descendant, depth first. Hidden
// subtrees are skipped.
func (n *Node) Walk(fn func(*Node)) {
	if !n.Visible {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// PartCount returns the number of parts in this subtree, hidden ones included.
func (n *Node) PartCount() int {
	count := len(n.Parts)
	for _, c := range n.children {
		count += c.PartCount()
	}
	return count
}

// World returns the world matrix computed by the last transform update.
func (n *Node) World() mgl32.Mat4 {
	return n.world
}

// LocalMatrix returns Translate(Position) * RotateY(Yaw) * Motion.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.Yaw != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(n.Yaw)))
	}
	if n.Motion != nil {
		m = m.Mul4(n.Motion.Matrix())
	}
	return m
}

// updateWorldTransform recomputes world matrices for n and its subtree.
func updateWorldTransform(n *Node, parent mgl32.Mat4) {
	n.world = parent.Mul4(n.LocalMatrix())
	for _, c := range n.children {
		updateWorldTransform(c, n.world)
	}
}

// updateMotions advances every motion in the subtree by dt seconds.
func updateMotions(n *Node, dt float32) {
	if n.Motion != nil {
		n.Motion.Update(dt)
	}
	for _, c := range n.children {
		updateMotions(c, dt)
	}
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
