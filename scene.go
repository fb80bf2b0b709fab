package park

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Specular map file names, indexed by SpecularLevel.
var specularMaps = [...]string{
	SpecNone: "no_spec.png",
	SpecMild: "mild_spec.png",
	SpecHigh: "high_spec.png",
}

// SpecularMap returns the texture file of a specular level.
func SpecularMap(level SpecularLevel) string {
	if int(level) < len(specularMaps) {
		return specularMaps[level]
	}
	return specularMaps[SpecNone]
}

// Scene owns the park node tree and the lamp marker.
type Scene struct {
	root *Node
	lamp *Node
}

// NewScene creates a scene with an empty root and a hidden lamp marker.
func NewScene() *Scene {
	root := NewNode("root")
	lamp := NewNode("lamp_marker")
	lamp.Visible = false
	lamp.AddPart("bulb", mgl32.Scale3D(0.15, 0.15, 0.15), Material{Diffuse: "lamp_glass.png", Emissive: true, Tint: tintGlass})
	root.AddChild(lamp)
	s := &Scene{root: root, lamp: lamp}
	updateWorldTransform(root, mgl32.Ident4())
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Lamp returns the marker drawn where a fixed light sits.
func (s *Scene) Lamp() *Node {
	return s.lamp
}

// Update advances motions when animate is set and recomputes world matrices.
func (s *Scene) Update(dt float32, animate bool) {
	if animate {
		updateMotions(s.root, dt)
	}
	updateWorldTransform(s.root, mgl32.Ident4())
}

// syncLamp shows the marker at the light's fixed position and hides it while
// the light follows the camera.
func (s *Scene) syncLamp(l *Light) {
	s.lamp.Visible = !l.Follow
	s.lamp.Position = l.Position
}

// TextureNames returns every texture the scene needs, sorted, including the
// three specular maps.
func (s *Scene) TextureNames() []string {
	seen := make(map[string]bool)
	for _, name := range specularMaps {
		seen[name] = true
	}
	var visit func(n *Node)
	visit = func(n *Node) {
		for _, p := range n.Parts {
			if p.Material.Diffuse != "" {
				seen[p.Material.Diffuse] = true
			}
		}
		for _, c := range n.children {
			visit(c)
		}
	}
	visit(s.root)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
