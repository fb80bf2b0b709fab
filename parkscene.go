package park

import "github.com/go-gl/mathgl/mgl32"

func mat(diffuse string, spec SpecularLevel) Material {
	return Material{Diffuse: diffuse, Specular: spec}
}

// tinted is mat with a fallback color for resource sets that lack the file.
func tinted(diffuse string, spec SpecularLevel, c Color) Material {
	return Material{Diffuse: diffuse, Specular: spec, Tint: c}
}

// Fallback colors of the textures only the extra props use.
var (
	tintFur     = Color{0.55, 0.38, 0.22, 1}
	tintFace    = Color{0.62, 0.45, 0.3, 1}
	tintFeather = Color{0.35, 0.4, 0.55, 1}
	tintBeak    = Color{0.95, 0.7, 0.2, 1}
	tintMetal   = Color{0.6, 0.62, 0.65, 1}
	tintChain   = Color{0.45, 0.45, 0.48, 1}
	tintWood    = Color{0.55, 0.36, 0.2, 1}
	tintSeat    = Color{0.2, 0.2, 0.22, 1}
	tintRamp    = Color{0.85, 0.2, 0.15, 1}
	tintMerry   = Color{0.2, 0.45, 0.8, 1}
	tintBin     = Color{0.15, 0.4, 0.2, 1}
	tintGlass   = Color{1, 0.95, 0.75, 1}
)

// Grass is the 50x50 lawn everything stands on. It sits a hair below zero so
// the court never fights with it.
func Grass() *Node {
	n := NewNode("grass")
	n.AddPartOn(LayerGround, "lawn", cuboid(0, -0.01, 0, 50, 0, 50), mat("grass.jpg", SpecMild))
	return n
}

// Court is the flat basketball court centered on the origin.
func Court() *Node {
	n := NewNode("court")
	n.AddPartOn(LayerSurface, "floor", cuboid(0, 0, 0, 5, 0, 10), mat("bball_court.png", SpecNone))
	return n
}

// Tree is a trunk with three stacked leaf blocks. (x, y, z) is the center of
// the trunk.
func Tree(x, y, z float32) *Node {
	n := NewNode("tree").At(x, y, z)
	n.AddPart("trunk", cuboid(0, 0, 0, 0.2, 2, 0.2), mat("tree_trunk.png", SpecNone))
	tops := []struct{ x, y, sx, sy, sz float32 }{
		{-1, 1, 1, 0.4, 1},
		{-0.6, 1.4, 0.6, 0.2, 0.6},
		{-0.3, 1.6, 0.3, 0.1, 0.3},
	}
	leaves := mat("tree_leaves.jpg", SpecMild)
	for _, t := range tops {
		m := NewModel().Translate(t.x, t.y, 0).Scale(t.sx, t.sy, t.sz).Translate(1, 0.5, 0)
		n.AddPart("leaves", m.Mat4(), leaves)
	}
	return n
}

// Hoop is a basketball hoop on a pole at (x, y, z). The first hoop faces +Z;
// second mirrors every z offset so the pair face each other across the court.
func Hoop(second bool, x, y, z float32) *Node {
	s := float32(1)
	name := "hoop"
	if second {
		s = -1
		name = "hoop2"
	}
	n := NewNode(name).At(x, y, z)

	pole := mat("bball_pole.png", SpecHigh)
	n.AddPart("pole", cuboid(0, 0, 0, 0.1, 1.5, 0.1), pole)
	n.AddPart("arm", cuboid(0, 0.8, 0.2*s, 0.1, 0.1, 0.5), pole)

	n.AddPart("board_front", cuboid(0, 1, 0.5*s, 1, 1, 0.05), mat("bball_board_front.png", SpecMild))
	n.AddPart("board_back", cuboid(0, 1, 0.45*s, 1, 1, 0.05), mat("bball_board_back.png", SpecMild))

	edge := mat("bball_board_edge.png", SpecMild)
	n.AddPart("edge_top", cuboid(0, 1.5, 0.475*s, 1, 0.01, 0.1), edge)
	n.AddPart("edge_bottom", cuboid(0, 0.5, 0.475*s, 1, 0.01, 0.1), edge)
	n.AddPart("edge_left", cuboid(-0.5*s, 1, 0.475*s, 0.01, 1, 0.1), edge)
	n.AddPart("edge_right", cuboid(0.5*s, 1, 0.475*s, 0.01, 1, 0.1), edge)

	ring := mat("bball_ring.png", SpecHigh)
	n.AddPart("ring_base", cuboid(0, 0.675, 0.575*s, 0.05, 0.05, 0.1), ring)
	n.AddPart("ring_back", cuboid(0, 0.675, 0.625*s, 0.25, 0.05, 0.025), ring)
	n.AddPart("ring_front", cuboid(0, 0.675, 0.85*s, 0.25, 0.05, 0.025), ring)
	n.AddPart("ring_left", cuboid(-0.137, 0.675, 0.737*s, 0.025, 0.05, 0.25), ring)
	n.AddPart("ring_right", cuboid(0.137, 0.675, 0.737*s, 0.025, 0.05, 0.25), ring)
	return n
}

// Man is a standing figure whose left shoe is at (x, y, z).
func Man(x, y, z float32) *Node {
	n := NewNode("man").At(x, y, z)
	shoe := mat("man_shoe.png", SpecNone)
	leg := mat("man_leg.png", SpecNone)
	top := mat("man_top.png", SpecNone)
	skin := mat("man_neck.png", SpecNone)

	n.AddPart("left_shoe", cuboid(0, 0.045, 0, 0.15, 0.1, 0.25), shoe)
	n.AddPart("right_shoe", cuboid(0.25, 0.045, 0, 0.15, 0.1, 0.25), shoe)
	n.AddPart("left_leg", cuboid(0, 0.27, 0.05, 0.15, 0.35, 0.15), leg)
	n.AddPart("right_leg", cuboid(0.25, 0.27, 0.05, 0.15, 0.35, 0.15), leg)
	n.AddPart("torso", cuboid(0.125, 0.67, 0.05, 0.4, 0.45, 0.15), top)
	n.AddPart("left_arm", cuboid(-0.13, 0.75, 0.05, 0.1, 0.25, 0.1), top)
	n.AddPart("left_hand", cuboid(-0.13, 0.58, 0.05, 0.1, 0.1, 0.1), skin)
	n.AddPart("right_arm", cuboid(0.38, 0.75, 0.05, 0.1, 0.25, 0.1), top)
	n.AddPart("right_hand", cuboid(0.38, 0.58, 0.05, 0.1, 0.1, 0.1), skin)
	n.AddPart("neck", cuboid(0.125, 0.92, 0.05, 0.1, 0.05, 0.1), skin)

	face := NewModel().Translate(0.125, 1.07, 0.05).Rotate(90, AxisX).Rotate(180, AxisX).Scale(0.25, 0.25, 0.25)
	n.AddPart("face", face.Mat4(), mat("man_face.png", SpecNone))
	n.AddPart("chin", cuboid(0.125, 0.945, 0.05, 0.24, 0.01, 0.24), skin)
	n.AddPart("hair", cuboid(0.125, 1.2, 0.05, 0.25, 0.01, 0.25), mat("man_head_top.png", SpecNone))

	back := NewModel().Translate(0.125, 1.07, 0.18).Rotate(180, AxisZ).Scale(0.25, 0.25, 0.01)
	n.AddPart("head_back", back.Mat4(), mat("man_head_back.png", SpecNone))
	left := NewModel().Translate(0, 1.07, 0.05).Rotate(90, AxisX).Rotate(180, AxisY).Scale(0.01, 0.25, 0.25)
	n.AddPart("head_left", left.Mat4(), mat("man_head_left.png", SpecNone))
	right := NewModel().Translate(0.25, 1.07, 0.05).Rotate(-90, AxisX).Scale(0.01, 0.25, 0.25)
	n.AddPart("head_right", right.Mat4(), mat("man_head_right.png", SpecNone))
	return n
}

// Dog stands with its nose toward +Z before yaw is applied. The tail wags.
func Dog(x, y, z, yaw float32) *Node {
	n := NewNode("dog").At(x, y, z)
	n.Yaw = yaw
	fur := tinted("dog_fur.png", SpecNone, tintFur)

	n.AddPart("body", cuboid(0, 0.35, 0, 0.25, 0.22, 0.6), fur)
	n.AddPart("head", cuboid(0, 0.5, 0.38, 0.2, 0.2, 0.22), tinted("dog_face.png", SpecNone, tintFace))
	n.AddPart("snout", cuboid(0, 0.46, 0.52, 0.1, 0.08, 0.1), fur)
	n.AddPart("left_ear", cuboid(-0.07, 0.63, 0.36, 0.05, 0.08, 0.04), fur)
	n.AddPart("right_ear", cuboid(0.07, 0.63, 0.36, 0.05, 0.08, 0.04), fur)
	for _, leg := range [][2]float32{{-0.08, 0.2}, {0.08, 0.2}, {-0.08, -0.2}, {0.08, -0.2}} {
		n.AddPart("leg", cuboid(leg[0], 0.12, leg[1], 0.07, 0.24, 0.07), fur)
	}

	tail := NewNode("tail")
	tail.AddPart("tail", NewModel().Translate(0, 0.5, -0.38).Rotate(-30, AxisX).Scale(0.04, 0.04, 0.22).Mat4(), fur)
	tail.Motion = NewSwing(AxisY, mgl32.Vec3{0, 0.45, -0.3}, 25, 0.6)
	n.AddChild(tail)
	return n
}

// Bird is a small bobbing bird. It is a node with a child so that yaw and
// bobbing stay independent.
func Bird(x, y, z float32) *Node {
	n := NewNode("bird").At(x, y, z)
	body := NewNode("bird_body")
	feather := tinted("bird_feather.png", SpecMild, tintFeather)
	body.AddPart("body", cuboid(0, 0.05, 0, 0.12, 0.1, 0.18), feather)
	body.AddPart("head", cuboid(0, 0.13, 0.08, 0.08, 0.08, 0.08), feather)
	body.AddPart("beak", cuboid(0, 0.12, 0.14, 0.03, 0.03, 0.05), tinted("bird_beak.png", SpecNone, tintBeak))
	body.AddPart("left_wing", cuboid(-0.07, 0.06, 0, 0.02, 0.06, 0.12), feather)
	body.AddPart("right_wing", cuboid(0.07, 0.06, 0, 0.02, 0.06, 0.12), feather)
	body.Motion = NewBob(AxisY, 0.05, 1.2)
	n.AddChild(body)
	return n
}

// SwingSet is a frame with two swinging seats hanging from the top bar.
func SwingSet(x, y, z, yaw float32) *Node {
	n := NewNode("swing_set").At(x, y, z)
	n.Yaw = yaw
	frame := tinted("metal.png", SpecHigh, tintMetal)
	for _, leg := range [][2]float32{{-1, -0.4}, {-1, 0.4}, {1, -0.4}, {1, 0.4}} {
		n.AddPart("leg", cuboid(leg[0], 1, leg[1], 0.08, 2, 0.08), frame)
	}
	n.AddPart("top_bar", cuboid(0, 2, 0, 2.1, 0.08, 0.08), frame)

	chain := tinted("chain.png", SpecHigh, tintChain)
	seat := tinted("swing_seat.png", SpecNone, tintSeat)
	for i, dx := range []float32{-0.5, 0.5} {
		s := NewNode("swing").At(dx, 0, 0)
		s.AddPart("chain", cuboid(-0.18, 1.25, 0, 0.02, 1.5, 0.02), chain)
		s.AddPart("chain", cuboid(0.18, 1.25, 0, 0.02, 1.5, 0.02), chain)
		s.AddPart("seat", cuboid(0, 0.5, 0, 0.45, 0.04, 0.2), seat)
		s.Motion = NewSwing(AxisX, mgl32.Vec3{0, 2, 0}, 20, 2.4+0.2*float32(i))
		n.AddChild(s)
	}
	return n
}

// Slide has a ladder at -Z and a ramp running down toward +Z.
func Slide(x, y, z, yaw float32) *Node {
	const (
		rampTilt   = 37.4
		rampLength = 2.39
	)
	n := NewNode("slide").At(x, y, z)
	n.Yaw = yaw
	metal := tinted("metal.png", SpecHigh, tintMetal)
	n.AddPart("rail", cuboid(-0.25, 0.75, -0.8, 0.05, 1.5, 0.05), metal)
	n.AddPart("rail", cuboid(0.25, 0.75, -0.8, 0.05, 1.5, 0.05), metal)
	for i := 0; i < 4; i++ {
		n.AddPart("rung", cuboid(0, 0.3+0.3*float32(i), -0.8, 0.5, 0.04, 0.04), metal)
	}
	n.AddPart("platform", cuboid(0, 1.5, -0.55, 0.6, 0.05, 0.5), tinted("wood.png", SpecNone, tintWood))

	ramp := NewModel().Translate(0, 0.775, 0.65).Rotate(rampTilt, AxisX).Scale(0.6, 0.04, rampLength)
	n.AddPart("ramp", ramp.Mat4(), tinted("slide_ramp.png", SpecHigh, tintRamp))
	for _, dx := range []float32{-0.32, 0.32} {
		side := NewModel().Translate(dx, 0.85, 0.65).Rotate(rampTilt, AxisX).Scale(0.04, 0.15, rampLength)
		n.AddPart("side", side.Mat4(), metal)
	}
	return n
}

// Seesaw tilts its plank about the base.
func Seesaw(x, y, z, yaw float32) *Node {
	n := NewNode("seesaw").At(x, y, z)
	n.Yaw = yaw
	n.AddPart("base", cuboid(0, 0.2, 0, 0.2, 0.4, 0.3), tinted("metal.png", SpecHigh, tintMetal))

	plank := NewNode("plank")
	plank.AddPart("plank", cuboid(0, 0.42, 0, 3, 0.06, 0.3), tinted("wood.png", SpecNone, tintWood))
	plank.AddPart("handle", cuboid(-1.3, 0.55, 0, 0.05, 0.2, 0.05), tinted("metal.png", SpecHigh, tintMetal))
	plank.AddPart("handle", cuboid(1.3, 0.55, 0, 0.05, 0.2, 0.05), tinted("metal.png", SpecHigh, tintMetal))
	plank.Motion = NewSwing(AxisZ, mgl32.Vec3{0, 0.42, 0}, 12, 3)
	n.AddChild(plank)
	return n
}

// MerryGoRound is an octagonal platform spinning about its hub.
func MerryGoRound(x, y, z float32) *Node {
	n := NewNode("merry_go_round").At(x, y, z)
	metal := tinted("metal.png", SpecHigh, tintMetal)
	n.AddPart("hub", cuboid(0, 0.1, 0, 0.3, 0.2, 0.3), metal)

	deck := NewNode("deck")
	top := tinted("merry_top.png", SpecMild, tintMerry)
	deck.AddPart("deck", cuboid(0, 0.25, 0, 2, 0.08, 2), top)
	deck.AddPart("deck", NewModel().Translate(0, 0.25, 0).Rotate(45, AxisY).Scale(2, 0.08, 2).Mat4(), top)
	for _, p := range [][2]float32{{-0.6, 0}, {0.6, 0}, {0, -0.6}, {0, 0.6}} {
		deck.AddPart("post", cuboid(p[0], 0.6, p[1], 0.05, 0.7, 0.05), metal)
	}
	deck.AddPart("bar", cuboid(0, 0.95, 0, 1.25, 0.05, 0.05), metal)
	deck.AddPart("bar", cuboid(0, 0.95, 0, 0.05, 0.05, 1.25), metal)
	deck.Motion = NewSpin(AxisY, mgl32.Vec3{}, 6)
	n.AddChild(deck)
	return n
}

// Bench faces +Z before yaw is applied.
func Bench(x, y, z, yaw float32) *Node {
	n := NewNode("bench").At(x, y, z)
	n.Yaw = yaw
	wood := tinted("wood.png", SpecNone, tintWood)
	n.AddPart("seat", cuboid(0, 0.45, 0, 1.6, 0.06, 0.45), wood)
	n.AddPart("back", cuboid(0, 0.8, -0.2, 1.6, 0.4, 0.05), wood)
	metal := tinted("metal.png", SpecHigh, tintMetal)
	for _, leg := range [][2]float32{{-0.7, -0.18}, {-0.7, 0.18}, {0.7, -0.18}, {0.7, 0.18}} {
		n.AddPart("leg", cuboid(leg[0], 0.22, leg[1], 0.06, 0.45, 0.06), metal)
	}
	return n
}

// PicnicTable is a table with a bench on each long side.
func PicnicTable(x, y, z, yaw float32) *Node {
	n := NewNode("picnic_table").At(x, y, z)
	n.Yaw = yaw
	wood := tinted("wood.png", SpecNone, tintWood)
	n.AddPart("top", cuboid(0, 0.75, 0, 1.8, 0.06, 0.8), wood)
	n.AddPart("bench", cuboid(0, 0.45, -0.7, 1.8, 0.05, 0.3), wood)
	n.AddPart("bench", cuboid(0, 0.45, 0.7, 1.8, 0.05, 0.3), wood)
	for _, dx := range []float32{-0.75, 0.75} {
		n.AddPart("leg", cuboid(dx, 0.37, 0, 0.08, 0.75, 0.08), wood)
		n.AddPart("support", cuboid(dx, 0.22, -0.7, 0.06, 0.45, 0.06), wood)
		n.AddPart("support", cuboid(dx, 0.22, 0.7, 0.06, 0.45, 0.06), wood)
	}
	return n
}

// Bin is a litter bin with a lid.
func Bin(x, y, z float32) *Node {
	n := NewNode("bin").At(x, y, z)
	n.AddPart("body", cuboid(0, 0.4, 0, 0.4, 0.8, 0.4), tinted("bin.png", SpecMild, tintBin))
	n.AddPart("lid", cuboid(0, 0.82, 0, 0.44, 0.04, 0.44), tinted("metal.png", SpecHigh, tintMetal))
	return n
}

// LampPost is a street lamp. The glass head glows regardless of the light.
func LampPost(x, y, z, yaw float32) *Node {
	n := NewNode("lamp_post").At(x, y, z)
	n.Yaw = yaw
	metal := tinted("metal.png", SpecHigh, tintMetal)
	n.AddPart("pole", cuboid(0, 1.5, 0, 0.08, 3, 0.08), metal)
	n.AddPart("arm", cuboid(0, 2.95, 0.25, 0.05, 0.05, 0.5), metal)
	n.AddPart("head", cuboid(0, 2.85, 0.45, 0.25, 0.12, 0.25), Material{Diffuse: "lamp_glass.png", Emissive: true, Tint: tintGlass})
	return n
}

// BuildPark populates the scene with the whole park.
func BuildPark(s *Scene) {
	root := s.Root()
	root.AddChild(Grass())
	root.AddChild(Court())

	root.AddChild(Tree(3, 1, 0))
	for _, t := range [][3]float32{{-6, 1, -8}, {-8, 1, 4}, {9, 1, -6}, {12, 1, 8}, {-12, 1, -12}, {15, 1, -2}} {
		root.AddChild(Tree(t[0], t[1], t[2]))
	}

	root.AddChild(Hoop(false, 0, 0.75, -5.5))
	root.AddChild(Hoop(true, 0, 0.75, 5.5))
	root.AddChild(Man(6, 0, 5))

	root.AddChild(Dog(7.5, 0, 3.5, -30))
	root.AddChild(Bird(-4, 0, 7))
	root.AddChild(Bird(3, 2.7, 0))

	root.AddChild(SwingSet(-9, 0, 0, 90))
	root.AddChild(Slide(-6, 0, -4, 0))
	root.AddChild(Seesaw(-6, 0, 4, 0))
	root.AddChild(MerryGoRound(-11, 0, 6))

	root.AddChild(Bench(4, 0, -3, -90))
	root.AddChild(Bench(-4, 0, -7, 45))
	root.AddChild(PicnicTable(10, 0, -10, 0))
	root.AddChild(Bin(4, 0, 3.5))
	root.AddChild(Bin(-5, 0, -1))
	root.AddChild(LampPost(3.5, 0, -6, 180))
	root.AddChild(LampPost(-3.5, 0, 6, 0))
	root.AddChild(LampPost(-8, 0, -6, 90))

	updateWorldTransform(root, mgl32.Ident4())
}
