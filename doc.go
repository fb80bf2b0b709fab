// Package park is an interactive 3D park viewer built on [Ebitengine].
//
// The park is a fixed set of textured cuboids arranged in a [Node] tree: a
// lawn and basketball court, trees, two hoops, a standing man, a dog and
// birds, playground equipment and park furniture. Every part is the same unit
// cube stretched by its own model matrix.
//
// Ebitengine draws 2D triangles, so the [Renderer] does the 3D work on the
// CPU. Faces are split into tiles, lit per vertex by a Phong spot light,
// clipped against the near and far planes, culled and sorted back to front
// before they are submitted with DrawTriangles.
//
// # Quick start
//
//	cfg := park.DefaultConfig()
//	v, err := park.NewViewer(cfg, slog.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := park.Run(v); err != nil {
//		log.Fatal(err)
//	}
//
// # State
//
// Camera, light and view toggles live in a [State] that [State.Update]
// advances once per frame from a [FrameInput]. Toggles are debounced by a
// frame count so that holding a key does not flicker.
//
// # Automation
//
// A [TestRunner] plays a JSON script of key presses, mouse moves, waits and
// screenshots through the same input path as the keyboard.
//
// [Ebitengine]: https://ebitengine.org
package park
