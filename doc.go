// Package canvasray answers "is the pointer over UI?" for [Ebitengine] games.
//
// Game input code often has to decide whether a click belongs to the HUD or
// to the world behind it. canvasray keeps a lightweight tree of UI hit
// regions per [Canvas], raycasts a pointer position against it, and filters
// the result by layer, layer name, or tag.
//
// # Quick start
//
//	canvas := canvasray.NewCanvas("hud")
//	button := canvasray.NewElement("play", 120, 40)
//	button.X, button.Y = 20, 20
//	button.AddTag("Button")
//	canvas.Root().AddChild(button)
//
//	events := canvasray.NewEventSystem()
//	events.AddCanvas(canvas)
//	tester := canvas.AttachHitTester(canvasray.NewHitTester(canvas, events, nil))
//
//	// each frame
//	events.Update()
//	if tester.IsCursorOverUI() {
//		// route the click to the UI
//	}
//
// # Elements
//
// Every hit region is an [Element]. Elements form a tree rooted at
// [Canvas.Root] and inherit their parent's transform. An element is hit when
// it is a RaycastTarget, it and all its ancestors are Visible and
// BlocksRaycasts, and the pointer falls inside its HitShape (or its
// Width x Height box when no shape is set). ZIndex orders siblings; later
// siblings and higher ZIndex values are in front.
//
// # Queries
//
// [HitTester] exposes the queries: [HitTester.IsPointerOverUI],
// [HitTester.IsPointerOverLayer], [HitTester.IsPointerOverLayerName],
// [HitTester.IsPointerOverTag], and [HitTester.PointerOverUI] for the raw
// front-to-back hit list. Every call raycasts afresh. A HitTester can be
// bound to a single Canvas or to an [EventSystem], which raycasts all of its
// canvases from highest SortOrder to lowest.
//
// Each Canvas owns at most one live HitTester: the first passed to
// [Canvas.AttachHitTester] wins and later ones are disposed.
//
// # Layers
//
// Layers are small integers (0-31) named in a [LayerTable]. Unknown names
// resolve to [NoLayer], which no element can be on.
//
// # ECS integration
//
// Hover changes can be forwarded to an [EntityStore]. The canvasray/ecs
// module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package canvasray
