// Package polymap lets a user trace polygon regions over images with the
// mouse, for [Ebitengine].
//
// Each target element gets its own [Controller], a drawing session and an
// overlay [Canvas]. Clicking adds a vertex in the target's own pixel space;
// modifier keys change what a click does:
//
//   - undo modifier (default Meta): remove the last vertex
//   - finalize modifier (default Shift): commit the polygon and start fresh
//   - clear-all modifier (default Alt): erase every shape on the overlay
//
// When several modifiers are held the priority is undo, finalize, clear-all.
// While a polygon is in progress the overlay shows a preview edge to the
// pointer.
//
// # Quick start
//
//	surface := polymap.NewSurface(800, 600)
//	img := polymap.NewImageElement("map", mapImage)
//	surface.Root().AddChild(img)
//	if err := surface.Create([]*polymap.Element{img}, polymap.DefaultOptions()); err != nil {
//		log.Fatal(err)
//	}
//	polymap.Run(surface, polymap.RunConfig{Title: "Regions"})
//
// # Coordinates
//
// Page coordinates are document coordinates; screen coordinates are what the
// window shows. A [Viewport] holds the scroll offset and the root border
// (client) offset between them. [MapPointer] rounds a pointer's page
// position into a target's local space, half up, so drawn vertices stay
// attached to the same image pixels however the page is scrolled.
//
// # Rendering
//
// Controllers talk to a [RenderSink]. [Canvas] is the built-in sink that
// tessellates shapes with ebiten's vector package. Any other type with
// CreateShape, UpdateShape and ClearAllShapes can stand in.
//
// # Events
//
// Set an [EventStore] with [Surface.SetEventStore] to observe vertex adds,
// undos, finalized regions and clears. The ecs subpackage publishes them
// into a Donburi world.
//
// # Scripting
//
// [LoadScript] parses a JSON list of click, hover, wait, scroll and
// screenshot steps. Attach the runner with [Surface.SetScriptRunner] to
// replay a drawing session frame by frame, e.g. for visual regression
// screenshots.
//
// # Logging
//
// The package is silent by default. Pass a [log/slog.Logger] to [SetLogger]
// to see attach, skip and per-action records.
//
// [Ebitengine]: https://ebitengine.org
package polymap
