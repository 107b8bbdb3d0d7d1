/*
Package interact connects pointer input to a curve editor.

A Surface owns the point store and the curve type selection. Hosts feed
pointer events into it, either by attaching it to an event Source or by
calling Handle directly:

	secondary click on the canvas     adds a point
	pointer-down on a handle          starts dragging that point
	pointer-move anywhere             moves the dragged point
	pointer-up anywhere               ends the drag
	double click on a handle          deletes the point

Pointer-move and pointer-up are global to the surface: a drag continues when
the pointer leaves the handle and only ends on pointer-up.

Listener registration is explicit. Attach registers one listener per event
type and Detach removes all of them, so no callbacks remain after a surface
is torn down, however the host structures its re-renders.

After every change of points or curve type the surface re-generates the path
before calling its OnRender callback. All of this runs synchronously on the
caller's goroutine; a surface is not safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package interact
