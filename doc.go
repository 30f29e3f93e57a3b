// Package clipdemo renders a canvas clipping demonstration.
//
// # Overview
//
// A Renderer draws a fixed sequence of example panels onto a Surface. Each
// panel shows one clipping technique: plain rectangle, difference framing,
// circular exclusion, intersection of two rectangles, a combined
// circle-and-rectangle path, a rounded rectangle and a tight inset clip. Two
// text panels show skew and translation, and the last panel exercises a
// quick-reject test against the active clip.
//
// # Quick Start
//
//	r, err := clipdemo.NewRenderer(clipdemo.DefaultStyle(), clipdemo.DefaultLabels())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, h := r.Layout().CanvasSize()
//	s := raster.New(w, h, raster.WithFont(fontSource))
//	r.Render(s)
//	_ = s.SavePNG("clipdemo.png")
//
// # Surfaces
//
// The Surface interface is the only boundary the renderer touches. Two
// implementations ship with the module:
//   - raster: pixels, backed by the gg software rasterizer
//   - recording: typed commands, used for inspection and playback
//
// Clip operations take a ClipOp. Each surface chooses its own primitive for
// intersect and difference; the renderer never branches on the backend.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Every
// example draws in a frame translated to its layout cell.
package clipdemo
