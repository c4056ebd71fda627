// Package pagemesh generates vertex grids for page-curl effects.
//
// # Overview
//
// A page-curl effect in a reading UI warps a page bitmap by drawing it
// through a mesh: a regular grid of vertices that spans the page and is
// later displaced to follow the curl. pagemesh produces the flat grid the
// warp starts from, in the interleaved float32 layout expected by
// bitmap-mesh draw calls and GPU vertex buffers.
//
// # Quick Start
//
//	import "github.com/peyilo/pagemesh"
//
//	spec := pagemesh.NewSpec(1080, 1920, 30, 50)
//	verts := make([]float32, spec.BufferLen())
//	if err := pagemesh.Generate(verts, spec); err != nil {
//		// errors.Is(err, pagemesh.ErrInvalidDimension), ...
//	}
//
// Or let a Grid own the buffer:
//
//	g, err := pagemesh.NewGrid(spec)
//	back := pagemesh.Reflect(foldPoint, foldDir)
//	g.Transform(back)
//
// # Layout
//
// Vertex (x, y) of a MeshWidth×MeshHeight mesh has index
// i = y*(MeshWidth+1) + x and is stored at verts[2i], verts[2i+1].
// Rows are the outer loop, columns the inner one.
//
// # Coordinate System
//
// By default the origin is the top-left page corner and y grows down,
// matching screen and bitmap coordinates. Use WithOrigin(OriginBottomLeft)
// for y-up conventions.
//
// # Errors
//
// Invalid inputs are refused before any write: ErrInvalidDimension for
// non-positive cell counts or page sizes, ErrInvalidBuffer for a nil
// buffer, ErrSizeMismatch for a buffer of the wrong length.
package pagemesh
