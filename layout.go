package pagemesh

import "github.com/gogpu/gputypes"

// VertexStride is the byte size of one vertex in the buffers produced by
// Generate: two float32 values (x, y).
const VertexStride = 8

// Buffer usages and topology for uploading and drawing a mesh.
var (
	// VertexBufferUsage is the usage of a buffer holding Grid.Bytes.
	VertexBufferUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

	// IndexBufferUsage is the usage of a buffer holding TriangleIndices.
	IndexBufferUsage = gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst

	// Topology is the primitive topology TriangleIndices is built for.
	Topology = gputypes.PrimitiveTopologyTriangleList
)

// VertexLayout returns the vertex buffer layout of a mesh buffer:
// one float32x2 position attribute at shader location 0.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

