package pagemesh

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(VertexLayout()) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 1 {
		t.Fatalf("len(Attributes) = %d, want 1", len(l.Attributes))
	}
	a := l.Attributes[0]
	if a.Format != gputypes.VertexFormatFloat32x2 || a.Offset != 0 || a.ShaderLocation != 0 {
		t.Errorf("attribute = %+v, want float32x2 at offset 0, location 0", a)
	}
}

func TestVertexStrideMatchesBuffer(t *testing.T) {
	s := NewSpec(100, 200, 2, 1)
	if got := s.BufferLen() * 4; got != s.VertexCount()*VertexStride {
		t.Errorf("buffer bytes = %d, want %d", got, s.VertexCount()*VertexStride)
	}
}

func TestBufferUsage(t *testing.T) {
	if VertexBufferUsage&gputypes.BufferUsageVertex == 0 {
		t.Error("VertexBufferUsage lacks BufferUsageVertex")
	}
	if IndexBufferUsage&gputypes.BufferUsageIndex == 0 {
		t.Error("IndexBufferUsage lacks BufferUsageIndex")
	}
	if VertexBufferUsage&gputypes.BufferUsageCopyDst == 0 {
		t.Error("VertexBufferUsage lacks BufferUsageCopyDst")
	}
}
