package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/peyilo/pagemesh"
	"github.com/peyilo/pagemesh/internal/preview"
)

// meshDoc is the structured form written by the json and yaml formats.
type meshDoc struct {
	PageWidth  float32      `json:"pageWidth" yaml:"page_width"`
	PageHeight float32      `json:"pageHeight" yaml:"page_height"`
	MeshWidth  int          `json:"meshWidth" yaml:"mesh_width"`
	MeshHeight int          `json:"meshHeight" yaml:"mesh_height"`
	Vertices   [][2]float32 `json:"vertices" yaml:"vertices,flow"`
}

func newMeshDoc(g *pagemesh.Grid) meshDoc {
	s := g.Spec()
	doc := meshDoc{
		PageWidth:  s.PageWidth,
		PageHeight: s.PageHeight,
		MeshWidth:  s.MeshWidth,
		MeshHeight: s.MeshHeight,
		Vertices:   make([][2]float32, g.Len()),
	}
	for i := range doc.Vertices {
		v := g.Vertex(i)
		doc.Vertices[i] = [2]float32{v.X, v.Y}
	}
	return doc
}

// writeText writes one row of vertices per line.
func writeText(w io.Writer, g *pagemesh.Grid) error {
	bw := bufio.NewWriter(w)
	s := g.Spec()
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Columns(); col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			v := g.At(col, row)
			fmt.Fprintf(bw, "(%g,%g)", v.X, v.Y)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, g *pagemesh.Grid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newMeshDoc(g))
}

func writeYAML(w io.Writer, g *pagemesh.Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newMeshDoc(g)); err != nil {
		return err
	}
	return enc.Close()
}

func writeBinary(w io.Writer, g *pagemesh.Grid) error {
	_, err := w.Write(g.Bytes())
	return err
}

func writePNG(w io.Writer, g *pagemesh.Grid, opts preview.Options) error {
	img, err := preview.Render(g, opts)
	if err != nil {
		return err
	}
	return preview.Encode(w, img)
}

// write dispatches on format.
func write(w io.Writer, format string, g *pagemesh.Grid, opts preview.Options) error {
	switch format {
	case "text":
		return writeText(w, g)
	case "json":
		return writeJSON(w, g)
	case "yaml":
		return writeYAML(w, g)
	case "bin":
		return writeBinary(w, g)
	case "png":
		return writePNG(w, g, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
