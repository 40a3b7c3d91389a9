package exporter

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/ports"
)

// fakeMmdc writes a shell script that copies fixture to the -o argument
func fakeMmdc(t *testing.T, fixture string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake mmdc needs a POSIX shell")
	}
	script := "#!/bin/sh\n" +
		"while [ $# -gt 0 ]; do\n" +
		"  case \"$1\" in -o) out=\"$2\"; shift;; esac\n" +
		"  shift\n" +
		"done\n" +
		"cp \"" + fixture + "\" \"$out\"\n"
	path := filepath.Join(t.TempDir(), "mmdc")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func failingMmdc(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake mmdc needs a POSIX shell")
	}
	script := "#!/bin/sh\necho 'Parse error on line 2' >&2\nexit 1\n"
	path := filepath.Join(t.TempDir(), "mmdc")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func pngFixture(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(t.TempDir(), "fixture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func newExporter(t *testing.T, mmdc string) *MermaidCLIExporter {
	t.Helper()
	e, err := NewMermaidCLIExporter(Options{MmdcPath: mmdc, OutputDir: t.TempDir()})
	require.NoError(t, err)
	e.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return e
}

func TestExport_PNG(t *testing.T) {
	e := newExporter(t, fakeMmdc(t, pngFixture(t)))

	path, err := e.Export(context.Background(), ports.ExportRequest{
		Definition:  "classDiagram\n  A --> B",
		DiagramType: "classDiagram",
		Format:      domain.FormatPNG,
	})

	require.NoError(t, err)
	assert.Equal(t, e.OutputDir(), filepath.Dir(path))
	assert.Equal(t, "uml_diagram_classDiagram_2026-03-04T05-06-07.000Z.png", filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestExport_JPEG(t *testing.T) {
	e := newExporter(t, fakeMmdc(t, pngFixture(t)))

	path, err := e.Export(context.Background(), ports.ExportRequest{
		Definition:  "flowchart TD\n  A --> B",
		DiagramType: "flowchart",
		Format:      domain.FormatJPEG,
	})

	require.NoError(t, err)
	assert.Equal(t, ".jpeg", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mmdc    func(t *testing.T) string
		req     ports.ExportRequest
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty definition",
			mmdc:    func(t *testing.T) string { return "mmdc" },
			req:     ports.ExportRequest{Format: domain.FormatPNG},
			wantErr: domain.ErrNothingRendered,
		},
		{
			name:    "missing binary",
			mmdc:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "does-not-exist") },
			req:     ports.ExportRequest{Definition: "graph TD", Format: domain.FormatPNG},
			wantErr: ErrMmdcNotFound,
		},
		{
			name:    "non-zero exit",
			mmdc:    failingMmdc,
			req:     ports.ExportRequest{Definition: "graph TD", Format: domain.FormatPNG},
			wantMsg: "Parse error on line 2",
		},
		{
			name:    "unknown format",
			mmdc:    func(t *testing.T) string { return "mmdc" },
			req:     ports.ExportRequest{Definition: "graph TD", Format: "svg"},
			wantMsg: "svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExporter(t, tt.mmdc(t))

			path, err := e.Export(context.Background(), tt.req)

			assert.Empty(t, path)
			var exportErr *domain.ExportError
			require.ErrorAs(t, err, &exportErr)
			assert.Equal(t, "export", exportErr.Op)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNewMermaidCLIExporter_RequiresOutputDir(t *testing.T) {
	_, err := NewMermaidCLIExporter(Options{})
	assert.Error(t, err)
}

func TestExport_SameInstantKeepsEarlierFile(t *testing.T) {
	e := newExporter(t, fakeMmdc(t, pngFixture(t)))
	req := ports.ExportRequest{
		Definition:  "classDiagram\n  A --> B",
		DiagramType: "classDiagram",
		Format:      domain.FormatPNG,
	}

	first, err := e.Export(context.Background(), req)
	require.NoError(t, err)
	second, err := e.Export(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "uml_diagram_classDiagram_2026-03-04T05-06-07.000Z_2.png", filepath.Base(second))
	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

func TestExport_FailureLeavesNoFile(t *testing.T) {
	e := newExporter(t, failingMmdc(t))

	_, err := e.Export(context.Background(), ports.ExportRequest{
		Definition:  "classDiagram\n  A -->",
		DiagramType: "classDiagram",
		Format:      domain.FormatPNG,
	})
	require.Error(t, err)

	entries, err := os.ReadDir(e.OutputDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
