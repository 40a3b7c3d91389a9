package exporter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
)

// JPEGQuality is the quality used when re-encoding PNG output
const JPEGQuality = 92

// maxNameAttempts bounds the numeric suffixes tried for one export name
const maxNameAttempts = 100

// ErrMmdcNotFound means the Mermaid CLI is not installed or not on PATH
var ErrMmdcNotFound = errors.New("mermaid CLI (mmdc) not found")

// Options configures the Mermaid CLI exporter
type Options struct {
	Background string // Defaults to "white"
	MmdcPath   string // Defaults to "mmdc" resolved on PATH
	OutputDir  string
}

// MermaidCLIExporter renders definitions to images with the Mermaid CLI
type MermaidCLIExporter struct {
	background string
	mmdcPath   string
	now        func() time.Time
	outputDir  string
}

// NewMermaidCLIExporter creates an exporter writing into opts.OutputDir
func NewMermaidCLIExporter(opts Options) (*MermaidCLIExporter, error) {
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("export directory is required")
	}
	absOutputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve export directory: %w", err)
	}
	if opts.MmdcPath == "" {
		opts.MmdcPath = "mmdc"
	}
	if opts.Background == "" {
		opts.Background = "white"
	}

	return &MermaidCLIExporter{
		background: opts.Background,
		mmdcPath:   opts.MmdcPath,
		now:        time.Now,
		outputDir:  absOutputDir,
	}, nil
}

// OutputDir returns the directory images are written to
func (e *MermaidCLIExporter) OutputDir() string {
	return e.outputDir
}

// Export writes the diagram image and returns its path.
// All failures are returned as *domain.ExportError.
func (e *MermaidCLIExporter) Export(ctx context.Context, req ports.ExportRequest) (string, error) {
	path, err := e.export(ctx, req)
	if err != nil {
		return "", &domain.ExportError{Op: "export", Err: err}
	}
	return path, nil
}

func (e *MermaidCLIExporter) export(ctx context.Context, req ports.ExportRequest) (string, error) {
	if strings.TrimSpace(req.Definition) == "" {
		return "", domain.ErrNothingRendered
	}
	format, err := domain.ParseExportFormat(string(req.Format))
	if err != nil {
		return "", err
	}

	executable, err := exec.LookPath(e.mmdcPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMmdcNotFound, e.mmdcPath)
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	workDir, err := os.MkdirTemp("", "umlstudio-export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "diagram.mmd")
	if err := os.WriteFile(inputPath, []byte(req.Definition), 0644); err != nil {
		return "", fmt.Errorf("failed to write input file: %w", err)
	}

	pngPath := filepath.Join(workDir, "diagram.png")
	if err := e.run(ctx, executable, inputPath, pngPath); err != nil {
		return "", err
	}

	outputPath, err := reserveOutputPath(e.outputDir, domain.ExportFileName(req.DiagramType, format, e.now()))
	if err != nil {
		return "", err
	}
	switch format {
	case domain.FormatJPEG:
		err = convertToJPEG(pngPath, outputPath)
	default:
		err = copyFile(pngPath, outputPath)
	}
	if err != nil {
		os.Remove(outputPath)
		return "", err
	}

	logging.Logger.Info("Diagram image written", "path", outputPath, "format", format)
	return outputPath, nil
}

func (e *MermaidCLIExporter) run(ctx context.Context, executable, inputPath, outputPath string) error {
	args := []string{"-i", inputPath, "-o", outputPath, "-b", e.background}
	cmd := exec.CommandContext(ctx, executable, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running mermaid CLI", "executable", executable, "args", args)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		logging.Logger.Error("Mermaid CLI failed", "error", err, "stderr", msg)
		if msg != "" {
			return fmt.Errorf("mmdc failed: %s: %w", firstLine(msg), err)
		}
		return fmt.Errorf("mmdc failed: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("mmdc produced no output")
	}
	return nil
}

// convertToJPEG re-encodes a PNG as JPEG, flattening transparency onto white
func convertToJPEG(pngPath, jpegPath string) error {
	in, err := os.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open rendered image: %w", err)
	}
	defer in.Close()

	src, err := png.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode rendered image: %w", err)
	}

	bounds := src.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, src, bounds.Min, draw.Over)

	out, err := os.Create(jpegPath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := jpeg.Encode(out, flat, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		out.Close()
		os.Remove(jpegPath)
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// reserveOutputPath creates an empty file named name in dir, adding a
// numeric suffix when an earlier export already took the name
func reserveOutputPath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= maxNameAttempts; i++ {
		candidate := name
		if i > 1 {
			candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create output file: %w", err)
		}
		return path, f.Close()
	}
	return "", fmt.Errorf("failed to find a free name for %s in %s", name, dir)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read rendered image: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
