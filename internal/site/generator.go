package site

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Generator writes a fully static export of the site.
type Generator struct {
	Renderer  *Renderer
	OutputDir string
	// ImagesDir is copied to OutputDir/images when it exists.
	ImagesDir string
}

// NewGenerator creates a Generator for the renderer.
func NewGenerator(r *Renderer, outputDir, imagesDir string) *Generator {
	return &Generator{
		Renderer:  r,
		OutputDir: outputDir,
		ImagesDir: imagesDir,
	}
}

// Generate builds the export. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	written := 0

	page, err := g.Renderer.Bytes()
	if err != nil {
		return 0, err
	}
	if err := g.write("index.html", page); err != nil {
		return 0, err
	}
	written++

	notFound, err := os.Create(filepath.Join(g.OutputDir, "404.html"))
	if err != nil {
		return 0, err
	}
	err = g.Renderer.RenderNotFound(notFound)
	if cerr := notFound.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("writing 404.html: %w", err)
	}
	written++

	data, err := json.MarshalIndent(g.Renderer.Portfolio(), "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling content: %w", err)
	}
	if err := g.write("content.json", data); err != nil {
		return 0, err
	}
	written++

	n, err := g.copyTree(Static(), "static")
	if err != nil {
		return 0, fmt.Errorf("writing static assets: %w", err)
	}
	written += n

	if g.ImagesDir != "" {
		if info, statErr := os.Stat(g.ImagesDir); statErr == nil && info.IsDir() {
			n, err := g.copyTree(os.DirFS(g.ImagesDir), "images")
			if err != nil {
				return 0, fmt.Errorf("copying images: %w", err)
			}
			written += n
		}
	}

	return written, nil
}

func (g *Generator) write(rel string, data []byte) error {
	path := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// copyTree copies every regular file of src under OutputDir/dest.
func (g *Generator) copyTree(src fs.FS, dest string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		if err := g.write(dest+"/"+path, data); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}
