package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/pankajah/portfolio-site/internal/content"
	"github.com/pankajah/portfolio-site/internal/motion"
	"github.com/pankajah/portfolio-site/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet and script, rooted so that
// "css/site.css" and "js/site.js" resolve.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Options controls where the page expects to be hosted.
type Options struct {
	// BasePath is the path prefix for subdirectory hosting, e.g. "/portfolio-site".
	BasePath string
	// AssetPrefix prefixes stylesheet, script and image URLs. Defaults to BasePath.
	AssetPrefix string
}

// NormalizeBasePath turns user input into "" or "/prefix" without a trailing slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func (o Options) normalized() Options {
	o.BasePath = NormalizeBasePath(o.BasePath)
	if o.AssetPrefix == "" {
		o.AssetPrefix = o.BasePath
	} else if !strings.Contains(o.AssetPrefix, "://") {
		o.AssetPrefix = NormalizeBasePath(o.AssetPrefix)
	} else {
		o.AssetPrefix = strings.TrimSuffix(o.AssetPrefix, "/")
	}
	return o
}

// Asset resolves an absolute site path against the asset prefix.
func (o Options) Asset(path string) string {
	return o.AssetPrefix + "/" + strings.TrimPrefix(path, "/")
}

// Home is the URL of the page itself.
func (o Options) Home() string {
	return o.BasePath + "/"
}

type pageData struct {
	Title     string
	Portfolio *content.Portfolio
	Profile   content.Profile
	Summary   template.HTML
	Motion    motion.ClientConfig
}

// Renderer renders the portfolio page. It is safe for concurrent use once built.
type Renderer struct {
	opts Options
	tmpl *template.Template
	data pageData
}

// NewRenderer validates the portfolio, converts its markdown copy and parses
// the page templates.
func NewRenderer(p *content.Portfolio, opts Options) (*Renderer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}
	opts = opts.normalized()

	summary, err := render.Markdown(p.Profile.Summary)
	if err != nil {
		return nil, fmt.Errorf("rendering summary: %w", err)
	}
	intros := make(map[string]template.HTML, len(p.Sections))
	for _, s := range p.Sections {
		if s.Intro == "" {
			continue
		}
		html, err := render.Markdown(s.Intro)
		if err != nil {
			return nil, fmt.Errorf("rendering %s intro: %w", s.ID, err)
		}
		intros[s.ID] = html
	}

	funcs := template.FuncMap{
		"asset": opts.Asset,
		"home":  opts.Home,
		"css":   func(s string) template.CSS { return template.CSS(s) },
		// Links are checked by Portfolio.Validate, which also admits tel: URIs
		// that html/template would otherwise reject.
		"url": func(s string) template.URL { return template.URL(s) },
		"add": func(a, b int) int { return a + b },
		"delay": func(base, step float64, i int) string {
			return seconds(motion.Stagger{DelayChildren: base, StaggerChildren: step}.Delay(i))
		},
		"itemDelay": func(i, j int) string { return seconds(motion.ItemDelay(i, j)) },
		"reveal": func(id string) (motion.SectionMotion, error) {
			m, ok := motion.SectionByID(id)
			if !ok {
				return m, fmt.Errorf("no reveal configuration for section %q", id)
			}
			return m, nil
		},
		"section": func(id string) (content.Section, error) {
			s, ok := p.Section(id)
			if !ok {
				return s, fmt.Errorf("section %q: %w", id, content.ErrNotFound)
			}
			return s, nil
		},
		"intro": func(id string) template.HTML { return intros[id] },
	}

	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{
		opts: opts,
		tmpl: tmpl,
		data: pageData{
			Title:     p.Profile.Name + " | " + p.Profile.Headline,
			Portfolio: p,
			Profile:   p.Profile,
			Summary:   summary,
			Motion:    motion.Config(),
		},
	}, nil
}

// Options returns the normalised hosting options.
func (r *Renderer) Options() Options { return r.opts }

// Portfolio returns the rendered content.
func (r *Renderer) Portfolio() *content.Portfolio { return r.data.Portfolio }

// Render writes the full page.
func (r *Renderer) Render(w io.Writer) error {
	return r.execute(w, "page")
}

// RenderNotFound writes the 404 page.
func (r *Renderer) RenderNotFound(w io.Writer) error {
	return r.execute(w, "notfound")
}

// Bytes renders the page into memory.
func (r *Renderer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) execute(w io.Writer, name string) error {
	// Buffer so a failing template never leaves a half-written page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, r.data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
