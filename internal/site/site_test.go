package site

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajah/portfolio-site/internal/content"
	"github.com/pankajah/portfolio-site/internal/motion"
)

func renderPage(t *testing.T, opts Options) string {
	t.Helper()
	r, err := NewRenderer(content.Default(), opts)
	require.NoError(t, err)
	page, err := r.Bytes()
	require.NoError(t, err)
	return string(page)
}

func TestNormalizeBasePath(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"/":                "",
		"portfolio-site":   "/portfolio-site",
		"/portfolio-site/": "/portfolio-site",
		" /a/b/ ":          "/a/b",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeBasePath(in), "input %q", in)
	}
}

func TestOptionsAsset(t *testing.T) {
	root := Options{}.normalized()
	assert.Equal(t, "/static/css/site.css", root.Asset("/static/css/site.css"))
	assert.Equal(t, "/", root.Home())

	sub := Options{BasePath: "/portfolio-site/"}.normalized()
	assert.Equal(t, "/portfolio-site/images/headshot.jpg", sub.Asset("/images/headshot.jpg"))
	assert.Equal(t, "/portfolio-site/", sub.Home())

	cdn := Options{BasePath: "/portfolio-site", AssetPrefix: "https://cdn.example.com/site/"}.normalized()
	assert.Equal(t, "https://cdn.example.com/site/static/js/site.js", cdn.Asset("static/js/site.js"))
}

func TestRenderSectionsInDocumentOrder(t *testing.T) {
	page := renderPage(t, Options{})

	last := -1
	for _, id := range content.Default().Anchors() {
		idx := strings.Index(page, `<section id="`+id+`"`)
		require.GreaterOrEqual(t, idx, 0, "section %s missing", id)
		assert.Greater(t, idx, last, "section %s out of order", id)
		last = idx
	}
}

func TestRenderListsMatchLiteralData(t *testing.T) {
	p := content.Default()
	page := renderPage(t, Options{})

	sectionHTML := func(id string) string {
		start := strings.Index(page, `<section id="`+id+`"`)
		require.GreaterOrEqual(t, start, 0)
		end := strings.Index(page[start:], "</section>")
		require.Greater(t, end, 0)
		return page[start : start+end]
	}

	exp := sectionHTML(content.SectionExperience)
	assert.Equal(t, len(p.Experience), strings.Count(exp, "<article"))
	last := -1
	for _, e := range p.Experience {
		idx := strings.Index(exp, "<h3>"+e.Organization+"</h3>")
		require.GreaterOrEqual(t, idx, 0, e.Organization)
		assert.Greater(t, idx, last)
		last = idx
	}

	skills := sectionHTML(content.SectionSkills)
	total := 0
	for _, c := range p.Skills {
		total += len(c.Skills)
	}
	assert.Equal(t, len(p.Skills), strings.Count(skills, `class="card skill-card"`))
	assert.Equal(t, total, strings.Count(skills, "<li data-subitem"))

	projects := sectionHTML(content.SectionProjects)
	assert.Equal(t, len(p.Projects), strings.Count(projects, "<article"))
	assert.Contains(t, projects, "Project Image", "missing image falls back to a placeholder")

	leadership := sectionHTML(content.SectionLeadership)
	assert.Equal(t, len(p.Leadership), strings.Count(leadership, "<article"))
	achievements := 0
	for _, r := range p.Leadership {
		achievements += len(r.Achievements)
	}
	assert.Equal(t, achievements, strings.Count(leadership, "<li data-subitem"))
}

func TestRenderRevealAttributes(t *testing.T) {
	page := renderPage(t, Options{})
	for _, s := range motion.Sections() {
		attr := `data-reveal="` + s.ID + `" data-amount="`
		assert.Contains(t, page, attr, s.ID)
	}
	assert.NotContains(t, page, `data-reveal="home"`, "hero animates on mount")
	assert.Contains(t, page, "transition-delay: 0.50s")
}

func TestRenderNavAndOutboundLinks(t *testing.T) {
	page := renderPage(t, Options{BasePath: "/portfolio-site"})

	for _, item := range content.Default().Nav {
		assert.Contains(t, page, `href="`+item.Anchor+`"`, "anchors are never prefixed")
	}
	assert.Contains(t, page, `href="tel:4389794432"`)
	assert.Contains(t, page, `href="mailto:pankaja.hewakaluge@mail.mcgill.ca"`)
	assert.Contains(t, page, `href="https://www.linkedin.com/in/pankaja-hewakaluge/"`)
	assert.Contains(t, page, `src="/portfolio-site/images/headshot.jpg"`)
	assert.Contains(t, page, `href="/portfolio-site/static/css/site.css"`)
	assert.NotContains(t, page, "ZgotmplZ")
}

func TestRenderEmbedsMotionConfig(t *testing.T) {
	page := renderPage(t, Options{})

	re := regexp.MustCompile(`(?s)<script id="motion-config" type="application/json">(.*?)</script>`)
	m := re.FindStringSubmatch(page)
	require.Len(t, m, 2)

	var cfg motion.ClientConfig
	require.NoError(t, json.Unmarshal([]byte(m[1]), &cfg))
	assert.Equal(t, motion.Config(), cfg)
}

func TestNewRendererRejectsInvalidContent(t *testing.T) {
	p := content.Default()
	p.Profile.Name = ""
	_, err := NewRenderer(p, Options{})
	assert.ErrorContains(t, err, "profile.name is required")
}

func TestStaticAssetsEmbedded(t *testing.T) {
	for _, name := range []string{"css/site.css", "js/site.js"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}

func TestGenerate(t *testing.T) {
	images := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(images, "headshot.jpg"), []byte("jpg"), 0o644))

	r, err := NewRenderer(content.Default(), Options{BasePath: "/portfolio-site"})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out")
	n, err := NewGenerator(r, out, images).Generate()
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	for _, rel := range []string{
		"index.html", "404.html", "content.json",
		"static/css/site.css", "static/js/site.js", "images/headshot.jpg",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), `href="/portfolio-site/"`)

	data, err := os.ReadFile(filepath.Join(out, "content.json"))
	require.NoError(t, err)
	var decoded content.Portfolio
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Experience, 3)
}

func TestGenerateWithoutImagesDir(t *testing.T) {
	r, err := NewRenderer(content.Default(), Options{})
	require.NoError(t, err)

	n, err := NewGenerator(r, t.TempDir(), filepath.Join(t.TempDir(), "missing")).Generate()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestScriptMirrorsMotionModel(t *testing.T) {
	script, err := fs.ReadFile(Static(), "js/site.js")
	require.NoError(t, err)
	for _, fn := range []string{
		"motion.Interpolate",
		"motion.ScrollFraction",
		"motion.VisibleFraction",
		"motion.Spring.Step",
	} {
		assert.Contains(t, string(script), "// Mirrors "+fn+".")
	}
}
