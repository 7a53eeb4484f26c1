package server

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajah/portfolio-site/internal/content"
	"github.com/pankajah/portfolio-site/internal/motion"
)

type api struct {
	portfolio *content.Portfolio
	motion    motion.ClientConfig
}

func newAPI(p *content.Portfolio) *api {
	return &api{portfolio: p, motion: motion.Config()}
}

func (a *api) register(g *gin.RouterGroup) {
	g.GET("/content", a.getContent)
	g.GET("/sections/:id", a.getSection)
	g.GET("/projects", a.listProjects)
	g.GET("/projects/:id", a.getProject)
	g.GET("/motion", a.getMotion)
}

func (a *api) getContent(c *gin.Context) {
	respondJSON(c, http.StatusOK, a.portfolio)
}

// sectionPayload pairs a section's metadata with its entries.
type sectionPayload struct {
	content.Section
	Items  any                   `json:"items,omitempty"`
	Motion *motion.SectionMotion `json:"motion,omitempty"`
}

func (a *api) getSection(c *gin.Context) {
	id := c.Param("id")
	s, ok := a.portfolio.Section(id)
	if !ok {
		respondError(c, http.StatusNotFound, "section not found")
		return
	}

	payload := sectionPayload{Section: s}
	switch id {
	case content.SectionHome:
		payload.Items = a.portfolio.Profile
	case content.SectionEducation:
		payload.Items = a.portfolio.Education
	case content.SectionSkills:
		payload.Items = gin.H{"categories": a.portfolio.Skills, "focus_areas": a.portfolio.FocusAreas}
	case content.SectionExperience:
		payload.Items = a.portfolio.Experience
	case content.SectionProjects:
		payload.Items = a.portfolio.Projects
	case content.SectionLeadership:
		payload.Items = a.portfolio.Leadership
	}
	if m, ok := motion.SectionByID(id); ok {
		payload.Motion = &m
	}
	respondJSON(c, http.StatusOK, payload)
}

func (a *api) listProjects(c *gin.Context) {
	skill := strings.TrimSpace(c.Query("skill"))
	if skill == "" {
		respondJSON(c, http.StatusOK, a.portfolio.Projects)
		return
	}

	matches := []content.Project{}
	for _, p := range a.portfolio.Projects {
		for _, s := range p.Skills {
			if strings.EqualFold(s, skill) {
				matches = append(matches, p)
				break
			}
		}
	}
	respondJSON(c, http.StatusOK, matches)
}

func (a *api) getProject(c *gin.Context) {
	p, err := a.portfolio.ProjectByID(c.Param("id"))
	if errors.Is(err, content.ErrNotFound) {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load project")
		return
	}
	respondJSON(c, http.StatusOK, p)
}

func (a *api) getMotion(c *gin.Context) {
	respondJSON(c, http.StatusOK, a.motion)
}

// respondJSON writes a JSON response
func respondJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
	if len(c.Errors) > 0 {
		log.Printf("Error encoding JSON: %v", c.Errors.Last())
	}
}

// respondError writes an error JSON response
func respondError(c *gin.Context, status int, message string) {
	respondJSON(c, status, gin.H{"error": message})
}

func isAPIPath(base, path string) bool {
	return strings.HasPrefix(path, base+"/api/")
}
