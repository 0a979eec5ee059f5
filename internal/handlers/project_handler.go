package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
)

// ProjectHandler handles HTTP requests for project management
type ProjectHandler struct {
	storage interfaces.StorageManager
	logger  arbor.ILogger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(storage interfaces.StorageManager, logger arbor.ILogger) *ProjectHandler {
	return &ProjectHandler{
		storage: storage,
		logger:  logger,
	}
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"max=2000"`
	AutoAnalyze bool   `json:"auto_analyze"`
}

// ListProjectsHandler handles GET /api/projects
func (h *ProjectHandler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projects, err := h.storage.Projects().ListProjects(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list projects")
		WriteError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}
	WriteJSON(w, http.StatusOK, projects)
}

// GetProjectHandler handles GET /api/projects/{id}
func (h *ProjectHandler) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/projects/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	project, err := h.storage.Projects().GetProject(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Project not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get project")
			WriteError(w, http.StatusInternalServerError, "Failed to get project")
		}
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// CreateProjectHandler handles POST /api/projects
func (h *ProjectHandler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req createProjectRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	project := &models.Project{
		ID:          common.NewProjectID(),
		Name:        req.Name,
		Description: req.Description,
		AutoAnalyze: req.AutoAnalyze,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.storage.Projects().CreateProject(r.Context(), project); err != nil {
		h.logger.Error().Err(err).Msg("Failed to create project")
		WriteError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	h.logger.Info().Str("id", project.ID).Str("name", project.Name).Msg("Project created")
	WriteJSON(w, http.StatusCreated, project)
}

// UpdateProjectHandler handles PUT /api/projects/{id}
func (h *ProjectHandler) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/projects/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	project, err := h.storage.Projects().GetProject(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Project not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get project")
			WriteError(w, http.StatusInternalServerError, "Failed to update project")
		}
		return
	}

	var req createProjectRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.AutoAnalyze = req.AutoAnalyze
	project.UpdatedAt = time.Now()

	if err := h.storage.Projects().UpdateProject(r.Context(), project); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to update project")
		WriteError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// DeleteProjectHandler handles DELETE /api/projects/{id}
func (h *ProjectHandler) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/projects/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	if err := h.storage.Projects().DeleteProject(r.Context(), id); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Project not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to delete project")
			WriteError(w, http.StatusInternalServerError, "Failed to delete project")
		}
		return
	}

	h.logger.Info().Str("id", id).Msg("Project deleted")
	WriteSuccess(w, "Project deleted")
}
