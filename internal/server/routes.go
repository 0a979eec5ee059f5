package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket event stream for connected builder UIs
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// Health check
	mux.HandleFunc("/api/health", s.healthHandler)

	// API routes - Projects
	mux.HandleFunc("/api/projects", s.handleProjectsRoute)
	mux.HandleFunc("/api/projects/", s.handleProjectRoutes)

	// API routes - Screens
	mux.HandleFunc("/api/screens", s.handleScreensRoute)
	mux.HandleFunc("/api/screens/", s.handleScreenRoutes)

	// API routes - Components
	mux.HandleFunc("/api/components", s.handleComponentsRoute)
	mux.HandleFunc("/api/components/", s.handleComponentRoutes)

	// API routes - Assistant
	mux.HandleFunc("/api/assistant/message", s.app.AssistantHandler.MessageHandler)

	return mux
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleProjectsRoute handles /api/projects (list, create)
func (s *Server) handleProjectsRoute(w http.ResponseWriter, r *http.Request) {
	RouteResourceCollection(w, r,
		s.app.ProjectHandler.ListProjectsHandler,
		s.app.ProjectHandler.CreateProjectHandler)
}

// handleProjectRoutes handles /api/projects/{id} and its analysis subroutes
func (s *Server) handleProjectRoutes(w http.ResponseWriter, r *http.Request) {
	// Longer suffixes first so /design-system/versions wins over /design-system
	handled := RouteByPathSuffix(w, r, "/api/projects/", []PathSuffixRouter{
		{Suffix: "/analyze", Handler: s.app.AnalysisHandler.AnalyzeProjectHandler},
		{Suffix: "/data-models", Handler: s.app.AnalysisHandler.GetDataModelsHandler},
		{Suffix: "/design-system/versions", Handler: s.app.AnalysisHandler.GetDesignSystemVersionsHandler},
		{Suffix: "/design-system", Handler: s.app.AnalysisHandler.GetDesignSystemHandler},
		{Suffix: "/journeys", Handler: s.app.AnalysisHandler.GetJourneysHandler},
	})
	if handled {
		return
	}

	RouteResourceItem(w, r,
		s.app.ProjectHandler.GetProjectHandler,
		s.app.ProjectHandler.UpdateProjectHandler,
		s.app.ProjectHandler.DeleteProjectHandler)
}

// handleScreensRoute handles /api/screens (list, create)
func (s *Server) handleScreensRoute(w http.ResponseWriter, r *http.Request) {
	RouteResourceCollection(w, r,
		s.app.ScreenHandler.ListScreensHandler,
		s.app.ScreenHandler.CreateScreenHandler)
}

// handleScreenRoutes handles /api/screens/{id} and its inference subroutes
func (s *Server) handleScreenRoutes(w http.ResponseWriter, r *http.Request) {
	handled := RouteByPathSuffix(w, r, "/api/screens/", []PathSuffixRouter{
		{Suffix: "/suggest", Handler: s.app.AnalysisHandler.SuggestComponentsHandler},
		{Suffix: "/data-flow", Handler: s.app.AnalysisHandler.AnalyzeDataFlowHandler},
	})
	if handled {
		return
	}

	RouteResourceItem(w, r,
		s.app.ScreenHandler.GetScreenHandler,
		s.app.ScreenHandler.UpdateScreenHandler,
		s.app.ScreenHandler.DeleteScreenHandler)
}

// handleComponentsRoute handles /api/components (list, create)
func (s *Server) handleComponentsRoute(w http.ResponseWriter, r *http.Request) {
	RouteResourceCollection(w, r,
		s.app.ComponentHandler.ListComponentsHandler,
		s.app.ComponentHandler.CreateComponentHandler)
}

// handleComponentRoutes handles /api/components/{id}
func (s *Server) handleComponentRoutes(w http.ResponseWriter, r *http.Request) {
	RouteResourceItem(w, r,
		s.app.ComponentHandler.GetComponentHandler,
		s.app.ComponentHandler.UpdateComponentHandler,
		s.app.ComponentHandler.DeleteComponentHandler)
}
