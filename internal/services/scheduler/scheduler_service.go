package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/services/inference"
)

// Service re-analyzes projects flagged for auto-analysis on a cron
// schedule. Runs are serialized; a tick that arrives while the previous
// run is still in flight is skipped.
type Service struct {
	storage   interfaces.StorageManager
	inference interfaces.InferenceService
	events    interfaces.EventService
	cron      *cron.Cron
	logger    arbor.ILogger
	config    common.AnalysisConfig
	mu        sync.Mutex
	running   bool
}

// NewService creates the scheduler service
func NewService(storage interfaces.StorageManager, inferenceService interfaces.InferenceService, events interfaces.EventService, cfg common.AnalysisConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage:   storage,
		inference: inferenceService,
		events:    events,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger,
		config:    cfg,
	}
}

// Start registers the re-analysis job and starts the cron loop.
// No-op when scheduled analysis is disabled in config.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Scheduled analysis disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, s.runAll); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info().
		Str("schedule", s.config.Schedule).
		Msg("Scheduled analysis started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Scheduled analysis stopped")
}

// runAll analyzes every project with the auto-analyze flag set
func (s *Service) runAll() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Warn().Msg("Previous analysis run still in progress, skipping tick")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx := context.Background()

	projects, err := s.storage.Projects().ListProjects(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list projects for scheduled analysis")
		return
	}

	analyzed := 0
	for _, project := range projects {
		if !project.AutoAnalyze {
			continue
		}
		if err := s.analyzeProject(ctx, project.ID); err != nil {
			s.logger.Error().
				Err(err).
				Str("project_id", project.ID).
				Msg("Scheduled analysis failed")
			continue
		}
		analyzed++
	}

	if analyzed > 0 {
		s.logger.Info().Int("projects", analyzed).Msg("Scheduled analysis run complete")
	}
}

// analyzeProject runs the full analysis and persists its output
func (s *Service) analyzeProject(ctx context.Context, projectID string) error {
	if err := s.events.Publish(ctx, interfaces.Event{Type: interfaces.EventAnalysisStarted, Payload: projectID}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish analysis started event")
	}

	analysis, err := s.inference.AnalyzeProject(ctx, projectID)
	if err != nil {
		s.publishFailed(ctx, projectID)
		return err
	}

	store := s.storage.Inference()
	if err := inference.PersistDataModels(ctx, store, projectID, analysis.DataModels); err != nil {
		s.publishFailed(ctx, projectID)
		return err
	}
	if err := inference.PersistDesignSystem(ctx, store, analysis.DesignSystem); err != nil {
		s.publishFailed(ctx, projectID)
		return err
	}
	if err := inference.PersistJourneys(ctx, store, projectID, analysis.UserJourneys); err != nil {
		s.publishFailed(ctx, projectID)
		return err
	}

	if err := s.events.Publish(ctx, interfaces.Event{Type: interfaces.EventAnalysisComplete, Payload: analysis}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish analysis completed event")
	}
	return nil
}

func (s *Service) publishFailed(ctx context.Context, projectID string) {
	if err := s.events.Publish(ctx, interfaces.Event{Type: interfaces.EventAnalysisFailed, Payload: projectID}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish analysis failed event")
	}
}
