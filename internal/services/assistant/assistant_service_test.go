package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
	"github.com/ternarybob/atelier/internal/services/events"
	"github.com/ternarybob/atelier/internal/services/inference"
	badgerstore "github.com/ternarybob/atelier/internal/storage/badger"
)

func newTestAssistant(t *testing.T) (interfaces.AssistantService, interfaces.StorageManager) {
	t.Helper()

	logger := arbor.NewLogger()
	storage, err := badgerstore.NewManager(logger, &common.BadgerConfig{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	reg := registry.Default()
	inferenceService := inference.NewService(storage, reg, logger)
	eventService := events.NewService(logger)
	return NewService(storage, inferenceService, eventService, reg, logger), storage
}

func TestHandleMessage_AddComponent(t *testing.T) {
	svc, storage := newTestAssistant(t)
	ctx := context.Background()

	require.NoError(t, storage.Screens().CreateScreen(ctx, &models.Screen{
		ID: "scr_1", ProjectID: "proj_1", Name: "Form", Type: models.ScreenTypeForm,
	}))

	resp, err := svc.HandleMessage(ctx, &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		ScreenID:  "scr_1",
		Message:   "add a button",
	})
	require.NoError(t, err)

	assert.Equal(t, interfaces.IntentAddComponent, resp.Intent)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "add_component", resp.Actions[0].Type)
	assert.Equal(t, "button", resp.Actions[0].ComponentType)

	components, err := storage.Components().GetComponentsByScreen(ctx, "scr_1")
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "button", components[0].ComponentType)
	assert.NotEmpty(t, components[0].Props, "registry defaults should be applied")
}

func TestHandleMessage_AddComponentSynonym(t *testing.T) {
	svc, storage := newTestAssistant(t)
	ctx := context.Background()

	require.NoError(t, storage.Screens().CreateScreen(ctx, &models.Screen{
		ID: "scr_1", ProjectID: "proj_1", Name: "Form", Type: models.ScreenTypeForm,
	}))

	resp, err := svc.HandleMessage(ctx, &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		ScreenID:  "scr_1",
		Message:   "add a text box for the name",
	})
	require.NoError(t, err)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "input", resp.Actions[0].ComponentType)
}

func TestHandleMessage_AddComponentWithoutType(t *testing.T) {
	svc, _ := newTestAssistant(t)

	resp, err := svc.HandleMessage(context.Background(), &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		ScreenID:  "scr_1",
		Message:   "add something",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.IntentAddComponent, resp.Intent)
	assert.Empty(t, resp.Actions)
	assert.Contains(t, resp.Reply, "couldn't tell which component")
}

func TestHandleMessage_AddComponentWithoutScreen(t *testing.T) {
	svc, _ := newTestAssistant(t)

	resp, err := svc.HandleMessage(context.Background(), &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		Message:   "add a button",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Actions)
	assert.Contains(t, resp.Reply, "Select a screen first")
}

func TestHandleMessage_Help(t *testing.T) {
	svc, _ := newTestAssistant(t)

	resp, err := svc.HandleMessage(context.Background(), &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		Message:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.IntentHelp, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
}

func TestHandleMessage_StyleAdviceEmptyProject(t *testing.T) {
	svc, _ := newTestAssistant(t)

	resp, err := svc.HandleMessage(context.Background(), &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		Message:   "what colors should I use?",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.IntentStyleAdvice, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
}

func TestHandleMessage_DataAdviceEmptyProject(t *testing.T) {
	svc, _ := newTestAssistant(t)

	resp, err := svc.HandleMessage(context.Background(), &interfaces.AssistantRequest{
		ProjectID: "proj_1",
		Message:   "what does my schema look like",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.IntentDataAdvice, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
}
