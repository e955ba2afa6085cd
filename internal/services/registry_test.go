package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockService records initialization for registry tests.
type MockService struct {
	name             string
	initializeCalled bool
	initializeError  error
}

func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

func (m *MockService) Name() string {
	return m.name
}

func (m *MockService) Initialize() error {
	m.initializeCalled = true
	return m.initializeError
}

func TestRegistry_RegisterService(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.RegisterService(NewMockService("test1")))
	err := registry.RegisterService(NewMockService("test1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	service, err := registry.GetService("test1")
	require.NoError(t, err)
	assert.Equal(t, "test1", service.Name())

	_, err = registry.GetService("missing")
	assert.EqualError(t, err, "service missing not found")
}

func TestRegistry_InitializeAll(t *testing.T) {
	registry := NewRegistry()
	a := NewMockService("a")
	b := NewMockService("b")
	require.NoError(t, registry.RegisterService(a))
	require.NoError(t, registry.RegisterService(b))

	require.NoError(t, registry.InitializeAll())
	assert.True(t, a.initializeCalled)
	assert.True(t, b.initializeCalled)

	b.initializeError = errors.New("boom")
	err := registry.InitializeAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize service b")
	assert.ErrorContains(t, err, "boom")
}

func TestRegistry_GetAllServicesIsCopy(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.RegisterService(NewMockService("a")))

	all := registry.GetAllServices()
	delete(all, "a")

	_, err := registry.GetService("a")
	assert.NoError(t, err)
}

func TestGlobalRegistry_TypedGetters(t *testing.T) {
	themeService, err := GetGlobalThemeService()
	require.NoError(t, err)
	assert.Equal(t, "theme", themeService.Name())

	renderService, err := GetGlobalRenderService()
	require.NoError(t, err)
	assert.Equal(t, "render", renderService.Name())

	markdownService, err := GetGlobalMarkdownService()
	require.NoError(t, err)
	assert.Equal(t, "markdown", markdownService.Name())

	helpService, err := GetGlobalHelpService()
	require.NoError(t, err)
	assert.Equal(t, "help", helpService.Name())

	completer, err := GetGlobalAutoCompleteService()
	require.NoError(t, err)
	assert.Equal(t, "autocomplete", completer.Name())
}
