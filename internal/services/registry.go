// Package services provides the presentation services used by the MTM shell:
// themes, rendering, markdown help and keyword completion.
package services

import (
	"fmt"
	"sort"
	"sync"
)

// Service is a named component initialized once at startup.
type Service interface {
	Name() string
	Initialize() error
}

// Registry manages service registration and lifecycle for MTM services.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	return nil
}

// GetService retrieves a service by name, returning an error if not found.
func (r *Registry) GetService(name string) (Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}

	return service, nil
}

// InitializeAll initializes all registered services in name order.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.services[name].Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}

	return nil
}

// GetAllServices returns a copy of all registered services.
func (r *Registry) GetAllServices() map[string]Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Service, len(r.services))
	for name, service := range r.services {
		result[name] = service
	}

	return result
}

// GlobalRegistry is the global service registry instance used throughout MTM.
var GlobalRegistry = NewRegistry()

func getTyped[T Service](name string) (T, error) {
	var zero T
	service, err := GlobalRegistry.GetService(name)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has unexpected type %T", name, service)
	}
	return typed, nil
}

// GetGlobalThemeService returns the registered theme service.
func GetGlobalThemeService() (*ThemeService, error) {
	return getTyped[*ThemeService]("theme")
}

// GetGlobalRenderService returns the registered render service.
func GetGlobalRenderService() (*RenderService, error) {
	return getTyped[*RenderService]("render")
}

// GetGlobalMarkdownService returns the registered markdown service.
func GetGlobalMarkdownService() (*MarkdownService, error) {
	return getTyped[*MarkdownService]("markdown")
}

// GetGlobalHelpService returns the registered help service.
func GetGlobalHelpService() (*HelpService, error) {
	return getTyped[*HelpService]("help")
}

// GetGlobalAutoCompleteService returns the registered autocomplete service.
func GetGlobalAutoCompleteService() (*AutoCompleteService, error) {
	return getTyped[*AutoCompleteService]("autocomplete")
}
