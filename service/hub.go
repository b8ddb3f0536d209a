package service

import (
	"fmt"
	"log"
	"slices"
	"sync"
)

// Hub owns registered services and drives them through their lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	sorted   []string // dependency order, computed on InitAll
	inited   []string // services whose Init succeeded, for rollback
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and asserts its concrete type
// Panics if the service is missing or of another type
func MustGet[T Service](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// Order returns the initialization order, computing it if needed
func (h *Hub) Order() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.resolve(); err != nil {
		return nil, err
	}
	return slices.Clone(h.sorted), nil
}

// InitAll initializes every service in dependency order
// On failure the services already initialized are stopped in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.resolve(); err != nil {
		return err
	}

	h.inited = nil
	for _, name := range h.sorted {
		if err := h.services[name].Init(); err != nil {
			h.stopReverse(h.inited)
			h.inited = nil
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
		h.inited = append(h.inited, name)
	}
	return nil
}

// StartAll starts every initialized service in dependency order
// On failure every initialized service is stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range h.inited {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.inited)
			h.inited = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
	}
	return nil
}

// StopAll stops every initialized service in reverse dependency order
// Errors are logged so every service gets its Stop call
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopReverse(h.inited)
	h.inited = nil
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			log.Printf("[WARN] service %s stop: %v", names[i], err)
		}
	}
}

// resolve computes the dependency order with Kahn's algorithm
// Ties are broken by name so the order is stable between runs
func (h *Hub) resolve() error {
	if h.sorted != nil {
		return nil
	}

	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)
	for name := range h.services {
		inDegree[name] = 0
	}
	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}
	slices.Sort(ready)

	order := make([]string, 0, len(h.services))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)

		var next []string
		for _, d := range dependents[name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				next = append(next, d)
			}
		}
		slices.Sort(next)
		ready = append(ready, next...)
	}

	if len(order) != len(h.services) {
		return fmt.Errorf("circular dependency detected in services")
	}
	h.sorted = order
	return nil
}
