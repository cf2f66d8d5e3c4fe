package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is an in-process ProjectRepository. It is the default when no
// Redis address is configured and is used throughout the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string][]byte
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string][]byte)}
}

// List returns all stored projects ordered by name.
func (s *MemoryStore) List(ctx context.Context) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]Project, 0, len(s.projects))
	for id, raw := range s.projects {
		var project Project
		if err := json.Unmarshal(raw, &project); err != nil {
			return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
		}
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
	return projects, nil
}

// Load returns the project stored under id, or ErrNotFound.
func (s *MemoryStore) Load(ctx context.Context, id string) (*Project, error) {
	s.mu.RLock()
	raw, ok := s.projects[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var project Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	return &project, nil
}

// Save stores the project snapshot under its id, replacing any previous
// version.
func (s *MemoryStore) Save(ctx context.Context, project *Project) error {
	if project == nil || project.ID == "" {
		return fmt.Errorf("project must have an id")
	}

	raw, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project %s: %w", project.ID, err)
	}

	s.mu.Lock()
	s.projects[project.ID] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the project stored under id, or returns ErrNotFound.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}
