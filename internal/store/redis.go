package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/stevenkilzer/calc/pkg/constants"
)

// RedisStore is a Redis-backed ProjectRepository. Each project is one JSON
// value under a prefixed key; a set holds the index of known ids.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{client: rdb}
}

// NewRedisStoreWithClient wraps an existing client, e.g. for tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func projectKey(id string) string {
	return constants.ProjectKeyPrefix + id
}

// List returns all indexed projects. Ids present in the index but missing
// their value are skipped rather than failing the whole listing.
func (s *RedisStore) List(ctx context.Context) ([]Project, error) {
	ids, err := s.client.SMembers(ctx, constants.ProjectIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	if len(ids) == 0 {
		return []Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	projects := make([]Project, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var project Project
		if err := json.Unmarshal([]byte(raw), &project); err != nil {
			return nil, fmt.Errorf("failed to decode project %s: %w", ids[i], err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// Load returns the project stored under id, or ErrNotFound.
func (s *RedisStore) Load(ctx context.Context, id string) (*Project, error) {
	raw, err := s.client.Get(ctx, projectKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load project %s: %w", id, err)
	}

	var project Project
	if err := json.Unmarshal([]byte(raw), &project); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	return &project, nil
}

// Save stores the project and adds its id to the index.
func (s *RedisStore) Save(ctx context.Context, project *Project) error {
	if project == nil || project.ID == "" {
		return fmt.Errorf("project must have an id")
	}

	raw, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to encode project %s: %w", project.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, projectKey(project.ID), raw, 0)
	pipe.SAdd(ctx, constants.ProjectIndexKey, project.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ID, err)
	}
	return nil
}

// Delete removes the project and its index entry, or returns ErrNotFound.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, projectKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	if err := s.client.SRem(ctx, constants.ProjectIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex project %s: %w", id, err)
	}
	return nil
}
