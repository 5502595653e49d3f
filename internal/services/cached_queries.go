package services

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"taskboard/backend/internal/cache"
	"taskboard/backend/internal/models"
)

const (
	statsTTL    = 5 * time.Minute
	projectsTTL = 10 * time.Minute
)

// CachedQueryService wraps a QueryService with a redis read cache for the
// hot read paths (per-user stats, project listing). Mutating handlers
// call the Invalidate methods after a successful write. A nil cache
// degrades to pass-through.
type CachedQueryService struct {
	queries QueryService
	cache   *cache.RedisCache
}

func NewCachedQueryService(queries QueryService, cacheInstance *cache.RedisCache) *CachedQueryService {
	return &CachedQueryService{queries: queries, cache: cacheInstance}
}

func (s *CachedQueryService) ListUsers(db *gorm.DB, id *uuid.UUID) ([]models.User, error) {
	return s.queries.ListUsers(db, id)
}

func (s *CachedQueryService) ListProjects(db *gorm.DB) ([]models.Project, error) {
	if s.cache == nil {
		return s.queries.ListProjects(db)
	}

	var cached []models.Project
	if err := s.cache.Get("projects:all", &cached); err == nil {
		return cached, nil
	}

	projects, err := s.queries.ListProjects(db)
	if err != nil {
		return nil, err
	}

	s.cache.Set("projects:all", projects, projectsTTL)
	return projects, nil
}

func (s *CachedQueryService) ListTasks(db *gorm.DB, actor models.Actor, createdOnly bool) ([]models.Task, error) {
	return s.queries.ListTasks(db, actor, createdOnly)
}

func (s *CachedQueryService) ListComments(db *gorm.DB, taskID, id *uuid.UUID) ([]models.Comment, error) {
	return s.queries.ListComments(db, taskID, id)
}

func (s *CachedQueryService) Stats(db *gorm.DB, actor models.Actor) (*TaskStats, error) {
	if s.cache == nil {
		return s.queries.Stats(db, actor)
	}

	cacheKey := fmt.Sprintf("stats:%s", actor.ID.String())

	var cached TaskStats
	if err := s.cache.Get(cacheKey, &cached); err == nil {
		return &cached, nil
	}

	stats, err := s.queries.Stats(db, actor)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, stats, statsTTL)
	return stats, nil
}

// InvalidateStats drops the cached stats for one user, or for every user
// when userID is uuid.Nil.
func (s *CachedQueryService) InvalidateStats(userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if userID == uuid.Nil {
		s.cache.DeletePattern("stats:*")
		return
	}
	s.cache.Delete(fmt.Sprintf("stats:%s", userID.String()))
}

func (s *CachedQueryService) InvalidateProjects() {
	if s.cache == nil {
		return
	}
	s.cache.Delete("projects:all")
}
