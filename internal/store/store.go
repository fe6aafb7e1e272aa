package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

// ErrNotFound is returned when an operation addresses an id that does
// not exist in a collection.
var ErrNotFound = errors.New("not found")

// ErrRootDelete is returned when a delete addresses the root folder.
var ErrRootDelete = errors.New("root folder cannot be deleted")

// Store owns every entity collection behind a single mutex, so
// cross-collection operations (folder delete cascades, import commits)
// always see a consistent joint view. Every mutation persists the
// affected collections wholesale under their storage keys.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	logger  *slog.Logger

	leads     []model.Lead
	folders   []model.Folder
	campaigns []model.Campaign
	projects  []model.Project
	reports   []model.Report

	// (parentID, lowercased name) -> folder id, first sibling wins
	childIndex map[string]string
}

// Open loads every collection from storage, falling back to seed data
// when a snapshot is missing or unreadable, and refreshes campaign
// statuses against today.
func Open(st storage.Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{storage: st, logger: logger}

	now := time.Now()
	s.leads = loadOr(s, storage.KeyLeads, model.SeedLeads)
	s.folders = loadOr(s, storage.KeyFolders, model.SeedFolders)
	s.campaigns = loadOr(s, storage.KeyCampaigns, func() []model.Campaign { return model.SeedCampaigns(now) })
	s.projects = loadOr(s, storage.KeyProjects, model.SeedProjects)
	s.reports = loadOr(s, storage.KeyReports, func() []model.Report { return []model.Report{} })

	s.rebuildChildIndex()
	s.RefreshCampaignStatuses(now.Format("2006-01-02"))
	return s
}

// loadOr reads one collection, seeding it when absent or corrupt.
func loadOr[T any](s *Store, key string, seed func() []T) []T {
	var items []T
	err := s.storage.Load(key, &items)
	switch {
	case err == nil:
		if items == nil {
			items = []T{}
		}
		return items
	case errors.Is(err, storage.ErrNoSnapshot):
		return seed()
	default:
		s.logger.Error("snapshot unreadable, using seed data", "key", key, "error", err)
		return seed()
	}
}

// persist writes one collection snapshot. Write failures are logged
// and never abort the command that triggered them.
func (s *Store) persist(key string, v any) {
	if err := s.storage.Save(key, v); err != nil {
		s.logger.Error("failed to persist snapshot", "key", key, "error", err)
	}
}

// Leads returns a copy of the lead collection, newest first.
func (s *Store) Leads() []model.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Lead(nil), s.leads...)
}

// Folders returns a copy of the folder arena in insertion order.
func (s *Store) Folders() []model.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Folder(nil), s.folders...)
}

// Campaigns returns a copy of the campaign collection.
func (s *Store) Campaigns() []model.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Campaign(nil), s.campaigns...)
}

// Projects returns a copy of the project collection.
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Project(nil), s.projects...)
}

// Reports returns a copy of the report log, newest first.
func (s *Store) Reports() []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Report(nil), s.reports...)
}
