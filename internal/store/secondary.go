package store

import (
	"fmt"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/storage"
)

// AddCampaign appends a campaign.
func (s *Store) AddCampaign(c model.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append(s.campaigns, c)
	s.persist(storage.KeyCampaigns, s.campaigns)
}

// UpdateCampaign replaces the campaign with a matching id.
func (s *Store) UpdateCampaign(c model.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == c.ID {
			s.campaigns[i] = c
			s.persist(storage.KeyCampaigns, s.campaigns)
			return nil
		}
	}
	return fmt.Errorf("update campaign %s: %w", c.ID, ErrNotFound)
}

// DeleteCampaign removes the campaign with the given id.
func (s *Store) DeleteCampaign(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			s.persist(storage.KeyCampaigns, s.campaigns)
			return nil
		}
	}
	return fmt.Errorf("delete campaign %s: %w", id, ErrNotFound)
}

// RefreshCampaignStatuses recomputes every campaign's date-derived
// status against today (YYYY-MM-DD). Runs once per process, on load.
// Idempotent: persists only when a status actually changed.
func (s *Store) RefreshCampaignStatuses(today string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.campaigns {
		next := model.CampaignStatusFor(s.campaigns[i].StartDate, s.campaigns[i].DueDate, today)
		if next != s.campaigns[i].Status {
			s.campaigns[i].Status = next
			changed = true
		}
	}
	if changed {
		s.persist(storage.KeyCampaigns, s.campaigns)
	}
	return changed
}

// AddProject appends a project, recomputing its milestone progress.
func (s *Store) AddProject(p model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Progress = model.ProgressFor(p.Milestones)
	s.projects = append(s.projects, p)
	s.persist(storage.KeyProjects, s.projects)
}

// UpdateProject replaces the project with a matching id, recomputing
// its milestone progress.
func (s *Store) UpdateProject(p model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			p.Progress = model.ProgressFor(p.Milestones)
			s.projects[i] = p
			s.persist(storage.KeyProjects, s.projects)
			return nil
		}
	}
	return fmt.Errorf("update project %s: %w", p.ID, ErrNotFound)
}

// DeleteProject removes the project with the given id.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persist(storage.KeyProjects, s.projects)
			return nil
		}
	}
	return fmt.Errorf("delete project %s: %w", id, ErrNotFound)
}

// AddReport prepends an entry to the append-only report log.
// Reports are never updated or deleted.
func (s *Store) AddReport(r model.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append([]model.Report{r}, s.reports...)
	s.persist(storage.KeyReports, s.reports)
}
