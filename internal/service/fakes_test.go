package service

import (
	"context"
	"sort"
	"time"

	"github.com/skanos/backend/internal/models"
	"github.com/skanos/backend/internal/repository"
)

// fakeEventRepo is an in-memory EventRepository. Reads return events
// newest first, matching the store's ordering contract.
type fakeEventRepo struct {
	events []models.Event
	err    error
}

func (f *fakeEventRepo) active(userID string) []models.Event {
	var out []models.Event
	for _, e := range f.events {
		if e.UserID == userID && e.Status == models.EventStatusActive {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.Event) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	f.events = append(f.events, *event)
	return event, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, userID, id string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.UserID == userID && e.ID == id && e.Status == models.EventStatusActive {
			ev := e
			return &ev, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventRepo) List(_ context.Context, userID, eventType string, limit, offset int) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.active(userID)
	if eventType != "" {
		var filtered []models.Event
		for _, e := range all {
			if e.Type == eventType {
				filtered = append(filtered, e)
			}
		}
		all = filtered
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeEventRepo) GetToday(_ context.Context, userID string, limit int) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	today := time.Now().UTC().Format("2006-01-02")
	var out []models.Event
	for _, e := range f.active(userID) {
		if e.CreatedAt.UTC().Format("2006-01-02") == today {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetActiveByTypes(_ context.Context, userID string, types []string, since time.Time) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	var out []models.Event
	for _, e := range f.active(userID) {
		if wanted[e.Type] && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetActiveSince(_ context.Context, userID string, since time.Time) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, e := range f.active(userID) {
		if !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, userID, id string, fields map[string]any) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, e := range f.events {
		if e.UserID != userID || e.ID != id {
			continue
		}
		if v, ok := fields["type"].(string); ok {
			f.events[i].Type = v
		}
		if v, ok := fields["title"].(string); ok {
			f.events[i].Title = v
		}
		if v, ok := fields["description"].(string); ok {
			f.events[i].Description = &v
		}
		if v, ok := fields["priority"].(int); ok {
			f.events[i].Priority = v
		}
		if v, ok := fields["data"].(map[string]any); ok {
			f.events[i].Data = v
		}
		if v, ok := fields["status"].(string); ok {
			f.events[i].Status = v
		}
		ev := f.events[i]
		return &ev, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEventRepo) SoftDelete(ctx context.Context, userID, id string) error {
	_, err := f.Update(ctx, userID, id, map[string]any{"status": models.EventStatusDeleted})
	return err
}

func (f *fakeEventRepo) CountActive(_ context.Context, userID, eventType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, e := range f.active(userID) {
		if eventType == "" || e.Type == eventType {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	onboarding *models.OnboardingStatus
	saved      *models.UserGoals
	err        error
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: id}, nil
}

func (f *fakeUserRepo) GetOnboarding(_ context.Context, _ string) (*models.OnboardingStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.onboarding == nil {
		return nil, repository.ErrNotFound
	}
	return f.onboarding, nil
}

func (f *fakeUserRepo) UpdateGoals(_ context.Context, _ string, goals *models.UserGoals) error {
	if f.err != nil {
		return f.err
	}
	f.saved = goals
	return nil
}

type fakeEntityRepo struct {
	entities []models.Entity
}

func (f *fakeEntityRepo) Create(_ context.Context, entity *models.Entity) (*models.Entity, error) {
	f.entities = append(f.entities, *entity)
	return entity, nil
}

func (f *fakeEntityRepo) GetByID(_ context.Context, userID, id string) (*models.Entity, error) {
	for _, e := range f.entities {
		if e.UserID == userID && e.ID == id {
			ent := e
			return &ent, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEntityRepo) GetByUserID(_ context.Context, userID, entityType string) ([]models.Entity, error) {
	var out []models.Entity
	for _, e := range f.entities {
		if e.UserID == userID && (entityType == "" || e.Type == entityType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntityRepo) Count(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, e := range f.entities {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeMemoryRepo struct {
	memories []models.Memory
}

func (f *fakeMemoryRepo) Create(_ context.Context, memory *models.Memory) (*models.Memory, error) {
	f.memories = append(f.memories, *memory)
	return memory, nil
}

func (f *fakeMemoryRepo) GetByUserID(_ context.Context, userID, memoryType string) ([]models.Memory, error) {
	var out []models.Memory
	for _, m := range f.memories {
		if m.UserID == userID && (memoryType == "" || m.Type == memoryType) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemoryRepo) Search(_ context.Context, userID, _ string) ([]models.Memory, error) {
	return f.GetByUserID(context.Background(), userID, "")
}

func (f *fakeMemoryRepo) Count(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, m := range f.memories {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeQuickNoteRepo struct {
	notes []models.QuickNote
}

func (f *fakeQuickNoteRepo) Create(_ context.Context, note *models.QuickNote) (*models.QuickNote, error) {
	f.notes = append(f.notes, *note)
	return note, nil
}

func (f *fakeQuickNoteRepo) GetUnprocessed(_ context.Context, userID string, limit int) ([]models.QuickNote, error) {
	var out []models.QuickNote
	for _, n := range f.notes {
		if n.UserID == userID && !n.Processed {
			out = append(out, n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakePillarRepo struct {
	pillars []models.Pillar
}

func (f *fakePillarRepo) GetActiveByUserID(_ context.Context, _ string) ([]models.Pillar, error) {
	return f.pillars, nil
}
