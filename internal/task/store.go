// Package task holds the authoritative task collection, its mutation
// operations, and the pure views derived from it.
package task

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phenomvv/aetherapp/internal/enrich"
	"github.com/phenomvv/aetherapp/internal/model"
)

// Store is the source of truth for the task collection. Every mutation
// rewrites the whole collection to disk; there is no incremental
// persistence and no transaction log.
type Store struct {
	mu     sync.Mutex
	path   string
	tasks  []model.Task
	collab enrich.Collaborator
	logger *zap.Logger

	// adding guards against a second add while one is in flight.
	adding atomic.Bool
}

type Options struct {
	DataDir      string
	Collaborator enrich.Collaborator
	Logger       *zap.Logger
	Seed         bool
}

func NewStore(opts Options) (*Store, error) {
	if opts.Collaborator == nil {
		opts.Collaborator = enrich.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		path:   filepath.Join(opts.DataDir, "tasks.json"),
		collab: opts.Collaborator,
		logger: opts.Logger,
	}
	if err := s.load(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(seed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if seed {
				s.tasks = seedTasks()
			}
			return nil
		}
		return err
	}

	var loaded []model.Task
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	// A request can only be outstanding within one process lifetime.
	for i := range loaded {
		loaded[i].IsBreakingDown = false
	}
	s.tasks = loaded
	return nil
}

func (s *Store) persistLocked() error {
	b, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *Store) findLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Snapshot returns a deep copy of the current collection in store
// order (most recent first).
func (s *Store) Snapshot() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTasks(s.tasks)
}

func copyTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	copy(out, in)
	for i := range out {
		if out[i].Subtasks != nil {
			out[i].Subtasks = append([]model.Subtask{}, out[i].Subtasks...)
		}
	}
	return out
}

// Toggle flips a task's completed flag and rewrites its time label.
// No-op if the id is not found.
func (s *Store) Toggle(id string) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return model.Task{}, false, nil
	}

	t := s.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		t.Time = model.TimeCompleted
	} else {
		t.Time = model.TimeDefault
	}
	s.tasks[i] = t

	if err := s.persistLocked(); err != nil {
		return model.Task{}, false, err
	}
	return t, true, nil
}

// Delete removes a task. Idempotent; deleting an absent id is a no-op.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.persistLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// ResetCategory marks every task in the category incomplete, along
// with all of their subtasks. Tasks in other categories are untouched.
func (s *Store) ResetCategory(c model.Category) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.tasks {
		if s.tasks[i].Category != c {
			continue
		}
		s.tasks[i].Completed = false
		for j := range s.tasks[i].Subtasks {
			s.tasks[i].Subtasks[j].Completed = false
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}

	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return n, nil
}

// ToggleSubtask flips one subtask's completed flag. No-op if either id
// is not found.
func (s *Store) ToggleSubtask(taskID, subtaskID string) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(taskID)
	if i < 0 {
		return model.Task{}, false, nil
	}
	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID != subtaskID {
			continue
		}
		s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed

		if err := s.persistLocked(); err != nil {
			return model.Task{}, false, err
		}
		return s.tasks[i], true, nil
	}
	return model.Task{}, false, nil
}

// Add prepends a new task. No-op when the title is blank or another
// add is still in flight. Food and Shopping titles are checked against
// the brand table synchronously; a Food title that misses the table is
// handed to the collaborator asynchronously.
func (s *Store) Add(title string, c model.Category, iconName string) (model.Task, bool, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, false, nil
	}
	if !s.adding.CompareAndSwap(false, true) {
		return model.Task{}, false, nil
	}
	defer s.adding.Store(false)

	t := model.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Category: c,
		Time:     model.TimeJustNow,
		Date:     time.Now(),
		IconName: iconName,
		Subtasks: []model.Subtask{},
	}

	needsLookup := false
	if c == model.CategoryFood || c == model.CategoryShopping {
		if domain, ok := enrich.BrandDomain(title); ok {
			t.LogoUrl = enrich.LogoURL(domain)
		} else if c == model.CategoryFood {
			needsLookup = true
		}
	}

	s.mu.Lock()
	s.tasks = append([]model.Task{t}, s.tasks...)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return model.Task{}, false, err
	}

	if needsLookup {
		go s.lookupLogo(t.ID, title)
	}
	return t, true, nil
}

// lookupLogo asks the collaborator for a brand domain and patches the
// then-current task record. If the task was deleted meanwhile the
// result is dropped.
func (s *Store) lookupLogo(id, title string) {
	domain, err := s.collab.LookupBrandDomain(context.Background(), title)
	if err != nil {
		s.logger.Warn("brand logo lookup failed",
			zap.String("task_id", id), zap.Error(err))
		return
	}
	if domain == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 || s.tasks[i].LogoUrl != "" {
		return
	}
	s.tasks[i].LogoUrl = enrich.LogoURL(domain)
	if err := s.persistLocked(); err != nil {
		s.logger.Warn("persist after logo patch failed", zap.Error(err))
	}
}

// Breakdown asks the collaborator to split a task into subtasks. At
// most one request may be outstanding per task; a duplicate call is a
// no-op and does not reach the collaborator.
func (s *Store) Breakdown(id string) (bool, error) {
	s.mu.Lock()

	i := s.findLocked(id)
	if i < 0 || s.tasks[i].IsBreakingDown {
		s.mu.Unlock()
		return false, nil
	}
	s.tasks[i].IsBreakingDown = true
	title := s.tasks[i].Title
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	go s.applyBreakdown(id, title)
	return true, nil
}

// applyBreakdown runs the collaborator call and patches the
// then-current collection. A concurrent delete of the task means the
// generated subtasks are dropped. Failure and an empty result both
// leave subtasks unchanged; the guard flag always clears.
func (s *Store) applyBreakdown(id, title string) {
	titles, err := s.collab.GenerateSubtasks(context.Background(), title)
	if err != nil {
		s.logger.Warn("subtask generation failed",
			zap.String("task_id", id), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(id)
	if i < 0 {
		return
	}

	if err == nil && len(titles) > 0 {
		subs := make([]model.Subtask, 0, len(titles))
		for _, st := range titles {
			subs = append(subs, model.Subtask{ID: uuid.NewString(), Title: st})
		}
		s.tasks[i].Subtasks = subs
	}
	s.tasks[i].IsBreakingDown = false

	if err := s.persistLocked(); err != nil {
		s.logger.Warn("persist after breakdown failed", zap.Error(err))
	}
}

// ReplaceAll swaps in an entirely new collection (backup import).
func (s *Store) ReplaceAll(tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = copyTasks(tasks)
	return s.persistLocked()
}

// Clear deletes every task.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []model.Task{}
	return s.persistLocked()
}

func seedTasks() []model.Task {
	now := time.Now()
	return []model.Task{
		{ID: "1", Title: "Q4 Product Roadmap", Category: model.CategoryWork, Time: "5:00 PM", Date: now},
		{ID: "2", Title: "Review client feedback", Category: model.CategoryWork, Completed: true, Time: model.TimeCompleted, Date: now},
		{ID: "3", Title: "Grocery shopping", Category: model.CategoryPersonal, Time: "Evening", Date: now},
		{ID: "4", Title: "Morning meditation", Category: model.CategoryWellness, Completed: true, Time: model.TimeCompleted, Date: now},
		{ID: "food-1", Title: "Chick-fil-A", Category: model.CategoryFood, Time: "Lunch", Date: now, LogoUrl: "https://logo.clearbit.com/chick-fil-a.com"},
		{ID: "food-2", Title: "Starbucks", Category: model.CategoryFood, Time: "Coffee", Date: now, LogoUrl: "https://logo.clearbit.com/starbucks.com"},
		{ID: "food-3", Title: "Chipotle", Category: model.CategoryFood, Time: "Dinner", Date: now, LogoUrl: "https://logo.clearbit.com/chipotle.com"},
	}
}
