// Package store holds the authoritative in-memory patient list of a
// session together with its loading and error state.
//
// The list is filled once from a client.Source and then mutated locally;
// nothing is written back. Every successful mutation raises exactly one
// success notification. All methods are safe for concurrent use, but a
// load replaces the whole list when it completes: mutations made while
// State().Loading is true are discarded, so callers wait for the load
// before mutating.
package store

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/client"
	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/logging"
)

// LoadErrorMessage is the user-facing error after a failed initial load.
const LoadErrorMessage = "Failed to load patients"

// Notifier receives the notifications raised by mutations.
type Notifier interface {
	Set(message string, kind models.NotificationKind)
	Current() (models.Notification, bool)
}

// State is a read-only snapshot for the presentation layer.
type State struct {
	Patients     []models.Patient
	Loading      bool
	Error        string
	Notification *models.Notification
}

type Store struct {
	mu       sync.Mutex
	source   client.Source
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time

	patients []models.Patient
	loading  bool
	err      string
}

// New returns a store in the loading state with an empty list.
func New(source client.Source, notifier Notifier, logger logging.Logger) *Store {
	return &Store{
		source:   source,
		notifier: notifier,
		logger:   logger.With("component", "store"),
		now:      time.Now,
		loading:  true,
	}
}

// Initialize fetches the collection and replaces the list with it. On
// failure the list is emptied and the error state is set to
// LoadErrorMessage; the underlying error is logged and returned. There is
// no automatic retry.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	patients, err := s.source.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err != nil {
		s.patients = nil
		s.err = LoadErrorMessage
		s.logger.Error(ctx, "initial load failed", "error", err)
		return fmt.Errorf("initialize store: %w", err)
	}

	s.patients = s.dedupe(ctx, patients)
	s.err = ""
	s.logger.Info(ctx, "patients loaded", "count", len(s.patients))
	return nil
}

// Reload is the user-initiated retry: it clears the error state and runs
// Initialize again. Like Initialize it replaces any records added since the
// previous load.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
	return s.Initialize(ctx)
}

// dedupe keeps the first record for each id so the uniqueness invariant
// holds even if the remote repeats an id.
func (s *Store) dedupe(ctx context.Context, in []models.Patient) []models.Patient {
	seen := make(map[string]struct{}, len(in))
	out := make([]models.Patient, 0, len(in))
	for _, p := range in {
		if _, ok := seen[p.ID]; ok {
			s.logger.Warn(ctx, "duplicate remote id dropped", "id", p.ID)
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Add assigns the next id to d, prepends the record and raises a success
// notification. An empty CreatedAt is set to the current time.
func (s *Store) Add(d models.Draft) models.Patient {
	s.mu.Lock()
	if d.CreatedAt == "" {
		d.CreatedAt = models.Timestamp(s.now())
	}
	p := d.WithID(s.nextID())
	s.patients = append([]models.Patient{p}, s.patients...)
	s.mu.Unlock()

	s.logger.Debug(context.Background(), "patient added", "id", p.ID)
	s.notifier.Set(fmt.Sprintf("Patient %s added successfully", p.Name), models.NotificationSuccess)
	return p
}

// nextID returns one more than the largest numeric id, or "1" when there
// is none. Ids that are not integers, or are math.MaxInt64 and so have no
// successor, are skipped; the result is bumped until it is free. Callers
// hold s.mu.
func (s *Store) nextID() string {
	var next int64 = 1
	for _, p := range s.patients {
		n, err := strconv.ParseInt(p.ID, 10, 64)
		if err == nil && n >= next && n < math.MaxInt64 {
			next = n + 1
		}
	}
	for s.indexOf(strconv.FormatInt(next, 10)) >= 0 {
		next++
	}
	return strconv.FormatInt(next, 10)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.patients, func(p models.Patient) bool { return p.ID == id })
}

// Update replaces the record with p.ID in place. It reports false and
// leaves the list untouched when no record matches; no notification is
// raised in that case. CreatedAt is taken from p as given.
func (s *Store) Update(p models.Patient) bool {
	s.mu.Lock()
	i := s.indexOf(p.ID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn(context.Background(), "update of unknown patient ignored", "id", p.ID)
		return false
	}
	s.patients[i] = p
	s.mu.Unlock()

	s.notifier.Set(fmt.Sprintf("Patient %s updated successfully", p.Name), models.NotificationSuccess)
	return true
}

// Delete removes the record with id. It reports false when there is none.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.patients[i]
	s.patients = slices.Delete(s.patients, i, i+1)
	s.mu.Unlock()

	s.notifier.Set(fmt.Sprintf("Patient %s deleted successfully", removed.Name), models.NotificationSuccess)
	return true
}

// Get returns the record with id.
func (s *Store) Get(id string) (models.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Patient{}, false
	}
	return s.patients[i], true
}

// SetNotification shows message directly, bypassing any mutation.
func (s *Store) SetNotification(message string, kind models.NotificationKind) {
	s.notifier.Set(message, kind)
}

// State returns a snapshot; the slice is a copy.
func (s *Store) State() State {
	s.mu.Lock()
	st := State{
		Patients: slices.Clone(s.patients),
		Loading:  s.loading,
		Error:    s.err,
	}
	s.mu.Unlock()

	if n, ok := s.notifier.Current(); ok {
		st.Notification = &n
	}
	return st
}
