// Package services contains application services for the PatientKeeper
// client. This file defines the form submission flow that sits between the
// CLI forms and the in-memory store.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/client/validation"
	"github.com/dmitrijs2005/patientkeeper/internal/common"
	"github.com/dmitrijs2005/patientkeeper/internal/logging"
)

// PatientStore is the part of store.Store the service mutates.
type PatientStore interface {
	Add(d models.Draft) models.Patient
	Update(p models.Patient) bool
	Delete(id string) bool
}

// PatientService defines the form operations of the CLI.
//
// Contract:
//   - Submit: validate, wait the simulated latency, then add (empty ID) or
//     update (non-empty ID). Only one submission may be pending.
//   - Delete: remove a record by id.
//   - Pending: report whether a submission is in flight.
type PatientService interface {
	Submit(ctx context.Context, form models.Patient) (models.Patient, error)
	Delete(ctx context.Context, id string) error
	Pending() bool
}

type patientService struct {
	store  PatientStore
	delay  time.Duration
	strict bool
	logger logging.Logger

	mu      sync.Mutex
	pending bool
}

// NewPatientService binds the form flow to store. delay is the simulated
// latency before a submission is applied; strict selects the website
// scheme check.
func NewPatientService(store PatientStore, delay time.Duration, strict bool, logger logging.Logger) PatientService {
	return &patientService{store: store, delay: delay, strict: strict, logger: logger.With("component", "forms")}
}

func (s *patientService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Submit applies form with name and website trimmed. Validation failures return a *ValidationError and
// never start the delay. A cancelled ctx during the delay aborts the
// submission without touching the store.
func (s *patientService) Submit(ctx context.Context, form models.Patient) (models.Patient, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Website = strings.TrimSpace(form.Website)

	if errs := validation.Validate(form.Draft(), s.strict); !errs.Valid() {
		return models.Patient{}, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return models.Patient{}, ErrSubmitInProgress
	}
	s.pending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	if err := s.wait(ctx); err != nil {
		s.logger.Info(ctx, "submission cancelled", "id", form.ID, "error", err)
		return models.Patient{}, err
	}

	if form.ID == "" {
		p := s.store.Add(form.Draft())
		s.logger.Info(ctx, "patient created", "id", p.ID)
		return p, nil
	}

	if !s.store.Update(form) {
		return models.Patient{}, fmt.Errorf("update patient %s: %w", form.ID, common.ErrorNotFound)
	}
	s.logger.Info(ctx, "patient updated", "id", form.ID)
	return form, nil
}

func (s *patientService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *patientService) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return fmt.Errorf("delete patient %s: %w", id, common.ErrorNotFound)
	}
	s.logger.Info(ctx, "patient deleted", "id", id)
	return nil
}
