package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/client/services"
	"github.com/dmitrijs2005/patientkeeper/internal/client/validation"
	"github.com/dmitrijs2005/patientkeeper/internal/common"
)

// now is a test seam for the creation timestamp of new drafts.
var now = time.Now

// ready reports whether the list can be shown, printing the loading notice
// otherwise.
func (a *App) ready() bool {
	if a.store.State().Loading {
		fmt.Fprintln(a.out, "Loading patients...")
		return false
	}
	return true
}

// List prints every patient in its collapsed form.
func (a *App) List(ctx context.Context) error {
	if !a.ready() {
		return nil
	}
	fmt.Fprintln(a.out, a.view.list(a.store.State().Patients))
	return nil
}

// Show prints one patient expanded.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.ready() {
		return nil
	}
	p, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("patient %s: %w", id, common.ErrorNotFound)
	}
	fmt.Fprintln(a.out, a.view.detail(p))
	return nil
}

// Add collects a new patient through the form and submits it.
func (a *App) Add(ctx context.Context) error {
	if !a.ready() {
		return nil
	}
	fmt.Fprintln(a.out, a.view.title.Render("Add New Patient"))
	return a.submitForm(ctx, models.Patient{CreatedAt: models.Timestamp(now())})
}

// Edit loads a patient into the form and submits the changes. The id and
// creation date are carried over unchanged.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.ready() {
		return nil
	}
	p, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("patient %s: %w", id, common.ErrorNotFound)
	}
	fmt.Fprintln(a.out, a.view.title.Render("Edit Patient"))
	return a.submitForm(ctx, p)
}

// Delete removes a patient after the user confirms.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.ready() {
		return nil
	}
	p, ok := a.store.Get(id)
	if !ok {
		return fmt.Errorf("patient %s: %w", id, common.ErrorNotFound)
	}
	if !Confirm(ctx, a.reader, fmt.Sprintf("Are you sure you want to delete %s?", p.Name), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	return a.patientService.Delete(ctx, id)
}

// Retry reloads the collection after a failed initial load.
func (a *App) Retry(ctx context.Context) error {
	if !a.loadFailed() {
		fmt.Fprintln(a.out, "Nothing to retry.")
		return nil
	}
	fmt.Fprintln(a.out, "Loading patients...")
	if err := a.store.Reload(ctx); err != nil {
		fmt.Fprintln(a.out, a.view.loadError(a.store.State().Error))
		return nil
	}
	fmt.Fprintf(a.out, "Loaded %d patients.\n", len(a.store.State().Patients))
	return nil
}

// submitForm prompts for the fields, shows field errors inline and
// re-prompts until the form is valid or the user gives up.
func (a *App) submitForm(ctx context.Context, form models.Patient) error {
	for {
		var err error
		form, err = a.fillForm(ctx, form)
		if err != nil {
			return err
		}

		if errs := validation.Validate(form.Draft(), a.config.StrictWebsite); !errs.Valid() {
			fmt.Fprintln(a.out, a.view.fieldErrors(errs))
			if !Confirm(ctx, a.reader, "Fix and resubmit?", a.out) {
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}
			continue
		}

		fmt.Fprintln(a.out, "Saving...")
		_, err = a.patientService.Submit(ctx, form)

		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(a.out, a.view.fieldErrors(verr.Fields))
			continue
		}
		return err
	}
}

// fillForm prompts for each editable field, starting from form.
func (a *App) fillForm(ctx context.Context, form models.Patient) (models.Patient, error) {
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &form.Name},
		{"Website", &form.Website},
		{"Avatar URL", &form.Avatar},
		{"Description", &form.Description},
	}
	for _, f := range fields {
		v, err := GetField(ctx, a.reader, f.label, *f.value, a.out)
		if err != nil {
			return form, err
		}
		*f.value = v
	}
	return form, nil
}
