package client

import (
	"context"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
)

// Source provides the initial patient collection.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Patient, error)
}
