package technician

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/database/repository"
	"homefix/metrics"
	"homefix/models"
	"homefix/utils"
)

const idPrefix = "T"

// TechnicianService manages the technician roster.
type TechnicianService interface {
	RegisterTechnician(ctx context.Context, input models.TechnicianInput) (string, error)
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
}

// DefaultTechnicianService implements TechnicianService.
type DefaultTechnicianService struct {
	Repo   repository.TechnicianRepository
	Logger *zap.Logger

	Now   func() time.Time
	NewID func(prefix string) string
}

func NewDefaultTechnicianService(repo repository.TechnicianRepository, logger *zap.Logger) *DefaultTechnicianService {
	return &DefaultTechnicianService{
		Repo:   repo,
		Logger: logger.Named("technician"),
		Now:    time.Now,
		NewID:  utils.NewID,
	}
}

// RegisterTechnician stores a technician and returns its id. Name and phone
// are required.
func (s *DefaultTechnicianService) RegisterTechnician(ctx context.Context, input models.TechnicianInput) (string, error) {
	t := models.Technician{
		ID:          s.NewID(idPrefix),
		Name:        strings.TrimSpace(input.Name),
		Phone:       strings.TrimSpace(input.Phone),
		AreasCSV:    input.Areas.String(),
		ServicesCSV: input.Services.String(),
		OwnerName:   strings.TrimSpace(input.OwnerName),
		CreatedAt:   s.Now().UTC(),
	}

	var missing []string
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return "", errors.NewNotValid(nil, "Missing fields: "+strings.Join(missing, ", "))
	}

	if err := s.Repo.InsertTechnician(ctx, t); err != nil {
		return "", errors.Annotate(err, "registering technician")
	}
	metrics.IncTechnicianRegistered()
	s.Logger.Info("technician registered", zap.String("id", t.ID), zap.String("areas", t.AreasCSV))
	return t.ID, nil
}

// ListTechnicians returns the roster, newest first.
func (s *DefaultTechnicianService) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	techs, err := s.Repo.ListTechnicians(ctx)
	return techs, errors.Trace(err)
}
