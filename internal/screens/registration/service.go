// internal/screens/registration/service.go
package registration

import (
	"context"

	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/metrics"
	"helper-directory/internal/directory"
	"helper-directory/internal/models"
	"helper-directory/pkg/catalog"
)

// Service validates and submits helper registrations. It is stateless; the
// stateful form controller and the gateway handler both sit on top of it.
type Service struct {
	directory directory.Service
	catalog   *catalog.Catalog
	logger    logger.Logger
}

func NewService(dir directory.Service, cat *catalog.Catalog, log logger.Logger) *Service {
	return &Service{
		directory: dir,
		catalog:   cat,
		logger:    log.WithFields(map[string]interface{}{"component": "registration"}),
	}
}

// Register validates the profile locally and, only if it passes, issues
// one create call to the directory service. Validation failure means no
// network call was made.
func (s *Service) Register(ctx context.Context, profile *models.HelperProfile) (*models.HelperProfile, error) {
	if result := Validate(profile, s.catalog); !result.Valid {
		metrics.HelperRegistrations.WithLabelValues("validation_failed").Inc()
		return nil, errors.NewValidationError(toFieldErrors(result))
	}

	created, err := s.directory.CreateHelper(ctx, profile)
	if err != nil {
		metrics.HelperRegistrations.WithLabelValues("submission_failed").Inc()
		s.logger.Warn("helper registration failed", map[string]interface{}{
			"pincode": profile.Pincode,
			"error":   err.Error(),
		})
		return nil, err
	}

	metrics.HelperRegistrations.WithLabelValues("success").Inc()
	s.logger.Info("helper registered", map[string]interface{}{
		"id":      created.ID,
		"pincode": created.Pincode,
	})
	return created, nil
}
