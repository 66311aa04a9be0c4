package feedback

import (
	"context"
	"strings"

	feedbackRepo "alpsconnect/database/repository/feedback"
	"alpsconnect/models"
	"alpsconnect/utils"

	"go.uber.org/zap"
)

// Service validates, stores and forwards feedback submissions. The local
// copy is the durability fallback: it is written before any delivery
// attempt and survives delivery failure.
type Service struct {
	Repo      feedbackRepo.FeedbackRepository
	Forwarder Forwarder
}

func NewService(repo feedbackRepo.FeedbackRepository, forwarder Forwarder) *Service {
	return &Service{Repo: repo, Forwarder: forwarder}
}

// Submit persists the record, then makes a single delivery attempt to the
// external form endpoint. Delivery failure is reported as a DeliveryError
// with the stored record ID; there is no retry queue.
func (s *Service) Submit(ctx context.Context, record models.FeedbackRecord) (*models.FeedbackRecord, error) {
	if err := validateRecord(&record); err != nil {
		return nil, err
	}

	record.Delivered = false
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = id

	if s.Forwarder == nil {
		return &record, nil
	}

	if err := s.Forwarder.Forward(ctx, record); err != nil {
		utils.GetLogger().Warn("feedback delivery failed",
			zap.String("recordID", id), zap.Error(err))
		return &record, &DeliveryError{RecordID: id, Err: err}
	}

	record.Delivered = true
	if err := s.Repo.MarkDelivered(ctx, id); err != nil {
		utils.GetLogger().Warn("failed to mark feedback delivered",
			zap.String("recordID", id), zap.Error(err))
	}
	return &record, nil
}

// List returns the locally stored submission history.
func (s *Service) List(ctx context.Context) ([]models.FeedbackRecord, error) {
	return s.Repo.List(ctx)
}

// validateRecord checks the rating and the role-specific required fields.
// Every role in the closed set carries its own section; the switch is
// exhaustive over models.FeedbackRoles.
func validateRecord(record *models.FeedbackRecord) error {
	if record.Rating < 1 || record.Rating > 5 {
		return validationError("rating must be between 1 and 5")
	}

	switch record.Role {
	case models.RoleGuide:
		if record.Guide == nil {
			return validationError("guide interview answers are required for role %q", record.Role)
		}
		if anyBlank(record.Guide.IntroAndZone, record.Guide.PainPoints, record.Guide.IdealSolution) {
			return validationError("all guide interview answers are required")
		}
		record.Enthusiast = nil
	case models.RoleEnthusiast:
		if record.Enthusiast == nil {
			return validationError("enthusiast interview answers are required for role %q", record.Role)
		}
		e := record.Enthusiast
		if anyBlank(e.Email, e.Age, e.Nationality, e.Level, e.PrevExperience, e.WouldUseApp) {
			return validationError("all enthusiast interview answers are required")
		}
		record.Guide = nil
	case models.RoleInvestor, models.RoleOther:
		if strings.TrimSpace(record.Comment) == "" {
			return validationError("a comment is required for role %q", record.Role)
		}
		record.Guide = nil
		record.Enthusiast = nil
	default:
		return validationError("unknown role %q", record.Role)
	}
	return nil
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
