package service

import (
	"context"
	"strings"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/support"
	"algonest_webclient/internal/validation"
	"algonest_webclient/pkg/logger"

	"go.uber.org/zap"
)

type SupportService struct {
	backend  SupportBackend
	notifier support.Notifier
}

func NewSupportService(backend SupportBackend, notifier support.Notifier) *SupportService {
	return &SupportService{backend: backend, notifier: notifier}
}

// SubmitReport files the report with the backend, then mirrors it to the
// support chat. Mirror failures are only logged.
func (s *SupportService) SubmitReport(ctx context.Context, form validation.SupportReportForm) (string, error) {
	if err := form.Validate().Err(); err != nil {
		return "", err
	}

	report := model.SupportReport{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		Subject:     strings.TrimSpace(form.Subject),
		Description: strings.TrimSpace(form.Description),
	}

	res, err := s.backend.SubmitReport(ctx, report)
	if err != nil {
		return "", err
	}

	if s.notifier != nil {
		if err = s.notifier.Notify(ctx, report); err != nil {
			logger.Logger().Warn("failed to mirror support report", zap.Error(err))
		}
	}

	return messageOr(res, "Report submitted successfully! We'll get back to you soon."), nil
}
