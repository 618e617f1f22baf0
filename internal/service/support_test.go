package service

import (
	"context"
	"errors"
	"testing"

	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/model"
	"algonest_webclient/internal/service/mocks"
	"algonest_webclient/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupportService_SubmitReport(t *testing.T) {
	backend := &mocks.MockSupportBackend{}
	notifier := &mocks.MockNotifier{}
	s := NewSupportService(backend, notifier)

	report := model.SupportReport{Name: "Ada", Email: "ada@example.com", Subject: "Help", Description: "Stuck"}
	backend.On("SubmitReport", mock.Anything, report).Return(&gateway.Result{}, nil)
	notifier.On("Notify", mock.Anything, report).Return(errors.New("telegram down"))

	msg, err := s.SubmitReport(context.Background(), validation.SupportReportForm{
		Name: "Ada", Email: "ada@example.com", Subject: "Help", Description: " Stuck ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Report submitted successfully! We'll get back to you soon.", msg)
	notifier.AssertExpectations(t)
}

func TestSupportService_BackendFailureSkipsMirror(t *testing.T) {
	backend := &mocks.MockSupportBackend{}
	notifier := &mocks.MockNotifier{}
	s := NewSupportService(backend, notifier)

	backend.On("SubmitReport", mock.Anything, mock.Anything).Return(nil, &gateway.APIError{Message: "Failed to submit report"})

	_, err := s.SubmitReport(context.Background(), validation.SupportReportForm{
		Name: "Ada", Email: "ada@example.com", Subject: "Help", Description: "Stuck",
	})
	assert.EqualError(t, err, "Failed to submit report")
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestReferralService_Link(t *testing.T) {
	s := NewReferralService(nil, ReferralConfig{LinkBase: "https://algonest.example/"})
	assert.Equal(t, "https://algonest.example/signup?ref=AB+12", s.Link("AB 12"))
	assert.Empty(t, s.Link(""))
}
