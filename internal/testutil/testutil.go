package testutil

import (
	"homeworkbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestHomework creates a homework record with both fields set
func NewTestHomework(name, status string) domain.Homework {
	return domain.Homework{
		Name:   &name,
		Status: &status,
	}
}

// NewTestReport creates a status report
func NewTestReport(currentDate int64, homeworks ...domain.Homework) *domain.StatusReport {
	return &domain.StatusReport{
		Homeworks:   homeworks,
		CurrentDate: currentDate,
	}
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}
