package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"homeworkbot/internal/domain"
	"homeworkbot/internal/practicum"
	"homeworkbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPoller(source StatusSource, notifier Notifier, since int64) *Poller {
	return NewPoller(source, notifier, time.Second, since, testutil.NewTestLogger())
}

func TestPoller_StatusChange(t *testing.T) {
	mockSource := new(testutil.MockStatusSource)
	mockNotifier := new(testutil.MockNotifier)

	report := testutil.NewTestReport(1000, testutil.NewTestHomework("hw1", "approved"))
	mockSource.On("Fetch", int64(900)).Return(report, nil)
	mockNotifier.On("Send", `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`).Return()

	poller := newTestPoller(mockSource, mockNotifier, 900)
	poller.pollOnce(context.Background())

	assert.Equal(t, int64(1000), poller.Cursor())
	mockSource.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestPoller_NoChange(t *testing.T) {
	mockSource := new(testutil.MockStatusSource)
	mockNotifier := new(testutil.MockNotifier)

	mockSource.On("Fetch", int64(900)).Return(testutil.NewTestReport(2000), nil)

	poller := newTestPoller(mockSource, mockNotifier, 900)
	poller.pollOnce(context.Background())

	// Empty list: nothing sent, cursor kept.
	assert.Equal(t, int64(900), poller.Cursor())
	mockNotifier.AssertNotCalled(t, "Send", mock.Anything)
	mockSource.AssertExpectations(t)
}

func TestPoller_FetchFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "api status error",
			err:      &practicum.APIStatusError{Code: 503, FromDate: 900},
			contains: "503",
		},
		{
			name:     "transport error",
			err:      &practicum.TransportError{Err: context.DeadlineExceeded},
			contains: "unreachable",
		},
		{
			name:     "shape error",
			err:      &practicum.ShapeError{Kind: practicum.ShapeMissingField, Field: "homeworks"},
			contains: "homeworks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSource := new(testutil.MockStatusSource)
			mockNotifier := new(testutil.MockNotifier)

			mockSource.On("Fetch", int64(900)).Return(nil, tt.err)
			mockNotifier.On("Send", mock.MatchedBy(func(text string) bool {
				return strings.HasPrefix(text, "Сбой в работе программы: ") &&
					strings.Contains(text, tt.contains)
			})).Return()

			poller := newTestPoller(mockSource, mockNotifier, 900)
			poller.pollOnce(context.Background())

			// Failed cycle retries the same window next time.
			assert.Equal(t, int64(900), poller.Cursor())
			mockSource.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestPoller_FormatFailure(t *testing.T) {
	tests := []struct {
		name     string
		homework domain.Homework
		contains string
	}{
		{
			name:     "unknown status",
			homework: testutil.NewTestHomework("hw1", "pending"),
			contains: "pending",
		},
		{
			name:     "missing name",
			homework: domain.Homework{Status: testutil.StrPtr("approved")},
			contains: "homework_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSource := new(testutil.MockStatusSource)
			mockNotifier := new(testutil.MockNotifier)

			mockSource.On("Fetch", int64(900)).Return(testutil.NewTestReport(5000, tt.homework), nil)
			mockNotifier.On("Send", mock.MatchedBy(func(text string) bool {
				return strings.HasPrefix(text, "Сбой в работе программы: ") &&
					strings.Contains(text, tt.contains)
			})).Return()

			poller := newTestPoller(mockSource, mockNotifier, 900)
			poller.pollOnce(context.Background())

			// A record that cannot be formatted must not advance the cursor.
			assert.Equal(t, int64(900), poller.Cursor())
			mockNotifier.AssertExpectations(t)
		})
	}
}

func TestPoller_OnlyFirstRecordReported(t *testing.T) {
	mockSource := new(testutil.MockStatusSource)
	mockNotifier := new(testutil.MockNotifier)

	report := testutil.NewTestReport(1000,
		testutil.NewTestHomework("hw2", "reviewing"),
		testutil.NewTestHomework("hw1", "approved"),
	)
	mockSource.On("Fetch", int64(900)).Return(report, nil)
	mockNotifier.On("Send", `Изменился статус проверки работы "hw2". Работа взята на проверку ревьюером.`).Return()

	poller := newTestPoller(mockSource, mockNotifier, 900)
	poller.pollOnce(context.Background())

	assert.Equal(t, int64(1000), poller.Cursor())
	mockNotifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestPoller_RunStopsOnCancel(t *testing.T) {
	mockSource := new(testutil.MockStatusSource)
	mockNotifier := new(testutil.MockNotifier)

	mockSource.On("Fetch", mock.Anything).Return(testutil.NewTestReport(0), nil)

	poller := NewPoller(mockSource, mockNotifier, time.Hour, 0, testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
