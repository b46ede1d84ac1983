package service

import (
	"context"
	"errors"
	"time"

	"homeworkbot/internal/domain"
	"homeworkbot/internal/practicum"

	"go.uber.org/zap"
)

// StatusSource fetches homework updates since a Unix timestamp.
type StatusSource interface {
	Fetch(ctx context.Context, since int64) (*domain.StatusReport, error)
}

// Notifier delivers a message to the user, best-effort.
type Notifier interface {
	Send(text string)
}

// Poller runs the polling cycle: fetch updates, report the newest status
// change to the chat, advance the cursor, sleep. It is the sole owner of
// the cursor.
type Poller struct {
	source   StatusSource
	notifier Notifier
	logger   *zap.Logger
	interval time.Duration
	cursor   int64
}

// NewPoller creates a poller with its cursor seeded at since.
func NewPoller(source StatusSource, notifier Notifier, interval time.Duration, since int64, logger *zap.Logger) *Poller {
	return &Poller{
		source:   source,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		cursor:   since,
	}
}

// Run polls forever until ctx is cancelled. A failed cycle is reported and
// retried after the normal interval; nothing inside a cycle stops the loop.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("Poller started",
		zap.Duration("interval", p.interval),
		zap.Int64("from_date", p.cursor),
	)

	for {
		p.pollOnce(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped")
			return
		case <-time.After(p.interval):
		}
	}
}

// pollOnce performs a single cycle.
//
// Only the first (newest) record is reported per cycle; the cursor moves to
// the server's current_date afterwards, so older records in the same batch
// are dropped. This mirrors how updates have always been delivered to the
// user, so it stays even though the API can return several records at once.
func (p *Poller) pollOnce(ctx context.Context) {
	report, err := p.source.Fetch(ctx, p.cursor)
	if err != nil {
		p.reportFailure(err)
		return
	}

	if len(report.Homeworks) == 0 {
		p.logger.Debug("No status change", zap.Int64("from_date", p.cursor))
		return
	}

	text, err := domain.StatusMessage(report.Homeworks[0])
	if err != nil {
		p.reportFailure(err)
		return
	}

	p.notifier.Send(text)
	p.cursor = report.CurrentDate
	p.logger.Info("Cursor advanced", zap.Int64("current_date", p.cursor))
}

// Cursor returns the current poll cursor.
func (p *Poller) Cursor() int64 {
	return p.cursor
}

// reportFailure logs the failed cycle with severity and fields chosen per
// error variant, then sends a best-effort error summary to the chat. The
// cursor is left untouched so the next cycle retries the same window.
func (p *Poller) reportFailure(err error) {
	var (
		transportErr *practicum.TransportError
		statusErr    *practicum.APIStatusError
		malformedErr *practicum.MalformedResponseError
		shapeErr     *practicum.ShapeError
		missingErr   *domain.MissingFieldError
		unknownErr   *domain.UnknownStatusError
	)

	switch {
	case errors.As(err, &transportErr):
		p.logger.Error("Homework API unreachable", zap.Error(transportErr.Err))
	case errors.As(err, &statusErr):
		p.logger.Error("Homework API rejected request",
			zap.Int("status_code", statusErr.Code),
			zap.Int64("from_date", statusErr.FromDate),
		)
	case errors.As(err, &malformedErr):
		p.logger.Error("Homework API sent malformed JSON", zap.Error(malformedErr.Err))
	case errors.As(err, &shapeErr):
		p.logger.Error("Homework API response has unexpected shape",
			zap.String("kind", string(shapeErr.Kind)),
			zap.String("field", shapeErr.Field),
		)
	case errors.As(err, &missingErr):
		p.logger.Error("Homework record is incomplete", zap.String("field", missingErr.Field))
	case errors.As(err, &unknownErr):
		p.logger.Error("Homework has unknown status", zap.String("status", unknownErr.Value))
	default:
		p.logger.Error("Poll cycle failed", zap.Error(err))
	}

	p.notifier.Send("Сбой в работе программы: " + err.Error())
}
