package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/spfmatch/spfmatch/pkg/errors"
)

type stubUVClient struct {
	index float64
	err   error
	calls int
}

func (c *stubUVClient) CurrentIndex(ctx context.Context, latitude, longitude float64) (float64, error) {
	c.calls++
	return c.index, c.err
}

type stubNotifier struct {
	mu     sync.Mutex
	titles []string
	bodies []string
}

func (n *stubNotifier) Notify(ctx context.Context, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.titles)
}

type reminderFixture struct {
	svc      *service
	uv       *stubUVClient
	notifier *stubNotifier
	sched    *fakeScheduler
	clock    time.Time
}

func newReminderFixture(t *testing.T, uv *stubUVClient) *reminderFixture {
	t.Helper()
	fx := &reminderFixture{
		uv:       uv,
		notifier: &stubNotifier{},
		sched:    &fakeScheduler{},
		clock:    time.Date(2026, time.June, 21, 12, 0, 0, 0, time.UTC),
	}
	cfg := Config{
		NotificationTitle: "Time to reapply sunscreen!",
		NotificationBody:  "Your protection window has passed. Reapply now.",
		DefaultUVIndex:    5,
		SessionTTL:        12 * time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.svc = NewService(cfg, uv, fx.notifier, logger).(*service)
	fx.svc.now = func() time.Time { return fx.clock }
	fx.svc.newTimer = func(onExpire func()) *Timer {
		timer := NewTimer(onExpire)
		timer.schedule = fx.sched.schedule
		timer.now = fx.svc.now
		return timer
	}
	return fx
}

func ptr(v float64) *float64 { return &v }

func TestServiceStart(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 5,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	require.NotEmpty(t, sess.ID)
	require.Equal(t, StateRunning, sess.State)
	require.Equal(t, 9.0, sess.UVIndex)
	require.Equal(t, "Very High", sess.UVLevel)
	require.Equal(t, 80, sess.IntervalMinutes)
	require.Equal(t, 80*60, sess.SecondsRemaining)
	require.False(t, sess.Degraded)
	require.Equal(t, 1, fx.uv.calls)
}

func TestServiceStartRequiresLocationOrOverride(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	_, err := fx.svc.Start(context.Background(), StartRequest{FitzpatrickType: 3})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = fx.svc.Start(context.Background(), StartRequest{FitzpatrickType: 3, Latitude: ptr(40.7)})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceStartLowUVNeedsNoTimer(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 0.8})

	_, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(60.2),
		Longitude:       ptr(24.9),
	})
	require.True(t, apperrors.IsCode(err, "timer_not_needed"))
}

func TestServiceStartPinnedUVSkipsLookup(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 2})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 2,
		UVIndex:         ptr(11),
	})
	require.NoError(t, err)
	require.Equal(t, 11.0, sess.UVIndex)
	require.Equal(t, 20, sess.IntervalMinutes)
	require.Zero(t, fx.uv.calls)
}

func TestServiceStartDegradesOnLookupFailure(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{err: errors.New("forecast unavailable")})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	// Default UV index 5 lands in the 3-5 bucket.
	require.Equal(t, 5.0, sess.UVIndex)
	require.Equal(t, 100, sess.IntervalMinutes)
	require.True(t, sess.Degraded)
	require.NotEmpty(t, sess.Warning)
}

func TestServiceExpiryNotifies(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 5,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	fx.sched.fire()

	require.Equal(t, 1, fx.notifier.count())
	require.Equal(t, "Time to reapply sunscreen!", fx.notifier.titles[0])

	status, err := fx.svc.Status(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, StateExpired, status.State)
	require.Zero(t, status.SecondsRemaining)
}

func TestServiceCancel(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.Cancel(context.Background(), sess.ID))

	_, err = fx.svc.Status(context.Background(), sess.ID)
	require.True(t, apperrors.IsCode(err, "not_found"))

	// Cancelled runs never notify.
	fx.sched.fire()
	require.Zero(t, fx.notifier.count())
}

func TestServiceStatusUnknownSession(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	_, err := fx.svc.Status(context.Background(), "nope")
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestServiceRestartRefreshesConditions(t *testing.T) {
	uv := &stubUVClient{index: 9}
	fx := newReminderFixture(t, uv)

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 5,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)
	require.Equal(t, 80, sess.IntervalMinutes)

	// The sun climbed since the first application.
	uv.index = 12
	restarted, err := fx.svc.Restart(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, 12.0, restarted.UVIndex)
	require.Equal(t, 60, restarted.IntervalMinutes)
	require.Equal(t, StateRunning, restarted.State)
	require.Equal(t, 2, uv.calls)
}

func TestServiceRestartAfterExpiry(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 5,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	fx.sched.fire()
	require.Equal(t, 1, fx.notifier.count())

	restarted, err := fx.svc.Restart(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, StateRunning, restarted.State)

	fx.sched.fire()
	require.Equal(t, 2, fx.notifier.count())
}

func TestServiceRestartLowUVStopsTimer(t *testing.T) {
	uv := &stubUVClient{index: 9}
	fx := newReminderFixture(t, uv)

	sess, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	uv.index = 0.5
	_, err = fx.svc.Restart(context.Background(), sess.ID)
	require.True(t, apperrors.IsCode(err, "timer_not_needed"))

	status, err := fx.svc.Status(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Equal(t, StateIdle, status.State)
}

func TestServiceReport(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	report := fx.svc.Report(context.Background(), ReportRequest{
		FitzpatrickType: 5,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})

	require.Equal(t, 9.0, report.UVIndex)
	require.Equal(t, "Very High", report.Level)
	require.Equal(t, 80, report.IntervalMinutes)
	require.Equal(t, map[Bucket]int{
		BucketLow:      200,
		BucketModerate: 140,
		BucketHigh:     120,
		BucketVeryHigh: 80,
		BucketExtreme:  60,
	}, report.Guideline)
	require.False(t, report.Degraded)
}

func TestServiceReportDegradesWithoutLocation(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	report := fx.svc.Report(context.Background(), ReportRequest{FitzpatrickType: 99})
	require.Equal(t, 5.0, report.UVIndex)
	require.Equal(t, 3, report.FitzpatrickType)
	require.True(t, report.Degraded)
	require.NotEmpty(t, report.Warning)
}

func TestServicePrunesStaleSessions(t *testing.T) {
	fx := newReminderFixture(t, &stubUVClient{index: 9})

	first, err := fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)
	fx.sched.fire() // expired, eligible for pruning once past TTL

	fx.clock = fx.clock.Add(13 * time.Hour)
	_, err = fx.svc.Start(context.Background(), StartRequest{
		FitzpatrickType: 3,
		Latitude:        ptr(40.7),
		Longitude:       ptr(-74.0),
	})
	require.NoError(t, err)

	_, err = fx.svc.Status(context.Background(), first.ID)
	require.True(t, apperrors.IsCode(err, "not_found"))
}
