package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/spfmatch/spfmatch/pkg/errors"
)

// uvTimerFloor is the UV index at or below which no timer is offered.
const uvTimerFloor = 1

const degradedUVWarning = "Failed to fetch UV index. Using default value."

// UVClient fetches the current UV index for a location.
type UVClient interface {
	CurrentIndex(ctx context.Context, latitude, longitude float64) (float64, error)
}

// Config tunes the reminder service.
type Config struct {
	NotificationTitle string
	NotificationBody  string
	DefaultUVIndex    float64
	SessionTTL        time.Duration
}

// StartRequest opens a reminder session. UVIndex, when set, pins the index
// and skips the forecast lookup; otherwise coordinates are required.
type StartRequest struct {
	FitzpatrickType int      `json:"fitzpatrickType"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	UVIndex         *float64 `json:"uvIndex,omitempty"`
}

// Session is the API view of a reminder timer.
type Session struct {
	ID               string  `json:"id"`
	State            State   `json:"state"`
	FitzpatrickType  int     `json:"fitzpatrickType"`
	UVIndex          float64 `json:"uvIndex"`
	UVLevel          string  `json:"uvLevel"`
	IntervalMinutes  int     `json:"intervalMinutes"`
	SecondsRemaining int     `json:"secondsRemaining"`
	Degraded         bool    `json:"degraded"`
	Warning          string  `json:"warning,omitempty"`
}

// ReportRequest asks for current UV conditions and guidance.
type ReportRequest struct {
	FitzpatrickType int
	Latitude        *float64
	Longitude       *float64
}

// Report describes current UV conditions and the guideline intervals.
type Report struct {
	UVIndex         float64        `json:"uvIndex"`
	Level           string         `json:"level"`
	FitzpatrickType int            `json:"fitzpatrickType"`
	IntervalMinutes int            `json:"intervalMinutes"`
	Guideline       map[Bucket]int `json:"guideline"`
	Degraded        bool           `json:"degraded"`
	Warning         string         `json:"warning,omitempty"`
}

// Service manages reapplication reminder sessions.
type Service interface {
	Start(ctx context.Context, req StartRequest) (Session, error)
	Status(ctx context.Context, id string) (Session, error)
	Restart(ctx context.Context, id string) (Session, error)
	Cancel(ctx context.Context, id string) error
	Report(ctx context.Context, req ReportRequest) Report
}

type session struct {
	id        string
	fitzType  int
	latitude  *float64
	longitude *float64
	pinnedUV  *float64
	uvIndex   float64
	degraded  bool
	interval  int
	timer     *Timer
	createdAt time.Time
}

type service struct {
	cfg      Config
	uv       UVClient
	notifier Notifier
	table    ReapplicationTable
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session

	// Injectable for tests.
	now      func() time.Time
	newTimer func(onExpire func()) *Timer
}

// NewService wires up the reminder domain.
func NewService(cfg Config, uv UVClient, notifier Notifier, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		uv:       uv,
		notifier: notifier,
		table:    DefaultReapplicationTable(),
		logger:   logger.With("component", "reminder.service"),
		sessions: map[string]*session{},
		now:      time.Now,
		newTimer: NewTimer,
	}
}

func (s *service) Start(ctx context.Context, req StartRequest) (Session, error) {
	if req.UVIndex == nil && (req.Latitude == nil || req.Longitude == nil) {
		return Session{}, apperrors.Wrap("invalid_input", "coordinates or a uvIndex override are required", nil)
	}

	uvIndex, degraded := s.resolveUV(ctx, req.UVIndex, req.Latitude, req.Longitude)
	if uvIndex <= uvTimerFloor {
		return Session{}, apperrors.Wrap("timer_not_needed", "UV index is very low; no reapplication timer is needed", nil)
	}

	interval := IntervalMinutes(uvIndex, req.FitzpatrickType, s.table)
	sess := &session{
		id:        uuid.NewString(),
		fitzType:  req.FitzpatrickType,
		latitude:  req.Latitude,
		longitude: req.Longitude,
		pinnedUV:  req.UVIndex,
		uvIndex:   uvIndex,
		degraded:  degraded,
		interval:  interval,
		createdAt: s.now(),
	}
	sess.timer = s.newTimer(func() { s.fireExpiry(sess.id) })
	sess.timer.Start(time.Duration(interval) * time.Minute)

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("reminder started",
		"session", sess.id,
		"fitzpatrickType", sess.fitzType,
		"uvIndex", uvIndex,
		"intervalMinutes", interval)
	return s.snapshot(sess), nil
}

func (s *service) Status(ctx context.Context, id string) (Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	return s.snapshot(sess), nil
}

// Restart re-arms the session's timer. Unless the session pinned its UV
// index, conditions are re-fetched so the new interval tracks the sun.
func (s *service) Restart(ctx context.Context, id string) (Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}

	uvIndex, degraded := s.resolveUV(ctx, sess.pinnedUV, sess.latitude, sess.longitude)
	if uvIndex <= uvTimerFloor {
		sess.timer.Stop()
		return Session{}, apperrors.Wrap("timer_not_needed", "UV index is very low; no reapplication timer is needed", nil)
	}

	interval := IntervalMinutes(uvIndex, sess.fitzType, s.table)

	s.mu.Lock()
	sess.uvIndex = uvIndex
	sess.degraded = degraded
	sess.interval = interval
	s.mu.Unlock()

	sess.timer.Restart(time.Duration(interval) * time.Minute)
	s.logger.Info("reminder restarted",
		"session", sess.id,
		"uvIndex", uvIndex,
		"intervalMinutes", interval)
	return s.snapshot(sess), nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.timer.Stop()

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	s.logger.Info("reminder cancelled", "session", id)
	return nil
}

func (s *service) Report(ctx context.Context, req ReportRequest) Report {
	uvIndex, degraded := s.resolveUV(ctx, nil, req.Latitude, req.Longitude)

	fitzType := req.FitzpatrickType
	row, ok := s.table[fitzType]
	if !ok {
		fitzType = fallbackFitzType
		row = s.table[fitzType]
	}

	guideline := make(map[Bucket]int, len(row))
	for bucket, minutes := range row {
		guideline[bucket] = minutes
	}

	report := Report{
		UVIndex:         uvIndex,
		Level:           LevelFor(uvIndex),
		FitzpatrickType: fitzType,
		IntervalMinutes: IntervalMinutes(uvIndex, fitzType, s.table),
		Guideline:       guideline,
		Degraded:        degraded,
	}
	if degraded {
		report.Warning = degradedUVWarning
	}
	return report
}

// resolveUV returns the pinned override, a fetched index, or the configured
// default. Fetch failures degrade rather than fail.
func (s *service) resolveUV(ctx context.Context, pinned, latitude, longitude *float64) (float64, bool) {
	if pinned != nil {
		return *pinned, false
	}
	if latitude == nil || longitude == nil || s.uv == nil {
		return s.cfg.DefaultUVIndex, true
	}
	uvIndex, err := s.uv.CurrentIndex(ctx, *latitude, *longitude)
	if err != nil {
		s.logger.Warn("uv index lookup failed, using default",
			"error", err,
			"default", s.cfg.DefaultUVIndex)
		return s.cfg.DefaultUVIndex, true
	}
	return uvIndex, false
}

func (s *service) fireExpiry(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return
	}
	s.logger.Info("reminder expired", "session", id)
	s.notifier.Notify(context.Background(), s.cfg.NotificationTitle, s.cfg.NotificationBody)
}

func (s *service) lookup(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.Wrap("not_found", "reminder session not found", nil)
	}
	return sess, nil
}

// pruneLocked drops sessions past their TTL that are no longer running.
// Expired sessions are kept until the TTL so clients can observe the state.
func (s *service) pruneLocked() {
	if s.cfg.SessionTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.cfg.SessionTTL)
	for id, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) && sess.timer.State() != StateRunning {
			delete(s.sessions, id)
		}
	}
}

func (s *service) snapshot(sess *session) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Session{
		ID:               sess.id,
		State:            sess.timer.State(),
		FitzpatrickType:  sess.fitzType,
		UVIndex:          sess.uvIndex,
		UVLevel:          LevelFor(sess.uvIndex),
		IntervalMinutes:  sess.interval,
		SecondsRemaining: int(sess.timer.Remaining().Round(time.Second) / time.Second),
		Degraded:         sess.degraded,
	}
	if sess.degraded {
		snap.Warning = degradedUVWarning
	}
	return snap
}
