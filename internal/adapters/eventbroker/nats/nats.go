package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/badalkr2004/lms-microservices-sub000/internal/config"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/domain"
	"github.com/badalkr2004/lms-microservices-sub000/internal/core/port"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher pushes asset lifecycle notifications onto JetStream so the
// course service can attach playable videos to lectures.
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

var _ port.ContentPublisher = (*Publisher)(nil)

// NewNATSPublisher connects to NATS and returns a Publisher
func NewNATSPublisher(cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

type videoUpdatedMessage struct {
	AssetID         string `json:"asset_id"`
	CourseID        string `json:"course_id"`
	LectureID       string `json:"lecture_id"`
	PlaybackURL     string `json:"playback_url"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type videoRemovedMessage struct {
	AssetID   string `json:"asset_id"`
	CourseID  string `json:"course_id"`
	LectureID string `json:"lecture_id"`
}

// PublishVideoReference announces that a lecture's video became playable
func (p *Publisher) PublishVideoReference(ctx context.Context, ref domain.VideoReference) error {
	msg := videoUpdatedMessage{
		AssetID:         ref.AssetID.String(),
		CourseID:        ref.CourseID,
		LectureID:       ref.LectureID,
		PlaybackURL:     ref.PlaybackURL,
		ThumbnailURL:    ref.ThumbnailURL,
		DurationSeconds: ref.DurationSeconds,
	}
	return p.publish(ctx, p.config.SubjectPrefix+".updated", msg)
}

// PublishVideoRemoved announces that a lecture's video was taken down
func (p *Publisher) PublishVideoRemoved(ctx context.Context, courseID, lectureID string, assetID uuid.UUID) error {
	msg := videoRemovedMessage{
		AssetID:   assetID.String(),
		CourseID:  courseID,
		LectureID: lectureID,
	}
	return p.publish(ctx, p.config.SubjectPrefix+".removed", msg)
}

func (p *Publisher) publish(ctx context.Context, subject string, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	p.logger.Debug("published content event", "subject", subject)
	return nil
}

// Close graceful shutdown
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
