package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelRecorder forwards events to OpenTelemetry instruments so they reach
// the configured meter provider (an OTLP collector in production).
type OTelRecorder struct {
	users       metric.Int64Counter
	signins     metric.Int64Counter
	photos      metric.Int64Counter
	photoBytes  metric.Int64Counter
	photoEvents metric.Int64Counter
	galleries   metric.Int64Counter
	duration    metric.Float64Histogram
	rateLimited metric.Int64Counter
}

// NewOTel creates the instruments on meter.
func NewOTel(meter metric.Meter) (*OTelRecorder, error) {
	r := &OTelRecorder{}
	var err error

	if r.users, err = meter.Int64Counter("photovault.users.registered",
		metric.WithDescription("Accounts created")); err != nil {
		return nil, fmt.Errorf("create users counter: %w", err)
	}
	if r.signins, err = meter.Int64Counter("photovault.signins",
		metric.WithDescription("Signin attempts by outcome")); err != nil {
		return nil, fmt.Errorf("create signins counter: %w", err)
	}
	if r.photos, err = meter.Int64Counter("photovault.photos.uploaded",
		metric.WithDescription("Photos stored")); err != nil {
		return nil, fmt.Errorf("create photos counter: %w", err)
	}
	if r.photoBytes, err = meter.Int64Counter("photovault.photos.uploaded.bytes",
		metric.WithUnit("By")); err != nil {
		return nil, fmt.Errorf("create photo bytes counter: %w", err)
	}
	if r.photoEvents, err = meter.Int64Counter("photovault.photos.changed",
		metric.WithDescription("Photo updates, deletions and moves")); err != nil {
		return nil, fmt.Errorf("create photo events counter: %w", err)
	}
	if r.galleries, err = meter.Int64Counter("photovault.galleries.changed",
		metric.WithDescription("Gallery creations and deletions")); err != nil {
		return nil, fmt.Errorf("create galleries counter: %w", err)
	}
	if r.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}
	if r.rateLimited, err = meter.Int64Counter("photovault.requests.rate_limited"); err != nil {
		return nil, fmt.Errorf("create rate limit counter: %w", err)
	}

	return r, nil
}

func (r *OTelRecorder) add(c metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	c.Add(context.Background(), n, metric.WithAttributes(attrs...))
}

func (r *OTelRecorder) IncUserRegistered() { r.add(r.users, 1) }

func (r *OTelRecorder) IncSignin(status string) {
	r.add(r.signins, 1, attribute.String("status", status))
}

func (r *OTelRecorder) AddPhotosUploaded(n int) { r.add(r.photos, int64(n)) }

func (r *OTelRecorder) AddPhotoBytesUploaded(bytes int64) { r.add(r.photoBytes, bytes) }

func (r *OTelRecorder) IncPhotoUpdated() {
	r.add(r.photoEvents, 1, attribute.String("op", "update"))
}

func (r *OTelRecorder) AddPhotosDeleted(n int) {
	r.add(r.photoEvents, int64(n), attribute.String("op", "delete"))
}

func (r *OTelRecorder) AddPhotosMoved(n int) {
	r.add(r.photoEvents, int64(n), attribute.String("op", "move"))
}

func (r *OTelRecorder) IncGalleryCreated() {
	r.add(r.galleries, 1, attribute.String("op", "create"))
}

func (r *OTelRecorder) IncGalleryDeleted(cascade bool) {
	r.add(r.galleries, 1, attribute.String("op", "delete"), attribute.Bool("cascade", cascade))
}

func (r *OTelRecorder) ObserveRequestDuration(duration time.Duration) {
	r.duration.Record(context.Background(), duration.Seconds())
}

func (r *OTelRecorder) IncRateLimited() { r.add(r.rateLimited, 1) }

// Multi fans every event out to all recorders.
type Multi []Recorder

func (m Multi) IncUserRegistered() {
	for _, r := range m {
		r.IncUserRegistered()
	}
}

func (m Multi) IncSignin(status string) {
	for _, r := range m {
		r.IncSignin(status)
	}
}

func (m Multi) AddPhotosUploaded(n int) {
	for _, r := range m {
		r.AddPhotosUploaded(n)
	}
}

func (m Multi) AddPhotoBytesUploaded(bytes int64) {
	for _, r := range m {
		r.AddPhotoBytesUploaded(bytes)
	}
}

func (m Multi) IncPhotoUpdated() {
	for _, r := range m {
		r.IncPhotoUpdated()
	}
}

func (m Multi) AddPhotosDeleted(n int) {
	for _, r := range m {
		r.AddPhotosDeleted(n)
	}
}

func (m Multi) AddPhotosMoved(n int) {
	for _, r := range m {
		r.AddPhotosMoved(n)
	}
}

func (m Multi) IncGalleryCreated() {
	for _, r := range m {
		r.IncGalleryCreated()
	}
}

func (m Multi) IncGalleryDeleted(cascade bool) {
	for _, r := range m {
		r.IncGalleryDeleted(cascade)
	}
}

func (m Multi) ObserveRequestDuration(duration time.Duration) {
	for _, r := range m {
		r.ObserveRequestDuration(duration)
	}
}

func (m Multi) IncRateLimited() {
	for _, r := range m {
		r.IncRateLimited()
	}
}
