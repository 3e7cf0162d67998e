package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncSignin is a no-op.
func (n *NoopRecorder) IncSignin(status string) {}

// AddPhotosUploaded is a no-op.
func (n *NoopRecorder) AddPhotosUploaded(count int) {}

// AddPhotoBytesUploaded is a no-op.
func (n *NoopRecorder) AddPhotoBytesUploaded(bytes int64) {}

// IncPhotoUpdated is a no-op.
func (n *NoopRecorder) IncPhotoUpdated() {}

// AddPhotosDeleted is a no-op.
func (n *NoopRecorder) AddPhotosDeleted(count int) {}

// AddPhotosMoved is a no-op.
func (n *NoopRecorder) AddPhotosMoved(count int) {}

// IncGalleryCreated is a no-op.
func (n *NoopRecorder) IncGalleryCreated() {}

// IncGalleryDeleted is a no-op.
func (n *NoopRecorder) IncGalleryDeleted(cascade bool) {}

// ObserveRequestDuration is a no-op.
func (n *NoopRecorder) ObserveRequestDuration(duration time.Duration) {}

// IncRateLimited is a no-op.
func (n *NoopRecorder) IncRateLimited() {}
