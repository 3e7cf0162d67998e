// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncSignin(status string) // status: "success" or "failed"

	// Photo metrics
	AddPhotosUploaded(n int)
	AddPhotoBytesUploaded(bytes int64)
	IncPhotoUpdated()
	AddPhotosDeleted(n int)
	AddPhotosMoved(n int)

	// Gallery metrics
	IncGalleryCreated()
	IncGalleryDeleted(cascade bool)

	// Request metrics
	ObserveRequestDuration(duration time.Duration)
	IncRateLimited()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
