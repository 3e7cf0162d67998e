package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered        uint64
	SigninsSucceeded       uint64
	SigninsFailed          uint64
	PhotosUploaded         uint64
	PhotoBytesUploaded     uint64
	PhotosUpdated          uint64
	PhotosDeleted          uint64
	PhotosMoved            uint64
	GalleriesCreated       uint64
	GalleriesDeleted       uint64
	GalleriesCascaded      uint64
	RequestDurationCount   uint64
	RequestDurationTotalNs int64
	RateLimited            uint64
}

// InMemoryRecorder stores metrics in memory. It backs the /metrics endpoint
// and is used directly in tests.
type InMemoryRecorder struct {
	usersRegistered        uint64
	signinsSucceeded       uint64
	signinsFailed          uint64
	photosUploaded         uint64
	photoBytesUploaded     uint64
	photosUpdated          uint64
	photosDeleted          uint64
	photosMoved            uint64
	galleriesCreated       uint64
	galleriesDeleted       uint64
	galleriesCascaded      uint64
	requestDurationCount   uint64
	requestDurationTotalNs int64
	rateLimited            uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:        atomic.LoadUint64(&m.usersRegistered),
		SigninsSucceeded:       atomic.LoadUint64(&m.signinsSucceeded),
		SigninsFailed:          atomic.LoadUint64(&m.signinsFailed),
		PhotosUploaded:         atomic.LoadUint64(&m.photosUploaded),
		PhotoBytesUploaded:     atomic.LoadUint64(&m.photoBytesUploaded),
		PhotosUpdated:          atomic.LoadUint64(&m.photosUpdated),
		PhotosDeleted:          atomic.LoadUint64(&m.photosDeleted),
		PhotosMoved:            atomic.LoadUint64(&m.photosMoved),
		GalleriesCreated:       atomic.LoadUint64(&m.galleriesCreated),
		GalleriesDeleted:       atomic.LoadUint64(&m.galleriesDeleted),
		GalleriesCascaded:      atomic.LoadUint64(&m.galleriesCascaded),
		RequestDurationCount:   atomic.LoadUint64(&m.requestDurationCount),
		RequestDurationTotalNs: atomic.LoadInt64(&m.requestDurationTotalNs),
		RateLimited:            atomic.LoadUint64(&m.rateLimited),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncSignin increments the signin counter for status.
func (m *InMemoryRecorder) IncSignin(status string) {
	if status == "success" {
		atomic.AddUint64(&m.signinsSucceeded, 1)
		return
	}
	atomic.AddUint64(&m.signinsFailed, 1)
}

// AddPhotosUploaded adds n uploaded photos.
func (m *InMemoryRecorder) AddPhotosUploaded(n int) {
	atomic.AddUint64(&m.photosUploaded, uint64(n))
}

// AddPhotoBytesUploaded adds uploaded image bytes.
func (m *InMemoryRecorder) AddPhotoBytesUploaded(bytes int64) {
	atomic.AddUint64(&m.photoBytesUploaded, uint64(bytes))
}

// IncPhotoUpdated increments the photo updated counter.
func (m *InMemoryRecorder) IncPhotoUpdated() {
	atomic.AddUint64(&m.photosUpdated, 1)
}

// AddPhotosDeleted adds n deleted photos.
func (m *InMemoryRecorder) AddPhotosDeleted(n int) {
	atomic.AddUint64(&m.photosDeleted, uint64(n))
}

// AddPhotosMoved adds n moved photos.
func (m *InMemoryRecorder) AddPhotosMoved(n int) {
	atomic.AddUint64(&m.photosMoved, uint64(n))
}

// IncGalleryCreated increments the gallery created counter.
func (m *InMemoryRecorder) IncGalleryCreated() {
	atomic.AddUint64(&m.galleriesCreated, 1)
}

// IncGalleryDeleted increments the gallery deleted counter.
func (m *InMemoryRecorder) IncGalleryDeleted(cascade bool) {
	atomic.AddUint64(&m.galleriesDeleted, 1)
	if cascade {
		atomic.AddUint64(&m.galleriesCascaded, 1)
	}
}

// ObserveRequestDuration records an HTTP request duration.
func (m *InMemoryRecorder) ObserveRequestDuration(duration time.Duration) {
	atomic.AddUint64(&m.requestDurationCount, 1)
	atomic.AddInt64(&m.requestDurationTotalNs, duration.Nanoseconds())
}

// IncRateLimited increments the rejected-by-rate-limit counter.
func (m *InMemoryRecorder) IncRateLimited() {
	atomic.AddUint64(&m.rateLimited, 1)
}
