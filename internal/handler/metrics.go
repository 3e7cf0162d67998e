package handler

import (
	"fmt"
	"net/http"

	"github.com/photovault/photovault/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns counters in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "photovault_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "photovault_signins_total{status=\"success\"} %d\n", snap.SigninsSucceeded)
	writeMetric(w, "photovault_signins_total{status=\"failed\"} %d\n", snap.SigninsFailed)

	writeMetric(w, "photovault_photos_uploaded_total %d\n", snap.PhotosUploaded)
	writeMetric(w, "photovault_photo_bytes_uploaded_total %d\n", snap.PhotoBytesUploaded)
	writeMetric(w, "photovault_photos_updated_total %d\n", snap.PhotosUpdated)
	writeMetric(w, "photovault_photos_deleted_total %d\n", snap.PhotosDeleted)
	writeMetric(w, "photovault_photos_moved_total %d\n", snap.PhotosMoved)

	writeMetric(w, "photovault_galleries_created_total %d\n", snap.GalleriesCreated)
	writeMetric(w, "photovault_galleries_deleted_total{cascade=\"false\"} %d\n", snap.GalleriesDeleted-snap.GalleriesCascaded)
	writeMetric(w, "photovault_galleries_deleted_total{cascade=\"true\"} %d\n", snap.GalleriesCascaded)

	writeMetric(w, "photovault_http_request_duration_seconds_count %d\n", snap.RequestDurationCount)
	writeMetric(w, "photovault_http_request_duration_seconds_sum %.6f\n", float64(snap.RequestDurationTotalNs)/1e9)
	writeMetric(w, "photovault_rate_limited_total %d\n", snap.RateLimited)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
