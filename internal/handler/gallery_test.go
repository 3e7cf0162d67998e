package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/photovault/photovault/internal/handler/dto"
	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/service"
)

func newGalleryTestRouter(t *testing.T) (http.Handler, *MockGalleryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	galleries := NewMockGalleryService(ctrl)
	galleryH := NewGalleryHandler(galleries, discardLogger())
	return newRouter(NewAuthHandler(nil, discardLogger(), 1<<20), NewPhotoHandler(nil, discardLogger(), 1<<20), galleryH), galleries
}

func photosWithIDs(ids ...string) []*model.Photo {
	out := make([]*model.Photo, len(ids))
	for i, id := range ids {
		out[i] = &model.Photo{ID: id, Title: "photo " + id}
	}
	return out
}

func TestGalleryHandler_Create(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().
		Create(gomock.Any(), testUserID, service.GalleryInput{Name: "Trips", Description: strPtr("2024")}).
		Return(&model.Gallery{ID: "g1", Name: "Trips", UserID: testUserID}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galleries",
		strings.NewReader(`{"name":"Trips","description":"2024"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.GalleryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "g1", resp.ID)
	assert.NotNil(t, resp.PreviewPhotos)
}

func TestGalleryHandler_Create_Duplicate(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().Create(gomock.Any(), testUserID, gomock.Any()).Return(nil, service.ErrDuplicateGalleryName)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galleries", strings.NewReader(`{"name":"Trips"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_GALLERY_NAME", decodeError(t, rec).Code)
}

func TestGalleryHandler_List(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().List(gomock.Any(), testUserID).Return([]*model.Gallery{
		{ID: "g1", Name: "Trips", PhotoCount: 6, Photos: photosWithIDs("a", "b", "c", "d")},
		{ID: "g2", Name: "Empty"},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	var resp []dto.GalleryResponse
	require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(6), resp[0].PhotoCount)
	assert.Len(t, resp[0].PreviewPhotos, 4)
	assert.Empty(t, resp[1].PreviewPhotos)
	assert.Contains(t, body, `"previewPhotos":[]`)
}

func TestGalleryHandler_Page(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().ListPage(gomock.Any(), testUserID, 1, 2).Return(service.Paged[*model.Gallery]{
		Items:         []*model.Gallery{{ID: "g3"}},
		TotalElements: 3,
		TotalPages:    2,
		Page:          model.Page{Number: 1, Size: 2},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/page?page=1&size=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PageResponse[dto.GalleryResponse]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.TotalElements)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.NumberOfElements)
	assert.False(t, resp.First)
	assert.True(t, resp.Last)
}

func TestGalleryHandler_Dropdown(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().ListForDropdown(gomock.Any(), testUserID).
		Return([]model.GalleryOption{{ID: "g1", Name: "A"}, {ID: "g2", Name: "B"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/dropdown", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"g1","name":"A"},{"id":"g2","name":"B"}]`, rec.Body.String())
}

func TestGalleryHandler_Get_FullAndPreview(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	full := &model.Gallery{ID: "g1", Name: "Trips", PhotoCount: 6, Photos: photosWithIDs("a", "b", "c", "d", "e", "f")}
	galleries.EXPECT().Get(gomock.Any(), "g1", testUserID).Return(full, nil)
	galleries.EXPECT().GetPreview(gomock.Any(), "g1", testUserID).
		Return(&model.Gallery{ID: "g1", Name: "Trips", PhotoCount: 6, Photos: photosWithIDs("a", "b", "c", "d")}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/g1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var detail dto.GalleryDetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Len(t, detail.Photos, 6)
	assert.Len(t, detail.PreviewPhotos, model.PreviewPhotoLimit)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/g1/preview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var preview map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&preview))
	assert.NotContains(t, preview, "photos")
	assert.Contains(t, preview, "previewPhotos")
}

func TestGalleryHandler_Get_OtherUsersGallery(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().Get(gomock.Any(), "g9", testUserID).Return(nil, service.ErrGalleryNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galleries/g9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGalleryHandler_Update(t *testing.T) {
	router, galleries := newGalleryTestRouter(t)

	galleries.EXPECT().Update(gomock.Any(), "g1", testUserID, service.GalleryInput{Name: "Renamed"}).
		Return(&model.Gallery{ID: "g1", Name: "Renamed"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/galleries/g1", strings.NewReader(`{"name":"Renamed"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGalleryHandler_Delete(t *testing.T) {
	tests := []struct {
		query        string
		deletePhotos bool
	}{
		{"", false},
		{"?deletePhotos=false", false},
		{"?deletePhotos=true", true},
	}

	for _, tt := range tests {
		t.Run("query"+tt.query, func(t *testing.T) {
			router, galleries := newGalleryTestRouter(t)

			galleries.EXPECT().Delete(gomock.Any(), "g1", testUserID, tt.deletePhotos).Return(nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/galleries/g1"+tt.query, nil))

			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestGalleryHandler_Delete_BadFlag(t *testing.T) {
	router, _ := newGalleryTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/galleries/g1?deletePhotos=perhaps", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleryHandler_MovePhotos(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTarget *string
	}{
		{"to gallery", `{"photoIds":["a","b"],"targetGalleryId":"g2"}`, strPtr("g2")},
		{"to unorganized", `{"photoIds":["a","b"],"targetGalleryId":null}`, nil},
		{"omitted target", `{"photoIds":["a","b"]}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, galleries := newGalleryTestRouter(t)

			galleries.EXPECT().MovePhotos(gomock.Any(), []string{"a", "b"}, tt.wantTarget, testUserID).Return(nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galleries/move-photos", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestGalleryHandler_MovePhotos_EmptyIDs(t *testing.T) {
	router, _ := newGalleryTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galleries/move-photos", strings.NewReader(`{"photoIds":[]}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
