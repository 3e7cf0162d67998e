package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/photovault/photovault/internal/model"
	"github.com/photovault/photovault/internal/repository"
)

// memStore is an in-memory implementation of every store contract.
// InTx snapshots state and restores it when fn fails, so tests can assert
// all-or-nothing behavior.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*model.User
	photos    map[string]*model.Photo
	galleries map[string]*model.Gallery

	// failOn makes the named method return errInjected once, after
	// failSkip successful calls.
	failOn   string
	failSkip int
}

var errInjected = errors.New("injected failure")

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*model.User{},
		photos:    map[string]*model.Photo{},
		galleries: map[string]*model.Gallery{},
	}
}

func (m *memStore) fail(name string) error {
	if m.failOn != name {
		return nil
	}
	if m.failSkip > 0 {
		m.failSkip--
		return nil
	}
	m.failOn = ""
	return errInjected
}

func (m *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	users := cloneMap(m.users)
	photos := cloneMap(m.photos)
	galleries := cloneMap(m.galleries)
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.users, m.photos, m.galleries = users, photos, galleries
		m.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[T any](src map[string]*T) map[string]*T {
	dst := make(map[string]*T, len(src))
	for k, v := range src {
		c := *v
		dst[k] = &c
	}
	return dst
}

// users

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	c := *user
	m.users[user.ID] = &c
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (m *memStore) GetUserByUsernameOrEmail(_ context.Context, login string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == login {
			c := *u
			return &c, nil
		}
	}
	for _, u := range m.users {
		if u.Email == login {
			c := *u
			return &c, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) UsernameExists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) UpdateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	c := *user
	m.users[user.ID] = &c
	return nil
}

// photos

func (m *memStore) CreatePhoto(_ context.Context, photo *model.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreatePhoto"); err != nil {
		return err
	}
	c := *photo
	m.photos[photo.ID] = &c
	return nil
}

func (m *memStore) GetPhotoByID(_ context.Context, id string) (*model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.photos[id]
	if !ok {
		return nil, repository.ErrPhotoNotFound
	}
	c := *p
	return &c, nil
}

func (m *memStore) ListPhotos(_ context.Context, userID string, filter model.PhotoFilter, page model.Page) ([]*model.Photo, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []*model.Photo
	for _, p := range m.photos {
		if p.UserID != userID {
			continue
		}
		switch filter.Scope {
		case model.ScopeGallery:
			if p.GalleryID == nil || *p.GalleryID != filter.GalleryID {
				continue
			}
		case model.ScopeUnorganized:
			if p.GalleryID != nil {
				continue
			}
		}
		c := *p
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memStore) UpdatePhoto(_ context.Context, photo *model.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.photos[photo.ID]; !ok {
		return repository.ErrPhotoNotFound
	}
	c := *photo
	m.photos[photo.ID] = &c
	return nil
}

func (m *memStore) DeletePhoto(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.photos[id]; !ok {
		return repository.ErrPhotoNotFound
	}
	delete(m.photos, id)
	return nil
}

func (m *memStore) GetPhotoOwners(_ context.Context, ids []string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owners := map[string]string{}
	for _, id := range ids {
		if p, ok := m.photos[id]; ok {
			owners[id] = p.UserID
		}
	}
	return owners, nil
}

func (m *memStore) DeletePhotos(_ context.Context, ids []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("DeletePhotos"); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		if _, ok := m.photos[id]; ok {
			delete(m.photos, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) MovePhotos(_ context.Context, ids []string, galleryID *string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, id := range ids {
		if p, ok := m.photos[id]; ok {
			p.GalleryID = copyPtr(galleryID)
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeletePhotosInGallery(_ context.Context, galleryID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, p := range m.photos {
		if p.GalleryID != nil && *p.GalleryID == galleryID {
			delete(m.photos, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) DetachPhotosFromGallery(_ context.Context, galleryID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.photos {
		if p.GalleryID != nil && *p.GalleryID == galleryID {
			p.GalleryID = nil
			n++
		}
	}
	return n, nil
}

func (m *memStore) ListGalleryPhotos(_ context.Context, galleryID string, limit int) ([]*model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.galleryPhotos(galleryID, limit), nil
}

func (m *memStore) galleryPhotos(galleryID string, limit int) []*model.Photo {
	var out []*model.Photo
	for _, p := range m.photos {
		if p.GalleryID != nil && *p.GalleryID == galleryID {
			c := *p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memStore) CountGalleryPhotos(_ context.Context, galleryID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.galleryPhotos(galleryID, 0))), nil
}

// galleries

func (m *memStore) CreateGallery(_ context.Context, gallery *model.Gallery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.galleries {
		if g.UserID == gallery.UserID && g.Name == gallery.Name {
			return repository.ErrGalleryNameExists
		}
	}
	c := *gallery
	m.galleries[gallery.ID] = &c
	return nil
}

func (m *memStore) GetGalleryForUser(_ context.Context, id, userID string) (*model.Gallery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.galleries[id]
	if !ok || g.UserID != userID {
		return nil, repository.ErrGalleryNotFound
	}
	c := *g
	return &c, nil
}

func (m *memStore) GalleryNameExists(_ context.Context, userID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.galleries {
		if g.UserID == userID && g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) userGalleries(userID string, previewLimit int) []*model.Gallery {
	var out []*model.Gallery
	for _, g := range m.galleries {
		if g.UserID != userID {
			continue
		}
		c := *g
		c.PhotoCount = int64(len(m.galleryPhotos(g.ID, 0)))
		c.Photos = m.galleryPhotos(g.ID, previewLimit)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memStore) ListGalleries(_ context.Context, userID string, previewLimit int) ([]*model.Gallery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userGalleries(userID, previewLimit), nil
}

func (m *memStore) ListGalleriesPage(_ context.Context, userID string, page model.Page, previewLimit int) ([]*model.Gallery, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.userGalleries(userID, previewLimit)
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (m *memStore) ListGalleryOptions(_ context.Context, userID string) ([]model.GalleryOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.GalleryOption
	for _, g := range m.userGalleries(userID, 0) {
		out = append(out, model.GalleryOption{ID: g.ID, Name: g.Name})
	}
	return out, nil
}

func (m *memStore) UpdateGallery(_ context.Context, gallery *model.Gallery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.galleries[gallery.ID]
	if !ok || g.UserID != gallery.UserID {
		return repository.ErrGalleryNotFound
	}
	for _, other := range m.galleries {
		if other.ID != gallery.ID && other.UserID == gallery.UserID && other.Name == gallery.Name {
			return repository.ErrGalleryNameExists
		}
	}
	c := *gallery
	m.galleries[gallery.ID] = &c
	return nil
}

func (m *memStore) DeleteGallery(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("DeleteGallery"); err != nil {
		return err
	}
	g, ok := m.galleries[id]
	if !ok || g.UserID != userID {
		return repository.ErrGalleryNotFound
	}
	delete(m.galleries, id)
	return nil
}

func copyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

var (
	_ UserStore    = (*memStore)(nil)
	_ PhotoStore   = (*memStore)(nil)
	_ GalleryStore = (*memStore)(nil)
)
