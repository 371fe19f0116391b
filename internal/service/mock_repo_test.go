package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/haierkeys/note-folder-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockFolderRepo struct {
	domain.FolderRepository
	mu        sync.Mutex
	folders   map[string]*domain.Folder
	calls     int
	deleteErr error
	updateErr error
	// vanishOnUpdate simulates a concurrent delete between lookup and update
	vanishOnUpdate bool
}

func newMockFolderRepo() *mockFolderRepo {
	return &mockFolderRepo{folders: map[string]*domain.Folder{}}
}

func (m *mockFolderRepo) add(name, uid string) *domain.Folder {
	f := &domain.Folder{ID: uuid.NewString(), Name: name, UserID: uid, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.folders[f.ID] = f
	return f
}

func (m *mockFolderRepo) nameTaken(name, uid, exceptID string) bool {
	for _, f := range m.folders {
		if f.UserID == uid && f.Name == name && f.ID != exceptID {
			return true
		}
	}
	return false
}

func (m *mockFolderRepo) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	f, ok := m.folders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockFolderRepo) GetByIDAndUser(ctx context.Context, id, uid string) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	f, ok := m.folders[id]
	if !ok || f.UserID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockFolderRepo) List(ctx context.Context, uid string) ([]*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var res []*domain.Folder
	for _, f := range m.folders {
		if f.UserID == uid {
			cp := *f
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (m *mockFolderRepo) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.nameTaken(folder.Name, folder.UserID, "") {
		return nil, gorm.ErrDuplicatedKey
	}
	f := &domain.Folder{ID: uuid.NewString(), Name: folder.Name, UserID: folder.UserID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.folders[f.ID] = f
	cp := *f
	return &cp, nil
}

func (m *mockFolderRepo) UpdateName(ctx context.Context, id, name string) (*domain.Folder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.vanishOnUpdate {
		delete(m.folders, id)
	}
	f, ok := m.folders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if m.nameTaken(name, f.UserID, id) {
		return nil, gorm.ErrDuplicatedKey
	}
	f.Name = name
	f.UpdatedAt = time.Now()
	cp := *f
	return &cp, nil
}

func (m *mockFolderRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.folders, id)
	return nil
}

type mockNoteRepo struct {
	domain.NoteRepository
	mu        sync.Mutex
	notes     map[string]*domain.Note
	detachErr error
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: map[string]*domain.Note{}}
}

func (m *mockNoteRepo) add(title, uid string, folderID *string) *domain.Note {
	n := &domain.Note{ID: uuid.NewString(), Title: title, UserID: uid, FolderID: folderID}
	m.notes[n.ID] = n
	return n
}

func (m *mockNoteRepo) GetByIDAndUser(ctx context.Context, id, uid string) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.UserID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *mockNoteRepo) List(ctx context.Context, uid string, folderID string) ([]*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []*domain.Note
	for _, n := range m.notes {
		if n.UserID == uid && (folderID == "" || n.InFolder(folderID)) {
			cp := *n
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := *note
	n.ID = uuid.NewString()
	m.notes[n.ID] = &n
	cp := n
	return &cp, nil
}

func (m *mockNoteRepo) DetachFolder(ctx context.Context, folderID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.detachErr != nil {
		return 0, m.detachErr
	}
	var count int64
	for _, n := range m.notes {
		if n.InFolder(folderID) {
			n.FolderID = nil
			count++
		}
	}
	return count, nil
}

// mockTransactor applies fn to the same repositories and counts invocations;
// rollback behaviour is covered by the dao tests against sqlite.
type mockTransactor struct {
	folders domain.FolderRepository
	notes   domain.NoteRepository
	calls   int
}

func (m *mockTransactor) Transaction(ctx context.Context, fn func(folders domain.FolderRepository, notes domain.NoteRepository) error) error {
	m.calls++
	return fn(m.folders, m.notes)
}
