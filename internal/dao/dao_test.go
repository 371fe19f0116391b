package dao

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/haierkeys/note-folder-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db.sqlite3"),
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(db)
}

func TestFolderRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(newTestDao(t))

	created, err := repo.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	require.NoError(t, err)
	assert.True(t, domain.IsValidID(created.ID))
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByIDAndUser(ctx, created.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, "user-a", got.UserID)

	_, err = repo.GetByIDAndUser(ctx, created.ID, "user-b")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	unfiltered, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-a", unfiltered.UserID)
}

func TestFolderRepository_UniquePerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(newTestDao(t))

	_, err := repo.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	_, err = repo.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-b"})
	assert.NoError(t, err)
}

func TestFolderRepository_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(newTestDao(t))

	for _, name := range []string{"Work", "Archive", "Personal"} {
		_, err := repo.Create(ctx, &domain.Folder{Name: name, UserID: "user-a"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Folder{Name: "Other", UserID: "user-b"})
	require.NoError(t, err)

	folders, err := repo.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, folders, 3)
	assert.Equal(t, "Archive", folders[0].Name)
	assert.Equal(t, "Personal", folders[1].Name)
	assert.Equal(t, "Work", folders[2].Name)

	empty, err := repo.List(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFolderRepository_UpdateName(t *testing.T) {
	ctx := context.Background()
	repo := NewFolderRepository(newTestDao(t))

	a, err := repo.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Folder{Name: "Home", UserID: "user-a"})
	require.NoError(t, err)

	updated, err := repo.UpdateName(ctx, a.ID, "Projects")
	require.NoError(t, err)
	assert.Equal(t, "Projects", updated.Name)
	assert.Equal(t, a.ID, updated.ID)

	_, err = repo.UpdateName(ctx, a.ID, "Home")
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	_, err = repo.UpdateName(ctx, "00000000-0000-0000-0000-000000000000", "X")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestNoteRepository_DetachFolder(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	folders := NewFolderRepository(d)
	notes := NewNoteRepository(d)

	f, err := folders.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	require.NoError(t, err)
	other, err := folders.Create(ctx, &domain.Folder{Name: "Home", UserID: "user-a"})
	require.NoError(t, err)

	n1, err := notes.Create(ctx, &domain.Note{Title: "one", UserID: "user-a", FolderID: &f.ID})
	require.NoError(t, err)
	n2, err := notes.Create(ctx, &domain.Note{Title: "two", UserID: "user-a", FolderID: &f.ID})
	require.NoError(t, err)
	n3, err := notes.Create(ctx, &domain.Note{Title: "three", UserID: "user-a", FolderID: &other.ID})
	require.NoError(t, err)

	inFolder, err := notes.List(ctx, "user-a", f.ID)
	require.NoError(t, err)
	assert.Len(t, inFolder, 2)

	count, err := notes.DetachFolder(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, id := range []string{n1.ID, n2.ID} {
		n, err := notes.GetByIDAndUser(ctx, id, "user-a")
		require.NoError(t, err)
		assert.Nil(t, n.FolderID)
	}
	n, err := notes.GetByIDAndUser(ctx, n3.ID, "user-a")
	require.NoError(t, err)
	assert.True(t, n.InFolder(other.ID))
}

func TestDao_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	folders := NewFolderRepository(d)
	notes := NewNoteRepository(d)

	f, err := folders.Create(ctx, &domain.Folder{Name: "Work", UserID: "user-a"})
	require.NoError(t, err)
	n, err := notes.Create(ctx, &domain.Note{Title: "one", UserID: "user-a", FolderID: &f.ID})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = d.Transaction(ctx, func(txFolders domain.FolderRepository, txNotes domain.NoteRepository) error {
		if err := txFolders.Delete(ctx, f.ID); err != nil {
			return err
		}
		if _, err := txNotes.DetachFolder(ctx, f.ID); err != nil {
			return err
		}
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = folders.GetByID(ctx, f.ID)
	assert.NoError(t, err)
	got, err := notes.GetByIDAndUser(ctx, n.ID, "user-a")
	require.NoError(t, err)
	assert.True(t, got.InFolder(f.ID))
}

func TestUserDialector_Unsupported(t *testing.T) {
	_, err := userDialector(DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)
}
