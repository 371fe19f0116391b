package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haierkeys/note-folder-service/internal/dto"
	"github.com/haierkeys/note-folder-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userA = "user-a"
	userB = "user-b"
)

type folderFixture struct {
	folders *mockFolderRepo
	notes   *mockNoteRepo
	tx      *mockTransactor
	svc     FolderService
}

func newFolderFixture(atomic bool) *folderFixture {
	folders := newMockFolderRepo()
	notes := newMockNoteRepo()
	tx := &mockTransactor{folders: folders, notes: notes}
	return &folderFixture{
		folders: folders,
		notes:   notes,
		tx:      tx,
		svc:     NewFolderService(folders, notes, tx, FolderServiceConfig{AtomicDelete: atomic}, nil),
	}
}

func TestFolderService_RequiresUser(t *testing.T) {
	fx := newFolderFixture(true)
	ctx := context.Background()

	_, err := fx.svc.List(ctx, "")
	assert.ErrorIs(t, err, code.ErrorNotUserAuthToken)
	_, err = fx.svc.Create(ctx, "", &dto.FolderCreateRequest{Name: "Work"})
	assert.ErrorIs(t, err, code.ErrorNotUserAuthToken)
	assert.ErrorIs(t, fx.svc.Delete(ctx, "", &dto.FolderDeleteRequest{ID: "x"}), code.ErrorNotUserAuthToken)
	assert.Zero(t, fx.folders.calls)
}

func TestFolderService_List(t *testing.T) {
	fx := newFolderFixture(true)
	fx.folders.add("b", userA)
	fx.folders.add("a", userA)
	fx.folders.add("c", userB)

	res, err := fx.svc.List(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "a", res[0].Name)
	assert.Equal(t, "b", res[1].Name)

	res, err = fx.svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestFolderService_Get(t *testing.T) {
	fx := newFolderFixture(true)
	f := fx.folders.add("Work", userA)
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		res, err := fx.svc.Get(ctx, userA, &dto.FolderGetRequest{ID: f.ID})
		require.NoError(t, err)
		assert.Equal(t, "Work", res.Name)
		assert.Equal(t, userA, res.UserID)
	})

	t.Run("foreign id looks missing", func(t *testing.T) {
		_, err := fx.svc.Get(ctx, userB, &dto.FolderGetRequest{ID: f.ID})
		assert.ErrorIs(t, err, code.ErrorNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		before := fx.folders.calls
		_, err := fx.svc.Get(ctx, userA, &dto.FolderGetRequest{ID: "not-an-id"})
		assert.ErrorIs(t, err, code.ErrorInvalidID)
		assert.Equal(t, before, fx.folders.calls)
	})
}

func TestFolderService_Create(t *testing.T) {
	fx := newFolderFixture(true)
	ctx := context.Background()

	res, err := fx.svc.Create(ctx, userA, &dto.FolderCreateRequest{Name: "  Work "})
	require.NoError(t, err)
	assert.Equal(t, "Work", res.Name)
	assert.Equal(t, userA, res.UserID)
	assert.NotEmpty(t, res.ID)

	_, err = fx.svc.Create(ctx, userA, &dto.FolderCreateRequest{Name: "Work"})
	assert.ErrorIs(t, err, code.ErrorFolderNameExist)

	// same name for another user is fine
	_, err = fx.svc.Create(ctx, userB, &dto.FolderCreateRequest{Name: "Work"})
	assert.NoError(t, err)

	_, err = fx.svc.Create(ctx, userA, &dto.FolderCreateRequest{Name: "   "})
	assert.ErrorIs(t, err, code.ErrorFolderNameRequired)
}

func TestFolderService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(fx *folderFixture) *dto.FolderUpdateRequest
		wantErr error
		want    string
	}{
		{
			name: "rename",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				f := fx.folders.add("Work", userA)
				return &dto.FolderUpdateRequest{ID: f.ID, Name: "Job"}
			},
			want: "Job",
		},
		{
			name: "missing name checked first",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				return &dto.FolderUpdateRequest{ID: "bad", Name: ""}
			},
			wantErr: code.ErrorFolderNameRequired,
		},
		{
			name: "malformed id",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				return &dto.FolderUpdateRequest{ID: "bad", Name: "Job"}
			},
			wantErr: code.ErrorInvalidID,
		},
		{
			name: "unknown id",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				return &dto.FolderUpdateRequest{ID: "7d444840-9dc0-11d1-b245-5ffdce74fad2", Name: "Job"}
			},
			wantErr: code.ErrorFolderNotFound,
		},
		{
			name: "foreign folder",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				f := fx.folders.add("Work", userB)
				return &dto.FolderUpdateRequest{ID: f.ID, Name: "Job"}
			},
			wantErr: code.ErrorFolderNotOwned,
		},
		{
			name: "duplicate name",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				fx.folders.add("Job", userA)
				f := fx.folders.add("Work", userA)
				return &dto.FolderUpdateRequest{ID: f.ID, Name: "Job"}
			},
			wantErr: code.ErrorFolderNameExist,
		},
		{
			name: "removed after lookup",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				f := fx.folders.add("Work", userA)
				fx.folders.vanishOnUpdate = true
				return &dto.FolderUpdateRequest{ID: f.ID, Name: "Job"}
			},
			wantErr: code.ErrorNotFound,
		},
		{
			name: "store failure",
			setup: func(fx *folderFixture) *dto.FolderUpdateRequest {
				f := fx.folders.add("Work", userA)
				fx.folders.updateErr = errors.New("disk full")
				return &dto.FolderUpdateRequest{ID: f.ID, Name: "Job"}
			},
			wantErr: code.ErrorDBQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFolderFixture(true)
			req := tt.setup(fx)
			res, err := fx.svc.Update(ctx, userA, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Name)
		})
	}
}

func TestFolderService_Delete(t *testing.T) {
	ctx := context.Background()

	for _, atomic := range []bool{true, false} {
		name := "concurrent"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			fx := newFolderFixture(atomic)
			f := fx.folders.add("Work", userA)
			other := fx.folders.add("Home", userA)
			n1 := fx.notes.add("one", userA, &f.ID)
			n2 := fx.notes.add("two", userA, &other.ID)

			require.NoError(t, fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: f.ID}))

			_, ok := fx.folders.folders[f.ID]
			assert.False(t, ok)
			assert.Nil(t, fx.notes.notes[n1.ID].FolderID)
			assert.Equal(t, other.ID, *fx.notes.notes[n2.ID].FolderID)

			if atomic {
				assert.Equal(t, 1, fx.tx.calls)
			} else {
				assert.Zero(t, fx.tx.calls)
			}
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		fx := newFolderFixture(true)
		err := fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: "7d444840-9dc0-11d1-b245-5ffdce74fad2"})
		assert.ErrorIs(t, err, code.ErrorFolderNotFound)
		assert.Zero(t, fx.tx.calls)
	})

	t.Run("foreign folder is left alone", func(t *testing.T) {
		fx := newFolderFixture(true)
		f := fx.folders.add("Work", userB)
		n := fx.notes.add("one", userB, &f.ID)

		err := fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: f.ID})
		assert.ErrorIs(t, err, code.ErrorFolderNotOwned)
		assert.Contains(t, fx.folders.folders, f.ID)
		assert.Equal(t, f.ID, *fx.notes.notes[n.ID].FolderID)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := newFolderFixture(true)
		err := fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: "123"})
		assert.ErrorIs(t, err, code.ErrorInvalidID)
		assert.Zero(t, fx.folders.calls)
	})

	t.Run("concurrent failure keeps the other step", func(t *testing.T) {
		fx := newFolderFixture(false)
		f := fx.folders.add("Work", userA)
		n := fx.notes.add("one", userA, &f.ID)
		fx.folders.deleteErr = errors.New("locked")

		err := fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: f.ID})
		assert.ErrorIs(t, err, code.ErrorDBQuery)
		assert.Contains(t, fx.folders.folders, f.ID)
		assert.Nil(t, fx.notes.notes[n.ID].FolderID)
	})

	t.Run("atomic failure is reported", func(t *testing.T) {
		fx := newFolderFixture(true)
		f := fx.folders.add("Work", userA)
		fx.notes.detachErr = errors.New("locked")

		err := fx.svc.Delete(ctx, userA, &dto.FolderDeleteRequest{ID: f.ID})
		assert.ErrorIs(t, err, code.ErrorDBQuery)
		assert.Equal(t, 1, fx.tx.calls)
	})
}
