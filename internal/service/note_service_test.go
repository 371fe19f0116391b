package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-folder-service/internal/dto"
	"github.com/haierkeys/note-folder-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteFixture() (*mockNoteRepo, *mockFolderRepo, NoteService) {
	notes := newMockNoteRepo()
	folders := newMockFolderRepo()
	return notes, folders, NewNoteService(notes, folders, nil)
}

func TestNoteService_Create(t *testing.T) {
	_, folders, svc := newNoteFixture()
	ctx := context.Background()
	own := folders.add("Work", userA)
	foreign := folders.add("Work", userB)

	res, err := svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: "plain"})
	require.NoError(t, err)
	assert.Nil(t, res.FolderID)
	assert.Equal(t, userA, res.UserID)

	res, err = svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: "filed", FolderID: &own.ID})
	require.NoError(t, err)
	require.NotNil(t, res.FolderID)
	assert.Equal(t, own.ID, *res.FolderID)

	empty := ""
	res, err = svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: "empty folder", FolderID: &empty})
	require.NoError(t, err)
	assert.Nil(t, res.FolderID)

	_, err = svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: "x", FolderID: &foreign.ID})
	assert.ErrorIs(t, err, code.ErrorNoteFolderInvalid)

	bad := "nope"
	_, err = svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: "x", FolderID: &bad})
	assert.ErrorIs(t, err, code.ErrorNoteFolderIDInvalid)

	_, err = svc.Create(ctx, userA, &dto.NoteCreateRequest{Title: " "})
	assert.ErrorIs(t, err, code.ErrorNoteTitleRequired)
}

func TestNoteService_GetAndList(t *testing.T) {
	notes, folders, svc := newNoteFixture()
	ctx := context.Background()
	f := folders.add("Work", userA)
	n1 := notes.add("one", userA, &f.ID)
	notes.add("two", userA, nil)
	notes.add("three", userB, nil)

	got, err := svc.Get(ctx, userA, &dto.NoteGetRequest{ID: n1.ID})
	require.NoError(t, err)
	assert.Equal(t, "one", got.Title)

	_, err = svc.Get(ctx, userB, &dto.NoteGetRequest{ID: n1.ID})
	assert.ErrorIs(t, err, code.ErrorNotFound)

	_, err = svc.Get(ctx, userA, &dto.NoteGetRequest{ID: "1"})
	assert.ErrorIs(t, err, code.ErrorInvalidID)

	all, err := svc.List(ctx, userA, &dto.NoteListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filed, err := svc.List(ctx, userA, &dto.NoteListRequest{FolderID: f.ID})
	require.NoError(t, err)
	require.Len(t, filed, 1)
	assert.Equal(t, n1.ID, filed[0].ID)

	_, err = svc.List(ctx, userA, &dto.NoteListRequest{FolderID: "bad"})
	assert.ErrorIs(t, err, code.ErrorNoteFolderIDInvalid)
}
