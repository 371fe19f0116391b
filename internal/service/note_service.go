package service

import (
	"context"
	"errors"
	"strings"

	"github.com/haierkeys/note-folder-service/internal/domain"
	"github.com/haierkeys/note-folder-service/internal/dto"
	"github.com/haierkeys/note-folder-service/pkg/code"
	"github.com/haierkeys/note-folder-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteService 笔记业务服务接口
type NoteService interface {
	List(ctx context.Context, uid string, params *dto.NoteListRequest) ([]*dto.NoteDTO, error)
	Get(ctx context.Context, uid string, params *dto.NoteGetRequest) (*dto.NoteDTO, error)
	Create(ctx context.Context, uid string, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)
}

type noteService struct {
	noteRepo   domain.NoteRepository
	folderRepo domain.FolderRepository
	logger     *zap.Logger
}

func NewNoteService(noteRepo domain.NoteRepository, folderRepo domain.FolderRepository, lg *zap.Logger) NoteService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &noteService{noteRepo: noteRepo, folderRepo: folderRepo, logger: lg}
}

func (s *noteService) domainToDTO(n *domain.Note) *dto.NoteDTO {
	if n == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		FolderID:  n.FolderID,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (s *noteService) storeError(op string, uid string, err error) error {
	s.logger.Error("note store failure",
		zap.String(logger.FieldAction, op),
		zap.String(logger.FieldUID, uid),
		zap.Error(err),
	)
	return code.ErrorDBQuery.WithCause(err)
}

func (s *noteService) List(ctx context.Context, uid string, params *dto.NoteListRequest) ([]*dto.NoteDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	if params.FolderID != "" && !domain.IsValidID(params.FolderID) {
		return nil, code.ErrorNoteFolderIDInvalid
	}

	notes, err := s.noteRepo.List(ctx, uid, params.FolderID)
	if err != nil {
		return nil, s.storeError("list", uid, err)
	}

	res := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		res = append(res, s.domainToDTO(n))
	}
	return res, nil
}

func (s *noteService) Get(ctx context.Context, uid string, params *dto.NoteGetRequest) (*dto.NoteDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	if !domain.IsValidID(params.ID) {
		return nil, code.ErrorInvalidID
	}

	n, err := s.noteRepo.GetByIDAndUser(ctx, params.ID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, s.storeError("get", uid, err)
	}
	return s.domainToDTO(n), nil
}

// Create files the note into folderId only when that folder belongs to the caller.
func (s *noteService) Create(ctx context.Context, uid string, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, code.ErrorNoteTitleRequired
	}

	var folderID *string
	if params.FolderID != nil && *params.FolderID != "" {
		id := *params.FolderID
		if !domain.IsValidID(id) {
			return nil, code.ErrorNoteFolderIDInvalid
		}
		if _, err := s.folderRepo.GetByIDAndUser(ctx, id, uid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorNoteFolderInvalid
			}
			return nil, s.storeError("create", uid, err)
		}
		folderID = &id
	}

	n, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:    title,
		Content:  params.Content,
		FolderID: folderID,
		UserID:   uid,
	})
	if err != nil {
		return nil, s.storeError("create", uid, err)
	}
	return s.domainToDTO(n), nil
}
