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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// FolderService 文件夹业务服务接口
// Every call takes the caller identity explicitly; it is trusted as-is.
type FolderService interface {
	List(ctx context.Context, uid string) ([]*dto.FolderDTO, error)
	Get(ctx context.Context, uid string, params *dto.FolderGetRequest) (*dto.FolderDTO, error)
	Create(ctx context.Context, uid string, params *dto.FolderCreateRequest) (*dto.FolderDTO, error)
	Update(ctx context.Context, uid string, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error)
	Delete(ctx context.Context, uid string, params *dto.FolderDeleteRequest) error
}

type folderService struct {
	folderRepo domain.FolderRepository
	noteRepo   domain.NoteRepository
	tx         domain.Transactor
	config     FolderServiceConfig
	logger     *zap.Logger
}

func NewFolderService(folderRepo domain.FolderRepository, noteRepo domain.NoteRepository, tx domain.Transactor, cfg FolderServiceConfig, lg *zap.Logger) FolderService {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &folderService{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
		tx:         tx,
		config:     cfg,
		logger:     lg,
	}
}

func (s *folderService) domainToDTO(f *domain.Folder) *dto.FolderDTO {
	if f == nil {
		return nil
	}
	return &dto.FolderDTO{
		ID:        f.ID,
		Name:      f.Name,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// storeError converts a store failure into the sanitized DB code, keeping the cause for logs.
func (s *folderService) storeError(op string, uid string, err error) error {
	s.logger.Error("folder store failure",
		zap.String(logger.FieldAction, op),
		zap.String(logger.FieldUID, uid),
		zap.Error(err),
	)
	return code.ErrorDBQuery.WithCause(err)
}

func (s *folderService) List(ctx context.Context, uid string) ([]*dto.FolderDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}

	folders, err := s.folderRepo.List(ctx, uid)
	if err != nil {
		return nil, s.storeError("list", uid, err)
	}

	res := make([]*dto.FolderDTO, 0, len(folders))
	for _, f := range folders {
		res = append(res, s.domainToDTO(f))
	}
	return res, nil
}

// Get reads the folder filtered by id and owner at once, so a folder owned by
// someone else is indistinguishable from a missing one.
func (s *folderService) Get(ctx context.Context, uid string, params *dto.FolderGetRequest) (*dto.FolderDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	if !domain.IsValidID(params.ID) {
		return nil, code.ErrorInvalidID
	}

	f, err := s.folderRepo.GetByIDAndUser(ctx, params.ID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, s.storeError("get", uid, err)
	}
	return s.domainToDTO(f), nil
}

func (s *folderService) Create(ctx context.Context, uid string, params *dto.FolderCreateRequest) (*dto.FolderDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorFolderNameRequired
	}

	f, err := s.folderRepo.Create(ctx, &domain.Folder{Name: name, UserID: uid})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorFolderNameExist.WithCause(err)
		}
		return nil, s.storeError("create", uid, err)
	}
	return s.domainToDTO(f), nil
}

// Update looks the folder up without the owner filter first so that a missing
// id and a foreign id produce different outcomes.
func (s *folderService) Update(ctx context.Context, uid string, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error) {
	if uid == "" {
		return nil, code.ErrorNotUserAuthToken
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorFolderNameRequired
	}
	if !domain.IsValidID(params.ID) {
		return nil, code.ErrorInvalidID
	}

	if _, err := s.ownedFolder(ctx, uid, params.ID, "update"); err != nil {
		return nil, err
	}

	f, err := s.folderRepo.UpdateName(ctx, params.ID, name)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// removed between lookup and update
			return nil, code.ErrorNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, code.ErrorFolderNameExist.WithCause(err)
		}
		return nil, s.storeError("update", uid, err)
	}
	return s.domainToDTO(f), nil
}

func (s *folderService) Delete(ctx context.Context, uid string, params *dto.FolderDeleteRequest) error {
	if uid == "" {
		return code.ErrorNotUserAuthToken
	}
	if !domain.IsValidID(params.ID) {
		return code.ErrorInvalidID
	}

	if _, err := s.ownedFolder(ctx, uid, params.ID, "delete"); err != nil {
		return err
	}

	var detached int64
	var err error
	if s.config.AtomicDelete && s.tx != nil {
		err = s.tx.Transaction(ctx, func(folders domain.FolderRepository, notes domain.NoteRepository) error {
			if err := folders.Delete(ctx, params.ID); err != nil {
				return err
			}
			n, err := notes.DetachFolder(ctx, params.ID)
			detached = n
			return err
		})
	} else {
		detached, err = s.deleteConcurrently(ctx, params.ID)
	}
	if err != nil {
		return s.storeError("delete", uid, err)
	}

	s.logger.Info("folder deleted",
		zap.String(logger.FieldUID, uid),
		zap.String(logger.FieldFolderID, params.ID),
		zap.Int64(logger.FieldCount, detached),
		zap.Bool("atomic", s.config.AtomicDelete && s.tx != nil),
	)
	return nil
}

// deleteConcurrently removes the folder and detaches its notes in parallel and
// waits for both. Neither step is cancelled or rolled back when the other fails,
// so a failure can leave notes pointing at a removed folder or the reverse.
func (s *folderService) deleteConcurrently(ctx context.Context, folderID string) (int64, error) {
	var g errgroup.Group
	var detached int64

	g.Go(func() error {
		return s.folderRepo.Delete(ctx, folderID)
	})
	g.Go(func() error {
		n, err := s.noteRepo.DetachFolder(ctx, folderID)
		detached = n
		return err
	})

	err := g.Wait()
	return detached, err
}

// ownedFolder performs the unfiltered lookup followed by the ownership comparison.
func (s *folderService) ownedFolder(ctx context.Context, uid, id, op string) (*domain.Folder, error) {
	f, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, s.storeError(op, uid, err)
	}
	if !f.IsOwnedBy(uid) {
		return nil, code.ErrorFolderNotOwned
	}
	return f, nil
}
