package dao

import (
	"context"

	"github.com/haierkeys/note-folder-service/internal/domain"
	"github.com/haierkeys/note-folder-service/internal/model"

	"gorm.io/gorm"
)

type noteRepository struct {
	*Dao
}

func NewNoteRepository(d *Dao) domain.NoteRepository {
	return &noteRepository{Dao: d}
}

func (r *noteRepository) note(ctx context.Context) *gorm.DB {
	return r.Dao.DB().WithContext(ctx).Model(&model.Note{})
}

func (r *noteRepository) GetByIDAndUser(ctx context.Context, id, uid string) (*domain.Note, error) {
	var m model.Note
	if err := r.note(ctx).Where("id = ? AND user_id = ?", id, uid).First(&m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *noteRepository) List(ctx context.Context, uid string, folderID string) ([]*domain.Note, error) {
	var ms []*model.Note
	q := r.note(ctx).Where("user_id = ?", uid)
	if folderID != "" {
		q = q.Where("folder_id = ?", folderID)
	}
	if err := q.Order("updated_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	res := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.domainToModel(note)
	if err := r.Dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.modelToDomain(m), nil
}

// DetachFolder clears folder_id on every note that references folderID; notes are never deleted.
func (r *noteRepository) DetachFolder(ctx context.Context, folderID string) (int64, error) {
	tx := r.note(ctx).Where("folder_id = ?", folderID).Update("folder_id", nil)
	return tx.RowsAffected, tx.Error
}

func (r *noteRepository) modelToDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		FolderID:  m.FolderID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *noteRepository) domainToModel(d *domain.Note) *model.Note {
	if d == nil {
		return nil
	}
	return &model.Note{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		FolderID:  d.FolderID,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
