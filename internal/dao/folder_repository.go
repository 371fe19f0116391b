package dao

import (
	"context"

	"github.com/haierkeys/note-folder-service/internal/domain"
	"github.com/haierkeys/note-folder-service/internal/model"

	"gorm.io/gorm"
)

type folderRepository struct {
	*Dao
}

func NewFolderRepository(d *Dao) domain.FolderRepository {
	return &folderRepository{Dao: d}
}

func (r *folderRepository) folder(ctx context.Context) *gorm.DB {
	return r.Dao.DB().WithContext(ctx).Model(&model.Folder{})
}

func (r *folderRepository) GetByID(ctx context.Context, id string) (*domain.Folder, error) {
	var m model.Folder
	if err := r.folder(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *folderRepository) GetByIDAndUser(ctx context.Context, id, uid string) (*domain.Folder, error) {
	var m model.Folder
	if err := r.folder(ctx).Where("id = ? AND user_id = ?", id, uid).First(&m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *folderRepository) List(ctx context.Context, uid string) ([]*domain.Folder, error) {
	var ms []*model.Folder
	if err := r.folder(ctx).Where("user_id = ?", uid).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	res := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m := r.domainToModel(folder)
	if err := r.Dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.modelToDomain(m), nil
}

func (r *folderRepository) UpdateName(ctx context.Context, id, name string) (*domain.Folder, error) {
	tx := r.folder(ctx).Where("id = ?", id).Update("name", name)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	// mysql reports zero affected rows for an unchanged name, so the read decides
	return r.GetByID(ctx, id)
}

func (r *folderRepository) Delete(ctx context.Context, id string) error {
	return r.Dao.DB().WithContext(ctx).Where("id = ?", id).Delete(&model.Folder{}).Error
}

func (r *folderRepository) modelToDomain(m *model.Folder) *domain.Folder {
	if m == nil {
		return nil
	}
	return &domain.Folder{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *folderRepository) domainToModel(d *domain.Folder) *model.Folder {
	if d == nil {
		return nil
	}
	return &model.Folder{
		ID:        d.ID,
		Name:      d.Name,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
