// Package domain 定义领域模型和接口
package domain

import "context"

// FolderRepository 文件夹仓储接口
type FolderRepository interface {
	// GetByID 根据ID获取文件夹（不过滤用户）
	GetByID(ctx context.Context, id string) (*Folder, error)

	// GetByIDAndUser 根据ID和用户获取文件夹
	GetByIDAndUser(ctx context.Context, id, uid string) (*Folder, error)

	// List 获取用户的文件夹列表，按名称升序
	List(ctx context.Context, uid string) ([]*Folder, error)

	// Create 创建文件夹
	Create(ctx context.Context, folder *Folder) (*Folder, error)

	// UpdateName 重命名文件夹，没有匹配记录时返回 gorm.ErrRecordNotFound
	UpdateName(ctx context.Context, id, name string) (*Folder, error)

	// Delete 物理删除文件夹
	Delete(ctx context.Context, id string) error
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// GetByIDAndUser 根据ID和用户获取笔记
	GetByIDAndUser(ctx context.Context, id, uid string) (*Note, error)

	// List 获取用户的笔记列表，folderID 不为空时只返回该文件夹下的笔记
	List(ctx context.Context, uid string, folderID string) ([]*Note, error)

	// Create 创建笔记
	Create(ctx context.Context, note *Note) (*Note, error)

	// DetachFolder 清除所有引用该文件夹的笔记的 folder_id，返回受影响的数量
	DetachFolder(ctx context.Context, folderID string) (int64, error)
}

// Transactor runs fn against repositories bound to a single store transaction.
// Transactor 在同一个事务中执行 fn
type Transactor interface {
	Transaction(ctx context.Context, fn func(folders FolderRepository, notes NoteRepository) error) error
}
