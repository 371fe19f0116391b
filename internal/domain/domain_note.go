package domain

import "time"

// Note 笔记领域模型
// A nil FolderID means the note is not filed in any folder.
type Note struct {
	ID        string
	Title     string
	Content   string
	FolderID  *string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InFolder 判断笔记是否属于指定文件夹
func (n *Note) InFolder(folderID string) bool {
	return n.FolderID != nil && *n.FolderID == folderID
}
