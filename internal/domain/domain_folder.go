package domain

import "time"

// Folder 文件夹领域模型
// Name is unique among folders sharing the same UserID.
type Folder struct {
	ID        string
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy 判断文件夹是否属于指定用户
func (f *Folder) IsOwnedBy(uid string) bool {
	return f != nil && f.UserID == uid
}
