package dto

import "time"

// NoteDTO 笔记数据传输对象
// FolderID is omitted from the JSON once the note is detached.
type NoteDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FolderID  *string   `json:"folderId,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteCreateRequest 创建笔记参数
type NoteCreateRequest struct {
	Title    string  `json:"title" form:"title" binding:"max=255"`
	Content  string  `json:"content" form:"content"`
	FolderID *string `json:"folderId" form:"folderId"`
}

// NoteListRequest 笔记列表参数
type NoteListRequest struct {
	FolderID string `json:"folderId" form:"folderId"`
}

// NoteGetRequest 获取单个笔记参数
type NoteGetRequest struct {
	ID string `uri:"id" json:"id"`
}
