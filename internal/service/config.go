// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	Folder FolderServiceConfig // Folder related config // 文件夹相关配置
}

// FolderServiceConfig folder service configuration
// FolderServiceConfig 文件夹服务配置
type FolderServiceConfig struct {
	// AtomicDelete removes the folder and detaches its notes in one transaction.
	// When false both steps run concurrently without rollback.
	// AtomicDelete 删除文件夹与解除笔记关联是否在同一事务中执行
	AtomicDelete bool
}
