package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist determines if the given file or directory exists
// IsExist 判断所给路径文件/文件夹是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst) // os.Stat获取文件信息
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory of dst
// CreatePath 创建 dst 所在目录
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}
