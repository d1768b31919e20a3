package file

import "os"

// IsFile 判断路径是否为存在的普通文件
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
