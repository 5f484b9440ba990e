// Package fileutil writes the small files dpdkintel owns (configuration
// template, PID file) without ever leaving a half-written one behind.
// fileutil 包写入 dpdkintel 自有的小文件（配置模板、PID 文件），不会留下写了一半的文件。
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data to a temporary file in the target directory and
// renames it over filename.
// AtomicWriteFile 将数据写入目标目录下的临时文件，然后重命名为 filename。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filepath.Clean(filename))
	tmp, err := os.CreateTemp(dir, ".dpdkintel-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

// WriteFileIfAbsent creates filename with data, including missing parent
// directories. It reports false when the file already exists.
// WriteFileIfAbsent 创建 filename（包括缺失的父目录）并写入数据，文件已存在时返回 false。
func WriteFileIfAbsent(filename string, data []byte, perm os.FileMode) (bool, error) {
	if _, err := os.Stat(filename); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := AtomicWriteFile(filename, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
