// Package save writes the build outputs to disk. Documents are
// marshaled with two-space indentation and written atomically via a
// temp file and rename, so a crashed run never leaves a truncated
// catalog behind.
package save

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/printdex/printdex/pkg/constants"
	"github.com/printdex/printdex/pkg/errors"
)

// JSON serializes v and atomically replaces the file at path, creating
// parent directories as needed.
func JSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapIO("encode", path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".printdex-*.tmp")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
