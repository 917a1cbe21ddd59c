package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/utils"
)

// ImageStore writes uploaded catalog images under the public static root,
// partitioned per kind (<root>/packages, <root>/tours). Only the generated
// filename is stored on the row; the row owns the file, so replacing or
// deleting the row also removes the old file (best-effort).
type ImageStore struct {
	Root      string
	RequestID string
}

// Save persists the upload under a timestamp-prefixed name and returns that
// name. Zero-size uploads return "" and no error: the caller keeps the prior
// image reference.
func (s ImageStore) Save(kind models.ItemKind, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", nil
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), utils.SanitizeFilename(file.Filename))
	dir := filepath.Join(s.Root, string(kind)+"s")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domain.InternalError{Msg: "failed to prepare upload dir", Err: err}
	}

	src, err := file.Open()
	if err != nil {
		return "", domain.InternalError{Msg: "failed to read upload", Err: err}
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", domain.InternalError{Msg: "failed to write upload", Err: err}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", domain.InternalError{Msg: "failed to write upload", Err: err}
	}
	return name, nil
}

// Remove deletes a previously stored image. At-least-once cleanup: failure is
// logged and swallowed so it never fails the parent request.
func (s ImageStore) Remove(kind models.ItemKind, name string) {
	if name == "" {
		return
	}
	path := filepath.Join(s.Root, string(kind)+"s", filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		utils.LogEvent(s.RequestID, "image", "cleanup_failed", path+": "+err.Error())
	}
}
