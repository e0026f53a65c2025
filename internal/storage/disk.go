// Package storage implements the avatar file store on local disk. Uploads
// land in a tmp directory first; SaveFile moves them into the served
// uploads directory.
package storage

import (
	"context"
	"os"
	"path/filepath"
)

type Disk struct {
	tmpDir     string
	uploadsDir string
}

func NewDisk(tmpDir, uploadsDir string) *Disk {
	return &Disk{tmpDir: tmpDir, uploadsDir: uploadsDir}
}

func (d *Disk) SaveFile(_ context.Context, name string) (string, error) {
	if err := os.MkdirAll(d.uploadsDir, 0o755); err != nil {
		return "", err
	}
	src := filepath.Join(d.tmpDir, name)
	dst := filepath.Join(d.uploadsDir, name)
	if err := os.Rename(src, dst); err != nil {
		return "", err
	}
	return name, nil
}

func (d *Disk) DeleteFile(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(d.uploadsDir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
