// Package safety guards every write to the target file: backup before
// the first change, atomic replacement so no observer ever sees a
// partial write, and verbatim restore from the backup.
package safety

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the target path to form the fixed sibling
// backup path.
const BackupSuffix = ".backup"

// Sentinel errors for safety-net operations.
var (
	// ErrNoBackup means restore was requested but no backup exists.
	ErrNoBackup = errors.New("no backup file found")
)

// BackupPath returns the fixed sibling backup path for a target.
func BackupPath(target string) string {
	return target + BackupSuffix
}

// EnsureBackup copies the target file unmodified to its backup path
// before the first write. An existing backup is never overwritten: it
// may hold the only pristine copy, and the target might already be
// patched. Reports whether a new backup was created.
func EnsureBackup(target string) (created bool, err error) {
	backup := BackupPath(target)

	_, statErr := os.Stat(backup)
	if statErr == nil {
		return false, nil
	}

	if !errors.Is(statErr, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup %s: %w", backup, statErr)
	}

	data, info, readErr := readWithInfo(target)
	if readErr != nil {
		return false, readErr
	}

	writeErr := writeAtomic(backup, data, info.Mode().Perm())
	if writeErr != nil {
		return false, fmt.Errorf("create backup: %w", writeErr)
	}

	return true, nil
}

// ReplaceTarget atomically replaces the target's content, preserving its
// permission bits. The new content is flushed to a temporary file in the
// same directory and renamed over the target, so the file at any
// observable point is either fully the old content or fully the new.
func ReplaceTarget(target string, data []byte) error {
	info, statErr := os.Stat(target)
	if statErr != nil {
		return fmt.Errorf("stat target %s: %w", target, statErr)
	}

	replaceErr := writeAtomic(target, data, info.Mode().Perm())
	if replaceErr != nil {
		return fmt.Errorf("replace target: %w", replaceErr)
	}

	return nil
}

// Restore copies the backup's bytes back over the target verbatim.
func Restore(target string) error {
	backup := BackupPath(target)

	data, info, readErr := readWithInfo(backup)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrNoBackup, backup)
		}

		return readErr
	}

	restoreErr := writeAtomic(target, data, info.Mode().Perm())
	if restoreErr != nil {
		return fmt.Errorf("restore target: %w", restoreErr)
	}

	return nil
}

func readWithInfo(path string) ([]byte, fs.FileInfo, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, statErr)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, readErr)
	}

	return data, info, nil
}

// writeAtomic writes data to a temporary file in the destination's
// directory, applies perm, flushes to durable storage, and renames over
// the destination.
func writeAtomic(dest string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(dest)

	tmp, createErr := os.CreateTemp(dir, filepath.Base(dest)+".tmp*")
	if createErr != nil {
		return fmt.Errorf("create temp file: %w", createErr)
	}

	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, writeErr := tmp.Write(data); writeErr != nil {
		cleanup()

		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if chmodErr := tmp.Chmod(perm); chmodErr != nil {
		cleanup()

		return fmt.Errorf("set permissions: %w", chmodErr)
	}

	if syncErr := tmp.Sync(); syncErr != nil {
		cleanup()

		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("close temp file: %w", closeErr)
	}

	if renameErr := os.Rename(tmpPath, dest); renameErr != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("rename into place: %w", renameErr)
	}

	return nil
}
