package importer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/icddkit/container"
)

// ExtractBackup unpacks a CDE backup ZIP into a fresh temporary directory
// and flattens the doubled backup folder artifact some exports carry.
// The caller removes the directory when done.
func ExtractBackup(zipPath string) (string, error) {
	dir, err := os.MkdirTemp("", "icdd-cde-")
	if err != nil {
		return "", fmt.Errorf("extract backup: %w", err)
	}
	if err := container.Extract(zipPath, dir); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	FlattenDoubled(dir)
	slog.Info("CDE backup extracted", "zip", zipPath, "dir", dir)
	return dir, nil
}

// FlattenDoubled removes one level of an identically-named nested backup
// directory: dir/X/X/* becomes dir/X/*. Some CDE exports double-nest their
// top-level folder.
func FlattenDoubled(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		outer := filepath.Join(dir, entry.Name())
		inner := filepath.Join(outer, entry.Name())
		info, err := os.Stat(inner)
		if err != nil || !info.IsDir() {
			continue
		}
		nested, err := os.ReadDir(inner)
		if err != nil {
			continue
		}
		for _, item := range nested {
			if err := os.Rename(filepath.Join(inner, item.Name()), filepath.Join(outer, item.Name())); err != nil {
				slog.Warn("Failed to flatten nested backup entry", "entry", item.Name(), "error", err)
			}
		}
		if err := os.Remove(inner); err == nil {
			slog.Info("Flattened doubled backup folder", "folder", entry.Name())
		}
	}
}

// CopyPayload copies the extracted backup tree into the container's
// payload documents directory.
func CopyPayload(srcDir, destDir string) error {
	err := filepath.WalkDir(srcDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(destDir, rel)
		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return fmt.Errorf("copy payload: %w", err)
	}
	return nil
}

// DiscoverCSV finds relationship CSV files anywhere under the extracted
// backup, in sorted order for deterministic processing.
func DiscoverCSV(dir string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("discover csv: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
