package confblock

import (
	"fmt"
	"os"
	"path/filepath"
)

// #region load
// LoadFile reads the resource at path and extracts its config.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read resource: %w", err)
	}
	return Extract(string(data)), nil
}

// #endregion load

// #region rewrite-file
// RewriteFile rewrites the resource's config region in place. The full new
// text is written to a temp file in the same directory and then published
// with a single rename, so a crash mid-write never leaves a half-written
// resource behind.
func RewriteFile(path string, cfg Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read resource: %w", err)
	}

	newText, err := Rewrite(string(data), cfg)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".confblock-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(newText); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish resource: %w", err)
	}
	return nil
}

// #endregion rewrite-file

// #region ensure
// EnsureFile creates the resource with a fresh config region holding cfg if
// no file exists at path. An existing file is left untouched.
func EnsureFile(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat resource: %w", err)
	}

	text := fmt.Sprintf("%s\n%s=%.6f\n%s=%.6f\n%s=%d\n%s\n",
		BeginMarker,
		KeyLearningRate, cfg.LearningRate,
		KeyMutationProb, cfg.MutationProb,
		KeyRecompileInterval, cfg.RecompileInterval,
		EndMarker,
	)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

// #endregion ensure
