package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Makepad-fr/contactform/internal/model"
)

// JSON-backed log of submitted contacts. Single file, human-readable, portable.
// No locking; one form process writes at a time.

const (
	DefaultFileName = "submissions.json"
	// DefaultKeyword as a save path selects DefaultPath.
	DefaultKeyword = "default"
)

// Submission is one saved snapshot.
type Submission struct {
	SubmittedAt time.Time     `json:"submittedAt"`
	Contact     model.Contact `json:"contact"`
}

// DefaultPath is submissions.json in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// ResolvePath maps DefaultKeyword to DefaultPath and returns other paths unchanged.
func ResolvePath(path string) (string, error) {
	if path == DefaultKeyword {
		return DefaultPath()
	}
	return path, nil
}

// Load returns every submission in path. A missing file is empty.
func Load(path string) ([]Submission, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Submission{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var subs []Submission
	if err := json.Unmarshal(b, &subs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return subs, nil
}

// Save replaces the contents of path with subs.
func Save(path string, subs []Submission) error {
	b, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Append adds c to the log in path.
func Append(path string, c model.Contact, at time.Time) error {
	subs, err := Load(path)
	if err != nil {
		return err
	}
	subs = append(subs, Submission{SubmittedAt: at.UTC(), Contact: c})
	return Save(path, subs)
}
