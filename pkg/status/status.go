// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"os"

	"gitlab.com/tozd/go/errors"
)

// 📊 Status is the result tag of one rename outcome
type Status int

const (
	StatusSkipped Status = iota // nothing happened to the file
	StatusRenamed               // the file was renamed
	StatusPlanned               // the file would be renamed (dry run)
	StatusFailed                // the rename was refused or the filesystem failed
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusPlanned:
		return "planned"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// 🏷️ Reason qualifies skipped and failed outcomes
type Reason int

const (
	ReasonNone                Reason = iota
	ReasonNoMatch                    // name did not match the pattern
	ReasonUnchanged                  // destination equals source
	ReasonDestinationConflict        // destination claimed earlier in the batch or already on disk
	ReasonInvalidName                // formatted name is empty, a dot entry or contains a separator
	ReasonIO                         // filesystem error
)

// String returns a string representation of Reason
func (r Reason) String() string {
	switch r {
	case ReasonNoMatch:
		return "no match"
	case ReasonUnchanged:
		return "unchanged"
	case ReasonDestinationConflict:
		return "destination conflict"
	case ReasonInvalidName:
		return "invalid name"
	case ReasonIO:
		return "io error"
	default:
		return ""
	}
}

// 💾 FileManager is the filesystem surface the rename executor needs
type FileManager interface {
	// Lstat describes path without following a final symlink
	Lstat(ctx context.Context, path string) (os.FileInfo, error)
	// Rename moves from to to in a single call
	Rename(ctx context.Context, from, to string) error
}

// 🖥️ OSFileManager implements FileManager on the local filesystem
type OSFileManager struct{}

// 🏭 NewOSFileManager creates a FileManager backed by package os
func NewOSFileManager() *OSFileManager {
	return &OSFileManager{}
}

func (m *OSFileManager) Lstat(ctx context.Context, path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return info, nil
}

func (m *OSFileManager) Rename(ctx context.Context, from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
