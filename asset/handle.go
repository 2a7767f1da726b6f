package asset

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// LoadState is the load progress of an asset as seen from the tick loop.
type LoadState int

const (
	// Unknown means the server has never been asked for the asset.
	Unknown LoadState = iota
	Pending
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ImageHandle identifies an image by its cleaned asset path. Handles are
// cheap to copy and stay valid across reloads of the same path.
type ImageHandle struct {
	id uint64
}

func (h ImageHandle) Valid() bool { return h.id != 0 }

// ProjectHandle identifies a loaded LDtk project.
type ProjectHandle struct {
	id uint64
}

func (h ProjectHandle) Valid() bool { return h.id != 0 }

// LayoutHandle identifies a registered atlas layout.
type LayoutHandle struct {
	index int
}

func (h LayoutHandle) Valid() bool { return h.index > 0 }

func pathID(p string) uint64 {
	id := xxhash.Sum64String(p)
	if id == 0 {
		id = 1
	}
	return id
}

// CleanPath normalizes an asset path to the slash-separated form used as a
// cache key.
func CleanPath(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(p)), "./")
}
