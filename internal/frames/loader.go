package frames

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrFrameIndex is returned when a requested frame is not in the file.
var ErrFrameIndex = errors.New("frame index out of range")

// FrameLen returns the byte length of one YUV420SP frame: a full luma plane
// plus a half-size interleaved chroma plane.
func FrameLen(width, height int) int {
	frameSize := width * height
	return frameSize + frameSize/2
}

// Cache provides thread-safe caching of raw frame files to avoid redundant disk reads.
//
// The cache stores file contents keyed by their path. Once a file is loaded,
// subsequent Load() calls for the same path return the cached bytes without
// disk I/O. Cached bytes are shared and must be treated as read-only.
//
// Cache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached files remain in memory until explicitly removed via Evict() or Clear().
// Raw captures grow quickly (a 640x480 frame is 460800 bytes), so long-running
// processes should evict files they are done with.
type Cache struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewCache creates and initializes a new empty frame cache.
func NewCache() *Cache {
	return &Cache{
		files: make(map[string][]byte),
	}
}

// Load retrieves a file from the cache or reads it from disk if not cached.
//
// The file is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) result in separate cache entries.
func (c *Cache) Load(path string) ([]byte, error) {
	c.mu.RLock()
	if data, ok := c.files[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame file: %w", err)
	}

	c.mu.Lock()
	c.files[path] = data
	c.mu.Unlock()

	return data, nil
}

// Clear removes all files from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.files = make(map[string][]byte)
	c.mu.Unlock()
}

// Evict removes a specific file from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()
}

// Info contains metadata about a raw frame file.
type Info struct {
	// Width is the frame width in pixels, as supplied by the caller.
	Width int `json:"width"`

	// Height is the frame height in pixels, as supplied by the caller.
	Height int `json:"height"`

	// FrameBytes is the length of one YUV420SP frame.
	FrameBytes int `json:"frame_bytes"`

	// FrameCount is the number of complete frames in the file.
	FrameCount int `json:"frame_count"`

	// TrailingBytes counts bytes after the last complete frame. A non-zero
	// value usually means the width or height is wrong.
	TrailingBytes int `json:"trailing_bytes"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect loads a raw frame file and reports how it divides into frames of
// the given dimensions.
func Inspect(cache *Cache, path string, width, height int) (*Info, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	data, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	frameBytes := FrameLen(width, height)
	return &Info{
		Width:         width,
		Height:        height,
		FrameBytes:    frameBytes,
		FrameCount:    len(data) / frameBytes,
		TrailingBytes: len(data) % frameBytes,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Extract returns the index-th frame of a concatenated YUV420SP capture.
//
// The returned slice aliases data.
func Extract(data []byte, width, height, index int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	frameBytes := FrameLen(width, height)
	count := len(data) / frameBytes
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrFrameIndex, index, count)
	}

	start := index * frameBytes
	return data[start : start+frameBytes : start+frameBytes], nil
}
