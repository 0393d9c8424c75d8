package export

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix selects zstd compression in Create.
const CompressedSuffix = ".zst"

// FrameWriter appends textual grid snapshots to a sink, separated by a blank
// line. It is safe for concurrent use.
type FrameWriter struct {
	mu     sync.Mutex
	closer io.Closer
	enc    *zstd.Encoder
	w      *bufio.Writer
	frames int
}

// Create opens path for writing, creating parent directories. Paths ending in
// ".zst" are zstd-compressed.
func Create(path string) (*FrameWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	fw, err := NewWriter(f, strings.HasSuffix(path, CompressedSuffix))
	if err != nil {
		f.Close()
		return nil, err
	}
	fw.closer = f
	return fw, nil
}

// NewWriter wraps w. Closing the FrameWriter does not close w.
func NewWriter(w io.Writer, compress bool) (*FrameWriter, error) {
	fw := &FrameWriter{}
	if compress {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		fw.enc = enc
		w = enc
	}
	fw.w = bufio.NewWriterSize(w, 64*1024)
	return fw, nil
}

// WriteFrame appends one snapshot. A trailing newline is added if missing.
func (fw *FrameWriter) WriteFrame(text string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.w == nil {
		return errors.New("export: write on closed frame writer")
	}
	if fw.frames > 0 {
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if _, err := fw.w.WriteString(text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	fw.frames++
	return nil
}

// Frames returns how many frames were written.
func (fw *FrameWriter) Frames() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.frames
}

// Close flushes buffered output and releases the sink.
func (fw *FrameWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.w == nil {
		return nil
	}
	err := fw.w.Flush()
	fw.w = nil
	if fw.enc != nil {
		if cerr := fw.enc.Close(); err == nil {
			err = cerr
		}
		fw.enc = nil
	}
	if fw.closer != nil {
		if cerr := fw.closer.Close(); err == nil {
			err = cerr
		}
		fw.closer = nil
	}
	return err
}

// SplitFrames is the inverse of a sequence of WriteFrame calls.
func SplitFrames(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n\n")
	for i := range parts {
		parts[i] += "\n"
	}
	return parts
}
