package output

import (
	"io"
	"strings"
	"sync"
)

// Stream identifies which standard stream a chunk came from.
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// Chunk is a single write delivered by one of the streams.
type Chunk struct {
	Stream Stream
	Data   []byte
}

// Buffer collects chunks from both streams in arrival order.
type Buffer struct {
	chunks []Chunk
	mu     sync.Mutex
}

func NewBuffer() *Buffer {
	return &Buffer{chunks: make([]Chunk, 0)}
}

// Writer returns an io.Writer that appends to b tagged with stream.
func (b *Buffer) Writer(stream Stream) io.Writer {
	return &streamWriter{buf: b, stream: stream}
}

func (b *Buffer) append(stream Stream, p []byte) {
	data := make([]byte, len(p))
	copy(data, p)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.chunks = append(b.chunks, Chunk{Stream: stream, Data: data})
}

// String returns every chunk concatenated in arrival order.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	for _, c := range b.chunks {
		sb.Write(c.Data)
	}
	return sb.String()
}

// Len returns the total number of bytes captured.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.chunks {
		n += len(c.Data)
	}
	return n
}

// StreamLen returns the number of bytes captured from one stream.
func (b *Buffer) StreamLen(stream Stream) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.chunks {
		if c.Stream == stream {
			n += len(c.Data)
		}
	}
	return n
}

type streamWriter struct {
	buf    *Buffer
	stream Stream
}

func (w *streamWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.buf.append(w.stream, p)
	return len(p), nil
}
