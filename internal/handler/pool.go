package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 1024
	// Leaderboards can grow; buffers past this size are dropped rather than pooled
	maxPooledBufferSize = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
