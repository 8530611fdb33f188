// Package pagebuf implements a paged, growable byte buffer used as the
// LZW encoder's output sink. Writing grows the buffer one fixed-size page at
// a time instead of repeatedly reallocating and copying a single slice.
package pagebuf

import "bytes"

const defaultPageSize = 4096

// Buffer is a growing byte buffer backed by fixed-size pages.
type Buffer struct {
	pages    [][]byte
	page     int
	cursor   int
	pageSize int
}

// New returns an empty Buffer using the default page size.
func New() *Buffer {
	return NewSize(defaultPageSize)
}

// NewSize returns an empty Buffer using the given page size.
func NewSize(pageSize int) *Buffer {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	b := &Buffer{
		page:     -1,
		pageSize: pageSize,
		pages:    make([][]byte, 0, 4),
	}
	b.newPage()
	return b
}

func (b *Buffer) newPage() {
	b.page++
	b.pages = append(b.pages, make([]byte, b.pageSize))
	b.cursor = 0
}

// WriteByte appends a single byte, satisfying io.ByteWriter.
func (b *Buffer) WriteByte(val byte) error {
	if b.cursor >= b.pageSize {
		b.newPage()
	}
	b.pages[b.page][b.cursor] = val
	b.cursor++
	return nil
}

// Write appends p, satisfying io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	for _, c := range p {
		_ = b.WriteByte(c)
	}
	return len(p), nil
}

// Bytes concatenates every page into a single contiguous slice.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(b.Len())
	for i, page := range b.pages {
		if i < len(b.pages)-1 {
			buf.Write(page)
		} else {
			buf.Write(page[:b.cursor])
		}
	}
	return buf.Bytes()
}

// Len returns the total number of bytes written so far.
func (b *Buffer) Len() int {
	if len(b.pages) == 0 {
		return 0
	}
	return (len(b.pages)-1)*b.pageSize + b.cursor
}

// Grow ensures the buffer holds at least n bytes, appending zero bytes
// (and, if needed, whole new pages) as required. It never shrinks the
// buffer.
func (b *Buffer) Grow(n int) {
	for b.Len() < n {
		_ = b.WriteByte(0)
	}
}

// OrAt ORs v into the byte at absolute offset i, which must already be
// within the buffer (see Grow). This is how the LZW bit-packer splices
// a variable-width code across page boundaries without having to treat
// pages as one contiguous slice.
func (b *Buffer) OrAt(i int, v byte) {
	page := i / b.pageSize
	off := i % b.pageSize
	b.pages[page][off] |= v
}

// Truncate shrinks the buffer's logical length to n bytes. n must not
// exceed the current length.
func (b *Buffer) Truncate(n int) {
	if n == 0 {
		b.page, b.cursor = 0, 0
		b.pages = b.pages[:1]
		return
	}
	b.page = (n - 1) / b.pageSize
	b.cursor = n - b.page*b.pageSize
	b.pages = b.pages[:b.page+1]
}
