// Package mmap maps files read-only into memory.
//
// Datasets loaded from local disk are decoded straight from the mapping, so
// the file is never copied into a Go buffer.
//
//	m, err := mmap.Open("people.json")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) with madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile, and Advise is a no-op there.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch the slice returned by Bytes after Close.
package mmap
