package io

import (
	"os"
	"path/filepath"
)

// File is a Sink that writes to a temporary file beside Path, and renames
// it over Path on Commit.
type File struct {
	Path string // Final path of the output.

	temp *os.File
}

var _ Sink = (*File)(nil)

// CreateFile opens a temporary file in the directory of path.
func CreateFile(path string) (file *File, err error) {
	dir, base := filepath.Split(path)
	if len(dir) == 0 {
		dir = "."
	}

	temp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		err = &ErrIO{Op: "create", Path: path, Err: err}
		return
	}

	file = &File{Path: path, temp: temp}
	return
}

// Write writes to the temporary file.
func (file *File) Write(data []byte) (n int, err error) {
	if file.temp == nil {
		err = ErrSinkClosed
		return
	}

	n, err = file.temp.Write(data)
	if err != nil {
		err = &ErrIO{Op: "write", Path: file.temp.Name(), Err: err}
	}
	return
}

// Commit closes the temporary file and renames it to Path.
func (file *File) Commit() (err error) {
	temp := file.temp
	if temp == nil {
		return
	}
	file.temp = nil

	err = temp.Close()
	if err != nil {
		os.Remove(temp.Name())
		err = &ErrIO{Op: "close", Path: temp.Name(), Err: err}
		return
	}

	err = os.Rename(temp.Name(), file.Path)
	if err != nil {
		os.Remove(temp.Name())
		err = &ErrIO{Op: "rename", Path: file.Path, Err: err}
		return
	}

	return
}

// Abort closes and removes the temporary file. Path is left untouched.
func (file *File) Abort() (err error) {
	temp := file.temp
	if temp == nil {
		return
	}
	file.temp = nil

	temp.Close()
	err = os.Remove(temp.Name())
	if err != nil {
		err = &ErrIO{Op: "remove", Path: temp.Name(), Err: err}
	}
	return
}
