// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Storage and console collaborators wrapped as deferred effects. None of
// these touch the file system or the writer at construction time.

// ReadFile describes reading a whole file as a string.
func ReadFile(path string) IO[string] {
	return func() (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// ReadLines describes reading a whole file as a stream of lines. The file
// is read once per Run; the returned stream traverses the in-memory lines
// and is freely restartable.
func ReadLines(path string) IO[Stream[string]] {
	return Map(ReadFile(path), func(content string) Stream[string] {
		lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
		return FromSlice(lines)
	})
}

// WriteFile describes writing content to a file, replacing it.
func WriteFile(path, content string) IO[struct{}] {
	return func() (struct{}, error) {
		return struct{}{}, os.WriteFile(path, []byte(content), 0o644)
	}
}

// AppendFile describes appending content to a file, creating it if needed.
func AppendFile(path, content string) IO[struct{}] {
	return func() (struct{}, error) {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return struct{}{}, err
		}
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return struct{}{}, err
		}
		return struct{}{}, f.Close()
	}
}

// PrintLine describes writing a line to w.
func PrintLine(w io.Writer, s string) IO[struct{}] {
	return func() (struct{}, error) {
		_, err := fmt.Fprintln(w, s)
		return struct{}{}, err
	}
}
