// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// FindFiles resolves a mix of file and directory paths into a sorted,
// de-duplicated list of files with the given extension. Directories are
// walked recursively; files named explicitly must carry the extension.
func FindFiles(paths []string, extension string) ([]string, error) {
	seen := make(map[string]struct{})
	var all []string

	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		all = append(all, p)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}

		if !info.IsDir() {
			if filepath.Ext(p) != extension {
				return nil, fmt.Errorf("file %s does not have the %s extension", p, extension)
			}
			add(p)
			continue
		}

		files, err := FindFilesByExtension(p, extension)
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", p, err)
		}
		for _, f := range files {
			add(f)
		}
	}

	sort.Strings(all)
	return all, nil
}

// FindFilesFS is FindFilesByExtension for an fs.FS. The result is sorted.
func FindFilesFS(fsys fs.FS, root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(d.Name()) == extension {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
