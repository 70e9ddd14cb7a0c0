package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

var fileTypes = map[string]string{
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
}

// File keeps every key under one section of a TOML, YAML or JSON file.
// Each Set or Delete rewrites the whole file.
type File struct {
	path     string
	section  string
	fileType string
	data     map[string]string
}

// OpenFile loads path if it exists. A missing file is an empty store.
func OpenFile(path, section string) (*File, error) {
	ft, ok := fileTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("store file %s: unsupported extension (want .toml, .yaml or .json)", path)
	}
	f := &File{path: path, section: section, fileType: ft, data: make(map[string]string)}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return f, nil
	} else if err != nil {
		return nil, fmt.Errorf("store file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(ft)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}
	for k, val := range v.GetStringMapString(section) {
		f.data[k] = val
	}
	return f, nil
}

// Path returns the backing file location.
func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool, error) {
	v, ok := f.data[strings.ToLower(key)]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.data[strings.ToLower(key)] = value
	return f.flush()
}

func (f *File) Delete(key string) error {
	k := strings.ToLower(key)
	if _, ok := f.data[k]; !ok {
		return nil
	}
	delete(f.data, k)
	return f.flush()
}

func (f *File) Keys() ([]string, error) {
	out := make([]string, 0, len(f.data))
	for k := range f.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (f *File) Close() error { return nil }

// flush writes a fresh viper instance so deleted keys do not survive.
func (f *File) flush() error {
	v := viper.New()
	v.SetConfigType(f.fileType)
	for k, val := range f.data {
		v.Set(f.section+"."+k, val)
	}
	if dir := filepath.Dir(f.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write store file %s: %w", f.path, err)
		}
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("write store file %s: %w", f.path, err)
	}
	return nil
}
