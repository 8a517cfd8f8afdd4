// Package docs embeds the user documentation topics served by the
// `plg topic` command.
package docs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"embed"
)

//go:embed *.md
var topics embed.FS

// Get returns the content of one documentation topic.
func Get(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// All returns the sorted names of every available topic except the readme.
func All() ([]string, error) {
	var names []string
	err := fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name != "readme" {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
