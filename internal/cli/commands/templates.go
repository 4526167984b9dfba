package commands

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed all:templates
var templateFS embed.FS

// templateFile is one file to write when initializing a project.
type templateFile struct {
	Name    string
	Content []byte
}

// readTemplate returns the files of an embedded template in walk order.
func readTemplate(templateName string) ([]templateFile, error) {
	var files []templateFile
	root := path.Join("templates", templateName)

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, templateFile{Name: rel, Content: content})
		return nil
	})

	return files, err
}

// writeTemplateFiles writes files into targetDir. Existing files are kept
// unless force is set; the returned names are the files actually written.
func writeTemplateFiles(files []templateFile, targetDir string, force bool) ([]string, error) {
	var written []string
	for _, f := range files {
		targetPath := filepath.Join(targetDir, f.Name)
		if err := os.MkdirAll(filepath.Dir(targetPath), 0750); err != nil {
			return written, err
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				continue
			}
		}

		if err := os.WriteFile(targetPath, f.Content, 0600); err != nil {
			return written, err
		}
		written = append(written, f.Name)
	}
	return written, nil
}
