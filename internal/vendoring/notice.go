package vendoring

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed resources
var noticeResources embed.FS

// FindLicense returns the contents of the license file in dir. Any file whose
// name without extension is "LICENSE", compared case-insensitively, counts.
// Returns fs.ErrNotExist when the directory holds none.
func FindLicense(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if !strings.EqualFold(stem, "LICENSE") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no license file in %q: %w", dir, fs.ErrNotExist)
}

type noticeData struct {
	Opening         string
	MainFile        string
	ToolLicense     string
	CompilerLicense string
}

// renderNotice renders the attribution notice. The opening paragraph differs
// between command-line and API generated artifacts: the former records the
// exact command so the output can be reproduced.
func renderNotice(originalCmd, mainFile, toolLicense, compilerLicense string) (string, error) {
	openingName := "resources/api-notice.tmpl"
	if originalCmd != "" {
		openingName = "resources/cli-notice.tmpl"
	}
	opening, err := renderTemplate(openingName, struct{ Command string }{Command: originalCmd})
	if err != nil {
		return "", err
	}
	return renderTemplate("resources/notice.tmpl", noticeData{
		Opening:         strings.TrimRight(opening, "\n"),
		MainFile:        mainFile,
		ToolLicense:     strings.TrimRight(toolLicense, "\n"),
		CompilerLicense: strings.TrimRight(compilerLicense, "\n"),
	})
}

func renderTemplate(name string, data any) (string, error) {
	raw, err := noticeResources.ReadFile(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(filepath.Base(name)).Parse(string(raw))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
