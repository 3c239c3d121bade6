package ui

import (
	"html/template"
	"os"

	"launchdash/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown converts notes to HTML. Raw HTML in the source is dropped.
func renderMarkdown(md []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	})
	return template.HTML(markdown.ToHTML(md, p, renderer))
}

// loadNotes renders path, or the embedded default notes when path is empty
func loadNotes(path string) (template.HTML, error) {
	var (
		md  []byte
		err error
	)
	if path == "" {
		md, err = embeddedFiles.ReadFile("notes.md")
	} else {
		md, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read notes %q", path)
	}
	return renderMarkdown(md), nil
}
