package utils

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown converte o markdown de um resumo de inteligência em uma única
// linha de texto puro, adequada para os cards do feed.
func StripMarkdown(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var b strings.Builder
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.HTMLBlock, *ast.HTMLSpan, *ast.Image:
			return ast.SkipChildren
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				b.Write(n.Literal)
				b.WriteByte(' ')
			}
		case *ast.Softbreak, *ast.Hardbreak:
			b.WriteByte(' ')
		case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.BlockQuote:
			if !entering {
				b.WriteByte(' ')
			}
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(b.String()), " ")
}
