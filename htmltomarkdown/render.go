package htmltomarkdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var languageClassRe = regexp.MustCompile(`language-(\w+)`)

// renderCodeBlock emits a fenced block with the verbatim text of the nested
// <code> element, tagged with the language from a "language-<word>" class.
func renderCodeBlock(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	pre := goquery.NewDocumentFromNode(n).Selection
	code := pre.Find("code").First()
	if code.Length() == 0 {
		code = pre
	}

	lang := codeLanguage(code)
	if lang == "" {
		lang = codeLanguage(pre)
	}

	text := strings.TrimSuffix(code.Text(), "\n")

	_, _ = w.WriteString("\n\n```" + lang + "\n" + text + "\n```\n\n")
	return converter.RenderSuccess
}

func codeLanguage(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	if m := languageClassRe.FindStringSubmatch(class); m != nil {
		return m[1]
	}
	return ""
}

// renderTable re-parses the table markup on its own and emits a pipe table
// with a separator row after the first row.
func renderTable(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return converter.RenderTryNext
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return converter.RenderTryNext
	}

	// Rows of nested tables belong to their cell's text, not to this table.
	table := doc.Find("table").First()
	ownRows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})

	var rows []string
	ownRows.Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, tableCell(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
		if len(rows) == 1 {
			sep := make([]string, len(cells))
			for j := range sep {
				sep[j] = "---"
			}
			rows = append(rows, "| "+strings.Join(sep, " | ")+" |")
		}
	})

	if len(rows) > 0 {
		_, _ = w.WriteString("\n\n" + strings.Join(rows, "\n") + "\n\n")
	}
	return converter.RenderSuccess
}

func tableCell(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}

func renderNothing(_ converter.Context, _ converter.Writer, _ *html.Node) converter.RenderStatus {
	return converter.RenderSuccess
}

var (
	emptyLinkRe     = regexp.MustCompile(`(!?)\[([^\]]*)\]\(\s*\)`)
	blankLineRe     = regexp.MustCompile(`(?m)^[ \t]+$`)
	extraNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up converter output: links with empty targets become
// plain text, whitespace-only lines are emptied, runs of three or more
// newlines collapse to two and the result is trimmed. Lines inside fenced
// code blocks keep their link-like text.
func Normalize(md string) string {
	md = stripEmptyLinks(md)
	md = blankLineRe.ReplaceAllString(md, "")
	md = extraNewlinesRe.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}

func stripEmptyLinks(md string) string {
	lines := strings.Split(md, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = emptyLinkRe.ReplaceAllStringFunc(line, func(m string) string {
			if strings.HasPrefix(m, "!") {
				return m
			}
			return emptyLinkRe.FindStringSubmatch(m)[2]
		})
	}
	return strings.Join(lines, "\n")
}
