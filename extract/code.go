package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

var terminalCaptionRe = regexp.MustCompile(`(?i)terminal\s*window`)

// srOnlyClasses mark screen-reader-only elements, which some themes use
// to carry code block captions.
var srOnlyClasses = []string{"sr-only", "visually-hidden", "screen-reader-text"}

func (f *formatter) formatCode(b block) (htmltree.Node, error) {
	codeEl := findCodeElement(b.node)
	if codeEl == nil {
		return nil, htmltree.Errorf(htmltree.EUNPROCESSABLE, "no code element inside %s block", dom.TagName(b.node))
	}

	text := dedent(normalizeLineEndings(dom.RawText(codeEl)))
	if text == "" {
		return nil, nil
	}

	return &htmltree.CodeBlock{
		Language: detectLanguage(codeEl),
		Caption:  detectCaption(b.node, codeEl),
		Text:     text,
	}, nil
}

// findCodeElement returns the innermost pre/code element of the block:
// the code child of a pre when present, otherwise the pre itself, and
// for figure wrappers the pre/code found inside.
func findCodeElement(n *html.Node) *html.Node {
	switch dom.TagName(n) {
	case "code":
		return n
	case "pre":
		for _, child := range dom.ElementChildren(n) {
			if dom.TagName(child) == "code" {
				return child
			}
		}
		return n
	}
	if pre := dom.FindFirst(n, "pre"); pre != nil {
		return findCodeElement(pre)
	}
	if code := dom.FindFirst(n, "code"); code != nil {
		return code
	}
	return nil
}

// detectLanguage looks for a language-*/lang-* class token on the code
// element or its immediate parent, or a data-language attribute.
func detectLanguage(codeEl *html.Node) string {
	nodes := []*html.Node{codeEl}
	if codeEl.Parent != nil && dom.IsElement(codeEl.Parent) {
		nodes = append(nodes, codeEl.Parent)
	}
	for _, n := range nodes {
		for _, token := range strings.Fields(dom.ClassName(n)) {
			lower := strings.ToLower(token)
			if lang, ok := strings.CutPrefix(lower, "language-"); ok && lang != "" {
				return lang
			}
			if lang, ok := strings.CutPrefix(lower, "lang-"); ok && lang != "" {
				return lang
			}
		}
		if lang := dom.Attr(n, "data-language"); lang != "" {
			return strings.ToLower(lang)
		}
	}
	return ""
}

// detectCaption looks for a caption in the block container: a
// figcaption, an element with a caption/title class, a title attribute
// on the code element, or a screen-reader-only element announcing a
// terminal window.
func detectCaption(container, codeEl *html.Node) string {
	if container == codeEl || container == codeEl.Parent && dom.TagName(container) == "pre" {
		if title := dom.Attr(codeEl, "title"); title != "" {
			return strings.TrimSpace(title)
		}
		return ""
	}

	if fc := dom.FindFirst(container, "figcaption"); fc != nil {
		if t := dom.Text(fc); t != "" {
			return t
		}
	}

	var caption string
	dom.WalkElements(container, func(el *html.Node) bool {
		if caption != "" {
			return false
		}
		if el == codeEl {
			return false
		}
		class := strings.ToLower(dom.ClassName(el))
		if strings.Contains(class, "caption") || strings.Contains(class, "title") {
			caption = dom.Text(el)
			return false
		}
		for _, sr := range srOnlyClasses {
			if dom.HasClassToken(el, sr) && terminalCaptionRe.MatchString(dom.Text(el)) {
				caption = dom.Text(el)
				return false
			}
		}
		return true
	})
	if caption != "" {
		return caption
	}

	if title := dom.Attr(codeEl, "title"); title != "" {
		return strings.TrimSpace(title)
	}
	return ""
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// dedent strips the leading whitespace prefix shared by all non-blank
// lines, then trims leading and trailing blank lines. The prefix is
// matched byte for byte, so tab and space indentation never mix.
func dedent(s string) string {
	lines := strings.Split(s, "\n")

	prefix, found := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = indent, true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}
	if prefix != "" {
		for i, line := range lines {
			if strings.HasPrefix(line, prefix) {
				lines[i] = line[len(prefix):]
			} else {
				lines[i] = strings.TrimLeft(line, " \t")
			}
		}
	}

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for i := start; i < end; i++ {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines[start:end], "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
