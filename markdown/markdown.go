// Package markdown renders the Markdown subset used by post bodies to HTML.
//
// Supported blocks: ATX headings (with anchor ids), paragraphs, bullet and
// ordered lists, fenced code with an optional language badge, tables, block
// quotes and horizontal rules. Inline: bold, italic, code, links and images.
// All text is HTML-escaped and URLs are restricted by SafeURL.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`\b__(.+?)__\b`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`\b_([^_]+)_\b`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrderedItem      = regexp.MustCompile(`^\d+\.\s`)
	// ![alt](url), ![alt](url){style} or ![alt](url){style|width|height}
	reImg = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)(?:\{([^|}]*?)(?:\|(\d+)\|(\d+))?\})?`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderMarkdown(&buf, md)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// HTML renders md and returns the markup as a string.
func HTML(md string) string {
	var buf bytes.Buffer
	RenderMarkdown(&buf, md)
	return buf.String()
}

type block int

const (
	blockNone block = iota
	blockPara
	blockList
	blockOrdered
	blockQuote
	blockTable
	blockCode
)

// renderer tracks the single open block; Markdown blocks in this subset
// never nest.
type renderer struct {
	buf       *bytes.Buffer
	open      block
	tableBody bool
	codeBadge bool
	images    int
	anchors   map[string]int
}

// RenderMarkdown writes the HTML representation of md to buf.
func RenderMarkdown(buf *bytes.Buffer, md string) {
	r := &renderer{buf: buf, anchors: make(map[string]int)}
	for _, raw := range strings.Split(md, "\n") {
		r.line(strings.TrimRight(raw, "\r"))
	}
	r.close()
}

func (r *renderer) line(line string) {
	if strings.HasPrefix(line, "```") {
		if r.open == blockCode {
			r.close()
		} else {
			r.openCode(strings.TrimSpace(line[3:]))
		}
		return
	}
	if r.open == blockCode {
		r.buf.WriteString(html.EscapeString(line))
		r.buf.WriteByte('\n')
		return
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		r.close()
	case isRule(trimmed):
		r.close()
		r.buf.WriteString("<hr/>")
	case headingLevel(line) > 0:
		r.heading(line)
	case strings.HasPrefix(line, "|"):
		r.tableRow(line)
	case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
		r.item(blockList, "<ul>", line[2:])
	case reOrderedItem.MatchString(line):
		r.item(blockOrdered, "<ol>", reOrderedItem.ReplaceAllString(line, ""))
	case strings.HasPrefix(line, ">"):
		r.quote(strings.TrimPrefix(line, ">"))
	default:
		r.paragraph(trimmed)
	}
}

// enter opens b unless it is already the open block. It reports whether
// the block was newly opened.
func (r *renderer) enter(b block, tag string) bool {
	if r.open == b {
		return false
	}
	r.close()
	r.buf.WriteString(tag)
	r.open = b
	return true
}

func (r *renderer) close() {
	switch r.open {
	case blockPara:
		r.buf.WriteString("</p>")
	case blockList:
		r.buf.WriteString("</ul>")
	case blockOrdered:
		r.buf.WriteString("</ol>")
	case blockQuote:
		r.buf.WriteString("</blockquote>")
	case blockTable:
		if r.tableBody {
			r.buf.WriteString("</tbody>")
		}
		r.buf.WriteString("</table>")
		r.tableBody = false
	case blockCode:
		r.buf.WriteString("</code></pre>")
		if r.codeBadge {
			r.buf.WriteString("</div>")
			r.codeBadge = false
		}
	}
	r.open = blockNone
}

func (r *renderer) openCode(lang string) {
	r.close()
	if lang != "" {
		l := html.EscapeString(lang)
		r.codeBadge = true
		r.buf.WriteString(`<div class="code-block"><span class="code-lang">` + l + `</span>`)
		r.buf.WriteString(`<pre><code class="language-` + l + `">`)
	} else {
		r.buf.WriteString("<pre><code>")
	}
	r.open = blockCode
}

func (r *renderer) heading(line string) {
	r.close()
	level := headingLevel(line)
	text := strings.TrimSpace(line[level+1:])
	n := strconv.Itoa(level)
	r.buf.WriteString(`<h` + n + ` id="` + r.anchor(text) + `">`)
	r.buf.WriteString(FormatInline(text, &r.images))
	r.buf.WriteString(`</h` + n + `>`)
}

// anchor returns a unique id for a heading within the current document.
func (r *renderer) anchor(text string) string {
	id := Anchor(text)
	r.anchors[id]++
	if n := r.anchors[id]; n > 1 {
		id += "-" + strconv.Itoa(n)
	}
	return id
}

func (r *renderer) tableRow(line string) {
	if r.enter(blockTable, "<table>") {
		r.buf.WriteString("<thead><tr>")
		for _, cell := range parseTableCells(line) {
			r.buf.WriteString("<th>" + FormatInline(cell, &r.images) + "</th>")
		}
		r.buf.WriteString("</tr></thead>")
		return
	}
	if !r.tableBody {
		r.buf.WriteString("<tbody>")
		r.tableBody = true
	}
	if isTableSeparator(line) {
		return
	}
	r.buf.WriteString("<tr>")
	for _, cell := range parseTableCells(line) {
		r.buf.WriteString("<td>" + FormatInline(cell, &r.images) + "</td>")
	}
	r.buf.WriteString("</tr>")
}

func (r *renderer) item(b block, tag, text string) {
	r.enter(b, tag)
	r.buf.WriteString("<li>" + FormatInline(strings.TrimSpace(text), &r.images) + "</li>")
}

func (r *renderer) quote(text string) {
	if !r.enter(blockQuote, "<blockquote>") {
		r.buf.WriteByte(' ')
	}
	r.buf.WriteString(FormatInline(strings.TrimSpace(text), &r.images))
}

func (r *renderer) paragraph(text string) {
	if !r.enter(blockPara, "<p>") {
		r.buf.WriteByte('\n')
	}
	r.buf.WriteString(FormatInline(text, &r.images))
}

// headingLevel returns 1-6 for an ATX heading line, otherwise 0.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

func isRule(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "-") == ""
}

func parseTableCells(line string) []string {
	line = strings.Trim(strings.TrimSpace(line), "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isTableSeparator(line string) bool {
	for _, cell := range parseTableCells(line) {
		if strings.Trim(cell, "-:") != "" {
			return false
		}
	}
	return true
}

// Anchor converts heading text into a URL fragment: lowercase ASCII letters
// and digits separated by single hyphens. Markup characters and non-ASCII
// runes are dropped.
func Anchor(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '_' || r == '/' || r == '.':
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	id := strings.TrimRight(b.String(), "-")
	if id == "" {
		return "section"
	}
	return id
}

// ApplyOutsideTags applies fn only to text segments outside HTML tags,
// so that formatting regexes never touch URLs inside href attributes.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

// FormatInline escapes s and applies inline formatting. imageCount is
// shared across a document so only the first image is fetched eagerly.
func FormatInline(s string, imageCount *int) string {
	escaped := html.EscapeString(s)

	// Code spans first, so nothing inside backticks is treated as markup.
	var spans []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		sub := reInlineCode.FindStringSubmatch(m)
		spans = append(spans, "<code>"+sub[1]+"</code>")
		return "\x00C" + strconv.Itoa(len(spans)-1) + "\x00"
	})

	escaped = reImg.ReplaceAllStringFunc(escaped, func(m string) string {
		return imageTag(reImg.FindStringSubmatch(m), imageCount)
	})
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		sub := reLink.FindStringSubmatch(m)
		href := SafeURL(sub[2])
		if href == "" {
			return sub[1]
		}
		attrs := ""
		if sub[3] == "^" {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + sub[1] + `</a>`
	})

	escaped = ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})

	for i, span := range spans {
		escaped = strings.Replace(escaped, "\x00C"+strconv.Itoa(i)+"\x00", span, 1)
	}
	return escaped
}

// imageTag builds an <img> from a reImg submatch. Images with unsafe
// sources collapse to their alt text.
func imageTag(sub []string, imageCount *int) string {
	alt, src := sub[1], SafeURL(sub[2])
	if src == "" {
		return alt
	}
	*imageCount++

	var b strings.Builder
	b.WriteString("<img ")
	if *imageCount == 1 {
		b.WriteString(`fetchpriority="high"`)
	} else {
		b.WriteString(`loading="lazy"`)
	}
	if sub[4] != "" && sub[5] != "" {
		b.WriteString(` width="` + sub[4] + `" height="` + sub[5] + `"`)
	}
	b.WriteString(` alt="` + alt + `" src="` + src + `"`)
	if style := strings.TrimSpace(sub[3]); style != "" {
		b.WriteString(` style="` + style + `"`)
	}
	b.WriteString(` decoding="async"/>`)
	return b.String()
}

// SafeURL validates and sanitizes a URL for use in HTML attributes. Only
// relative, fragment, http(s), mailto and tel URLs are allowed; anything
// else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
