package memdom

import (
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/hookdom/pkg/vdom"
)

// OuterHTML serializes n and its subtree. Attributes are written in sorted
// order so the output is stable.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

// InnerHTML serializes n's children.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.children {
		c.writeHTML(&b)
	}
	return b.String()
}

// InnerHTMLWithIDs serializes n's children like InnerHTML, adding each
// element's node id under the attribute attr. Remote clients use the ids to
// address events back to nodes.
func (n *Node) InnerHTMLWithIDs(attr string) string {
	var b strings.Builder
	for _, c := range n.children {
		c.writeHTMLAttr(&b, attr)
	}
	return b.String()
}

// WriteHTML writes the serialized subtree to w.
func (n *Node) WriteHTML(w io.Writer) error {
	_, err := io.WriteString(w, n.OuterHTML())
	return err
}

func (n *Node) writeHTML(b *strings.Builder) {
	n.writeHTMLAttr(b, "")
}

func (n *Node) writeHTMLAttr(b *strings.Builder, idAttr string) {
	if n.IsText() {
		b.WriteString(escapeHTML(n.text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)

	attrs := n.Attributes()
	if idAttr != "" {
		attrs[idAttr] = n.id
	}
	if len(n.style) > 0 {
		attrs["style"] = n.styleText()
	}
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attrs[k]))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if vdom.IsVoidElement(n.tag) {
		return
	}
	for _, c := range n.children {
		c.writeHTMLAttr(b, idAttr)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
