// Package htmldom implements dom on top of golang.org/x/net/html trees. It
// is what the tests and the server pre-renderer build into. Events are
// delivered with Document.Dispatch, bubbling from the target to the root.
package htmldom

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/utils/htmlutils"
)

var (
	tagRegex  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\-]*$`)
	attrRegex = regexp.MustCompile(`^[^\s"'>/=\x00-\x1f]+$`)
)

type (
	Document struct {
		root      *html.Node
		body      *html.Node
		listeners map[*html.Node][]*listener
		count     int
	}

	Element struct {
		doc  *Document
		node *html.Node
	}

	textNode struct {
		node *html.Node
	}

	listener struct {
		doc      *Document
		node     *html.Node
		event    string
		handler  dom.EventHandler
		released bool
	}
)

// NewDocument parses source as a full HTML document.
func NewDocument(source string) (*Document, error) {
	root, err := htmlutils.ParseDocument(source)
	if err != nil {
		return nil, err
	}

	body := goquery.NewDocumentFromNode(root).Find("body")
	if body.Length() == 0 {
		return nil, fmt.Errorf("htmldom: document has no body")
	}

	return &Document{
		root:      root,
		body:      body.Nodes[0],
		listeners: make(map[*html.Node][]*listener),
	}, nil
}

// MustNewDocument is NewDocument for sources known to be valid.
func MustNewDocument(source string) *Document {
	d, err := NewDocument(source)
	if err != nil {
		panic(err)
	}

	return d
}

func (d *Document) wrap(n *html.Node) dom.Node {
	switch n.Type {
	case html.ElementNode:
		return Element{d, n}
	case html.TextNode:
		return textNode{n}
	}

	return textNode{n}
}

func (d *Document) CreateElement(tag string) (dom.Element, error) {
	if !tagRegex.MatchString(tag) {
		return nil, fmt.Errorf("%w: %q", dom.ErrInvalidTag, tag)
	}

	tag = strings.ToLower(tag)
	return Element{d, &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}, nil
}

func (d *Document) CreateTextNode(data string) dom.Node {
	return textNode{&html.Node{Type: html.TextNode, Data: data}}
}

func (d *Document) query() *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Selection
}

func (d *Document) ElementByID(id string) (dom.Element, bool) {
	if id == "" {
		return nil, false
	}

	sel := d.query().Find(`[id="` + strings.ReplaceAll(id, `"`, `\"`) + `"]`).First()
	if sel.Length() == 0 {
		return nil, false
	}

	return Element{d, sel.Nodes[0]}, true
}

// Find returns the elements of the document matching a CSS selector.
func (d *Document) Find(selector string) []dom.Element {
	return d.elements(d.query().Find(selector))
}

func (d *Document) elements(sel *goquery.Selection) []dom.Element {
	list := make([]dom.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		list = append(list, Element{d, n})
	}

	return list
}

func (d *Document) Body() dom.Element {
	return Element{d, d.body}
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	return htmlutils.Render(d.root)
}

// Root is the underlying document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// ListenerCount is the number of registered, unreleased listeners.
func (d *Document) ListenerCount() int {
	return d.count
}

func (d *Document) addListener(n *html.Node, event string, h dom.EventHandler) *listener {
	l := &listener{doc: d, node: n, event: event, handler: h}
	d.listeners[n] = append(d.listeners[n], l)
	d.count++
	return l
}

func (l *listener) Release() {
	if l.released {
		return
	}

	l.released = true
	ls := l.doc.listeners[l.node]
	for i, o := range ls {
		if o == l {
			ls = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}

	if len(ls) == 0 {
		delete(l.doc.listeners, l.node)
	} else {
		l.doc.listeners[l.node] = ls
	}

	l.doc.count--
}

func (textNode) Type() dom.NodeType { return dom.TextNode }

func (t textNode) Data() string { return t.node.Data }

// Node is the underlying html node.
func (z Element) Node() *html.Node {
	return z.node
}

func (z Element) Type() dom.NodeType { return dom.ElementNode }

func (z Element) Data() string { return z.node.Data }

func (z Element) TagName() string { return z.node.Data }

func (z Element) ID() string {
	id, _ := z.Attr("id")
	return id
}

func (z Element) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, attr := range z.node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}

	return "", false
}

func (z Element) SetAttr(name, value string) error {
	if !attrRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", dom.ErrInvalidAttr, name)
	}

	name = strings.ToLower(name)
	for i, attr := range z.node.Attr {
		if attr.Key == name {
			z.node.Attr[i].Val = value
			return nil
		}
	}

	z.node.Attr = append(z.node.Attr, html.Attribute{Key: name, Val: value})
	return nil
}

func (z Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i, attr := range z.node.Attr {
		if attr.Key == name {
			z.node.Attr = append(z.node.Attr[:i], z.node.Attr[i+1:]...)
			return
		}
	}
}

func (z Element) ClassName() string {
	class, _ := z.Attr("class")
	return class
}

func (z Element) SetClassName(class string) {
	z.SetAttr("class", class)
}

func (z Element) Style(prop string) string {
	style, _ := z.Attr("style")
	for _, decl := range parseStyle(style) {
		if decl.prop == prop {
			return decl.value
		}
	}

	return ""
}

func (z Element) SetStyle(prop, value string) {
	style, _ := z.Attr("style")
	decls := parseStyle(style)
	found := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			found = true
		}
	}

	if !found {
		decls = append(decls, declaration{prop, value})
	}

	z.SetAttr("style", formatStyle(decls))
}

func (z Element) Text() string {
	return goquery.NewDocumentFromNode(z.node).Text()
}

func (z Element) SetText(text string) {
	z.Clear()
	if text != "" {
		z.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (z Element) Children() []dom.Node {
	list := []dom.Node{}
	for c := z.node.FirstChild; c != nil; c = c.NextSibling {
		list = append(list, z.doc.wrap(c))
	}

	return list
}

func nodeOf(n dom.Node) (*html.Node, bool) {
	switch n := n.(type) {
	case Element:
		return n.node, true
	case textNode:
		return n.node, true
	}

	return nil, false
}

func (z Element) AppendChild(child dom.Node) error {
	c, ok := nodeOf(child)
	if !ok {
		return dom.ElementError(z, dom.ErrForeignNode)
	}

	for p := z.node; p != nil; p = p.Parent {
		if p == c {
			return dom.ElementError(z, dom.ErrHierarchy)
		}
	}

	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}

	z.node.AppendChild(c)
	return nil
}

func (z Element) Clear() {
	for c := z.node.FirstChild; c != nil; c = z.node.FirstChild {
		z.node.RemoveChild(c)
	}
}

func (z Element) Remove() {
	if z.node.Parent != nil {
		z.node.Parent.RemoveChild(z.node)
	}
}

func (z Element) Value() string {
	v, _ := z.Attr("value")
	return v
}

func (z Element) SetValue(value string) {
	z.SetAttr("value", value)
}

func (z Element) Checked() bool {
	_, ok := z.Attr("checked")
	return ok
}

func (z Element) SetChecked(checked bool) {
	if checked {
		z.SetAttr("checked", "")
	} else {
		z.RemoveAttr("checked")
	}
}

func (z Element) AddEventListener(event string, handler dom.EventHandler) dom.Listener {
	return z.doc.addListener(z.node, event, handler)
}

// OuterHTML renders the element and its subtree.
func (z Element) OuterHTML() string {
	return htmlutils.Render(z.node)
}

// InnerHTML renders the children of the element.
func (z Element) InnerHTML() string {
	return htmlutils.RenderChildren(z.node)
}

// Find returns the descendants of the element matching a CSS selector.
func (z Element) Find(selector string) []dom.Element {
	return z.doc.elements(goquery.NewDocumentFromNode(z.node).Find(selector))
}

// Attached reports whether the element is part of the document tree.
func (z Element) Attached() bool {
	for p := z.node; p != nil; p = p.Parent {
		if p == z.doc.root {
			return true
		}
	}

	return false
}
