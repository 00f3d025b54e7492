// Package page reads and annotates the server-rendered course pages.
package page

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/trezcool/courseadmin/core/course"
)

const activeClass = "active"

// Fetcher retrieves a server-rendered page.
type Fetcher interface {
	FetchPage(ctx context.Context, path string) (*html.Node, error)
}

// Parse parses an HTML document.
func Parse(src string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "parsing page")
	}
	return doc, nil
}

// Render serialises doc back to HTML.
func Render(doc *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", errors.Wrap(err, "rendering page")
	}
	return buf.String(), nil
}

// EditRows returns the course carried by each `.edit-btn` element, in document order.
func EditRows(doc *html.Node) []course.Course {
	rows := make([]course.Course, 0)
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, "edit-btn") {
			rows = append(rows, course.Course{
				ID:        attr(n, "data-id"),
				Name:      attr(n, "data-name"),
				Professor: attr(n, "data-professor"),
			})
		}
		return true
	})
	return rows
}

// FindRow returns the edit row of the course with the given id.
func FindRow(rows []course.Course, id string) (course.Course, bool) {
	for _, row := range rows {
		if row.ID == id {
			return row, true
		}
	}
	return course.Course{}, false
}

// HighlightNav marks as active the nav links whose href is exactly path and returns how many were marked.
func HighlightNav(doc *html.Node, path string) int {
	var marked int
	for _, link := range navLinks(doc) {
		if href, ok := attrOK(link, "href"); ok && href == path {
			addClass(link, activeClass)
			marked++
		}
	}
	return marked
}

// ActiveLinks returns the hrefs of the active nav links.
func ActiveLinks(doc *html.Node) []string {
	hrefs := make([]string, 0, 1)
	for _, link := range navLinks(doc) {
		if hasClass(link, activeClass) {
			hrefs = append(hrefs, attr(link, "href"))
		}
	}
	return hrefs
}

// navLinks returns the <a> elements nested in any `.nav` element.
func navLinks(doc *html.Node) []*html.Node {
	links := make([]*html.Node, 0)
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || !hasClass(n, "nav") {
			return true
		}
		walk(n, func(c *html.Node) bool {
			if c.Type == html.ElementNode && c.DataAtom == atom.A {
				links = append(links, c)
			}
			return true
		})
		return false // nested navs are already covered
	})
	return links
}

// walk visits n and its descendants depth-first; fn returns false to skip a node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	val, _ := attrOK(n, key)
	return val
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
