package filler

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Table maps an absolute episode number to its status. It is scoped to one
// scrape of one show and is rebuilt fresh on every classification run.
type Table map[int]Status

// ParseTable extracts the episode table from a show page. Rows pair a
// numeric episode cell with a type label cell; rows with an unparsable
// number or an unrecognized label are skipped. A later row overwrites an
// earlier one for the same episode number. A missing or malformed table
// yields an empty map, never an error; the caller treats empty as "no data
// for this show".
func ParseTable(r io.Reader) Table {
	table := make(Table)

	doc, err := html.Parse(r)
	if err != nil {
		return table
	}

	var crawler func(*html.Node)
	crawler = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			number, status, ok := parseRow(node)
			if ok {
				table[number] = status
			}
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			crawler(c)
		}
	}

	crawler(doc)
	return table
}

func parseRow(row *html.Node) (int, Status, bool) {
	numberCell := findChildByClass(row, "td", "Number")
	typeCell := findChildByClass(row, "td", "Type")
	if numberCell == nil || typeCell == nil {
		return 0, "", false
	}

	number, err := strconv.Atoi(strings.TrimSpace(collectText(numberCell)))
	if err != nil || number <= 0 {
		return 0, "", false
	}

	status, ok := ParseStatus(strings.TrimSpace(collectText(typeCell)))
	if !ok {
		return 0, "", false
	}

	return number, status, true
}

func findChildByClass(n *html.Node, tag, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag && strings.Contains(getAttr(c, "class"), class) {
			return c
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collectText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(collectText(c))
	}
	return sb.String()
}
