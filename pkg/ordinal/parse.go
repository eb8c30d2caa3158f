package ordinal

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	episodeTextRegex = regexp.MustCompile(`Episode\s+(\d+)`)
	seasonTextRegex  = regexp.MustCompile(`Season\s+(\d+)`)
)

// parseAbsoluteEpisode extracts "Episode N" from the breadcrumb restricted
// to the absolute ordering context. Returns 0 when the page has no such
// breadcrumb or the markup is unrecognizable.
func parseAbsoluteEpisode(body []byte) int {
	return parseOrderingOrdinal(body, "absolute", episodeTextRegex)
}

// parseAiredSeason extracts "Season N" from the official (aired) ordering
// breadcrumb. Returns 0 on a miss; the caller supplies the default.
func parseAiredSeason(body []byte) int {
	return parseOrderingOrdinal(body, "official", seasonTextRegex)
}

// parseOrderingOrdinal walks the document for an element whose class marks
// the given ordering context and pulls the first matching ordinal out of its
// text.
func parseOrderingOrdinal(body []byte, ordering string, re *regexp.Regexp) int {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return 0
	}

	var found int
	var crawler func(*html.Node)
	crawler = func(node *html.Node) {
		if found > 0 {
			return
		}

		if node.Type == html.ElementNode && strings.Contains(getAttr(node, "class"), ordering) {
			match := re.FindStringSubmatch(collectText(node))
			if match != nil {
				if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
					found = n
					return
				}
			}
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			crawler(c)
		}
	}

	crawler(doc)
	return found
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
