package build

import (
	"encoding/xml"
	"fmt"
	"time"

	"griddle/app/models"
)

// FeedLimit caps how many posts the Atom feed carries.
const FeedLimit = 20

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Xmlns   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomEntry struct {
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Link    atomLink    `xml:"link"`
	Content atomContent `xml:"content"`
}

type atomContent struct {
	Type string `xml:"type,attr"`
	Body string `xml:",cdata"`
}

// RenderFeed produces the site's Atom feed from the newest posts. Posts are
// expected to arrive newest-first, as the loader returns them.
func RenderFeed(siteTitle, baseURL string, posts []*models.Post, now time.Time) ([]byte, error) {
	feed := atomFeed{
		Xmlns:   "http://www.w3.org/2005/Atom",
		Title:   siteTitle,
		ID:      baseURL + "/",
		Updated: now.UTC().Format(time.RFC3339),
		Links: []atomLink{
			{Href: baseURL + "/feed.xml", Rel: "self", Type: "application/atom+xml"},
			{Href: baseURL + "/"},
		},
	}

	for i, post := range posts {
		if i >= FeedLimit {
			break
		}
		url := fmt.Sprintf("%s/posts/%s/", baseURL, post.Slug)
		feed.Entries = append(feed.Entries, atomEntry{
			Title:   post.Title,
			ID:      url,
			Updated: post.Date.UTC().Format(time.RFC3339),
			Link:    atomLink{Href: url},
			Content: atomContent{Type: "html", Body: post.HTML},
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed: %v", err)
	}
	return append([]byte(xml.Header), out...), nil
}
