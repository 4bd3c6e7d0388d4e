package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>Shop</title><style>.x{color:red}</style></head>
<body>
<script>var email = "hidden@script.com";</script>
<nav><a href="/pages/about">  About   <span>Us</span> </a><a href="https://instagram.com/shop">IG</a></nav>
<p>Hello<b>World</b></p>
<!-- comment@example.com -->
</body></html>`

func TestParseHTML(t *testing.T) {
	doc, err := ParseHTML([]byte(samplePage))

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("p").Length())
}

func TestText(t *testing.T) {
	doc, err := ParseHTML([]byte(samplePage))
	require.NoError(t, err)

	text := Text(doc.Selection)

	assert.Contains(t, text, "HelloWorld")
	assert.NotContains(t, text, "hidden@script.com")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "comment@example.com")
	assert.Equal(t, 1, doc.Find("script").Length(), "document must not be modified")
}

func TestStrippedText(t *testing.T) {
	doc, err := ParseHTML([]byte(samplePage))
	require.NoError(t, err)

	assert.Equal(t, "Hello World", StrippedText(doc.Find("p")))
	assert.Equal(t, "About Us", StrippedText(doc.Find("a").First()))
	assert.Equal(t, "", StrippedText(doc.Find(".missing")))
}

func TestAnchors(t *testing.T) {
	doc, err := ParseHTML([]byte(samplePage))
	require.NoError(t, err)

	anchors := Anchors(doc)

	require.Len(t, anchors, 2)
	assert.Equal(t, Anchor{Href: "/pages/about", Text: "About Us"}, anchors[0])
	assert.Equal(t, Anchor{Href: "https://instagram.com/shop", Text: "IG"}, anchors[1])
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{"root relative", "https://shop.com", "/pages/contact", "https://shop.com/pages/contact"},
		{"root relative with trailing slash base", "https://shop.com/", "/blogs/news", "https://shop.com/blogs/news"},
		{"path relative", "https://shop.com/collections/", "contact", "https://shop.com/collections/contact"},
		{"protocol relative", "https://shop.com", "//cdn.shop.com/track", "https://cdn.shop.com/track"},
		{"absolute", "https://shop.com", "https://other.com/about", "https://other.com/about"},
		{"bad base", "::not a url", "/about", "/about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.base, tt.href))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "ab", Truncate("ab", 3))
	assert.Equal(t, "héé", Truncate("hééllo", 3))
	assert.Equal(t, "", Truncate("abc", -1))
}
