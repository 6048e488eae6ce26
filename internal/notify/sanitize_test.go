package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"<b>hi</b>", "hi"},
		{"a&b<c>", "a&amp;b"},
		{"plain text", "plain text"},
		{"<i>one</i> and <u>two</u>", "one and two"},
		{"x < y", "x &lt; y"},
		{"a > b", "a &gt; b"},
		{"<<b>>", "&gt;"},
		{"dial tcp: <nil> & retry", "dial tcp:  &amp; retry"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Sanitize(c.in), "Sanitize(%q)", c.in)
	}
}

func TestSanitize_NoRawAngleBrackets(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<<<>>>",
		"unterminated <tag",
		"> leading",
		"a<b>c<d",
		"HTTP/1.1 500 <html><body>err</body></html>",
	}
	for _, in := range inputs {
		out := Sanitize(in)
		require.False(t, strings.ContainsAny(out, "<>"), "Sanitize(%q) = %q", in, out)
	}
}

func TestSanitize_IdempotentWithoutSpecialChars(t *testing.T) {
	inputs := []string{"<b>hi</b>", "Alert: Api is DOWN (status: 500)", "<p>node</p> down"}
	for _, in := range inputs {
		once := Sanitize(in)
		require.NotContains(t, once, "&")
		require.Equal(t, once, Sanitize(once))
	}

	// An ampersand survives the first pass as an entity, which a second pass
	// escapes again.
	require.Equal(t, "a&amp;amp;b", Sanitize(Sanitize("a&b")))
}
