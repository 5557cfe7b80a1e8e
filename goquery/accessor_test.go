package goquery_test

import (
	"strings"
	"testing"

	pgoquery "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseSelection(t *testing.T, markup string) *pgoquery.Selection {
	t.Helper()
	doc, err := pgoquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc.Selection
}

func TestRequireOne(t *testing.T) {
	t.Parallel()

	t.Run("returns the unique match", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><p class="x">hello</p></div>`)

		got, err := goquery.RequireOne(sel, ".x")

		require.NoError(t, err)
		assert.Equal(t, "hello", got.Text())
	})

	t.Run("fails with ENOTFOUND on zero matches", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div></div>`)

		_, err := goquery.RequireOne(sel, ".x")

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})

	t.Run("fails with EAMBIGUOUS on multiple matches", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><p class="x">a</p><p class="x">b</p></div>`)

		_, err := goquery.RequireOne(sel, ".x")

		require.Error(t, err)
		assert.Equal(t, scinews.EAMBIGUOUS, scinews.ErrorCode(err))
	})
}

func TestRequireAttr(t *testing.T) {
	t.Parallel()

	t.Run("returns the single value", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><a href="/x">x</a></div>`).Find("a")

		got, err := goquery.RequireAttr(sel, "href")

		require.NoError(t, err)
		assert.Equal(t, "/x", got)
	})

	t.Run("fails with ENOTFOUND when absent", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><a href="/x">x</a></div>`).Find("a")

		_, err := goquery.RequireAttr(sel, "title")

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})

	t.Run("fails with EAMBIGUOUS on duplicate keys", func(t *testing.T) {
		t.Parallel()

		// The HTML5 parser dedupes attribute keys, so the multi-value
		// arm is exercised with a hand-built node.
		node := &html.Node{
			Type: html.ElementNode,
			Data: "a",
			Attr: []html.Attribute{
				{Key: "title", Val: "first"},
				{Key: "title", Val: "second"},
			},
		}
		sel := pgoquery.NewDocumentFromNode(node).Selection

		_, err := goquery.RequireAttr(sel, "title")

		require.Error(t, err)
		assert.Equal(t, scinews.EAMBIGUOUS, scinews.ErrorCode(err))
	})
}

func TestOptionalAttr(t *testing.T) {
	t.Parallel()

	t.Run("reports absence without error", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><a href="/x">x</a></div>`).Find("a")

		_, ok, err := goquery.OptionalAttr(sel, "title")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returns the single value", func(t *testing.T) {
		t.Parallel()

		sel := parseSelection(t, `<div><a href="/x" title="t">x</a></div>`).Find("a")

		got, ok, err := goquery.OptionalAttr(sel, "title")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "t", got)
	})

	t.Run("fails with EAMBIGUOUS on duplicate keys", func(t *testing.T) {
		t.Parallel()

		node := &html.Node{
			Type: html.ElementNode,
			Data: "a",
			Attr: []html.Attribute{
				{Key: "class", Val: "a"},
				{Key: "class", Val: "b"},
			},
		}
		sel := pgoquery.NewDocumentFromNode(node).Selection

		_, _, err := goquery.OptionalAttr(sel, "class")

		require.Error(t, err)
		assert.Equal(t, scinews.EAMBIGUOUS, scinews.ErrorCode(err))
	})
}
