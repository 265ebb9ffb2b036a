package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/soup"
	"github.com/fwojciec/soup/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contrived = `<html><body><p id="eggman"> I am the egg man </p><p id="walrus"> I am the walrus </p></body></html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("selects paragraphs in document order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, contrived)

		elems, err := doc.Select("p")
		require.NoError(t, err)
		require.Len(t, elems, 2)

		ids := make([]string, 0, len(elems))
		for _, el := range elems {
			id, ok := el.Attr("id")
			require.True(t, ok)
			ids = append(ids, id)
		}
		assert.Equal(t, []string{"eggman", "walrus"}, ids)
	})

	t.Run("filters by id and preserves whitespace in text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, contrived)

		elems, err := doc.Select("p")
		require.NoError(t, err)

		walrus := soup.FilterAttr(elems, "id", "walrus")
		require.Len(t, walrus, 1)
		assert.Equal(t, " I am the walrus ", walrus[0].Text())
		assert.Equal(t, "p", walrus[0].Tag())
	})

	t.Run("parsing twice yields equal texts", func(t *testing.T) {
		t.Parallel()

		first, err := parse(t, contrived).Select("p")
		require.NoError(t, err)
		second, err := parse(t, contrived).Select("p")
		require.NoError(t, err)

		assert.Equal(t, soup.Texts(first), soup.Texts(second))
	})

	t.Run("concatenates nested text in order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p>Goo <b>goo</b> g'<i>joob</i>
</p></div>`)

		elems, err := doc.Select("p")
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, "Goo goo g'joob\n", elems[0].Text())
	})

	t.Run("parses malformed markup permissively", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p id=a>one<p id=b>two<div><p>three`)

		elems, err := doc.Select("p")
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two", "three"}, soup.Texts(elems))
	})

	t.Run("empty input yields an empty document", func(t *testing.T) {
		t.Parallel()

		elems, err := parse(t, "").Select("p")
		require.NoError(t, err)
		assert.Empty(t, elems)
	})

	t.Run("supports simple CSS selectors", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, contrived)

		elems, err := doc.Select("p#walrus")
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, " I am the walrus ", elems[0].Text())
	})

	t.Run("returns invalid for bad selectors", func(t *testing.T) {
		t.Parallel()

		_, err := parse(t, contrived).Select("p[")
		require.Error(t, err)
		assert.Equal(t, soup.EINVALID, soup.ErrorCode(err))
	})

	t.Run("reports missing attributes as absent", func(t *testing.T) {
		t.Parallel()

		elems, err := parse(t, `<p>no id</p>`).Select("p")
		require.NoError(t, err)
		require.Len(t, elems, 1)

		_, ok := elems[0].Attr("id")
		assert.False(t, ok)
	})

	t.Run("returns outer HTML", func(t *testing.T) {
		t.Parallel()

		elems, err := parse(t, contrived).Select("#walrus")
		require.NoError(t, err)
		require.Len(t, elems, 1)

		html, err := elems[0].HTML()
		require.NoError(t, err)
		assert.Equal(t, `<p id="walrus"> I am the walrus </p>`, html)
	})

	t.Run("decodes declared charsets", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<html><head><meta charset=\"iso-8859-1\"></head><body><p>caf\xe9</p></body></html>")

		elems, err := doc.Select("p")
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, "café", elems[0].Text())
	})

	t.Run("keeps UTF-8 text after a long ASCII prefix", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<!-- "+strings.Repeat("x", 1100)+` --><p id="walrus"> café </p>`)

		elems, err := doc.Select("p")
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, " café ", elems[0].Text())
	})
}

func parse(t *testing.T, html string) soup.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(strings.NewReader(html))
	require.NoError(t, err)

	return doc
}
