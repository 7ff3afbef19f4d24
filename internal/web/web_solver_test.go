package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/wordtiles/internal/factory"
)

func TestHomeShowsSolverForm(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form.solver input#rack")
	assertContainsElement(t, doc, "form.new-game")
	assertNotContainsElement(t, doc, ".result")
	assertContainsText(t, doc, ".dictionary", "words loaded")
}

func TestSolverShowsBestWord(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/?rack=" + url.QueryEscape("zèbre?"))
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".result .word", "zèbre")
	assertContainsText(t, doc, ".result .score", "16")
	assertContainsText(t, doc, ".result .letters", "ZEBRE")
	assert.Equal(t, 5, doc.Find(".result .tile").Length())
	assert.Equal(t, "zèbre?", doc.Find("input#rack").AttrOr("value", ""))
}

func TestSolverMarksBlankTiles(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/?rack=" + url.QueryEscape("?TAR"))
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".result .word", "rats")
	assertContainsText(t, doc, ".result .score", "3")
	assert.Equal(t, 4, doc.Find(".result .tile").Length())
	assert.Equal(t, 1, doc.Find(".result .tile.blank").Length())
}

func TestSolverWithoutWord(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/?rack=ZZ")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".no-word")
	assertNotContainsElement(t, doc, ".result")
}

func TestSolverShowsRackErrors(t *testing.T) {
	ts := newWebTestServer(t)

	tests := []struct {
		rack string
		text string
	}{
		{"A???", "2 blanks"},
		{"ABELRSTZ", "7 tiles"},
		{"QA", "tile set"},
		{"A1", "letters"},
	}
	for _, tt := range tests {
		t.Run(tt.rack, func(t *testing.T) {
			rr := ts.get("/?rack=" + url.QueryEscape(tt.rack))
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			doc := parseHTML(rr.Body)
			assertContainsText(t, doc, "p.error", tt.text)
			assertContainsElement(t, doc, "form.solver")
		})
	}
}

func TestSolverWithoutDictionary(t *testing.T) {
	ts := newWebTestServerFor(t, factory.NewTestApp())

	rr := ts.get("/?rack=RAT")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error h1", "503")
}
