package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"github.com/fwojciec/htmltree/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var _ htmltree.Locator = (*readability.Locator)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>The History of Espresso</title></head>
<body>
<nav><a href="/">Home</a> <a href="/coffee">Coffee</a> <a href="/tea">Tea</a></nav>
<article>
<h1>The History of Espresso</h1>
<p>Espresso was born in Italy at the turn of the twentieth century, when inventors
raced to build machines that could brew coffee quickly for busy cafe customers.
The earliest patents used steam pressure to force water through finely ground
coffee, producing a concentrated drink in a fraction of the usual time.</p>
<p>The modern lever machine arrived after the Second World War and changed the
drink entirely. By using a spring-loaded piston instead of steam, baristas could
push water through the coffee at much higher pressure, creating the dense crema
that defines espresso today.</p>
<p>From Milan the espresso bar spread across Europe and eventually the world,
carrying with it a culture of standing at the counter, drinking quickly, and
arguing about extraction times with complete strangers.</p>
</article>
<footer>Copyright 2026 The Coffee Journal</footer>
</body>
</html>`

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("returns the cleaned content region as the sole candidate", func(t *testing.T) {
		t.Parallel()

		doc, err := html.Parse(strings.NewReader(articleHTML))
		require.NoError(t, err)

		candidates := readability.NewLocator().Locate(doc)

		require.Len(t, candidates, 1)
		text := dom.Text(candidates[0])
		assert.Contains(t, text, "Espresso was born in Italy")
		assert.NotContains(t, text, "Copyright 2026")
	})

	t.Run("returns nil when no content is found", func(t *testing.T) {
		t.Parallel()

		doc, err := html.Parse(strings.NewReader(`<html><body></body></html>`))
		require.NoError(t, err)

		assert.Nil(t, readability.NewLocator().Locate(doc))
	})
}
