package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"github.com/fwojciec/htmltree/extract"
	"github.com/fwojciec/htmltree/fs"
	gq "github.com/fwojciec/htmltree/goquery"
	treehttp "github.com/fwojciec/htmltree/http"
	"github.com/fwojciec/htmltree/htmltomarkdown"
	"github.com/fwojciec/htmltree/readability"
	hslog "github.com/fwojciec/htmltree/slog"
	"github.com/fwojciec/htmltree/trafilatura"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command. Inputs are processed concurrently;
// output order matches input order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extractor := deps.Extractor
	if extractor == nil {
		extractor = c.buildExtractor(deps)
	}

	var writer htmltree.DocumentWriter
	if c.OutDir != "" {
		writer = fs.NewWriter(c.OutDir)
	}

	if len(c.Inputs) == 0 {
		raw, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return err
		}
		if writer != nil {
			doc, err := c.extractDocument(extractor, "", string(raw))
			if err != nil {
				return err
			}
			return writer.WriteDocument(deps.Ctx, doc)
		}
		out, err := c.process(extractor, "", string(raw))
		if err != nil {
			return err
		}
		_, err = io.WriteString(deps.Stdout, out+"\n")
		return err
	}

	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = treehttp.NewFetcher(treehttp.WithTimeout(c.Timeout))
	}
	defer fetcher.Close()

	results := make([]string, len(c.Inputs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, input := range c.Inputs {
		g.Go(func() error {
			raw, err := load(ctx, fetcher, input)
			if err != nil {
				return err
			}
			if writer != nil {
				doc, err := c.extractDocument(extractor, input, raw)
				if err != nil {
					return err
				}
				return writer.WriteDocument(ctx, doc)
			}
			out, err := c.process(extractor, input, raw)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		if _, err := io.WriteString(deps.Stdout, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// buildExtractor wires the engine from flags: the heuristic locator and
// scorer by default, or a readability/trafilatura locator.
func (c *ExtractCmd) buildExtractor(deps *Dependencies) htmltree.Extractor {
	cfg := htmltree.DefaultConfig()

	var locator htmltree.Locator
	switch c.Engine {
	case "readability":
		locator = readability.NewLocator()
	case "trafilatura":
		locator = trafilatura.NewLocator()
	default:
		locator = gq.NewLocator(cfg)
	}

	var extractor htmltree.Extractor = extract.New(locator, gq.NewScorer(cfg), cfg)
	if deps.Logger != nil {
		extractor = hslog.NewLoggingExtractor(extractor, deps.Logger)
	}
	return extractor
}

// load reads an input, fetching URLs and reading everything else as a
// file path.
func load(ctx context.Context, fetcher htmltree.Fetcher, input string) (string, error) {
	if isURL(input) {
		return fetcher.Fetch(ctx, input)
	}
	raw, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// extractDocument parses one document and wraps the extracted forest in
// a metadata envelope.
func (c *ExtractCmd) extractDocument(extractor htmltree.Extractor, source, rawHTML string) (*htmltree.Document, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, htmltree.Errorf(htmltree.EINVALID, "parse HTML: %v", err)
	}

	result, err := extractor.Extract(doc, htmltree.Options{PreserveStyles: c.PreserveStyles})
	if err != nil {
		return nil, err
	}

	return &htmltree.Document{
		ID:          uuid.NewString(),
		SourceURL:   sourceURL(source),
		Title:       docTitle(doc),
		ExtractedAt: time.Now().UTC(),
		Content:     result.Nodes,
		Diagnostics: result.Diagnostics,
	}, nil
}

// process parses one document, extracts its content forest, and encodes
// it in the selected output format.
func (c *ExtractCmd) process(extractor htmltree.Extractor, source, rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", htmltree.Errorf(htmltree.EINVALID, "parse HTML: %v", err)
	}

	result, err := extractor.Extract(doc, htmltree.Options{PreserveStyles: c.PreserveStyles})
	if err != nil {
		return "", err
	}

	if c.Format == "markdown" {
		return htmltomarkdown.NewRenderer().Render(result.Nodes)
	}

	var payload interface{} = result
	if c.Meta {
		payload = &htmltree.Document{
			ID:          uuid.NewString(),
			SourceURL:   sourceURL(source),
			Title:       docTitle(doc),
			ExtractedAt: time.Now().UTC(),
			Content:     result.Nodes,
			Diagnostics: result.Diagnostics,
		}
	}

	var encoded []byte
	if c.Pretty {
		encoded, err = json.MarshalIndent(payload, "", "  ")
	} else {
		encoded, err = json.Marshal(payload)
	}
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func sourceURL(source string) string {
	if isURL(source) {
		return source
	}
	return ""
}

func docTitle(doc *html.Node) string {
	if title := dom.FindFirst(doc, "title"); title != nil {
		return dom.Text(title)
	}
	return ""
}
