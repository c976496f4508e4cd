package goldmark

import (
	"bytes"
	"strings"

	"docref"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Ensure Renderer implements docref.Renderer at compile time.
var _ docref.Renderer = (*Renderer)(nil)

// Renderer renders markdown to HTML. Heading id attributes are generated
// with the same slug function used for section extraction, so rendered
// anchors always agree with stored section anchors.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(&headingIDTransformer{}, 100),
				),
			),
		),
	}
}

// Render converts markdown to HTML. The anchor allocator is reset per
// call, so rendering the same source twice produces identical output.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newAnchorIDs()))
	if err := r.md.Convert([]byte(markdown), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headingIDTransformer assigns each heading an id attribute generated
// from its plain text. Goldmark's auto heading IDs work on the raw
// source line, so inline markup such as links would leak into the
// anchor and disagree with the extracted section anchors.
type headingIDTransformer struct{}

func (t *headingIDTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(nodeText(heading, src))
		heading.SetAttribute([]byte("id"), pc.IDs().Generate([]byte(title), ast.KindHeading))
		return ast.WalkSkipChildren, nil
	})
}

// anchorIDs implements parser.IDs on top of docref's anchor allocation,
// replacing goldmark's default heading ID scheme.
type anchorIDs struct {
	set *docref.AnchorSet
}

func newAnchorIDs() parser.IDs {
	return &anchorIDs{set: docref.NewAnchorSet()}
}

// Generate returns a unique heading id for the given heading text.
func (a *anchorIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(a.set.Anchor(string(value)))
}

// Put is a no-op; explicit ids are not reserved.
func (a *anchorIDs) Put(_ []byte) {}
