package thrifthunter

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadme keeps the README well formed: it must parse as markdown, open
// with the project title, and its shell examples must only invoke commands
// the CLI actually registers.
func TestReadme(t *testing.T) {
	source, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("read README.md: %v", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var headings []string
	var fences []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			var sb strings.Builder
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(source))
				}
			}
			headings = append(headings, sb.String())
		case *ast.FencedCodeBlock:
			var sb strings.Builder
			for i := 0; i < node.Lines().Len(); i++ {
				seg := node.Lines().At(i)
				sb.Write(seg.Value(source))
			}
			fences = append(fences, sb.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	if len(headings) == 0 || headings[0] != "Thrift Hunter" {
		t.Fatalf("README must open with the project title, got %v", headings)
	}
	for _, want := range []string{"Install", "Quick start"} {
		found := false
		for _, h := range headings {
			if h == want {
				found = true
			}
		}
		if !found {
			t.Errorf("README missing %q section", want)
		}
	}

	known := map[string]bool{
		"dashboard": true, "scan": true, "sold": true, "stock": true,
		"goals": true, "watch": true, "deals": true, "title": true,
		"describe": true, "offer": true, "bulk": true, "sizes": true,
		"activate": true, "vault": true, "tax": true, "settings": true,
		"region": true, "reset": true, "serve": true, "help": true,
	}
	for _, fence := range fences {
		for _, line := range strings.Split(fence, "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 || fields[0] != "tth" {
				continue
			}
			if !known[fields[1]] {
				t.Errorf("README example uses unknown command %q", fields[1])
			}
		}
	}
}
