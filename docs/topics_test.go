package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/wealth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is
	// listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in docs/readme.md", base)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	if len(all) != len(topicsInReadme) {
		t.Errorf("GetAllTopics() = %v, want the %d topics of readme.md", all, len(topicsInReadme))
	}
}

func TestGetTopic(t *testing.T) {
	content, err := GetTopic(" Valuation ")
	if err != nil {
		t.Fatalf("GetTopic() failed: %v", err)
	}
	if !strings.HasPrefix(content, "# Valuation") {
		t.Errorf("unexpected content: %q", content[:20])
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(\"nope\") should fail")
	}

	star, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") failed: %v", err)
	}
	for _, heading := range []string{"# Activity Types", "# Cash Symbols", "# Import", "# Valuation"} {
		if !strings.Contains(star, heading) {
			t.Errorf("%q is missing from all topics", heading)
		}
	}
	if strings.Contains(star, "Available topics") {
		t.Error("readme should not be part of all topics")
	}
}

// TestActivityTypesDocumented checks that the first column of the table in
// activity-types.md lists exactly the known activity types.
func TestActivityTypesDocumented(t *testing.T) {
	source, err := os.ReadFile("activity-types.md")
	if err != nil {
		t.Fatal(err)
	}
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var documented []string
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		row, ok := n.(*extast.TableRow)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		ast.Walk(row.FirstChild(), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := n.(*ast.Text); ok && entering {
				b.Write(t.Segment.Value(source))
			}
			return ast.WalkContinue, nil
		})
		documented = append(documented, strings.TrimSpace(b.String()))
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, typ := range wealth.ActivityTypes() {
		if !slices.Contains(documented, typ.String()) {
			t.Errorf("activity type %s is not documented", typ)
		}
	}
	if got, want := len(documented), len(wealth.ActivityTypes()); got != want {
		t.Errorf("documented %d activity types (%v), want %d", got, documented, want)
	}
}
