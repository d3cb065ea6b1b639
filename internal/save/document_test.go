package save

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDocumentTree(t *testing.T) {
	content := `<?xml version="1.0" ?>
<root version="2">
  <child name="a">hello</child>
  <child name="b"><leaf>deep</leaf></child>
</root>`

	doc, err := ParseDocument(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	root := doc.Root()
	if root.Tag != "root" {
		t.Errorf("expected root tag, got %s", root.Tag)
	}
	if v, ok := root.Attr("version"); !ok || v != "2" {
		t.Errorf("expected version=2, got %q (present=%v)", v, ok)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	if root.Children[0].Text != "hello" {
		t.Errorf("unexpected text: %q", root.Children[0].Text)
	}

	leaf, ok := root.FirstByTag("leaf")
	if !ok {
		t.Fatal("leaf not found")
	}
	if leaf.Text != "deep" {
		t.Errorf("unexpected leaf text: %q", leaf.Text)
	}
	if _, ok := root.Attr("missing"); ok {
		t.Error("missing attribute reported present")
	}
}

func TestDescendantsPreOrder(t *testing.T) {
	content := `<a><b><c/></b><d/></a>`

	doc, err := ParseDocument(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	var tags []string
	for n := range doc.Descendants() {
		tags = append(tags, n.Tag)
	}

	want := []string{"a", "b", "c", "d"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %v", len(want), len(tags), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("node %d: expected %s, got %s", i, want[i], tags[i])
		}
	}
}

func TestDescendantsByTagIncludesSelf(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`<x><x/></x>`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	count := 0
	for range doc.Root().DescendantsByTag("x") {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 x nodes, got %d", count)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.xml"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
}

func TestLoadDocumentNotUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.xml")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDocument(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
}

func TestLoadDocumentMalformed(t *testing.T) {
	cases := map[string]string{
		"unbalanced tags": `<a><b></a>`,
		"not xml at all":  `{"json": true}`,
		"empty file":      ``,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.xml")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadDocument(path)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}
