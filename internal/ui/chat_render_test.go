package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{
			name:     "short text within width",
			text:     "hello world",
			width:    20,
			expected: "hello world",
		},
		{
			name:     "long text needs wrap",
			text:     "this is a longer text that needs wrapping",
			width:    20,
			expected: "this is a longer\ntext that needs\nwrapping",
		},
		{
			name:     "zero width returns original",
			text:     "hello world",
			width:    0,
			expected: "hello world",
		},
		{
			name:     "negative width returns original",
			text:     "hello world",
			width:    -1,
			expected: "hello world",
		},
		{
			name:     "empty string",
			text:     "",
			width:    20,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.width)
			if result != tt.expected {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, result, tt.expected)
			}
		})
	}
}

func TestRenderInlineMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		plain   string
		missing string
	}{
		{
			name:    "bold loses asterisks",
			input:   "say **hi** now",
			plain:   "say hi now",
			missing: "**",
		},
		{
			name:    "inline code loses backticks",
			input:   "run `go test` first",
			plain:   "run go test first",
			missing: "`",
		},
		{
			name:    "italic loses underscores",
			input:   "some _emphasis_ here",
			plain:   "some emphasis here",
			missing: "_",
		},
		{
			name:  "link shows text and url",
			input: "see [docs](https://example.com) for more",
			plain: "see docs (https://example.com) for more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ansi.Strip(renderInlineMarkdown(tt.input))
			if result != tt.plain {
				t.Errorf("renderInlineMarkdown(%q) = %q, want %q", tt.input, result, tt.plain)
			}
			if tt.missing != "" && strings.Contains(result, tt.missing) {
				t.Errorf("Result should not contain %q, got %q", tt.missing, result)
			}
		})
	}
}

func TestRenderInlineMarkdown_IdentifiersKeepUnderscores(t *testing.T) {
	result := ansi.Strip(renderInlineMarkdown("call foo_bar_baz here"))
	if result != "call foo_bar_baz here" {
		t.Errorf("Identifiers should pass through untouched, got %q", result)
	}
}

func TestRenderInlineMarkdown_CodeSpanProtected(t *testing.T) {
	// Markdown inside a code span must not be re-rendered
	result := ansi.Strip(renderInlineMarkdown("use `**raw**` here"))
	if !strings.Contains(result, "**raw**") {
		t.Errorf("Code span content should keep its asterisks, got %q", result)
	}
}

func TestRenderMarkdownLine_Headers(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"h1", "# Big Title", "Big Title"},
		{"h2", "## Section", "Section"},
		{"h3", "### Detail", "Detail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ansi.Strip(renderMarkdownLine(tt.input, 60))
			if !strings.Contains(result, tt.expect) {
				t.Errorf("Expected header text %q, got %q", tt.expect, result)
			}
			if strings.Contains(result, "#") {
				t.Errorf("Header marker should be stripped, got %q", result)
			}
		})
	}
}

func TestRenderMarkdownLine_Lists(t *testing.T) {
	bullet := ansi.Strip(renderMarkdownLine("- first item", 60))
	if !strings.Contains(bullet, "•") || !strings.Contains(bullet, "first item") {
		t.Errorf("Expected bulleted item, got %q", bullet)
	}

	star := ansi.Strip(renderMarkdownLine("* star item", 60))
	if !strings.Contains(star, "•") {
		t.Errorf("Star bullets should render the same, got %q", star)
	}

	numbered := ansi.Strip(renderMarkdownLine("2. second step", 60))
	if !strings.Contains(numbered, "2.") || !strings.Contains(numbered, "second step") {
		t.Errorf("Expected numbered item, got %q", numbered)
	}
}

func TestRenderMarkdownLine_WrappedListIndents(t *testing.T) {
	long := "- this bullet item carries enough words to spill across the wrap width"
	result := ansi.Strip(renderMarkdownLine(long, 30))

	lines := strings.Split(result, "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected the item to wrap, got %q", result)
	}
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("Continuation line %d should be indented, got %q", i+1, line)
		}
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	content := "before\n```go\nfunc main() {}\n```\nafter"

	result := ansi.Strip(renderMarkdown(content, 60))

	if !strings.Contains(result, "before") || !strings.Contains(result, "after") {
		t.Errorf("Prose around the fence should survive, got %q", result)
	}
	if !strings.Contains(result, "func main()") {
		t.Errorf("Code should survive highlighting, got %q", result)
	}
	if strings.Contains(result, "```") {
		t.Errorf("Fence markers should be consumed, got %q", result)
	}
}

func TestRenderMarkdown_UnterminatedFence(t *testing.T) {
	result := ansi.Strip(renderMarkdown("```\ncode here", 60))

	if !strings.Contains(result, "code here") {
		t.Errorf("Unterminated fence should still render its code, got %q", result)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if result := renderMarkdown("", 60); result != "" {
		t.Errorf("Empty content should render empty, got %q", result)
	}
}

func TestRenderMarkdown_ZeroWidthUsesDefault(t *testing.T) {
	// Must not panic; falls back to the default wrap width
	result := ansi.Strip(renderMarkdown("plain paragraph", 0))
	if !strings.Contains(result, "plain paragraph") {
		t.Errorf("Expected content rendered at the default width, got %q", result)
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	result := ansi.Strip(highlightCode("just some text", "not-a-language"))
	if !strings.Contains(result, "just some text") {
		t.Errorf("Fallback lexer should keep the text, got %q", result)
	}
}
