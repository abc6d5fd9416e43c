package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/hireterm/hireterm/pkg/render/theme"
)

var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	bulletPattern     = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	numberedPattern   = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.*)$`)
)

// Formatter renders the narrative part of assistant messages: headers,
// lists, bold and inline code via lipgloss, fenced code blocks via chroma.
type Formatter struct {
	styles *theme.Styles
	width  int
}

// NewFormatter creates a markdown formatter for the given width
func NewFormatter(width int) *Formatter {
	if width <= 0 {
		width = 80
	}
	return &Formatter{
		styles: theme.DefaultStyles(),
		width:  width,
	}
}

// Format renders markdown-ish narrative text for the terminal
func (f *Formatter) Format(content string) string {
	var out []string

	inCodeBlock := false
	var codeLines []string
	var codeLang string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				codeLines = nil
			} else {
				inCodeBlock = false
				out = append(out, f.formatCodeBlock(codeLines, codeLang))
			}
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, f.styles.Header.Render(strings.TrimLeft(trimmed, "# ")))
		case bulletPattern.MatchString(line):
			m := bulletPattern.FindStringSubmatch(line)
			out = append(out, m[1]+f.styles.Bullet.Render("•")+" "+f.formatInline(m[2]))
		case numberedPattern.MatchString(line):
			m := numberedPattern.FindStringSubmatch(line)
			out = append(out, m[1]+f.styles.Bullet.Render(m[2]+".")+" "+f.formatInline(m[3]))
		default:
			out = append(out, f.formatInline(line))
		}
	}

	// An unterminated fence still gets shown rather than swallowed
	if inCodeBlock && len(codeLines) > 0 {
		out = append(out, f.formatCodeBlock(codeLines, codeLang))
	}

	return strings.Join(out, "\n")
}

func (f *Formatter) formatInline(line string) string {
	line = boldPattern.ReplaceAllStringFunc(line, func(m string) string {
		return f.styles.Bold.Render(strings.Trim(m, "*"))
	})
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(m string) string {
		return f.styles.InlineCode.Render(strings.Trim(m, "`"))
	})
	return line
}

func (f *Formatter) formatCodeBlock(lines []string, lang string) string {
	code := strings.Join(lines, "\n")

	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get("monokai"), iterator); err != nil {
		return code
	}

	return buf.String()
}
