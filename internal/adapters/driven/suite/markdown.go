package suite

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

const (
	programPrefix = "    |"
	inputPrefix   = "    +"
	outputPrefix  = "    ="
	errorPrefix   = "    ?"
)

// markdownParser accumulates one case at a time.
type markdownParser struct {
	heading string
	cases   []domain.TestCase

	program   []string
	start     int
	input     []string
	output    []string
	errText   []string
	expecting bool
}

// ParseMarkdown extracts test cases from a literate Markdown document.
// A case is a run of program lines, optional input lines, then one or more
// expectation lines. Any other line discards an unfinished program.
func ParseMarkdown(data []byte) []domain.TestCase {
	p := &markdownParser{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		p.line(lineNo, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	p.finish()
	return p.cases
}

func (p *markdownParser) line(lineNo int, line string) {
	switch {
	case strings.HasPrefix(line, programPrefix):
		if p.expecting {
			p.finish()
		}
		if len(p.program) == 0 {
			p.start = lineNo
		}
		p.program = append(p.program, strings.TrimRight(line[len(programPrefix):], " \t"))

	case strings.HasPrefix(line, inputPrefix) && len(p.program) > 0 && !p.expecting:
		p.input = append(p.input, trimMarker(line[len(inputPrefix):]))

	case strings.HasPrefix(line, outputPrefix) && len(p.program) > 0:
		p.expecting = true
		p.output = append(p.output, trimMarker(line[len(outputPrefix):]))

	case strings.HasPrefix(line, errorPrefix) && len(p.program) > 0:
		p.expecting = true
		p.errText = append(p.errText, strings.TrimSpace(line[len(errorPrefix):]))

	default:
		p.finish()
		if heading, ok := strings.CutPrefix(line, "#"); ok {
			p.heading = strings.TrimSpace(strings.TrimLeft(heading, "#"))
		}
	}
}

// finish emits the pending case if it has an expectation, then resets.
func (p *markdownParser) finish() {
	if p.expecting {
		name := p.heading
		if name == "" {
			name = "case"
		}
		tc := domain.TestCase{
			Name:    fmt.Sprintf("%s #%d", name, len(p.cases)+1),
			Line:    p.start,
			Program: strings.Join(leftJustify(p.program), "\n"),
			Output:  strings.TrimSpace(strings.Join(p.output, "\n")),
			Error:   strings.Join(p.errText, " "),
		}
		if len(p.input) > 0 {
			tc.Input = strings.Join(p.input, "\n") + "\n"
		}
		p.cases = append(p.cases, tc)
	}
	p.program = nil
	p.input = nil
	p.output = nil
	p.errText = nil
	p.expecting = false
}

// trimMarker drops the single space that conventionally follows a marker.
func trimMarker(s string) string {
	return strings.TrimPrefix(s, " ")
}

// leftJustify removes the leading spaces every non-empty line shares.
func leftJustify(lines []string) []string {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		}
	}
	return out
}
