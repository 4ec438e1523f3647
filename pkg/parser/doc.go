package parser

import "strings"

// collectDoc consumes zero or more consecutive `///` lines, per the
// grammar's `doc := ("///" line "\n")+`. Blank lines and non-doc comments
// are skipped as trivia before every `///` line, so they neither end a doc
// block nor appear in it: `///` lines separated only by trivia form one
// block.
func (p *parser) collectDoc() []string {
	var lines []string

	for {
		p.skipTrivia()

		if !p.hasPrefix("///") {
			break
		}

		p.pos += 3

		// A single leading space after `///` is conventional, not required.
		if !p.eof() && p.peek() == ' ' {
			p.pos++
		}

		start := p.pos
		for !p.eof() && p.peek() != '\n' {
			p.pos++
		}

		lines = append(lines, strings.TrimRight(string(p.data[start:p.pos]), "\r"))

		if !p.eof() {
			p.pos++ // consume the newline
		}
	}

	return lines
}
