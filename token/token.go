// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package token scans assembler directive lines into the flat token stream
// the directive handlers consume. It covers exactly what those handlers
// need: words, commas, colons and an end-of-statement sentinel; full
// instruction operand scanning lives elsewhere.
package token

import (
	"strings"
)

// Kind is the token class.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	Final = Kind(0) // final
	ID    = Kind(1) // id
	Comma = Kind(2) // comma
	Colon = Kind(3) // colon
)

// Token is one scanned token. Tail is the unscanned remainder of the line
// from this token on; syntax diagnostics and expression arguments use it.
type Token struct {
	Kind Kind
	Text string
	Pos  int
	Tail string
}

// Scan splits one source line into tokens. A ';' comment is stripped
// first. The returned slice always ends with a Final token.
func Scan(line string) (toks []Token) {
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	pos := 0
	for pos < len(line) {
		c := line[pos]
		switch {
		case c == ' ' || c == '\t':
			pos++
		case c == ',':
			toks = append(toks, Token{Kind: Comma, Text: ",", Pos: pos, Tail: strings.TrimSpace(line[pos:])})
			pos++
		case c == ':':
			toks = append(toks, Token{Kind: Colon, Text: ":", Pos: pos, Tail: strings.TrimSpace(line[pos:])})
			pos++
		default:
			end := pos
			for end < len(line) {
				c = line[end]
				if c == ' ' || c == '\t' || c == ',' || c == ':' {
					break
				}
				end++
			}
			toks = append(toks, Token{Kind: ID, Text: line[pos:end], Pos: pos, Tail: strings.TrimSpace(line[pos:])})
			pos = end
		}
	}

	toks = append(toks, Token{Kind: Final, Pos: len(line)})
	return
}
