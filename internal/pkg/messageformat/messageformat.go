// Package messageformat evaluates the ICU message subset used by
// tenant translations: plain {name} interpolation plus plural, select
// and selectordinal arguments. Plain interpolation is handled by the
// same parser, not a separate code path.
package messageformat

import (
	"errors"
	"fmt"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var patternRe = regexp.MustCompile(`\{\s*[a-zA-Z_][a-zA-Z0-9_]*\s*[,}]`)

// IsMessagePattern reports whether a value should go through the
// formatter: it contains a brace placeholder, either bare or with a
// plural/select/selectordinal argument.
func IsMessagePattern(pattern string) bool {
	return patternRe.MatchString(pattern)
}

// Options apply to a single Format call. Escaping is per-call, never
// global state.
type Options struct {
	// Raw skips HTML escaping of substituted values.
	Raw bool
}

// Formatter renders message patterns. The hooks fire on recoverable
// conditions; a nil hook is ignored.
type Formatter struct {
	OnMissingValue func(pattern, name string)
	OnFormatError  func(pattern string, err error)
}

func New() *Formatter {
	return &Formatter{}
}

// Format renders a pattern with the given values. A malformed pattern
// never escapes this boundary as an error: the original pattern is
// returned unchanged and the error hook fires. A missing value leaves
// its placeholder text in place and fires the missing-value hook.
func (f *Formatter) Format(pattern string, values map[string]any, opts Options) string {
	p := &parser{src: pattern}
	nodes, err := p.parseMessage(0)
	if err == nil && p.pos < len(p.src) {
		err = errors.New("unbalanced closing brace")
	}
	if err != nil {
		if f.OnFormatError != nil {
			f.OnFormatError(pattern, err)
		}
		return pattern
	}

	var b strings.Builder
	f.render(&b, pattern, nodes, values, opts, "")
	return b.String()
}

type node interface{}

type textNode struct {
	text string
}

type argNode struct {
	name string
	raw  string
}

type branchNode struct {
	name     string
	kind     string // plural, select or selectordinal
	raw      string
	branches map[string][]node
}

type parser struct {
	src string
	pos int
}

// parseMessage consumes nodes until end of input or, at depth > 0, an
// unconsumed closing brace belonging to the enclosing placeholder.
func (p *parser) parseMessage(depth int) ([]node, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, textNode{text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			flush()
			n, err := p.parsePlaceholder()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case '}':
			if depth == 0 {
				return nil, errors.New("unbalanced closing brace")
			}
			flush()
			return nodes, nil
		default:
			text.WriteByte(p.src[p.pos])
			p.pos++
		}
	}

	if depth > 0 {
		return nil, errors.New("unbalanced opening brace")
	}
	flush()
	return nodes, nil
}

func (p *parser) parsePlaceholder() (node, error) {
	start := p.pos
	p.pos++ // consume '{'

	name := strings.TrimSpace(p.readUntil(",}"))
	if name == "" {
		return nil, errors.New("empty placeholder name")
	}
	if p.pos >= len(p.src) {
		return nil, errors.New("unbalanced opening brace")
	}

	if p.src[p.pos] == '}' {
		p.pos++
		return argNode{name: name, raw: p.src[start:p.pos]}, nil
	}

	p.pos++ // consume ','
	kind := strings.TrimSpace(p.readUntil(",}"))
	if p.pos >= len(p.src) || p.src[p.pos] != ',' {
		return nil, fmt.Errorf("argument %q: expected sub-patterns", name)
	}
	p.pos++ // consume ','

	switch kind {
	case "plural", "select", "selectordinal":
	default:
		return nil, fmt.Errorf("argument %q: unsupported type %q", name, kind)
	}

	branches := make(map[string][]node)
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, errors.New("unbalanced opening brace")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			break
		}

		key := strings.TrimSpace(p.readUntil("{"))
		if key == "" || p.pos >= len(p.src) {
			return nil, fmt.Errorf("argument %q: malformed sub-pattern", name)
		}
		p.pos++ // consume '{'

		sub, err := p.parseMessage(1)
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != '}' {
			return nil, errors.New("unbalanced opening brace")
		}
		p.pos++ // consume '}'

		branches[key] = sub
	}

	if _, ok := branches["other"]; !ok {
		return nil, fmt.Errorf("argument %q: missing mandatory other clause", name)
	}

	return branchNode{
		name:     name,
		kind:     kind,
		raw:      p.src[start:p.pos],
		branches: branches,
	}, nil
}

func (p *parser) readUntil(stop string) string {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(stop, rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

// render walks nodes into b. octothorpe carries the formatted number a
// '#' expands to inside plural branches; empty means leave '#' alone.
func (f *Formatter) render(b *strings.Builder, pattern string, nodes []node, values map[string]any, opts Options, octothorpe string) {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			if octothorpe != "" {
				b.WriteString(strings.ReplaceAll(n.text, "#", octothorpe))
			} else {
				b.WriteString(n.text)
			}
		case argNode:
			v, ok := values[n.name]
			if !ok {
				f.missing(pattern, n.name)
				b.WriteString(n.raw)
				continue
			}
			b.WriteString(f.stringify(v, opts))
		case branchNode:
			f.renderBranch(b, pattern, n, values, opts)
		}
	}
}

func (f *Formatter) renderBranch(b *strings.Builder, pattern string, n branchNode, values map[string]any, opts Options) {
	v, ok := values[n.name]
	if !ok {
		f.missing(pattern, n.name)
		b.WriteString(n.raw)
		return
	}

	if n.kind == "select" {
		key := fmt.Sprint(v)
		sub, ok := n.branches[key]
		if !ok {
			sub = n.branches["other"]
		}
		f.render(b, pattern, sub, values, opts, "")
		return
	}

	num, numOK := toNumber(v)
	if !numOK {
		if f.OnFormatError != nil {
			f.OnFormatError(pattern, fmt.Errorf("argument %q: non-numeric value for %s", n.name, n.kind))
		}
		b.WriteString(n.raw)
		return
	}

	formatted := formatNumber(num)
	sub, ok := n.branches["="+formatted]
	if !ok {
		sub, ok = n.branches[pluralCategory(num)]
	}
	if !ok {
		sub = n.branches["other"]
	}
	f.render(b, pattern, sub, values, opts, formatted)
}

// pluralCategory implements the minimal binary distinction. A full CLDR
// rule table is deliberately not carried here.
func pluralCategory(n float64) string {
	if n == 1 {
		return "one"
	}
	return "other"
}

func (f *Formatter) stringify(v any, opts Options) string {
	s := fmt.Sprint(v)
	if opts.Raw {
		return s
	}
	return html.EscapeString(s)
}

func (f *Formatter) missing(pattern, name string) {
	if f.OnMissingValue != nil {
		f.OnMissingValue(pattern, name)
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	}
	return 0, false
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
