package exchange

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"sekolah-branding/internal/domain"
)

const (
	FormatKeyValue = "keyvalue"
	FormatGettext  = "gettext"
	FormatXLIFF    = "xliff"
)

func encodeKeyValue(m map[string]string) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func decodeKeyValue(content []byte) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, domain.NewValidationError("content", "not a flat string-to-string object: "+err.Error())
	}
	return m, nil
}

// encodeGettext writes msgid/msgstr block pairs separated by blank
// lines, keys in sorted order so exports are stable.
func encodeGettext(m map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "msgid %s\n", quotePo(k))
		fmt.Fprintf(&b, "msgstr %s\n", quotePo(m[k]))
	}
	return []byte(b.String()), nil
}

// decodeGettext accepts blocks in any order; each block is exactly one
// msgid/msgstr pair.
func decodeGettext(content []byte) (map[string]string, error) {
	m := make(map[string]string)

	var msgid *string
	for lineNo, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "msgid "):
			key, err := unquotePo(strings.TrimPrefix(line, "msgid "))
			if err != nil {
				return nil, domain.NewValidationError("content", fmt.Sprintf("line %d: %v", lineNo+1, err))
			}
			msgid = &key
		case strings.HasPrefix(line, "msgstr "):
			if msgid == nil {
				return nil, domain.NewValidationError("content", fmt.Sprintf("line %d: msgstr without msgid", lineNo+1))
			}
			value, err := unquotePo(strings.TrimPrefix(line, "msgstr "))
			if err != nil {
				return nil, domain.NewValidationError("content", fmt.Sprintf("line %d: %v", lineNo+1, err))
			}
			m[*msgid] = value
			msgid = nil
		default:
			return nil, domain.NewValidationError("content", fmt.Sprintf("line %d: unexpected %q", lineNo+1, line))
		}
	}
	if msgid != nil {
		return nil, domain.NewValidationError("content", "msgid without msgstr")
	}
	return m, nil
}

func quotePo(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

func unquotePo(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %q", s)
	}
	body := s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape in %q", s)
		}
		switch body[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			return "", fmt.Errorf("unknown escape \\%c in %q", body[i], s)
		}
	}
	return b.String(), nil
}

// Only id and target matter on the wire; everything else in incoming
// documents is ignored and nothing else is emitted.
type xliffFile struct {
	XMLName    xml.Name         `xml:"xliff"`
	TransUnits []xliffTransUnit `xml:"file>body>trans-unit"`
}

type xliffTransUnit struct {
	ID     string `xml:"id,attr"`
	Target string `xml:"target"`
}

func encodeXLIFF(m map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	file := xliffFile{TransUnits: make([]xliffTransUnit, 0, len(keys))}
	for _, k := range keys {
		file.TransUnits = append(file.TransUnits, xliffTransUnit{ID: k, Target: m[k]})
	}

	out, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func decodeXLIFF(content []byte) (map[string]string, error) {
	var file xliffFile
	if err := xml.Unmarshal(content, &file); err != nil {
		return nil, domain.NewValidationError("content", "malformed xliff document: "+err.Error())
	}

	m := make(map[string]string, len(file.TransUnits))
	for _, unit := range file.TransUnits {
		if unit.ID == "" {
			return nil, domain.NewValidationError("content", "trans-unit without id attribute")
		}
		m[unit.ID] = unit.Target
	}
	return m, nil
}
