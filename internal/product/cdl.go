package product

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

const (
	cdlGlobalAttributesMarker = "// global attributes:"

	// MaxCDLLineSize bounds a single CDL line; long attribute strings are
	// split across lines by ncdump, so this only guards against garbage input.
	MaxCDLLineSize = 1024 * 1024
)

// CDLReader reads the global attributes section of netCDF CDL text, the
// format printed by `ncdump -h`:
//
//	netcdf groundbased_ftir.o3_... {
//	...
//	// global attributes:
//			:PI_NAME = "Doe;John" ;
//			:DATA_START_DATE = "20200101T000000Z" ;
//			:_NCProperties = "version=2" ;
//	}
//
// Strings split across lines are concatenated and C escapes are decoded,
// including octal \000 padding. Numeric attributes keep their literal text.
// Full ncdump output is accepted too; reading stops at the data: section.
type CDLReader struct{}

// NewCDLReader creates a CDLReader.
func NewCDLReader() *CDLReader {
	return &CDLReader{}
}

// Open opens the CDL file at path.
func (r *CDLReader) Open(path string) (geoms.Product, error) {
	return openFile(path, parseCDL)
}

func parseCDL(r io.Reader) (map[string]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxCDLLineSize)

	attrs := make(map[string]string)
	var (
		sawHeader bool
		inGlobal  bool
		stmt      strings.Builder
		lineNum   int
		stmtLine  int
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if !sawHeader {
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "netcdf ") {
				return nil, fmt.Errorf("line %d: not a CDL file (expected \"netcdf <name> {\")", lineNum)
			}
			sawHeader = true
			continue
		}

		if !inGlobal {
			if line == cdlGlobalAttributesMarker {
				inGlobal = true
			}
			continue
		}

		if stmt.Len() == 0 {
			if line == "" {
				continue
			}
			if line == "}" || line == "data:" || strings.HasPrefix(line, "group:") || strings.HasPrefix(line, "//") {
				break
			}
			stmtLine = lineNum
		} else {
			stmt.WriteByte(' ')
		}
		stmt.WriteString(line)

		if !cdlStatementComplete(stmt.String()) {
			continue
		}
		name, value, err := parseCDLAttribute(stmt.String())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", stmtLine, err)
		}
		attrs[name] = value
		stmt.Reset()
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, errors.New("empty CDL file")
	}
	if stmt.Len() > 0 {
		return nil, fmt.Errorf("line %d: unterminated attribute definition", stmtLine)
	}
	return attrs, nil
}

// cdlStatementComplete reports whether s contains a ';' outside string literals.
func cdlStatementComplete(s string) bool {
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case c == ';' && !inString:
			return true
		}
	}
	return false
}

// parseCDLAttribute parses `[type] :name = value[, value...] ;`.
func parseCDLAttribute(stmt string) (string, string, error) {
	colon := strings.IndexByte(stmt, ':')
	if colon < 0 {
		return "", "", fmt.Errorf("expected global attribute definition, got %q", stmt)
	}

	s := stmt[colon+1:]
	var name strings.Builder
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			name.WriteByte(s[i])
			continue
		}
		if c == '=' || c == ' ' || c == '\t' {
			break
		}
		name.WriteByte(c)
	}
	if name.Len() == 0 {
		return "", "", fmt.Errorf("missing attribute name in %q", stmt)
	}

	i = skipSpace(s, i)
	if i >= len(s) || s[i] != '=' {
		return "", "", fmt.Errorf("attribute %s: expected '='", name.String())
	}
	i++

	var (
		items     []string
		allQuoted = true
	)
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return "", "", fmt.Errorf("attribute %s: missing ';'", name.String())
		}

		if s[i] == '"' {
			value, next, err := readCDLString(s, i+1)
			if err != nil {
				return "", "", fmt.Errorf("attribute %s: %w", name.String(), err)
			}
			items = append(items, value)
			i = next
		} else {
			start := i
			for i < len(s) && s[i] != ',' && s[i] != ';' {
				i++
			}
			token := strings.TrimSpace(s[start:i])
			if token == "" {
				return "", "", fmt.Errorf("attribute %s: empty value", name.String())
			}
			items = append(items, token)
			allQuoted = false
		}

		i = skipSpace(s, i)
		if i >= len(s) {
			return "", "", fmt.Errorf("attribute %s: missing ';'", name.String())
		}
		switch s[i] {
		case ',':
			i++
			continue
		case ';':
			if rest := strings.TrimSpace(s[i+1:]); rest != "" {
				return "", "", fmt.Errorf("attribute %s: unexpected text after ';': %q", name.String(), rest)
			}
		default:
			return "", "", fmt.Errorf("attribute %s: unexpected character %q", name.String(), s[i])
		}
		break
	}

	if allQuoted {
		return name.String(), strings.Join(items, ""), nil
	}
	return name.String(), strings.Join(items, ", "), nil
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// readCDLString decodes a string literal starting after its opening quote and
// returns the value and the index after the closing quote.
func readCDLString(s string, i int) (string, int, error) {
	var b strings.Builder
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, errors.New("unterminated escape sequence")
			}
			n, width, err := decodeCDLEscape(s[i+1:])
			if err != nil {
				return "", 0, err
			}
			b.WriteByte(n)
			i += 1 + width
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, errors.New("unterminated string")
}

// decodeCDLEscape decodes the escape following a backslash and returns the
// byte and the number of characters consumed.
func decodeCDLEscape(s string) (byte, int, error) {
	switch c := s[0]; c {
	case 'n':
		return '\n', 1, nil
	case 't':
		return '\t', 1, nil
	case 'r':
		return '\r', 1, nil
	case 'a':
		return '\a', 1, nil
	case 'b':
		return '\b', 1, nil
	case 'f':
		return '\f', 1, nil
	case 'v':
		return '\v', 1, nil
	case '\\', '"', '\'', '?':
		return c, 1, nil
	case 'x':
		width := 1
		for width < 3 && width < len(s) && isHexDigit(s[width]) {
			width++
		}
		if width == 1 {
			return 0, 0, errors.New(`invalid \x escape`)
		}
		v, err := strconv.ParseUint(s[1:width], 16, 8)
		if err != nil {
			return 0, 0, fmt.Errorf(`invalid \x escape: %w`, err)
		}
		return byte(v), width, nil
	default:
		if c < '0' || c > '7' {
			return c, 1, nil
		}
		width := 1
		for width < 3 && width < len(s) && s[width] >= '0' && s[width] <= '7' {
			width++
		}
		v, err := strconv.ParseUint(s[:width], 8, 16)
		if err != nil || v > 0xff {
			return 0, 0, fmt.Errorf("invalid octal escape \\%s", s[:width])
		}
		return byte(v), width, nil
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
