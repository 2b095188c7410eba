package pcaxis

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Parse errors. ErrBadShape signals a structural problem (keyword
// syntax, DATA size mismatch) and indicates the file is not a usable
// PX table; it propagates to the caller rather than being absorbed.
var (
	ErrBadShape = errors.New("malformed px table")
	ErrNoData   = errors.New("px table has no DATA record")
)

// Dimension is one axis of the data matrix.
type Dimension struct {
	// Name is the dimension name as declared in STUB or HEADING.
	Name string

	// Values are the category labels along this axis, in file order.
	Values []string
}

// Table is a parsed PX file: its dimensions in STUB-then-HEADING order
// and the flattened data matrix.
type Table struct {
	dims    []Dimension
	data    []float64
	present []bool
}

// Dimensions returns the table axes, STUB dimensions first.
// The returned slice is shared; callers must not modify it.
func (t *Table) Dimensions() []Dimension {
	return t.dims
}

// Dimension returns the named axis.
func (t *Table) Dimension(name string) (Dimension, bool) {
	for _, d := range t.dims {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// Value returns the cell addressed by one category label per dimension
// (keyed by dimension name). The second return is false when the cell
// holds a missing-value marker. Unknown dimensions or labels are an
// error because they indicate caller misuse, not data sparsity.
func (t *Table) Value(coords map[string]string) (float64, bool, error) {
	idx := 0
	for _, d := range t.dims {
		label, ok := coords[d.Name]
		if !ok {
			return 0, false, fmt.Errorf("missing coordinate for dimension %q", d.Name)
		}
		pos := -1
		for i, v := range d.Values {
			if v == label {
				pos = i
				break
			}
		}
		if pos < 0 {
			return 0, false, fmt.Errorf("dimension %q has no value %q", d.Name, label)
		}
		idx = idx*len(d.Values) + pos
	}
	if !t.present[idx] {
		return 0, false, nil
	}
	return t.data[idx], true, nil
}

// Size returns the number of cells in the matrix.
func (t *Table) Size() int {
	return len(t.data)
}

// Parse reads a PX file. The preferred language selects among
// language-tagged keyword variants ("VALUES[fr](...)"); untagged
// keywords are the file's default language and always accepted when no
// tagged variant matches.
func Parse(r io.Reader, lang string) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read px input: %w", err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, err
	}

	records, dataRecord, err := splitRecords(text)
	if err != nil {
		return nil, err
	}
	if dataRecord == "" {
		return nil, ErrNoData
	}

	kw := selectKeywords(records, lang)

	stub, err := dimensionList(kw, "STUB")
	if err != nil {
		return nil, err
	}
	heading, err := dimensionList(kw, "HEADING")
	if err != nil {
		return nil, err
	}

	table := &Table{}
	size := 1
	for _, name := range append(stub, heading...) {
		values, ok := kw["VALUES("+name+")"]
		if !ok {
			return nil, fmt.Errorf("%w: no VALUES for dimension %q", ErrBadShape, name)
		}
		labels := splitQuotedList(values)
		if len(labels) == 0 {
			return nil, fmt.Errorf("%w: dimension %q has no values", ErrBadShape, name)
		}
		table.dims = append(table.dims, Dimension{Name: name, Values: labels})
		size *= len(labels)
	}

	if err := table.parseData(dataRecord, size); err != nil {
		return nil, err
	}
	return table, nil
}

// decode converts the raw bytes to UTF-8 based on the CODEPAGE keyword,
// which is plain ASCII and therefore safe to locate before decoding.
// Files without a recognized CODEPAGE are assumed to already be UTF-8
// compatible.
func decode(raw []byte) (string, error) {
	codepage := ""
	if i := strings.Index(string(raw[:min(len(raw), 4096)]), `CODEPAGE="`); i >= 0 {
		rest := string(raw[i+len(`CODEPAGE="`):])
		if j := strings.IndexByte(rest, '"'); j >= 0 {
			codepage = strings.ToLower(rest[:j])
		}
	}

	var cm *charmap.Charmap
	switch codepage {
	case "iso-8859-1", "latin1":
		cm = charmap.ISO8859_1
	case "iso-8859-2", "latin2":
		cm = charmap.ISO8859_2
	case "iso-8859-15":
		cm = charmap.ISO8859_15
	case "windows-1252", "ansi":
		cm = charmap.Windows1252
	case "", "utf-8", "utf8":
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: unsupported codepage %q", ErrBadShape, codepage)
	}

	decoded, _, err := transform.Bytes(decoder(cm), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", codepage, err)
	}
	return string(decoded), nil
}

func decoder(cm *charmap.Charmap) transform.Transformer {
	var enc encoding.Encoding = cm
	return enc.NewDecoder()
}

// splitRecords cuts the file into "KEY=value" records terminated by
// semicolons outside quotes. The DATA record is returned separately
// because it is by far the largest and never quoted as a whole.
func splitRecords(text string) (map[string]string, string, error) {
	records := make(map[string]string)
	dataRecord := ""

	inQuote := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inQuote = !inQuote
		case ';':
			if inQuote {
				continue
			}
			record := strings.TrimSpace(text[start:i])
			start = i + 1
			if record == "" {
				continue
			}
			eq := indexOutsideQuotes(record, '=')
			if eq < 0 {
				return nil, "", fmt.Errorf("%w: record without '=': %.40q", ErrBadShape, record)
			}
			// Subkeys are quoted in the file (VALUES("Kanton")); keys
			// are canonicalized without quotes for lookup.
			key := strings.ReplaceAll(strings.TrimSpace(record[:eq]), `"`, "")
			value := strings.TrimSpace(record[eq+1:])
			if strings.EqualFold(key, "DATA") {
				dataRecord = value
				continue
			}
			records[key] = value
		}
	}
	return records, dataRecord, nil
}

// indexOutsideQuotes returns the first index of c outside double quotes.
func indexOutsideQuotes(s string, c byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuote = !inQuote
		case s[i] == c && !inQuote:
			return i
		}
	}
	return -1
}

// selectKeywords flattens language-tagged keys: "STUB[fr]" beats "STUB"
// when lang is "fr", otherwise the untagged default-language key wins.
func selectKeywords(records map[string]string, lang string) map[string]string {
	out := make(map[string]string, len(records))
	tagged := make(map[string]string)
	for key, value := range records {
		base, keyLang := splitLangTag(key)
		if keyLang == "" {
			if _, have := out[base]; !have {
				out[base] = value
			}
			continue
		}
		if keyLang == lang {
			tagged[base] = value
		}
	}
	for base, value := range tagged {
		out[base] = value
	}
	return out
}

// splitLangTag splits "VALUES[fr](Kanton)" into "VALUES(Kanton)", "fr".
func splitLangTag(key string) (base, lang string) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, ""
	}
	close := strings.IndexByte(key[open:], ']')
	if close < 0 {
		return key, ""
	}
	return key[:open] + key[open+close+1:], key[open+1 : open+close]
}

// dimensionList reads the STUB or HEADING keyword as a list of
// dimension names. A missing keyword means the table has no dimensions
// on that axis, which is legal (one-dimensional tables).
func dimensionList(kw map[string]string, key string) ([]string, error) {
	value, ok := kw[key]
	if !ok {
		return nil, nil
	}
	names := splitQuotedList(value)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty %s", ErrBadShape, key)
	}
	return names, nil
}

// splitQuotedList parses `"a","b","c"` into its elements. PX quotes
// every list element; unquoted junk between elements is ignored.
func splitQuotedList(s string) []string {
	var out []string
	for {
		open := strings.IndexByte(s, '"')
		if open < 0 {
			return out
		}
		s = s[open+1:]
		close := strings.IndexByte(s, '"')
		if close < 0 {
			return out
		}
		out = append(out, s[:close])
		s = s[close+1:]
	}
}

// parseData fills the matrix from the DATA record. Tokens are numbers
// or quoted missing-value markers; thousands separators (apostrophes
// and narrow spaces) and decimal commas are tolerated because BFS
// exports use them.
func (t *Table) parseData(record string, size int) error {
	t.data = make([]float64, 0, size)
	t.present = make([]bool, 0, size)

	for _, token := range strings.Fields(record) {
		if strings.HasPrefix(token, `"`) {
			// Missing-value marker such as "..." or "-".
			t.data = append(t.data, 0)
			t.present = append(t.present, false)
			continue
		}
		cleaned := strings.NewReplacer("'", "", " ", "", " ", "", ",", ".").Replace(token)
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return fmt.Errorf("%w: bad DATA token %q", ErrBadShape, token)
		}
		t.data = append(t.data, v)
		t.present = append(t.present, true)
	}

	if len(t.data) != size {
		return fmt.Errorf("%w: DATA has %d cells, dimensions require %d", ErrBadShape, len(t.data), size)
	}
	return nil
}
