package vocab

import "strings"

// Expected header column names. Matching is exact and case-sensitive.
// The two auxiliary columns are optional; files without them simply
// have no auxiliary data.
const (
	colEnglish = "English"
	colChinese = "Chinese Meanings"
	colWordPos = "word_with_pos"
	colCheck   = "check_status"
	colAuxZh   = "ecdict_zh"
	colAuxPos  = "ecdict_pos"
)

// columns holds resolved header indices. -1 means the column is absent.
type columns struct {
	english int
	chinese int
	wordPos int
	check   int
	auxZh   int
	auxPos  int
}

func resolveColumns(header []string) columns {
	cols := columns{english: -1, chinese: -1, wordPos: -1, check: -1, auxZh: -1, auxPos: -1}
	for i, name := range header {
		switch name {
		case colEnglish:
			cols.english = i
		case colChinese:
			cols.chinese = i
		case colWordPos:
			cols.wordPos = i
		case colCheck:
			cols.check = i
		case colAuxZh:
			cols.auxZh = i
		case colAuxPos:
			cols.auxPos = i
		}
	}
	// Headerless-by-name files still follow the term/meaning column order.
	if cols.english < 0 {
		cols.english = 0
	}
	if cols.chinese < 0 {
		cols.chinese = 1
	}
	return cols
}

// Parse turns raw delimited text into vocabulary records. The first
// non-blank line is the header; rows with an empty English term or
// Chinese meaning are dropped, not reported, since sparse rows are
// allowed in the source data.
func Parse(text string, delim rune) []Record {
	var (
		header  []string
		cols    columns
		records []Record
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitCells(line, delim)

		if header == nil {
			header = trimCells(cells)
			cols = resolveColumns(header)
			continue
		}

		cells = alignRow(cells, len(header), delim)
		cells = trimCells(cells)

		rec := Record{
			English:      cellAt(cells, cols.english),
			Chinese:      cellAt(cells, cols.chinese),
			CheckStatus:  cellAt(cells, cols.check),
			AuxiliaryZh:  cellAt(cells, cols.auxZh),
			AuxiliaryPos: cellAt(cells, cols.auxPos),
		}
		if rec.English == "" || rec.Chinese == "" {
			continue
		}
		rec.LookupKey = cellAt(cells, cols.wordPos)
		if rec.LookupKey == "" {
			rec.LookupKey = rec.English
		}
		records = append(records, rec)
	}

	return records
}

// splitCells splits one row into cells. Double quotes toggle a
// quoted region in which the delimiter is literal; the quotes
// themselves are dropped. There is no escaped-quote support.
// Cells are returned untrimmed so that re-joined cells keep the
// original spacing around embedded delimiters.
func splitCells(line string, delim rune) []string {
	var cells []string
	var cur strings.Builder
	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == delim && !inQuote:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	cells = append(cells, cur.String())
	return cells
}

// alignRow reconciles a row against the header width. Over-long rows
// happen when the meaning cell contains unescaped delimiters: the
// first cell (the term) and the last width-2 cells stay fixed and the
// middle cells are re-joined into a single meaning cell. Short rows
// are right-padded with empty cells.
func alignRow(cells []string, width int, delim rune) []string {
	switch {
	case len(cells) < width:
		for len(cells) < width {
			cells = append(cells, "")
		}
	case len(cells) > width && width >= 2:
		tail := width - 2
		joined := strings.Join(cells[1:len(cells)-tail], string(delim))
		aligned := make([]string, 0, width)
		aligned = append(aligned, cells[0], joined)
		aligned = append(aligned, cells[len(cells)-tail:]...)
		cells = aligned
	}
	return cells
}

func trimCells(cells []string) []string {
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func cellAt(cells []string, i int) string {
	if i >= 0 && i < len(cells) {
		return cells[i]
	}
	return ""
}
