package vocab

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Record
	}{
		{
			name:  "simple rows",
			input: "English,Chinese Meanings\nrun,跑\nwalk,走",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
				{English: "walk", Chinese: "走", LookupKey: "walk"},
			},
		},
		{
			name:  "unescaped comma folded into meaning",
			input: "English,Chinese Meanings\nrun,跑\nwalk (v.),走, 慢走",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
				{English: "walk (v.)", Chinese: "走, 慢走", LookupKey: "walk (v.)"},
			},
		},
		{
			name:  "quoted meaning keeps embedded comma",
			input: "English,Chinese Meanings\nabandon,\"放棄, 拋棄\"",
			expected: []Record{
				{English: "abandon", Chinese: "放棄, 拋棄", LookupKey: "abandon"},
			},
		},
		{
			name:  "crlf line endings and blank lines",
			input: "\r\nEnglish,Chinese Meanings\r\n\r\nrun,跑\r\n   \r\n",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
			},
		},
		{
			name:  "sparse rows dropped",
			input: "English,Chinese Meanings\nrun,跑\n,沒有英文\nnochinese,\nonlyenglish",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
			},
		},
		{
			name:  "cells trimmed after alignment",
			input: "English,Chinese Meanings\n  run  ,  跑  ",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
			},
		},
		{
			name: "full header with aux columns",
			input: "English,Chinese Meanings,word_with_pos,check_status,ecdict_zh,ecdict_pos\n" +
				"run,跑,run (v.),checked,跑步,v.",
			expected: []Record{
				{
					English:      "run",
					Chinese:      "跑",
					CheckStatus:  "checked",
					AuxiliaryZh:  "跑步",
					AuxiliaryPos: "v.",
					LookupKey:    "run (v.)",
				},
			},
		},
		{
			name: "over-long row with tail columns fixed",
			input: "English,Chinese Meanings,word_with_pos,check_status\n" +
				"estimate,估計, 估價,estimate (v.),unchecked",
			expected: []Record{
				{
					English:     "estimate",
					Chinese:     "估計, 估價",
					CheckStatus: "unchecked",
					LookupKey:   "estimate (v.)",
				},
			},
		},
		{
			name: "short row right-padded",
			input: "English,Chinese Meanings,word_with_pos,check_status\n" +
				"run,跑",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
			},
		},
		{
			name:  "unknown header falls back to column order",
			input: "Term,Meaning\nrun,跑",
			expected: []Record{
				{English: "run", Chinese: "跑", LookupKey: "run"},
			},
		},
		{
			name:     "header only",
			input:    "English,Chinese Meanings\n",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, ',')
			if len(got) != len(tt.expected) {
				t.Fatalf("Parse() returned %d records, want %d: %+v", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Parse()[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseTSV(t *testing.T) {
	input := "English\tChinese Meanings\nrun\t跑\nwalk\t走, 慢走"
	got := Parse(input, '\t')

	if len(got) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(got))
	}
	// The comma is an ordinary character in a TSV meaning cell.
	if got[1].Chinese != "走, 慢走" {
		t.Errorf("Chinese = %q, want %q", got[1].Chinese, "走, 慢走")
	}
}

func TestParsePreservesSourceOrder(t *testing.T) {
	input := "English,Chinese Meanings\nzebra,斑馬\napple,蘋果\nmango,芒果"
	got := Parse(input, ',')

	want := []string{"zebra", "apple", "mango"}
	if len(got) != len(want) {
		t.Fatalf("Parse() returned %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].English != w {
			t.Errorf("Parse()[%d].English = %q, want %q", i, got[i].English, w)
		}
	}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b, c",d`, []string{"a", "b, c", "d"}},
		{"unterminated quote", `a,"b, c`, []string{"a", "b, c"}},
		{"empty cells", ",,", []string{"", "", ""}},
		{"whitespace kept", "a, b ,c", []string{"a", " b ", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCells(tt.line, ',')
			if len(got) != len(tt.expected) {
				t.Fatalf("splitCells(%q) = %v, want %v", tt.line, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitCells(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.expected[i])
				}
			}
		})
	}
}
