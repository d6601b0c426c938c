package bankdata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twqr-system/domain/entities"
)

func newTestDirectory(t *testing.T) *Directory {
	records, err := LoadEmbedded()
	require.NoError(t, err)

	directory, err := NewDirectory(records)
	require.NoError(t, err)
	return directory
}

func TestNewDirectory_EmptyDataset(t *testing.T) {
	_, err := NewDirectory(nil)
	assert.Error(t, err)
}

func TestDirectory_FindByCode(t *testing.T) {
	directory := newTestDirectory(t)

	type args struct {
		code string
	}
	tests := []struct {
		name     string
		args     args
		wantName string
		wantNil  bool
	}{
		{name: "ctbc", args: args{code: "822"}, wantName: "中國信託商業銀行"},
		{name: "post", args: args{code: "700"}, wantName: "中華郵政"},
		{name: "unknown code", args: args{code: "999"}, wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directory.FindByCode(tt.args.code)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantName, got.LocalName)
		})
	}
}

func TestDirectory_SearchEmptyQueryReturnsEverything(t *testing.T) {
	directory := newTestDirectory(t)

	results := directory.Search("")
	require.Equal(t, len(directory.All()), len(results))
	for i, record := range directory.All() {
		assert.Equal(t, record.Code, results[i].Bank.Code)
		assert.Empty(t, results[i].MatchedAlias)
	}
}

func TestDirectory_SearchSortedByCode(t *testing.T) {
	directory := newTestDirectory(t)

	results := directory.Search("銀行")
	require.NotEmpty(t, results)
	assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Bank.Code < results[j].Bank.Code
	}))
}

func TestDirectory_SearchVariantFolding(t *testing.T) {
	directory := newTestDirectory(t)

	traditional := directory.Search("臺灣銀行")
	variant := directory.Search("台灣銀行")

	require.NotEmpty(t, traditional)
	assert.Equal(t, codes(traditional), codes(variant))
	assert.Equal(t, "004", traditional[0].Bank.Code)
}

func TestDirectory_SearchMatchedAlias(t *testing.T) {
	directory := newTestDirectory(t)

	type args struct {
		query string
	}
	tests := []struct {
		name      string
		args      args
		wantCode  string
		wantAlias string
	}{
		{name: "alias satisfied the query", args: args{query: "ctbc"}, wantCode: "822", wantAlias: "CTBC"},
		{name: "english name satisfied the query", args: args{query: "sunny"}, wantCode: "108", wantAlias: "Sunny Bank"},
		{name: "display name match carries no annotation", args: args{query: "中國信託"}, wantCode: "822", wantAlias: ""},
		{name: "code match carries no annotation", args: args{query: "822"}, wantCode: "822", wantAlias: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := directory.Search(tt.args.query)
			require.NotEmpty(t, results)

			found := false
			for _, result := range results {
				if result.Bank.Code == tt.wantCode {
					found = true
					assert.Equal(t, tt.wantAlias, result.MatchedAlias)
				}
			}
			assert.True(t, found, "expected code %v in results", tt.wantCode)
		})
	}
}

func TestDirectory_SearchNoMatch(t *testing.T) {
	directory := newTestDirectory(t)
	assert.Empty(t, directory.Search("zzzz no such bank"))
}

func TestDirectory_HighlightSpan(t *testing.T) {
	directory := newTestDirectory(t)

	type args struct {
		text  string
		query string
	}
	tests := []struct {
		name string
		args args
		want []entities.HighlightRun
	}{
		{
			name: "middle run marked",
			args: args{text: "1234567890", query: "456"},
			want: []entities.HighlightRun{
				{Text: "123"},
				{Text: "456", IsMatch: true},
				{Text: "7890"},
			},
		},
		{
			name: "empty query is one plain run",
			args: args{text: "1234567890", query: ""},
			want: []entities.HighlightRun{{Text: "1234567890"}},
		},
		{
			name: "variant folded match keeps original runes",
			args: args{text: "臺灣銀行", query: "台灣"},
			want: []entities.HighlightRun{
				{Text: "臺灣", IsMatch: true},
				{Text: "銀行"},
			},
		},
		{
			name: "case insensitive match",
			args: args{text: "CTBC Bank", query: "ctbc"},
			want: []entities.HighlightRun{
				{Text: "CTBC", IsMatch: true},
				{Text: " Bank"},
			},
		},
		{
			name: "no occurrence is one plain run",
			args: args{text: "玉山商業銀行", query: "中信"},
			want: []entities.HighlightRun{{Text: "玉山商業銀行"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := directory.HighlightSpan(tt.args.text, tt.args.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func codes(results []entities.SearchResult) []string {
	out := make([]string, 0, len(results))
	for _, result := range results {
		out = append(out, result.Bank.Code)
	}
	return out
}
