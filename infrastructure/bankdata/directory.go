package bankdata

import (
	_ "embed"
	"encoding/json"
	"io/ioutil"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"twqr-system/domain/entities"
	"twqr-system/errors"
)

// The dataset ships with the binary so the directory works with no external
// source configured. Records are kept in file order.
//
//go:embed banks.json
var embeddedDataset []byte

// Directory - immutable in-memory index over the bank dataset. Built once at
// startup, never mutated afterwards, safe for concurrent readers.
type Directory struct {
	records []entities.BankRecord
	byCode  map[string]int
}

// NewDirectory builds the index over records. Record order is preserved and
// becomes the order of empty-query search results.
func NewDirectory(records []entities.BankRecord) (*Directory, error) {
	if len(records) == 0 {
		return nil, errors.ErrDatasetEmpty
	}
	byCode := make(map[string]int, len(records))
	for i, record := range records {
		byCode[record.Code] = i
	}
	return &Directory{records: records, byCode: byCode}, nil
}

// LoadEmbedded decodes the dataset bundled with the binary.
func LoadEmbedded() ([]entities.BankRecord, error) {
	return decodeDataset(embeddedDataset)
}

// LoadFile decodes a dataset override from disk.
func LoadFile(path string) ([]entities.BankRecord, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDataset(raw)
}

// decodeDataset is tolerant about field types so hand-maintained datasets
// with numeric codes still load.
func decodeDataset(raw []byte) ([]entities.BankRecord, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	records := make([]entities.BankRecord, 0, len(rows))
	for _, row := range rows {
		record := entities.BankRecord{
			Code:        cast.ToString(row["no"]),
			LocalName:   cast.ToString(row["name"]),
			EnglishName: cast.ToString(row["en-name"]),
			Aliases:     cast.ToStringSlice(row["aliases"]),
		}
		if record.Code == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// All returns every record in dataset order. The slice is shared and must be
// treated as read-only.
func (d *Directory) All() []entities.BankRecord {
	return d.records
}

// FindByCode - exact key lookup, nil when absent.
func (d *Directory) FindByCode(code string) *entities.BankRecord {
	i, ok := d.byCode[code]
	if !ok {
		return nil
	}
	record := d.records[i]
	return &record
}

// Search resolves free text to matching records. An empty query means "show
// everything" and returns the whole dataset in order. Otherwise matching is
// case-insensitive substring over code, local name, english name and
// aliases, with interchangeable character variants folded on both sides.
// MatchedAlias carries the alternate field that matched when the local
// display name did not. Non-empty results are sorted ascending by code.
func (d *Directory) Search(query string) []entities.SearchResult {
	if query == "" {
		results := make([]entities.SearchResult, 0, len(d.records))
		for _, record := range d.records {
			results = append(results, entities.SearchResult{Bank: record})
		}
		return results
	}

	folded := FoldVariants(query)
	results := []entities.SearchResult{}
	for _, record := range d.records {
		displayMatches := strings.Contains(FoldVariants(record.LocalName), folded)
		enMatches := record.EnglishName != "" && strings.Contains(FoldVariants(record.EnglishName), folded)
		codeMatches := strings.Contains(record.Code, folded)

		aliasMatch := ""
		for _, alias := range record.Aliases {
			if strings.Contains(FoldVariants(alias), folded) {
				aliasMatch = alias
				break
			}
		}

		if !displayMatches && !enMatches && !codeMatches && aliasMatch == "" {
			continue
		}

		matchedAlias := ""
		if !displayMatches {
			matchedAlias = aliasMatch
			if matchedAlias == "" && enMatches {
				matchedAlias = record.EnglishName
			}
		}

		results = append(results, entities.SearchResult{Bank: record, MatchedAlias: matchedAlias})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Bank.Code < results[j].Bank.Code
	})
	return results
}

// HighlightSpan splits text into runs, marking the ones that match query
// under the same case and variant folding as Search. An empty query yields a
// single non-matching run.
func (d *Directory) HighlightSpan(text, query string) []entities.HighlightRun {
	if query == "" || text == "" {
		return []entities.HighlightRun{{Text: text}}
	}

	source := []rune(text)
	haystack := foldRunes(source)
	needle := foldRunes([]rune(query))
	if len(needle) > len(haystack) {
		return []entities.HighlightRun{{Text: text}}
	}

	runs := []entities.HighlightRun{}
	pending := 0
	i := 0
	for i <= len(haystack)-len(needle) {
		if !runesEqual(haystack[i:i+len(needle)], needle) {
			i++
			continue
		}
		if i > pending {
			runs = append(runs, entities.HighlightRun{Text: string(source[pending:i])})
		}
		runs = append(runs, entities.HighlightRun{Text: string(source[i : i+len(needle)]), IsMatch: true})
		i += len(needle)
		pending = i
	}
	if pending < len(source) {
		runs = append(runs, entities.HighlightRun{Text: string(source[pending:])})
	}
	return runs
}

// FoldVariants lowercases and folds interchangeable Han variants to one
// canonical form so either spelling matches records using the other.
func FoldVariants(s string) string {
	return string(foldRunes([]rune(s)))
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		r = unicode.ToLower(r)
		if r == '臺' {
			r = '台'
		}
		out[i] = r
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
