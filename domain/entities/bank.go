package entities

// BankRecord is one row of the static bank dataset. Records are immutable
// after load; Code is the primary key.
type BankRecord struct {
	Code        string   `json:"no" bson:"no"`
	LocalName   string   `json:"name" bson:"name"`
	EnglishName string   `json:"en-name,omitempty" bson:"en_name,omitempty"`
	Aliases     []string `json:"aliases,omitempty" bson:"aliases,omitempty"`
}

// SearchResult annotates a matching record with the alternate field that
// satisfied the query when the display name itself did not. MatchedAlias is
// for highlighting only, never identity.
type SearchResult struct {
	Bank         BankRecord `json:"bank"`
	MatchedAlias string     `json:"matched_alias,omitempty"`
}

// HighlightRun is one run of a display string split around the query.
type HighlightRun struct {
	Text    string `json:"text"`
	IsMatch bool   `json:"is_match"`
}
