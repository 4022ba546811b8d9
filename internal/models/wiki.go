package models

// WikiSummary is the intro of a wiki page
type WikiSummary struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Summary *string `json:"summary"`
	Extract *string `json:"extract"`
}

// WikiGuide is the plain-text body of a quest guide page
type WikiGuide struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Guide *string `json:"guide"`
}

// WikiPage is a single page returned by an extracts query
type WikiPage struct {
	PageID  string
	Title   string
	Extract string
	Missing bool
}
