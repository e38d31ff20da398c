package models

// ReadQuery is a validated read request.
type ReadQuery struct {
	UserID     string
	ContentIDs []string
	// Fields is the requested projection in external names. Nil means no explicit projection.
	Fields []string
}

// ReadResult is the payload of a successful read.
type ReadResult struct {
	ContentList []map[string]any `json:"contentList"`
}

// UpdateResult maps every processed content id to its outcome.
type UpdateResult map[string]string

// Export is the document written to object storage by a consumption export.
type Export struct {
	UserID      string           `json:"userId"`
	ExportedAt  string           `json:"exportedAt"`
	ContentList []map[string]any `json:"contentList"`
}
