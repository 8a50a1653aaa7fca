package domain

// FetchTaskResult is the outcome of refreshing a single source
type FetchTaskResult struct {
	SourceID        int64
	SourceName      string
	Success         bool
	NewArticleCount int
	Err             error
}

// SourceError pairs a source with a user-visible error message
type SourceError struct {
	SourceID   int64  `json:"source_id"`
	SourceName string `json:"source_name"`
	Message    string `json:"message"`
}

// BatchResult aggregates results of a refresh or sync batch
type BatchResult struct {
	SuccessCount  int           `json:"success_count"`
	FailedCount   int           `json:"failed_count"`
	TotalArticles int           `json:"total_articles"`
	Errors        []SourceError `json:"errors,omitempty"`
}

// Add merges a single task result into the batch
func (b *BatchResult) Add(r FetchTaskResult) {
	if !r.Success {
		b.FailedCount++
		msg := "unknown error"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		b.Errors = append(b.Errors, SourceError{SourceID: r.SourceID, SourceName: r.SourceName, Message: msg})
		return
	}
	b.SuccessCount++
	b.TotalArticles += r.NewArticleCount
}

// Merge adds all counters and errors of another batch
func (b *BatchResult) Merge(other BatchResult) {
	b.SuccessCount += other.SuccessCount
	b.FailedCount += other.FailedCount
	b.TotalArticles += other.TotalArticles
	b.Errors = append(b.Errors, other.Errors...)
}

// SyncMode selects the proxy sync flavor
type SyncMode string

// sync modes
const (
	SyncIncremental SyncMode = "sync"
	SyncRefresh     SyncMode = "refresh"
)

// SyncAckBatch lists remote item ids consumed by the client
type SyncAckBatch struct {
	ItemIDs []string `json:"item_ids"`
}
