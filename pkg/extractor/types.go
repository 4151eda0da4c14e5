package extractor

// StatusScanned is the only response status value that counts as a successful
// deep scan. Anything else, including a missing field, is a failure.
const StatusScanned = "scanned"

type StatusDetail struct {
	StatusCode  *int   `json:"status_code"`
	StatusGroup string `json:"status_group"`
	Error       string `json:"error,omitempty"`
}

// ExtractedRoutesResponse is the payload of POST /extract-website-routes/.
type ExtractedRoutesResponse struct {
	URL             string                  `json:"url"`
	DiscoveredLinks []string                `json:"discovered_links"`
	LinkCount       int                     `json:"link_count"`
	StatusCounts    map[string]int          `json:"status_counts"`
	StatusDetails   map[string]StatusDetail `json:"status_details"`
	Error           string                  `json:"error,omitempty"`
}

type DeepScanRequest struct {
	URL       string `json:"url"`
	WebsiteID string `json:"website_id"`
	PageID    string `json:"page_id"`
}

type RagDocumentSummary struct {
	Text     string                 `json:"text"`
	Metadata map[string]interface{} `json:"metadata"`
}

// DeepScanResponse is the payload of POST /deep-scan-page/. The extracted
// content summaries are passed through to callers untouched; indexing is the
// extraction service's job.
type DeepScanResponse struct {
	Message             string               `json:"message"`
	PageID              string               `json:"page_id"`
	WebsiteID           string               `json:"website_id"`
	ScannedURL          string               `json:"scanned_url"`
	Status              string               `json:"status"`
	RagDocumentsSummary []RagDocumentSummary `json:"rag_documents_summary,omitempty"`
	RagDocumentCount    int                  `json:"rag_document_count,omitempty"`
	RawDataPath         string               `json:"raw_data_path,omitempty"`
	RagIndexPath        string               `json:"rag_index_path,omitempty"`
	ErrorDetail         string               `json:"error_detail,omitempty"`
}

type PendingPage struct {
	PageID string `json:"page_id"`
	URL    string `json:"url"`
}

type DeepScanAllRequest struct {
	WebsiteID    string        `json:"website_id"`
	PendingPages []PendingPage `json:"pending_pages"`
}

type DeepScanAllResponse struct {
	Message          string   `json:"message"`
	WebsiteID        string   `json:"website_id"`
	InitiatedPageIDs []string `json:"initiated_page_ids"`
}
