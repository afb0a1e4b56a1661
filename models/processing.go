package models

import "encoding/json"

// LedeStatusSuccess is the per-file status reported by the LEDES generation
// step for a successfully converted invoice.
const LedeStatusSuccess = "success"

// ProcessingResults accumulates the responses of the three processing steps.
// The first two are opaque to the client and kept verbatim.
type ProcessingResults struct {
	ProcessInvoices json.RawMessage `json:"process_invoices,omitempty"`
	ExtractMetadata json.RawMessage `json:"extract_metadata,omitempty"`
	GenerateLede    LedeReport      `json:"generate_lede"`
}

// LedeReport is the response of the LEDES generation step.
type LedeReport struct {
	Message string       `json:"message,omitempty"`
	Results []LedeResult `json:"results"`
}

// LedeResult is the outcome of LEDES generation for one uploaded file.
type LedeResult struct {
	FileID       int64  `json:"file_id"`
	Status       string `json:"status"`
	InvoiceName  string `json:"invoice_name,omitempty"`
	LedeXLSXFile string `json:"lede_xlsx_file,omitempty"`
	LedeJSONFile string `json:"lede_json_file,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Succeeded reports whether the file was converted.
func (r LedeResult) Succeeded() bool {
	return r.Status == LedeStatusSuccess
}

// ResultFor returns the first LEDES result for fileID.
func (r LedeReport) ResultFor(fileID int64) (LedeResult, bool) {
	for _, res := range r.Results {
		if res.FileID == fileID {
			return res, true
		}
	}
	return LedeResult{}, false
}
