package model

// Report is one entry in the append-only daily report log.
type Report struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	FileName string `json:"fileName"`
	Uploader string `json:"uploader"`
}
