package constants

// Stage names a pipeline stage for run reports and logs.
type Stage string

// Stable values (reported in RunReport and log fields).
const (
	StageScrape   Stage = "SCRAPE"   // fetch raw posts per market
	StageOCR      Stage = "OCR"      // image -> text
	StageClassify Stage = "CLASSIFY" // catalog or not
	StageExtract  Stage = "EXTRACT"  // aggregated text -> candidate promotions
	StageMerge    Stage = "MERGE"    // collapse identical validity windows
	StagePersist  Stage = "PERSIST"  // idempotent writes
	StageNotify   Stage = "NOTIFY"   // downstream report
)
