package ports

// IntentMetrics counts player intents at the orchestrator boundary.
type IntentMetrics interface {
	RecordAccepted(intentType string)
	RecordRejected(intentType string)
}
