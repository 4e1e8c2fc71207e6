package health

// EngineProbe exposes the snapshot counters the health checks inspect.
type EngineProbe interface {
	RecordCount() int
	VocabularyTerms() int
}
