package domain

type MetricsCollector interface {
	RecordStored(t ProxyType)
	RecordRejected(t ProxyType, reason string)
	RecordSubmission()
	RecordWorkerStart(workerID string)
	RecordWorkerStop(workerID string)
}
