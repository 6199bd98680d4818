package ports

type OpMetrics interface {
	RecordSuccess(op string)
	RecordFailure(op string)
}
