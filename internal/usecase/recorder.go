package usecase

import "github.com/iho/nexusbank/internal/domain"

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordUserCreated() {}

func (NopRecorder) RecordAccountCreated(string) {}

func (NopRecorder) RecordTransaction(domain.TransactionType, domain.Money) {}

func (NopRecorder) RecordTransactionFailure(domain.TransactionType, domain.ErrorKind) {}

func recorderOrNop(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return NopRecorder{}
	}
	return m
}
