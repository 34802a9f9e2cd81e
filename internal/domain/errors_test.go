package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "foreign error", err: errors.New("connection reset"), want: KindUnknown},
		{name: "account not found", err: ErrAccountNotFound, want: KindNotFound},
		{name: "wrapped user not found", err: fmt.Errorf("load: %w", ErrUserNotFound), want: KindNotFound},
		{name: "duplicate email", err: ErrDuplicateEmail, want: KindDuplicateEmail},
		{name: "insufficient balance", err: fmt.Errorf("%w: detail", ErrInsufficientBalance), want: KindInsufficientBalance},
		{name: "inactive account", err: ErrInactiveAccount, want: KindInactiveAccount},
		{name: "currency mismatch", err: ErrCurrencyMismatch, want: KindInvalidArgument},
		{name: "same account", err: ErrSameAccount, want: KindInvalidArgument},
		{name: "concurrent modification", err: ErrConcurrentModification, want: KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestKindError_UnwrapsToKind(t *testing.T) {
	if !errors.Is(ErrTransactionNotFound, ErrNotFound) {
		t.Error("expected ErrTransactionNotFound to unwrap to ErrNotFound")
	}
	if errors.Is(ErrTransactionNotFound, ErrAccountNotFound) {
		t.Error("specific not-found errors must stay distinct")
	}
	if ErrSameAccount.Error() != "cannot transfer to same account" {
		t.Errorf("unexpected message %q", ErrSameAccount.Error())
	}
}
