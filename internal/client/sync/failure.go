package sync

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure so callers can branch without
// matching message strings
type Kind string

const (
	// KindConnectivity - нет сети и нет пригодного кэша
	KindConnectivity Kind = "connectivity"

	// KindRemote - сбой бэкенда/транспорта при номинально живой сети
	KindRemote Kind = "remote"

	// KindAuth - невалидный токен; обходит любой fallback и требует
	// повторной аутентификации
	KindAuth Kind = "auth"

	// KindNotFoundOffline - визит не найден в оффлайн-кэше
	KindNotFoundOffline Kind = "not_found_offline"
)

// Failure is the structured, user-presentable error of the engine.
// Отказы геозоны и дневного лимита ошибками не являются и едут в
// CompleteResult со своими числовыми полями.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (f *Failure) Unwrap() error {
	return f.Err
}

// AsFailure extracts a *Failure from an error chain
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func newFailure(kind Kind, message string, err error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}
