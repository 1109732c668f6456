package usecase

import (
	"errors"
	"fmt"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// ErrorKind xato turi
type ErrorKind string

const (
	KindBudgetTooLow  ErrorKind = "BUDGET_TOO_LOW"
	KindPartsNotFound ErrorKind = "PARTS_NOT_FOUND"
	KindIncompatible  ErrorKind = "INCOMPATIBLE_PARTS"
	KindValidation    ErrorKind = "VALIDATION_ERROR"
	KindDataLoading   ErrorKind = "DATA_LOADING_ERROR"
	KindUnknown       ErrorKind = "UNKNOWN_ERROR"
)

// Sentinel errors; every *RecommendationError unwraps to the one matching its kind.
var (
	ErrBudgetTooLow      = errors.New("budget too low")
	ErrPartsNotFound     = errors.New("parts not found")
	ErrIncompatibleParts = errors.New("incompatible parts")
	ErrValidation        = errors.New("invalid requirements")
	ErrDataLoading       = errors.New("catalog loading failed")
)

var kindSentinels = map[ErrorKind]error{
	KindBudgetTooLow:  ErrBudgetTooLow,
	KindPartsNotFound: ErrPartsNotFound,
	KindIncompatible:  ErrIncompatibleParts,
	KindValidation:    ErrValidation,
	KindDataLoading:   ErrDataLoading,
}

// RecommendationError engine xatosi
type RecommendationError struct {
	Kind     ErrorKind
	Category entity.Category
	Message  string
	Err      error
}

func (e *RecommendationError) Error() string {
	msg := string(e.Kind)
	if e.Category != "" {
		msg += " [" + string(e.Category) + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *RecommendationError) Unwrap() []error {
	var errs []error
	if s, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind ErrorKind, cat entity.Category, format string, args ...any) *RecommendationError {
	return &RecommendationError{Kind: kind, Category: cat, Message: fmt.Sprintf(format, args...)}
}

// WrapDataLoading catalog loader xatosini o'rash
func WrapDataLoading(err error, source string) error {
	if err == nil {
		return nil
	}
	return &RecommendationError{Kind: KindDataLoading, Message: source, Err: err}
}

// KindOf error kind of err, KindUnknown when none matches
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var re *RecommendationError
	if errors.As(err, &re) {
		return re.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}

var userMessagesJA = map[ErrorKind]string{
	KindBudgetTooLow:  "設定された予算では適切な構成を作成できません。予算を増やすか、要求スペックを下げてください。",
	KindPartsNotFound: "指定された条件に合うパーツが見つかりません。条件を変更して再度お試しください。",
	KindIncompatible:  "パーツ間の互換性に問題があります。システムが自動で調整を試みましたが、構成を確認してください。",
	KindDataLoading:   "パーツデータの読み込みに失敗しました。再度お試しください。",
	KindValidation:    "入力された値に問題があります。入力内容を確認してください。",
	KindUnknown:       "予期しないエラーが発生しました。再度お試しください。",
}

var userMessagesEN = map[ErrorKind]string{
	KindBudgetTooLow:  "The budget is too low for a working configuration. Raise the budget or lower the requirements.",
	KindPartsNotFound: "No parts match the given conditions. Change the conditions and try again.",
	KindIncompatible:  "Some parts are not compatible. The configurator tried to adjust them; please review the build.",
	KindDataLoading:   "Failed to load the parts catalog. Please try again.",
	KindValidation:    "Some input values are invalid. Please check the requirements.",
	KindUnknown:       "An unexpected error occurred. Please try again.",
}

// UserMessage foydalanuvchiga ko'rsatiladigan xabar. lang "ja" or "en" (default ja).
func UserMessage(err error, lang string) string {
	kind := KindOf(err)
	if kind == "" {
		return ""
	}
	messages := userMessagesJA
	if lang == "en" {
		messages = userMessagesEN
	}
	if msg, ok := messages[kind]; ok {
		return msg
	}
	return messages[KindUnknown]
}
