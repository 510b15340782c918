package trialcalc

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 错误代码常量
const (
	// 系统级错误 (1000-1999)
	ErrCodeSystem        ErrorCode = "TRIALCALC_1000"
	ErrCodeConfigInvalid ErrorCode = "TRIALCALC_1001"
	ErrCodeConfigLoad    ErrorCode = "TRIALCALC_1002"

	// 输入错误 (2000-2999)
	ErrCodeInvalidNumber     ErrorCode = "TRIALCALC_2000"
	ErrCodeNonFiniteInput    ErrorCode = "TRIALCALC_2001"
	ErrCodeInvalidPercentage ErrorCode = "TRIALCALC_2002"
	ErrCodeZeroDenominator   ErrorCode = "TRIALCALC_2003"
	ErrCodeInvalidMode       ErrorCode = "TRIALCALC_2004"
	ErrCodeNilInput          ErrorCode = "TRIALCALC_2005"

	// 模拟错误 (3000-3999)
	ErrCodeInvalidSimulation     ErrorCode = "TRIALCALC_3000"
	ErrCodeSimulationTooLarge    ErrorCode = "TRIALCALC_3001"
	ErrCodeSimulationInterrupted ErrorCode = "TRIALCALC_3002"
	ErrCodeRandomSource          ErrorCode = "TRIALCALC_3003"
)

// ErrorSeverity 错误严重程度
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
)

// CalcError is the error type returned by every fallible operation in this package.
// The With* helpers return a modified copy, so the predefined errors below stay untouched.
type CalcError struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Details   string         `json:"details,omitempty"`
	Severity  ErrorSeverity  `json:"severity"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Error 实现 error 接口
func (e *CalcError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap 接口
func (e *CalcError) Unwrap() error { return e.Cause }

// Is matches any *CalcError carrying the same code.
func (e *CalcError) Is(target error) bool {
	if t, ok := target.(*CalcError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *CalcError) clone() *CalcError {
	cp := *e
	cp.Metadata = maps.Clone(e.Metadata)
	cp.Timestamp = time.Now()
	return &cp
}

// WithCause 添加原因错误
func (e *CalcError) WithCause(cause error) *CalcError {
	cp := e.clone()
	cp.Cause = cause
	return cp
}

// WithDetails 添加详细信息
func (e *CalcError) WithDetails(details string) *CalcError {
	cp := e.clone()
	cp.Details = details
	return cp
}

// WithOperation 添加操作信息
func (e *CalcError) WithOperation(operation string) *CalcError {
	cp := e.clone()
	cp.Operation = operation
	return cp
}

// WithMetadata 添加元数据
func (e *CalcError) WithMetadata(key string, value any) *CalcError {
	cp := e.clone()
	if cp.Metadata == nil {
		cp.Metadata = make(map[string]any)
	}
	cp.Metadata[key] = value
	return cp
}

// NewError 创建新的错误
func NewError(code ErrorCode, message string) *CalcError {
	return &CalcError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
	}
}

// NewInputError creates a low severity error for rejected user input.
func NewInputError(code ErrorCode, message string) *CalcError {
	err := NewError(code, message)
	err.Severity = SeverityLow
	return err
}

// NewCriticalError 创建严重错误
func NewCriticalError(code ErrorCode, message string) *CalcError {
	err := NewError(code, message)
	err.Severity = SeverityCritical
	return err
}

// 预定义的错误实例
var (
	// 系统级错误
	ErrSystemError   = NewCriticalError(ErrCodeSystem, "system error occurred")
	ErrConfigInvalid = NewCriticalError(ErrCodeConfigInvalid, "configuration is invalid")
	ErrConfigLoad    = NewCriticalError(ErrCodeConfigLoad, "failed to load configuration")

	// 输入错误
	ErrInvalidNumber     = NewInputError(ErrCodeInvalidNumber, "value is not a number")
	ErrNonFiniteInput    = NewInputError(ErrCodeNonFiniteInput, "value is not a finite number")
	ErrInvalidPercentage = NewInputError(ErrCodeInvalidPercentage, "percentage cannot be normalized")
	ErrZeroDenominator   = NewInputError(ErrCodeZeroDenominator, "denominator cannot be zero")
	ErrInvalidMode       = NewInputError(ErrCodeInvalidMode, "unknown probability input mode")
	ErrNilInput          = NewInputError(ErrCodeNilInput, "probability input is missing")

	// 模拟错误
	ErrInvalidSimulation     = NewError(ErrCodeInvalidSimulation, "invalid simulation parameters")
	ErrSimulationTooLarge    = NewError(ErrCodeSimulationTooLarge, "simulation exceeds the step limit")
	ErrSimulationInterrupted = NewError(ErrCodeSimulationInterrupted, "simulation interrupted")
	ErrRandomSource          = NewCriticalError(ErrCodeRandomSource, "random source failed")
)

// LogError writes err to logger at a level derived from its severity.
// Errors that are not *CalcError are logged as errors.
func LogError(logger Logger, err error) {
	if logger == nil || err == nil {
		return
	}

	var calcErr *CalcError
	if !errors.As(err, &calcErr) {
		logger.Error("Unexpected error: %v", err)
		return
	}

	switch calcErr.Severity {
	case SeverityCritical:
		logger.Error("Critical error occurred: %s", calcErr.Error())
	case SeverityHigh, SeverityMedium:
		logger.Error("Error occurred: %s", calcErr.Error())
	case SeverityLow:
		logger.Debug("Input rejected: %s", calcErr.Error())
	default:
		logger.Error("Unknown severity error: %s", calcErr.Error())
	}
}
