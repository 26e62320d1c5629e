package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log field keys shared by every package.
const (
	FieldUser      = "user"
	FieldRequestID = "request_id"
	FieldProvider  = "llm_provider"
	FieldModel     = "llm_model"
	FieldBackend   = "backend"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RequestFields describe one report request.
func RequestFields(requestID, username string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRequestID, Value: requestID},
		StringField{Key: FieldUser, Value: username},
	)
}

// ProviderFields describe the narrator provider and model.
func ProviderFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// UserFields describe the user a log line is about.
func UserFields(username string) []zap.Field {
	return StringFields(StringField{Key: FieldUser, Value: username})
}
