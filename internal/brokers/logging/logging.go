package logging

import (
	"errors"

	pkgerrors "github.com/yungbote/something-core/internal/pkg/errors"
	"github.com/yungbote/something-core/internal/platform/logger"
)

type Broker interface {
	LogError(err error)
	LogCritical(err error)
}

type broker struct {
	log *logger.Logger
}

func NewBroker(baseLog *logger.Logger) Broker {
	return &broker{log: baseLog.With("broker", "LoggingBroker")}
}

func (b *broker) LogError(err error) {
	b.log.Error(err.Error(), fields(err)...)
}

func (b *broker) LogCritical(err error) {
	b.log.Critical(err.Error(), fields(err)...)
}

func fields(err error) []interface{} {
	kv := []interface{}{}
	if category, ok := pkgerrors.CategoryOf(err); ok {
		kv = append(kv, "category", category.String())
	}
	inner := pkgerrors.Inner(err)
	var innerErr *pkgerrors.Error
	if errors.As(inner, &innerErr) {
		kv = append(kv, "code", innerErr.Code, "reason", innerErr.Message)
		if innerErr.HasData() {
			kv = append(kv, "data", innerErr.DataString())
		}
		if cause := innerErr.Unwrap(); cause != nil {
			kv = append(kv, "error", cause.Error())
		}
	} else if inner != nil {
		kv = append(kv, "error", inner.Error())
	}
	return kv
}
