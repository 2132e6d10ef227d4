package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span carried by ctx into err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v, ok := ctx.Value(SpanKey).(Span)
	if !ok || v == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v))
}
