package instrument

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGetCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))

	ctx = SetCorrelationID(ctx, "abc-123")
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))
}

func TestMaskAttrTopLevelKey(t *testing.T) {
	keys := buildMaskKeys([]string{"password", " OTP "})

	got := maskAttr(slog.String("password", "hunter2"), keys)
	assert.Equal(t, "***", got.Value.String())

	got = maskAttr(slog.String("otp", "123456"), keys)
	assert.Equal(t, "***", got.Value.String())

	got = maskAttr(slog.String("email", "a@b.c"), keys)
	assert.Equal(t, "a@b.c", got.Value.String())
}

func TestMaskAttrNestedJSON(t *testing.T) {
	keys := buildMaskKeys([]string{"password"})

	got := maskAttr(slog.String("body", `{"email":"a@b.c","password":"hunter2"}`), keys)
	assert.JSONEq(t, `{"email":"a@b.c","password":"***"}`, got.Value.String())
}

func TestMaskAttrMapValue(t *testing.T) {
	keys := buildMaskKeys([]string{"code"})

	got := maskAttr(slog.Any("payload", map[string]any{
		"email": "a@b.c",
		"code":  "654321",
	}), keys)

	masked, ok := got.Value.Any().(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "***", masked["code"])
	assert.Equal(t, "a@b.c", masked["email"])
}
