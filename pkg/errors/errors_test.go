package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

type captureHandler struct {
	errs []*LayoutError
}

func (h *captureHandler) Handle(err *LayoutError) {
	h.errs = append(h.errs, err)
}

func TestLayoutErrorFormatting(t *testing.T) {
	err := &LayoutError{
		Op:     "widgets.resolveGeometry",
		Kind:   KindConfig,
		Widget: "sidebar",
		Err:    stderrors.New("no parent reference frame"),
	}
	s := err.Error()
	for _, want := range []string{"widgets.resolveGeometry", "config", "sidebar", "no parent reference frame"} {
		if !strings.Contains(s, want) {
			t.Errorf("Error() = %q, missing %q", s, want)
		}
	}

	// Without a widget name the widget field is omitted.
	err.Widget = ""
	if strings.Contains(err.Error(), "widget=") {
		t.Errorf("Error() = %q, should omit widget field", err.Error())
	}
}

func TestLayoutErrorUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("set dock: %w", ErrNoParent)
	err := &LayoutError{Op: "widgets.SetDock", Kind: KindUsage, Err: wrapped}
	if !stderrors.Is(err, ErrNoParent) {
		t.Error("errors.Is should find ErrNoParent through LayoutError")
	}
}

func TestReportUsesGlobalHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&LayoutError{Op: "test.op", Kind: KindConfig, Err: stderrors.New("boom")})
	Report(nil) // ignored

	if len(h.errs) != 1 {
		t.Fatalf("handler received %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error time")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindUnknown: "unknown",
		KindConfig:  "config",
		KindUsage:   "usage",
		Kind(99):    "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
