package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := &MotionError{
		Op:   "easing.NewCubicBezier",
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("x1 out of range"),
	}
	want := "easing.NewCubicBezier [invalid_argument]: x1 out of range"
	if got := err.Error(); got != want {
		t.Errorf("MotionError.Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid_argument"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindState, "state"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWrapAndIsKind(t *testing.T) {
	if Wrap("op", KindRender, nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
	base := fmt.Errorf("raster failed")
	err := fmt.Errorf("frame 3: %w", Wrap("canvas.DrawFrame", KindRender, base))
	if !IsKind(err, KindRender) {
		t.Error("expected IsKind(err, KindRender) to be true")
	}
	if IsKind(err, KindConfig) {
		t.Error("expected IsKind(err, KindConfig) to be false")
	}
	if !Is(err, base) {
		t.Error("expected wrapped error to match base")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "canvas.DrawFrame"
	want = "panic in canvas.DrawFrame: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *MotionError
	handler := &testHandler{
		onError: func(err *MotionError) {
			captured = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&MotionError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad yaml"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportErrorWrapsPlainErrors(t *testing.T) {
	var captured *MotionError
	handler := &testHandler{
		onError: func(err *MotionError) {
			captured = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportError("render.frame", fmt.Errorf("disk full"))
	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "render.frame" || captured.Kind != KindUnknown {
		t.Errorf("captured = %+v, want op render.frame kind unknown", captured)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	var callbackValue any
	func() {
		defer RecoverWithCallback("test.recover", func(r any) { callbackValue = r })
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if callbackValue != "intentional test panic" {
		t.Errorf("callback value = %v", callbackValue)
	}
}

func TestRecoverCapturesPanickingStack(t *testing.T) {
	var captured *PanicError
	oldHandler := Handler()
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer RecoverWithCallback("test.stack", nil)
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if !strings.Contains(captured.StackTrace, "TestRecoverCapturesPanickingStack") {
		t.Errorf("stack trace should name the panicking test, got: %s", captured.StackTrace)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := Handler()
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandlerWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	h.HandleError(&MotionError{Op: "config.Load", Kind: KindConfig, Err: fmt.Errorf("missing")})
	out := buf.String()
	for _, want := range []string{"op=config.Load", "kind=config", "err=missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*MotionError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *MotionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
