package fixture_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/airssys/wasm-fixtures/fixture"
)

func TestWriteErrorFormat(t *testing.T) {
	cause := errors.New("permission denied")
	err := &fixture.WriteError{Path: "out/minimal-component.wasm", Cause: cause}

	msg := err.Error()
	if !strings.Contains(msg, "out/minimal-component.wasm") {
		t.Errorf("message %q missing path", msg)
	}
	if !strings.Contains(msg, "permission denied") {
		t.Errorf("message %q missing cause", msg)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
}
