// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "testing"

func TestCompileBlitShader(t *testing.T) {
	code, err := compileBlitShader()
	if err != nil {
		t.Fatalf("compileBlitShader: %v", err)
	}
	if len(code) < 5 {
		t.Fatalf("SPIR-V has %d words, want a header and body", len(code))
	}
	if code[0] != 0x07230203 {
		t.Errorf("magic = %#08x, want 0x07230203", code[0])
	}
}
