package repl

import "testing"

func BenchmarkDetectFunctionCall(b *testing.B) {
	input := "max(min($Speed, 3), sqrt(abs($Offset)), floor("

	for b.Loop() {
		_ = detectFunctionCall(input, len(input))
	}
}

func BenchmarkSignatureOf(b *testing.B) {
	names := []string{"abs", "max", "sqrt", "tan", "missing"}

	for i := 0; b.Loop(); i++ {
		_, _ = signatureOf(names[i%len(names)])
	}
}
