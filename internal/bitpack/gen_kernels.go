//go:build ignore

// gen_kernels writes unpack_kernels.go: one unrolled routine per bit width
// 1..16, each decoding 32 values packed low-bit-first into width words.
//
// Usage: go generate ./internal/bitpack
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const (
	maxWidth = 16
	group    = 32
	output   = "unpack_kernels.go"
)

func main() {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by gen_kernels.go; DO NOT EDIT.\n\n")
	buf.WriteString("package bitpack\n\n")
	buf.WriteString("// unpackKernels holds the fixed-width 32-value kernels indexed by bit width.\n")
	buf.WriteString("var unpackKernels = [MaxKernelWidth + 1]func(dst, src []uint32){\n")
	buf.WriteString("\tnil,\n")
	for w := 1; w <= maxWidth; w++ {
		fmt.Fprintf(&buf, "\tunpack%d,\n", w)
	}
	buf.WriteString("}\n")

	for w := 1; w <= maxWidth; w++ {
		writeKernel(&buf, w)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", output, err)
	}
}

func writeKernel(buf *bytes.Buffer, w int) {
	words := "words"
	if w == 1 {
		words = "word"
	}

	fmt.Fprintf(buf, "\n// unpack%d decodes 32 %d-bit values from %d %s.\n", w, w, w, words)
	fmt.Fprintf(buf, "func unpack%d(dst, src []uint32) {\n", w)
	fmt.Fprintf(buf, "\t_ = src[%d]\n", w-1)
	fmt.Fprintf(buf, "\t_ = dst[%d]\n", group-1)

	for i := 0; i < group; i++ {
		fmt.Fprintf(buf, "\tdst[%d] = %s\n", i, kernelExpr(i, w))
	}

	buf.WriteString("}\n")
}

// kernelExpr returns the shift/mask expression extracting value i of width w.
func kernelExpr(i, w int) string {
	bit := i * w
	k := bit / 32
	s := bit % 32
	mask := fmt.Sprintf("%#x", uint32(1)<<w-1)

	switch {
	case s == 0:
		return fmt.Sprintf("src[%d] & %s", k, mask)
	case s+w < 32:
		return fmt.Sprintf("(src[%d] >> %d) & %s", k, s, mask)
	case s+w == 32:
		return fmt.Sprintf("src[%d] >> %d", k, s)
	}

	// straddles src[k] and src[k+1]
	low := 32 - s
	highMask := fmt.Sprintf("%#x", uint32(1)<<(w-low)-1)

	return fmt.Sprintf("(src[%d] >> %d) | ((src[%d] & %s) << %d)", k, s, k+1, highMask, low)
}
