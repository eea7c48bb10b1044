package rle_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/owez/rle"
)

func benchmarkInputs() []struct {
	Name string
	Data []byte
} {
	prng := rand.New(rand.NewSource(48151623))
	random := make([]byte, 64*1024)
	prng.Read(random)

	// Alternating short literal stretches and long runs, roughly what a
	// sparse disk image or padded record stream looks like.
	mixed := make([]byte, 0, 64*1024)
	for len(mixed) < 64*1024 {
		literals := make([]byte, 16)
		prng.Read(literals)
		mixed = append(mixed, literals...)
		mixed = append(mixed, bytes.Repeat([]byte{0}, 240)...)
	}

	return []struct {
		Name string
		Data []byte
	}{
		{"nulls", make([]byte, 64*1024)},
		{"random", random},
		{"mixed", mixed},
	}
}

func BenchmarkCompress(b *testing.B) {
	for _, input := range benchmarkInputs() {
		b.Run(input.Name, func(b *testing.B) {
			b.SetBytes(int64(len(input.Data)))
			for i := 0; i < b.N; i++ {
				rle.Compress(input.Data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for _, input := range benchmarkInputs() {
		packed := rle.Compress(input.Data)
		b.Run(input.Name, func(b *testing.B) {
			b.SetBytes(int64(len(input.Data)))
			for i := 0; i < b.N; i++ {
				_, err := rle.Decompress(packed)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
