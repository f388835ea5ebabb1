package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestOpRegistry_Register(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		AbsBlock:  func(dst, src []float64) {},
	})
	reg.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		AbsBlock:  func(dst, src []float64) {},
	})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpRegistry_Lookup_Priority(t *testing.T) {
	reg := &OpRegistry{}

	// Registration order differs from priority order on purpose.
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "AVX2 available",
			features: cpu.Features{HasSSE2: true, HasAVX2: true},
			want:     "avx2",
		},
		{
			name:     "NEON available",
			features: cpu.Features{HasNEON: true},
			want:     "neon",
		},
		{
			name:     "no SIMD",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name:     "forced generic",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("Lookup() = %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestOpRegistry_Lookup_NoCompatible(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup() = %q, want nil", entry.Name)
	}
}

func TestOpRegistry_Reset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})
	reg.Reset()

	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("expected 0 entries after Reset, got %d", n)
	}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatal("Lookup after Reset should return nil")
	}
}

func TestOpRegistry_Resolve_FillsFromLowerPriority(t *testing.T) {
	reg := &OpRegistry{}

	var absFrom, mapFrom string
	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		AbsBlock:  func(dst, src []float64) { absFrom = "generic" },
		MapBlock:  func(dst, src []float64, fn func(float64) float64) { mapFrom = "generic" },
	})
	reg.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		AbsBlock:  func(dst, src []float64) { absFrom = "avx2" },
	})

	merged, ok := reg.Resolve(cpu.Features{HasSSE2: true, HasAVX2: true})
	if !ok {
		t.Fatal("Resolve reported no compatible entry")
	}
	if merged.Name != "avx2" {
		t.Fatalf("merged.Name = %q, want avx2", merged.Name)
	}

	merged.AbsBlock(nil, nil)
	merged.MapBlock(nil, nil, nil)
	if absFrom != "avx2" {
		t.Errorf("AbsBlock came from %q, want avx2", absFrom)
	}
	if mapFrom != "generic" {
		t.Errorf("MapBlock came from %q, want generic", mapFrom)
	}
	if merged.SqrtBlock != nil {
		t.Error("SqrtBlock should stay nil when no entry provides it")
	}
}

func TestOpRegistry_Resolve_SkipsUnsupported(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone})
	reg.Register(OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		AbsBlock:  func(dst, src []float64) {},
	})

	merged, ok := reg.Resolve(cpu.Features{ForceGeneric: true})
	if !ok {
		t.Fatal("Resolve reported no compatible entry")
	}
	if merged.Name != "generic" || merged.AbsBlock != nil {
		t.Fatalf("Resolve leaked an unsupported kernel: %+v", merged.Name)
	}

	if _, ok := (&OpRegistry{}).Resolve(cpu.Features{}); ok {
		t.Fatal("Resolve on empty registry should report !ok")
	}
}
