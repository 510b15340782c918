package trialcalc

import (
	"context"
	"testing"
)

// BenchmarkCompute 闭式计算性能基准测试
func BenchmarkCompute(b *testing.B) {
	b.Run("compute", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Compute(0.01, 100); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("format", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = FormatResult(63.39676587267709)
		}
	})
}

// BenchmarkCalculatorExecute 计算器执行性能基准测试
func BenchmarkCalculatorExecute(b *testing.B) {
	calc := NewCalculatorWithLogger(NewSilentLogger())

	b.Run("percentage", func(b *testing.B) {
		in := NewPercentage("12.5")
		for i := 0; i < b.N; i++ {
			if _, ok := calc.Execute(in, "10"); !ok {
				b.Fatal("no result")
			}
		}
	})

	b.Run("fraction", func(b *testing.B) {
		in := NewFraction("1", "6")
		for i := 0; i < b.N; i++ {
			if _, ok := calc.Execute(in, "4"); !ok {
				b.Fatal("no result")
			}
		}
	})

	b.Run("rejected", func(b *testing.B) {
		in := NewPercentage("abc")
		for i := 0; i < b.N; i++ {
			calc.Execute(in, "4")
		}
	})
}

// BenchmarkSecureRandomGenerator 随机数生成性能基准测试
func BenchmarkSecureRandomGenerator(b *testing.B) {
	for _, size := range []int{1, 64, DefaultRandomGeneratorCacheSize} {
		gen := NewSecureRandomGenerator(size)
		b.Run(formatCacheSize(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := gen.GenerateFloat(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func formatCacheSize(size int) string {
	switch size {
	case 1:
		return "no_cache"
	case DefaultRandomGeneratorCacheSize:
		return "default_cache"
	default:
		return "small_cache"
	}
}

// BenchmarkSimulatorRun 模拟性能基准测试
func BenchmarkSimulatorRun(b *testing.B) {
	sim := NewSimulator(DefaultSimulationMaxSteps, NewSilentLogger())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sim.Run(ctx, 0.1, 10, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
