package canvasray

import "testing"

// setupBenchCanvas builds a canvas with n elements spread across 10 panels.
func setupBenchCanvas(n int) *Canvas {
	c := NewCanvas("bench")
	panels := make([]*Element, 10)
	for i := range panels {
		panels[i] = NewContainer("panel")
		c.Root().AddChild(panels[i])
	}
	for i := 0; i < n; i++ {
		e := NewElement("el", 10, 10)
		e.X = float64(i%100) * 12
		e.Y = float64(i/100) * 12
		if i%3 == 0 {
			e.AddTag("Button")
		}
		panels[i%10].AddChild(e)
	}
	return c
}

// --- Transform Benchmarks ---

func BenchmarkTransform_10000Dirty(b *testing.B) {
	c := setupBenchCanvas(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		markSubtreeDirty(c.Root())
		updateWorldTransform(c.Root(), identityTransform, false)
	}
}

func BenchmarkTransform_10000Clean(b *testing.B) {
	c := setupBenchCanvas(10000)
	updateWorldTransform(c.Root(), identityTransform, true)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		updateWorldTransform(c.Root(), identityTransform, false)
	}
}

// --- Raycast Benchmarks ---

func BenchmarkRaycast_1000Elements(b *testing.B) {
	c := setupBenchCanvas(1000)
	ev := NewEventSystem().NewPointerEvent(Vec2{X: 500, Y: 50})
	var hits []Hit

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hits = c.Raycast(ev, hits[:0])
	}
}

func BenchmarkHitTester_IsPointerOverTag(b *testing.B) {
	c := setupBenchCanvas(1000)
	ht := c.AttachHitTester(NewHitTester(c, NewEventSystem(), nil))
	pos := Vec2{X: 500, Y: 50}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ht.IsPointerOverTag("Button", pos)
	}
}

func BenchmarkHitTester_CountOverLayerName(b *testing.B) {
	c := setupBenchCanvas(1000)
	ht := c.AttachHitTester(NewHitTester(c, NewEventSystem(), nil))
	pos := Vec2{X: 500, Y: 50}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ht.CountOverLayerName("UI", pos)
	}
}
