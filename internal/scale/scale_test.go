package scale

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinearMap(t *testing.T) {
	s := NewLinear(0, 100, 300, 0)

	tests := []struct {
		in, want float64
	}{
		{0, 300},
		{100, 0},
		{50, 150},
		{110, -30},
	}
	for _, tt := range tests {
		if got := s.Map(tt.in); !approx(got, tt.want) {
			t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLinearMap_DegenerateDomain(t *testing.T) {
	s := NewLinear(30, 30, 200, 0)
	if got := s.Map(30); !approx(got, 100) {
		t.Errorf("degenerate domain should map to range midpoint, got %v", got)
	}
	if got := s.Map(99); !approx(got, 100) {
		t.Errorf("degenerate domain should map every value to the midpoint, got %v", got)
	}
}

func TestLinearMap_NaN(t *testing.T) {
	if got := NewLinear(math.NaN(), 1, 0, 10).Map(0.5); !math.IsNaN(got) {
		t.Errorf("NaN domain should map to NaN, got %v", got)
	}
	if got := NewLinear(0, 1, 0, 10).Map(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NaN value should map to NaN, got %v", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		start, stop float64
		count       int
		want        []float64
	}{
		{0, 10, 10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{50, 60, 10, []float64{50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60}},
		{0, 165, 10, []float64{0, 20, 40, 60, 80, 100, 120, 140, 160}},
		{10, 0, 5, []float64{10, 8, 6, 4, 2, 0}},
		{7, 7, 10, []float64{7}},
	}
	for _, tt := range tests {
		got := Ticks(tt.start, tt.stop, tt.count)
		if len(got) != len(tt.want) {
			t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.start, tt.stop, tt.count, got, tt.want)
			continue
		}
		for i := range got {
			if !approx(got[i], tt.want[i]) {
				t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.start, tt.stop, tt.count, got, tt.want)
				break
			}
		}
	}

	if got := Ticks(math.NaN(), 1, 10); got != nil {
		t.Errorf("NaN bounds should give no ticks, got %v", got)
	}
}

func TestBand(t *testing.T) {
	b := NewBand([]string{"a", "b", "c", "d"}, 0, 100, 0.2, 0.2)

	// step = 100 / (4 - 0.2 + 0.4) = 23.8095...
	step := 100 / 4.2
	if !approx(b.Step(), step) {
		t.Fatalf("Step() = %v, want %v", b.Step(), step)
	}
	if !approx(b.Bandwidth(), step*0.8) {
		t.Errorf("Bandwidth() = %v, want %v", b.Bandwidth(), step*0.8)
	}

	x, ok := b.Map("a")
	if !ok || !approx(x, step*0.2) {
		t.Errorf("Map(a) = %v, %v; want %v", x, ok, step*0.2)
	}
	last, _ := b.Map("d")
	if !approx(last+b.Bandwidth()+step*0.2, 100) {
		t.Errorf("outer padding not symmetric: last band ends at %v", last+b.Bandwidth())
	}

	c, _ := b.Center("b")
	start, _ := b.Map("b")
	if !approx(c, start+b.Bandwidth()/2) {
		t.Errorf("Center(b) = %v", c)
	}

	if _, ok := b.Map("zzz"); ok {
		t.Error("unknown value should not be in the domain")
	}
}

func TestPoint(t *testing.T) {
	p := NewPoint([]string{"HP", "Attack", "Defense", "Sp_Atk", "Sp_Def", "Speed"}, 0, 600, 0.5)

	if p.Bandwidth() != 0 {
		t.Errorf("point scale bandwidth = %v, want 0", p.Bandwidth())
	}
	first, _ := p.Map("HP")
	last, _ := p.Map("Speed")
	if !approx(first, 50) || !approx(last, 550) {
		t.Errorf("point positions = %v..%v, want 50..550", first, last)
	}
}

func TestBand_Empty(t *testing.T) {
	b := NewBand(nil, 0, 100, 0.2, 0.2)
	if len(b.Domain()) != 0 {
		t.Errorf("empty band should have empty domain")
	}
}

func TestPalette(t *testing.T) {
	domain := make([]string, 12)
	for i := range domain {
		domain[i] = string(rune('A' + i))
	}
	p := NewPalette(domain, nil)

	if got := p.Color("A"); got != Category10[0] {
		t.Errorf("Color(A) = %s, want %s", got, Category10[0])
	}
	if got := p.Color("K"); got != Category10[0] {
		t.Errorf("palette should wrap after ten colours, got %s", got)
	}
	if p.Color("C") != p.Color("C") {
		t.Error("colours must be stable")
	}

	q := NewPalette([]string{"x"}, []string{"#000000"})
	if q.Color("new") != "#000000" {
		t.Error("unknown categories should extend the domain")
	}
}
