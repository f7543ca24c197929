package dla

import "testing"

func TestDisplayEncodesSeedAndAges(t *testing.T) {
	cfg := testConfig()
	e := MustNew(cfg)

	mid := cfg.Size / 2
	if got := e.Cells()[mid*cfg.Size+mid]; got != displaySeed {
		t.Fatalf("seed cell displays %d, expected %d", got, displaySeed)
	}

	e.Run()

	cells := e.Cells()
	lat := e.Lattice().Cells()
	deposits := 0
	for i := range cells {
		switch {
		case lat[i] == 0 && cells[i] != displayEmpty:
			t.Fatalf("empty cell %d displays %d", i, cells[i])
		case lat[i] != 0 && cells[i] == displayEmpty:
			t.Fatalf("occupied cell %d displays as empty", i)
		}
		if cells[i] >= displayAgeFirst {
			deposits++
		}
	}
	if deposits != e.Stats().Deposited {
		t.Fatalf("%d age-encoded cells for %d deposits", deposits, e.Stats().Deposited)
	}
}

func TestPaletteCoversEncoding(t *testing.T) {
	e := MustNew(testConfig())
	palette := e.Palette()
	if len(palette) != 256 {
		t.Fatalf("palette has %d entries", len(palette))
	}
	if palette[displayEmpty] == palette[displaySeed] {
		t.Fatal("background and seed colors are identical")
	}
	if palette[displayAgeFirst] == palette[displayAgeLast] {
		t.Fatal("age ramp endpoints are identical")
	}
}

func TestReleaseMaskMatchesMode(t *testing.T) {
	cfg := testConfig()
	cfg.Size = 5

	central := MustNew(cfg)
	mask := central.ReleaseMask()
	wantRing := 4*5 - 4
	count := 0
	for _, v := range mask {
		if v > 0 {
			count++
		}
	}
	if count != wantRing {
		t.Fatalf("central release mask marks %d cells, expected %d", count, wantRing)
	}

	cfg.Mode = ModeSurface
	surface := MustNew(cfg)
	mask = surface.ReleaseMask()
	for x := 0; x < 5; x++ {
		if mask[x] == 0 {
			t.Fatalf("surface release mask misses top cell %d", x)
		}
	}
	for i := 5; i < len(mask); i++ {
		if mask[i] != 0 {
			t.Fatalf("surface release mask marks non-top cell %d", i)
		}
	}
}
