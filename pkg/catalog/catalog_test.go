package catalog

import (
	"strings"
	"testing"
)

func TestBuildByName(t *testing.T) {
	sym, err := Build("speaker", nil)
	if err != nil {
		t.Fatalf("Build(speaker) failed: %v", err)
	}
	for _, want := range []string{"in1", "in2"} {
		if _, ok := sym.Anchors()[want]; !ok {
			t.Errorf("speaker missing anchor %q", want)
		}
	}
}

func TestBuildUnknownSymbol(t *testing.T) {
	_, err := Build("flux-capacitor", nil)
	if err == nil {
		t.Fatal("expected error for unknown symbol")
	}
	if !strings.Contains(err.Error(), "unknown symbol") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnknownOptionRejected(t *testing.T) {
	_, err := Build("motor", Options{"bogus": "1"})
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if !strings.Contains(err.Error(), `unknown option "bogus"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBadOptionValue(t *testing.T) {
	_, err := Build("transformer", Options{"t1": "four"})
	if err == nil {
		t.Fatal("expected parse error for t1=four")
	}
	if !strings.Contains(err.Error(), `option "t1"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no registered symbols")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	for _, want := range []string{"audiojack", "dualtriode", "transformer"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("catalog missing %q", want)
		}
	}
}

func TestHeaterOptionDrawsFilaments(t *testing.T) {
	plain, err := Build("triode", nil)
	if err != nil {
		t.Fatalf("Build(triode) failed: %v", err)
	}
	heated, err := Build("triode", Options{"heaters": ""})
	if err != nil {
		t.Fatalf("Build(triode heaters) failed: %v", err)
	}
	if len(heated.Segments()) <= len(plain.Segments()) {
		t.Errorf("heaters option added no segments: %d vs %d",
			len(heated.Segments()), len(plain.Segments()))
	}
}

func TestTubeHalfOption(t *testing.T) {
	sym, err := Build("half12ax7", Options{"half": "right"})
	if err != nil {
		t.Fatalf("Build(half12ax7) failed: %v", err)
	}
	for _, want := range []string{"g", "k", "a"} {
		if _, ok := sym.Anchors()[want]; !ok {
			t.Errorf("half triode missing anchor %q", want)
		}
	}
}

func TestAudioJackOptions(t *testing.T) {
	sym, err := Build("audiojack", Options{"ring": "", "ringswitch": "true"})
	if err != nil {
		t.Fatalf("Build(audiojack) failed: %v", err)
	}
	for _, want := range []string{"tip", "ring", "ringswitch", "sleeve"} {
		if _, ok := sym.Anchors()[want]; !ok {
			t.Errorf("jack missing anchor %q", want)
		}
	}
}

func TestTransformerSecondaries(t *testing.T) {
	sym, err := Build("transformer", Options{"secondaries": "2, 3"})
	if err != nil {
		t.Fatalf("Build(transformer) failed: %v", err)
	}
	anchors := sym.Anchors()
	for _, want := range []string{"s1_1", "s2_1", "s1_2", "s2_2"} {
		if _, ok := anchors[want]; !ok {
			t.Errorf("transformer missing anchor %q", want)
		}
	}
	// Plain s1/s2 belong to the single-winding form only.
	for _, bad := range []string{"s1", "s2"} {
		if _, ok := anchors[bad]; ok {
			t.Errorf("transformer has anchor %q, want per-winding names", bad)
		}
	}
}
