package graphics

import (
	"reflect"
	"testing"
)

func TestScan_IncludegraphicsWithoutExtension(t *testing.T) {
	got := Scan(`\includegraphics{plot}`)
	want := []string{"plot.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_IncludegraphicsWithOptions(t *testing.T) {
	got := Scan(`\includegraphics[width=0.8\textwidth]{results/fig1}`)
	want := []string{"results/fig1.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_ExplicitPDFExtensionKept(t *testing.T) {
	got := Scan(`\includegraphics{chart.pdf}`)
	want := []string{"chart.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_NonPDFExtensionDropped(t *testing.T) {
	if got := Scan(`\includegraphics{diagram.png}`); len(got) != 0 {
		t.Errorf("expected no candidates for a .png reference, got %v", got)
	}
}

func TestScan_UppercaseExtensionAccepted(t *testing.T) {
	got := Scan(`\includegraphics{PLOT.PDF}`)
	want := []string{"PLOT.PDF"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_CommandCaseInsensitive(t *testing.T) {
	got := Scan(`\IncludeGraphics{plot}`)
	want := []string{"plot.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_Includepdf(t *testing.T) {
	got := Scan(`\includepdf[pages=-]{appendix}`)
	want := []string{"appendix.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_Pdfximage(t *testing.T) {
	got := Scan(`\pdfximage{raw_image}`)
	want := []string{"raw_image.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_CaptionHeuristic(t *testing.T) {
	got := Scan(`\caption{Latency distribution, see run-42_final.pdf for raw data}`)
	want := []string{"run-42_final.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_CaptionWithoutPDFToken(t *testing.T) {
	if got := Scan(`\caption{Mean error over ten trials}`); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestScan_WhitespaceTrimmed(t *testing.T) {
	got := Scan(`\includegraphics{ plot }`)
	want := []string{"plot.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_DottedDirectoryStillGainsExtension(t *testing.T) {
	// The directory name carries a dot but the basename has no extension.
	got := Scan(`\includegraphics{figs.v2/plot}`)
	want := []string{"figs.v2/plot.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_DotfileBasenameGainsExtension(t *testing.T) {
	// A leading dot is part of the name, not an extension separator.
	got := Scan(`\includegraphics{.hidden}`)
	want := []string{".hidden.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScan_DotfileWithRealExtensionDropped(t *testing.T) {
	if got := Scan(`\includegraphics{.hidden.png}`); len(got) != 0 {
		t.Errorf("expected no candidates for a non-PDF dotfile, got %v", got)
	}
}

func TestScan_MultipleReferences(t *testing.T) {
	content := `
\includegraphics{one}
\includegraphics{two.pdf}
\includepdf{three}
`
	got := Scan(content)
	want := []string{"one.pdf", "two.pdf", "three.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
