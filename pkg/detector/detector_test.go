package detector

import "testing"

func TestDetectEnglish(t *testing.T) {
	d := New()

	got := d.Detect("It was a bright cold day in April, and the clocks were striking thirteen.")
	if got.Language != "en" {
		t.Errorf("Detect() language = %q, want %q", got.Language, "en")
	}
	if got.Confidence <= 0 {
		t.Errorf("Detect() confidence = %f, want > 0", got.Confidence)
	}
}

func TestDetectUkrainian(t *testing.T) {
	d := New()

	got := d.Detect("Підрахунок частоти слів у тексті за допомогою багатопотокової обробки.")
	if got.Language != "uk" {
		t.Errorf("Detect() language = %q, want %q", got.Language, "uk")
	}
}

func TestDetectEmpty(t *testing.T) {
	d := New()

	got := d.Detect("   \n\t ")
	if got.Language != "unknown" {
		t.Errorf("Detect() language = %q, want %q", got.Language, "unknown")
	}
	if got.Confidence != 0 {
		t.Errorf("Detect() confidence = %f, want 0", got.Confidence)
	}
}
