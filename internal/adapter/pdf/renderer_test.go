package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"mealplanner/internal/adapter/pdf"
)

const samplePlan = "Day 1\n- Breakfast: oats with berries\n- Lunch: chicken and rice\n- Dinner: salmon with potatoes"

func TestRender_ProducesPDF(t *testing.T) {
	var r pdf.Renderer
	got, err := r.Render(samplePlan, "Meal Plan (English)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", got[:min(len(got), 8)])
	}
	if !bytes.HasSuffix(bytes.TrimRight(got, "\n"), []byte("%%EOF")) {
		t.Errorf("output does not end with %%%%EOF")
	}
}

func TestRender_Deterministic(t *testing.T) {
	var r pdf.Renderer
	a, err := r.Render(samplePlan, "Meal Plan (English)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := r.Render(samplePlan, "Meal Plan (English)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input must render byte-identical output")
	}
}

func TestRender_DifferentInputDiffers(t *testing.T) {
	var r pdf.Renderer
	a, _ := r.Render(samplePlan, "Meal Plan (English)")
	b, _ := r.Render(samplePlan+"\n- Snack: yogurt", "Meal Plan (English)")
	if bytes.Equal(a, b) {
		t.Error("different body text should change the document")
	}
}

func TestRender_SpanishTextAndOverflow(t *testing.T) {
	// Accented text plus far more lines than fit one page: still exactly
	// one page, no error, overflow clipped.
	body := strings.Repeat("Día 1: desayuno con plátano y café\n", 120)
	var r pdf.Renderer
	got, err := r.Render(body, "Meal Plan (Spanish)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(got, []byte("/Count 1")) {
		t.Error("document should contain exactly one page")
	}
}

func TestRender_EmptyText(t *testing.T) {
	var r pdf.Renderer
	if _, err := r.Render("", "Meal Plan (English)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
