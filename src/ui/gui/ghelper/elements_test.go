package ghelper

import "testing"

func TestButtonClick(t *testing.T) {
	b := NewButton("Shuffle", 10, 10, 100, 40, nil)
	if b.HandleInput(50, 30, true, false) {
		t.Fatal("press alone is not a click")
	}
	if !b.Pressed {
		t.Fatal("expected pressed state")
	}
	if !b.HandleInput(50, 30, false, true) {
		t.Error("release inside should click")
	}
}

func TestButtonReleaseOutsideCancels(t *testing.T) {
	b := NewButton("Reset", 10, 10, 100, 40, nil)
	b.HandleInput(50, 30, true, false)
	if b.HandleInput(500, 300, false, true) {
		t.Error("release outside must not click")
	}
	if b.Pressed {
		t.Error("press should be cancelled")
	}
}

func TestToastLifecycle(t *testing.T) {
	toast := NewToast("Puzzle Solved!", "Amazing work! Want to try again?")
	for i := 0; i < 30 && toast.phase == toastIn; i++ {
		toast.Update(1.0 / 60)
	}
	if toast.phase != toastShow || toast.Alpha < 0.99 {
		t.Fatalf("expected visible toast, phase=%d alpha=%v", toast.phase, toast.Alpha)
	}
	toast.Update(toastHold)
	for i := 0; i < 60 && !toast.Done(); i++ {
		toast.Update(1.0 / 60)
	}
	if !toast.Done() {
		t.Error("toast should finish after fading out")
	}
}

func TestToastStackLimit(t *testing.T) {
	var ts ToastStack
	for i := 0; i < 5; i++ {
		ts.Push("Pieces Shuffled!", "Ready for a new challenge!")
	}
	if ts.Len() != 5 {
		t.Fatalf("expected 5 toasts before update, got %d", ts.Len())
	}
	for i := 0; i < 60; i++ {
		ts.Update(1.0 / 60)
	}
	if ts.Len() != toastMax {
		t.Errorf("expected %d live toasts, got %d", toastMax, ts.Len())
	}
}
