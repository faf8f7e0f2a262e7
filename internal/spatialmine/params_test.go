package spatialmine

import "testing"

func TestConvertMinSupAbsoluteInt(t *testing.T) {
	got, err := convertMinSup(5, 100)
	if err != nil || got != 5 {
		t.Fatalf("got (%d, %v), want (5, nil)", got, err)
	}
}

func TestConvertMinSupRelativeFloat(t *testing.T) {
	got, err := convertMinSup(0.3, 10)
	if err != nil || got != 3 {
		t.Fatalf("got (%d, %v), want (3, nil)", got, err)
	}
}

func TestConvertMinSupStringDispatchesOnDecimalPoint(t *testing.T) {
	rel, err := convertMinSup("0.5", 10)
	if err != nil || rel != 5 {
		t.Fatalf("relative string: got (%d, %v), want (5, nil)", rel, err)
	}
	abs, err := convertMinSup("7", 10)
	if err != nil || abs != 7 {
		t.Fatalf("absolute string: got (%d, %v), want (7, nil)", abs, err)
	}
}

func TestConvertMinSupRejectsUnparseable(t *testing.T) {
	if _, err := convertMinSup("not-a-number", 10); err == nil {
		t.Fatalf("expected an error for unparseable minSup")
	}
}

func TestValidateParamsRejectsNonPositiveMinSup(t *testing.T) {
	if err := validateParams(0, Unbounded, Unbounded); err == nil {
		t.Fatalf("expected an error for minSup <= 0")
	}
}

func TestValidateParamsRejectsNegativeBounds(t *testing.T) {
	if err := validateParams(1, -1, Unbounded); err == nil {
		t.Fatalf("expected an error for negative maxLength")
	}
	if err := validateParams(1, Unbounded, -1); err == nil {
		t.Fatalf("expected an error for negative maxGap")
	}
}
