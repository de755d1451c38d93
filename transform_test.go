package parlor

import "testing"

func TestTransformPointIdentity(t *testing.T) {
	x, y := transformPoint(identityTransform, 12.5, -3)
	if x != 12.5 || y != -3 {
		t.Errorf("identity transform moved point to (%f,%f)", x, y)
	}
}

func TestInvertAffineRoundtrip(t *testing.T) {
	m := [6]float64{0.866, 0.5, -0.5, 0.866, 100, 200} // 30° rotation + translation
	inv := invertAffine(m)

	ox, oy := 42.0, -17.0
	tx, ty := transformPoint(m, ox, oy)
	rx, ry := transformPoint(inv, tx, ty)
	if !approxEqual(rx, ox, 1e-9) || !approxEqual(ry, oy, 1e-9) {
		t.Errorf("roundtrip = (%f,%f), want (%f,%f)", rx, ry, ox, oy)
	}
}

func TestInvertAffineSingular(t *testing.T) {
	singular := [6]float64{0, 0, 0, 0, 5, 5}
	if inv := invertAffine(singular); inv != identityTransform {
		t.Errorf("singular inverse = %v, want identity", inv)
	}
}
