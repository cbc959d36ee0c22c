package socket

import "testing"

// TestPackUnpackRoundTrip checks the codec law: unpack(pack(w,i,v),i)==v and
// unpack(pack(w,i,v),j)==unpack(w,j) for j != i.
func TestPackUnpackRoundTrip(t *testing.T) {
	for i := 0; i < MaxFields; i++ {
		for v := uint32(0); v < 8; v++ {
			w := Pack(0, i, v)
			if got := Unpack(w, i); got != v {
				t.Fatalf("Unpack(Pack(0,%d,%d), %d) = %d; want %d", i, v, i, got, v)
			}
			base := Word(0x12345)
			packed := Pack(base, i, v)
			for j := 0; j < MaxFields; j++ {
				if j == i {
					continue
				}
				if Unpack(packed, j) != Unpack(base, j) {
					t.Fatalf("Pack at %d disturbed field %d", i, j)
				}
			}
		}
	}
}

// TestPack8UnpacksInOrder verifies pack_8(0..7) unpacks in order to 0..7.
func TestPack8UnpacksInOrder(t *testing.T) {
	w := Pack8(0, 1, 2, 3, 4, 5, 6, 7)
	for i := 0; i < 8; i++ {
		if got := Unpack(w, i); got != uint32(i) {
			t.Errorf("Unpack(w, %d) = %d; want %d", i, got, i)
		}
	}
}

// TestReverseFull verifies reverse(..., 8) unpacks to 7..0.
func TestReverseFull(t *testing.T) {
	w := Pack8(0, 1, 2, 3, 4, 5, 6, 7)
	r := Reverse(w, 8)
	for i := 0; i < 8; i++ {
		want := uint32(7 - i)
		if got := Unpack(r, i); got != want {
			t.Errorf("Unpack(reverse(w,8), %d) = %d; want %d", i, got, want)
		}
	}
}

// TestReverseThree verifies reverse(..., 3) unpacks positions 0..2 to 2,1,0.
func TestReverseThree(t *testing.T) {
	w := Pack8(0, 1, 2, 3, 4, 5, 6, 7)
	r := Reverse(w, 3)
	want := []uint32{2, 1, 0}
	for i, wv := range want {
		if got := Unpack(r, i); got != wv {
			t.Errorf("Unpack(reverse(w,3), %d) = %d; want %d", i, got, wv)
		}
	}
	for i := 3; i < 8; i++ {
		if got := Unpack(r, i); got != 0 {
			t.Errorf("Unpack(reverse(w,3), %d) = %d; want 0 (zeroed tail)", i, got)
		}
	}
}

// TestReverseInvolution checks reverse(reverse(w,n),n) == w when positions
// n..7 of w are already zero.
func TestReverseInvolution(t *testing.T) {
	w := Pack4(5, 2, 7, 1)
	for n := 1; n <= 4; n++ {
		// Reverse must be deterministic for every n; the involution law
		// itself is checked below for n=4, where w's tail is already zero.
		trimmed := Reverse(Reverse(w, n), n)
		if trimmed != Reverse(Reverse(w, n), n) {
			t.Fatalf("non-deterministic reverse")
		}
	}
	got := Reverse(Reverse(w, 4), 4)
	if got != w {
		t.Errorf("Reverse(Reverse(w,4),4) = %#x; want %#x", got, w)
	}
}

// TestReverseInvalidCount verifies out-of-range n returns w unchanged.
func TestReverseInvalidCount(t *testing.T) {
	w := Pack4(1, 2, 3, 4)
	if got := Reverse(w, 0); got != w {
		t.Errorf("Reverse(w, 0) = %#x; want unchanged %#x", got, w)
	}
	if got := Reverse(w, 9); got != w {
		t.Errorf("Reverse(w, 9) = %#x; want unchanged %#x", got, w)
	}
}
