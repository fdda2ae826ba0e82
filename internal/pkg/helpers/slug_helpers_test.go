package helpers

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"2026 Satranç Sonuçları", "2026-satranc-sonuclari"},
		{"Güreş Şampiyonası", "gures-sampiyonasi"},
		{"  Öğrenci   Kayıtları  ", "ogrenci-kayitlari"},
		{"İstanbul", "istanbul"},
		{"Basketbol!!!", "basketbol"},
		{"---", ""},
		{"Voleybol (Yıldız Kız)", "voleybol-yildiz-kiz"},
		{"a--b", "a-b"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
