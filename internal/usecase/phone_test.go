package usecase

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"whatsapp:+5511999999999", "+5511999999999"},
		{"+5511999999999", "+5511999999999"},
		{"5511999999999", "+5511999999999"},
		{"whatsapp:+55 11 99999 9999", "+5511999999999"},
		{"  +55 11 99999-9999  ", "+551199999-9999"},
		{"whatsapp:", ""},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.input); got != c.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
