package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims whitespace", in: "  jett_main ", want: "jett_main"},
		{name: "case preserved", in: "JettMain", want: "JettMain"},
		{name: "composes combining marks", in: "élise", want: "élise"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
