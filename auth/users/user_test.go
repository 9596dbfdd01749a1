package users

import "testing"

func TestRole_CanModerate(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{name: "admin moderates", role: RoleAdmin, want: true},
		{name: "player does not", role: RolePlayer, want: false},
		{name: "zero value does not", role: Role(""), want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.role.CanModerate(); got != tt.want {
				t.Errorf("CanModerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	if !RolePlayer.Valid() || !RoleAdmin.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("moderator").Valid() {
		t.Error("unknown role accepted")
	}
}
