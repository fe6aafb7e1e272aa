package auth_test

import (
	"testing"

	"github.com/raulo/crm/internal/auth"
	"github.com/raulo/crm/internal/model"
)

func TestLogin(t *testing.T) {
	user, ok := auth.Login("telecaller@raulo.com", "telecaller123")
	if !ok {
		t.Fatal("expected login to succeed")
	}
	if user.Role != model.RoleTelecaller {
		t.Errorf("role: got %q", user.Role)
	}
	if user.Name != "Telecaller" {
		t.Errorf("name: got %q", user.Name)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	if _, ok := auth.Login("boss@raulo.com", "wrong"); ok {
		t.Error("expected login to fail")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	if _, ok := auth.Login("nobody@raulo.com", "boss123"); ok {
		t.Error("expected login to fail")
	}
}

func TestUserForEmail(t *testing.T) {
	user, ok := auth.UserForEmail("boss@raulo.com")
	if !ok {
		t.Fatal("expected a user")
	}
	if user.Role != model.RoleBoss {
		t.Errorf("role: got %q", user.Role)
	}

	if _, ok := auth.UserForEmail("nobody@raulo.com"); ok {
		t.Error("expected no user for an unknown email")
	}
}
