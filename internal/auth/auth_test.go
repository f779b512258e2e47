package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/config"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{})
	return db
}

func TestHandleMe(t *testing.T) {
	db := testDB(t)

	user := models.User{
		GoogleID: "123456",
		Email:    "test@example.com",
		FullName: "Test Trekker",
		Avatar:   "avatar_url",
	}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &MeInput{AuthInput: AuthInput{Cookie: "auth_token=" + token}}
		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}

		if resp.Body.FullName != user.FullName {
			t.Errorf("expected name %s, got %s", user.FullName, resp.Body.FullName)
		}
		if resp.Body.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, resp.Body.Email)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &MeInput{}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthHandler(&config.Config{JWTSecret: "other-secret"}, db)
		token, _ := other.GenerateToken(user.ID)
		input := &MeInput{AuthInput: AuthInput{Cookie: "auth_token=" + token}}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for token signed with a different secret, got nil")
		}
	})
}

func TestRegisterAndEmailLogin(t *testing.T) {
	db := testDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	reg := &RegisterInput{}
	reg.Body.Email = "asha@example.com"
	reg.Body.Password = "correct-horse"
	reg.Body.FullName = "Asha Rawat"

	resp, err := handler.HandleRegister(context.Background(), reg)
	if err != nil {
		t.Fatalf("HandleRegister returned error: %v", err)
	}
	if resp.Body.UserID == 0 {
		t.Error("expected an assigned user id")
	}
	if !strings.Contains(resp.SetCookie, CookieName+"=") {
		t.Errorf("expected a session cookie, got %q", resp.SetCookie)
	}

	// The stored hash must not be the plaintext password.
	var stored models.User
	db.First(&stored, resp.Body.UserID)
	if stored.PasswordHash == reg.Body.Password || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := handler.HandleRegister(context.Background(), reg)
		if err == nil {
			t.Fatal("expected conflict for duplicate email, got nil")
		}
	})

	t.Run("LoginSucceeds", func(t *testing.T) {
		login := &LoginInput{}
		login.Body.Email = "asha@example.com"
		login.Body.Password = "correct-horse"
		resp, err := handler.HandleEmailLogin(context.Background(), login)
		if err != nil {
			t.Fatalf("HandleEmailLogin returned error: %v", err)
		}
		if resp.Body.Email != "asha@example.com" {
			t.Errorf("unexpected session body: %+v", resp.Body)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		login := &LoginInput{}
		login.Body.Email = "asha@example.com"
		login.Body.Password = "wrong-horse"
		if _, err := handler.HandleEmailLogin(context.Background(), login); err == nil {
			t.Fatal("expected error for wrong password, got nil")
		}
	})

	t.Run("GoogleOnlyAccount", func(t *testing.T) {
		db.Create(&models.User{GoogleID: "g-1", Email: "google-only@example.com"})
		login := &LoginInput{}
		login.Body.Email = "google-only@example.com"
		login.Body.Password = "anything"
		if _, err := handler.HandleEmailLogin(context.Background(), login); err == nil {
			t.Fatal("expected error for password login on a Google account, got nil")
		}
	})
}

func TestAuthorizePrefersContextValue(t *testing.T) {
	handler := NewAuthHandler(&config.Config{JWTSecret: "test-secret"}, nil)

	ctx := context.WithValue(context.Background(), UserIDKey, uint(42))
	userID, err := handler.Authorize(ctx, "")
	if err != nil {
		t.Fatalf("Authorize returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42 from context, got %d", userID)
	}
}

func TestCookieValue(t *testing.T) {
	header := "theme=dark; auth_token=abc123; lang=en"
	if got := cookieValue(header, CookieName); got != "abc123" {
		t.Errorf("expected abc123, got %q", got)
	}
	if got := cookieValue(header, "missing"); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}
