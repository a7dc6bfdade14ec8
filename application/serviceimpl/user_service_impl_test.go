package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/infrastructure/postgres"
)

const testJWTSecret = "test-secret"

func newUserService(t *testing.T) (services.UserService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewUserService(postgres.NewUserRepository(db), testJWTSecret, nil), db
}

func TestUserService_Register(t *testing.T) {
	service, db := newUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.Password == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user, got %d", count)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass"}
	if _, err := service.Register(ctx, req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := service.Register(ctx, req); !errors.Is(err, services.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "alice@example.com", password: "s3cret-pass"},
		{name: "wrong password", email: "alice@example.com", password: "nope", wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "s3cret-pass", wantErr: services.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := service.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && token == "" {
				t.Error("expected a token on successful login")
			}
		})
	}
}

func TestUserService_GenerateJWT_Claims(t *testing.T) {
	service, _ := newUserService(t)

	user, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tokenString, err := service.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not validate: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID.String() {
		t.Errorf("expected user_id %s, got %v", user.ID, claims["user_id"])
	}
	if claims["email"] != user.Email {
		t.Errorf("expected email %s, got %v", user.Email, claims["email"])
	}
}

func TestUserService_ResetPassword(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "old-pass",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := service.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email:       "alice@example.com",
		NewPassword: "new-pass",
	})
	if err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	if _, _, err := service.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "old-pass"}); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Error("old password must stop working after reset")
	}
	if _, _, err := service.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "new-pass"}); err != nil {
		t.Errorf("new password login error = %v", err)
	}
}

func TestUserService_ResetPassword_UnknownEmail(t *testing.T) {
	service, _ := newUserService(t)

	err := service.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Email:       "nobody@example.com",
		NewPassword: "whatever-pass",
	})
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListUsers_HidesPasswordHashes(t *testing.T) {
	service, _ := newUserService(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		if _, err := service.Register(ctx, &dto.RegisterRequest{
			Name:     name,
			Email:    name + "@example.com",
			Password: "s3cret-pass",
		}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	directory, err := service.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(directory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(directory))
	}
	for _, entry := range directory {
		if entry.Name == "" || entry.Email == "" {
			t.Errorf("incomplete directory entry: %+v", entry)
		}
	}
}
