package models_test

import (
	"testing"
	"time"

	"taskboard/backend/internal/models"

	"github.com/gofrs/uuid"
)

func TestValidRole(t *testing.T) {
	if !models.ValidRole(models.RoleAdmin) {
		t.Error("Expected 'admin' to be a valid role")
	}
	if !models.ValidRole(models.RoleNormal) {
		t.Error("Expected 'normal' to be a valid role")
	}
	if models.ValidRole("superuser") {
		t.Error("Expected 'superuser' to be invalid")
	}
	if models.ValidRole("") {
		t.Error("Expected empty role to be invalid")
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{models.StatusTodo, models.StatusDoing, models.StatusDone} {
		if !models.ValidStatus(status) {
			t.Errorf("Expected '%s' to be a valid status", status)
		}
	}

	for _, status := range []string{"pending", "cancelled", ""} {
		if models.ValidStatus(status) {
			t.Errorf("Expected '%s' to be invalid", status)
		}
	}
}

func TestUser_IsAdmin(t *testing.T) {
	admin := models.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "admin",
		Role:     models.RoleAdmin,
	}
	normal := models.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "alice",
		Role:     models.RoleNormal,
	}

	if !admin.IsAdmin() {
		t.Error("Expected admin user to be admin")
	}
	if normal.IsAdmin() {
		t.Error("Expected normal user to not be admin")
	}
}

func TestActor_Anonymous(t *testing.T) {
	if models.Anonymous.Authenticated {
		t.Error("Expected anonymous actor to be unauthenticated")
	}
	if models.Anonymous.IsAdmin() {
		t.Error("Expected anonymous actor to not be admin")
	}
	if models.Anonymous.ID != uuid.Nil {
		t.Errorf("Expected anonymous actor ID to be nil, got %s", models.Anonymous.ID)
	}
}

func TestActor_IsAdmin(t *testing.T) {
	admin := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleAdmin, Authenticated: true}
	normal := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleNormal, Authenticated: true}
	fake := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleAdmin, Authenticated: false}

	if !admin.IsAdmin() {
		t.Error("Expected authenticated admin actor to be admin")
	}
	if normal.IsAdmin() {
		t.Error("Expected normal actor to not be admin")
	}
	if fake.IsAdmin() {
		t.Error("Expected unauthenticated actor to not be admin")
	}
}

func TestPriorityBounds(t *testing.T) {
	if models.PriorityMin != 1 {
		t.Errorf("Expected PriorityMin 1, got %d", models.PriorityMin)
	}
	if models.PriorityMax != 5 {
		t.Errorf("Expected PriorityMax 5, got %d", models.PriorityMax)
	}
}

func TestMaxCommentLength(t *testing.T) {
	if models.MaxCommentLength != 500 {
		t.Errorf("Expected MaxCommentLength 500, got %d", models.MaxCommentLength)
	}
}

func TestToken_Validation(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	refreshToken := uuid.Must(uuid.NewV4())
	expiresAt := time.Now().Add(24 * time.Hour)

	token := models.Token{
		ID:           uuid.Must(uuid.NewV4()),
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}

	if token.UserID != userID {
		t.Errorf("Expected UserID %s, got %s", userID.String(), token.UserID.String())
	}

	if token.RefreshToken != refreshToken {
		t.Errorf("Expected RefreshToken %s, got %s", refreshToken.String(), token.RefreshToken.String())
	}
}
