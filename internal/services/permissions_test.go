package services_test

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"taskboard/backend/internal/models"
	"taskboard/backend/internal/services"
)

func TestIsAdmin(t *testing.T) {
	admin := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleAdmin, Authenticated: true}
	normal := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleNormal, Authenticated: true}

	assert.True(t, services.IsAdmin(admin))
	assert.False(t, services.IsAdmin(normal))
	assert.False(t, services.IsAdmin(models.Anonymous))
}

func TestIsAuthenticated(t *testing.T) {
	actor := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleNormal, Authenticated: true}

	assert.True(t, services.IsAuthenticated(actor))
	assert.False(t, services.IsAuthenticated(models.Anonymous))
}

func TestIsCommentOwner(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	comment := &models.Comment{FromUserID: ownerID}

	owner := models.Actor{ID: ownerID, Role: models.RoleNormal, Authenticated: true}
	stranger := models.Actor{ID: uuid.Must(uuid.NewV4()), Role: models.RoleAdmin, Authenticated: true}

	assert.True(t, services.IsCommentOwner(owner, comment))
	assert.False(t, services.IsCommentOwner(stranger, comment), "admins get no special treatment")
	assert.False(t, services.IsCommentOwner(models.Anonymous, comment))
}
