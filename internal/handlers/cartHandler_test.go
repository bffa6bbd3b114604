package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCurrentUserWithoutUID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/users/cart", nil)

	_, err := currentUser(r)
	assert.ErrorIs(t, err, errNoUser)
}

func TestWriteUserErrorDistinguishesAuthFromBackend(t *testing.T) {
	rec := httptest.NewRecorder()
	writeUserError(rec, errNoUser)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A backend failure must not masquerade as a rejected login.
	rec = httptest.NewRecorder()
	writeUserError(rec, mongo.CommandError{Message: "socket was unexpectedly closed"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
