package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventapi/models"
	"eventapi/utils"
)

// POST /auth/login
//
// The 401 message is identical for an unknown username and a wrong
// password, so the endpoint cannot be used to enumerate accounts.
func (d *deps) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed.", "errors": errs})
		return
	}

	user, err := d.users.GetByUsername(req.Username)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Could not authenticate user."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user. Try again later."})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Could not authenticate user."})
		return
	}

	token, err := d.jm.Generate(user.Username, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user. Try again later."})
		return
	}

	if err := d.users.SaveToken(user.ID, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user. Try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
