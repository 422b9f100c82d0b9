package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studentportal/internal/auth"
	"studentportal/internal/student"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Roll string `json:"roll" binding:"required"`
		Pin  string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	roll, err := s.svc.Login(c.Request.Context(), req.Roll, req.Pin)
	if err != nil {
		if errors.Is(err, student.ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid roll or PIN"})
			return
		}
		storeError(c, err)
		return
	}

	token, _, err := auth.Issue(roll, s.cfg.JWTSigningKey, s.cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token issue failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) profile(c *gin.Context) {
	roll := c.GetString(auth.RollKey)
	p, err := s.svc.Profile(c.Request.Context(), roll)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Student not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) photo(c *gin.Context) {
	path, err := s.svc.PhotoFile(c.Request.Context(), c.Param("roll"))
	if err != nil {
		switch {
		case errors.Is(err, student.ErrPhotoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Photo not found"})
		case errors.Is(err, student.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found on server"})
		default:
			storeError(c, err)
		}
		return
	}
	c.File(path)
}

func (s *Server) attendance(c *gin.Context) {
	roll := c.GetString(auth.RollKey)
	records, err := s.svc.Attendance(c.Request.Context(), roll)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) forgotPin(c *gin.Context) {
	var req struct {
		Roll   string `json:"roll"`
		DOB    string `json:"dob"`
		NewPin string `json:"new_pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	err := s.svc.ResetPIN(c.Request.Context(), req.Roll, req.DOB, req.NewPin)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "PIN reset successful"})
	case errors.Is(err, student.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing fields"})
	case errors.Is(err, student.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Student not found"})
	case errors.Is(err, student.ErrDOBMismatch):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "DOB does not match"})
	default:
		storeError(c, err)
	}
}

// storeError surfaces a store failure as a generic 500. Connections and
// statements are already released by the time the error reaches here.
func storeError(c *gin.Context, err error) {
	log.Printf("store error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
}
