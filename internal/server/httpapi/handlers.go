package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postmeapp/postme/internal/common"
	"github.com/postmeapp/postme/internal/server/models"
)

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) listLetters(c *gin.Context) {
	to := c.Query("to")

	letters, err := s.letters.List(c.Request.Context(), to)
	if err != nil {
		if errors.Is(err, common.ErrEmptyUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing 'to' query parameter"})
			return
		}
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	if letters == nil {
		letters = []models.Letter{}
	}
	c.JSON(http.StatusOK, gin.H{"data": letters})
}

func (s *Server) saveLetter(c *gin.Context) {
	var letter models.Letter
	if err := c.ShouldBindJSON(&letter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	if err := s.letters.Save(c.Request.Context(), &letter); err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyUsername),
			errors.Is(err, common.ErrEmptyContent),
			errors.Is(err, common.ErrInvalidColor):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			s.logger.Error(c.Request.Context(), err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "Letter saved", "id", letter.ID, "to", letter.To)
	c.JSON(http.StatusCreated, gin.H{"data": letter})
}

func (s *Server) markLetterRead(c *gin.Context) {
	id := c.Param("id")

	if err := s.letters.MarkRead(c.Request.Context(), id); err != nil {
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) deleteLetter(c *gin.Context) {
	id := c.Param("id")

	if err := s.letters.Delete(c.Request.Context(), id); err != nil {
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) getProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := s.profiles.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrEmptyUsername) {
			c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
			return
		}
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (s *Server) createProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	if err := s.profiles.Create(c.Request.Context(), &profile); err != nil {
		if errors.Is(err, common.ErrEmptyUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	s.logger.Info(c.Request.Context(), "Profile created", "username", profile.Username)
	c.JSON(http.StatusCreated, gin.H{"data": profile})
}
