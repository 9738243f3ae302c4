package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/service" // Use cases

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,alphanum,min=3,max=150"` // Letters and digits only
	Password  string `json:"password" binding:"required,min=8,max=72"`           // bcrypt reads at most 72 bytes
	Email     string `json:"email" binding:"omitempty,email,max=254"`            // Optional contact email
	FirstName string `json:"first_name" binding:"max=150"`                       // Given name
	LastName  string `json:"last_name" binding:"max=150"`                        // Family name
	UserType  string `json:"user_type" binding:"omitempty,oneof=customer admin"` // Defaults to customer
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RefreshRequest is the body of POST /token/refresh
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"` // Refresh token from login
}

// RegisterHandler creates a user account
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err) // If binding fails, return bad request
			return
		}
		user, err := auth.Register(c.Request.Context(), service.RegisterInput{
			Username:  req.Username,
			Password:  req.Password,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			UserType:  req.UserType,
			AdminKey:  c.GetHeader("X-Admin-Key"), // Only checked for admin registrations
		})
		if err != nil {
			respondError(c, err, "Registration")
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns an access/refresh token pair
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err) // If binding fails, return bad request
			return
		}
		pair, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err, "Login")
			return
		}
		c.JSON(http.StatusOK, pair) // Return the tokens
	}
}

// RefreshHandler exchanges a refresh token for a new access token
func RefreshHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		access, err := auth.Refresh(c.Request.Context(), req.Refresh)
		if err != nil {
			respondError(c, err, "Token refresh")
			return
		}
		c.JSON(http.StatusOK, gin.H{"access": access})
	}
}
