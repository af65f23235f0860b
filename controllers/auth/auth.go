package authController

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"lexify/config"
	"lexify/database"
	"lexify/middleware"
	"lexify/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type authResponse struct {
	User  models.UserSummary `json:"user"`
	Token string             `json:"token"`
}

// Signup registers a new account and returns a signed token
func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignup").(*struct {
		FullName string `json:"fullName"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	email := strings.ToLower(strings.TrimSpace(reqData.Email))
	username := strings.ToLower(strings.TrimSpace(reqData.Username))

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email already registered!", nil)
	}
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username already taken!", nil)
	}

	hashed, err := hashPassword(reqData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	// Random avatar from the public avatar set
	avatar := fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", rand.Intn(100)+1)

	user := models.User{
		FullName:   strings.TrimSpace(reqData.FullName),
		Username:   username,
		Email:      email,
		Password:   hashed,
		ProfilePic: avatar,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Username, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Account created successfully!", authResponse{
		User:  user.Summary(),
		Token: token,
	})
}

// Login authenticates by email and password
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	db := database.Database.Db

	var user models.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(reqData.Email))).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	if !checkPasswordHash(reqData.Password, user.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Username, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", authResponse{
		User:  user.Summary(),
		Token: token,
	})
}

// Logout exists for client symmetry; tokens are stateless
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Onboard completes a new account's profile. All fields are required so a
// finished profile always has both languages set.
func Onboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedOnboard").(*struct {
		FullName         string `json:"fullName"`
		Bio              string `json:"bio"`
		NativeLanguage   string `json:"nativeLanguage"`
		LearningLanguage string `json:"learningLanguage"`
		Location         string `json:"location"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.FullName = reqData.FullName
	user.Bio = reqData.Bio
	user.NativeLanguage = reqData.NativeLanguage
	user.LearningLanguage = reqData.LearningLanguage
	user.Location = reqData.Location
	user.IsOnboarded = true

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete onboarding!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Onboarding completed!", user.Summary())
}

// Me returns the authenticated user's profile
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}
