package userControllers

import (
	"fmt"
	"log"
	"strings"

	"lexify/database"
	"lexify/middleware"
	"lexify/models"

	"github.com/gofiber/fiber/v2"
)

// friendIDsOf returns the caller's friend ids from the join table
func friendIDsOf(userID uint) ([]uint, error) {
	db := database.Database.Db

	var user models.User
	if err := db.Preload("Friends").First(&user, userID).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(user.Friends))
	for _, f := range user.Friends {
		ids = append(ids, f.ID)
	}
	return ids, nil
}

// GetRecommendedUsers lists onboarded users who are neither the caller nor
// already friends with them
func GetRecommendedUsers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	friendIDs, err := friendIDsOf(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	excluded := append([]uint{userID}, friendIDs...)

	var users []models.User
	if err := db.Where("id NOT IN ? AND is_onboarded = ?", excluded, true).
		Limit(20).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recommendations!", nil)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommended users fetched!", summaries)
}

// GetMyFriends lists the caller's friends
func GetMyFriends(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Friends").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	summaries := make([]models.UserSummary, 0, len(user.Friends))
	for _, f := range user.Friends {
		summaries = append(summaries, f.Summary())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friends fetched successfully!", summaries)
}

// SendFriendRequest creates a pending friend request to another user
func SendFriendRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	recipientID := uint(c.Locals("recipientID").(int))

	if recipientID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You can't send a friend request to yourself!", nil)
	}

	db := database.Database.Db

	var recipient models.User
	if err := db.First(&recipient, recipientID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	}

	friendIDs, err := friendIDsOf(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send friend request!", nil)
	}
	for _, id := range friendIDs {
		if id == recipientID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You are already friends with this user!", nil)
		}
	}

	// A request in either direction blocks a new one
	var existing models.FriendRequest
	err = db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, recipientID, recipientID, userID,
	).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A friend request already exists between you and this user!", nil)
	}

	request := models.FriendRequest{
		SenderID:    userID,
		RecipientID: recipientID,
		Status:      models.FriendRequestPending,
	}

	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error creating friend request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send friend request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Friend request sent!", request)
}

// AcceptFriendRequest accepts a pending request addressed to the caller and
// links both users as friends
func AcceptFriendRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	db := database.Database.Db

	var request models.FriendRequest
	if err := db.First(&request, requestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Friend request not found!", nil)
	}

	if request.RecipientID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not authorized to accept this request!", nil)
	}

	if request.Status != models.FriendRequestPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This request has already been handled!", nil)
	}

	request.Status = models.FriendRequestAccepted
	if err := db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept friend request!", nil)
	}

	// Link both directions
	var sender, recipient models.User
	if err := db.First(&sender, request.SenderID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sender not found!", nil)
	}
	if err := db.First(&recipient, request.RecipientID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
	}

	if err := db.Model(&recipient).Association("Friends").Append(&sender); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept friend request!", nil)
	}
	if err := db.Model(&sender).Association("Friends").Append(&recipient); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept friend request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friend request accepted!", nil)
}

type friendRequestResponse struct {
	models.FriendRequest
	Sender    *models.UserSummary `json:"sender,omitempty"`
	Recipient *models.UserSummary `json:"recipient,omitempty"`
}

// GetFriendRequests returns incoming pending requests plus recently accepted
// ones the caller sent
func GetFriendRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var incoming []models.FriendRequest
	if err := db.Where("recipient_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at DESC").
		Find(&incoming).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch friend requests!", nil)
	}

	var accepted []models.FriendRequest
	if err := db.Where("sender_id = ? AND status = ?", userID, models.FriendRequestAccepted).
		Order("updated_at DESC").
		Find(&accepted).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch friend requests!", nil)
	}

	incomingResp := make([]friendRequestResponse, 0, len(incoming))
	for _, req := range incoming {
		item := friendRequestResponse{FriendRequest: req}
		var sender models.User
		if err := db.First(&sender, req.SenderID).Error; err == nil {
			summary := sender.Summary()
			item.Sender = &summary
		}
		incomingResp = append(incomingResp, item)
	}

	acceptedResp := make([]friendRequestResponse, 0, len(accepted))
	for _, req := range accepted {
		item := friendRequestResponse{FriendRequest: req}
		var recipient models.User
		if err := db.First(&recipient, req.RecipientID).Error; err == nil {
			summary := recipient.Summary()
			item.Recipient = &summary
		}
		acceptedResp = append(acceptedResp, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friend requests fetched!", fiber.Map{
		"incomingRequests": incomingResp,
		"acceptedRequests": acceptedResp,
	})
}

// GetOutgoingFriendRequests returns the caller's pending outgoing requests
func GetOutgoingFriendRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var outgoing []models.FriendRequest
	if err := db.Where("sender_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at DESC").
		Find(&outgoing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch outgoing requests!", nil)
	}

	response := make([]friendRequestResponse, 0, len(outgoing))
	for _, req := range outgoing {
		item := friendRequestResponse{FriendRequest: req}
		var recipient models.User
		if err := db.First(&recipient, req.RecipientID).Error; err == nil {
			summary := recipient.Summary()
			item.Recipient = &summary
		}
		response = append(response, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Outgoing requests fetched!", response)
}

// UpdateProfile applies the whitelisted profile fields sent in the body
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedProfile").(*struct {
		FullName         *string `json:"fullName"`
		Bio              *string `json:"bio"`
		NativeLanguage   *string `json:"nativeLanguage"`
		LearningLanguage *string `json:"learningLanguage"`
		Location         *string `json:"location"`
		ProfilePic       *string `json:"profilePic"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.FullName != nil {
		user.FullName = *reqData.FullName
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.NativeLanguage != nil {
		user.NativeLanguage = *reqData.NativeLanguage
	}
	if reqData.LearningLanguage != nil {
		user.LearningLanguage = *reqData.LearningLanguage
	}
	if reqData.Location != nil {
		user.Location = *reqData.Location
	}
	if reqData.ProfilePic != nil {
		user.ProfilePic = *reqData.ProfilePic
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user.Summary())
}

type searchResult struct {
	models.UserSummary
	IsFriend bool `json:"isFriend"`
}

// SearchUsers matches full name or username, case-insensitively, capped at 20
func SearchUsers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search query must be at least 2 characters!", nil)
	}

	db := database.Database.Db

	pattern := fmt.Sprintf("%%%s%%", strings.ToLower(query))

	var users []models.User
	if err := db.Where(
		"id <> ? AND (LOWER(full_name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(native_language) LIKE ? OR LOWER(learning_language) LIKE ? OR LOWER(location) LIKE ?)",
		userID, pattern, pattern, pattern, pattern, pattern, pattern,
	).Limit(20).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search users!", nil)
	}

	friendIDs, err := friendIDsOf(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search users!", nil)
	}
	friendSet := make(map[uint]bool, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = true
	}

	results := make([]searchResult, 0, len(users))
	for i := range users {
		results = append(results, searchResult{
			UserSummary: users[i].Summary(),
			IsFriend:    friendSet[users[i].ID],
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", results)
}
