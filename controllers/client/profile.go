package client

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/NatanielEscudero/QuickService/db"
	"github.com/NatanielEscudero/QuickService/models"
	"github.com/NatanielEscudero/QuickService/utils"
)

// profileUpdate is the partial-update shape: nil means "keep current value".
type profileUpdate struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	AvatarURL   *string `json:"avatar_url"`
	Profession  *string `json:"profession"`
	Description *string `json:"description"`
}

// GetProfile returns the caller's account joined with the worker profile row
// when one exists.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	user.Password = ""

	var profile models.WorkerProfile
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected > 0 {
		return c.JSON(fiber.Map{
			"user":           user,
			"worker_profile": profile,
		})
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateProfile applies a partial update: incoming fields are merged against
// the freshly loaded row inside the same transaction that writes it. Setting
// a profession on a worker account creates the profile row on first use.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(profileUpdate)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Name != nil && *input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name cannot be empty",
		})
	}

	var user models.User
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		// Worker-specific fields upsert the profile row
		if user.HasRole(models.RoleWorker) && (input.Profession != nil || input.Description != nil) {
			var profile models.WorkerProfile
			if tx.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
				profile = models.WorkerProfile{
					UserID:       userID,
					Availability: models.StatusAvailable,
				}
			}
			if input.Profession != nil {
				profile.Profession = *input.Profession
				if profile.Description == "" && input.Description == nil {
					profile.Description = fmt.Sprintf("Professional %s", *input.Profession)
				}
			}
			if input.Description != nil {
				profile.Description = *input.Description
			}
			if err := tx.Save(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Password = ""
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// UpdatePassword verifies the current password before rehashing the new one.
func UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "current_password and new_password are required",
		})
	}
	if len(input.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "New password must be at least 6 characters",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Current password is incorrect",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	if err := db.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update password",
		})
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// UploadAvatar stores the uploaded image in Cloudinary and saves its URL.
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("user-%d-avatar", userID)
	url, err := utils.UploadToCloudinary(file, publicID, "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar URL",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Avatar updated successfully",
		"avatar_url": url,
	})
}
