package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type ProfileHandler struct {
	store       store.Store
	authHandler *auth.AuthHandler
}

func NewProfileHandler(s store.Store, authHandler *auth.AuthHandler) *ProfileHandler {
	return &ProfileHandler{store: s, authHandler: authHandler}
}

type GetProfileInput struct {
	auth.AuthInput
}

type ProfileOutput struct {
	Body models.UserProfile
}

func (h *ProfileHandler) HandleGetProfile(ctx context.Context, input *GetProfileInput) (*ProfileOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile, err := h.store.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		// A user without a saved profile gets an empty one rather than 404;
		// the dashboard treats it as a blank form.
		return &ProfileOutput{Body: models.UserProfile{UserID: userID}}, nil
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load profile: " + err.Error())
	}
	return &ProfileOutput{Body: *profile}, nil
}

type UpdateProfileInput struct {
	auth.AuthInput
	Body struct {
		FullName              string `json:"full_name"`
		Phone                 string `json:"phone"`
		DateOfBirth           string `json:"date_of_birth"`
		EmergencyContactName  string `json:"emergency_contact_name"`
		EmergencyContactPhone string `json:"emergency_contact_phone"`
		TrekkingExperience    string `json:"trekking_experience" enum:"beginner,intermediate,advanced,"`
		MedicalConditions     string `json:"medical_conditions"`
		DietaryPreferences    string `json:"dietary_preferences"`
		AvatarURL             string `json:"avatar_url"`
	}
}

func (h *ProfileHandler) HandleUpdateProfile(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		UserID:                userID,
		FullName:              input.Body.FullName,
		Phone:                 input.Body.Phone,
		DateOfBirth:           input.Body.DateOfBirth,
		EmergencyContactName:  input.Body.EmergencyContactName,
		EmergencyContactPhone: input.Body.EmergencyContactPhone,
		TrekkingExperience:    input.Body.TrekkingExperience,
		MedicalConditions:     input.Body.MedicalConditions,
		DietaryPreferences:    input.Body.DietaryPreferences,
		AvatarURL:             input.Body.AvatarURL,
	}
	if err := h.store.UpsertProfile(ctx, &profile); err != nil {
		return nil, huma.Error500InternalServerError("Failed to save profile: " + err.Error())
	}

	return &ProfileOutput{Body: profile}, nil
}
