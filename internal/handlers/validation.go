package handlers

import (
	"net/mail"
	"strings"
)

var allowedPlanTypes = map[string]struct{}{
	"basic":   {},
	"premium": {},
	"elite":   {},
}

var allowedInquiryTypes = map[string]struct{}{
	"general":    {},
	"membership": {},
	"program":    {},
	"support":    {},
}

func validateRegisterRequest(req registerRequest) string {
	if strings.TrimSpace(req.FirstName) == "" {
		return "firstName is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		return "lastName is required"
	}
	if err := validateEmail(req.Email); err != "" {
		return err
	}
	if len(req.Password) < 8 {
		return "Password must be at least 8 characters"
	}
	return ""
}

func validateUpdateProfileRequest(req updateProfileRequest) string {
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return "firstName must not be empty"
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return "lastName must not be empty"
	}
	if req.Profile != nil {
		if req.Profile.Age != nil && *req.Profile.Age <= 0 {
			return "age must be greater than 0"
		}
		if req.Profile.Height != nil && *req.Profile.Height <= 0 {
			return "height must be greater than 0"
		}
		if req.Profile.Weight != nil && *req.Profile.Weight <= 0 {
			return "weight must be greater than 0"
		}
	}
	return ""
}

func validateContactRequest(req contactRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if err := validateEmail(req.Email); err != "" {
		return err
	}
	if strings.TrimSpace(req.Message) == "" {
		return "message is required"
	}
	if req.Type != "" {
		if _, ok := allowedInquiryTypes[req.Type]; !ok {
			return "type must be one of: general, membership, program, support"
		}
	}
	return ""
}

func validateMembershipRequest(req membershipRequest) string {
	if _, ok := allowedPlanTypes[req.PlanType]; !ok {
		return "planType must be one of: basic, premium, elite"
	}
	if req.Amount < 0 {
		return "amount must be 0 or greater"
	}
	return ""
}

func validateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "email is required"
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return "Invalid email format"
	}
	return ""
}
