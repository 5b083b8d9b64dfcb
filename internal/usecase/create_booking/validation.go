package create_booking

import (
	"fmt"
	"strings"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID <= 0 {
		return fmt.Errorf("%w: sessionID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len(req.FullName) > domain.MaxNameLength {
		return fmt.Errorf("%w: fullName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	for name, field := range map[string]*string{
		"medicalConditions": req.MedicalConditions,
		"specialRequests":   req.SpecialRequests,
	} {
		if field != nil && len(*field) > domain.MaxFreeTextLength {
			return fmt.Errorf("%w: %s is too long", ErrInvalidInput, name)
		}
	}

	if req.Experience != nil {
		if _, err := parseExperience(*req.Experience); err != nil {
			return err
		}
	}

	return nil
}

// parseExperience разбирает уровень подготовки клиента
func parseExperience(s string) (domain.ExperienceLevel, error) {
	level := domain.ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case domain.ExperienceBeginner, domain.ExperienceSome, domain.ExperienceIntermediate, domain.ExperienceAdvanced:
		return level, nil
	default:
		return "", fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, s)
	}
}

// resolveExperience уровень подготовки из запроса, beginner по умолчанию
func resolveExperience(req *Request) domain.ExperienceLevel {
	if req.Experience == nil || strings.TrimSpace(*req.Experience) == "" {
		return domain.ExperienceBeginner
	}
	level, err := parseExperience(*req.Experience)
	if err != nil {
		return domain.ExperienceBeginner
	}
	return level
}
