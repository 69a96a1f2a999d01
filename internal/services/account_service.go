package services

import (
	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/pkg/apperrors"

	"github.com/lib/pq"
)

type AccountService interface {
	// Profile returns the sanitized account view with the role-specific
	// profile and, for sellers, the product list folded in.
	Profile(account *models.Account) (*dto.ProfileResponse, error)

	// UpdateProfile applies only the fields present in the patch.
	// A present username is checked for uniqueness within the role.
	UpdateProfile(account *models.Account, req *dto.UpdateProfileRequest) error

	// ListBrokers returns the sanitized broker directory.
	ListBrokers(limit, offset int) ([]dto.ProfileResponse, error)

	// SetActive toggles admin-controlled deactivation.
	SetActive(role models.Role, accountID string, active bool) error
}

type AccountServiceImpl struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	productRepo repositories.ProductRepository
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	productRepo repositories.ProductRepository,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		productRepo: productRepo,
	}
}

func (s *AccountServiceImpl) Profile(account *models.Account) (*dto.ProfileResponse, error) {
	resp := &dto.ProfileResponse{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Username:  account.Username,
		Email:     account.Email,
		Role:      string(account.Role),
	}

	switch account.Role {
	case models.RoleBuyer:
		profile, err := s.profileRepo.GetBuyerProfile(account.ID)
		if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if profile != nil {
			fillBuyerFields(resp, profile)
		}
	case models.RoleBroker:
		profile, err := s.profileRepo.GetBrokerProfile(account.ID)
		if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if profile != nil {
			fillBrokerFields(resp, profile)
		}
	case models.RoleSeller:
		products, err := s.productRepo.FindBySeller(account.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Products = products
	}

	return resp, nil
}

func (s *AccountServiceImpl) UpdateProfile(account *models.Account, req *dto.UpdateProfileRequest) error {
	accountFields := map[string]interface{}{}
	if req.FirstName != nil {
		accountFields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		accountFields["last_name"] = *req.LastName
	}
	if req.Username != nil && *req.Username != account.Username {
		taken, err := s.accountRepo.ExistsByUsername(account.Role, *req.Username)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}
		accountFields["username"] = *req.Username
	}
	if len(accountFields) > 0 {
		if err := s.accountRepo.UpdateFields(account.ID, accountFields); err != nil {
			return apperrors.InternalError(err)
		}
	}

	switch account.Role {
	case models.RoleBuyer:
		fields := buyerPatchFields(req)
		if len(fields) > 0 {
			if err := s.profileRepo.UpsertBuyerProfile(account.ID, fields); err != nil {
				return apperrors.InternalError(err)
			}
		}
	case models.RoleBroker:
		fields := brokerPatchFields(req)
		if len(fields) > 0 {
			if err := s.profileRepo.UpsertBrokerProfile(account.ID, fields); err != nil {
				return apperrors.InternalError(err)
			}
		}
	}

	logger.Info("profile updated", "email", account.Email, "role", string(account.Role))
	return nil
}

func (s *AccountServiceImpl) ListBrokers(limit, offset int) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.ListBrokerProfiles(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		account, err := s.accountRepo.FindByID(profiles[i].AccountID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAccountNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}
		if !account.Active || !account.Approved {
			continue
		}
		resp := dto.ProfileResponse{
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Username:  account.Username,
			Email:     account.Email,
			Role:      string(account.Role),
		}
		fillBrokerFields(&resp, &profiles[i])
		out = append(out, resp)
	}
	return out, nil
}

func (s *AccountServiceImpl) SetActive(role models.Role, accountID string, active bool) error {
	if err := s.accountRepo.SetActive(role, accountID, active); err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("account active flag changed", "account_id", accountID, "active", active)
	return nil
}

func fillBuyerFields(resp *dto.ProfileResponse, p *models.BuyerProfile) {
	resp.PresentAddress = p.PresentAddress
	resp.PermanentAddress = p.PermanentAddress
	resp.City = p.City
	resp.PostalCode = p.PostalCode
	resp.Country = p.Country
	resp.Language = p.Language
	resp.TimeZone = p.TimeZone
	emailNotif, pushNotif := p.EmailNotification, p.PushNotification
	resp.EmailNotification = &emailNotif
	resp.PushNotification = &pushNotif
}

func fillBrokerFields(resp *dto.ProfileResponse, p *models.BrokerProfile) {
	resp.Phone = p.Phone
	resp.Location = p.Location
	resp.About = p.About
	resp.Experience = p.Experience
	resp.Specialities = p.Specialities
	resp.Expertise = p.Expertise
	resp.Language = p.Language
}

func buyerPatchFields(req *dto.UpdateProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.PresentAddress != nil {
		fields["present_address"] = *req.PresentAddress
	}
	if req.PermanentAddress != nil {
		fields["permanent_address"] = *req.PermanentAddress
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.PostalCode != nil {
		fields["postal_code"] = *req.PostalCode
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Language != nil {
		fields["language"] = *req.Language
	}
	if req.TimeZone != nil {
		fields["time_zone"] = *req.TimeZone
	}
	if req.EmailNotification != nil {
		fields["email_notification"] = *req.EmailNotification
	}
	if req.PushNotification != nil {
		fields["push_notification"] = *req.PushNotification
	}
	return fields
}

func brokerPatchFields(req *dto.UpdateProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.About != nil {
		fields["about"] = *req.About
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Specialities != nil {
		fields["specialities"] = pq.StringArray(*req.Specialities)
	}
	if req.Expertise != nil {
		fields["expertise"] = *req.Expertise
	}
	if req.Language != nil {
		fields["language"] = *req.Language
	}
	return fields
}
