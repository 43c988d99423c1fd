package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/utils"
)

// ShopService handles shop provisioning and settings
type ShopService struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewShopService creates a new shop service
func NewShopService(
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateShopInput represents input for provisioning a shop with its owner
type CreateShopInput struct {
	Name          string
	Phone         *string
	Address       *string
	GSTIN         *string
	OwnerName     string
	OwnerUsername string
	OwnerPassword string
	LicenseDays   int
}

// CreateShopOutput is the provisioned shop and its owner account
type CreateShopOutput struct {
	Shop  *entity.Shop
	Owner *entity.User
}

// CreateShop provisions a new shop together with its owner account
func (s *ShopService) CreateShop(ctx context.Context, input *CreateShopInput) (*CreateShopOutput, error) {
	slug := utils.Slugify(input.Name)
	existing, err := s.shopRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Shop name already taken")
	}

	existingUser, err := s.userRepo.GetByUsername(ctx, input.OwnerUsername)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hashedPassword, err := utils.HashPassword(input.OwnerPassword)
	if err != nil {
		return nil, err
	}

	// The shop references its owner and the owner references the shop, so
	// the owner's ID is fixed up front.
	ownerID := uuid.New()

	shop := &entity.Shop{
		Name:     input.Name,
		Slug:     slug,
		Phone:    input.Phone,
		Address:  input.Address,
		GSTIN:    input.GSTIN,
		OwnerID:  ownerID,
		Settings: entity.DefaultShopSettings(),
	}
	if input.GSTIN != nil && *input.GSTIN != "" {
		shop.Settings.GSTEnabled = true
	}
	if input.LicenseDays > 0 {
		expires := time.Now().AddDate(0, 0, input.LicenseDays)
		shop.LicenseExpiresAt = &expires
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}

	owner := &entity.User{
		ID:        ownerID,
		ShopID:    shop.ID,
		FirstName: input.OwnerName,
		Username:  input.OwnerUsername,
		Password:  hashedPassword,
	}
	if err := s.userRepo.Create(ctx, owner); err != nil {
		return nil, err
	}

	adminRole, err := s.roleRepo.GetByName(ctx, "admin")
	if err == nil && adminRole != nil {
		_ = s.userRepo.AssignRole(ctx, owner.ID, adminRole.ID)
	}

	return &CreateShopOutput{Shop: shop, Owner: owner}, nil
}

// GetShop retrieves a shop by ID
func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}
	return shop, nil
}

// UpdateShopInput represents input for updating a shop's identity
type UpdateShopInput struct {
	ID      uuid.UUID
	Name    *string
	Phone   *string
	Address *string
	GSTIN   *string
}

// UpdateShop updates a shop's identity fields
func (s *ShopService) UpdateShop(ctx context.Context, input *UpdateShopInput) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		shop.Name = *input.Name
	}
	if input.Phone != nil {
		shop.Phone = input.Phone
	}
	if input.Address != nil {
		shop.Address = input.Address
	}
	if input.GSTIN != nil {
		shop.GSTIN = input.GSTIN
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// UpdateSettingsInput represents input for updating shop settings
type UpdateSettingsInput struct {
	ID                  uuid.UUID
	GSTEnabled          *bool
	CGSTRate            *float64
	SGSTRate            *float64
	BillPrefix          *string
	GSTBillPrefix       *string
	Currency            *string
	Theme               *string
	WhatsAppCountryCode *string
}

// UpdateSettings updates a shop's billing settings
func (s *ShopService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.GSTEnabled != nil {
		shop.Settings.GSTEnabled = *input.GSTEnabled
	}
	if input.CGSTRate != nil {
		shop.Settings.CGSTRate = *input.CGSTRate
	}
	if input.SGSTRate != nil {
		shop.Settings.SGSTRate = *input.SGSTRate
	}
	if input.BillPrefix != nil {
		shop.Settings.BillPrefix = *input.BillPrefix
	}
	if input.GSTBillPrefix != nil {
		shop.Settings.GSTBillPrefix = *input.GSTBillPrefix
	}
	if input.Currency != nil {
		shop.Settings.Currency = *input.Currency
	}
	if input.Theme != nil {
		shop.Settings.Theme = *input.Theme
	}
	if input.WhatsAppCountryCode != nil {
		shop.Settings.WhatsAppCountryCode = *input.WhatsAppCountryCode
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// RenewLicense extends a shop's license by the given number of days. When
// the current license has already lapsed, the extension counts from now.
func (s *ShopService) RenewLicense(ctx context.Context, id uuid.UUID, days int) (*entity.Shop, error) {
	if days <= 0 {
		return nil, apperror.NewBadRequestError("License days must be positive")
	}

	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	base := now
	if shop.LicenseExpiresAt != nil && shop.LicenseExpiresAt.After(now) {
		base = *shop.LicenseExpiresAt
	}
	expires := base.AddDate(0, 0, days)
	shop.LicenseExpiresAt = &expires

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// ListShops retrieves all shops (for super admin use)
func (s *ShopService) ListShops(ctx context.Context) ([]entity.Shop, error) {
	return s.shopRepo.List(ctx)
}

// DeleteShop soft deletes a shop
func (s *ShopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return err
	}
	return s.shopRepo.Delete(ctx, shop.ID)
}
